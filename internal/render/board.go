// Package render draws boards for terminal output.
package render

import (
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	colorX = "#E88388"
	colorO = "#71BEF2"

	rowSeparator = "---+---+---"
)

type Renderer struct {
	out *termenv.Output
}

// New returns a renderer writing to w. With color disabled the output is plain ASCII.
func New(w io.Writer, color bool) *Renderer {
	var opts []termenv.OutputOption
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	return &Renderer{out: termenv.NewOutput(w, opts...)}
}

// Board draws the grid. The cell of last, if given, is drawn bold and underlined.
func (that *Renderer) Board(board entity.Board, last ...entity.Action) string {
	var sb strings.Builder

	for i, row := range board {
		if i > 0 {
			sb.WriteString(rowSeparator)
			sb.WriteByte('\n')
		}

		for j, cell := range row {
			if j > 0 {
				sb.WriteByte('|')
			}
			sb.WriteByte(' ')
			sb.WriteString(that.cell(cell, highlighted(entity.Action{Row: i, Col: j}, last)))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (that *Renderer) WriteBoard(board entity.Board, last ...entity.Action) error {
	_, err := io.WriteString(that.out, that.Board(board, last...))
	return err
}

// Println writes a line of plain text.
func (that *Renderer) Println(s string) error {
	_, err := io.WriteString(that.out, s+"\n")
	return err
}

func (that *Renderer) cell(cell entity.Cell, highlight bool) string {
	style := that.out.String(cell.String())

	switch cell {
	case entity.MarkX:
		style = style.Foreground(that.out.Color(colorX))
	case entity.MarkO:
		style = style.Foreground(that.out.Color(colorO))
	default:
		style = style.Faint()
	}

	if highlight {
		style = style.Bold().Underline()
	}

	return style.String()
}

func highlighted(a entity.Action, last []entity.Action) bool {
	return len(last) > 0 && last[0] == a
}
