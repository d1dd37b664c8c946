package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const BoardSize = 3

type Cell int

const (
	Empty Cell = iota
	MarkX
	MarkO
)

func (that Cell) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return "."
	}
}

// Action is a (row, column) coordinate on the board.
type Action struct {
	Row int
	Col int
}

func (that Action) Valid() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Action) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// Board is a value type: assigning or passing it copies all nine cells.
type Board [BoardSize][BoardSize]Cell

// WinLines lists the eight lines in the order they are checked: rows, columns, diagonals.
var WinLines = [8][3]Action{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

func InitialState() Board {
	return Board{}
}

func (that Board) At(a Action) Cell {
	return that[a.Row][a.Col]
}

func (that Board) count(mark Cell) int {
	n := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == mark {
				n++
			}
		}
	}
	return n
}

// Player returns the mark that moves next. The board is assumed reachable.
func (that Board) Player() Cell {
	if (BoardSize*BoardSize-that.count(Empty))%2 == 0 {
		return MarkX
	}
	return MarkO
}

// Actions returns every empty coordinate in row-major order.
func (that Board) Actions() []Action {
	actions := make([]Action, 0, BoardSize*BoardSize)
	for i, row := range that {
		for j, cell := range row {
			if cell == Empty {
				actions = append(actions, Action{Row: i, Col: j})
			}
		}
	}
	return actions
}

// Result returns a copy of the board with the current player's mark placed at a.
func (that Board) Result(a Action) (Board, error) {
	if !a.Valid() {
		return that, fmt.Errorf("%w: %s is out of range", apperror.ErrInvalidAction, a)
	}

	if that.At(a) != Empty {
		return that, fmt.Errorf("%w: cell %s is already occupied", apperror.ErrInvalidAction, a)
	}

	next := that
	next[a.Row][a.Col] = that.Player()

	return next, nil
}

// Winner returns the mark of the first completed line, checking rows, then columns, then diagonals.
func (that Board) Winner() (Cell, bool) {
	for _, line := range WinLines {
		a, b, c := that.At(line[0]), that.At(line[1]), that.At(line[2])
		if a != Empty && a == b && b == c {
			return a, true
		}
	}
	return Empty, false
}

func (that Board) Full() bool {
	return that.count(Empty) == 0
}

func (that Board) Terminal() bool {
	if _, ok := that.Winner(); ok {
		return true
	}
	return that.Full()
}

// Utility scores a finished board from X's side: 1 for an X win, -1 for an O win, 0 for a draw.
func (that Board) Utility() (int, error) {
	if !that.Terminal() {
		return 0, fmt.Errorf("%w: utility of a non-terminal board", apperror.ErrInvalidState)
	}

	switch winner, _ := that.Winner(); winner {
	case MarkX:
		return 1, nil
	case MarkO:
		return -1, nil
	default:
		return 0, nil
	}
}

// Validate reports whether the board can be reached by legal play from the initial state.
func (that Board) Validate() error {
	for i, row := range that {
		for j, cell := range row {
			if cell != Empty && cell != MarkX && cell != MarkO {
				return fmt.Errorf("%w: unknown cell value %d at %s", apperror.ErrInvalidState, int(cell), Action{Row: i, Col: j})
			}
		}
	}

	xCount, oCount := that.count(MarkX), that.count(MarkO)
	if xCount != oCount && xCount != oCount+1 {
		return fmt.Errorf("%w: %d X marks and %d O marks", apperror.ErrInvalidState, xCount, oCount)
	}

	var xWins, oWins bool
	for _, line := range WinLines {
		a, b, c := that.At(line[0]), that.At(line[1]), that.At(line[2])
		if a == Empty || a != b || b != c {
			continue
		}
		if a == MarkX {
			xWins = true
		} else {
			oWins = true
		}
	}

	switch {
	case xWins && oWins:
		return fmt.Errorf("%w: both players have a completed line", apperror.ErrInvalidState)
	case xWins && xCount != oCount+1:
		return fmt.Errorf("%w: O moved after X had won", apperror.ErrInvalidState)
	case oWins && xCount != oCount:
		return fmt.Errorf("%w: X moved after O had won", apperror.ErrInvalidState)
	}

	return nil
}

// String renders the board in row form, e.g. "XO./.X./..O".
func (that Board) String() string {
	var sb strings.Builder
	for i, row := range that {
		if i > 0 {
			sb.WriteByte('/')
		}
		for _, cell := range row {
			sb.WriteString(cell.String())
		}
	}
	return sb.String()
}

// ParseBoard reads nine cells in row-major order. X and O are marks; '.', '_' and '-' are empty.
// Slashes and whitespace separate rows and are ignored.
func ParseBoard(s string) (Board, error) {
	var (
		board Board
		n     int
	)

	for _, r := range s {
		var cell Cell
		switch r {
		case '/', ' ', '\t', '\n', '\r':
			continue
		case 'X', 'x':
			cell = MarkX
		case 'O', 'o':
			cell = MarkO
		case '.', '_', '-':
			cell = Empty
		default:
			return Board{}, fmt.Errorf("%w: unexpected character %q", apperror.ErrInvalidState, r)
		}

		if n == BoardSize*BoardSize {
			return Board{}, fmt.Errorf("%w: more than %d cells", apperror.ErrInvalidState, BoardSize*BoardSize)
		}
		board[n/BoardSize][n%BoardSize] = cell
		n++
	}

	if n != BoardSize*BoardSize {
		return Board{}, fmt.Errorf("%w: got %d cells, want %d", apperror.ErrInvalidState, n, BoardSize*BoardSize)
	}

	return board, nil
}
