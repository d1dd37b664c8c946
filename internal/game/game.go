package game

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	Tie = "-"
)

// Game holds the current board of one match and the moves that led to it.
type Game struct {
	Board   entity.Board
	Winner  entity.Cell
	Status  string
	History []entity.Action
}

func NewGame() *Game {
	return &Game{
		Board:  entity.InitialState(),
		Winner: entity.Empty,
		Status: StatusOngoing,
	}
}

// FromBoard resumes a game at an arbitrary reachable position.
func FromBoard(board entity.Board) (*Game, error) {
	if err := board.Validate(); err != nil {
		return nil, fmt.Errorf("could not resume game: %w", err)
	}

	game := &Game{Board: board}
	game.updateGameStatus()

	return game, nil
}

// Turn returns the mark to move, or Empty once the game is over.
func (that *Game) Turn() entity.Cell {
	if that.IsFinished() {
		return entity.Empty
	}
	return that.Board.Player()
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == entity.Empty
}

func (that *Game) MakeMove(mark entity.Cell, action entity.Action) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Board.Player() != mark {
		return fmt.Errorf("%w: %s to move", apperror.ErrNotYourTurn, that.Board.Player())
	}

	next, err := that.Board.Result(action)
	if err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	that.Board = next
	that.History = append(that.History, action)
	that.updateGameStatus()

	return nil
}

func (that *Game) updateGameStatus() {
	if winner, ok := that.Board.Winner(); ok {
		that.Winner = winner
		that.Status = StatusFinished
		return
	}

	that.Winner = entity.Empty
	if that.Board.Full() {
		that.Status = StatusFinished
		return
	}

	that.Status = StatusOngoing
}

// Outcome returns the winning mark, "-" for a draw, or "" while the game is ongoing.
func (that *Game) Outcome() string {
	switch {
	case !that.IsFinished():
		return ""
	case that.IsDraw():
		return Tie
	default:
		return that.Winner.String()
	}
}
