package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/game"
	"github.com/rocketscienceinc/tictactoe-engine/internal/minimax"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	MakeTurn(g *game.Game) (entity.Action, error)
	SelfPlay(g *game.Game, onMove MoveObserver) error
}

// MoveObserver is called after every move SelfPlay applies.
type MoveObserver func(mark entity.Cell, action entity.Action) error

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

// MakeTurn plays the engine's move for whichever side is to move.
func (that *botService) MakeTurn(g *game.Game) (entity.Action, error) {
	if g.IsFinished() {
		return entity.Action{}, ErrNoAvailableMoves
	}

	mark := g.Turn()

	eval, err := minimax.Evaluate(g.Board)
	if err != nil {
		return entity.Action{}, fmt.Errorf("bot failed to search: %w", err)
	}

	if !eval.HasAction {
		return entity.Action{}, ErrNoAvailableMoves
	}

	that.logger.Debug("Engine chose move",
		"mark", mark.String(),
		"board", g.Board.String(),
		"action", eval.Action.String(),
		"value", eval.Value,
		"nodes", eval.Nodes,
	)

	if err = g.MakeMove(mark, eval.Action); err != nil {
		return entity.Action{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return eval.Action, nil
}

// SelfPlay lets the engine play both sides until the game is over. onMove may be nil.
func (that *botService) SelfPlay(g *game.Game, onMove MoveObserver) error {
	for !g.IsFinished() {
		mark := g.Turn()

		action, err := that.MakeTurn(g)
		if err != nil {
			return err
		}

		if onMove != nil {
			if err = onMove(mark, action); err != nil {
				return err
			}
		}
	}

	that.logger.Info("Self-play finished",
		"board", g.Board.String(),
		"outcome", g.Outcome(),
		"moves", len(g.History),
	)

	return nil
}
