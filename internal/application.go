package application

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/game"
	"github.com/rocketscienceinc/tictactoe-engine/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-engine/internal/render"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
)

// RunApp - runs one engine job on the configured board and writes the result to out.
func RunApp(logger *slog.Logger, conf *config.Config, out io.Writer) error {
	log := logger.With("component", "app")

	board, err := entity.ParseBoard(conf.Board)
	if err != nil {
		return fmt.Errorf("could not parse board: %w", err)
	}

	current, err := game.FromBoard(board)
	if err != nil {
		return err
	}

	renderer := render.New(out, !conf.Plain)
	log.Info("Starting engine", "mode", conf.Mode, "board", board.String())

	switch conf.Mode {
	case config.ModeSelfPlay:
		return selfPlay(logger, renderer, current)
	default:
		return solve(renderer, current)
	}
}

func solve(renderer *render.Renderer, current *game.Game) error {
	if err := renderer.WriteBoard(current.Board); err != nil {
		return fmt.Errorf("could not write board: %w", err)
	}

	eval, err := minimax.Evaluate(current.Board)
	if err != nil {
		return fmt.Errorf("could not evaluate board: %w", err)
	}

	if !eval.HasAction {
		return renderer.Println(fmt.Sprintf("game over: %s", outcomeText(current)))
	}

	return renderer.Println(fmt.Sprintf("%s plays %s, value %d (%d positions searched)",
		current.Turn(), eval.Action, eval.Value, eval.Nodes))
}

func selfPlay(logger *slog.Logger, renderer *render.Renderer, current *game.Game) error {
	bot := service.NewBotService(logger)

	if err := renderer.WriteBoard(current.Board); err != nil {
		return fmt.Errorf("could not write board: %w", err)
	}

	err := bot.SelfPlay(current, func(mark entity.Cell, action entity.Action) error {
		if err := renderer.Println(fmt.Sprintf("\n%s plays %s", mark, action)); err != nil {
			return fmt.Errorf("could not write move: %w", err)
		}

		if err := renderer.WriteBoard(current.Board, action); err != nil {
			return fmt.Errorf("could not write board: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("self-play failed: %w", err)
	}

	return renderer.Println(fmt.Sprintf("\ngame over: %s", outcomeText(current)))
}

func outcomeText(current *game.Game) string {
	if current.IsDraw() {
		return "draw"
	}
	return current.Winner.String() + " wins"
}
