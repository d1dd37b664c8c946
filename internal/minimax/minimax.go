// Package minimax picks optimal Tic-Tac-Toe moves by searching the full game tree.
//
// X maximizes the board utility and O minimizes it. Each call walks the tree from scratch; there is no
// pruning beyond stopping at the first move that reaches the best reachable outcome for the side to move.
package minimax

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	xWins = 1
	oWins = -1
)

// Evaluation is the outcome of a search from one position.
type Evaluation struct {
	// Value is the game-theoretic utility of the position under optimal play.
	Value int
	// Action is the chosen move. HasAction is false when the position is terminal.
	Action    entity.Action
	HasAction bool
	// Nodes counts the positions visited, the root included.
	Nodes int
}

// Minimax returns the optimal action for the side to move. ok is false when the board is terminal.
func Minimax(board entity.Board) (entity.Action, bool, error) {
	eval, err := Evaluate(board)
	if err != nil {
		return entity.Action{}, false, err
	}

	return eval.Action, eval.HasAction, nil
}

// Evaluate searches board and reports its value under optimal play, the chosen action and the number of positions visited.
func Evaluate(board entity.Board) (Evaluation, error) {
	if err := board.Validate(); err != nil {
		return Evaluation{}, fmt.Errorf("could not search board %s: %w", board, err)
	}

	s := &searcher{}

	var (
		value  int
		action entity.Action
		ok     bool
		err    error
	)
	if board.Player() == entity.MarkX {
		value, action, ok, err = s.maxValue(board)
	} else {
		value, action, ok, err = s.minValue(board)
	}
	if err != nil {
		return Evaluation{}, err
	}

	return Evaluation{
		Value:     value,
		Action:    action,
		HasAction: ok,
		Nodes:     s.nodes,
	}, nil
}

// searcher holds the state of a single call.
type searcher struct {
	nodes int
}

func (that *searcher) maxValue(board entity.Board) (int, entity.Action, bool, error) {
	that.nodes++

	if board.Terminal() {
		value, err := board.Utility()
		return value, entity.Action{}, false, err
	}

	best, move, found := math.MinInt, entity.Action{}, false
	for _, action := range board.Actions() {
		next, err := board.Result(action)
		if err != nil {
			return 0, entity.Action{}, false, fmt.Errorf("could not apply %s: %w", action, err)
		}

		value, _, _, err := that.minValue(next)
		if err != nil {
			return 0, entity.Action{}, false, err
		}

		if value > best {
			best, move, found = value, action, true
			if best == xWins {
				break
			}
		}
	}

	return best, move, found, nil
}

func (that *searcher) minValue(board entity.Board) (int, entity.Action, bool, error) {
	that.nodes++

	if board.Terminal() {
		value, err := board.Utility()
		return value, entity.Action{}, false, err
	}

	best, move, found := math.MaxInt, entity.Action{}, false
	for _, action := range board.Actions() {
		next, err := board.Result(action)
		if err != nil {
			return 0, entity.Action{}, false, fmt.Errorf("could not apply %s: %w", action, err)
		}

		value, _, _, err := that.maxValue(next)
		if err != nil {
			return 0, entity.Action{}, false, err
		}

		if value < best {
			best, move, found = value, action, true
			if best == oWins {
				break
			}
		}
	}

	return best, move, found, nil
}
