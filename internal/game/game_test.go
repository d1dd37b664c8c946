package game

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) entity.Board {
	t.Helper()

	board, err := entity.ParseBoard(s)
	require.NoError(t, err)

	return board
}

func TestNewGame(t *testing.T) {
	// When: create a new game instance
	game := NewGame()

	// Then: the game should have the expected initial state
	expectedGame := Game{
		Board:  entity.InitialState(),
		Winner: entity.Empty,
		Status: StatusOngoing,
	}

	require.NotNil(t, game)
	require.Equal(t, expectedGame, *game)
	assert.Equal(t, entity.MarkX, game.Turn())
}

func TestGame_MakeMove(t *testing.T) {
	t.Run("MakeMove", func(t *testing.T) {
		// Given: We have a new game
		game := NewGame()

		// When: X plays the centre
		err := game.MakeMove(entity.MarkX, entity.Action{Row: 1, Col: 1})
		require.NoError(t, err)

		// Then: the game state should reflect the move and turn change
		expectedGame := Game{
			Board:   mustParse(t, ".../.X./..."),
			Winner:  entity.Empty,
			Status:  StatusOngoing,
			History: []entity.Action{{Row: 1, Col: 1}},
		}

		require.Equal(t, expectedGame, *game)
		assert.Equal(t, entity.MarkO, game.Turn())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: X has played the corner
		game := NewGame()
		err := game.MakeMove(entity.MarkX, entity.Action{Row: 0, Col: 0})
		require.NoError(t, err)
		before := *game

		// When: O tries to move to the same cell
		err = game.MakeMove(entity.MarkO, entity.Action{Row: 0, Col: 0})

		// Then: ErrInvalidAction should be returned and the game left unchanged
		require.ErrorIs(t, err, apperror.ErrInvalidAction)
		require.Equal(t, before, *game)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: A new game instance
		game := NewGame()

		// When: O tries to make a move before X
		err := game.MakeMove(entity.MarkO, entity.Action{Row: 0, Col: 1})

		// Then: ErrNotYourTurn should be returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		require.Equal(t, entity.InitialState(), game.Board)
		assert.Empty(t, game.History)
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		// Given: A new game instance
		game := NewGame()

		// When: an action outside the board is passed
		err := game.MakeMove(entity.MarkX, entity.Action{Row: 3, Col: 0})

		// Then: ErrInvalidAction should be returned
		assert.ErrorIs(t, err, apperror.ErrInvalidAction)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		// Given: X can complete the top row
		game, err := FromBoard(mustParse(t, "XX./OO./..."))
		require.NoError(t, err)

		// When: X completes it
		err = game.MakeMove(entity.MarkX, entity.Action{Row: 0, Col: 2})

		// Then: X is the winner
		require.NoError(t, err)
		assert.True(t, game.IsFinished())
		assert.Equal(t, entity.MarkX, game.Winner)
		assert.Equal(t, "X", game.Outcome())
		assert.Equal(t, entity.Empty, game.Turn())
	})

	t.Run("Last move without a line is a draw", func(t *testing.T) {
		// Given: one cell left and no line possible
		game, err := FromBoard(mustParse(t, "XOX/XOO/OX."))
		require.NoError(t, err)

		// When: X fills the last cell
		err = game.MakeMove(entity.MarkX, entity.Action{Row: 2, Col: 2})

		// Then: the game is a draw
		require.NoError(t, err)
		assert.True(t, game.IsDraw())
		assert.Equal(t, Tie, game.Outcome())
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		// Given: A game where X has already won
		game, err := FromBoard(mustParse(t, "XXX/.O./.O."))
		require.NoError(t, err)

		// When: O tries to make a move after the game has finished
		err = game.MakeMove(entity.MarkO, entity.Action{Row: 1, Col: 0})

		// Then: an ErrGameFinished error should be returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestFromBoard(t *testing.T) {
	t.Run("Ongoing position", func(t *testing.T) {
		game, err := FromBoard(mustParse(t, "X../.O./..."))

		require.NoError(t, err)
		assert.Equal(t, StatusOngoing, game.Status)
		assert.Equal(t, "", game.Outcome())
		assert.Equal(t, entity.MarkX, game.Turn())
	})

	t.Run("Finished position", func(t *testing.T) {
		game, err := FromBoard(mustParse(t, "XOX/XOO/OXX"))

		require.NoError(t, err)
		assert.True(t, game.IsDraw())
	})

	t.Run("Error on unreachable position", func(t *testing.T) {
		_, err := FromBoard(mustParse(t, "OO./.../..."))

		assert.ErrorIs(t, err, apperror.ErrInvalidState)
	})
}
