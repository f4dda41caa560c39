package gamemaster

import (
	"testing"

	"connectfour/game"

	"github.com/stretchr/testify/require"
)

var drawSequence = []int{
	5, 3, 2, 3, 1, 5, 3, 1, 0, 1, 4, 1, 2, 5, 0, 5, 6, 6, 2, 0, 6,
	0, 4, 2, 3, 0, 3, 4, 2, 3, 2, 6, 0, 4, 1, 1, 5, 4, 4, 5, 6, 6,
}

func TestLocalEngineInit(t *testing.T) {
	engine := NewLocalEngine()
	board, getUpdate := engine.Init(game.PlayerA)

	require.Equal(t, game.NewBoard(), board, "Game should start on an empty board")
	require.Equal(t, game.PlayerA, engine.Turn())
	require.Equal(t, game.Ongoing, engine.Result().Status)

	_, ok := getUpdate()
	require.False(t, ok, "No update should be pending before the first move")
}

func TestLocalEnginePlay(t *testing.T) {
	t.Run("valid move updates board and turn", func(t *testing.T) {
		engine := NewLocalEngine()
		_, getUpdate := engine.Init(game.PlayerA)

		row, err := engine.Play(3)

		require.NoError(t, err)
		require.Equal(t, game.Rows-1, row)
		require.Equal(t, game.PlayerB, engine.Turn())

		u, ok := getUpdate()
		require.True(t, ok, "Move should publish an update")
		require.Equal(t, 3, u.Column)
		require.Equal(t, game.Rows-1, u.Row)
		require.Equal(t, game.PlayerA, u.Player)
		board := engine.Board()
		require.Equal(t, board, u.Board)
		require.Equal(t, game.PlayerA, u.Board.Cell(game.Rows-1, 3))

		_, ok = getUpdate()
		require.False(t, ok, "Only one update per move")
	})

	t.Run("second player can start", func(t *testing.T) {
		engine := NewLocalEngine()
		engine.Init(game.PlayerB)

		_, err := engine.Play(0)

		require.NoError(t, err)
		board := engine.Board()
		require.Equal(t, game.PlayerB, board.Cell(game.Rows-1, 0))
		require.Equal(t, game.PlayerA, engine.Turn())
	})

	t.Run("rejected moves keep the turn", func(t *testing.T) {
		engine := NewLocalEngine()
		engine.Init(game.PlayerA)
		for i := 0; i < game.Rows; i++ {
			_, err := engine.Play(2)
			require.NoError(t, err)
		}
		before := engine.Board()

		_, err := engine.Play(2)
		require.ErrorIs(t, err, game.ErrColumnFull)
		require.EqualError(t, err, "column 3: column is full", "columns are reported 1-indexed")
		_, err = engine.Play(7)
		require.ErrorIs(t, err, game.ErrInvalidColumn)
		_, err = engine.Play(-1)
		require.ErrorIs(t, err, game.ErrInvalidColumn)

		require.Equal(t, before, engine.Board(), "Board should not change after rejected moves")
		require.Equal(t, game.PlayerA, engine.Turn(), "Same player should try again")
	})

	t.Run("moving out of turn is rejected", func(t *testing.T) {
		engine := NewLocalEngine()
		engine.Init(game.PlayerA)

		_, err := engine.PlayAs(game.PlayerB, 0)

		require.ErrorIs(t, err, ErrNotYourTurn)
		require.Equal(t, game.NewBoard(), engine.Board())
	})
}

func TestLocalEnginePlay_GameOver(t *testing.T) {
	engine := NewLocalEngine()
	_, getUpdate := engine.Init(game.PlayerA)

	// A plays column 0 four times, B answers in column 1
	for _, col := range []int{0, 1, 0, 1, 0, 1, 0} {
		_, err := engine.Play(col)
		require.NoError(t, err)
	}

	require.Equal(t, game.Result{Status: game.Won, Winner: game.PlayerA}, engine.Result())

	var last Update
	count := 0
	for u, ok := getUpdate(); ok; u, ok = getUpdate() {
		last = u
		count++
	}
	require.Equal(t, 7, count, "Every move should have been published before the feed closed")
	require.True(t, last.Result.Over())

	_, err := engine.Play(2)
	require.ErrorIs(t, err, ErrGameOver)
	require.Equal(t, "game is over - no moves allowed", err.Error())
}

func TestLocalEnginePlay_Draw(t *testing.T) {
	engine := NewLocalEngine()
	engine.Init(game.PlayerA)

	for i, col := range drawSequence {
		require.False(t, engine.Result().Over(), "game should be running before move %d", i)
		_, err := engine.Play(col)
		require.NoError(t, err)
	}

	require.Equal(t, game.Result{Status: game.Draw}, engine.Result())
	require.Equal(t, len(drawSequence), engine.Moves())
}

func TestLocalEngineRestart(t *testing.T) {
	engine := NewLocalEngine()
	engine.Init(game.PlayerA)
	for _, col := range []int{0, 1, 0, 1, 0, 1, 0} {
		_, err := engine.Play(col)
		require.NoError(t, err)
	}

	board, getUpdate := engine.Init(game.PlayerA)

	require.Equal(t, game.NewBoard(), board)
	require.Equal(t, game.Ongoing, engine.Result().Status)
	_, ok := getUpdate()
	require.False(t, ok)
	_, err := engine.Play(3)
	require.NoError(t, err, "Restarted game should accept moves")
}

func TestLocalEngine_IdenticalInitStates(t *testing.T) {
	board1, _ := NewLocalEngine().Init(game.PlayerA)
	board2, _ := NewLocalEngine().Init(game.PlayerA)

	require.Equal(t, board1, board2)
}
