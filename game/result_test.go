package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// drawSequence fills the board with alternating drops and never completes a four.
var drawSequence = []int{
	5, 3, 2, 3, 1, 5, 3, 1, 0, 1, 4, 1, 2, 5, 0, 5, 6, 6, 2, 0, 6,
	0, 4, 2, 3, 0, 3, 4, 2, 3, 2, 6, 0, 4, 1, 1, 5, 4, 4, 5, 6, 6,
}

func TestOutcome(t *testing.T) {
	t.Run("empty board is ongoing", func(t *testing.T) {
		b := NewBoard()

		result := Outcome(&b)
		require.Equal(t, Ongoing, result.Status)
		require.False(t, result.Over())
		require.False(t, GameOver(&b))
	})

	t.Run("full board without four in a row is a draw", func(t *testing.T) {
		b := NewBoard()
		player := PlayerA
		for i, col := range drawSequence {
			require.Equal(t, Ongoing, Outcome(&b).Status, "game should still be running before move %d", i)
			_, err := b.Drop(col, player)
			require.NoError(t, err)
			player = player.Opponent()
		}

		result := Outcome(&b)
		require.Equal(t, Result{Status: Draw}, result)
		require.Equal(t, "Its a Tie", result.String())
		require.False(t, CheckWin(&b, PlayerA))
		require.False(t, CheckWin(&b, PlayerB))
	})

	t.Run("four in a row is a win", func(t *testing.T) {
		b := playMoves(t, 0, 1, 0, 1, 0, 1, 0)

		result := Outcome(&b)
		require.Equal(t, Result{Status: Won, Winner: PlayerA}, result)
		require.Equal(t, "X wins", result.String())
	})

	t.Run("win for the second player", func(t *testing.T) {
		b := playMoves(t, 0, 2, 0, 3, 6, 4, 6, 5)

		require.Equal(t, Result{Status: Won, Winner: PlayerB}, Outcome(&b))
	})
}
