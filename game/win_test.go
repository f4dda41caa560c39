package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestCheckWin(t *testing.T) {
	t.Run("three of a kind capped by the opponent is not a win", func(t *testing.T) {
		b := NewBoard()
		for _, p := range []Player{PlayerA, PlayerA, PlayerA, PlayerB} {
			_, err := b.Drop(3, p)
			require.NoError(t, err)
		}

		require.False(t, CheckWin(&b, PlayerA))
		require.False(t, CheckWin(&b, PlayerB))
	})

	t.Run("four discs in a column win", func(t *testing.T) {
		// A plays column 0, B answers in column 1
		b := NewBoard()
		for i := 0; i < ToWin; i++ {
			require.False(t, CheckWin(&b, PlayerA), "A should not win before the fourth disc")
			_, err := b.Drop(0, PlayerA)
			require.NoError(t, err)
			if i < ToWin-1 {
				_, err = b.Drop(1, PlayerB)
				require.NoError(t, err)
			}
		}

		require.True(t, CheckWin(&b, PlayerA))
		require.False(t, CheckWin(&b, PlayerB))
	})

	t.Run("four discs in a row win", func(t *testing.T) {
		b := playMoves(t, 2, 2, 3, 3, 4, 4, 5)

		require.True(t, CheckWin(&b, PlayerA))
		require.False(t, CheckWin(&b, PlayerB))
	})

	t.Run("rising diagonal wins", func(t *testing.T) {
		// X at (5,0) (4,1) (3,2) (2,3)
		b := playMoves(t, 0, 1, 1, 2, 2, 3, 2, 3, 3, 6, 3)

		require.True(t, CheckWin(&b, PlayerA))
		require.False(t, CheckWin(&b, PlayerB))
	})

	t.Run("falling diagonal wins", func(t *testing.T) {
		// X at (5,6) (4,5) (3,4) (2,3)
		b := playMoves(t, 6, 5, 5, 4, 4, 3, 4, 3, 3, 0, 3)

		require.True(t, CheckWin(&b, PlayerA))
		require.False(t, CheckWin(&b, PlayerB))
	})

	t.Run("empty marker never wins", func(t *testing.T) {
		b := NewBoard()

		require.False(t, CheckWin(&b, Empty))
	})
}

func TestCheckWinNeverBothPlayers(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for game := 0; game < 500; game++ {
		b := NewBoard()
		player := PlayerA
		for !GameOver(&b) {
			moves := b.AvailableMoves()
			_, err := b.Drop(moves[rng.Intn(len(moves))], player)
			require.NoError(t, err)
			require.False(t, CheckWin(&b, PlayerA) && CheckWin(&b, PlayerB),
				"Both players should never have four in a row (game %d)", game)
			player = player.Opponent()
		}
	}
}
