package player

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"connectfour/game"

	"github.com/stretchr/testify/require"
)

func TestConsole(t *testing.T) {
	t.Run("reads a 1-indexed column", func(t *testing.T) {
		var out bytes.Buffer
		board := game.NewBoard()
		c := NewConsole(strings.NewReader("4\n"), &out)

		move, err := c.FindMove(&board, game.PlayerA)
		require.NoError(t, err)
		require.Equal(t, 3, move.Column)
		require.Contains(t, out.String(), "Player X, choose a column (1-7): ")
	})

	t.Run("re-prompts on invalid input", func(t *testing.T) {
		var out bytes.Buffer
		board := game.NewBoard()
		c := NewConsole(strings.NewReader("abc\n0\n8\n\n 7 \n"), &out)

		move, err := c.FindMove(&board, game.PlayerB)
		require.NoError(t, err)
		require.Equal(t, 6, move.Column)
		require.Equal(t, 4, strings.Count(out.String(), "Invalid column. Try again"))
		require.Equal(t, 5, strings.Count(out.String(), "Player O, choose a column"))
	})

	t.Run("re-prompts on a full column", func(t *testing.T) {
		var out bytes.Buffer
		board := game.NewBoard()
		player := game.PlayerA
		for i := 0; i < game.Rows; i++ {
			_, err := board.Drop(0, player)
			require.NoError(t, err)
			player = player.Opponent()
		}
		c := NewConsole(strings.NewReader("1\n2\n"), &out)

		move, err := c.FindMove(&board, game.PlayerA)
		require.NoError(t, err)
		require.Equal(t, 1, move.Column)
		require.Contains(t, out.String(), "Column is full. Try again")
	})

	t.Run("fails when input runs out", func(t *testing.T) {
		board := game.NewBoard()
		c := NewConsole(strings.NewReader("9\n"), io.Discard)

		_, err := c.FindMove(&board, game.PlayerA)
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("confirm", func(t *testing.T) {
		c := NewConsole(strings.NewReader("y\nYES\nno\n\n"), io.Discard)
		require.True(t, c.Confirm("Play again?"))
		require.True(t, c.Confirm("Play again?"))
		require.False(t, c.Confirm("Play again?"))
		require.False(t, c.Confirm("Play again?"))
		require.False(t, c.Confirm("Play again?"), "no input left")
	})
}

func TestPrintBoard(t *testing.T) {
	t.Run("ongoing game prints only the grid", func(t *testing.T) {
		var out bytes.Buffer
		board := game.NewBoard()
		PrintBoard(&out, board)
		require.Equal(t, board.String(), out.String())
	})

	t.Run("finished game prints the result", func(t *testing.T) {
		var out bytes.Buffer
		board := game.NewBoard()
		player := game.PlayerA
		for _, column := range []int{0, 1, 0, 1, 0, 1, 0} {
			_, err := board.Drop(column, player)
			require.NoError(t, err)
			player = player.Opponent()
		}
		PrintBoard(&out, board)
		require.True(t, strings.HasSuffix(out.String(), "X wins\n"))
	})
}
