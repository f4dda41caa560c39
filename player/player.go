package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"connectfour/game"
	"connectfour/searcher"
)

const (
	msgInvalidColumn = "Invalid column. Try again"
	msgColumnFull    = "Column is full. Try again"
)

// Console is a human player typing 1-indexed columns.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// FindMove prompts until a playable column is entered. Rejected input keeps
// the same turn. It fails only when the input is exhausted.
func (c *Console) FindMove(board *game.Board, player game.Player) (searcher.Result, error) {
	for {
		fmt.Fprintf(c.out, "Player %s, choose a column (1-%d): ", player, game.Columns)

		if !c.scanner.Scan() {
			if err := c.scanner.Err(); err != nil {
				return searcher.Result{}, fmt.Errorf("read column: %w", err)
			}
			return searcher.Result{}, fmt.Errorf("read column: %w", io.EOF)
		}

		column, err := strconv.Atoi(strings.TrimSpace(c.scanner.Text()))
		if err != nil || column < 1 || column > game.Columns {
			fmt.Fprintln(c.out, msgInvalidColumn)
			continue
		}
		if !board.IsColumnAvailable(column - 1) {
			fmt.Fprintln(c.out, msgColumnFull)
			continue
		}

		return searcher.Result{Column: column - 1}, nil
	}
}

// Confirm asks a yes/no question. Anything but y or yes is a no.
func (c *Console) Confirm(question string) bool {
	fmt.Fprintf(c.out, "%s [y/N]: ", question)
	if !c.scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(c.scanner.Text()))
	return answer == "y" || answer == "yes"
}

// PrintBoard writes the board followed by the result once the game is over.
func PrintBoard(out io.Writer, board game.Board) {
	fmt.Fprint(out, board.String())
	if result := game.Outcome(&board); result.Over() {
		fmt.Fprintln(out, result)
	}
}
