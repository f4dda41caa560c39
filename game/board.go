package game

import "strings"

// Board is the 6x7 grid. Row 0 is the top row. The zero value is an empty board.
type Board struct {
	cells [Rows][Columns]Player
}

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

// Cell returns the occupant of a cell, Empty when out of range.
func (b *Board) Cell(row, column int) Player {
	if row < 0 || row >= Rows || column < 0 || column >= Columns {
		return Empty
	}
	return b.cells[row][column]
}

// Drop places the player's disc in the lowest empty cell of column and
// returns the row it landed in. The board is unchanged on error.
func (b *Board) Drop(column int, player Player) (int, error) {
	if column < 0 || column >= Columns {
		return -1, ErrInvalidColumn
	}
	if !player.Valid() {
		return -1, ErrInvalidPlayer
	}
	for row := Rows - 1; row >= 0; row-- {
		if b.cells[row][column] == Empty {
			b.cells[row][column] = player
			return row, nil
		}
	}
	return -1, ErrColumnFull
}

// Undo clears the topmost disc of column and returns the row it was in.
// Only the search uses it, to revert its own most recent drop.
func (b *Board) Undo(column int) (int, error) {
	if column < 0 || column >= Columns {
		return -1, ErrInvalidColumn
	}
	for row := 0; row < Rows; row++ {
		if b.cells[row][column] != Empty {
			b.cells[row][column] = Empty
			return row, nil
		}
	}
	return -1, ErrColumnEmpty
}

func (b *Board) IsColumnAvailable(column int) bool {
	if column < 0 || column >= Columns {
		return false
	}
	return b.cells[0][column] == Empty
}

// AvailableMoves returns the columns with space left, in ascending order.
func (b *Board) AvailableMoves() []int {
	moves := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if b.cells[0][col] == Empty {
			moves = append(moves, col)
		}
	}
	return moves
}

func (b *Board) IsFull() bool {
	for col := 0; col < Columns; col++ {
		if b.cells[0][col] == Empty {
			return false
		}
	}
	return true
}

// ColumnHeight counts the discs in column.
func (b *Board) ColumnHeight(column int) int {
	if column < 0 || column >= Columns {
		return 0
	}
	height := 0
	for row := Rows - 1; row >= 0 && b.cells[row][column] != Empty; row-- {
		height++
	}
	return height
}

// Count returns the number of discs the player has on the board.
func (b *Board) Count(player Player) int {
	n := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if b.cells[row][col] == player {
				n++
			}
		}
	}
	return n
}

// Clone returns an independent copy. The grid is an array so a value copy shares nothing.
func (b *Board) Clone() Board {
	return *b
}

// String prints the grid top row first with a rule underneath.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < Rows; row++ {
		cells := make([]string, Columns)
		for col := 0; col < Columns; col++ {
			cells[col] = b.cells[row][col].String()
		}
		sb.WriteString(strings.Join(cells, " | "))
		sb.WriteByte('\n')
	}
	sb.WriteString(strings.Repeat("-", 26))
	sb.WriteByte('\n')
	return sb.String()
}
