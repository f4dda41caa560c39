package game

// CheckWin reports whether player has four contiguous discs horizontally,
// vertically or on either diagonal. Every window is scanned from scratch.
func CheckWin(b *Board, player Player) bool {
	if !player.Valid() {
		return false
	}

	// Horizontal
	for row := 0; row < Rows; row++ {
		for col := 0; col <= Columns-ToWin; col++ {
			if b.window(row, col, 0, 1, player) {
				return true
			}
		}
	}

	// Vertical
	for row := 0; row <= Rows-ToWin; row++ {
		for col := 0; col < Columns; col++ {
			if b.window(row, col, 1, 0, player) {
				return true
			}
		}
	}

	// Diagonal \
	for row := 0; row <= Rows-ToWin; row++ {
		for col := 0; col <= Columns-ToWin; col++ {
			if b.window(row, col, 1, 1, player) {
				return true
			}
		}
	}

	// Diagonal /
	for row := 0; row <= Rows-ToWin; row++ {
		for col := ToWin - 1; col < Columns; col++ {
			if b.window(row, col, 1, -1, player) {
				return true
			}
		}
	}

	return false
}

func (b *Board) window(row, col, dRow, dCol int, player Player) bool {
	for i := 0; i < ToWin; i++ {
		if b.cells[row+i*dRow][col+i*dCol] != player {
			return false
		}
	}
	return true
}

// GameOver reports whether either player has won or the board is full.
func GameOver(b *Board) bool {
	return CheckWin(b, PlayerA) || CheckWin(b, PlayerB) || b.IsFull()
}
