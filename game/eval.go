package game

import (
	"fmt"
	"sync"

	"golang.org/x/exp/rand"
)

// Score is a totally ordered position value from PlayerA's point of view.
type Score int

// Terminal sentinels. A heuristic value never exceeds Rows*Columns*8*ToWin (1344)
// in magnitude, so the sentinels dominate every non-terminal score.
const (
	WinScore  Score = 1_000_000
	LossScore Score = -WinScore
)

type halfLine struct {
	dRow, dCol int
}

// The eight directed half-lines: right, left, down-right, up-right,
// up-left, down-left, up, down. Row numbers grow downwards.
var halfLines = [8]halfLine{
	{0, 1}, {0, -1}, {1, 1}, {-1, 1}, {-1, -1}, {1, -1}, {-1, 0}, {1, 0},
}

var (
	up   = halfLine{-1, 0}
	down = halfLine{1, 0}
)

// EvaluateStreaks is the default evaluator: sentinels for a decided board,
// otherwise the difference of both players' streak scores.
func EvaluateStreaks(b *Board) Score {
	return evaluate(b, false)
}

// EvaluateLegacy reproduces the historical heuristic values, including the
// irregular handling of the two vertical half-lines.
func EvaluateLegacy(b *Board) Score {
	return evaluate(b, true)
}

func evaluate(b *Board, legacy bool) Score {
	if CheckWin(b, PlayerA) {
		return WinScore
	}
	if CheckWin(b, PlayerB) {
		return LossScore
	}
	return Score(streakScore(b, PlayerA, legacy) - streakScore(b, PlayerB, legacy))
}

// StreakScore sums, over every disc of player and every half-line whose
// four-cell window fits on the board, the number of player discs in that
// window. Empty cells are skipped; an opposing disc voids the window.
func StreakScore(b *Board, player Player) int {
	return streakScore(b, player, false)
}

// LegacyStreakScore is StreakScore with the historical vertical rules: the
// upward scan stops at an empty cell keeping its count, the downward scan
// voids the window on any cell that is not the player's.
func LegacyStreakScore(b *Board, player Player) int {
	return streakScore(b, player, true)
}

func streakScore(b *Board, player Player, legacy bool) int {
	total := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if b.cells[row][col] != player {
				continue
			}
			for _, d := range halfLines {
				endRow, endCol := row+(ToWin-1)*d.dRow, col+(ToWin-1)*d.dCol
				if endRow < 0 || endRow >= Rows || endCol < 0 || endCol >= Columns {
					continue
				}
				total += scanHalfLine(b, row, col, d, player, legacy)
			}
		}
	}
	return total
}

func scanHalfLine(b *Board, row, col int, d halfLine, player Player, legacy bool) int {
	count := 0
	for i := 0; i < ToWin; i++ {
		cell := b.cells[row+i*d.dRow][col+i*d.dCol]
		switch {
		case cell == player:
			count++
		case legacy && d == down:
			return 0
		case legacy && d == up && cell == Empty:
			return count
		case cell == Empty:
			continue
		default:
			return 0
		}
	}
	return count
}

// RandomBound limits the values of the random evaluator to [-RandomBound, RandomBound].
const RandomBound = 100

// EvaluateRandom returns an evaluator that keeps the terminal sentinels and
// scores every undecided board with a uniform random value. The same seed
// yields the same sequence of values. It is safe for concurrent use.
func EvaluateRandom(seed uint64) Evaluate {
	var mu sync.Mutex
	rng := rand.New(rand.NewSource(seed))
	return func(b *Board) Score {
		if CheckWin(b, PlayerA) {
			return WinScore
		}
		if CheckWin(b, PlayerB) {
			return LossScore
		}
		mu.Lock()
		defer mu.Unlock()
		return Score(rng.Intn(2*RandomBound+1) - RandomBound)
	}
}

// EvaluatorByName resolves the evaluator names accepted in configuration.
// seed is only used by the random evaluator.
func EvaluatorByName(name string, seed uint64) (Evaluate, error) {
	switch name {
	case "", "streaks", "symmetric":
		return EvaluateStreaks, nil
	case "legacy":
		return EvaluateLegacy, nil
	case "random":
		return EvaluateRandom(seed), nil
	}
	return nil, fmt.Errorf("unknown heuristic %q", name)
}
