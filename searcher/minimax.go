package searcher

import (
	"fmt"
	"sync"

	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(m *Minimax)

// Minimax is a fixed-depth minimax search with alpha-beta pruning. PlayerA
// maximizes, PlayerB minimizes. A Minimax runs one search at a time.
type Minimax struct {
	depth      int
	goroutines int
	pruning    bool
	evaluate   game.Evaluate
	rng        *rand.Rand
	metrics    metrics.Collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		m.depth = depth
	}
}

// WithGoroutines explores the root moves concurrently. Each branch runs on
// its own board with its own window, so results match the sequential search.
func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithShuffle randomizes the move order at every node. Equal scores are then
// broken by the shuffled order instead of the lowest column.
func WithShuffle(seed uint64) Option {
	return func(m *Minimax) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// WithoutPruning disables alpha-beta cutoffs.
func WithoutPruning() Option {
	return func(m *Minimax) {
		m.pruning = false
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:      meta.DefaultDepth,
		goroutines: 1,
		pruning:    true,
		evaluate:   game.EvaluateStreaks,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

// Search returns the best column for player on board. The board is not modified.
func (m *Minimax) Search(board *game.Board, player game.Player) (Result, error) {
	if !player.Valid() {
		return Result{}, fmt.Errorf("search for %q: %w", player, game.ErrInvalidPlayer)
	}
	if m.depth < 1 {
		return Result{}, fmt.Errorf("depth %d: %w", m.depth, ErrInvalidDepth)
	}
	if game.GameOver(board) {
		return Result{}, ErrSearchOnTerminalBoard
	}

	m.metrics.Start(m.depth, m.goroutines, m.pruning)

	b := board.Clone()
	var score game.Score
	var column int
	if m.goroutines > 1 {
		score, column = m.fanOut(&b, player)
	} else {
		score, column = m.search(&b, player, m.depth, negInf, posInf, m.rng)
	}

	metric := m.metrics.Complete()
	log.Debug().Msgf("%s searched depth %d: column %d score %d (%d nodes, %d cutoffs)",
		player, m.depth, column, score, metric.Nodes, metric.Cutoffs)

	return Result{Column: column, Score: score, Metric: metric}, nil
}

// search returns the minimax value of b and the move reaching it, or -1 at a leaf.
// Moves are applied in place and reverted before the next sibling.
func (m *Minimax) search(b *game.Board, player game.Player, depth int, alpha, beta game.Score, rng *rand.Rand) (game.Score, int) {
	m.metrics.AddNode()

	if depth == 0 || game.GameOver(b) {
		m.metrics.AddLeaf()
		return m.evaluate(b), -1
	}

	moves := b.AvailableMoves()
	if rng != nil {
		rng.Shuffle(len(moves), func(i, j int) {
			moves[i], moves[j] = moves[j], moves[i]
		})
	}

	maximizing := player == game.PlayerA
	best, bestColumn := game.Score(0), -1
	for _, col := range moves {
		b.Drop(col, player) // col is available
		value, _ := m.search(b, player.Opponent(), depth-1, alpha, beta, rng)
		b.Undo(col)

		// Ties keep the first candidate
		if maximizing {
			if bestColumn == -1 || value > best {
				best, bestColumn = value, col
			}
			alpha = max(alpha, best)
		} else {
			if bestColumn == -1 || value < best {
				best, bestColumn = value, col
			}
			beta = min(beta, best)
		}

		if m.pruning && alpha >= beta {
			m.metrics.AddCutoff()
			break
		}
	}

	return best, bestColumn
}

// fanOut searches every root move on its own goroutine-owned clone with a
// full window and combines the results in move order.
func (m *Minimax) fanOut(b *game.Board, player game.Player) (game.Score, int) {
	m.metrics.AddNode()

	moves := b.AvailableMoves()
	rngs := make([]*rand.Rand, len(moves))
	if m.rng != nil {
		m.rng.Shuffle(len(moves), func(i, j int) {
			moves[i], moves[j] = moves[j], moves[i]
		})
		for i := range rngs {
			rngs[i] = rand.New(rand.NewSource(m.rng.Uint64()))
		}
	}

	task := make(chan int, len(moves))
	for i := range moves {
		task <- i
	}
	close(task)

	scores := make([]game.Score, len(moves))
	var wg sync.WaitGroup
	for i := 0; i < min(m.goroutines, len(moves)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				child := b.Clone()
				child.Drop(moves[i], player)
				scores[i], _ = m.search(&child, player.Opponent(), m.depth-1, negInf, posInf, rngs[i])
			}
		}()
	}
	wg.Wait()

	maximizing := player == game.PlayerA
	best, bestColumn := scores[0], moves[0]
	for i := 1; i < len(moves); i++ {
		if (maximizing && scores[i] > best) || (!maximizing && scores[i] < best) {
			best, bestColumn = scores[i], moves[i]
		}
	}
	return best, bestColumn
}
