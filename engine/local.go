package engine

import (
	"fmt"
	"time"

	"connectfour/agent"
	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/gamemaster"
	"connectfour/meta"
	"connectfour/utils"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// WithObserver is called with every applied move, e.g. to print the board.
func WithObserver(observer func(gamemaster.Update)) Option {
	return func(e *Engine) {
		e.observer = observer
	}
}

// WithFirstPlayer sets who moves first. PlayerA by default.
func WithFirstPlayer(player game.Player) Option {
	return func(e *Engine) {
		if player.Valid() {
			e.first = player
		}
	}
}

type Engine struct {
	Session  gamemaster.Engine
	Agents   map[game.Player]agent.Agent
	first    game.Player
	observer func(gamemaster.Update)
}

// LocalEngine pairs agentA (X) and agentB (O) on a fresh session.
func LocalEngine(agentA, agentB agent.Agent, options ...Option) *Engine {
	if agentA == nil || agentB == nil {
		panic("need an agent for each player")
	}

	e := &Engine{
		Session: gamemaster.NewLocalEngine(),
		Agents: map[game.Player]agent.Agent{
			game.PlayerA: agentA,
			game.PlayerB: agentB,
		},
		first: game.PlayerA,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until the game is won or drawn.
func (e *Engine) Run() (game.Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	_, getUpdate := e.Session.Init(e.first)

	gameMetric := metrics.GameMetric{
		StartingPlayer: e.first.String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %s is starting", e.first)

	for step := 1; !e.Session.Result().Over() && step <= meta.MAX_TURNS; step++ {
		player := e.Session.Turn()
		board := e.Session.Board()

		move, err := e.Agents[player].FindMove(&board, player)
		if err != nil {
			return e.Session.Result(), gameMetric, moveMetrics, fmt.Errorf("%s failed to move: %w", player, err)
		}
		if !utils.Contains(board.AvailableMoves(), move.Column) {
			return e.Session.Result(), gameMetric, moveMetrics, fmt.Errorf("%s chose column %d: %w", player, move.Column+1, ErrIllegalMove)
		}
		if _, err := e.Session.PlayAs(player, move.Column); err != nil {
			return e.Session.Result(), gameMetric, moveMetrics, err
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player.String(),
			Score:        int(move.Score),
			SearchMetric: move.Metric,
		})

		for u, ok := getUpdate(); ok; u, ok = getUpdate() {
			if e.observer != nil {
				e.observer(u)
			}
		}
	}

	result := e.Session.Result()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	if result.Status == game.Won {
		gameMetric.Winner = result.Winner.String()
	}

	log.Info().Msgf("game ended after %d moves: %s", gameMetric.TotalMoves, result)

	return result, gameMetric, moveMetrics, nil
}
