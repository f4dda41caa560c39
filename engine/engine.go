package engine

import (
	"connectfour/experiments/metrics"
	"connectfour/game"
)

const ErrIllegalMove game.Error = "illegal move"

type Runner interface {
	// Run plays a game until it is won or drawn
	Run() (result game.Result, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
