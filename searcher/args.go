package searcher

import "connectfour/game"

// Search window bounds. Every evaluation lies strictly inside them.
const (
	negInf = game.LossScore - 1
	posInf = game.WinScore + 1
)
