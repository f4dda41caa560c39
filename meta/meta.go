// meta/meta.go
package meta

import "connectfour/game"

// Search depths offered by the menu.
const (
	DepthEasy   = 4
	DepthMedium = 5
	DepthHard   = 7
)

// DefaultDepth is used when no depth is configured.
const DefaultDepth = DepthMedium

// MAX_TURNS bounds a game: every cell filled once.
const MAX_TURNS = game.Rows * game.Columns

// GO_ROUTINES defines the default number of root search goroutines.
const GO_ROUTINES = 1

// EPISODES defines the number of games per experiment matchup.
const EPISODES = 10
