package gamemaster

import (
	"fmt"

	"connectfour/game"
	"connectfour/meta"

	"github.com/rs/zerolog/log"
)

const (
	ErrGameOver    game.Error = "game is over - no moves allowed"
	ErrNotYourTurn game.Error = "not your turn"
)

// Update describes one applied move and the board it produced.
type Update struct {
	Column int
	Row    int
	Player game.Player
	Board  game.Board
	Result game.Result
}

// UpdateGetter returns the next pending update without blocking. ok is false
// when no update is pending or the game is over and all updates were read.
type UpdateGetter func() (u Update, ok bool)

// Engine is a single game session: whose turn it is, the board and the result.
type Engine interface {
	Init(first game.Player) (game.Board, UpdateGetter)
	Play(column int) (row int, err error)
	PlayAs(player game.Player, column int) (row int, err error)
	Turn() game.Player
	Board() game.Board
	Result() game.Result
}

type localEngine struct {
	board    game.Board
	turn     game.Player
	result   game.Result
	moves    int
	updateCh chan Update
}

func NewLocalEngine() *localEngine {
	return &localEngine{}
}

// Init starts a new game on an empty board. It also serves as restart.
func (e *localEngine) Init(first game.Player) (game.Board, UpdateGetter) {
	if !first.Valid() {
		first = game.PlayerA
	}
	e.board = game.NewBoard()
	e.turn = first
	e.result = game.Result{Status: game.Ongoing}
	e.moves = 0
	// One slot per cell so Play never blocks on an unread update
	updateCh := make(chan Update, meta.MAX_TURNS)
	e.updateCh = updateCh

	log.Info().Msgf("new game, %s to move", first)

	return e.board.Clone(), func() (Update, bool) {
		select {
		case u, ok := <-updateCh:
			return u, ok
		default:
			return Update{}, false
		}
	}
}

// Play drops a disc for the player whose turn it is.
func (e *localEngine) Play(column int) (int, error) {
	return e.PlayAs(e.turn, column)
}

// PlayAs drops a disc for player, which must be the player to move. The
// session is unchanged when an error is returned.
func (e *localEngine) PlayAs(player game.Player, column int) (int, error) {
	if e.updateCh == nil {
		e.Init(game.PlayerA)
	}
	if e.result.Over() {
		return -1, ErrGameOver
	}
	if player != e.turn {
		return -1, fmt.Errorf("%s tried to move on %s's turn: %w", player, e.turn, ErrNotYourTurn)
	}

	row, err := e.board.Drop(column, player)
	if err != nil {
		return -1, fmt.Errorf("column %d: %w", column+1, err)
	}
	e.moves++
	e.result = game.Outcome(&e.board)

	e.updateCh <- Update{
		Column: column,
		Row:    row,
		Player: player,
		Board:  e.board.Clone(),
		Result: e.result,
	}

	if e.result.Over() {
		log.Info().Msgf("game over after %d moves: %s", e.moves, e.result)
		close(e.updateCh)
		return row, nil
	}

	e.turn = player.Opponent()
	return row, nil
}

func (e *localEngine) Turn() game.Player {
	return e.turn
}

// Board returns a copy of the current board.
func (e *localEngine) Board() game.Board {
	return e.board.Clone()
}

func (e *localEngine) Result() game.Result {
	return e.result
}

func (e *localEngine) Moves() int {
	return e.moves
}
