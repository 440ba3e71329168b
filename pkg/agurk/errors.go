package agurk

import (
	"errors"
	"fmt"
)

// ErrNoGameWinner is returned when the game ended without a winner
var ErrNoGameWinner = errors.New("no game winner could be determined")

// PlayerCountError is an error on the number of players in the game
type PlayerCountError struct {
	Min int
	Max int
	Got int
}

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("player count not in valid range of [%d, %d]", p.Min, p.Max)
}

// GameError is returned by PlayGame if the game could not produce a winner.
// State is the game state that was reached.
type GameError struct {
	State GameState
	Err   error
}

func (g *GameError) Error() string {
	return g.Err.Error()
}

func (g *GameError) Unwrap() error {
	return g.Err
}
