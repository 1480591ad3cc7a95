// Package nzsc is the boundary to the NZSC rules engine.
package nzsc

import "github.com/pkg/errors"

// WinningPoints ends the game.
const WinningPoints = 5

var (
	ErrWrongPhase    = errors.New("batch does not match the current phase")
	ErrIllegalChoice = errors.New("choice is not available")
	ErrGameOver      = errors.New("game is over")
)

// Referee scores a pair of simultaneous actions.
type Referee interface {
	PointsOf(actions [2]Action) [2]int
}

// Engine is a running game. Implementations are not safe for concurrent use.
type Engine interface {
	Referee
	Choices() Choices
	Scoreboard() Scoreboard
	Choose(batch BatchChoice) (Outcome, error)
}

// MovePoints scores two plain moves against each other.
func MovePoints(r Referee, a, b Move) [2]int {
	return r.PointsOf([2]Action{Use(a), Use(b)})
}
