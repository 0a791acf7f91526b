// internal/game/types.go
//
// Core type definitions for the guessing game engine.
// Defines:
//   - Verdict: result of comparing one guess against the secret.
//   - Outcome: terminal result of a round (won/quit).
//   - Bounds:  the secret range of a round.
//   - Record:  summary of a finished round, as kept by the history store.

package game

import (
	"errors"
	"fmt"
	"time"
)

// Kind is the three-way comparison of a guess against the secret.
type Kind string

const (
	TooLow  Kind = "too_low"
	TooHigh Kind = "too_high"
	Correct Kind = "correct"
)

// Verdict carries the comparison result plus the guess for message formatting.
type Verdict struct {
	Kind  Kind
	Guess int
}

// Message renders the user-facing text of a verdict.
func (v Verdict) Message() string {
	switch v.Kind {
	case TooLow:
		return fmt.Sprintf("%d is too low!", v.Guess)
	case TooHigh:
		return fmt.Sprintf("%d is too high!", v.Guess)
	default:
		return "Correct! "
	}
}

// Outcome is how a round ended.
type Outcome string

const (
	OutcomeWon  Outcome = "won"
	OutcomeQuit Outcome = "quit"
)

var (
	// ErrQuit is returned by Play when the user typed "quit".
	ErrQuit = errors.New("game: quit")
	// ErrUnknown means the loop ended without a win or a quit. It is never
	// returned by a working engine.
	ErrUnknown = errors.New("game: unknown error")
)

// Bounds is the closed-open secret range [Min, Max).
type Bounds struct {
	Min int
	Max int
}

// DefaultBounds yields secrets in [0,100).
var DefaultBounds = Bounds{Min: 0, Max: 100}

// Record summarizes one finished round.
type Record struct {
	ID         string    `json:"id"`
	Secret     int       `json:"secret"`
	Attempts   int       `json:"attempts"`
	Outcome    Outcome   `json:"outcome"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// Duration is the wall time spent in the round.
func (r Record) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
