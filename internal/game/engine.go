// internal/game/engine.go
//
// Core game engine for a single guessing round.
// Responsibilities:
//   - Compare guesses against the secret (Evaluate).
//   - Drive the prompt/read/evaluate loop until a win or an explicit quit.
//   - Count attempts and produce a Record for the history store.
//
// Notes:
//   - Guesses are parsed as unsigned 8-bit integers; anything else is either
//     the quit token or an invalid line that triggers a retry.
//   - randomID() is a compact hex identifier used to correlate log lines and
//     history rows.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guessing-game/internal/console"
)

// QuitToken ends a round early. Matching is exact and case-sensitive.
const QuitToken = "quit"

// Evaluate compares a guess to the secret.
func Evaluate(guess, secret int) Verdict {
	switch {
	case guess < secret:
		return Verdict{Kind: TooLow, Guess: guess}
	case guess > secret:
		return Verdict{Kind: TooHigh, Guess: guess}
	default:
		return Verdict{Kind: Correct, Guess: guess}
	}
}

// Round owns one play-through from secret to win or quit.
type Round struct {
	ID       string
	secret   int
	bounds   Bounds
	w        io.Writer
	r        console.LineReader
	attempts int
	started  time.Time
	finished time.Time
	outcome  Outcome
}

// New constructs a round for secret. bounds only shapes the invalid-input
// message; the secret is taken as given.
func New(secret int, bounds Bounds, w io.Writer, r console.LineReader) *Round {
	return &Round{
		ID:     randomID(),
		secret: secret,
		bounds: bounds,
		w:      w,
		r:      r,
	}
}

// Play prompts for guesses until the secret is found or the user quits.
// Returns nil on a win, ErrQuit on quit, or the underlying I/O error.
func (g *Round) Play() error {
	g.started = time.Now()
	defer func() { g.finished = time.Now() }()

	for {
		if err := console.Write(g.w, "Guess a number...\n"); err != nil {
			return err
		}
		text, err := console.Prompt(g.w, g.r)
		if err != nil {
			return fmt.Errorf("read guess: %w", err)
		}

		guess, err := strconv.ParseUint(text, 10, 8)
		if err != nil {
			if text == QuitToken {
				g.outcome = OutcomeQuit
				log.Debug().Str("round", g.ID).Int("attempts", g.attempts).Msg("round quit")
				if err := console.Write(g.w, "Quitting...\n"); err != nil {
					return err
				}
				return ErrQuit
			}
			if err := console.Write(g.w, g.invalidInput()); err != nil {
				return err
			}
			continue
		}

		g.attempts++
		v := Evaluate(int(guess), g.secret)
		if v.Kind == Correct {
			g.outcome = OutcomeWon
			log.Debug().Str("round", g.ID).Int("attempts", g.attempts).Msg("round won")
			return console.Write(g.w, v.Message())
		}
		if err := console.Writef(g.w, "%s\n\n", v.Message()); err != nil {
			return err
		}
	}
}

// Attempts is the number of lines that parsed as a guess.
func (g *Round) Attempts() int { return g.attempts }

// Outcome reports how the round ended; empty while it is still running or
// if it was interrupted by an I/O failure.
func (g *Round) Outcome() Outcome { return g.outcome }

// Record summarizes a finished round. ok is false if the round has not
// reached a terminal outcome.
func (g *Round) Record() (rec Record, ok bool) {
	if g.outcome == "" {
		return Record{}, false
	}
	return Record{
		ID:         g.ID,
		Secret:     g.secret,
		Attempts:   g.attempts,
		Outcome:    g.outcome,
		StartedAt:  g.started.UTC(),
		FinishedAt: g.finished.UTC(),
	}, true
}

func (g *Round) invalidInput() string {
	return fmt.Sprintf("Invalid input, please guess an integer belonging to [%d,%d] or enter '%s' to quit playing.\n",
		g.bounds.Min, g.bounds.Max, QuitToken)
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
