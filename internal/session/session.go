// internal/session/session.go
//
// Top-level interactive loop.
// Responsibilities:
//   - Greet the user once, then show the main menu repeatedly.
//   - "play game": draw a fresh secret, run a round, report win or quit.
//   - "exit": leave the loop.
//   - Record every finished round in the history store (best effort).
//
// Invalid menu answers just re-show the menu. Only I/O failures and the
// ErrUnknown invariant violation end Run with an error.

package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guessing-game/internal/console"
	"github.com/robalobadob/guessing-game/internal/game"
	"github.com/robalobadob/guessing-game/internal/menu"
	"github.com/robalobadob/guessing-game/internal/secret"
	"github.com/robalobadob/guessing-game/internal/store"
)

const (
	choicePlay = 1
	choiceExit = 2
)

// Options are the main menu labels, in display order.
var Options = []string{"play game", "exit"}

// Welcome is printed once at startup.
const Welcome = "Welcome to the guessing game!\n\n"

// Driver owns the I/O pair, the secret source and the history.
type Driver struct {
	w       io.Writer
	r       console.LineReader
	secrets *secret.Provider
	bounds  game.Bounds
	history store.Store
}

// Option tweaks a Driver.
type Option func(*Driver)

// WithBounds sets the secret range. Callers must keep Min < Max.
func WithBounds(b game.Bounds) Option {
	return func(d *Driver) { d.bounds = b }
}

// WithSecrets replaces the secret provider.
func WithSecrets(p *secret.Provider) Option {
	return func(d *Driver) { d.secrets = p }
}

// WithStore records finished rounds in s instead of a private memory store.
func WithStore(s store.Store) Option {
	return func(d *Driver) { d.history = s }
}

// New constructs a Driver over w and r.
func New(w io.Writer, r console.LineReader, opts ...Option) *Driver {
	d := &Driver{
		w:      w,
		r:      r,
		bounds: game.DefaultBounds,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.secrets == nil {
		d.secrets = secret.New()
	}
	if d.history == nil {
		d.history = store.NewMemoryStore()
	}
	return d
}

// Run plays until the user picks "exit".
func (d *Driver) Run(ctx context.Context) error {
	if err := console.Write(d.w, Welcome); err != nil {
		return err
	}

	for {
		choice, err := menu.Show(Options, d.w, d.r)
		if errors.Is(err, menu.ErrInvalidChoice) {
			if err := console.Writef(d.w, "%s\n", err); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}

		switch choice {
		case choicePlay:
			if err := d.playRound(ctx); err != nil {
				return err
			}
		case choiceExit:
			log.Debug().Msg("exit selected")
			return nil
		default:
			if err := console.Writef(d.w, "%s\n", menu.ErrInvalidChoice); err != nil {
				return err
			}
		}
	}
}

func (d *Driver) playRound(ctx context.Context) error {
	value := d.secrets.Generate(d.bounds.Min, d.bounds.Max)
	round := game.New(value, d.bounds, d.w, d.r)
	log.Debug().Str("round", round.ID).Msg("round started")

	err := round.Play()
	switch {
	case errors.Is(err, game.ErrQuit):
		if err := console.Write(d.w, "You quit. "); err != nil {
			return err
		}
	case err != nil:
		return err
	case round.Outcome() != game.OutcomeWon:
		_ = console.Write(d.w, "An unknown Error occurred.")
		return fmt.Errorf("round %s ended without a result: %w", round.ID, game.ErrUnknown)
	default:
		if err := console.Write(d.w, "You won!\n"); err != nil {
			return err
		}
	}

	d.record(ctx, round)
	return console.Write(d.w, "Play again?\n")
}

// record saves the round summary; failures are logged and otherwise ignored.
func (d *Driver) record(ctx context.Context, round *game.Round) {
	rec, ok := round.Record()
	if !ok {
		return
	}
	if err := d.history.Save(ctx, &rec); err != nil {
		log.Warn().Err(err).Str("round", rec.ID).Msg("save round")
		return
	}
	log.Info().
		Str("round", rec.ID).
		Str("outcome", string(rec.Outcome)).
		Int("attempts", rec.Attempts).
		Dur("elapsed", rec.Duration()).
		Msg("round finished")
}
