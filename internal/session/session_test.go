package session

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/robalobadob/guessing-game/internal/game"
	"github.com/robalobadob/guessing-game/internal/store"
)

const menuText = "\nPlease choose from the following...\n1) play game\n2) exit\n> \n"

// fixed makes every secret equal to v.
func fixed(v int) Option { return WithBounds(game.Bounds{Min: v, Max: v + 1}) }

func run(t *testing.T, input string, opts ...Option) (string, error) {
	t.Helper()
	var out bytes.Buffer
	d := New(&out, bufio.NewReader(strings.NewReader(input)), opts...)
	err := d.Run(context.Background())
	return out.String(), err
}

func TestRunExitImmediately(t *testing.T) {
	out, err := run(t, "2\n")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := Welcome + menuText
	if out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestRunWinThenExit(t *testing.T) {
	out, err := run(t, "1\n7\n2\n", fixed(7))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := Welcome +
		menuText +
		"Guess a number...\n> \nCorrect! You won!\nPlay again?\n" +
		menuText
	if out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestRunQuitThenExit(t *testing.T) {
	out, err := run(t, "1\nquit\n2\n", fixed(7))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "Quitting...\nYou quit. Play again?\n") {
		t.Fatalf("expected quit report, got %q", out)
	}
	if strings.Contains(out, "You won!") {
		t.Fatalf("expected no win report, got %q", out)
	}
}

func TestRunInvalidChoiceReshowsMenu(t *testing.T) {
	out, err := run(t, "5\nabc\n2\n")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if n := strings.Count(out, "Invalid choice!\n"); n != 2 {
		t.Fatalf("expected 2 invalid choice messages, got %d in %q", n, out)
	}
	if n := strings.Count(out, menuText); n != 3 {
		t.Fatalf("expected menu shown 3 times, got %d", n)
	}
}

func TestRunSeveralRounds(t *testing.T) {
	out, err := run(t, "1\n3\n9\n5\n1\n5\n2\n", fixed(5))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if n := strings.Count(out, "You won!\n"); n != 2 {
		t.Fatalf("expected 2 wins, got %d", n)
	}
	if !strings.Contains(out, "3 is too low!") || !strings.Contains(out, "9 is too high!") {
		t.Fatalf("expected hints in output, got %q", out)
	}
}

func TestRunRecordsRounds(t *testing.T) {
	hist := store.NewMemoryStore()
	if _, err := run(t, "1\n4\n6\n1\nquit\n2\n", fixed(6), WithStore(hist)); err != nil {
		t.Fatalf("run: %v", err)
	}

	sum, err := hist.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	want := store.Summary{Rounds: 2, Won: 1, Quit: 1, BestAttempts: 2, AvgAttempts: 2}
	if sum != want {
		t.Fatalf("expected %+v, got %+v", want, sum)
	}
}

type brokenStore struct{ store.Store }

func (brokenStore) Save(context.Context, *game.Record) error { return errors.New("disk full") }

func TestRunIgnoresStoreFailures(t *testing.T) {
	out, err := run(t, "1\n2\n2\n", fixed(2), WithStore(brokenStore{}))
	if err != nil {
		t.Fatalf("expected store failure to be ignored, got %v", err)
	}
	if !strings.Contains(out, "You won!\nPlay again?\n") {
		t.Fatalf("expected round to complete, got %q", out)
	}
}

func TestRunInputClosedInMenu(t *testing.T) {
	_, err := run(t, "")
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestRunInputClosedInRound(t *testing.T) {
	_, err := run(t, "1\n50\n", fixed(7))
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if errors.Is(err, game.ErrUnknown) {
		t.Fatal("I/O failure must not be reported as ErrUnknown")
	}
}

func TestRunDefaultBoundsInInvalidMessage(t *testing.T) {
	out, err := run(t, "1\nseven\nquit\n2\n")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "Invalid input, please guess an integer belonging to [0,100] or enter 'quit' to quit playing.\n"
	if !strings.Contains(out, want) {
		t.Fatalf("expected %q in %q", want, out)
	}
}
