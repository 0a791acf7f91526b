package menu

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func input(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s + "\n"))
}

func TestShowPrintsHeaderAndOptions(t *testing.T) {
	var out bytes.Buffer
	if _, err := Show([]string{"first", "second"}, &out, input("1")); err != nil {
		t.Fatalf("show: %v", err)
	}
	want := "\nPlease choose from the following...\n1) first\n2) second\n> \n"
	if out.String() != want {
		t.Fatalf("expected %q, got %q", want, out.String())
	}
}

func TestShowValidChoices(t *testing.T) {
	options := []string{"a", "b", "c"}
	for _, tt := range []struct {
		in   string
		want int
	}{
		{"1", 1},
		{"2", 2},
		{"3", 3},
		{" 2 ", 2},
	} {
		got, err := Show(options, io.Discard, input(tt.in))
		if err != nil {
			t.Fatalf("input %q: unexpected error %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("input %q: expected %d, got %d", tt.in, tt.want, got)
		}
	}
}

func TestShowInvalidChoices(t *testing.T) {
	for _, in := range []string{"not a number", "-1", "0", "2", "1.0", ""} {
		_, err := Show([]string{"choice"}, io.Discard, input(in))
		if !errors.Is(err, ErrInvalidChoice) {
			t.Fatalf("input %q: expected ErrInvalidChoice, got %v", in, err)
		}
		if err.Error() != "Invalid choice!" {
			t.Fatalf("input %q: expected message %q, got %q", in, "Invalid choice!", err.Error())
		}
	}
}

func TestShowIsRepeatable(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("2\n2\n"))
	options := []string{"play game", "exit"}

	first, err1 := Show(options, io.Discard, r)
	second, err2 := Show(options, io.Discard, r)
	if first != second || err1 != err2 {
		t.Fatalf("expected identical results, got (%d, %v) and (%d, %v)", first, err1, second, err2)
	}
}

func TestShowReadFailure(t *testing.T) {
	_, err := Show([]string{"choice"}, io.Discard, bufio.NewReader(strings.NewReader("")))
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if errors.Is(err, ErrInvalidChoice) {
		t.Fatal("read failures must not look like an invalid choice")
	}
}
