// Package menu prints a numbered list of options and reads the user's choice.
package menu

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/robalobadob/guessing-game/internal/console"
)

// ErrInvalidChoice covers every malformed or out-of-range answer.
var ErrInvalidChoice = errors.New("Invalid choice!")

// Header is printed before the options.
const Header = "\nPlease choose from the following...\n"

// Show prints options as "1) label" lines and returns the 1-based index the
// user picked. Parse failures, zero, negatives and indices past the end all
// yield ErrInvalidChoice. Read failures are returned as is.
func Show(options []string, w io.Writer, r console.LineReader) (int, error) {
	if err := console.Write(w, Header); err != nil {
		return 0, err
	}
	for i, opt := range options {
		if err := console.Writef(w, "%d) %s\n", i+1, opt); err != nil {
			return 0, err
		}
	}

	text, err := console.Prompt(w, r)
	if err != nil {
		return 0, fmt.Errorf("read choice: %w", err)
	}

	n, err := strconv.Atoi(text)
	if err != nil || n < 1 || n > len(options) {
		return 0, ErrInvalidChoice
	}
	return n, nil
}
