// internal/console/console.go
//
// Line-oriented terminal helpers shared by the menu, the game loop and the
// session driver. Every component receives its writer and reader explicitly;
// nothing here touches os.Stdin or os.Stdout.

package console

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// PromptMarker is printed before every line read from the user.
const PromptMarker = "> "

// LineReader is the read side of the console. *bufio.Reader satisfies it.
type LineReader interface {
	ReadString(delim byte) (string, error)
}

// Write prints s to w.
func Write(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

// Writef prints a formatted message to w.
func Writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

// Prompt prints the prompt marker, reads one line, pads the output with an
// empty line and returns the trimmed input.
//
// A final line without a trailing newline is still returned. Reaching the end
// of input with nothing pending yields io.EOF.
func Prompt(w io.Writer, r LineReader) (string, error) {
	if err := Write(w, PromptMarker); err != nil {
		return "", err
	}

	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	if err := Write(w, "\n"); err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
