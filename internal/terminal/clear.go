// Package terminal provides utilities for interactive terminal use: detecting a
// TTY, reading a password without echo and clearing prompts after input.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// Prompt writes prompt to w and reads one trimmed line from r.
func Prompt(r *bufio.Reader, w io.Writer, prompt string) (string, error) {
	fmt.Fprint(w, prompt)
	line, err := r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadPassword writes prompt to w and reads a line from in without echo.
// in must be a terminal.
func ReadPassword(in *os.File, w io.Writer, prompt string) (string, error) {
	fmt.Fprint(w, prompt)
	b, err := term.ReadPassword(int(in.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ClearPreviousLines clears text that was previously printed to w.
// It calculates how many lines were used by the text based on the current
// terminal width (80 when unknown), then moves up and clears each line,
// plus the empty line left after the user pressed Enter.
func ClearPreviousLines(w io.Writer, textLength int) {
	fmt.Fprint(w, clearSequence(textLength, width(w)))
}

func width(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			return cols
		}
	}
	return 80
}

func clearSequence(textLength, termWidth int) string {
	totalLines := int(math.Ceil(float64(textLength) / float64(termWidth)))
	if totalLines < 1 {
		totalLines = 1
	}
	linesToClear := totalLines + 1

	var b strings.Builder
	for i := 0; i < linesToClear; i++ {
		b.WriteString("\r\x1b[2K") // start of line, clear it
		if i < linesToClear-1 {
			b.WriteString("\x1b[1A") // up one
		}
	}
	return b.String()
}
