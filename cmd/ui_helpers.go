package cmd

import (
	"io"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
)

// startSpinner shows a spinner with text on w until the returned function is
// called. The spinner line is removed when it stops. If the spinner cannot
// start, the returned function does nothing.
func startSpinner(w io.Writer, text string) func() {
	cursor.Hide()
	spinner, err := pterm.DefaultSpinner.
		WithWriter(w).
		WithRemoveWhenDone(true).
		Start(text)
	if err != nil {
		cursor.Show()
		return func() {}
	}
	return func() {
		_ = spinner.Stop()
		cursor.Show()
	}
}
