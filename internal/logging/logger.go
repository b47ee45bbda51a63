// Copyright (c) 2025 QRZ Lookup
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/pterm/pterm"
)

// LevelFor maps the repeatable --verbose count to a pterm log level.
// 0 keeps warnings only, 1 adds informational messages, 2 and above add debug output.
func LevelFor(verbosity int) pterm.LogLevel {
	switch {
	case verbosity <= 0:
		return pterm.LogLevelWarn
	case verbosity == 1:
		return pterm.LogLevelInfo
	default:
		return pterm.LogLevelDebug
	}
}

// New returns a structured logger rendering through pterm on w.
func New(w io.Writer, verbosity int) *slog.Logger {
	pl := pterm.DefaultLogger.WithLevel(LevelFor(verbosity)).WithWriter(w)
	return slog.New(pterm.NewSlogHandler(pl))
}

// DebugJSON logs v as indented, masked JSON at debug level. It is a no-op
// unless debug output is enabled.
func DebugJSON(ctx context.Context, log *slog.Logger, msg string, v any) {
	if log == nil || !log.Enabled(ctx, slog.LevelDebug) {
		return
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.DebugContext(ctx, msg, "error", err)
		return
	}
	log.DebugContext(ctx, msg+"\n"+Mask(string(b)))
}
