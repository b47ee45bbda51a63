// Copyright (c) 2025 QRZ Lookup
// Licensed under the MIT License. See LICENSE file in the project root for details.

package lookup

import (
	"context"
	"log/slog"

	apperrors "qrzlookup/cli/internal/errors"
	"qrzlookup/cli/internal/logging"
	"qrzlookup/cli/internal/qrz"
)

// Resolver queries one callsign with an established session key.
type Resolver struct {
	api qrz.API
	log *slog.Logger
}

// NewResolver constructs a Resolver on top of a directory client.
func NewResolver(api qrz.API, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Resolver{api: api, log: log}
}

// Resolve looks up callsign and normalizes the result.
//
// The response decides the outcome: a Callsign element is normalized; a
// Session.Error without a Callsign becomes a server error carrying the text
// verbatim (e.g. "Not found: ZZ9ZZZ"); anything else is a protocol error.
func (r *Resolver) Resolve(ctx context.Context, callsign, sessionKey string) (Record, error) {
	if sessionKey == "" {
		return Record{}, apperrors.New(apperrors.Usage, "a session key is required to query a callsign")
	}

	r.log.DebugContext(ctx, "querying callsign", "callsign", callsign)
	env, err := r.api.Lookup(ctx, sessionKey, callsign)
	if err != nil {
		return Record{}, err
	}
	logging.DebugJSON(ctx, r.log, "lookup envelope", env)

	if env.Session != nil && env.Session.Message != "" {
		r.log.InfoContext(ctx, "server message", "message", env.Session.Message)
	}

	switch {
	case env.Callsign != nil:
		return Normalize(*env.Callsign), nil
	case env.Session != nil && env.Session.Error != "":
		return Record{}, apperrors.New(apperrors.Server, env.Session.Error)
	default:
		return Record{}, apperrors.New(apperrors.Protocol, "malformed response: neither Callsign nor Session.Error present")
	}
}
