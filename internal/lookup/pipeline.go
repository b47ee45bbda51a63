// Copyright (c) 2025 QRZ Lookup
// Licensed under the MIT License. See LICENSE file in the project root for details.

package lookup

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"qrzlookup/cli/internal/auth"
	apperrors "qrzlookup/cli/internal/errors"
)

// Stage is a state of a lookup run.
type Stage int

const (
	StageStart Stage = iota
	StageAuthenticating
	StageAuthFailed
	StageAuthenticated
	StageQuerying
	StageQueryFailed
	StageResolved
	StageRendered
)

func (s Stage) String() string {
	switch s {
	case StageStart:
		return "start"
	case StageAuthenticating:
		return "authenticating"
	case StageAuthFailed:
		return "auth_failed"
	case StageAuthenticated:
		return "authenticated"
	case StageQuerying:
		return "querying"
	case StageQueryFailed:
		return "query_failed"
	case StageResolved:
		return "resolved"
	case StageRendered:
		return "rendered"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Terminal reports whether no further transition is possible from s.
func (s Stage) Terminal() bool {
	return s == StageAuthFailed || s == StageQueryFailed || s == StageRendered
}

// Outcome is the result of Run. ServerMessage is set when the service
// rejected the login or the query; Record is set once the query resolved.
type Outcome struct {
	Stage         Stage
	Record        Record
	ServerMessage string
}

// Pipeline runs authenticate, query, normalize and render for one callsign.
type Pipeline struct {
	auth        *auth.Service
	resolver    *Resolver
	sessionFile string
	log         *slog.Logger
}

// NewPipeline wires the two steps together. sessionFile is where the
// diagnostic session dump goes; empty disables it.
func NewPipeline(authSvc *auth.Service, resolver *Resolver, sessionFile string, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Pipeline{auth: authSvc, resolver: resolver, sessionFile: sessionFile, log: log}
}

// Run performs the lookup and writes the program output to w: the rendered
// record on success, or the server's message when the login or the query was
// rejected. Transport and protocol failures are returned as errors and
// nothing is written to w.
func (p *Pipeline) Run(ctx context.Context, callsign string, creds auth.Credentials, w io.Writer, asJSON bool) (Outcome, error) {
	var o Outcome
	enter := func(s Stage) {
		o.Stage = s
		p.log.DebugContext(ctx, "lookup stage", "stage", s.String())
	}

	enter(StageAuthenticating)
	session, err := p.auth.Authenticate(ctx, creds)
	if err != nil {
		enter(StageAuthFailed)
		return o, err
	}
	if !session.OK() {
		enter(StageAuthFailed)
		o.ServerMessage = session.Error
		_, err := fmt.Fprintln(w, session.Error)
		return o, err
	}
	enter(StageAuthenticated)

	if err := auth.WriteSessionDump(p.sessionFile, session); err != nil {
		p.log.WarnContext(ctx, "could not write session dump", "path", p.sessionFile, "error", err)
	} else if p.sessionFile != "" {
		p.log.DebugContext(ctx, "session dump written", "path", p.sessionFile)
	}

	enter(StageQuerying)
	rec, err := p.resolver.Resolve(ctx, callsign, session.Key)
	if err != nil {
		enter(StageQueryFailed)
		if apperrors.Is(err, apperrors.Server) {
			o.ServerMessage = apperrors.MessageOf(err)
			_, werr := fmt.Fprintln(w, o.ServerMessage)
			return o, werr
		}
		return o, err
	}
	enter(StageResolved)
	o.Record = rec

	if err := Render(w, rec, asJSON); err != nil {
		return o, err
	}
	enter(StageRendered)
	return o, nil
}
