// Copyright (c) 2025 QRZ Lookup
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package auth implements the QRZ session handshake.
// Account credentials are exchanged for a short-lived session key that
// authorizes the following callsign query. Sessions are never reused across
// invocations; the only thing persisted is a diagnostic dump of the last
// session envelope. Saved credentials (from `qrz-lookup login`) live in the
// OS keychain.
package auth

import (
	"context"
	"log/slog"

	apperrors "qrzlookup/cli/internal/errors"
	"qrzlookup/cli/internal/logging"
	"qrzlookup/cli/internal/qrz"
)

// Service exchanges credentials for a session against the directory API.
type Service struct {
	api qrz.API
	log *slog.Logger
}

// NewService constructs an auth Service on top of a directory client.
func NewService(api qrz.API, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{api: api, log: log}
}

// Authenticate performs the login call.
//
// A server-side rejection (bad credentials, suspended account) is not an
// error: the returned Session carries the server's message in Error and no
// Key. Errors are reserved for transport failures and for responses whose
// Session element is missing or carries neither a key nor an error.
func (s *Service) Authenticate(ctx context.Context, creds Credentials) (Session, error) {
	if err := creds.Validate(); err != nil {
		return Session{}, err
	}

	s.log.DebugContext(ctx, "authenticating", "username", creds.Username)
	env, err := s.api.Login(ctx, creds.Username, creds.Password)
	if err != nil {
		return Session{}, err
	}
	logging.DebugJSON(ctx, s.log, "login envelope", env)

	if env.Session == nil {
		return Session{}, apperrors.New(apperrors.Protocol, "login response has no Session element")
	}
	raw := *env.Session
	if raw.Message != "" {
		s.log.InfoContext(ctx, "server message", "message", raw.Message)
	}

	switch {
	case raw.Key != "":
		s.log.InfoContext(ctx, "session established", "lookups", raw.Count, "subscription_expires", raw.SubExp)
		return Session{Key: raw.Key, Raw: raw}, nil
	case raw.Error != "":
		s.log.InfoContext(ctx, "login rejected", "error", raw.Error)
		return Session{Error: raw.Error, Raw: raw}, nil
	default:
		return Session{}, apperrors.New(apperrors.Protocol, "login response carries neither Session.Key nor Session.Error")
	}
}
