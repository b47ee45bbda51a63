// Copyright (c) 2025 QRZ Lookup
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package qrz provides the client for the QRZ XML licensee directory.
// It defines the API contract for the two calls the CLI makes (session login and
// callsign lookup) and an HTTP implementation that decodes the shared
// QRZDatabase envelope. Callers never see raw XML.
package qrz

import "context"

// API defines the directory operations the CLI depends on.
// Implementations may call the real service or provide fakes for tests.
type API interface {
	// Login exchanges account credentials for a session envelope.
	Login(ctx context.Context, username, password string) (*Envelope, error)
	// Lookup queries one callsign using a session key.
	Lookup(ctx context.Context, sessionKey, callsign string) (*Envelope, error)
}
