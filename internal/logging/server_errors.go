// Copyright (c) 2025 QRZ Lookup
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"strings"
)

// ServerErrorType represents the category of a QRZ Session.Error message.
type ServerErrorType int

const (
	ServerErrorUnknown ServerErrorType = iota
	ServerErrorNotFound
	ServerErrorAuth
	ServerErrorSession
	ServerErrorSubscription
)

// ParseServerError categorizes a server-reported error message
func ParseServerError(msg string) ServerErrorType {
	lower := strings.ToLower(msg)

	if strings.HasPrefix(lower, "not found") {
		return ServerErrorNotFound
	}
	if strings.Contains(lower, "password") || strings.Contains(lower, "username") {
		return ServerErrorAuth
	}
	if strings.Contains(lower, "session") {
		return ServerErrorSession
	}
	if strings.Contains(lower, "subscription") {
		return ServerErrorSubscription
	}

	return ServerErrorUnknown
}

// ServerHint returns a short suggestion for a server-reported error, or "" when
// there is nothing useful to add.
func ServerHint(msg string) string {
	switch ParseServerError(msg) {
	case ServerErrorNotFound:
		return "QRZ has no record for that callsign"
	case ServerErrorAuth:
		return "Check --username/--password, or run 'qrz-lookup login' to update saved credentials"
	case ServerErrorSession:
		return "The session key was rejected; run the lookup again to start a fresh session"
	case ServerErrorSubscription:
		return "Some record fields require a QRZ XML Logbook Data subscription"
	default:
		return ""
	}
}
