// Copyright (c) 2025 QRZ Lookup
// Licensed under the MIT License. See LICENSE file in the project root for details.

package qrz

import (
	"log/slog"
	"time"
)

// New creates a directory API implementation talking to baseURL.
// A zero timeout selects DefaultTimeout.
func New(baseURL string, timeout time.Duration, log *slog.Logger) API {
	return newHTTP(baseURL, timeout, log)
}
