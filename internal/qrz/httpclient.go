// Copyright (c) 2025 QRZ Lookup
// Licensed under the MIT License. See LICENSE file in the project root for details.

package qrz

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	apperrors "qrzlookup/cli/internal/errors"
	"qrzlookup/cli/internal/logging"
)

// DefaultTimeout applies when the caller passes a zero timeout.
const DefaultTimeout = 10 * time.Second

// maxBody caps how much of a response is read.
const maxBody = 1 << 20

// HTTP implements API over the QRZ XML endpoint.
// Both calls are plain GETs against the same base URL, distinguished only by
// their query parameters.
type HTTP struct {
	// baseURL is the endpoint for all requests (e.g., "https://xmldata.qrz.com/xml/current/")
	baseURL string
	// client is the underlying HTTP client with configured timeout
	client *http.Client
	log    *slog.Logger
}

// newHTTP creates a new HTTP client with the given base URL and timeout.
func newHTTP(baseURL string, timeout time.Duration, log *slog.Logger) *HTTP {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &HTTP{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Login calls GET <base>?username=..&password=.. and returns the decoded envelope.
func (h *HTTP) Login(ctx context.Context, username, password string) (*Envelope, error) {
	q := url.Values{}
	q.Set("username", username)
	q.Set("password", password)
	return h.get(ctx, "login", q)
}

// Lookup calls GET <base>?s=..&callsign=.. and returns the decoded envelope.
func (h *HTTP) Lookup(ctx context.Context, sessionKey, callsign string) (*Envelope, error) {
	q := url.Values{}
	q.Set("s", sessionKey)
	q.Set("callsign", callsign)
	return h.get(ctx, "lookup", q)
}

func (h *HTTP) get(ctx context.Context, op string, q url.Values) (*Envelope, error) {
	u, err := url.Parse(h.baseURL)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Usage, "invalid endpoint URL", err)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Usage, "invalid endpoint URL", err)
	}
	req.Header.Set("Accept", "application/xml, text/xml, */*")
	req.Header.Set("User-Agent", "qrz-lookup/1.0")

	h.log.Debug("sending request", "op", op, "url", logging.Mask(u.String()))

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Transport, op+" request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperrors.Wrap(apperrors.Transport, op+" request failed",
			fmt.Errorf("unexpected HTTP status %s", resp.Status))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Transport, op+" response read failed", err)
	}
	h.log.Debug("received response", "op", op, "status", resp.StatusCode, "bytes", len(body))

	return Decode(body)
}
