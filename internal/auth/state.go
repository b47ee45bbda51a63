// Copyright (c) 2025 QRZ Lookup
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"qrzlookup/cli/internal/qrz"
)

// Session is the outcome of a login call. Exactly one of Key and Error is set.
type Session struct {
	Key   string
	Error string
	// Raw is the Session element as received, kept for the diagnostic dump.
	Raw qrz.Session
}

// OK reports whether the session carries a usable key.
func (s Session) OK() bool { return s.Key != "" }

// WriteSessionDump writes the raw session envelope as indented JSON to path,
// overwriting any previous dump. The parent directory is created if missing.
func WriteSessionDump(path string, s Session) error {
	if path == "" {
		return nil
	}
	b, err := json.MarshalIndent(s.Raw, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// RemoveSessionDump deletes the dump at path. A missing file is not an error.
func RemoveSessionDump(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
