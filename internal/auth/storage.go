// Copyright (c) 2025 QRZ Lookup
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"encoding/json"
	"fmt"
	"strings"

	apperrors "qrzlookup/cli/internal/errors"
)

// Credentials is the QRZ account used for one invocation.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// MissingCredentialsMessage is the usage message for an incomplete account.
const MissingCredentialsMessage = "Need both username and password for logging into QRZ."

// Validate returns a usage error unless both fields are set.
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Username) == "" || c.Password == "" {
		return apperrors.New(apperrors.Usage, MissingCredentialsMessage)
	}
	return nil
}

// SecretStore persists serialized credentials. *keychain.Manager implements it.
type SecretStore interface {
	SaveCredentials(data []byte) error
	LoadCredentials() ([]byte, error)
	ClearCredentials() error
}

// SaveCredentials validates and stores c.
func SaveCredentials(store SecretStore, c Credentials) error {
	if err := c.Validate(); err != nil {
		return err
	}
	b, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return store.SaveCredentials(b)
}

// LoadCredentials reads saved credentials. Store errors, including "not
// found", are returned unchanged.
func LoadCredentials(store SecretStore) (Credentials, error) {
	var c Credentials
	data, err := store.LoadCredentials()
	if err != nil {
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("decode saved credentials: %w", err)
	}
	return c, nil
}

// ClearCredentials removes saved credentials.
func ClearCredentials(store SecretStore) error {
	return store.ClearCredentials()
}
