// Copyright (c) 2025 QRZ Lookup
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain provides centralized, thread-safe keychain operations for qrz-lookup.
// The only secret kept is the QRZ account saved by `qrz-lookup login`, so lookups
// can run without --username/--password on the command line.
//
// Native backends are preferred: macOS Keychain, Windows Credential Manager, and
// Secret Service, KWallet or pass on Linux.
package keychain

import (
	"errors"
	"runtime"
	"sync"

	"github.com/99designs/keyring"
)

// Global keychain manager instance
var (
	globalManager *Manager
	mu            sync.Mutex
)

// ErrNotFound is returned when no item is stored under the requested key.
var ErrNotFound = errors.New("no saved credentials")

// Manager provides thread-safe operations on the OS keychain.
type Manager struct {
	mu   sync.RWMutex
	ring keyring.Keyring
}

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "qrz-lookup"

// KeyCredentials is the item holding the serialized QRZ account.
const KeyCredentials = "qrz_credentials"

// NewManager creates a new keychain manager with the OS keyring opened.
func NewManager() (*Manager, error) {
	ring, err := openRing()
	if err != nil {
		return nil, err
	}
	return &Manager{ring: ring}, nil
}

// NewManagerWithKeyring wraps an already opened keyring.
func NewManagerWithKeyring(ring keyring.Keyring) *Manager {
	return &Manager{ring: ring}
}

// GetManager returns the global keychain manager instance.
// If not initialized, it will be created on first call.
// If initialization fails, it will retry on subsequent calls.
func GetManager() (*Manager, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalManager != nil {
		return globalManager, nil
	}

	m, err := NewManager()
	if err != nil {
		return nil, err
	}
	globalManager = m
	return globalManager, nil
}

// openRing opens the OS keyring using native platform backends only.
func openRing() (keyring.Keyring, error) {
	var allowedBackends []keyring.BackendType
	switch runtime.GOOS {
	case "darwin":
		allowedBackends = []keyring.BackendType{keyring.KeychainBackend, keyring.PassBackend}
	case "windows":
		allowedBackends = []keyring.BackendType{keyring.WinCredBackend}
	case "linux", "freebsd", "openbsd":
		allowedBackends = []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.KWalletBackend,
			keyring.PassBackend,
		}
	default:
		return nil, errors.New("secure storage not supported on this OS")
	}

	cfg := keyring.Config{
		ServiceName:              ServiceName,
		AllowedBackends:          allowedBackends,
		PassPrefix:               ServiceName,
		WinCredPrefix:            ServiceName,
		KeychainTrustApplication: true,
		LibSecretCollectionName:  "login",
		KWalletAppID:             ServiceName,
		KWalletFolder:            ServiceName,
	}

	return keyring.Open(cfg)
}

// SaveCredentials stores the serialized account in the keychain.
// This method is thread-safe.
func (m *Manager) SaveCredentials(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.ring.Set(keyring.Item{
		Key:         KeyCredentials,
		Data:        data,
		Label:       "QRZ XML account",
		Description: "qrz-lookup saved credentials",
	})
}

// LoadCredentials retrieves the serialized account from the keychain.
// Returns ErrNotFound when nothing has been saved.
// This method is thread-safe.
func (m *Manager) LoadCredentials() ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	it, err := m.ring.Get(KeyCredentials)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(it.Data) == 0 {
		return nil, ErrNotFound
	}
	return it.Data, nil
}

// ClearCredentials removes the saved account. Removing a missing item is not an error.
// This method is thread-safe.
func (m *Manager) ClearCredentials() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ring.Remove(KeyCredentials); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return err
	}
	return nil
}
