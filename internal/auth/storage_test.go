package auth

import (
	"testing"

	apperrors "qrzlookup/cli/internal/errors"
	"qrzlookup/cli/internal/keychain"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialsRoundTripThroughKeychain(t *testing.T) {
	store := keychain.NewManagerWithKeyring(keyring.NewArrayKeyring(nil))

	_, err := LoadCredentials(store)
	assert.ErrorIs(t, err, keychain.ErrNotFound)

	require.NoError(t, SaveCredentials(store, creds))
	got, err := LoadCredentials(store)
	require.NoError(t, err)
	assert.Equal(t, creds, got)

	require.NoError(t, ClearCredentials(store))
	_, err = LoadCredentials(store)
	assert.ErrorIs(t, err, keychain.ErrNotFound)
}

func TestSaveCredentials_RejectsIncomplete(t *testing.T) {
	store := keychain.NewManagerWithKeyring(keyring.NewArrayKeyring(nil))

	err := SaveCredentials(store, Credentials{Username: "n0call"})
	assert.True(t, apperrors.Is(err, apperrors.Usage))
}

func TestLoadCredentials_Corrupt(t *testing.T) {
	ring := keyring.NewArrayKeyring([]keyring.Item{{Key: keychain.KeyCredentials, Data: []byte("not json")}})

	_, err := LoadCredentials(keychain.NewManagerWithKeyring(ring))
	assert.Error(t, err)
}
