package auth

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"qrzlookup/cli/internal/qrz"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSessionDump_PrettyJSONAndOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "qrz-session.json")

	first := Session{Key: "AAA", Raw: qrz.Session{Key: "AAA", Count: "1", GMTime: "Sun Oct 18 21:58:19 2026"}}
	require.NoError(t, WriteSessionDump(path, first))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "\n  \"Key\": \"AAA\"")

	second := Session{Key: "BBB", Raw: qrz.Session{Key: "BBB"}}
	require.NoError(t, WriteSessionDump(path, second))

	b, err = os.ReadFile(path)
	require.NoError(t, err)
	var got qrz.Session
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, qrz.Session{Key: "BBB"}, got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestWriteSessionDump_EmptyPathIsNoop(t *testing.T) {
	assert.NoError(t, WriteSessionDump("", Session{Key: "x"}))
}

func TestRemoveSessionDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qrz-session.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

	require.NoError(t, RemoveSessionDump(path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, RemoveSessionDump(path), "missing file is fine")
	assert.NoError(t, RemoveSessionDump(""))
}
