package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("qrz-lookup", pflag.ContinueOnError)
	fs.String("username", "", "")
	fs.String("password", "", "")
	fs.String("endpoint", DefaultEndpoint, "")
	fs.Duration("timeout", 10*time.Second, "")
	fs.String("session-file", "", "")
	fs.CountP("verbose", "v", "")
	fs.Bool("json", false, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func isolate(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(base, "state"))
	for _, k := range []string{"QRZ_USERNAME", "QRZ_PASSWORD", "QRZ_ENDPOINT", "QRZ_TIMEOUT", "QRZ_SESSION_FILE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return base
}

func TestLoad_Defaults(t *testing.T) {
	base := isolate(t)

	c, err := Load(newFlags(t), "")
	require.NoError(t, err)

	assert.Equal(t, DefaultEndpoint, c.Endpoint)
	assert.Equal(t, 10*time.Second, c.Timeout)
	assert.Equal(t, filepath.Join(base, "state", "qrz-lookup", SessionFileName), c.SessionFile)
	assert.False(t, c.HasCredentials())
	assert.Zero(t, c.Verbose)
	assert.False(t, c.JSON)
}

func TestLoad_FlagsOnly(t *testing.T) {
	isolate(t)

	c, err := Load(newFlags(t, "--username", "n0call", "--password", "pw", "-vv", "--json"), "")
	require.NoError(t, err)

	assert.Equal(t, "n0call", c.Username)
	assert.Equal(t, "pw", c.Password)
	assert.Equal(t, 2, c.Verbose)
	assert.True(t, c.JSON)
	assert.True(t, c.HasCredentials())
}

func TestLoad_Precedence(t *testing.T) {
	base := isolate(t)

	file := filepath.Join(base, "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte("username: from-file\npassword: file-pw\ntimeout: 3s\n"), 0o600))
	t.Setenv("QRZ_PASSWORD", "env-pw")

	c, err := Load(newFlags(t, "--username", "from-flag"), file)
	require.NoError(t, err)

	assert.Equal(t, "from-flag", c.Username, "flag beats file")
	assert.Equal(t, "env-pw", c.Password, "env beats file")
	assert.Equal(t, 3*time.Second, c.Timeout)
}

func TestLoad_DefaultConfigFileInXDGDir(t *testing.T) {
	base := isolate(t)

	dir := filepath.Join(base, "config", "qrz-lookup")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "qrz-lookup.yaml"),
		[]byte("endpoint: http://127.0.0.1:9/xml/\nsession_file: /tmp/dump.json\n"), 0o600))

	c, err := Load(newFlags(t), "")
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:9/xml/", c.Endpoint)
	assert.Equal(t, "/tmp/dump.json", c.SessionFile)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	base := isolate(t)

	_, err := Load(newFlags(t), filepath.Join(base, "nope.yaml"))
	assert.Error(t, err)
}

func TestRedacted(t *testing.T) {
	c := Config{Username: "n0call", Password: "secret"}
	r := c.Redacted()

	assert.Equal(t, "***", r.Password)
	assert.Equal(t, "secret", c.Password, "original untouched")
	assert.Equal(t, "", Config{}.Redacted().Password)
}
