// Package xdg provides helpers to resolve XDG Base Directory paths for qrz-lookup.
// The config directory holds the optional qrz-lookup.yaml; the state directory
// holds the diagnostic session dump.
//
// Both fall back to the traditional locations under the home directory when the
// XDG environment variables are not set.
package xdg

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "qrz-lookup"

// ConfigDir returns the XDG config directory for qrz-lookup without creating it.
// It falls back to ~/.config/qrz-lookup when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	return resolve("XDG_CONFIG_HOME", ".config")
}

// StateDir returns the XDG state directory for qrz-lookup.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.local/state/qrz-lookup when XDG_STATE_HOME is unset.
func StateDir() (string, error) {
	dir, err := resolve("XDG_STATE_HOME", filepath.Join(".local", "state"))
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}

func resolve(env, homeRel string) (string, error) {
	base := os.Getenv(env)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, homeRel)
	}
	return filepath.Join(base, AppName), nil
}
