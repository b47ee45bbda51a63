// Package config builds the CLI configuration once at startup.
//
// Values are layered with viper: built-in defaults, then the optional
// qrz-lookup.yaml from the XDG config dir (or --config), then QRZ_* environment
// variables, then explicitly set command-line flags. The result is an immutable
// Config value handed to each component; nothing reads viper after Load returns.
package config

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"qrzlookup/cli/internal/xdg"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultEndpoint is the QRZ XML data service base URL.
const DefaultEndpoint = "https://xmldata.qrz.com/xml/current/"

// SessionFileName is the file name of the diagnostic session dump.
const SessionFileName = "qrz-session.json"

// Config holds the resolved settings for a single invocation.
type Config struct {
	Username    string        `mapstructure:"username"`
	Password    string        `mapstructure:"password"`
	Endpoint    string        `mapstructure:"endpoint"`
	Timeout     time.Duration `mapstructure:"timeout"`
	SessionFile string        `mapstructure:"session_file"`

	// Set from flags only.
	Verbose int  `mapstructure:"-"`
	JSON    bool `mapstructure:"-"`
}

// flag name -> config key
var boundFlags = map[string]string{
	"username":     "username",
	"password":     "password",
	"endpoint":     "endpoint",
	"timeout":      "timeout",
	"session-file": "session_file",
}

func defaults() map[string]any {
	return map[string]any{
		"endpoint":     DefaultEndpoint,
		"timeout":      10 * time.Second,
		"session_file": "",
	}
}

// Load resolves the configuration. configFile, when non-empty, must exist;
// the default qrz-lookup.yaml is optional.
func Load(flags *pflag.FlagSet, configFile string) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range defaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(xdg.AppName)
		if dir, err := xdg.ConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, err
		}
	}

	v.SetEnvPrefix("qrz")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range boundFlags {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return c, err
				}
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	if flags != nil {
		if n, err := flags.GetCount("verbose"); err == nil {
			c.Verbose = n
		}
		if j, err := flags.GetBool("json"); err == nil {
			c.JSON = j
		}
	}

	c.Username = strings.TrimSpace(c.Username)
	if c.SessionFile == "" {
		if dir, err := xdg.StateDir(); err == nil {
			c.SessionFile = filepath.Join(dir, SessionFileName)
		}
	}
	return c, nil
}

// Redacted returns a copy safe to print in diagnostics.
func (c Config) Redacted() Config {
	if c.Password != "" {
		c.Password = "***"
	}
	return c
}

// HasCredentials reports whether both username and password are set.
func (c Config) HasCredentials() bool {
	return c.Username != "" && c.Password != ""
}
