// Copyright (c) 2025 QRZ Lookup
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for qrz-lookup.
// The root command looks up a single callsign in the QRZ XML directory;
// subcommands manage saved credentials. Commands are built on Cobra and use
// pterm for terminal output. Program output (the record or the server's
// message) goes to stdout; diagnostics go to stderr.
package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"qrzlookup/cli/internal/auth"
	"qrzlookup/cli/internal/config"
	apperrors "qrzlookup/cli/internal/errors"
	"qrzlookup/cli/internal/httperrors"
	"qrzlookup/cli/internal/keychain"
	"qrzlookup/cli/internal/logging"
	"qrzlookup/cli/internal/lookup"
	"qrzlookup/cli/internal/qrz"
	"qrzlookup/cli/internal/terminal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	showVersion bool
	configFile  string
)

// rootCmd looks up one callsign.
var rootCmd = &cobra.Command{
	Use:   "qrz-lookup <callsign>",
	Short: "Look up a callsign on QRZ",
	Long: `qrz-lookup logs in to the QRZ XML data service, looks up a US amateur radio
callsign and prints the licensee's name, or the full normalized record with --json.

Credentials come from --username/--password, the QRZ_USERNAME/QRZ_PASSWORD
environment variables, the config file, or the OS keychain (see 'qrz-lookup login').`,
	Example: `  qrz-lookup W1AW --username n0call --password secret
  qrz-lookup W1AW --json -vv`,
	Args:          callsignArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Fprintf(cmd.OutOrStdout(), "qrz-lookup %s\n", Version)
			return nil
		}

		cfg, err := config.Load(cmd.Flags(), configFile)
		if err != nil {
			return apperrors.Wrap(apperrors.Usage, "could not load configuration", err)
		}
		log := logging.New(cmd.ErrOrStderr(), cfg.Verbose)
		if cfg.Verbose > 2 {
			log.Debug("configuration", "config", fmt.Sprintf("%+v", cfg.Redacted()), "args", args)
		}

		creds, err := resolveCredentials(cfg, savedCredentials, log)
		if err != nil {
			return err
		}

		interactive := terminal.IsTerminal(os.Stdout) && terminal.IsTerminal(os.Stderr)
		return runLookup(cmd.Context(), cfg, args[0], creds, cmd.OutOrStdout(), cmd.ErrOrStderr(), log, interactive)
	},
}

// callsignArgs requires exactly one callsign unless --version is set.
func callsignArgs(cmd *cobra.Command, args []string) error {
	if showVersion {
		return nil
	}
	switch {
	case len(args) == 0:
		return apperrors.New(apperrors.Usage, "a callsign is required")
	case len(args) > 1:
		return apperrors.New(apperrors.Usage, fmt.Sprintf("expected one callsign, got %d", len(args)))
	}
	return nil
}

// resolveCredentials fills in whatever flags, environment and config file left
// empty from the saved keychain entry. A saved password is only used together
// with its own username.
func resolveCredentials(cfg config.Config, loadSaved func() (auth.Credentials, error), log *slog.Logger) (auth.Credentials, error) {
	creds := auth.Credentials{Username: cfg.Username, Password: cfg.Password}
	if cfg.HasCredentials() {
		return creds, nil
	}

	saved, err := loadSaved()
	switch {
	case err == nil:
		if creds.Username == "" {
			creds.Username = saved.Username
		}
		if creds.Password == "" && creds.Username == saved.Username {
			creds.Password = saved.Password
		}
		log.Debug("using saved credentials", "username", creds.Username)
	case errors.Is(err, keychain.ErrNotFound):
	default:
		log.Debug("saved credentials unavailable", "error", err)
	}

	if err := creds.Validate(); err != nil {
		return creds, err
	}
	return creds, nil
}

// savedCredentials reads the account stored by `qrz-lookup login`.
var savedCredentials = loadSavedCredentials

func loadSavedCredentials() (auth.Credentials, error) {
	km, err := keychain.GetManager()
	if err != nil {
		return auth.Credentials{}, err
	}
	return auth.LoadCredentials(km)
}

// runLookup wires the pipeline from cfg and runs it once. Program output is
// buffered so the spinner never interleaves with it.
func runLookup(ctx context.Context, cfg config.Config, callsign string, creds auth.Credentials, stdout, stderr io.Writer, log *slog.Logger, interactive bool) error {
	api := qrz.New(cfg.Endpoint, cfg.Timeout, log)
	pipeline := lookup.NewPipeline(auth.NewService(api, log), lookup.NewResolver(api, log), cfg.SessionFile, log)

	stop := func() {}
	if interactive && !cfg.JSON && cfg.Verbose == 0 {
		stop = startSpinner(stderr, fmt.Sprintf("Looking up %s", callsign))
	}
	var out bytes.Buffer
	outcome, err := pipeline.Run(ctx, callsign, creds, &out, cfg.JSON)
	stop()

	if _, werr := stdout.Write(out.Bytes()); werr != nil && err == nil {
		err = werr
	}
	if err != nil {
		if apperrors.Is(err, apperrors.Transport) {
			log.Debug("transport failure", "class", httperrors.Classify(err), "stage", outcome.Stage.String())
			action := "looking up " + callsign
			if outcome.Stage == lookup.StageAuthFailed {
				action = "logging in to QRZ"
			}
			return httperrors.FormatNetworkError(stderr, err, action, httperrors.ExtractHostFromURL(cfg.Endpoint))
		}
		return err
	}

	if outcome.ServerMessage != "" {
		if hint := logging.ServerHint(outcome.ServerMessage); hint != "" {
			log.Info(hint)
		}
	}
	return nil
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

func reportError(w io.Writer, err error) {
	kind, _ := apperrors.KindOf(err)
	switch kind {
	case apperrors.Usage:
		pterm.Error.WithWriter(w).Println(logging.PresentError("", errors.New(apperrors.MessageOf(err))))
		fmt.Fprintln(w, "Run 'qrz-lookup --help' for usage.")
	case apperrors.Protocol:
		pterm.Error.WithWriter(w).Println(logging.PresentError("Unexpected response from QRZ", err))
	default:
		pterm.Error.WithWriter(w).Println(logging.PresentError("", err))
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("username", "", "Username for QRZ account")
	pf.String("password", "", "Password for QRZ account")
	pf.CountP("verbose", "v", "Increase the verbosity of debug and informational messages")
	pf.StringVar(&configFile, "config", "", "Path to a qrz-lookup.yaml config file")
	pf.String("endpoint", config.DefaultEndpoint, "QRZ XML data service URL")
	pf.Duration("timeout", qrz.DefaultTimeout, "Timeout for each request to QRZ")
	pf.String("session-file", "", "Where to write the session dump (default: XDG state dir)")

	rootCmd.Flags().Bool("json", false, "Output interesting results in JSON")
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
}
