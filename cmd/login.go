// Copyright (c) 2025 QRZ Lookup
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bufio"
	"context"
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
	"qrzlookup/cli/internal/qrz"
	"qrzlookup/cli/internal/terminal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var verifyLogin bool

// loginCmd saves a QRZ account in the OS keychain so later lookups can run
// without credentials on the command line.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Save QRZ credentials in the OS keychain",
	Long: `The login command stores a QRZ username and password in the OS keychain.
Values given with --username/--password, QRZ_USERNAME/QRZ_PASSWORD or the config
file are used as is; anything missing is prompted for. The password prompt does
not echo and requires a terminal.

With --verify the account is checked against QRZ before it is saved.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Flags(), configFile)
		if err != nil {
			return apperrors.Wrap(apperrors.Usage, "could not load configuration", err)
		}
		log := logging.New(cmd.ErrOrStderr(), cfg.Verbose)

		creds, err := promptCredentials(cfg, os.Stdin, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		if verifyLogin {
			api := qrz.New(cfg.Endpoint, cfg.Timeout, log)
			if err := verifyCredentials(cmd.Context(), auth.NewService(api, log), creds, cfg.SessionFile, log); err != nil {
				if apperrors.Is(err, apperrors.Transport) {
					return httperrors.FormatNetworkError(cmd.ErrOrStderr(), err, "verifying QRZ credentials", httperrors.ExtractHostFromURL(cfg.Endpoint))
				}
				return err
			}
		}

		km, err := keychain.GetManager()
		if err != nil {
			return fmt.Errorf("secure storage unavailable: %w", err)
		}
		if err := auth.SaveCredentials(km, creds); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Saved QRZ credentials for %s\n", creds.Username)
		return nil
	},
}

// promptCredentials completes the account from cfg by asking on the terminal.
func promptCredentials(cfg config.Config, in *os.File, w io.Writer) (auth.Credentials, error) {
	creds := auth.Credentials{Username: cfg.Username, Password: cfg.Password}
	if creds.Validate() == nil {
		return creds, nil
	}
	if !terminal.IsTerminal(in) {
		return creds, apperrors.New(apperrors.Usage, auth.MissingCredentialsMessage)
	}

	if creds.Username == "" {
		const prompt = "QRZ username: "
		name, err := terminal.Prompt(bufio.NewReader(in), w, prompt)
		if err != nil {
			return creds, fmt.Errorf("read username: %w", err)
		}
		creds.Username = name
	}
	if creds.Password == "" {
		prompt := fmt.Sprintf("Password for %s: ", creds.Username)
		pw, err := terminal.ReadPassword(in, w, prompt)
		if err != nil {
			return creds, fmt.Errorf("read password: %w", err)
		}
		terminal.ClearPreviousLines(w, len(prompt))
		creds.Password = pw
	}
	return creds, creds.Validate()
}

// verifyCredentials logs in once with creds. A rejection by the server is
// reported as a server error so nothing gets saved.
func verifyCredentials(ctx context.Context, svc *auth.Service, creds auth.Credentials, sessionFile string, log *slog.Logger) error {
	session, err := svc.Authenticate(ctx, creds)
	if err != nil {
		return err
	}
	if !session.OK() {
		if hint := logging.ServerHint(session.Error); hint != "" {
			pterm.Info.Println(hint)
		}
		return apperrors.New(apperrors.Server, session.Error)
	}
	if err := auth.WriteSessionDump(sessionFile, session); err != nil {
		log.Warn("could not write session dump", "path", sessionFile, "error", err)
	}
	log.Info("credentials verified", "username", creds.Username)
	return nil
}

func init() {
	loginCmd.Flags().BoolVar(&verifyLogin, "verify", false, "Log in to QRZ once before saving")
	rootCmd.AddCommand(loginCmd)
}
