// Copyright (c) 2025 QRZ Lookup
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"qrzlookup/cli/internal/auth"
	"qrzlookup/cli/internal/config"
	"qrzlookup/cli/internal/keychain"

	"github.com/spf13/cobra"
)

// logoutCmd removes the saved account and the last session dump.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove saved credentials and the session dump",
	Long: `The logout command clears local state left by qrz-lookup:
- the QRZ account saved in the OS keychain by 'qrz-lookup login'
- the session dump written after the last successful login

QRZ sessions expire on their own, so nothing is sent to the server.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Flags(), configFile)
		if err != nil {
			return err
		}

		// Best effort: a missing keychain means nothing was saved.
		if km, err := keychain.GetManager(); err == nil {
			_ = auth.ClearCredentials(km)
		}
		if err := auth.RemoveSessionDump(cfg.SessionFile); err != nil {
			return fmt.Errorf("remove session dump: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "✅ Saved credentials and session dump removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
