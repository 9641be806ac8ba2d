package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"smoke-env/internal/config"
	"smoke-env/internal/redact"
	"smoke-env/internal/target"
)

func newFingerprintCmd(opts *options) *cobra.Command {
	var tokenVar string

	cmd := &cobra.Command{
		Use:   "fingerprint [token]",
		Short: "Print a short display form of a token",
		Long: `Print the first and last few characters of a token, enough to tell
tokens apart in logs without revealing them. Without an argument the
token is read from the environment.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				fmt.Fprintln(cmd.OutOrStdout(), redact.Fingerprint(args[0]))
				return nil
			}

			cfg := opts.cfg.Merge(&config.FileConfig{TokenVar: tokenVar})
			env, err := opts.loadEnv()
			if err != nil {
				return err
			}

			t, err := target.Resolve(env, settingsFrom(cfg))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Fingerprint)
			return nil
		},
	}

	cmd.Flags().StringVar(&tokenVar, "token-var", "", "Variable holding the auth token (default: AUTH_TOKEN)")

	return cmd
}
