package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"smoke-env/internal/config"
	"smoke-env/internal/target"
)

func newTargetCmd(opts *options) *cobra.Command {
	var (
		baseURL  string
		tokenVar string
		portVar  string
		redacted bool
	)

	cmd := &cobra.Command{
		Use:   "target",
		Short: "Print the smoke test URL with its auth token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := opts.cfg.Merge(&config.FileConfig{
				BaseURL:  baseURL,
				TokenVar: tokenVar,
				PortVar:  portVar,
			})

			env, err := opts.loadEnv()
			if err != nil {
				return err
			}

			t, err := target.Resolve(env, settingsFrom(cfg))
			if err != nil {
				return err
			}

			opts.logger.Info("resolved target", "url", t.Redacted, "token", t.Fingerprint)
			if t.LeakPattern != "" {
				opts.logger.Warn("token looks like a real credential; use a throwaway token",
					"var", t.TokenVar, "pattern", t.LeakPattern)
			}

			if redacted {
				fmt.Fprintln(cmd.OutOrStdout(), t.Redacted)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), t.URL)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "Base URL of the app under test (default: http://localhost:$VITE_PORT)")
	cmd.Flags().StringVar(&tokenVar, "token-var", "", "Variable holding the auth token (default: AUTH_TOKEN)")
	cmd.Flags().StringVar(&portVar, "port-var", "", "Variable holding the dev server port (default: VITE_PORT)")
	cmd.Flags().BoolVar(&redacted, "redacted", false, "Print the URL with the token redacted")

	return cmd
}

func settingsFrom(cfg *config.FileConfig) target.Settings {
	return target.Settings{
		BaseURL:     cfg.BaseURL,
		PortVar:     cfg.PortVar,
		DefaultPort: cfg.DefaultPort,
		TokenVar:    cfg.TokenVar,
	}
}
