package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"smoke-env/internal/dotenv"
)

func newDumpCmd(opts *options) *cobra.Command {
	var showSecrets bool

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the parsed .env file with sensitive values redacted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := opts.loadFileEnv()
			if err != nil {
				return err
			}

			out, err := dotenv.Marshal(env, !showSecrets)
			if err != nil {
				return fmt.Errorf("format env: %w", err)
			}
			if out != "" {
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "Print sensitive values verbatim")

	return cmd
}
