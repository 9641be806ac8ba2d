package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"smoke-env/internal/target"
)

func newRedactCmd(_ *options) *cobra.Command {
	return &cobra.Command{
		Use:   "redact <url>...",
		Short: "Mask the token query parameter in URLs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, u := range args {
				fmt.Fprintln(cmd.OutOrStdout(), target.RedactURL(u))
			}
			return nil
		},
	}
}
