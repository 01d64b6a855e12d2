package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"toyrobot/internal/version"
)

func newVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including commit hash and build date.`,
		Run: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				fmt.Fprintln(cmd.OutOrStdout(), version.Full())
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), version.Info())
			}
		},
	}
	cmd.Flags().BoolP("verbose", "v", false, "print verbose version information")
	return cmd
}
