package cmd

import (
	"fmt"

	"github.com/npillmayer/fqueue/internal/build"
	"github.com/spf13/cobra"
)

// NewVersionCommand returns the command to get the fqueue version.
func NewVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Return the fqueue version",
		Long:  "Return the fqueue version.",
		RunE:  version,
		Args:  cobra.NoArgs,
	}

	return cmd
}

// print out the built version
func version(cmd *cobra.Command, _ []string) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "fqueue version %s date %s commit id %s\n", build.Version, build.Date, build.Commit)
	return err
}
