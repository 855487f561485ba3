// Package cmd contains all the commands included in the fqueue binary.
package cmd

import (
	"github.com/npillmayer/fqueue/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCommand enables all children commands to read flags from CLI flags, environment
// variables prefixed with FQUEUE, or fqueue.yaml (in that order). Tracing is set up
// before any child command runs.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "fqueue",
		Short: "Run and check persistent FIFO queues and deques",
		Long: `Run and check persistent FIFO queues and deques.

fqueue drives immutable queues through scripts of operations, making their
persistence visible, and checks them against a simple model with randomized runs.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := config.Init(); err != nil {
				return err
			}
			return config.SetupTracing(config.Schuko())
		},
	}
	flags := root.PersistentFlags()
	flags.String("kind", config.Defaults.Kind, "the kind of queue: banker or deque")
	mustBindPFlag(config.KindKey, flags.Lookup("kind"))

	return root
}

// NewCommand assembles the root command with all of its children.
func NewCommand() *cobra.Command {
	root := NewRootCommand()
	root.AddCommand(NewRunCommand())
	root.AddCommand(NewVerifyCommand())
	root.AddCommand(NewVersionCommand())
	return root
}
