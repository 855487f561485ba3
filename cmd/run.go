package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/fqueue/internal/config"
	"github.com/npillmayer/fqueue/internal/script"
	"github.com/npillmayer/fqueue/result"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NewRunCommand returns the command to execute a script of queue operations.
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [flags] SCRIPT",
		Short: "Execute a script of queue operations",
		Long: `Execute a script of queue operations, one per line, and print the outcome of
every step. Use "-" to read the script from standard input.

Removing from an empty queue prints <empty> and does not stop the script.`,
		RunE: runScript,
		Args: cobra.ExactArgs(1),
	}
	flags := cmd.Flags()
	flags.Bool("dump", config.Defaults.Dump, "print the internal layout of the final queue")
	mustBindPFlag(config.DumpKey, flags.Lookup("dump"))

	return cmd
}

func runScript(cmd *cobra.Command, args []string) error {
	settings := config.Load()
	kind, ok := script.ParseKind(settings.Kind)
	if !ok {
		return errors.Errorf("unknown queue kind %q", settings.Kind)
	}
	r, err := openScript(cmd, args[0])
	if err != nil {
		return err
	}
	defer r.Close()
	//
	in := script.NewInterpreter(kind)
	outcomes, err := in.Execute(r)
	if err != nil {
		return errors.Wrapf(err, "script %s", args[0])
	}
	out := cmd.OutOrStdout()
	for _, o := range outcomes {
		fmt.Fprintf(out, "line %d: %s → %s\n", o.Step.Line, o.Step.Op, display(o.Result))
	}
	if settings.Dump {
		fmt.Fprintln(out, in.Current().Layout())
	}
	return nil
}

func openScript(cmd *cobra.Command, name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "open script")
	}
	return f, nil
}

func display(r result.Result[string]) string {
	v, err := r.Get()
	if errors.Is(err, script.ErrEmptyCollection) {
		return "<empty>"
	} else if err != nil {
		return "<error: " + err.Error() + ">"
	}
	return v
}
