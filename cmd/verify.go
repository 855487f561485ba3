package cmd

import (
	"fmt"

	"github.com/npillmayer/fqueue/internal/config"
	"github.com/npillmayer/fqueue/internal/script"
	"github.com/npillmayer/fqueue/internal/verify"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NewVerifyCommand returns the command to check a queue against a model with
// randomized runs.
func NewVerifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a queue against a model with randomized runs",
		Long: `Check a queue against a model with randomized runs.

All runs start from one shared snapshot and are executed by concurrent workers.
The command fails if any run diverges from the model.`,
		RunE: verifyQueue,
		Args: cobra.NoArgs,
	}
	flags := cmd.Flags()
	flags.Int("runs", config.Defaults.Runs, "the number of randomized runs")
	mustBindPFlag(config.RunsKey, flags.Lookup("runs"))
	flags.Int("ops", config.Defaults.Ops, "the number of operations per run")
	mustBindPFlag(config.OpsKey, flags.Lookup("ops"))
	flags.Int("workers", config.Defaults.Workers, "the maximum number of concurrent runs")
	mustBindPFlag(config.WorkersKey, flags.Lookup("workers"))
	flags.Int64("seed", config.Defaults.Seed, "the seed of the first run")
	mustBindPFlag(config.SeedKey, flags.Lookup("seed"))

	return cmd
}

func verifyQueue(cmd *cobra.Command, _ []string) error {
	settings := config.Load()
	report, err := verify.Check(cmd.Context(), verify.Config{
		Kind:    script.Kind(settings.Kind),
		Runs:    settings.Runs,
		Ops:     settings.Ops,
		Workers: settings.Workers,
		Seed:    settings.Seed,
	})
	if err != nil {
		return errors.Wrap(err, "verify")
	}
	out := cmd.OutOrStdout()
	for _, f := range report.Failures {
		fmt.Fprintln(out, f)
	}
	fmt.Fprintf(out, "%s: %d runs, %d steps, %d failures\n", report.Kind, report.Runs, report.Steps, len(report.Failures))
	if !report.OK() {
		return errors.Errorf("%s queue diverged from the model", report.Kind)
	}
	return nil
}
