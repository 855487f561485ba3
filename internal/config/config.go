/*
Package config holds the settings of the fqueue command and sets up tracing.

Settings are read from command line flags, environment variables prefixed with
FQUEUE, or an optional configuration file fqueue.yaml (in that order). The file is
looked for in the working directory, in $HOME/.fqueue and in $HOME/.config/fqueue.
An example:

    kind: deque
    verify:
      runs: 500
      workers: 8
    tracing:
      adapter: go
    tracelevel:
      root: Error
      fqueue:
        verify: Info

Tracers are selected by key, with trace levels configured under "tracelevel.<key>".
Keys used are fp.chain, fp.queue, fp.deque, fqueue.script and fqueue.verify.
Adapters known are "go" (standard library logging) and "logrus".
*/
package config

import (
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/viperadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/logrusadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// AppName tags configuration files and environment variables.
const AppName = "fqueue"

// Configuration keys.
const (
	KindKey         = "kind"
	DumpKey         = "run.dump"
	RunsKey         = "verify.runs"
	OpsKey          = "verify.ops"
	WorkersKey      = "verify.workers"
	SeedKey         = "verify.seed"
	TraceAdapterKey = "tracing.adapter"
	TraceLevelKey   = "tracelevel"
)

// Defaults for settings not given by flag, environment or file.
var Defaults = Settings{
	Kind:    "banker",
	Runs:    100,
	Ops:     1000,
	Workers: 4,
	Seed:    1,
}

// Settings are the values of all configuration keys relevant to commands.
type Settings struct {
	Kind    string
	Dump    bool
	Runs    int
	Ops     int
	Workers int
	Seed    int64
}

// Init prepares viper for reading settings. A missing configuration file is
// not an error.
func Init() error {
	viper.SetConfigName(AppName)
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix(strings.ToUpper(AppName))
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	for _, path := range []string{".", "$HOME/." + AppName, "$HOME/.config/" + AppName} {
		viper.AddConfigPath(path)
	}
	viper.SetDefault(KindKey, Defaults.Kind)
	viper.SetDefault(DumpKey, Defaults.Dump)
	viper.SetDefault(RunsKey, Defaults.Runs)
	viper.SetDefault(OpsKey, Defaults.Ops)
	viper.SetDefault(WorkersKey, Defaults.Workers)
	viper.SetDefault(SeedKey, Defaults.Seed)
	viper.SetDefault(TraceAdapterKey, "go")
	viper.SetDefault(TraceLevelKey+".root", "Error")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "reading configuration")
	}
	return nil
}

// Load collects the current settings.
func Load() Settings {
	return Settings{
		Kind:    viper.GetString(KindKey),
		Dump:    viper.GetBool(DumpKey),
		Runs:    viper.GetInt(RunsKey),
		Ops:     viper.GetInt(OpsKey),
		Workers: viper.GetInt(WorkersKey),
		Seed:    viper.GetInt64(SeedKey),
	}
}

// Schuko returns the viper settings as a schuko configuration.
func Schuko() schuko.Configuration {
	return viperadapter.New(AppName)
}

// SetupTracing installs a root tracer configured by conf and makes
// tracing.Select hand out its children.
func SetupTracing(conf schuko.Configuration) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	tracing.RegisterTraceAdapter("logrus", logrusadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, TraceLevelKey, trace2go.ReplaceTracers(true)); err != nil {
		return errors.Wrap(err, "configuring tracing")
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
