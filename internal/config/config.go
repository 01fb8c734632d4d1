// Package config parses the eztimer command line, environment and suite
// file into an AppConfig.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/eztimer/internal/errors"
	"github.com/agbru/eztimer/internal/logging"
	"github.com/agbru/eztimer/internal/timing"
)

// EnvPrefix is prepended to every environment variable the configuration reads.
const EnvPrefix = "EZTIMER_"

// DefaultN is the Fibonacci index used when -n is not given.
const DefaultN = 10_000

// AppConfig holds everything a run needs.
type AppConfig struct {
	// Algo is a comma separated list of workload names, or "all".
	Algo string
	// N is the input passed to every workload.
	N uint64

	Iterations         int
	BurnIn             int
	Seed               uint64
	MaxTimePerFunction time.Duration
	MaxTimeTotal       time.Duration

	// ConfigFile is the optional YAML suite file.
	ConfigFile string
	// OutputFile receives a JSON report when set.
	OutputFile string
	// LogLevel is a zerolog level name.
	LogLevel string

	Verbose  bool
	Quiet    bool
	NoColor  bool
	Progress bool
	Metrics  bool
	List     bool
}

// Algos returns the selected workload names.
func (c AppConfig) Algos() []string {
	var names []string
	for _, s := range strings.Split(c.Algo, ",") {
		if s = strings.TrimSpace(s); s != "" {
			names = append(names, s)
		}
	}
	return names
}

// ToOptions converts the configuration into timing options.
func (c AppConfig) ToOptions() timing.Options {
	return timing.Options{
		Iterations:         c.Iterations,
		BurnIn:             c.BurnIn,
		Seed:               c.Seed,
		MaxTimePerFunction: c.MaxTimePerFunction,
		MaxTimeTotal:       c.MaxTimeTotal,
	}
}

// Validate checks the configuration against the available workloads.
func (c AppConfig) Validate(availableAlgos []string) error {
	if err := c.ToOptions().Validate(); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	if c.Quiet && c.Verbose {
		return apperrors.NewConfigError("-quiet and -verbose cannot be combined")
	}
	names := c.Algos()
	if len(names) == 0 {
		return apperrors.NewConfigError("no workload selected")
	}
	if len(names) == 1 && names[0] == "all" {
		return nil
	}
	known := make(map[string]bool, len(availableAlgos))
	for _, a := range availableAlgos {
		known[a] = true
	}
	for _, name := range names {
		if !known[name] {
			return apperrors.NewConfigError("unknown workload %q (available: %s)", name, strings.Join(availableAlgos, ", "))
		}
	}
	return nil
}

// ParseConfig parses args into an AppConfig. Values are resolved with the
// priority: command-line flags, then EZTIMER_* environment variables, then
// the suite file, then defaults. Help output and parse errors go to
// errWriter; -h returns flag.ErrHelp.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	opt := timing.DefaultOptions()
	config := AppConfig{}
	fs.StringVar(&config.Algo, "algo", "all", fmt.Sprintf("Comma separated workloads to time, or 'all' (%s).", strings.Join(availableAlgos, ", ")))
	fs.Uint64Var(&config.N, "n", DefaultN, "Input passed to every workload (Fibonacci index).")
	fs.IntVar(&config.Iterations, "iterations", opt.Iterations, "Timed calls per workload.")
	fs.IntVar(&config.BurnIn, "burn-in", opt.BurnIn, "Untimed warm-up calls per workload.")
	fs.Uint64Var(&config.Seed, "seed", opt.Seed, "Seed for the randomized call order.")
	fs.DurationVar(&config.MaxTimePerFunction, "max-time-per-function", 0, "Stop timing a workload once its samples add up to this (0 = no cap).")
	fs.DurationVar(&config.MaxTimeTotal, "max-time-total", 0, "Stop timing all workloads once samples add up to this (0 = no cap).")
	fs.StringVar(&config.ConfigFile, "config", "", "YAML suite file with default settings.")
	fs.StringVar(&config.OutputFile, "output", "", "Write a JSON report to this file.")
	fs.StringVar(&config.OutputFile, "o", "", "Shorthand for -output.")
	fs.StringVar(&config.LogLevel, "log-level", "info", "Log level (debug, info, warn, error).")
	fs.BoolVar(&config.Verbose, "v", false, "Print every raw sample.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Print every raw sample.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print one line per workload and nothing else.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for -quiet.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.BoolVar(&config.Progress, "progress", false, "Show a spinner while timing.")
	fs.BoolVar(&config.Metrics, "metrics", false, "Print Prometheus metrics for the run.")
	fs.BoolVar(&config.List, "list", false, "List the available workloads and exit.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	configFile := config.ConfigFile
	if !isFlagSet(fs, "config") {
		configFile = getEnvString("CONFIG", configFile)
	}
	if configFile != "" {
		suite, err := LoadSuite(configFile)
		if err != nil {
			return AppConfig{}, err
		}
		if err := suite.apply(&config, fs); err != nil {
			return AppConfig{}, err
		}
		config.ConfigFile = configFile
	}

	applyEnvOverrides(&config, fs)

	if err := config.Validate(availableAlgos); err != nil {
		fmt.Fprintln(errWriter, err)
		return AppConfig{}, err
	}
	return config, nil
}
