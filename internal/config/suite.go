package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	apperrors "github.com/agbru/eztimer/internal/errors"
)

// Suite is the content of a YAML suite file. Absent keys leave the
// corresponding setting untouched.
//
//	algo: [fib-doubling, fib-matrix]
//	n: 50000
//	iterations: 20
//	burn_in: 2
//	seed: 7
//	max_time_per_function: 250ms
//	max_time_total: 3s
type Suite struct {
	Algo               []string `yaml:"algo"`
	N                  *uint64  `yaml:"n"`
	Iterations         *int     `yaml:"iterations"`
	BurnIn             *int     `yaml:"burn_in"`
	Seed               *uint64  `yaml:"seed"`
	MaxTimePerFunction string   `yaml:"max_time_per_function"`
	MaxTimeTotal       string   `yaml:"max_time_total"`
	Output             string   `yaml:"output"`
}

// LoadSuite reads and decodes a suite file. Unknown keys are rejected.
func LoadSuite(path string) (*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.WrapError(err, "failed to open suite file")
	}
	defer f.Close()

	var s Suite
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, apperrors.NewConfigError("invalid suite file %s: %v", path, err)
	}
	return &s, nil
}

// apply copies suite values into config for every flag left unset.
func (s *Suite) apply(config *AppConfig, fs *flag.FlagSet) error {
	if len(s.Algo) > 0 && !isFlagSet(fs, "algo") {
		config.Algo = strings.Join(s.Algo, ",")
	}
	if s.N != nil && !isFlagSet(fs, "n") {
		config.N = *s.N
	}
	if s.Iterations != nil && !isFlagSet(fs, "iterations") {
		config.Iterations = *s.Iterations
	}
	if s.BurnIn != nil && !isFlagSet(fs, "burn-in") {
		config.BurnIn = *s.BurnIn
	}
	if s.Seed != nil && !isFlagSet(fs, "seed") {
		config.Seed = *s.Seed
	}
	if s.MaxTimePerFunction != "" && !isFlagSet(fs, "max-time-per-function") {
		d, err := time.ParseDuration(s.MaxTimePerFunction)
		if err != nil {
			return apperrors.NewConfigError("invalid max_time_per_function %q: %v", s.MaxTimePerFunction, err)
		}
		config.MaxTimePerFunction = d
	}
	if s.MaxTimeTotal != "" && !isFlagSet(fs, "max-time-total") {
		d, err := time.ParseDuration(s.MaxTimeTotal)
		if err != nil {
			return apperrors.NewConfigError("invalid max_time_total %q: %v", s.MaxTimeTotal, err)
		}
		config.MaxTimeTotal = d
	}
	if s.Output != "" && !isFlagSetAny(fs, "output", "o") {
		config.OutputFile = s.Output
	}
	return nil
}
