package timing

import (
	"time"

	apperrors "github.com/agbru/eztimer/internal/errors"
)

const (
	// DefaultIterations is the number of timed rounds per candidate.
	DefaultIterations = 10
	// DefaultBurnIn is the number of untimed warm-up rounds per candidate.
	DefaultBurnIn = 1
	// DefaultSeed seeds the generator that orders candidates within a round.
	DefaultSeed uint64 = 123456
)

// Options configures a timing run. The zero value is valid but performs no
// timed rounds; start from DefaultOptions.
type Options struct {
	// Iterations is the maximum number of timed calls per candidate. Budgets
	// may cut it short.
	Iterations int
	// BurnIn is the number of untimed rounds executed before timing starts.
	BurnIn int
	// Seed makes the call order reproducible.
	Seed uint64
	// MaxTimePerFunction skips further timed calls to a candidate once its
	// accumulated timed duration reaches this value. Zero disables the cap.
	MaxTimePerFunction time.Duration
	// MaxTimeTotal skips all further timed calls once the accumulated timed
	// duration across candidates reaches this value. Zero disables the cap.
	MaxTimeTotal time.Duration
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Iterations: DefaultIterations,
		BurnIn:     DefaultBurnIn,
		Seed:       DefaultSeed,
	}
}

// Rounds returns the total number of rounds, burn-in included.
func (o Options) Rounds() int {
	return o.Iterations + o.BurnIn
}

// Validate reports the first invalid field as an apperrors.ConfigError.
func (o Options) Validate() error {
	switch {
	case o.Iterations < 0:
		return apperrors.NewConfigError("iterations must be non-negative, got %d", o.Iterations)
	case o.BurnIn < 0:
		return apperrors.NewConfigError("burn-in must be non-negative, got %d", o.BurnIn)
	case o.MaxTimePerFunction < 0:
		return apperrors.NewConfigError("max time per function must be positive, got %s", o.MaxTimePerFunction)
	case o.MaxTimeTotal < 0:
		return apperrors.NewConfigError("max total time must be positive, got %s", o.MaxTimeTotal)
	}
	return nil
}
