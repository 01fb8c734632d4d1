//go:generate mockgen -source=observer.go -destination=mocks/mock_observer.go -package=mocks

package timing

import "time"

// SkipReason tells why a scheduled timed call was not made.
type SkipReason int

const (
	// SkipFunctionBudget means the candidate spent its MaxTimePerFunction.
	SkipFunctionBudget SkipReason = iota + 1
	// SkipTotalBudget means the run spent its MaxTimeTotal.
	SkipTotalBudget
)

// String returns the label used in logs and metrics.
func (r SkipReason) String() string {
	switch r {
	case SkipFunctionBudget:
		return "function_budget"
	case SkipTotalBudget:
		return "total_budget"
	default:
		return "unknown"
	}
}

// Observer receives notifications from the dispatch loop. Every callback runs
// outside the timed window, so its cost never shows up in a sample, but a
// slow observer still stretches the wall-clock length of the run.
type Observer interface {
	// OnRound is called before the first call of each round. round is
	// zero-based and counts burn-in rounds.
	OnRound(round, rounds int)
	// OnBurnIn is called after an untimed warm-up call.
	OnBurnIn(index int)
	// OnSample is called after a timed call passed its check.
	OnSample(index int, elapsed time.Duration)
	// OnSkip is called for every timed call skipped by a budget.
	OnSkip(index int, reason SkipReason)
}

// Observers fans notifications out to several observers in order.
type Observers []Observer

var _ Observer = Observers(nil)

// OnRound forwards to every observer.
func (obs Observers) OnRound(round, rounds int) {
	for _, o := range obs {
		o.OnRound(round, rounds)
	}
}

// OnBurnIn forwards to every observer.
func (obs Observers) OnBurnIn(index int) {
	for _, o := range obs {
		o.OnBurnIn(index)
	}
}

// OnSample forwards to every observer.
func (obs Observers) OnSample(index int, elapsed time.Duration) {
	for _, o := range obs {
		o.OnSample(index, elapsed)
	}
}

// OnSkip forwards to every observer.
func (obs Observers) OnSkip(index int, reason SkipReason) {
	for _, o := range obs {
		o.OnSkip(index, reason)
	}
}

// NullObserver ignores every notification.
type NullObserver struct{}

func (NullObserver) OnRound(int, int)            {}
func (NullObserver) OnBurnIn(int)                {}
func (NullObserver) OnSample(int, time.Duration) {}
func (NullObserver) OnSkip(int, SkipReason)      {}
