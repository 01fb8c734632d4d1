package timing

import (
	"fmt"
	"runtime"
	"time"

	apperrors "github.com/agbru/eztimer/internal/errors"
)

// Candidate is one computation under test. Its result must depend on the
// work being measured so the call cannot be optimized away.
type Candidate[R any] func() R

// Check inspects the result of a timed call. Returning an error aborts the
// run. Its own running time is never recorded.
type Check[R any] func(result R, index int) error

// Time measures every candidate and returns one Timings per candidate, in
// input order.
//
// The run lasts opt.Rounds() rounds; each round calls every candidate once in
// the order given by BuildSchedule. Burn-in rounds call the candidate without
// timing it, checking it, or charging any budget. In a timed round a call is
// skipped when the candidate's accumulated time already reaches
// opt.MaxTimePerFunction, or the accumulated time of the whole run reaches
// opt.MaxTimeTotal. Budgets are only checked between calls, so a slow call is
// never interrupted and the final total may overshoot the cap by one call.
//
// A nil check is allowed. When check returns an error the run stops and the
// error is returned as an apperrors.CheckError; no partial result is
// returned.
func Time[R any](funs []Candidate[R], check Check[R], opt Options, observers ...Observer) ([]Timings, error) {
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	for i, f := range funs {
		if f == nil {
			return nil, apperrors.ValidationError{Field: "candidates", Message: fmt.Sprintf("candidate %d is nil", i)}
		}
	}

	var obs Observer = NullObserver{}
	switch len(observers) {
	case 0:
	case 1:
		obs = observers[0]
	default:
		obs = Observers(observers)
	}

	nfun := len(funs)
	rounds := opt.Rounds()
	order := BuildSchedule(nfun, rounds, opt.Seed)

	output := make([]Timings, nfun)
	for i := range output {
		output[i].Times = make([]float64, 0, opt.Iterations)
	}
	sums := make([]float64, nfun)
	perFunction := opt.MaxTimePerFunction.Seconds()
	totalCap := opt.MaxTimeTotal.Seconds()
	var total float64

	pos := 0
	for round := 0; round < rounds && nfun > 0; round++ {
		obs.OnRound(round, rounds)
		for range nfun {
			current := order[pos]
			pos++

			if round < opt.BurnIn {
				runtime.KeepAlive(funs[current]())
				obs.OnBurnIn(current)
				continue
			}

			if opt.MaxTimePerFunction > 0 && sums[current] >= perFunction {
				obs.OnSkip(current, SkipFunctionBudget)
				continue
			}
			if opt.MaxTimeTotal > 0 && total >= totalCap {
				obs.OnSkip(current, SkipTotalBudget)
				continue
			}

			start := time.Now()
			res := funs[current]()
			elapsed := time.Since(start)
			curtime := elapsed.Seconds()
			output[current].Times = append(output[current].Times, curtime)

			if check != nil {
				if err := check(res, current); err != nil {
					return nil, apperrors.CheckError{Index: current, Round: round, Cause: err}
				}
			} else {
				runtime.KeepAlive(res)
			}

			sums[current] += curtime
			if opt.MaxTimeTotal > 0 {
				total += curtime
			}
			obs.OnSample(current, elapsed)
		}
	}

	for i := range output {
		output[i].reduce(sums[i])
	}
	return output, nil
}
