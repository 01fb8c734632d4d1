package timing

import (
	"math"
	"time"
)

// Timings holds the samples and summary statistics of one candidate. All
// values are in seconds.
type Timings struct {
	// Times holds one entry per completed timed call, in completion order.
	// Burn-in calls never appear here.
	Times []float64
	// Mean is the arithmetic mean of Times, or 0 when Times is empty.
	Mean float64
	// SD is the sample standard deviation of Times (Bessel-corrected). It is
	// 0 when Times is empty and NaN when Times holds a single sample.
	SD float64
}

// Count returns the number of samples.
func (t Timings) Count() int {
	return len(t.Times)
}

// Durations returns the samples as time.Duration values.
func (t Timings) Durations() []time.Duration {
	out := make([]time.Duration, len(t.Times))
	for i, s := range t.Times {
		out[i] = secondsToDuration(s)
	}
	return out
}

// MeanDuration returns Mean as a time.Duration.
func (t Timings) MeanDuration() time.Duration {
	return secondsToDuration(t.Mean)
}

// SDDuration returns SD as a time.Duration, or 0 when SD is not a number.
func (t Timings) SDDuration() time.Duration {
	if math.IsNaN(t.SD) || math.IsInf(t.SD, 0) {
		return 0
	}
	return secondsToDuration(t.SD)
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// reduce turns the running sum kept by the dispatch loop into a mean and adds
// the standard deviation. sum must be the total of t.Times.
func (t *Timings) reduce(sum float64) {
	n := len(t.Times)
	if n == 0 {
		t.Mean, t.SD = 0, 0
		return
	}

	t.Mean = sum / float64(n)
	if n == 1 {
		t.SD = math.NaN()
		return
	}

	var sq float64
	for _, s := range t.Times {
		d := s - t.Mean
		sq += d * d
	}
	t.SD = math.Sqrt(sq / float64(n-1))
}
