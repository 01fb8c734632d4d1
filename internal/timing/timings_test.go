package timing

import (
	"math"
	"testing"
	"time"
)

func TestTimings_Reduce(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		times    []float64
		wantMean float64
		wantSD   float64
		wantNaN  bool
	}{
		{"empty", nil, 0, 0, false},
		{"single", []float64{0.25}, 0.25, 0, true},
		{"constant", []float64{0.5, 0.5, 0.5}, 0.5, 0, false},
		{"spread", []float64{1, 2, 3, 4}, 2.5, math.Sqrt(5.0 / 3.0), false},
		{"pair", []float64{0.010, 0.030}, 0.020, math.Sqrt(0.0002), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var sum float64
			for _, s := range tt.times {
				sum += s
			}
			tm := Timings{Times: tt.times}
			tm.reduce(sum)

			if math.Abs(tm.Mean-tt.wantMean) > 1e-12 {
				t.Errorf("Mean = %v, want %v", tm.Mean, tt.wantMean)
			}
			if tt.wantNaN {
				if !math.IsNaN(tm.SD) {
					t.Errorf("SD = %v, want NaN", tm.SD)
				}
				return
			}
			if math.Abs(tm.SD-tt.wantSD) > 1e-12 {
				t.Errorf("SD = %v, want %v", tm.SD, tt.wantSD)
			}
		})
	}
}

// TestTimings_DeviationShrinksWithSpread checks that less spread in the
// samples gives a smaller deviation around the same mean.
func TestTimings_DeviationShrinksWithSpread(t *testing.T) {
	t.Parallel()
	prev := math.Inf(1)
	for _, spread := range []float64{0.004, 0.002, 0.001, 0.0001, 0} {
		tm := Timings{Times: []float64{0.010 - spread, 0.010, 0.010 + spread}}
		tm.reduce(0.030)
		if math.Abs(tm.Mean-0.010) > 1e-12 {
			t.Errorf("spread %v: Mean = %v, want 0.010", spread, tm.Mean)
		}
		if tm.SD >= prev {
			t.Errorf("spread %v: SD = %v, want less than %v", spread, tm.SD, prev)
		}
		prev = tm.SD
	}
	if prev > 1e-12 {
		t.Errorf("zero spread should give zero deviation, got %v", prev)
	}
}

func TestTimings_Durations(t *testing.T) {
	t.Parallel()
	tm := Timings{Times: []float64{0.125, 0.5}, Mean: 0.3125, SD: 0.25}
	got := tm.Durations()
	want := []time.Duration{125 * time.Millisecond, 500 * time.Millisecond}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Durations()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if tm.Count() != 2 {
		t.Errorf("Count() = %d, want 2", tm.Count())
	}
	if tm.MeanDuration() != 312500*time.Microsecond {
		t.Errorf("MeanDuration() = %v", tm.MeanDuration())
	}
	if tm.SDDuration() != 250*time.Millisecond {
		t.Errorf("SDDuration() = %v", tm.SDDuration())
	}
}

func TestOptions_Validate(t *testing.T) {
	t.Parallel()
	if err := DefaultOptions().Validate(); err != nil {
		t.Errorf("DefaultOptions().Validate() = %v, want nil", err)
	}
	if err := (Options{}).Validate(); err != nil {
		t.Errorf("zero Options should validate, got %v", err)
	}
	if got := DefaultOptions().Rounds(); got != DefaultIterations+DefaultBurnIn {
		t.Errorf("Rounds() = %d, want %d", got, DefaultIterations+DefaultBurnIn)
	}
	if err := (Options{Iterations: -2}).Validate(); err == nil {
		t.Error("negative iterations should fail validation")
	}
}

func TestSkipReason_String(t *testing.T) {
	t.Parallel()
	cases := map[SkipReason]string{
		SkipFunctionBudget: "function_budget",
		SkipTotalBudget:    "total_budget",
		SkipReason(0):      "unknown",
	}
	for r, want := range cases {
		if got := r.String(); got != want {
			t.Errorf("SkipReason(%d).String() = %q, want %q", int(r), got, want)
		}
	}
}
