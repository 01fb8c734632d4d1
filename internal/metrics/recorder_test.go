package metrics

import (
	"bytes"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/eztimer/internal/timing"
)

func feed(r *Recorder) {
	r.OnRound(0, 3)
	r.OnBurnIn(0)
	r.OnBurnIn(1)
	r.OnRound(1, 3)
	r.OnSample(0, 2*time.Millisecond)
	r.OnSample(1, 3*time.Millisecond)
	r.OnRound(2, 3)
	r.OnSample(0, 4*time.Millisecond)
	r.OnSkip(1, timing.SkipFunctionBudget)
}

func TestRecorder_Counters(t *testing.T) {
	t.Parallel()
	r := NewRecorder([]string{"fast", "slow"})
	feed(r)

	assert.Equal(t, 3.0, testutil.ToFloat64(r.rounds))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.burnIn.WithLabelValues("fast")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.burnIn.WithLabelValues("slow")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.skipped.WithLabelValues("slow", "function_budget")))
	assert.Equal(t, 2, testutil.CollectAndCount(r.samples))
}

func TestRecorder_UnknownIndexFallsBackToNumber(t *testing.T) {
	t.Parallel()
	r := NewRecorder(nil)
	r.OnBurnIn(4)
	assert.Equal(t, 1.0, testutil.ToFloat64(r.burnIn.WithLabelValues("4")))
}

func TestRecorder_ObserveResults(t *testing.T) {
	t.Parallel()
	r := NewRecorder([]string{"a", "b"})
	r.ObserveResults([]timing.Timings{
		{Times: []float64{0.5, 1.5}, Mean: 1, SD: math.Sqrt2 / 2},
		{Times: []float64{2}, Mean: 2, SD: math.NaN()},
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(r.mean.WithLabelValues("a")))
	assert.InDelta(t, math.Sqrt2/2, testutil.ToFloat64(r.stddev.WithLabelValues("a")), 1e-12)
	assert.True(t, math.IsNaN(testutil.ToFloat64(r.stddev.WithLabelValues("b"))))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.count.WithLabelValues("b")))
}

func TestRecorder_WriteText(t *testing.T) {
	t.Parallel()
	r := NewRecorder([]string{"fast", "slow"})
	feed(r)
	r.ObserveResults([]timing.Timings{{Times: []float64{0.002, 0.004}, Mean: 0.003, SD: 0.001}})

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	out := buf.String()

	for _, want := range []string{
		"eztimer_rounds_total 3",
		`eztimer_burn_in_total{candidate="fast"} 1`,
		`eztimer_skipped_total{candidate="slow",reason="function_budget"} 1`,
		`eztimer_sample_seconds_count{candidate="fast"} 2`,
		`eztimer_mean_seconds{candidate="fast"} 0.003`,
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "go_goroutines")
}

func TestRecorder_Handler(t *testing.T) {
	t.Parallel()
	r := NewRecorder([]string{"fast"})
	r.OnSample(0, time.Millisecond)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `eztimer_sample_seconds_count{candidate="fast"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestRecorder_WritePrometheus(t *testing.T) {
	t.Parallel()
	r := NewRecorder([]string{"fast"})
	r.OnRound(0, 1)

	rec := httptest.NewRecorder()
	r.WritePrometheus(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "eztimer_rounds_total 1"))
}

func TestRecorder_IsolatedRegistries(t *testing.T) {
	t.Parallel()
	a := NewRecorder([]string{"x"})
	b := NewRecorder([]string{"x"})
	a.OnRound(0, 1)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.rounds))
	assert.NotSame(t, a.Registry(), b.Registry())
}
