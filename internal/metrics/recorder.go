package metrics

import (
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"

	"github.com/agbru/eztimer/internal/timing"
)

const namespace = "eztimer"

// Recorder turns timing notifications into Prometheus series. Each Recorder
// owns its registry, so several runs in one process do not collide.
type Recorder struct {
	names    []string
	registry *prometheus.Registry
	handler  http.Handler

	samples *prometheus.HistogramVec
	skipped *prometheus.CounterVec
	burnIn  *prometheus.CounterVec
	rounds  prometheus.Counter
	mean    *prometheus.GaugeVec
	stddev  *prometheus.GaugeVec
	count   *prometheus.GaugeVec
}

var _ timing.Observer = (*Recorder)(nil)

// NewRecorder creates a recorder for candidates labelled with names, index
// aligned with the candidate list passed to timing.Time.
func NewRecorder(names []string) *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		names:    names,
		registry: reg,
		samples: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sample_seconds",
			Help:      "Duration of timed candidate calls.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 14),
		}, []string{"candidate"}),
		skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "skipped_total",
			Help:      "Timed calls skipped because a budget was spent.",
		}, []string{"candidate", "reason"}),
		burnIn: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "burn_in_total",
			Help:      "Untimed warm-up calls.",
		}, []string{"candidate"}),
		rounds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_total",
			Help:      "Rounds started, burn-in included.",
		}),
		mean: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "mean_seconds",
			Help:      "Mean duration of the timed calls of a candidate.",
		}, []string{"candidate"}),
		stddev: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stddev_seconds",
			Help:      "Sample standard deviation of the timed calls of a candidate.",
		}, []string{"candidate"}),
		count: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "samples",
			Help:      "Number of samples kept for a candidate.",
		}, []string{"candidate"}),
	}
	reg.MustRegister(r.samples, r.skipped, r.burnIn, r.rounds, r.mean, r.stddev, r.count)
	reg.MustRegister(collectors.NewGoCollector())
	r.handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	return r
}

func (r *Recorder) label(index int) string {
	if index >= 0 && index < len(r.names) {
		return r.names[index]
	}
	return strconv.Itoa(index)
}

// OnRound counts rounds.
func (r *Recorder) OnRound(int, int) {
	r.rounds.Inc()
}

// OnBurnIn counts warm-up calls.
func (r *Recorder) OnBurnIn(index int) {
	r.burnIn.WithLabelValues(r.label(index)).Inc()
}

// OnSample records one timed call.
func (r *Recorder) OnSample(index int, elapsed time.Duration) {
	r.samples.WithLabelValues(r.label(index)).Observe(elapsed.Seconds())
}

// OnSkip counts a skipped call.
func (r *Recorder) OnSkip(index int, reason timing.SkipReason) {
	r.skipped.WithLabelValues(r.label(index), reason.String()).Inc()
}

// ObserveResults publishes the reduced statistics. A NaN deviation is
// exported as NaN, which the text format supports.
func (r *Recorder) ObserveResults(results []timing.Timings) {
	for i, res := range results {
		name := r.label(i)
		r.mean.WithLabelValues(name).Set(res.Mean)
		sd := res.SD
		if math.IsInf(sd, 0) {
			sd = math.NaN()
		}
		r.stddev.WithLabelValues(name).Set(sd)
		r.count.WithLabelValues(name).Set(float64(res.Count()))
	}
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return r.handler
}

// WritePrometheus writes the metrics as an HTTP response.
func (r *Recorder) WritePrometheus(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

// WriteText writes every eztimer series in the text exposition format.
// Go runtime series are left out to keep the dump short.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), namespace+"_") {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
