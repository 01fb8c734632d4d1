// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Print*, Present* and Display* functions write formatted output to an [io.Writer].
//     Examples: [PresentSummary], [DisplayQuietResult].
//
//   - Build* functions return values without performing I/O.
//     Example: [BuildReport].
//
//   - Write* functions write data to files on the filesystem.
//     Example: [WriteReport].

package cli

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/eztimer/internal/sysmon"
	"github.com/agbru/eztimer/internal/timing"
)

// Report is the JSON document written by -output.
type Report struct {
	RunID      string            `json:"run_id"`
	StartedAt  time.Time         `json:"started_at"`
	N          uint64            `json:"n"`
	Options    ReportOptions     `json:"options"`
	Host       string            `json:"host"`
	Candidates []CandidateReport `json:"candidates"`
}

// ReportOptions mirrors timing.Options with durations in seconds.
type ReportOptions struct {
	Iterations         int     `json:"iterations"`
	BurnIn             int     `json:"burn_in"`
	Seed               uint64  `json:"seed"`
	MaxTimePerFunction float64 `json:"max_time_per_function"`
	MaxTimeTotal       float64 `json:"max_time_total"`
}

// CandidateReport holds the statistics of one candidate. Mean and SD are
// null when they are undefined for the number of samples.
type CandidateReport struct {
	Name    string    `json:"name"`
	Samples int       `json:"samples"`
	Mean    *float64  `json:"mean"`
	SD      *float64  `json:"sd"`
	Times   []float64 `json:"times"`
}

// BuildReport assembles a report from a finished run.
func BuildReport(runID string, started time.Time, n uint64, opt timing.Options, host sysmon.Features,
	names []string, results []timing.Timings) Report {
	r := Report{
		RunID:     runID,
		StartedAt: started,
		N:         n,
		Options: ReportOptions{
			Iterations:         opt.Iterations,
			BurnIn:             opt.BurnIn,
			Seed:               opt.Seed,
			MaxTimePerFunction: opt.MaxTimePerFunction.Seconds(),
			MaxTimeTotal:       opt.MaxTimeTotal.Seconds(),
		},
		Host:       host.String(),
		Candidates: make([]CandidateReport, len(results)),
	}
	for i, res := range results {
		times := res.Times
		if times == nil {
			times = []float64{}
		}
		r.Candidates[i] = CandidateReport{
			Name:    nameAt(names, i),
			Samples: res.Count(),
			Mean:    finite(res.Mean),
			SD:      finite(res.SD),
			Times:   times,
		}
	}
	return r
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// WriteReport writes r as indented JSON to path, creating parent
// directories. An empty path is a no-op.
func WriteReport(path string, r Report) error {
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
