package cli

import (
	"fmt"
	"io"
	"runtime"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/agbru/eztimer/internal/config"
	"github.com/agbru/eztimer/internal/format"
	"github.com/agbru/eztimer/internal/metrics"
	"github.com/agbru/eztimer/internal/sysmon"
	"github.com/agbru/eztimer/internal/timing"
	"github.com/agbru/eztimer/internal/ui"
)

// PrintExecutionConfig displays the run parameters and the host they run on.
func PrintExecutionConfig(cfg config.AppConfig, names []string, host sysmon.Features, out io.Writer) {
	fmt.Fprintf(out, "%s\n", ui.Heading("--- Execution Configuration ---"))
	fmt.Fprintf(out, "Timing %s%d%s candidates with n=%s%d%s: %s%d%s iterations, %s%d%s burn-in, seed %s%d%s.\n",
		ui.ColorBlue(), len(names), ui.ColorReset(),
		ui.ColorMagenta(), cfg.N, ui.ColorReset(),
		ui.ColorMagenta(), cfg.Iterations, ui.ColorReset(),
		ui.ColorMagenta(), cfg.BurnIn, ui.ColorReset(),
		ui.ColorMagenta(), cfg.Seed, ui.ColorReset())
	if cfg.MaxTimePerFunction > 0 || cfg.MaxTimeTotal > 0 {
		fmt.Fprintf(out, "Budgets: per candidate %s, total %s.\n",
			budgetString(cfg.MaxTimePerFunction), budgetString(cfg.MaxTimeTotal))
	}
	fmt.Fprintf(out, "Environment: %s, Go %s.\n", host, runtime.Version())
}

func budgetString(d time.Duration) string {
	if d <= 0 {
		return "unlimited"
	}
	return d.String()
}

// PrintBusyWarning tells the user that the host was loaded when the run began.
func PrintBusyWarning(stats sysmon.Stats, out io.Writer) {
	fmt.Fprintf(out, "%sWarning: host CPU at %.0f%%, timings may be noisy.%s\n",
		ui.ColorYellow(), stats.CPUPercent, ui.ColorReset())
}

// PresentSummary displays one table row per candidate, in candidate order.
func PresentSummary(names []string, results []timing.Timings, out io.Writer) error {
	fmt.Fprintf(out, "\n%s\n", ui.Heading("--- Summary ---"))
	table := tablewriter.NewWriter(out)
	table.Header("Candidate", "Samples", "Mean", "Std Dev", "Relative")

	fastest := fastestMean(results)
	for i, res := range results {
		relative := "-"
		if fastest > 0 && res.Count() > 0 {
			relative = fmt.Sprintf("%.2fx", res.Mean/fastest)
		}
		if err := table.Append(
			nameAt(names, i),
			strconv.Itoa(res.Count()),
			format.FormatSeconds(res.Mean),
			format.FormatSeconds(res.SD),
			relative,
		); err != nil {
			return fmt.Errorf("failed to add row: %w", err)
		}
	}
	return table.Render()
}

// PresentSamples lists every kept sample, in the order they were taken.
func PresentSamples(names []string, results []timing.Timings, out io.Writer) {
	fmt.Fprintf(out, "\n%s\n", ui.Heading("--- Samples ---"))
	for i, res := range results {
		fmt.Fprintf(out, "%s%s%s:", ui.ColorBlue(), nameAt(names, i), ui.ColorReset())
		for _, s := range res.Times {
			fmt.Fprintf(out, " %s", format.FormatSeconds(s))
		}
		fmt.Fprintln(out)
	}
}

// DisplayQuietResult prints one tab separated line per candidate: name,
// samples, mean and standard deviation in seconds.
func DisplayQuietResult(names []string, results []timing.Timings, out io.Writer) {
	for i, res := range results {
		fmt.Fprintf(out, "%s\t%d\t%s\t%s\n", nameAt(names, i), res.Count(),
			strconv.FormatFloat(res.Mean, 'g', -1, 64),
			strconv.FormatFloat(res.SD, 'g', -1, 64))
	}
}

// DisplayMemoryStats shows what the Go runtime did while the run was going.
func DisplayMemoryStats(d metrics.MemoryDelta, out io.Writer) {
	fmt.Fprintf(out, "\nMemory during run:\n")
	fmt.Fprintf(out, "  Allocated:  %d bytes\n", d.Allocated)
	fmt.Fprintf(out, "  GC cycles:  %d\n", d.GCCycles)
	fmt.Fprintf(out, "  GC pause:   %s\n", format.FormatExecutionDuration(d.GCPause))
}

func fastestMean(results []timing.Timings) float64 {
	var best float64
	for _, res := range results {
		if res.Count() == 0 {
			continue
		}
		if best == 0 || res.Mean < best {
			best = res.Mean
		}
	}
	return best
}

func nameAt(names []string, i int) string {
	if i < len(names) {
		return names[i]
	}
	return strconv.Itoa(i)
}
