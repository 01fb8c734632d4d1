package app

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/eztimer/internal/cli"
	apperrors "github.com/agbru/eztimer/internal/errors"
	"github.com/agbru/eztimer/internal/logging"
	"github.com/agbru/eztimer/internal/metrics"
	"github.com/agbru/eztimer/internal/sysmon"
	"github.com/agbru/eztimer/internal/timing"
	"github.com/agbru/eztimer/internal/ui"
	"github.com/agbru/eztimer/internal/workload"
)

// BusyThreshold is the host CPU percentage above which a warning is shown.
const BusyThreshold = 50.0

var tracer = otel.Tracer("eztimer")

// runTiming times the selected workloads and presents the results.
func (a *Application) runTiming(ctx context.Context, out io.Writer) error {
	ws, err := workload.Resolve(a.Factory, a.Config.Algos())
	if err != nil {
		return err
	}
	batch := workload.NewBatch(ws, a.Config.N)
	opt := a.Config.ToOptions()
	runID := uuid.NewString()
	host := sysmon.CPUFeatures()

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, batch.Names, host, out)
		if stats := sysmon.Sample(); sysmon.Busy(stats, BusyThreshold) {
			cli.PrintBusyWarning(stats, out)
		}
	}

	ctx, span := tracer.Start(ctx, "eztimer.Run", trace.WithAttributes(
		attribute.String("run_id", runID),
		attribute.Int("candidates", len(ws)),
		attribute.Int("iterations", opt.Iterations),
		attribute.Int("burn_in", opt.BurnIn),
		attribute.Int64("seed", int64(opt.Seed)),
	))
	defer span.End()

	a.Logger.Info("run started",
		logging.String("run_id", runID),
		logging.Int("candidates", len(ws)),
		logging.Uint64("seed", opt.Seed))

	recorder := metrics.NewRecorder(batch.Names)
	observers := timing.Observers{recorder, &logObserver{logger: a.Logger, names: batch.Names}}
	var progress *cli.ProgressObserver
	if a.Config.Progress && !a.Config.Quiet {
		progress = cli.NewProgressObserver(a.ErrWriter)
		observers = append(observers, progress)
		progress.Start()
	}

	// A pending cancellation fails the next check, which ends the run.
	check := func(res *big.Int, index int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return batch.Check(res, index)
	}

	mc := metrics.NewMemoryCollector()
	before := mc.Snapshot()
	started := time.Now()
	results, err := timing.Time(batch.Candidates, check, opt, observers)
	elapsed := time.Since(started)
	after := mc.Snapshot()

	if progress != nil {
		progress.Stop()
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return apperrors.WrapError(err, "timing run %s", runID)
	}
	span.SetStatus(codes.Ok, "")
	recorder.ObserveResults(results)

	a.Logger.Info("run finished",
		logging.String("run_id", runID),
		logging.Duration("elapsed", elapsed))

	if a.Config.Quiet {
		cli.DisplayQuietResult(batch.Names, results, out)
	} else {
		if err := cli.PresentSummary(batch.Names, results, out); err != nil {
			return err
		}
		if a.Config.Verbose {
			cli.PresentSamples(batch.Names, results, out)
			cli.DisplayMemoryStats(metrics.Delta(before, after), out)
		}
	}

	if a.Config.OutputFile != "" {
		report := cli.BuildReport(runID, started, a.Config.N, opt, host, batch.Names, results)
		if err := cli.WriteReport(a.Config.OutputFile, report); err != nil {
			return err
		}
		if !a.Config.Quiet {
			fmt.Fprintf(out, "\n%sReport saved to: %s%s\n", ui.ColorGreen(), a.Config.OutputFile, ui.ColorReset())
		}
	}

	if a.Config.Metrics {
		fmt.Fprintln(out)
		if err := recorder.WriteText(out); err != nil {
			return err
		}
	}
	return nil
}

// logObserver writes debug entries for every dispatch event.
type logObserver struct {
	logger logging.Logger
	names  []string
}

func (l *logObserver) name(index int) string {
	if index < len(l.names) {
		return l.names[index]
	}
	return fmt.Sprint(index)
}

func (l *logObserver) OnRound(round, rounds int) {
	l.logger.Debug("round", logging.Int("round", round), logging.Int("rounds", rounds))
}

func (l *logObserver) OnBurnIn(index int) {
	l.logger.Debug("burn-in", logging.String("candidate", l.name(index)))
}

func (l *logObserver) OnSample(index int, elapsed time.Duration) {
	l.logger.Debug("sample", logging.String("candidate", l.name(index)), logging.Duration("elapsed", elapsed))
}

func (l *logObserver) OnSkip(index int, reason timing.SkipReason) {
	l.logger.Debug("skipped", logging.String("candidate", l.name(index)), logging.String("reason", reason.String()))
}
