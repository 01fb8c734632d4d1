package cli

import (
	"fmt"
	"io"

	"github.com/agbru/eztimer/internal/timing"
)

// ProgressObserver drives a spinner from timing notifications. The spinner
// redraws from its own goroutine, so enable it only for long runs where a
// little scheduler noise is acceptable.
type ProgressObserver struct {
	timing.NullObserver

	spinner Spinner
	skipped int
}

var _ timing.Observer = (*ProgressObserver)(nil)

// NewProgressObserver creates an observer drawing to out.
func NewProgressObserver(out io.Writer) *ProgressObserver {
	return &ProgressObserver{spinner: newSpinner(out)}
}

// Start begins the animation.
func (p *ProgressObserver) Start() {
	p.spinner.UpdateSuffix(" burn-in")
	p.spinner.Start()
}

// Stop halts the animation.
func (p *ProgressObserver) Stop() {
	p.spinner.Stop()
}

// OnRound shows which round is running.
func (p *ProgressObserver) OnRound(round, rounds int) {
	p.spinner.UpdateSuffix(p.suffix(round, rounds))
}

// OnSkip counts skipped calls for the status line.
func (p *ProgressObserver) OnSkip(int, timing.SkipReason) {
	p.skipped++
}

func (p *ProgressObserver) suffix(round, rounds int) string {
	s := fmt.Sprintf(" round %d/%d", round+1, rounds)
	if p.skipped > 0 {
		s += fmt.Sprintf(" (%d skipped)", p.skipped)
	}
	return s
}
