package workload

import (
	"fmt"
	"math/big"
	"time"

	"github.com/agbru/eztimer/internal/timing"
)

// Sleep blocks for a fixed duration and returns that duration in
// milliseconds. It ignores n. Sleeps make a known-latency candidate for
// checking the harness and its budgets.
type Sleep struct {
	D time.Duration
}

func (s Sleep) Name() string { return fmt.Sprintf("sleep-%dms", s.D.Milliseconds()) }

func (s Sleep) Description() string {
	return fmt.Sprintf("sleeps for %s", s.D)
}

func (s Sleep) Prepare(uint64) timing.Candidate[*big.Int] {
	return func() *big.Int {
		time.Sleep(s.D)
		return big.NewInt(s.D.Milliseconds())
	}
}

func (s Sleep) Expected(uint64) *big.Int { return big.NewInt(s.D.Milliseconds()) }
