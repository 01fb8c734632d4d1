package workload

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func fibWorkloads() []Workload {
	return []Workload{Iterative{}, FastDoubling{}, Matrix{}}
}

func TestFibonacci_KnownValues(t *testing.T) {
	t.Parallel()
	known := map[uint64]string{
		0:   "0",
		1:   "1",
		2:   "1",
		10:  "55",
		50:  "12586269025",
		93:  "12200160415121876738",
		100: "354224848179261915075",
	}

	for _, w := range fibWorkloads() {
		t.Run(w.Name(), func(t *testing.T) {
			t.Parallel()
			for n, want := range known {
				got := w.Prepare(n)()
				if got.String() != want {
					t.Errorf("%s(%d) = %s, want %s", w.Name(), n, got, want)
				}
			}
		})
	}
}

func TestLastDigits(t *testing.T) {
	t.Parallel()
	w := LastDigits{}
	// F(100) = 354224848179261915075; its last 18 digits are 224848179261915075.
	got := w.Prepare(100)()
	if got.String() != "224848179261915075" {
		t.Errorf("fib-mod(100) = %s", got)
	}
	if w.Expected(100).Cmp(got) != 0 {
		t.Errorf("Expected(100) = %s, want %s", w.Expected(100), got)
	}
	if w.Prepare(0)().Sign() != 0 {
		t.Error("fib-mod(0) should be 0")
	}
}

// TestRecurrenceRelation_PropertyBased verifies F(n) = F(n-1) + F(n-2) and
// that every algorithm agrees with the reference.
func TestRecurrenceRelation_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	for _, w := range fibWorkloads() {
		properties.Property(w.Name()+" satisfies F(n) = F(n-1) + F(n-2)", prop.ForAll(
			func(n uint64) bool {
				fn := w.Prepare(n)()
				sum := new(big.Int).Add(w.Prepare(n-1)(), w.Prepare(n-2)())
				return fn.Cmp(sum) == 0
			},
			gen.UInt64Range(2, 3000),
		))
		properties.Property(w.Name()+" matches the reference", prop.ForAll(
			func(n uint64) bool {
				return w.Prepare(n)().Cmp(w.Expected(n)) == 0
			},
			gen.UInt64Range(0, 5000),
		))
	}

	properties.Property("fib-mod matches the reference modulo 10^18", prop.ForAll(
		func(n uint64) bool {
			want := new(big.Int).Mod(Reference(n), lastDigitsModulus)
			return LastDigits{}.Prepare(n)().Cmp(want) == 0
		},
		gen.UInt64Range(0, 20000),
	))

	properties.TestingRun(t)
}
