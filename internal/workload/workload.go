package workload

import (
	"fmt"
	"math/big"
	"sort"
	"sync"

	apperrors "github.com/agbru/eztimer/internal/errors"
	"github.com/agbru/eztimer/internal/timing"
)

// Workload is a named computation that can be turned into a timing candidate.
type Workload interface {
	// Name is the identifier used on the command line.
	Name() string
	// Description is a one-line human readable summary.
	Description() string
	// Prepare returns the candidate for input n. Any setup happens here so
	// it is not timed.
	Prepare(n uint64) timing.Candidate[*big.Int]
	// Expected returns the value a correct candidate returns for input n.
	Expected(n uint64) *big.Int
}

// Factory stores workloads by name.
type Factory interface {
	Register(w Workload) error
	Get(name string) (Workload, error)
	List() []string
	GetAll() map[string]Workload
}

// DefaultFactory is a concurrency-safe Factory.
type DefaultFactory struct {
	mu        sync.RWMutex
	workloads map[string]Workload
}

var _ Factory = (*DefaultFactory)(nil)

// NewFactory returns an empty factory.
func NewFactory() *DefaultFactory {
	return &DefaultFactory{workloads: make(map[string]Workload)}
}

// NewDefaultFactory returns a factory holding every built-in workload.
func NewDefaultFactory() *DefaultFactory {
	f := NewFactory()
	for _, w := range builtins() {
		// Built-in names are unique.
		_ = f.Register(w)
	}
	return f
}

// Register adds w. Registering a name twice is an error.
func (f *DefaultFactory) Register(w Workload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.workloads[w.Name()]; exists {
		return fmt.Errorf("workload %q already registered", w.Name())
	}
	f.workloads[w.Name()] = w
	return nil
}

// Get returns the workload registered under name.
func (f *DefaultFactory) Get(name string) (Workload, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	w, ok := f.workloads[name]
	if !ok {
		return nil, apperrors.ValidationError{Field: "algo", Message: fmt.Sprintf("unknown workload %q", name)}
	}
	return w, nil
}

// List returns the registered names in sorted order.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.workloads))
	for name := range f.workloads {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll returns a copy of the registry.
func (f *DefaultFactory) GetAll() map[string]Workload {
	f.mu.RLock()
	defer f.mu.RUnlock()
	all := make(map[string]Workload, len(f.workloads))
	for name, w := range f.workloads {
		all[name] = w
	}
	return all
}

// Resolve returns the workloads named in names, in that order. The single
// name "all" selects every registered workload in sorted order.
func Resolve(f Factory, names []string) ([]Workload, error) {
	if len(names) == 1 && names[0] == "all" {
		names = f.List()
	}
	if len(names) == 0 {
		return nil, apperrors.ValidationError{Field: "algo", Message: "no workload selected"}
	}
	seen := make(map[string]bool, len(names))
	out := make([]Workload, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		w, err := f.Get(name)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

// Batch holds the candidates and the result check for a set of workloads.
type Batch struct {
	Names      []string
	Candidates []timing.Candidate[*big.Int]
	Check      timing.Check[*big.Int]
}

// NewBatch prepares every workload for input n and builds a check comparing
// each result with the workload's expected value. Expected values are
// computed here, before any timing starts.
func NewBatch(ws []Workload, n uint64) Batch {
	b := Batch{
		Names:      make([]string, len(ws)),
		Candidates: make([]timing.Candidate[*big.Int], len(ws)),
	}
	expected := make([]*big.Int, len(ws))
	for i, w := range ws {
		b.Names[i] = w.Name()
		b.Candidates[i] = w.Prepare(n)
		expected[i] = w.Expected(n)
	}
	b.Check = func(res *big.Int, index int) error {
		if res == nil {
			return fmt.Errorf("%s returned nil", b.Names[index])
		}
		if res.Cmp(expected[index]) != 0 {
			return fmt.Errorf("%s returned a wrong value (%d bits, want %d bits)",
				b.Names[index], res.BitLen(), expected[index].BitLen())
		}
		return nil
	}
	return b
}
