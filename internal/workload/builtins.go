package workload

import "time"

// optional holds workloads compiled in behind build tags.
var optional []Workload

func builtins() []Workload {
	ws := []Workload{
		Iterative{},
		FastDoubling{},
		Matrix{},
		LastDigits{},
		Sleep{D: 10 * time.Millisecond},
		Sleep{D: 20 * time.Millisecond},
		Sleep{D: 30 * time.Millisecond},
	}
	return append(ws, optional...)
}
