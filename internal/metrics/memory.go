package metrics

import (
	"runtime"
	"time"
)

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	TotalAlloc   uint64 // cumulative bytes allocated
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	HeapObjects  uint64 // number of allocated heap objects
}

// MemoryDelta is the change between two snapshots.
type MemoryDelta struct {
	Allocated  uint64        // bytes allocated in between
	GCCycles   uint32        // collections completed in between
	GCPause    time.Duration // stop-the-world time in between
	HeapGrowth int64         // change of HeapAlloc, may be negative
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		TotalAlloc:   m.TotalAlloc,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		HeapObjects:  m.HeapObjects,
	}
}

// Delta returns what changed from before to after.
func Delta(before, after MemorySnapshot) MemoryDelta {
	return MemoryDelta{
		Allocated:  after.TotalAlloc - before.TotalAlloc,
		GCCycles:   after.NumGC - before.NumGC,
		GCPause:    time.Duration(after.PauseTotalNs - before.PauseTotalNs),
		HeapGrowth: int64(after.HeapAlloc) - int64(before.HeapAlloc),
	}
}
