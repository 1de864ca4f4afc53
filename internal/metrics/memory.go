package metrics

import (
	"runtime"
	"time"
)

// ResourceSnapshot holds a point-in-time reading of process resources.
type ResourceSnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	Goroutines   int
	UserCPU      time.Duration
	SystemCPU    time.Duration
	// CPUAvailable is false on platforms without getrusage.
	CPUAvailable bool
}

// ResourceUsage is the difference between two snapshots.
type ResourceUsage struct {
	PeakHeapAlloc uint64
	GCCycles      uint32
	GCPause       time.Duration
	UserCPU       time.Duration
	SystemCPU     time.Duration
	CPUAvailable  bool
}

// Since returns the usage accumulated between before and s. The heap figure
// is the larger of both readings.
func (s ResourceSnapshot) Since(before ResourceSnapshot) ResourceUsage {
	return ResourceUsage{
		PeakHeapAlloc: max(s.HeapAlloc, before.HeapAlloc),
		GCCycles:      s.NumGC - before.NumGC,
		GCPause:       time.Duration(s.PauseTotalNs - before.PauseTotalNs),
		UserCPU:       s.UserCPU - before.UserCPU,
		SystemCPU:     s.SystemCPU - before.SystemCPU,
		CPUAvailable:  s.CPUAvailable && before.CPUAvailable,
	}
}

// ResourceCollector reads runtime memory statistics and process CPU time.
type ResourceCollector struct{}

// NewResourceCollector creates a new resource collector.
func NewResourceCollector() *ResourceCollector {
	return &ResourceCollector{}
}

// Snapshot reads current statistics.
func (rc *ResourceCollector) Snapshot() ResourceSnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	user, sys, ok := processCPUTime()
	return ResourceSnapshot{
		HeapAlloc:    m.HeapAlloc,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		Goroutines:   runtime.NumGoroutine(),
		UserCPU:      user,
		SystemCPU:    sys,
		CPUAvailable: ok,
	}
}
