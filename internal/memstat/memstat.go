// Package memstat samples the Go runtime's memory accounting so each
// scenario can log its footprint next to whatever the OS task manager
// shows. Heap numbers only cover the Go heap; GPU buffers and driver
// allocations are exactly what the external comparison is for.
package memstat

import (
	"fmt"
	"runtime"
	"time"
)

// Sample is one snapshot of the runtime memory counters.
type Sample struct {
	TakenAt    time.Time `json:"takenAt"`
	HeapAlloc  uint64    `json:"heapAlloc"`
	HeapSys    uint64    `json:"heapSys"`
	Sys        uint64    `json:"sys"`
	NumGC      uint32    `json:"numGC"`
	Goroutines int       `json:"goroutines"`
}

// Take reads the current runtime counters.
func Take() Sample {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return Sample{
		TakenAt:    time.Now(),
		HeapAlloc:  ms.HeapAlloc,
		HeapSys:    ms.HeapSys,
		Sys:        ms.Sys,
		NumGC:      ms.NumGC,
		Goroutines: runtime.NumGoroutine(),
	}
}

// String formats the sample as a single log/overlay line.
func (s Sample) String() string {
	return fmt.Sprintf("heap %s used / %s reserved, runtime total %s, %d GC cycles",
		formatBytes(s.HeapAlloc), formatBytes(s.HeapSys), formatBytes(s.Sys), s.NumGC)
}

func formatBytes(n uint64) string {
	const mb = 1 << 20
	if n < mb {
		return fmt.Sprintf("%d KiB", n/(1<<10))
	}
	return fmt.Sprintf("%.1f MiB", float64(n)/float64(mb))
}

// Reporter re-samples at a fixed interval when polled from the frame loop,
// so the overlay and the log show fresh numbers without calling
// runtime.ReadMemStats every frame.
type Reporter struct {
	interval time.Duration
	last     Sample
	next     time.Time
}

// NewReporter creates a reporter that refreshes at the given interval.
func NewReporter(interval time.Duration) *Reporter {
	return &Reporter{interval: interval, last: Take()}
}

// Current returns the most recent sample, refreshing it when the interval
// has elapsed.
func (r *Reporter) Current() Sample {
	if now := time.Now(); now.After(r.next) {
		r.last = Take()
		r.next = now.Add(r.interval)
	}
	return r.last
}
