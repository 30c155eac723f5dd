package telemetry

import (
	"sync/atomic"
)

// AllocMetrics tracks element allocations and releases so that tests and
// callers can verify that every allocation is eventually matched by a
// release.
type AllocMetrics struct {
	allocs   atomic.Uint64
	releases atomic.Uint64
}

var defaultAllocMetrics AllocMetrics

// Default returns the shared package-level metrics instance.
func Default() *AllocMetrics {
	return &defaultAllocMetrics
}

// ElementAllocated records one element allocation.
func (m *AllocMetrics) ElementAllocated() {
	m.allocs.Add(1)
}

// ElementReleased records one element release.
func (m *AllocMetrics) ElementReleased() {
	m.releases.Add(1)
}

// Snapshot returns the collected counters.
func (m *AllocMetrics) Snapshot() (allocs uint64, releases uint64) {
	return m.allocs.Load(), m.releases.Load()
}

// Live returns the number of allocated elements that have not been released.
func (m *AllocMetrics) Live() int64 {
	return int64(m.allocs.Load()) - int64(m.releases.Load())
}

// Reset clears all counters.
func (m *AllocMetrics) Reset() {
	m.allocs.Store(0)
	m.releases.Store(0)
}
