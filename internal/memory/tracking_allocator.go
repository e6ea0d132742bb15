package memory

import (
	"sync/atomic"

	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/23skdu/layoutbench/internal/metrics"
)

// TrackingAllocator wraps a base memory.Allocator and counts the bytes it
// hands out, so a population's real allocation can be compared with its
// estimated footprint.
type TrackingAllocator struct {
	memory.Allocator
	BytesAllocated atomic.Int64
	BytesFreed     atomic.Int64
}

// NewTrackingAllocator creates a new allocator that wraps the given base allocator.
// If base is nil, it uses memory.DefaultAllocator.
func NewTrackingAllocator(base memory.Allocator) *TrackingAllocator {
	if base == nil {
		base = memory.DefaultAllocator
	}
	return &TrackingAllocator{Allocator: base}
}

func (a *TrackingAllocator) Allocate(size int) []byte {
	a.BytesAllocated.Add(int64(size))
	metrics.AllocatorBytesAllocatedTotal.Add(float64(size))
	return a.Allocator.Allocate(size)
}

func (a *TrackingAllocator) Reallocate(size int, b []byte) []byte {
	a.BytesAllocated.Add(int64(size - len(b)))
	if size > len(b) {
		metrics.AllocatorBytesAllocatedTotal.Add(float64(size - len(b)))
	}
	return a.Allocator.Reallocate(size, b)
}

func (a *TrackingAllocator) Free(b []byte) {
	a.BytesFreed.Add(int64(len(b)))
	metrics.AllocatorBytesFreedTotal.Add(float64(len(b)))
	a.Allocator.Free(b)
}

// Live returns bytes allocated and not yet freed.
func (a *TrackingAllocator) Live() int64 {
	return a.BytesAllocated.Load() - a.BytesFreed.Load()
}

var _ memory.Allocator = (*TrackingAllocator)(nil)
