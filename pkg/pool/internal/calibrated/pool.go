package calibrated

import (
	"sync"
	"sync/atomic"
)

const (
	MinBitSize = 6  // 64 bytes (CPU cache line)
	Steps      = 20 // 64B to 32MB

	MinSize = 1 << MinBitSize
	MaxSize = 1 << (MinBitSize + Steps - 1)
)

// Pool is a generic pool of items grouped into power-of-two size classes.
// Requests larger than MaxSize bypass the buckets.
type Pool[T any] struct {
	gets      [Steps]atomic.Uint64
	puts      [Steps]atomic.Uint64
	oversized atomic.Uint64
	buckets   [Steps]sync.Pool
	newFunc   func(size int) T
	sizeFunc  func(T) int
	resetFunc func(T)
}

// New creates a new pool. newFunc builds an item of the given capacity,
// sizeFunc reports an item's capacity and resetFunc, if set, runs before an
// item is stored.
func New[T any](newFunc func(size int) T, sizeFunc func(T) int, resetFunc func(T)) *Pool[T] {
	p := &Pool[T]{
		newFunc:   newFunc,
		sizeFunc:  sizeFunc,
		resetFunc: resetFunc,
	}
	for i := range p.buckets {
		size := MinSize << i
		p.buckets[i].New = func() any {
			return newFunc(size)
		}
	}
	return p
}

// Get returns an item with capacity of at least size.
func (p *Pool[T]) Get(size int) T {
	if size <= 0 {
		size = MinSize
	}

	idx := SizeToIndex(size)
	if idx >= Steps {
		p.oversized.Add(1)
		return p.newFunc(size)
	}

	p.gets[idx].Add(1)
	return p.buckets[idx].Get().(T)
}

// Put returns an item to the bucket matching its capacity. Items whose
// capacity is not exactly a bucket size are dropped.
func (p *Pool[T]) Put(item T) {
	size := p.sizeFunc(item)
	if size < MinSize {
		return
	}

	idx := SizeToIndex(size)
	if idx >= Steps || BucketSize(idx) != size {
		return
	}

	if p.resetFunc != nil {
		p.resetFunc(item)
	}
	p.puts[idx].Add(1)
	p.buckets[idx].Put(item)
}

// Stats is a snapshot of the pool counters.
type Stats struct {
	Gets      [Steps]uint64
	Puts      [Steps]uint64
	Oversized uint64
}

// InUse returns the number of bucketed items handed out and not returned.
func (s Stats) InUse() uint64 {
	var n uint64
	for i := range s.Gets {
		if s.Gets[i] > s.Puts[i] {
			n += s.Gets[i] - s.Puts[i]
		}
	}
	return n
}

// GetStats returns the current counters.
func (p *Pool[T]) GetStats() Stats {
	var st Stats
	for i := 0; i < Steps; i++ {
		st.Gets[i] = p.gets[i].Load()
		st.Puts[i] = p.puts[i].Load()
	}
	st.Oversized = p.oversized.Load()
	return st
}

// SizeToIndex returns the bucket index for a given size.
func SizeToIndex(n int) int {
	n--
	n >>= MinBitSize
	idx := 0
	for n > 0 {
		n >>= 1
		idx++
	}
	return idx
}

// BucketSize returns the size of bucket at index i.
func BucketSize(i int) int {
	if i < 0 || i >= Steps {
		return 0
	}
	return MinSize << i
}
