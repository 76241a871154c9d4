package leak

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/huynhanx03/go-snippets/pkg/common/apperr"
	"github.com/huynhanx03/go-snippets/pkg/timer"
)

const defaultShards = 16

// ErrUnknownBlock is returned when freeing a region the Tracker did not hand out
// or has already freed.
var ErrUnknownBlock = apperr.NewError(component, apperr.CodeInvalidArgument, apperr.MsgUnknownBlock)

// Record is the handle issued for one allocation.
type Record struct {
	ID          uint64
	Addr        uintptr
	Size        int
	AllocatedAt time.Time

	data []byte
}

// Bytes returns the region the record describes.
func (r *Record) Bytes() []byte {
	return r.data
}

// Tracker is an Allocator that records every region handed out by its
// backend until the region is freed through it. It is safe for concurrent use.
type Tracker struct {
	backend Allocator
	clock   timer.Clock
	live    *table

	// mu guards the counters so a Stats snapshot is always self-consistent.
	mu     sync.Mutex
	allocs uint64
	frees  uint64
	bytes  int64
}

// NewTracker wraps backend. A nil clock uses the wall clock.
func NewTracker(backend Allocator, clock timer.Clock) *Tracker {
	if clock == nil {
		clock = timer.System()
	}
	return &Tracker{
		backend: backend,
		clock:   clock,
		live:    newTable(defaultShards),
	}
}

func (t *Tracker) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, invalidSize(size)
	}

	b, err := t.backend.Allocate(size)
	if err != nil {
		return nil, err
	}

	rec := &Record{
		Addr:        addressOf(b),
		Size:        size,
		AllocatedAt: t.clock.Now(),
		data:        b,
	}

	t.mu.Lock()
	t.allocs++
	t.bytes += int64(size)
	rec.ID = t.allocs
	t.mu.Unlock()

	t.live.set(rec)
	return b, nil
}

func (t *Tracker) Free(b []byte) error {
	if len(b) == 0 {
		return ErrUnknownBlock
	}

	rec, ok := t.live.take(addressOf(b))
	if !ok {
		return ErrUnknownBlock
	}

	t.mu.Lock()
	t.frees++
	t.bytes -= int64(rec.Size)
	t.mu.Unlock()

	return t.backend.Free(rec.data)
}

// Outstanding returns the records of every region not yet freed, oldest
// first. While other goroutines allocate or free, the result may trail
// Stats by the operations in flight.
func (t *Tracker) Outstanding() []*Record {
	recs := t.live.snapshot()
	slices.SortFunc(recs, func(a, b *Record) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return recs
}

// Stats summarises the allocation history of a Tracker.
type Stats struct {
	Allocations      uint64
	Frees            uint64
	Outstanding      int
	OutstandingBytes int64
}

// Stats returns the current counters. Allocations always equals Frees plus
// Outstanding.
func (t *Tracker) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()

	return Stats{
		Allocations:      t.allocs,
		Frees:            t.frees,
		Outstanding:      int(t.allocs - t.frees),
		OutstandingBytes: t.bytes,
	}
}

// Leaking reports whether any region is still outstanding.
func (s Stats) Leaking() bool {
	return s.Outstanding > 0
}

// String renders the leak summary.
func (s Stats) String() string {
	return fmt.Sprintf("Found %d allocation(s) but only %d deallocation(s): %d region(s), %d byte(s) outstanding",
		s.Allocations, s.Frees, s.Outstanding, s.OutstandingBytes)
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (s Stats) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint64("allocations", s.Allocations)
	enc.AddUint64("frees", s.Frees)
	enc.AddInt("outstanding", s.Outstanding)
	enc.AddInt64("outstanding_bytes", s.OutstandingBytes)
	return nil
}
