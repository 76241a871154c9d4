// Package leak demonstrates allocations that are never released.
//
// The Demonstrator acquires one block per batch and a scratch region at the
// end, and drops every one of them without freeing it. Wrap its allocator in
// a Tracker to observe the outstanding regions.
package leak

import (
	"fmt"
	"io"
	"unsafe"

	"go.uber.org/zap"

	"github.com/huynhanx03/go-snippets/pkg/common/apperr"
)

const component = "leak"

const (
	BatchSlots     = 1024
	SlotSize       = 4 // bytes per int32 slot
	BatchSize      = BatchSlots * SlotSize
	ScratchSize    = 4096
	DefaultBatches = 100
)

// Demonstrator leaks a fixed set of regions per run.
type Demonstrator struct {
	alloc  Allocator
	out    io.Writer
	logger *zap.Logger
}

// Option configures a Demonstrator.
type Option func(*Demonstrator)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(d *Demonstrator) {
		if l != nil {
			d.logger = l
		}
	}
}

// New creates a Demonstrator that allocates from alloc and prints to out.
func New(alloc Allocator, out io.Writer, opts ...Option) *Demonstrator {
	d := &Demonstrator{
		alloc:  alloc,
		out:    out,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run processes n batches and then allocates the scratch region. None of the
// n+1 regions is freed. A negative n is rejected before anything is
// allocated. An allocation failure stops the run; regions acquired before it
// stay outstanding.
func (d *Demonstrator) Run(n int) error {
	if n < 0 {
		return apperr.NewError(component, apperr.CodeInvalidArgument, fmt.Sprintf("batch count %d", n))
	}

	for i := 0; i < n; i++ {
		if err := d.processBatch(i); err != nil {
			return err
		}
	}

	data, err := d.alloc.Allocate(ScratchSize)
	if err != nil {
		return apperr.MapError(component, err, apperr.CodeAllocation, "scratch "+apperr.MsgAllocFailed)
	}
	clear(data)

	ptr := unsafe.SliceData(data)
	if _, err := fmt.Fprintf(d.out, "Data allocated at: %p\n", ptr); err != nil {
		return apperr.MapError(component, err, apperr.CodeIO, apperr.MsgWriteFailed)
	}
	d.logger.Info("scratch region abandoned",
		zap.Int("size", ScratchSize),
		zap.Uintptr("addr", uintptr(unsafe.Pointer(ptr))),
	)
	return nil
}

func (d *Demonstrator) processBatch(i int) error {
	buf, err := d.alloc.Allocate(BatchSize)
	if err != nil {
		return apperr.MapError(component, err, apperr.CodeAllocation, fmt.Sprintf("batch %d %s", i, apperr.MsgAllocFailed))
	}

	slots := Int32s(buf)
	for j := range slots {
		slots[j] = int32(i * j)
	}

	if _, err := fmt.Fprintf(d.out, "Processed batch %d\n", i); err != nil {
		return apperr.MapError(component, err, apperr.CodeIO, apperr.MsgWriteFailed)
	}
	d.logger.Debug("batch abandoned", zap.Int("batch", i), zap.Int("slots", len(slots)))
	return nil
}
