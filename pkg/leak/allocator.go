package leak

import (
	"fmt"
	"unsafe"

	"github.com/huynhanx03/go-snippets/pkg/common/apperr"
	"github.com/huynhanx03/go-snippets/pkg/pool/byteslice"
)

// Allocator hands out memory regions. Regions are returned uninitialised.
type Allocator interface {
	Allocate(size int) ([]byte, error)
	Free(b []byte) error
}

// Backend names accepted by NewAllocator.
const (
	BackendRaw  = "raw"
	BackendHeap = "heap"
	BackendPool = "pool"
)

// NewAllocator builds the backend registered under kind.
func NewAllocator(kind string) (Allocator, error) {
	switch kind {
	case BackendRaw:
		return NewRawAllocator(), nil
	case BackendHeap:
		return HeapAllocator{}, nil
	case BackendPool:
		return NewPoolAllocator(byteslice.Shared()), nil
	default:
		return nil, apperr.NewError(component, apperr.CodeInvalidArgument, fmt.Sprintf("unknown allocator %q", kind))
	}
}

// HeapAllocator allocates from the Go heap. Free is a no-op; the garbage
// collector reclaims a region once nothing references it.
type HeapAllocator struct{}

func (HeapAllocator) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, invalidSize(size)
	}
	return make([]byte, size), nil
}

func (HeapAllocator) Free([]byte) error { return nil }

// PoolAllocator recycles regions through size-class pools.
type PoolAllocator struct {
	pool *byteslice.Pool
}

func NewPoolAllocator(pool *byteslice.Pool) *PoolAllocator {
	return &PoolAllocator{pool: pool}
}

func (a *PoolAllocator) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, invalidSize(size)
	}
	return a.pool.Get(size), nil
}

func (a *PoolAllocator) Free(b []byte) error {
	a.pool.Put(b)
	return nil
}

// Int32s views b as a slice of int32 slots. Trailing bytes that do not fill
// a whole slot are ignored.
func Int32s(b []byte) []int32 {
	if len(b) < SlotSize {
		return nil
	}
	return unsafe.Slice((*int32)(unsafe.Pointer(unsafe.SliceData(b))), len(b)/SlotSize)
}

func addressOf(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}

func invalidSize(size int) error {
	return apperr.NewError(component, apperr.CodeInvalidArgument, fmt.Sprintf("allocation size %d", size))
}
