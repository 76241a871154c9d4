package leak

import (
	"sync"

	"modernc.org/memory"

	"github.com/huynhanx03/go-snippets/pkg/common/apperr"
)

// RawAllocator hands out memory mapped outside the Go heap. The garbage
// collector never sees these regions: a region that is not freed stays
// mapped until Close or process exit.
type RawAllocator struct {
	mu sync.Mutex
	a  memory.Allocator
}

func NewRawAllocator() *RawAllocator {
	return &RawAllocator{}
}

func (r *RawAllocator) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, invalidSize(size)
	}

	r.mu.Lock()
	b, err := r.a.Malloc(size)
	r.mu.Unlock()
	if err != nil {
		return nil, apperr.MapError(component, err, apperr.CodeAllocation, apperr.MsgAllocFailed)
	}
	return b, nil
}

func (r *RawAllocator) Free(b []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.a.Free(b); err != nil {
		return apperr.MapError(component, err, apperr.CodeAllocation, "failed to free")
	}
	return nil
}

// Close unmaps every region, freed or not. Slices previously returned by
// Allocate must not be used afterwards.
func (r *RawAllocator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.a.Close()
}
