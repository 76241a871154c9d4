package byteslice

import (
	"github.com/huynhanx03/go-snippets/pkg/pool/internal/calibrated"
)

// Pool hands out byte slices from power-of-two size classes.
type Pool struct {
	p *calibrated.Pool[[]byte]
}

// New creates an empty pool.
func New() *Pool {
	return &Pool{
		p: calibrated.New(
			// newFunc: create []byte of given size
			func(size int) []byte {
				return make([]byte, size)
			},
			// sizeFunc: get capacity of slice
			func(b []byte) int {
				return cap(b)
			},
			nil,
		),
	}
}

// Get returns a byte slice of exactly size bytes. Its contents are whatever
// the previous owner left behind.
func (p *Pool) Get(size int) []byte {
	b := p.p.Get(size)
	return b[:size]
}

// Put returns a byte slice to the pool.
func (p *Pool) Put(b []byte) {
	if cap(b) == 0 {
		return
	}
	p.p.Put(b[:cap(b)])
}

// Stats returns the pool counters.
func (p *Pool) Stats() calibrated.Stats {
	return p.p.GetStats()
}

var defaultPool = New()

// Shared returns the process-wide pool.
func Shared() *Pool {
	return defaultPool
}
