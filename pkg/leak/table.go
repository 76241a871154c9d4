package leak

import (
	"encoding/binary"
	"math/bits"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// table maps region addresses to their records, split into independently
// locked shards.
type table struct {
	shards []*shard
	mask   uint64
}

type shard struct {
	sync.RWMutex
	data map[uintptr]*Record
}

// newTable creates a table with n shards rounded up to a power of two.
func newTable(n int) *table {
	if n <= 1 {
		n = 2
	}
	n = 1 << bits.Len(uint(n-1))

	t := &table{
		shards: make([]*shard, n),
		mask:   uint64(n - 1),
	}
	for i := range t.shards {
		t.shards[i] = &shard{data: make(map[uintptr]*Record)}
	}
	return t
}

// shardFor hashes the address; region addresses are aligned, so their low
// bits alone would crowd a few shards.
func (t *table) shardFor(addr uintptr) *shard {
	var key [8]byte
	binary.LittleEndian.PutUint64(key[:], uint64(addr))
	return t.shards[xxhash.Sum64(key[:])&t.mask]
}

func (t *table) set(rec *Record) {
	s := t.shardFor(rec.Addr)
	s.Lock()
	s.data[rec.Addr] = rec
	s.Unlock()
}

// take removes and returns the record stored under addr.
func (t *table) take(addr uintptr) (*Record, bool) {
	s := t.shardFor(addr)
	s.Lock()
	rec, ok := s.data[addr]
	if ok {
		delete(s.data, addr)
	}
	s.Unlock()
	return rec, ok
}

func (t *table) len() int {
	total := 0
	for _, s := range t.shards {
		s.RLock()
		total += len(s.data)
		s.RUnlock()
	}
	return total
}

// snapshot copies every record. Shards are locked one at a time, so the
// result is not atomic across concurrent writers.
func (t *table) snapshot() []*Record {
	out := make([]*Record, 0, t.len())
	for _, s := range t.shards {
		s.RLock()
		for _, rec := range s.data {
			out = append(out, rec)
		}
		s.RUnlock()
	}
	return out
}
