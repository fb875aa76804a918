// Package pool implements StringPool, the deduplicating interner backing a
// mapping container's sources and names arrays.
package pool

import (
	"sync"

	"github.com/germtb/sourcemap/internal/hashkey"
)

// Absent is returned by IndexOf when a string has not been interned.
const Absent int32 = -1

// StringPool is an insertion-ordered, deduplicating string interner. Once a
// string has been added its index never changes for the lifetime of the
// pool. StringPool is safe for concurrent use so a Finalized container's
// pools can be read from multiple goroutines.
type StringPool struct {
	mu      sync.Mutex
	rev     []string
	buckets map[uint32][]int32
}

// New returns an empty StringPool.
func New() *StringPool {
	return &StringPool{
		buckets: make(map[uint32][]int32),
	}
}

// Add interns s, returning its stable index. If s is already present the
// existing index is returned and no new entry is created.
func (p *StringPool) Add(s string) int32 {
	p.mu.Lock()
	defer p.mu.Unlock()

	h := hashkey.Of(s)
	for _, idx := range p.buckets[h] {
		if p.rev[idx] == s {
			return idx
		}
	}

	idx := int32(len(p.rev))
	p.rev = append(p.rev, s)
	p.buckets[h] = append(p.buckets[h], idx)
	return idx
}

// IndexOf returns the stored index for s, or Absent if s has not been
// interned.
func (p *StringPool) IndexOf(s string) int32 {
	p.mu.Lock()
	defer p.mu.Unlock()

	h := hashkey.Of(s)
	for _, idx := range p.buckets[h] {
		if p.rev[idx] == s {
			return idx
		}
	}
	return Absent
}

// Lookup returns the string stored at idx. Panics if idx is out of range,
// matching the pack's convention that interner misuse is a programmer error.
func (p *StringPool) Lookup(idx int32) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if idx < 0 || int(idx) >= len(p.rev) {
		panic("pool: index out of range")
	}
	return p.rev[idx]
}

// Len returns the number of interned strings.
func (p *StringPool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.rev)
}

// Strings returns the interned strings in insertion order. The returned
// slice is a copy; mutating it does not affect the pool.
func (p *StringPool) Strings() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.rev))
	copy(out, p.rev)
	return out
}
