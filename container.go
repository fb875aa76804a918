// Package sourcemap is a source map v3 mapping engine: it ingests, stores,
// transforms, and emits the "mappings" field and source/name pools of a
// JavaScript source map, and merges many such maps at arbitrary line,
// column, and pool offsets.
package sourcemap

import (
	"github.com/germtb/sourcemap/mapping"
	"github.com/germtb/sourcemap/pool"
	"github.com/germtb/sourcemap/position"
)

// Container is the top-level aggregate: two string pools (sources, names),
// a dense slice of MappingLines indexed by generated line number, and
// running bounds over everything that has been added.
type Container struct {
	Sources *pool.StringPool
	Names   *pool.StringPool

	Lines            []mapping.Line
	GeneratedLines   int32
	GeneratedColumns int32
	SegmentCount     int32
}

// New returns an empty Container.
func New() *Container {
	return &Container{
		Sources:        pool.New(),
		Names:          pool.New(),
		GeneratedLines: -1,
	}
}

// CreateLinesIfUndefined extends Lines so that every index in 0..n exists,
// and eagerly advances GeneratedLines to at least n. Bulk merge paths call
// this once up front instead of letting AddMapping grow the slice one line
// at a time, and it is also how an empty line born from a run of ";;" in a
// mappings string still counts toward GeneratedLines.
func (c *Container) CreateLinesIfUndefined(n int32) {
	for int32(len(c.Lines)) <= n {
		c.Lines = append(c.Lines, mapping.NewLine(int32(len(c.Lines))))
	}
	if n > c.GeneratedLines {
		c.GeneratedLines = n
	}
}

// AddMapping appends a single segment to the container. original defaults
// to position.None, source and name default to mapping.NoSource /
// mapping.NoName for a generated-only segment.
func (c *Container) AddMapping(generated, original position.Position, source, name int32) {
	c.CreateLinesIfUndefined(generated.Line)
	if generated.Column > c.GeneratedColumns {
		c.GeneratedColumns = generated.Column
	}
	c.Lines[generated.Line].Append(mapping.Segment{
		Generated: generated,
		Original:  original,
		Source:    source,
		Name:      name,
	})
	c.SegmentCount++
}

// Sort orders every line's segments by generated column. Lines already
// flagged sorted are skipped, so a full pass over already-sorted input is
// O(total segments) rather than O(N log N).
func (c *Container) Sort() {
	for i := range c.Lines {
		c.Lines[i].Sort()
	}
}

// Finalize releases the container's owned lines. Go's garbage collector
// reclaims the backing arrays once nothing else references them; Finalize
// exists so a host binding that expects an explicit teardown call has one.
func (c *Container) Finalize() {
	c.Lines = nil
}

// AddSources interns each string into the sources pool and returns the
// resulting indices, in argument order.
func (c *Container) AddSources(sources []string) []int32 {
	out := make([]int32, len(sources))
	for i, s := range sources {
		out[i] = c.Sources.Add(s)
	}
	return out
}

// AddNames interns each string into the names pool and returns the
// resulting indices, in argument order.
func (c *Container) AddNames(names []string) []int32 {
	out := make([]int32, len(names))
	for i, n := range names {
		out[i] = c.Names.Add(n)
	}
	return out
}

// GetSourceIndex returns the pool index of s, or pool.Absent if s has never
// been added.
func (c *Container) GetSourceIndex(s string) int32 {
	return c.Sources.IndexOf(s)
}

// GetNameIndex returns the pool index of n, or pool.Absent if n has never
// been added.
func (c *Container) GetNameIndex(n string) int32 {
	return c.Names.IndexOf(n)
}
