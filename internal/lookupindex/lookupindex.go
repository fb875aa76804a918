// Package lookupindex builds a convenience nearest-mapping index over a
// decoded source map, for the CLI's "inspect --at" flag. It is not part of
// the engine's own lookup surface (Container.FindByGenerated /
// FindByOriginal remain unimplemented stubs); it only searches what
// Container.GetMap already produced.
package lookupindex

import (
	"sort"

	"github.com/germtb/sourcemap"
)

type entry struct {
	column int32
	record sourcemap.MapEntry
}

// Index answers "what original position is nearest generated (line,
// column)" by scanning backward on the same generated line, then across
// earlier lines, the same search order the pack's own bidirectional
// source-map lookups use.
type Index struct {
	byLine map[int32][]entry
}

// Build indexes every mapping entry in m by its generated line, sorted by
// generated column within each line.
func Build(m sourcemap.MapResult) *Index {
	idx := &Index{byLine: make(map[int32][]entry)}
	for _, e := range m.Mappings {
		line := e.Generated.Line
		idx.byLine[line] = append(idx.byLine[line], entry{column: e.Generated.Column, record: e})
	}
	for line := range idx.byLine {
		entries := idx.byLine[line]
		sort.Slice(entries, func(i, j int) bool { return entries[i].column < entries[j].column })
		idx.byLine[line] = entries
	}
	return idx
}

// Nearest returns the mapping at or before (line, column). It first tries
// the exact or closest preceding column on the same line, then falls back
// to the last mapping on the closest earlier populated line.
func (idx *Index) Nearest(line, column int32) (sourcemap.MapEntry, bool) {
	if entries, ok := idx.byLine[line]; ok {
		best := -1
		for i, e := range entries {
			if e.column <= column {
				best = i
			} else {
				break
			}
		}
		if best >= 0 {
			return entries[best].record, true
		}
	}

	for l := line - 1; l >= 0; l-- {
		entries, ok := idx.byLine[l]
		if ok && len(entries) > 0 {
			return entries[len(entries)-1].record, true
		}
	}

	return sourcemap.MapEntry{}, false
}
