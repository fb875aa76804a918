// Package mapping holds the per-line segment store used by a mapping
// container: Segment, the single mapping record, and Line, the
// ordered, lazily-sorted collection of segments sharing a generated line.
package mapping

import "github.com/germtb/sourcemap/position"

// NoSource and NoName mark a Segment field as absent.
const (
	NoSource int32 = -1
	NoName   int32 = -1
)

// Segment is one source map mapping record: a generated position, an
// optional original position, and optional source/name pool indices.
//
// Invariant: if Source < 0 then Original is position.None; if Source >= 0
// then Original.Line >= 0 and Original.Column >= 0.
type Segment struct {
	Generated position.Position
	Original  position.Position
	Source    int32
	Name      int32
}

// HasSource reports whether the segment references an original source file.
func (s Segment) HasSource() bool {
	return s.Source >= 0
}

// HasName reports whether the segment carries a symbol name.
func (s Segment) HasName() bool {
	return s.Name >= 0
}
