package mapping

import "sort"

// Line holds every Segment whose Generated.Line equals LineNumber, in the
// order they were appended, along with the bookkeeping needed to sort them
// by generated column on demand.
type Line struct {
	LineNumber int32
	Segments   []Segment
	Sorted     bool
	LastColumn int32
}

// NewLine returns an empty Line for the given generated line number.
func NewLine(lineNumber int32) Line {
	return Line{LineNumber: lineNumber}
}

// Append adds a segment to the line. Sorted is cleared if the new segment's
// generated column is smaller than the largest column seen so far.
func (l *Line) Append(seg Segment) {
	if len(l.Segments) > 0 && seg.Generated.Column < l.LastColumn {
		l.Sorted = false
	}
	l.Segments = append(l.Segments, seg)
	if seg.Generated.Column > l.LastColumn {
		l.LastColumn = seg.Generated.Column
	}
}

// Sort orders the line's segments by generated column, ascending, using a
// stable sort so segments already sharing a column keep their insertion
// order. A no-op when the line is already known to be sorted.
func (l *Line) Sort() {
	if l.Sorted {
		return
	}
	sort.SliceStable(l.Segments, func(i, j int) bool {
		return l.Segments[i].Generated.Column < l.Segments[j].Generated.Column
	})
	l.Sorted = true
}

// SetSorted trusts the caller's claim about sort order, used when merging
// from a binary buffer that already asserts sortedness for an empty line.
func (l *Line) SetSorted(sorted bool) {
	l.Sorted = sorted
}
