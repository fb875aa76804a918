package sourcemap

import (
	"github.com/germtb/sourcemap/binary"
	"github.com/germtb/sourcemap/mapping"
	"github.com/germtb/sourcemap/position"
)

// ToBuffer sorts the container and serializes it to the tagged flat binary
// layout described in package binary.
func (c *Container) ToBuffer() ([]byte, error) {
	c.Sort()

	buf := &binary.Buffer{
		Sources:   c.Sources.Strings(),
		Names:     c.Names.Strings(),
		LineCount: int32(len(c.Lines)),
	}

	for _, line := range c.Lines {
		if len(line.Segments) == 0 {
			continue
		}
		segs := make([]binary.Segment, len(line.Segments))
		for i, seg := range line.Segments {
			segs[i] = binary.Segment{
				GenLine:  seg.Generated.Line,
				GenCol:   seg.Generated.Column,
				OrigLine: seg.Original.Line,
				OrigCol:  seg.Original.Column,
				Source:   seg.Source,
				Name:     seg.Name,
			}
		}
		buf.Lines = append(buf.Lines, binary.Line{
			LineNumber: line.LineNumber,
			IsSorted:   line.Sorted,
			Segments:   segs,
		})
	}

	return binary.Encode(buf), nil
}

// AddBufferMappings decodes buf and merges its segments into the
// container, shifting generated positions by lineOffset/colOffset and its
// source/name pool indices by the sizes of the local pools captured before
// the buffer's own sources/names are appended to them. As with
// AddVLQMappings, this means a buffer whose pool duplicates a string
// already present locally will not point at the merged location of that
// duplicate — the offset is computed once, up front.
func (c *Container) AddBufferMappings(buf []byte, lineOffset, colOffset int32) error {
	decoded, err := binary.Decode(buf)
	if err != nil {
		return err
	}

	srcBase := int32(c.Sources.Len())
	nameBase := int32(c.Names.Len())

	if decoded.LineCount > 0 {
		c.CreateLinesIfUndefined(decoded.LineCount + lineOffset - 1)
	}

	for _, line := range decoded.Lines {
		targetIdx := line.LineNumber + lineOffset
		wasEmpty := int(targetIdx) >= len(c.Lines) || len(c.Lines[targetIdx].Segments) == 0

		for _, seg := range line.Segments {
			generated := position.New(seg.GenLine+lineOffset, seg.GenCol+colOffset)

			original := position.None
			source := int32(mapping.NoSource)
			if seg.Source >= 0 {
				source = seg.Source + srcBase
				original = position.New(seg.OrigLine, seg.OrigCol)
			}

			name := int32(mapping.NoName)
			if seg.Name >= 0 {
				name = seg.Name + nameBase
			}

			c.AddMapping(generated, original, source, name)
		}

		if wasEmpty {
			c.Lines[targetIdx].SetSorted(line.IsSorted)
		}
	}

	c.AddSources(decoded.Sources)
	c.AddNames(decoded.Names)

	return nil
}
