package sourcemap

import (
	"strings"

	"github.com/germtb/sourcemap/mapping"
	"github.com/germtb/sourcemap/position"
	"github.com/germtb/sourcemap/sourcemaperr"
	"github.com/germtb/sourcemap/vlq"
)

// AddVLQMappings decodes a source-map-v3 "mappings" string into the
// container, using the destination pools' sizes as the source/name index
// offsets applied to every decoded segment, then interns sources and names
// only once decoding has succeeded. lineOffset and colOffset shift every
// decoded generated position; colOffset is re-applied at the start of every
// decoded line (not just the first) — a deliberate contract, not an
// oversight, that matches how a fixed-width prepended column behaves under
// concatenation. If mappings is malformed, sources/names are left untouched
// rather than partially interned.
func (c *Container) AddVLQMappings(mappings string, sources, names []string, lineOffset, colOffset int32) error {
	sourceOffset := int32(c.Sources.Len())
	nameOffset := int32(c.Names.Len())

	if err := c.mergeVLQText(mappings, lineOffset, colOffset, sourceOffset, nameOffset); err != nil {
		return err
	}

	c.AddSources(sources)
	c.AddNames(names)

	return nil
}

func (c *Container) mergeVLQText(text string, lineOffset, colOffset, sourceOffset, nameOffset int32) error {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, ";")
	c.CreateLinesIfUndefined(lineOffset + int32(len(lines)-1))

	genLine := lineOffset
	genCol := colOffset
	var origLine, origCol int32
	srcIdx := sourceOffset
	nameIdx := nameOffset

	for i, lineText := range lines {
		if i > 0 {
			genLine++
			genCol = colOffset
		}
		if lineText == "" {
			continue
		}

		for _, segText := range strings.Split(lineText, ",") {
			if segText == "" {
				continue
			}

			fields, err := vlq.Decode(segText)
			if err != nil {
				return err
			}

			switch len(fields) {
			case 1:
				genCol += fields[0]
				c.AddMapping(position.New(genLine, genCol), position.None, mapping.NoSource, mapping.NoName)
			case 4:
				genCol += fields[0]
				srcIdx += fields[1]
				origLine += fields[2]
				origCol += fields[3]
				c.AddMapping(position.New(genLine, genCol), position.New(origLine, origCol), srcIdx, mapping.NoName)
			case 5:
				genCol += fields[0]
				srcIdx += fields[1]
				origLine += fields[2]
				origCol += fields[3]
				nameIdx += fields[4]
				c.AddMapping(position.New(genLine, genCol), position.New(origLine, origCol), srcIdx, nameIdx)
			default:
				return sourcemaperr.NewDecodeError(segText, 0, "segment must decode to 1, 4, or 5 fields")
			}
		}
	}
	return nil
}

// ToVLQMappings sorts the container and emits its segments as a source-map
// v3 "mappings" string. src/orig/name cursors persist across generated
// lines; only the generated column cursor resets at each line boundary.
func (c *Container) ToVLQMappings() string {
	c.Sort()

	var sb strings.Builder
	var origLine, origCol, srcIdx, nameIdx int32

	for i := int32(0); i <= c.GeneratedLines; i++ {
		if i > 0 {
			sb.WriteByte(';')
		}

		if int(i) >= len(c.Lines) {
			continue
		}

		genCol := int32(0)
		for j, seg := range c.Lines[i].Segments {
			if j > 0 {
				sb.WriteByte(',')
			}

			fields := []int32{seg.Generated.Column - genCol}
			genCol = seg.Generated.Column

			if seg.HasSource() {
				fields = append(fields, seg.Source-srcIdx, seg.Original.Line-origLine, seg.Original.Column-origCol)
				srcIdx = seg.Source
				origLine = seg.Original.Line
				origCol = seg.Original.Column

				if seg.HasName() {
					fields = append(fields, seg.Name-nameIdx)
					nameIdx = seg.Name
				}
			}

			sb.WriteString(vlq.EncodeAll(fields))
		}
	}

	return sb.String()
}
