package sourcemap

import "github.com/germtb/sourcemap/position"

// StringifyResult is the textual output of Stringify: the encoded
// "mappings" string plus the sources and names it references, in pool
// insertion order.
type StringifyResult struct {
	Mappings string
	Sources  []string
	Names    []string
}

// Stringify sorts the container and returns its mappings string alongside
// its source and name pools.
func (c *Container) Stringify() (StringifyResult, error) {
	return StringifyResult{
		Mappings: c.ToVLQMappings(),
		Sources:  c.Sources.Strings(),
		Names:    c.Names.Strings(),
	}, nil
}

// MapEntry is one decoded mapping record. Original, Source, and Name are
// nil when the segment has no original-side data.
type MapEntry struct {
	Generated position.Position
	Original  *position.Position
	Source    *int32
	Name      *int32
}

// MapResult is the fully decoded, sorted mapping list alongside the pools
// it references.
type MapResult struct {
	Sources  []string
	Names    []string
	Mappings []MapEntry
}

// GetMap sorts the container and returns every segment as a MapEntry, in
// generated-column order per line.
func (c *Container) GetMap() (MapResult, error) {
	c.Sort()

	result := MapResult{
		Sources: c.Sources.Strings(),
		Names:   c.Names.Strings(),
	}

	for _, line := range c.Lines {
		for _, seg := range line.Segments {
			entry := MapEntry{Generated: seg.Generated}
			if seg.HasSource() {
				original := seg.Original
				source := seg.Source
				entry.Original = &original
				entry.Source = &source
			}
			if seg.HasName() {
				name := seg.Name
				entry.Name = &name
			}
			result.Mappings = append(result.Mappings, entry)
		}
	}

	return result, nil
}
