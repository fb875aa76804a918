package sourcemap

// NewFromVLQ builds a container from a source-map-v3 "mappings" string and
// its accompanying sources/names arrays. lineOffset and colOffset default
// to 0 when omitted by a caller wrapping this in a binding layer.
func NewFromVLQ(mappings string, sources, names []string, lineOffset, colOffset int32) (*Container, error) {
	c := New()
	if err := c.AddVLQMappings(mappings, sources, names, lineOffset, colOffset); err != nil {
		return nil, err
	}
	return c, nil
}

// NewFromBuffer builds a container from a binary buffer produced by
// ToBuffer.
func NewFromBuffer(buf []byte, lineOffset, colOffset int32) (*Container, error) {
	c := New()
	if err := c.AddBufferMappings(buf, lineOffset, colOffset); err != nil {
		return nil, err
	}
	return c, nil
}
