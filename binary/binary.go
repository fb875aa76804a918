// Package binary implements the tagged flat binary layout that
// Container.ToBuffer/AddBufferMappings serialize and merge.
package binary

import (
	"bytes"
	"encoding/binary"

	"github.com/germtb/sourcemap/sourcemaperr"
)

// magic identifies the format; version is bumped if the layout ever
// changes incompatibly. There is exactly one version today.
var magic = [4]byte{'S', 'R', 'M', '1'}

// Segment is one wire-format mapping record. Source and Name are -1 when
// absent, matching the in-memory representation.
type Segment struct {
	GenLine, GenCol   int32
	OrigLine, OrigCol int32
	Source, Name      int32
}

// Line is one wire-format line: its number, whether the encoder had
// already sorted it, and its segments in stored order. Lines with no
// segments are never written to the wire.
type Line struct {
	LineNumber int32
	IsSorted   bool
	Segments   []Segment
}

// Buffer is the fully decoded wire format: string pools plus the total
// line count (including lines with no segments) and the non-empty lines.
type Buffer struct {
	Sources   []string
	Names     []string
	LineCount int32
	Lines     []Line
}

// Encode serializes buf into the tagged flat binary layout.
func Encode(buf *Buffer) []byte {
	var out bytes.Buffer
	out.Write(magic[:])

	writeStrings(&out, buf.Sources)
	writeStrings(&out, buf.Names)

	writeU32(&out, uint32(buf.LineCount))
	writeU32(&out, uint32(len(buf.Lines)))
	for _, line := range buf.Lines {
		writeU32(&out, uint32(line.LineNumber))
		if line.IsSorted {
			out.WriteByte(1)
		} else {
			out.WriteByte(0)
		}
		writeU32(&out, uint32(len(line.Segments)))
		for _, seg := range line.Segments {
			writeI32(&out, seg.GenLine)
			writeI32(&out, seg.GenCol)
			writeI32(&out, seg.OrigLine)
			writeI32(&out, seg.OrigCol)
			writeI32(&out, seg.Source)
			writeI32(&out, seg.Name)
		}
	}

	return out.Bytes()
}

// Decode parses a buffer written by Encode.
func Decode(data []byte) (*Buffer, error) {
	r := &reader{data: data}

	var got [4]byte
	if !r.readRaw(got[:]) {
		return nil, sourcemaperr.NewDecodeError("<binary>", 0, "truncated header")
	}
	if got != magic {
		return nil, sourcemaperr.NewDecodeError("<binary>", 0, "not a source map binary buffer")
	}

	sources, err := readStrings(r)
	if err != nil {
		return nil, err
	}
	names, err := readStrings(r)
	if err != nil {
		return nil, err
	}

	lineCount, ok := r.readU32()
	if !ok {
		return nil, sourcemaperr.NewDecodeError("<binary>", r.offset, "truncated line count")
	}
	storedLines, ok := r.readU32()
	if !ok {
		return nil, sourcemaperr.NewDecodeError("<binary>", r.offset, "truncated stored line count")
	}

	buf := &Buffer{Sources: sources, Names: names, LineCount: int32(lineCount)}
	for i := uint32(0); i < storedLines; i++ {
		lineNumber, ok := r.readU32()
		if !ok {
			return nil, sourcemaperr.NewDecodeError("<binary>", r.offset, "truncated line number")
		}
		sortedByte, ok := r.readByte()
		if !ok {
			return nil, sourcemaperr.NewDecodeError("<binary>", r.offset, "truncated sorted flag")
		}
		segCount, ok := r.readU32()
		if !ok {
			return nil, sourcemaperr.NewDecodeError("<binary>", r.offset, "truncated segment count")
		}

		line := Line{LineNumber: int32(lineNumber), IsSorted: sortedByte != 0}
		for j := uint32(0); j < segCount; j++ {
			var seg Segment
			fields := []*int32{&seg.GenLine, &seg.GenCol, &seg.OrigLine, &seg.OrigCol, &seg.Source, &seg.Name}
			for _, f := range fields {
				v, ok := r.readI32()
				if !ok {
					return nil, sourcemaperr.NewDecodeError("<binary>", r.offset, "truncated segment field")
				}
				*f = v
			}
			line.Segments = append(line.Segments, seg)
		}
		buf.Lines = append(buf.Lines, line)
	}

	return buf, nil
}

func writeStrings(out *bytes.Buffer, strs []string) {
	writeU32(out, uint32(len(strs)))
	for _, s := range strs {
		writeU32(out, uint32(len(s)))
		out.WriteString(s)
	}
}

func readStrings(r *reader) ([]string, error) {
	count, ok := r.readU32()
	if !ok {
		return nil, sourcemaperr.NewDecodeError("<binary>", r.offset, "truncated string pool count")
	}
	out := make([]string, 0, count)
	for i := uint32(0); i < count; i++ {
		n, ok := r.readU32()
		if !ok {
			return nil, sourcemaperr.NewDecodeError("<binary>", r.offset, "truncated string length")
		}
		s, ok := r.readString(int(n))
		if !ok {
			return nil, sourcemaperr.NewDecodeError("<binary>", r.offset, "truncated string payload")
		}
		out = append(out, s)
	}
	return out, nil
}

func writeU32(out *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	out.Write(b[:])
}

func writeI32(out *bytes.Buffer, v int32) {
	writeU32(out, uint32(v))
}

type reader struct {
	data   []byte
	offset int
}

func (r *reader) readRaw(dst []byte) bool {
	if r.offset+len(dst) > len(r.data) {
		return false
	}
	copy(dst, r.data[r.offset:])
	r.offset += len(dst)
	return true
}

func (r *reader) readU32() (uint32, bool) {
	var b [4]byte
	if !r.readRaw(b[:]) {
		return 0, false
	}
	return binary.BigEndian.Uint32(b[:]), true
}

func (r *reader) readI32() (int32, bool) {
	v, ok := r.readU32()
	return int32(v), ok
}

func (r *reader) readByte() (byte, bool) {
	if r.offset+1 > len(r.data) {
		return 0, false
	}
	b := r.data[r.offset]
	r.offset++
	return b, true
}

func (r *reader) readString(n int) (string, bool) {
	if r.offset+n > len(r.data) {
		return "", false
	}
	s := string(r.data[r.offset : r.offset+n])
	r.offset += n
	return s, true
}
