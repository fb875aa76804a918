// Package vlq implements the base64 variable-length quantity encoding used
// by the source map v3 "mappings" field.
package vlq

import "github.com/germtb/sourcemap/sourcemaperr"

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

const (
	continuationBit = 1 << 5
	valueMask       = continuationBit - 1
	shiftPerGroup   = 5
)

var decodeTable [256]int8

func init() {
	for i := range decodeTable {
		decodeTable[i] = -1
	}
	for i, c := range alphabet {
		decodeTable[byte(c)] = int8(i)
	}
}

// Encode returns the base64 VLQ encoding of a single signed integer.
func Encode(v int32) string {
	var raw uint32
	if v < 0 {
		raw = (uint32(-v) << 1) | 1
	} else {
		raw = uint32(v) << 1
	}

	var out []byte
	for {
		digit := raw & valueMask
		raw >>= shiftPerGroup
		if raw > 0 {
			digit |= continuationBit
		}
		out = append(out, alphabet[digit])
		if raw == 0 {
			break
		}
	}
	return string(out)
}

// EncodeAll encodes a run of signed integers with no separators, matching
// the compact multi-field segments of a mappings string.
func EncodeAll(values []int32) string {
	var out []byte
	for _, v := range values {
		out = append(out, Encode(v)...)
	}
	return string(out)
}

// Decode parses every VLQ-encoded integer packed in s with no separators
// (a single mappings segment token) and returns them in order. It returns a
// *sourcemaperr.DecodeError if a byte falls outside the alphabet or the
// input ends mid-group (continuation bit set with nothing following).
func Decode(s string) ([]int32, error) {
	var out []int32
	var value uint32
	var shift uint
	inGroup := false

	for i := 0; i < len(s); i++ {
		digit := decodeTable[s[i]]
		if digit < 0 {
			return nil, sourcemaperr.NewDecodeError(s, i, "character outside the base64 VLQ alphabet")
		}
		inGroup = true

		value |= uint32(digit&valueMask) << shift
		if digit&continuationBit != 0 {
			shift += shiftPerGroup
			continue
		}

		out = append(out, finalize(value))
		value = 0
		shift = 0
		inGroup = false
	}

	if inGroup {
		return nil, sourcemaperr.NewDecodeError(s, len(s), "truncated VLQ group: continuation bit set at end of input")
	}
	return out, nil
}

// finalize converts an accumulated raw value (sign in bit 0, magnitude in
// the remaining bits) into a signed integer, never producing -0.
func finalize(raw uint32) int32 {
	negative := raw&1 != 0
	magnitude := int32(raw >> 1)
	if magnitude == 0 {
		return 0
	}
	if negative {
		return -magnitude
	}
	return magnitude
}
