package lexy

import (
	"bytes"
	"unicode/utf8"
)

// encodeString appends a UTF-8 string's payload: every byte of its UTF-8
// representation incremented by one (this never wraps, since well-formed
// UTF-8 never contains 0xFF), followed by a 0x00 terminator. The +1 shift
// preserves the byte-wise order of the UTF-8 form and guarantees the
// terminator is the only 0x00 byte the payload can contain.
func encodeString(buf []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		buf = append(buf, s[i]+1)
	}
	return append(buf, 0x00)
}

// decodeString reads a string payload written by encodeString, stopping at
// the first 0x00 byte.
func decodeString(buf []byte) (string, []byte, error) {
	idx := bytes.IndexByte(buf, 0x00)
	if idx < 0 {
		return "", nil, ErrTruncatedInput
	}
	payload := make([]byte, idx)
	for i, b := range buf[:idx] {
		payload[i] = b - 1
	}
	if !utf8.Valid(payload) {
		return "", nil, ErrInvalidUTF8
	}
	return string(payload), buf[idx+1:], nil
}

// escapeSeven expands seven input bytes into eight output bytes in 0x80..0xFF,
// by repacking the 56 input bits into eight 7-bit groups, each stored in the
// low 7 bits of its output byte with the high bit forced to 1. Byte-wise
// order of the expansion equals byte-wise order of the seven input bytes,
// since the groups are emitted most-significant-first.
func escapeSeven(chunk [7]byte) [8]byte {
	var x uint64
	for _, b := range chunk {
		x = x<<8 | uint64(b)
	}
	var out [8]byte
	for i := range out {
		shift := uint(56 - 7*(i+1))
		out[i] = byte(x>>shift&0x7F) | 0x80
	}
	return out
}

// unescapeSeven reverses escapeSeven.
func unescapeSeven(chunk [8]byte) [7]byte {
	var x uint64
	for _, b := range chunk {
		x = x<<7 | uint64(b&0x7F)
	}
	var out [7]byte
	for i := range out {
		shift := uint(8 * (6 - i))
		out[i] = byte(x >> shift)
	}
	return out
}

// encodeBytes appends a raw byte string's payload: a 7-to-8-bit expansion of
// value (so the output never contains 0x00 except as the terminator that
// follows), then a 0x00 terminator. Full 7-byte groups expand to all 8
// escaped bytes; a final partial group of r bytes, 0 < r < 7, expands to
// only its first r+1 escaped bytes, so an empty value encodes to a bare
// terminator and no group is ever emitted for it.
func encodeBytes(buf []byte, value []byte) []byte {
	n := len(value)
	for i := 0; i < n; i += 7 {
		end := i + 7
		var chunk [7]byte
		if end > n {
			copy(chunk[:], value[i:n])
			escaped := escapeSeven(chunk)
			buf = append(buf, escaped[:n-i+1]...)
		} else {
			copy(chunk[:], value[i:end])
			escaped := escapeSeven(chunk)
			buf = append(buf, escaped[:]...)
		}
	}
	return append(buf, 0x00)
}

// decodeBytes reads a byte string payload written by encodeBytes, stopping
// at the first 0x00 byte. It decodes whole 8-byte escaped groups directly,
// and a final partial group of r escaped bytes, 0 < r < 8, back into its
// r-1 original bytes, mirroring encodeBytes's truncation rather than
// deriving the output length from a closed-form expression.
func decodeBytes(buf []byte) ([]byte, []byte, error) {
	idx := bytes.IndexByte(buf, 0x00)
	if idx < 0 {
		return nil, nil, ErrTruncatedInput
	}
	payload := buf[:idx]
	out := make([]byte, 0, 7*(len(payload)/8+1))
	for i := 0; i < len(payload); i += 8 {
		end := i + 8
		var chunk [8]byte
		if end > len(payload) {
			r := len(payload) - i
			copy(chunk[:], payload[i:len(payload)])
			decoded := unescapeSeven(chunk)
			out = append(out, decoded[:r-1]...)
		} else {
			copy(chunk[:], payload[i:end])
			decoded := unescapeSeven(chunk)
			out = append(out, decoded[:]...)
		}
	}
	return out, buf[idx+1:], nil
}
