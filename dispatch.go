package lexy

// Dumps encodes a single Value into a fresh byte string.
func Dumps(v Value) ([]byte, error) {
	buf, _, err := Encode(nil, v, false)
	return buf, err
}

// Loads decodes the value occupying the prefix of src; any trailing bytes
// are ignored, matching the abstract "decode the prefix that constitutes
// one complete value" contract.
func Loads(src []byte) (Value, error) {
	v, _, err := Decode(src, 0)
	return v, err
}

// Encode appends v's rendering to dst under the given previous-negative
// sign context, returning the extended buffer and the context the next
// sibling in the same containing sequence should carry. prevNeg has no
// effect on a Number's own rendering: a Number determines its polarity
// entirely from its own sign, ignoring whatever precedes it.
func Encode(dst []byte, v Value, prevNeg bool) ([]byte, bool, error) {
	switch val := v.(type) {
	case Null:
		return encodeScalar(dst, tagNull, prevNeg), false, nil
	case Bool:
		tag := tagFalse
		if val {
			tag = tagTrue
		}
		return encodeScalar(dst, tag, prevNeg), false, nil
	case NaN:
		return encodeScalar(dst, tagNaN, prevNeg), false, nil
	case Special:
		tag := tagPosInf
		if val == NegInf {
			tag = tagNegInf
		}
		return encodeScalar(dst, tag, prevNeg), false, nil
	case *Number:
		if val == nil || val.Num == nil || val.Denom == nil || val.Denom.Sign() <= 0 {
			return nil, false, unsupportedVariant(v)
		}
		return encodeNumber(dst, val), val.Sign < 0, nil
	case Str:
		s := string(val)
		return encodeTaggedXOR(dst, tagString, prevNeg, func(b []byte) []byte {
			return encodeString(b, s)
		}), false, nil
	case Bytes:
		return encodeTaggedXOR(dst, tagBytes, prevNeg, func(b []byte) []byte {
			return encodeBytes(b, val)
		}), false, nil
	case List:
		return encodeList(dst, val, prevNeg)
	default:
		return nil, false, unsupportedVariant(v)
	}
}

// encodeScalar appends a fixed one-byte scalar tag, fully XORed with 0xFF
// when prevNeg is set. List tags are handled separately, in encodeList,
// since the distilled spec pins their negative-context byte values (0xFB,
// 0x80) to OR-with-0x80 rather than this full XOR.
func encodeScalar(dst []byte, tag byte, prevNeg bool) []byte {
	if prevNeg {
		tag ^= 0xFF
	}
	return append(dst, tag)
}

// encodeTaggedXOR appends tag followed by body's own bytes, then fully
// XORs the whole span (tag, payload, and terminator alike) when prevNeg is
// set, so that the escape/terminate framing stays reversible under
// negation.
func encodeTaggedXOR(dst []byte, tag byte, prevNeg bool, body func([]byte) []byte) []byte {
	start := len(dst)
	dst = append(dst, tag)
	dst = body(dst)
	if prevNeg {
		negate(dst[start:])
	}
	return dst
}

// Decode reads one value starting at src[offset]. Unlike Encode, Decode
// takes no sign-context argument: every tag this package writes carries its
// own polarity in its leading byte, so the context a child was written
// under is always recoverable from the child itself.
func Decode(src []byte, offset int) (Value, int, error) {
	if offset < 0 || offset >= len(src) {
		return nil, offset, &DecodeError{Offset: offset, Err: ErrTruncatedInput}
	}
	buf := src[offset:]
	tag := buf[0]

	if v, ok := decodeScalarTag(tag); ok {
		return v, offset + 1, nil
	}
	switch tag {
	case tagString, tagString ^ 0xFF:
		s, rest, err := decodeStringTagged(buf)
		if err != nil {
			return nil, offset, &DecodeError{Offset: offset, Err: err}
		}
		return s, offset + (len(buf) - len(rest)), nil
	case tagBytes, tagBytes ^ 0xFF:
		b, rest, err := decodeBytesTagged(buf)
		if err != nil {
			return nil, offset, &DecodeError{Offset: offset, Err: err}
		}
		return b, offset + (len(buf) - len(rest)), nil
	case tagList, tagList | 0x80:
		items, next, err := decodeList(src, offset+1)
		if err != nil {
			return nil, offset, err
		}
		return items, next, nil
	}
	if isNumericTag(tag) {
		n, rest, err := decodeNumber(buf)
		if err != nil {
			return nil, offset, &DecodeError{Offset: offset, Err: err}
		}
		return n, offset + (len(buf) - len(rest)), nil
	}
	return nil, offset, &InvalidTagError{Offset: offset, Tag: tag}
}

// decodeScalarTag recognizes a scalar special's tag byte in either sign
// context and returns the corresponding Value.
func decodeScalarTag(tag byte) (Value, bool) {
	switch tag {
	case tagNull, tagNull ^ 0xFF:
		return Null{}, true
	case tagFalse, tagFalse ^ 0xFF:
		return Bool(false), true
	case tagTrue, tagTrue ^ 0xFF:
		return Bool(true), true
	case tagNaN, tagNaN ^ 0xFF:
		return NaN{}, true
	case tagNegInf, tagNegInf ^ 0xFF:
		return NegInf, true
	case tagPosInf, tagPosInf ^ 0xFF:
		return PosInf, true
	}
	return nil, false
}

// isNumericTag reports whether tag opens a Number's rendering, in either
// sign context (the unsigned magnitude range tinyBase..hugeTag, its XOR
// 0xFF complement, or the dedicated negative-zero tag).
func isNumericTag(tag byte) bool {
	if tag == tagNegZero {
		return true
	}
	if tag >= tinyBase && tag <= hugeTag {
		return true
	}
	lo, hi := hugeTag^0xFF, tinyBase^0xFF
	return tag >= lo && tag <= hi
}

// decodeStringTagged decodes a tagged, possibly negated string starting at
// buf[0] == tagString (or its XOR 0xFF complement).
func decodeStringTagged(buf []byte) (Str, []byte, error) {
	work := buf
	if buf[0] >= 0x80 {
		work = negCopy(buf)
	}
	s, rest, err := decodeString(work[1:])
	if err != nil {
		return "", nil, err
	}
	consumed := len(work) - len(rest)
	return Str(s), buf[consumed:], nil
}

// decodeBytesTagged decodes a tagged, possibly negated byte string starting
// at buf[0] == tagBytes (or its XOR 0xFF complement).
func decodeBytesTagged(buf []byte) (Bytes, []byte, error) {
	work := buf
	if buf[0] >= 0x80 {
		work = negCopy(buf)
	}
	b, rest, err := decodeBytes(work[1:])
	if err != nil {
		return nil, nil, err
	}
	consumed := len(work) - len(rest)
	return Bytes(b), buf[consumed:], nil
}
