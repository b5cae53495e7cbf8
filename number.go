package lexy

import (
	"math/big"

	"github.com/ordlex/lexy/internal/bits"
)

// Tag bytes for the scalar specials and numeric classes. The numeric tags
// (tinyBase..hugeTag) describe the unsigned-magnitude rendering; a negative
// Number's complete rendering, tag through fractional tail, is the bitwise
// complement (XOR 0xFF) of the rendering its absolute value would produce,
// applied by negate below. This orders correctly within one sign at a time,
// but not across a bare standalone positive/negative comparison.
const (
	tagNull    byte = 0x01
	tagFalse   byte = 0x02
	tagTrue    byte = 0x03
	tagNaN     byte = 0x06
	tagNegInf  byte = 0x07
	tagNegZero byte = 0xC0
	tagPosInf  byte = 0x78
	tagString  byte = 0x79
	tagBytes   byte = 0x7A
	tagList    byte = 0x7B
	listEnd    byte = 0x00

	tinyBase   byte  = 0x40 // tiny: tinyBase + m, m in [0, tinyCount)
	tinyCount  int64 = 0x20
	smallBase  byte  = 0x60 // small: smallBase + (m>>8), m in [tinyCount, smallCount), 1 extra byte holds m's low 8 bits
	smallCount int64 = 2048
	// mediumBase and hugeTag depart from the 0x6F/0x77 values a literal
	// reading of the class table would give: ⌈bits(m)/8⌉ reaches 8 for any
	// m with a 57..64-bit magnitude, so 0x6F+8 and the huge tag would both
	// be 0x77 — the same first byte would open either an 8-byte fixed-width
	// medium magnitude or a variable-length exp2-Golomb huge one, which the
	// decoder cannot tell apart. Packing medium's 8 possible byte lengths
	// into 0x68..0x6F and giving huge the next byte, 0x70, keeps every
	// class in its own contiguous, non-overlapping range without changing
	// the m >= 2^64 boundary itself. See DESIGN.md.
	mediumBase byte = 0x68 // medium: mediumBase + (bytelen-1), 1..8 extra bytes
	hugeTag    byte = 0x70 // huge: exp2-Golomb bit length + mantissa, bit-escaped

	// fracMarker precedes a fractional tail when one follows the integer
	// part. It is never used as any value's own tag byte (in either sign
	// context), so its presence or absence right after the integer part is
	// an unambiguous signal: an integer with no fractional part is exactly
	// its integer-part encoding, with nothing appended.
	fracMarker byte = 0x08
)

var (
	tinyLimit   = big.NewInt(tinyCount)
	smallLimit  = big.NewInt(smallCount)
	mediumLimit = new(big.Int).Lsh(bigOne, 64)
)

// encodeMagnitude appends the unsigned-magnitude rendering of a Number's
// integer part m (m >= 0) and, if present, its fractional tail, to buf. A
// fractional tail is appended, preceded by fracMarker, only when fracNum is
// nonzero; an exact integer gets no extra bytes at all.
func encodeMagnitude(buf []byte, m *big.Int, fracNum, fracDen *big.Int) []byte {
	buf = encodeIntegerPart(buf, m)
	if fracNum.Sign() == 0 {
		return buf
	}
	buf = append(buf, fracMarker)
	return append(buf, encodeFractionalTail(fracNum, fracDen)...)
}

func encodeIntegerPart(buf []byte, m *big.Int) []byte {
	switch {
	case m.Cmp(tinyLimit) < 0:
		return append(buf, tinyBase+byte(m.Int64()))
	case m.Cmp(smallLimit) < 0:
		v := m.Uint64()
		return append(buf, smallBase+byte(v>>8), byte(v))
	case m.Cmp(mediumLimit) < 0:
		v := m.Uint64()
		n := byteLen64(v)
		tag := mediumBase + byte(n-1)
		buf = append(buf, tag)
		for i := n - 1; i >= 0; i-- {
			buf = append(buf, byte(v>>uint(8*i)))
		}
		return buf
	default:
		return encodeHugeInteger(buf, m)
	}
}

func byteLen64(v uint64) int {
	n := 0
	for v > 0 {
		n++
		v >>= 8
	}
	if n == 0 {
		n = 1
	}
	return n
}

// encodeHugeInteger encodes m >= 2^64 using an exp2-Golomb bit-length
// prefix followed by the mantissa's lower (bitlen-1) bits (its top bit is
// always 1 and is not stored), packed through the bit-escape layer.
func encodeHugeInteger(buf []byte, m *big.Int) []byte {
	bitlen := m.BitLen()
	var w bits.Writer
	bits.WriteExp2Golomb(&w, uint64(bitlen))
	for i := bitlen - 2; i >= 0; i-- {
		w.WriteBit(int(m.Bit(i)))
	}
	nbits := w.BitLen()
	buf = append(buf, hugeTag)
	return bits.EscapeAppend(buf, w.Bytes(), nbits)
}

func decodeHugeInteger(buf []byte) (m *big.Int, rest []byte, err error) {
	r := bits.NewUnescapeReader(buf)
	bitlen, ok := bits.ReadExp2Golomb(r)
	if !ok {
		return nil, nil, ErrMalformedEscape
	}
	m = new(big.Int).SetInt64(1)
	for i := 0; i < int(bitlen)-1; i++ {
		bit, ok := r.ReadBit()
		if !ok {
			return nil, nil, ErrMalformedEscape
		}
		m.Lsh(m, 1)
		if bit == 1 {
			m.Or(m, bigOne)
		}
	}
	rest, ok = r.Finish()
	if !ok {
		return nil, nil, ErrMalformedEscape
	}
	return m, rest, nil
}

func decodeIntegerPart(buf []byte) (m *big.Int, rest []byte, err error) {
	if len(buf) == 0 {
		return nil, nil, ErrTruncatedInput
	}
	tag := buf[0]
	rest = buf[1:]
	switch {
	case tag >= tinyBase && tag < smallBase:
		return new(big.Int).SetInt64(int64(tag - tinyBase)), rest, nil
	case tag >= smallBase && tag < mediumBase:
		if len(rest) < 1 {
			return nil, nil, ErrTruncatedInput
		}
		v := uint64(tag-smallBase)<<8 | uint64(rest[0])
		return new(big.Int).SetUint64(v), rest[1:], nil
	case tag >= mediumBase && tag < hugeTag:
		n := int(tag-mediumBase) + 1
		if len(rest) < n {
			return nil, nil, ErrTruncatedInput
		}
		var v uint64
		for i := 0; i < n; i++ {
			v = v<<8 | uint64(rest[i])
		}
		return new(big.Int).SetUint64(v), rest[n:], nil
	case tag == hugeTag:
		return decodeHugeInteger(rest)
	default:
		return nil, nil, ErrInvalidTag
	}
}

// encodeFractionalTail encodes the proper fraction num/den (0 < num < den,
// gcd(num,den) == 1) as its continued-fraction expansion, one term per
// level. Each term is written as an exp-Golomb code, bit-complemented at
// every odd level (0-indexed) to correctly invert the ordering relationship
// continued fractions have at alternating levels, preceded by a 1 bit
// ("more terms follow") and followed by a final 0 bit ("no more terms").
// The resulting bit stream is packed to bytes and passed through the
// bit-escape layer so the caller can locate where it ends.
func encodeFractionalTail(num, den *big.Int) []byte {
	var w bits.Writer
	n, d := new(big.Int).Set(num), new(big.Int).Set(den)
	level := 0
	for n.Sign() != 0 {
		q, r := new(big.Int), new(big.Int)
		q.DivMod(d, n, r)
		w.WriteBit(1)
		writeExpGolombBig(&w, q, level%2 == 1)
		d.Set(n)
		n.Set(r)
		level++
	}
	w.WriteBit(0)
	nbits := w.BitLen()
	return bits.EscapeAppend(nil, w.Bytes(), nbits)
}

func decodeFractionalTail(buf []byte) (num, den *big.Int, rest []byte, err error) {
	r := bits.NewUnescapeReader(buf)
	var terms []*big.Int
	level := 0
	for {
		cont, ok := r.ReadBit()
		if !ok {
			return nil, nil, nil, ErrMalformedEscape
		}
		if cont == 0 {
			break
		}
		term, ok := readExpGolombBig(r, level%2 == 1)
		if !ok {
			return nil, nil, nil, ErrMalformedEscape
		}
		terms = append(terms, term)
		level++
	}
	rest, ok := r.Finish()
	if !ok {
		return nil, nil, nil, ErrMalformedEscape
	}
	num, den = convergentFromTerms(terms)
	return num, den, rest, nil
}

// convergentFromTerms reconstructs num/den from a continued-fraction term
// sequence [c0, c1, ...] representing 1/(c0 + 1/(c1 + 1/(c2 + ...))).
func convergentFromTerms(terms []*big.Int) (num, den *big.Int) {
	num, den = big.NewInt(0), big.NewInt(1)
	for i := len(terms) - 1; i >= 0; i-- {
		// invert: x -> 1/x, then add c_i: result = 1/(c_i + x)
		den2 := new(big.Int).Add(new(big.Int).Mul(terms[i], den), num)
		num, den = den, den2
	}
	return num, den
}

// writeExpGolombBig writes the exp-Golomb code for v (v >= 1, arbitrary
// precision), optionally bit-complemented.
func writeExpGolombBig(w *bits.Writer, v *big.Int, complement bool) {
	n := v.BitLen()
	one, zero := 1, 0
	if complement {
		one, zero = 0, 1
	}
	for i := 0; i < n-1; i++ {
		w.WriteBit(one)
	}
	w.WriteBit(zero)
	for i := n - 2; i >= 0; i-- {
		b := int(v.Bit(i))
		if complement {
			b = 1 - b
		}
		w.WriteBit(b)
	}
}

func readExpGolombBig(r bits.BitReader, complement bool) (*big.Int, bool) {
	n := 1
	for {
		b, ok := r.ReadBit()
		if !ok {
			return nil, false
		}
		if complement {
			b = 1 - b
		}
		if b == 0 {
			break
		}
		n++
	}
	v := big.NewInt(1)
	for i := 0; i < n-1; i++ {
		bit, ok := r.ReadBit()
		if !ok {
			return nil, false
		}
		if complement {
			bit = 1 - bit
		}
		v.Lsh(v, 1)
		if bit == 1 {
			v.Or(v, bigOne)
		}
	}
	return v, true
}

// encodeNumber appends the complete rendering of a Number, including its
// own tag(s), to buf. It ignores any incoming sign context: a negative
// Number's rendering is always the bitwise complement of the rendering its
// absolute value would produce, regardless of what precedes it.
func encodeNumber(buf []byte, n *Number) []byte {
	if n.Sign < 0 && n.Num.Sign() == 0 {
		return append(buf, tagNegZero)
	}
	m, fracNum := new(big.Int), new(big.Int)
	m.DivMod(n.Num, n.Denom, fracNum)
	start := len(buf)
	buf = encodeMagnitude(buf, m, fracNum, n.Denom)
	if n.Sign < 0 {
		negate(buf[start:])
	}
	return buf
}

// decodeNumber decodes a Number whose tag byte is buf[0], already known to
// be in the unsigned numeric tag range or its negated counterpart.
func decodeNumber(buf []byte) (*Number, []byte, error) {
	if len(buf) == 0 {
		return nil, nil, ErrTruncatedInput
	}
	tag := buf[0]
	if tag == tagNegZero {
		return &Number{Sign: -1, Num: new(big.Int), Denom: new(big.Int).SetInt64(1)}, buf[1:], nil
	}
	neg := tag >= 0x80
	work := buf
	if neg {
		// The length is not known up front. Numbers are self-delimiting
		// (fixed-width integer classes, and the fractional tail is
		// escape-terminated), so decode against a negated copy of the whole
		// remaining buffer and report back how much of it was consumed.
		work = negCopy(buf)
	}
	m, rest, err := decodeIntegerPart(work)
	if err != nil {
		return nil, nil, err
	}
	consumed := len(work) - len(rest)
	fracNum, fracDen := new(big.Int), new(big.Int).SetInt64(1)
	if len(rest) > 0 && rest[0] == fracMarker {
		var fracRest []byte
		fracNum, fracDen, fracRest, err = decodeFractionalTail(rest[1:])
		if err != nil {
			return nil, nil, err
		}
		consumed += 1 + len(rest[1:]) - len(fracRest)
	}
	n := &Number{Num: new(big.Int), Denom: new(big.Int).SetInt64(1)}
	n.Num.Mul(m, fracDen)
	n.Num.Add(n.Num, fracNum)
	n.Denom.Set(fracDen)
	normalizeRat(n)
	if neg {
		n.Sign = -1
	} else if n.Num.Sign() == 0 {
		n.Sign = 0
	} else {
		n.Sign = 1
	}
	return n, buf[consumed:], nil
}

func normalizeRat(n *Number) {
	r := new(big.Rat).SetFrac(n.Num, n.Denom)
	n.Num = new(big.Int).Abs(r.Num())
	n.Denom = new(big.Int).Abs(r.Denom())
}
