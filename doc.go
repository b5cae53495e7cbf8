/*
Package lexy implements a lexicographically ordered binary encoding for a
small, dynamically typed value domain, plus a generic [Codec] façade for
encoding native Go types through it.

The defining property of the encoding is that the unsigned lexicographic
order of the encoded bytes equals the semantic order of the values they
encode. This makes it suitable for use as an opaque key format in ordered
key-value stores, where range scans over encoded keys must agree with range
scans over the values those keys represent.

[Dumps] and [Loads] operate directly on the dynamic [Value] domain: [Null],
[Bool], [*Number] (and its [NewInt]/[NewBigInt]/[NewRat]/[NewFloat]
constructors), [Special] (±Inf), [NaN], [Str], [Bytes], and [List]. Most
callers instead want a [Codec] for a concrete Go type:

  - [Int], [Uint], [BigInt], [Float64] for numbers
  - [BoolOf], [String], [BytesOf] for scalars
  - [PointerTo], [SliceOf], [MapOf] for aggregates, built from other Codecs
  - [Negate] reverses a Codec's encoded order, for descending sort keys

Every Codec's encoding is self-delimiting: Append never needs a length
prefix or an enclosing terminator to make Get's decode unambiguous, so
Codecs compose directly, including inside PointerTo/SliceOf/MapOf.
*/
package lexy
