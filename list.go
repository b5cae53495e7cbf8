package lexy

// encodeList appends a list's complete rendering: an open tag forced to
// prevNeg, each child re-encoded against a context that starts over at
// false for the list body and threads from child to child, and a close
// tag forced to whatever context the last child left behind. A list is
// never itself "negative" — it always returns false to its own parent.
func encodeList(dst []byte, list List, prevNeg bool) ([]byte, bool, error) {
	open := tagList
	if prevNeg {
		open |= 0x80
	}
	dst = append(dst, open)
	childNeg := false
	var err error
	for _, child := range list {
		dst, childNeg, err = Encode(dst, child, childNeg)
		if err != nil {
			return nil, false, err
		}
	}
	end := listEnd
	if childNeg {
		end |= 0x80
	}
	dst = append(dst, end)
	return dst, false, nil
}

// decodeList decodes a list's children, starting just after its open tag at
// src[offset]. The open tag's own polarity plays no part in reading the
// body: every child's leading byte or bytes is self-describing, and the
// list-end sentinel (0x00 or 0x80) is recognized directly, without needing
// any context threaded in from outside.
func decodeList(src []byte, offset int) (List, int, error) {
	pos := offset
	var items List
	for {
		if pos >= len(src) {
			return nil, pos, &DecodeError{Offset: pos, Err: ErrTruncatedInput}
		}
		b := src[pos]
		if b == listEnd || b == listEnd|0x80 {
			return items, pos + 1, nil
		}
		v, next, err := Decode(src, pos)
		if err != nil {
			return nil, pos, err
		}
		items = append(items, v)
		pos = next
	}
}
