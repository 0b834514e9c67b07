package buffer

import "unicode/utf8"

// IsContinuation reports whether b is a UTF-8 continuation byte (0x80-0xBF).
func IsContinuation(b byte) bool {
	return !utf8.RuneStart(b)
}

// SequenceLength returns the length of the UTF-8 sequence introduced by
// lead. Invalid lead bytes count as a single byte.
func SequenceLength(lead byte) int {
	switch {
	case lead < 0x80:
		return 1
	case lead&0xE0 == 0xC0:
		return 2
	case lead&0xF0 == 0xE0:
		return 3
	case lead&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}

// IsBoundary reports whether pos is a codepoint boundary of s: either edge of
// the content or an offset whose byte is not a continuation byte.
func IsBoundary(s TextStorage, pos int) bool {
	if pos <= 0 || pos >= s.Len() {
		return true
	}
	return !IsContinuation(s.ByteAt(pos))
}

// PrevBoundary returns the start of the codepoint that ends at pos. A run of
// continuation bytes without a lead byte stops at offset 0.
func PrevBoundary(s TextStorage, pos int) int {
	if pos > s.Len() {
		pos = s.Len()
	}
	if pos <= 0 {
		return 0
	}
	pos--
	for pos > 0 && IsContinuation(s.ByteAt(pos)) {
		pos--
	}
	return pos
}

// NextBoundary returns the offset just past the codepoint starting at pos,
// stopping at Len() when a sequence is truncated.
func NextBoundary(s TextStorage, pos int) int {
	n := s.Len()
	if pos < 0 {
		pos = 0
	}
	if pos >= n {
		return n
	}
	pos++
	for pos < n && IsContinuation(s.ByteAt(pos)) {
		pos++
	}
	return pos
}

// SnapBoundary clamps pos to 0..Len() and, if it falls inside a multi-byte
// sequence, moves it back to the sequence start. When no lead byte precedes
// it the position moves forward past the continuation run instead.
func SnapBoundary(s TextStorage, pos int) int {
	n := s.Len()
	if pos <= 0 {
		return 0
	}
	if pos >= n {
		return n
	}
	if IsBoundary(s, pos) {
		return pos
	}
	back := pos
	for back > 0 && IsContinuation(s.ByteAt(back)) {
		back--
	}
	if back > 0 || !IsContinuation(s.ByteAt(0)) {
		return back
	}
	for pos < n && IsContinuation(s.ByteAt(pos)) {
		pos++
	}
	return pos
}
