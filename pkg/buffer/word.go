package buffer

// Class is the word-break category of a byte.
type Class int

const (
	ClassSpecial Class = iota
	ClassAlnum
	ClassSpace
)

// WordClassifier decides where word-wise motion stops.
type WordClassifier struct {
	// UnderscoreBreaks makes '_' a special byte instead of a word byte.
	UnderscoreBreaks bool
}

// IsSpace reports whether b is space, tab, CR, LF, VT or FF.
func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}

// Classify returns the class of b. Bytes of multi-byte UTF-8 sequences are
// word bytes.
func (w WordClassifier) Classify(b byte) Class {
	switch {
	case IsSpace(b):
		return ClassSpace
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9', b >= 0x80:
		return ClassAlnum
	case b == '_' && !w.UnderscoreBreaks:
		return ClassAlnum
	}
	return ClassSpecial
}

// IsBreak reports whether motion that just crossed from stops before to.
// Crossing whitespace never stops; otherwise a change of class does.
func (w WordClassifier) IsBreak(from, to byte) bool {
	if IsSpace(from) {
		return false
	}
	return w.Classify(from) != w.Classify(to)
}

// WordStart returns the offset word-wise backward motion from pos lands on.
// The first codepoint is always consumed.
func (w WordClassifier) WordStart(s TextStorage, pos int) int {
	pos = PrevBoundary(s, pos)
	for pos > 0 {
		if w.IsBreak(s.ByteAt(pos), s.ByteAt(pos-1)) {
			break
		}
		pos = PrevBoundary(s, pos)
	}
	return pos
}

// WordEnd returns the offset word-wise forward motion from pos lands on.
// The first codepoint is always consumed.
func (w WordClassifier) WordEnd(s TextStorage, pos int) int {
	n := s.Len()
	pos = NextBoundary(s, pos)
	for pos < n {
		if w.IsBreak(s.ByteAt(pos-1), s.ByteAt(pos)) {
			break
		}
		pos = NextBoundary(s, pos)
	}
	return pos
}
