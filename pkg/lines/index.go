// Package lines keeps the newline offsets of a document and answers line and
// visual-column queries over it.
package lines

import "sort"

// Source is the read-only view of document bytes the index scans.
type Source interface {
	Len() int
	ByteAt(i int) byte
}

// Index holds the ascending logical offsets of every '\n' byte and the line
// that contains the cursor.
type Index struct {
	offsets []int
	current int
}

// New returns an empty index, valid for empty content.
func New() *Index { return &Index{} }

// Rebuild rescans src and recomputes the cursor line.
func (x *Index) Rebuild(src Source, cursor int) {
	x.offsets = x.offsets[:0]
	n := src.Len()
	for i := 0; i < n; i++ {
		if src.ByteAt(i) == '\n' {
			x.offsets = append(x.offsets, i)
		}
	}
	x.SetCursor(cursor)
}

// Offsets returns the newline offsets. The slice is owned by the index and
// must not be modified.
func (x *Index) Offsets() []int { return x.offsets }

// Count returns the number of lines, which is one more than the number of
// newlines.
func (x *Index) Count() int { return len(x.offsets) + 1 }

// Current returns the 0-based line holding the cursor. Past the last
// newline it equals the number of newlines.
func (x *Index) Current() int { return x.current }

// SetCursor updates the cached cursor line.
func (x *Index) SetCursor(cursor int) { x.current = x.LineOf(cursor) }

// LineOf returns the line containing offset. A newline byte belongs to the
// line it terminates.
func (x *Index) LineOf(offset int) int {
	return sort.SearchInts(x.offsets, offset)
}

// Bounds returns the start offset of line and the offset of its terminating
// newline, or length for the last line. Lines past the end clamp to the last.
func (x *Index) Bounds(line, length int) (start, end int) {
	if line < 0 {
		line = 0
	}
	if line > len(x.offsets) {
		line = len(x.offsets)
	}
	if line > 0 {
		start = x.offsets[line-1] + 1
	}
	end = length
	if line < len(x.offsets) {
		end = x.offsets[line]
	}
	return start, end
}

// LineContaining returns the bounds of the line holding offset.
func (x *Index) LineContaining(offset, length int) (start, end int) {
	return x.Bounds(x.LineOf(offset), length)
}

// IsLast reports whether line is the final line of the document.
func (x *Index) IsLast(line int) bool { return line >= len(x.offsets) }

// Inserted shifts the index for data inserted at pos.
func (x *Index) Inserted(pos int, data []byte) {
	if len(data) == 0 {
		return
	}
	i := sort.SearchInts(x.offsets, pos)
	for j := i; j < len(x.offsets); j++ {
		x.offsets[j] += len(data)
	}
	var added []int
	for k, b := range data {
		if b == '\n' {
			added = append(added, pos+k)
		}
	}
	if len(added) > 0 {
		x.offsets = append(x.offsets[:i], append(added, x.offsets[i:]...)...)
	}
}

// Deleted shifts the index for n bytes removed starting at pos.
func (x *Index) Deleted(pos, n int) {
	if n <= 0 {
		return
	}
	lo := sort.SearchInts(x.offsets, pos)
	hi := sort.SearchInts(x.offsets, pos+n)
	x.offsets = append(x.offsets[:lo], x.offsets[hi:]...)
	for j := lo; j < len(x.offsets); j++ {
		x.offsets[j] -= n
	}
}
