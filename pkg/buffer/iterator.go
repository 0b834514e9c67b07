package buffer

// Iterator walks the logical bytes of a GapBuffer forward from a start
// offset. Any mutation of the buffer invalidates it; Next then returns false
// and Err reports ErrStaleIterator. Reset restarts it on the current content.
//
//	it := g.Iter(0)
//	for it.Next() {
//		_ = it.Byte()
//	}
type Iterator struct {
	g       *GapBuffer
	pos     int
	version uint64
	err     error
}

// Iter returns an iterator positioned before the byte at from.
func (g *GapBuffer) Iter(from int) *Iterator {
	it := &Iterator{g: g}
	it.Reset(from)
	return it
}

// Reset restarts the iteration at from and revalidates the iterator.
func (it *Iterator) Reset(from int) {
	if from < 0 {
		from = 0
	}
	if from > it.g.Len() {
		from = it.g.Len()
	}
	it.pos = from - 1
	it.version = it.g.version
	it.err = nil
}

// Next advances to the next byte and reports whether one is available.
func (it *Iterator) Next() bool {
	if it.err != nil {
		return false
	}
	if it.version != it.g.version {
		it.err = ErrStaleIterator
		return false
	}
	if it.pos+1 >= it.g.Len() {
		it.pos = it.g.Len()
		return false
	}
	it.pos++
	return true
}

// Byte returns the current byte.
func (it *Iterator) Byte() byte { return it.g.ByteAt(it.pos) }

// Offset returns the logical offset of the current byte.
func (it *Iterator) Offset() int { return it.pos }

// AtCursor reports whether the current byte sits at the edit cursor, which
// is where a caret is drawn.
func (it *Iterator) AtCursor() bool { return it.pos == it.g.gapStart }

// Err returns ErrStaleIterator once the buffer changed under the iterator.
func (it *Iterator) Err() error { return it.err }
