package lines

// TabWidth is the distance between tab stops.
const TabWidth = 4

// UnknownColumn marks a cached visual column that must be recomputed.
const UnknownColumn = -1

// Advance returns the column after drawing b at column col. Continuation
// bytes take no space, every other byte takes one column and a tab moves to
// the next multiple of TabWidth.
func Advance(col int, b byte) int {
	switch {
	case b == '\t':
		return col + TabWidth - col%TabWidth
	case b&0xC0 == 0x80:
		return col
	default:
		return col + 1
	}
}

// VisualColumn returns the column of cursor on the line starting at
// lineStart.
func VisualColumn(src Source, lineStart, cursor int) int {
	col := 0
	for i := lineStart; i < cursor; i++ {
		col = Advance(col, src.ByteAt(i))
	}
	return col
}

// OffsetForColumn walks forward from lineStart until the accumulated width
// reaches column or the line ends at lineEnd, and returns that offset. The
// result never lands inside a multi-byte sequence.
func OffsetForColumn(src Source, lineStart, lineEnd, column int) int {
	pos := lineStart
	col := 0
	for pos < lineEnd && col < column {
		col = Advance(col, src.ByteAt(pos))
		pos++
		for pos < lineEnd && src.ByteAt(pos)&0xC0 == 0x80 {
			pos++
		}
	}
	return pos
}
