package editor

import (
	"example.com/gapedit/pkg/buffer"
	"example.com/gapedit/pkg/lines"
)

// Up moves to the previous line, keeping the visual column the cursor had
// when vertical motion began. On the first line it jumps to the start.
func (d *Document) Up() {
	line := d.index.Current()
	if line == 0 {
		d.JumpToStart()
		return
	}
	d.vertical(line - 1)
}

// Down moves to the next line, keeping the visual column. On the last line
// it jumps to the end.
func (d *Document) Down() {
	line := d.index.Current()
	if d.index.IsLast(line) {
		d.JumpToEnd()
		return
	}
	d.vertical(line + 1)
}

func (d *Document) vertical(target int) {
	if d.column == lines.UnknownColumn {
		start, _ := d.index.Bounds(d.index.Current(), d.buf.Len())
		d.column = lines.VisualColumn(d.buf, start, d.buf.Cursor())
	}
	start, end := d.index.Bounds(target, d.buf.Len())
	d.place(lines.OffsetForColumn(d.buf, start, end, d.column))
}

// Home toggles between the first non-blank byte of the line and the line
// start.
func (d *Document) Home() {
	cur := d.buf.Cursor()
	start, end := d.index.LineContaining(cur, d.buf.Len())
	wsEnd := start
	for wsEnd < end {
		if !buffer.IsSpace(d.buf.ByteAt(wsEnd)) {
			break
		}
		wsEnd++
	}
	if (cur == start && wsEnd > cur) || wsEnd < cur {
		d.moveTo(wsEnd)
		return
	}
	d.moveTo(start)
}

// EndOfLine moves to the line's terminating newline, or to the end of the
// content on the last line.
func (d *Document) EndOfLine() {
	_, end := d.index.LineContaining(d.buf.Cursor(), d.buf.Len())
	d.moveTo(end)
}

// FullStart moves to the start of the document.
func (d *Document) FullStart() { d.JumpToStart() }

// FullEnd moves to the end of the document.
func (d *Document) FullEnd() { d.JumpToEnd() }

// MoveToLineColumn places the cursor on line at the given visual column,
// clamping both to the content. It is used for pointer clicks.
func (d *Document) MoveToLineColumn(line, column int) {
	if line < 0 {
		line = 0
	}
	if column < 0 {
		column = 0
	}
	start, end := d.index.Bounds(line, d.buf.Len())
	d.moveTo(lines.OffsetForColumn(d.buf, start, end, column))
}
