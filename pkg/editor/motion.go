package editor

import (
	"example.com/gapedit/pkg/buffer"
	"example.com/gapedit/pkg/lines"
)

// moveTo relocates the cursor to target, clamped to the content and snapped
// to a codepoint boundary, and drops the cached column.
func (d *Document) moveTo(target int) {
	d.place(target)
	d.column = lines.UnknownColumn
}

// place relocates the cursor but keeps the cached column, for vertical
// motion.
func (d *Document) place(target int) {
	target = buffer.SnapBoundary(d.buf, target)
	if target != d.buf.Cursor() {
		d.buf.MoveGap(target)
		d.index.SetCursor(target)
	}
}

// StepLeft moves one codepoint, or one word, towards the start.
func (d *Document) StepLeft(wordWise bool) {
	d.moveTo(d.leftTarget(wordWise))
}

// StepRight moves one codepoint, or one word, towards the end.
func (d *Document) StepRight(wordWise bool) {
	d.moveTo(d.rightTarget(wordWise))
}

func (d *Document) leftTarget(wordWise bool) int {
	if wordWise {
		return d.words.WordStart(d.buf, d.buf.Cursor())
	}
	return buffer.PrevBoundary(d.buf, d.buf.Cursor())
}

func (d *Document) rightTarget(wordWise bool) int {
	if wordWise {
		return d.words.WordEnd(d.buf, d.buf.Cursor())
	}
	return buffer.NextBoundary(d.buf, d.buf.Cursor())
}

// DeleteBackward removes the codepoint, or word, before the cursor. It is a
// no-op at offset 0.
func (d *Document) DeleteBackward(wordWise bool) {
	cur := d.buf.Cursor()
	n := cur - d.leftTarget(wordWise)
	if n <= 0 {
		return
	}
	removed := d.buf.Delete(n, buffer.Backward)
	d.index.Deleted(cur-removed, removed)
	d.edited()
}

// DeleteForward removes the codepoint, or word, after the cursor. It is a
// no-op at the end of the content.
func (d *Document) DeleteForward(wordWise bool) {
	cur := d.buf.Cursor()
	n := d.rightTarget(wordWise) - cur
	if n <= 0 {
		return
	}
	removed := d.buf.Delete(n, buffer.Forward)
	d.index.Deleted(cur, removed)
	d.edited()
}

// JumpToStart moves the cursor to offset 0.
func (d *Document) JumpToStart() { d.moveTo(0) }

// JumpToEnd moves the cursor past the last byte.
func (d *Document) JumpToEnd() { d.moveTo(d.buf.Len()) }

// MoveAbsolute moves the cursor to target. Targets outside the content are
// clamped and targets inside a multi-byte sequence snap to its start.
func (d *Document) MoveAbsolute(target int) {
	if target == d.buf.Cursor() {
		return
	}
	d.moveTo(target)
}
