package buffer

import (
	"errors"
	"testing"
)

func TestIterator_WalksLogicalContent(t *testing.T) {
	g := NewGapBufferFromBytes([]byte("abcdef"), 2)
	g.MoveGap(3)
	it := g.Iter(1)
	var got []byte
	var offsets []int
	cursorAt := -1
	for it.Next() {
		got = append(got, it.Byte())
		offsets = append(offsets, it.Offset())
		if it.AtCursor() {
			cursorAt = it.Offset()
		}
	}
	if string(got) != "bcdef" {
		t.Fatalf("expected 'bcdef', got %q", got)
	}
	if offsets[0] != 1 || offsets[len(offsets)-1] != 5 {
		t.Fatalf("unexpected offsets %v", offsets)
	}
	if cursorAt != 3 {
		t.Fatalf("expected cursor flag at 3, got %d", cursorAt)
	}
	if it.Err() != nil {
		t.Fatalf("unexpected error: %v", it.Err())
	}
	it.Reset(4)
	if !it.Next() || it.Byte() != 'e' {
		t.Fatalf("expected reset iterator to restart at 'e'")
	}
}

func TestIterator_InvalidatedByMutation(t *testing.T) {
	g := NewGapBufferFromBytes([]byte("abc"), 2)
	it := g.Iter(0)
	if !it.Next() {
		t.Fatalf("expected first byte")
	}
	if err := g.InsertByte('x'); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if it.Next() {
		t.Fatalf("expected stale iterator to stop")
	}
	if !errors.Is(it.Err(), ErrStaleIterator) {
		t.Fatalf("expected ErrStaleIterator, got %v", it.Err())
	}
}
