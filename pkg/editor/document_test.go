package editor

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"example.com/gapedit/pkg/buffer"
	"example.com/gapedit/pkg/logs"
)

func TestEndToEnd_InsertUpSave(t *testing.T) {
	d := NewDocument(Options{})
	if err := d.InsertString("Hello World!\nSecond line"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if d.Cursor() != 24 {
		t.Fatalf("expected cursor 24, got %d", d.Cursor())
	}
	d.Up()
	if d.Cursor() != 11 {
		t.Fatalf("expected cursor 11 after up, got %d", d.Cursor())
	}
	if d.Column() != 11 {
		t.Fatalf("expected column 11, got %d", d.Column())
	}
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := d.SaveAs(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != "Hello World!\nSecond line" || len(got) != 24 {
		t.Fatalf("unexpected saved content %q", got)
	}
	if d.Dirty() {
		t.Fatalf("expected clean document after save")
	}
}

func TestOpenSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	inputs := [][]byte{
		{},
		[]byte("line one\r\nline two\n"),
		{0xff, 0x00, 0xc3, 0xa9, '\t', 0x80},
	}
	for i, in := range inputs {
		path := filepath.Join(dir, "in.bin")
		if err := os.WriteFile(path, in, 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
		d, err := Open(path, Options{})
		if err != nil {
			t.Fatalf("case %d: open: %v", i, err)
		}
		if d.Cursor() != 0 {
			t.Fatalf("case %d: expected cursor 0 after open, got %d", i, d.Cursor())
		}
		d.JumpToEnd()
		d.StepLeft(false)
		if err := d.Save(); err != nil {
			t.Fatalf("case %d: save: %v", i, err)
		}
		got, _ := os.ReadFile(path)
		if !bytes.Equal(got, in) {
			t.Fatalf("case %d: round trip mismatch: want %q, got %q", i, in, got)
		}
	}
}

func TestOpenMissingFileIsIOError(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.txt"), Options{})
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected *IOError, got %T %v", err, err)
	}
	if ioErr.Op != "open" || !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestSaveFailures(t *testing.T) {
	d := NewDocumentFromBytes([]byte("data"), Options{})
	var ioErr *IOError
	if err := d.Save(); !errors.As(err, &ioErr) {
		t.Fatalf("expected IOError when saving an unnamed document, got %v", err)
	}
	bad := filepath.Join(t.TempDir(), "no", "such", "dir", "f.txt")
	if err := d.SaveAs(bad); !errors.As(err, &ioErr) {
		t.Fatalf("expected IOError for unwritable path, got %v", err)
	}
	if d.HasPath() {
		t.Fatalf("failed save must not bind the path")
	}
	if d.String() != "data" {
		t.Fatalf("content changed after failed save: %q", d.String())
	}
}

func TestInsertOutOfMemory(t *testing.T) {
	d := NewDocumentFromBytes([]byte("abc"), Options{InitialSlack: 1})
	d.buf.SetMaxCapacity(d.Cap())
	if err := d.InsertString("x"); err != nil {
		t.Fatalf("insert into free gap: %v", err)
	}
	err := d.InsertString("yz")
	if !IsOutOfMemory(err) || !errors.Is(err, buffer.ErrOutOfMemory) {
		t.Fatalf("expected out of memory, got %v", err)
	}
	if d.String() != "xabc" || d.Cursor() != 1 {
		t.Fatalf("document changed after failed insert: %q cursor %d", d.String(), d.Cursor())
	}
}

func TestLengthIsNetInserts(t *testing.T) {
	d := NewDocument(Options{InitialSlack: 4, GrowthIncrement: 5})
	want := 0
	ops := []func(){
		func() { _ = d.InsertString("héllo\n"); want += 7 },
		func() { d.DeleteBackward(false); want-- },
		func() { d.MoveAbsolute(3); d.DeleteBackward(false); want -= 2 },
		func() { d.JumpToStart(); d.DeleteBackward(false) },
		func() { d.DeleteForward(true); want -= 4 },
		func() { d.JumpToEnd(); d.DeleteForward(false) },
		func() { _ = d.InsertString("\ttab"); want += 4 },
	}
	for i, op := range ops {
		op()
		if d.Len() != want {
			t.Fatalf("op %d: expected len %d, got %d (%q)", i, want, d.Len(), d.String())
		}
	}
}

func TestLineIndexFollowsEdits(t *testing.T) {
	d := NewDocument(Options{})
	_ = d.InsertString("a\nb\nc")
	d.MoveAbsolute(2)
	_ = d.InsertString("x\ny")
	d.StepRight(false)
	d.DeleteBackward(false)
	want := scanNewlines(d.Bytes())
	got := d.NewlineOffsets()
	if len(got) != len(want) {
		t.Fatalf("expected offsets %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected offsets %v, got %v", want, got)
		}
	}
	if d.Line() != 2 {
		t.Fatalf("expected cursor line 2, got %d", d.Line())
	}
}

func scanNewlines(b []byte) []int {
	var out []int
	for i, c := range b {
		if c == '\n' {
			out = append(out, i)
		}
	}
	return out
}

func TestDocumentLogsEvents(t *testing.T) {
	var out bytes.Buffer
	opts := Options{Logger: logs.New(&out), InitialSlack: 1, GrowthIncrement: 2}
	path := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	d, err := Open(path, opts)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	_ = d.InsertString("abc")
	if err := d.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	seen := map[string]bool{}
	s := bufio.NewScanner(&out)
	for s.Scan() {
		var rec map[string]any
		if err := json.Unmarshal(s.Bytes(), &rec); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		ev, _ := rec["event"].(string)
		seen[ev] = true
	}
	for _, ev := range []string{"open.attempt", "open.success", "grow", "save.attempt", "save.success"} {
		if !seen[ev] {
			t.Fatalf("expected %s event, saw %v", ev, seen)
		}
	}
}

func TestIterReportsCursor(t *testing.T) {
	d := NewDocumentFromBytes([]byte("ab\ncd"), Options{})
	d.MoveAbsolute(3)
	it := d.Iter(2)
	var offsets []int
	for it.Next() {
		if it.AtCursor() {
			offsets = append(offsets, it.Offset())
		}
	}
	if len(offsets) != 1 || offsets[0] != 3 {
		t.Fatalf("expected cursor flag only at 3, got %v", offsets)
	}
	_ = d.InsertByte('z')
	if it.Next() {
		t.Fatalf("expected iterator to be invalidated by the insert")
	}
	it.Reset(0)
	if !it.Next() {
		t.Fatalf("expected reset iterator to see new content")
	}
}
