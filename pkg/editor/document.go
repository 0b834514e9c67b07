package editor

import (
	"errors"
	"fmt"
	"os"

	"example.com/gapedit/pkg/buffer"
	"example.com/gapedit/pkg/lines"
	"example.com/gapedit/pkg/logs"
)

// IOError reports a failed open or save. The document is left untouched.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string { return e.Op + " " + e.Path + ": " + e.Err.Error() }

func (e *IOError) Unwrap() error { return e.Err }

// Options configure new documents.
type Options struct {
	// UnderscoreBreaks makes '_' a word-break character.
	UnderscoreBreaks bool
	// InitialSlack is the gap reserved on load and creation.
	InitialSlack int
	// GrowthIncrement is the fixed number of bytes added per growth.
	GrowthIncrement int
	Logger          *logs.Logger
}

// Document is one open text: a gap buffer whose gap is the cursor, the
// newline index derived from it and the cached visual column used by
// vertical motion.
type Document struct {
	path   string
	buf    *buffer.GapBuffer
	index  *lines.Index
	column int
	words  buffer.WordClassifier
	dirty  bool
	logger *logs.Logger
}

// NewDocument creates an empty, unnamed document.
func NewDocument(opts Options) *Document {
	return newDocument(buffer.NewGapBuffer(opts.InitialSlack), opts)
}

// NewDocumentFromBytes creates an unnamed document holding a copy of data
// with the cursor at 0.
func NewDocumentFromBytes(data []byte, opts Options) *Document {
	return newDocument(buffer.NewGapBufferFromBytes(data, opts.InitialSlack), opts)
}

func newDocument(buf *buffer.GapBuffer, opts Options) *Document {
	d := &Document{
		buf:    buf,
		index:  lines.New(),
		column: lines.UnknownColumn,
		words:  buffer.WordClassifier{UnderscoreBreaks: opts.UnderscoreBreaks},
		logger: opts.Logger,
	}
	buf.SetGrowthIncrement(opts.GrowthIncrement)
	buf.OnGrow(func(oldCap, newCap int) {
		d.logger.Event("grow", map[string]any{"old_cap": oldCap, "new_cap": newCap, "file": d.path})
	})
	d.index.Rebuild(buf, 0)
	return d
}

// Open reads the whole file at path into a new document with the cursor at 0.
func Open(path string, opts Options) (*Document, error) {
	opts.Logger.Event("open.attempt", map[string]any{"file": path})
	data, err := os.ReadFile(path)
	if err != nil {
		opts.Logger.Event("open.error", map[string]any{"file": path, "error": err.Error()})
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	d := NewDocumentFromBytes(data, opts)
	d.path = path
	d.check()
	opts.Logger.Event("open.success", map[string]any{"file": path, "bytes": len(data), "lines": d.index.Count()})
	return d, nil
}

// Path returns the file the document is bound to, or "".
func (d *Document) Path() string { return d.path }

// HasPath reports whether Save has a target.
func (d *Document) HasPath() bool { return d.path != "" }

// Dirty reports whether the content changed since the last load or save.
func (d *Document) Dirty() bool { return d.dirty }

// Save writes the logical content to the bound path, overwriting it.
func (d *Document) Save() error {
	if d.path == "" {
		return &IOError{Op: "save", Path: d.path, Err: os.ErrInvalid}
	}
	return d.SaveAs(d.path)
}

// SaveAs writes the logical content to path and binds the document to it.
func (d *Document) SaveAs(path string) error {
	if path == "" {
		return &IOError{Op: "save", Path: path, Err: os.ErrInvalid}
	}
	d.logger.Event("save.attempt", map[string]any{"file": path, "bytes": d.buf.Len()})
	if err := d.writeFile(path); err != nil {
		d.logger.Event("save.error", map[string]any{"file": path, "error": err.Error()})
		return &IOError{Op: "save", Path: path, Err: err}
	}
	d.path = path
	d.dirty = false
	d.logger.Event("save.success", map[string]any{"file": path, "bytes": d.buf.Len()})
	return nil
}

func (d *Document) writeFile(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := d.buf.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Bytes returns a copy of the logical content.
func (d *Document) Bytes() []byte { return d.buf.Bytes() }

// String returns the content as a string.
func (d *Document) String() string { return d.buf.String() }

// Len returns the content length in bytes.
func (d *Document) Len() int { return d.buf.Len() }

// Cap returns the capacity of the underlying storage.
func (d *Document) Cap() int { return d.buf.Cap() }

// Cursor returns the cursor offset, which is always a codepoint boundary.
func (d *Document) Cursor() int { return d.buf.Cursor() }

// ByteAt returns the byte at offset i, or 0 outside the content.
func (d *Document) ByteAt(i int) byte { return d.buf.ByteAt(i) }

// Iter returns a forward iterator over the content starting at from. It is
// invalidated by the next edit.
func (d *Document) Iter(from int) *buffer.Iterator { return d.buf.Iter(from) }

// NewlineOffsets returns the ascending offsets of all '\n' bytes. The slice
// must not be modified.
func (d *Document) NewlineOffsets() []int { return d.index.Offsets() }

// Line returns the 0-based line holding the cursor.
func (d *Document) Line() int { return d.index.Current() }

// LineCount returns the number of lines.
func (d *Document) LineCount() int { return d.index.Count() }

// LineBounds returns the start offset and the newline offset (or Len) of
// line.
func (d *Document) LineBounds(line int) (start, end int) {
	return d.index.Bounds(line, d.buf.Len())
}

// Column returns the visual column of the cursor.
func (d *Document) Column() int {
	start, _ := d.index.LineContaining(d.buf.Cursor(), d.buf.Len())
	return lines.VisualColumn(d.buf, start, d.buf.Cursor())
}

// SetUnderscoreBreaks changes the word-break configuration.
func (d *Document) SetUnderscoreBreaks(on bool) { d.words.UnderscoreBreaks = on }

// Refresh rebuilds the derived line state from the content and drops the
// cached column. It runs whenever the document becomes active.
func (d *Document) Refresh() {
	d.index.Rebuild(d.buf, d.buf.Cursor())
	d.column = lines.UnknownColumn
	d.check()
}

// check clamps the cursor back onto a codepoint boundary if it ever left
// one. It never fails.
func (d *Document) check() {
	cur := d.buf.Cursor()
	if buffer.IsBoundary(d.buf, cur) {
		return
	}
	snapped := buffer.SnapBoundary(d.buf, cur)
	d.logger.Event("invariant.clamp", map[string]any{"cursor": cur, "snapped": snapped, "file": d.path})
	d.buf.MoveGap(snapped)
	d.index.SetCursor(snapped)
	d.column = lines.UnknownColumn
}

// Insert writes text at the cursor and moves the cursor past it. Growth
// failure is returned as buffer.ErrOutOfMemory with the document unchanged.
func (d *Document) Insert(text []byte) error {
	if len(text) == 0 {
		return nil
	}
	pos := d.buf.Cursor()
	if err := d.buf.Insert(text); err != nil {
		return fmt.Errorf("insert %d bytes at %d: %w", len(text), pos, err)
	}
	d.index.Inserted(pos, text)
	d.edited()
	return nil
}

// InsertByte writes a single byte at the cursor.
func (d *Document) InsertByte(b byte) error {
	return d.Insert([]byte{b})
}

// InsertString writes s at the cursor.
func (d *Document) InsertString(s string) error {
	return d.Insert([]byte(s))
}

func (d *Document) edited() {
	d.dirty = true
	d.column = lines.UnknownColumn
	d.index.SetCursor(d.buf.Cursor())
}

// IsOutOfMemory reports whether err came from a failed buffer growth.
func IsOutOfMemory(err error) bool { return errors.Is(err, buffer.ErrOutOfMemory) }
