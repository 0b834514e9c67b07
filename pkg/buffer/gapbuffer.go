package buffer

import (
	"fmt"
	"io"
)

const (
	// DefaultGrowthIncrement is the number of bytes added to the storage each
	// time the gap is exhausted. Growth never doubles.
	DefaultGrowthIncrement = 1024

	// DefaultSlack is the free space reserved after loaded content.
	DefaultSlack = 1024

	// DefaultMaxCapacity bounds the storage size. Growing past it reports
	// ErrOutOfMemory instead of asking the runtime for the memory.
	DefaultMaxCapacity = 1 << 36
)

// Direction selects which side of the gap a deletion consumes.
type Direction int

const (
	// Backward removes bytes before the gap (backspace).
	Backward Direction = iota
	// Forward removes bytes after the gap (delete).
	Forward
)

// GapBuffer is a byte gap buffer. Content before the gap lives in
// buf[:gapStart] and content after it in buf[gapEnd:]. The gap start is the
// edit cursor.
type GapBuffer struct {
	buf      []byte
	gapStart int
	gapEnd   int

	increment   int
	maxCapacity int
	version     uint64

	onGrow func(oldCap, newCap int)
}

// NewGapBuffer creates an empty GapBuffer with an initial capacity.
func NewGapBuffer(capacity int) *GapBuffer {
	if capacity < 1 {
		capacity = DefaultGrowthIncrement
	}
	return &GapBuffer{
		buf:         make([]byte, capacity),
		gapEnd:      capacity,
		increment:   DefaultGrowthIncrement,
		maxCapacity: DefaultMaxCapacity,
	}
}

// NewGapBufferFromBytes initializes a GapBuffer holding a copy of data with
// slack free bytes of gap. The cursor is placed at 0, so the whole content
// sits after the gap.
func NewGapBufferFromBytes(data []byte, slack int) *GapBuffer {
	if slack < 1 {
		slack = DefaultSlack
	}
	g := NewGapBuffer(len(data) + slack)
	copy(g.buf[slack:], data)
	g.gapEnd = slack
	return g
}

// SetGrowthIncrement changes the fixed growth step. Values below one are
// ignored.
func (g *GapBuffer) SetGrowthIncrement(n int) {
	if n > 0 {
		g.increment = n
	}
}

// SetMaxCapacity changes the capacity bound used by growth.
func (g *GapBuffer) SetMaxCapacity(n int) {
	if n > 0 {
		g.maxCapacity = n
	}
}

// OnGrow registers a callback invoked after every successful growth.
func (g *GapBuffer) OnGrow(fn func(oldCap, newCap int)) { g.onGrow = fn }

// Len returns the logical length (excluding gap).
func (g *GapBuffer) Len() int {
	return len(g.buf) - (g.gapEnd - g.gapStart)
}

// Cap returns the size of the underlying storage.
func (g *GapBuffer) Cap() int { return len(g.buf) }

// GapSize returns the number of free bytes in the gap.
func (g *GapBuffer) GapSize() int { return g.gapEnd - g.gapStart }

// Cursor returns the logical offset of the gap.
func (g *GapBuffer) Cursor() int { return g.gapStart }

// Version is bumped by every content mutation.
func (g *GapBuffer) Version() uint64 { return g.version }

// ensureGap grows the storage in fixed increments until the gap holds n
// bytes. On failure nothing is modified.
func (g *GapBuffer) ensureGap(n int) error {
	gap := g.gapEnd - g.gapStart
	if gap >= n {
		return nil
	}
	needed := n - gap
	steps := (needed + g.increment - 1) / g.increment
	oldCap := len(g.buf)
	if steps > (g.maxCapacity-oldCap)/g.increment {
		return fmt.Errorf("%w: need %d more bytes at capacity %d", ErrOutOfMemory, needed, oldCap)
	}
	newCap := oldCap + steps*g.increment
	newBuf, err := allocate(newCap)
	if err != nil {
		return err
	}
	copy(newBuf, g.buf[:g.gapStart])
	suffixLen := oldCap - g.gapEnd
	copy(newBuf[newCap-suffixLen:], g.buf[g.gapEnd:])
	g.buf = newBuf
	g.gapEnd = newCap - suffixLen
	if g.onGrow != nil {
		g.onGrow(oldCap, newCap)
	}
	return nil
}

// allocate turns a runtime allocation panic into ErrOutOfMemory.
func allocate(n int) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			b = nil
			err = fmt.Errorf("%w: %v", ErrOutOfMemory, r)
		}
	}()
	return make([]byte, n), nil
}

// MoveGap moves the gap so that it starts at pos, shifting only the bytes
// between the old and the new position. pos is clamped to 0..Len(). It does
// not look at the bytes it moves.
func (g *GapBuffer) MoveGap(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > g.Len() {
		pos = g.Len()
	}
	if pos < g.gapStart {
		d := g.gapStart - pos
		copy(g.buf[g.gapEnd-d:g.gapEnd], g.buf[pos:g.gapStart])
		g.gapStart = pos
		g.gapEnd -= d
		return
	}
	if pos > g.gapStart {
		d := pos - g.gapStart
		copy(g.buf[g.gapStart:g.gapStart+d], g.buf[g.gapEnd:g.gapEnd+d])
		g.gapStart += d
		g.gapEnd += d
	}
}

// Insert writes data into the gap at the cursor and advances the cursor past
// it.
func (g *GapBuffer) Insert(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if err := g.ensureGap(len(data)); err != nil {
		return err
	}
	copy(g.buf[g.gapStart:], data)
	g.gapStart += len(data)
	g.version++
	return nil
}

// InsertByte writes a single byte at the cursor.
func (g *GapBuffer) InsertByte(b byte) error {
	if err := g.ensureGap(1); err != nil {
		return err
	}
	g.buf[g.gapStart] = b
	g.gapStart++
	g.version++
	return nil
}

// InsertAt moves the gap to pos and inserts data there.
func (g *GapBuffer) InsertAt(pos int, data []byte) error {
	if pos < 0 || pos > g.Len() {
		return fmt.Errorf("insert at %d: %w", pos, ErrOutOfRange)
	}
	g.MoveGap(pos)
	return g.Insert(data)
}

// Delete removes up to n bytes next to the cursor in the given direction and
// returns how many were removed. Content outside that range is untouched.
func (g *GapBuffer) Delete(n int, dir Direction) int {
	if n <= 0 {
		return 0
	}
	switch dir {
	case Backward:
		if n > g.gapStart {
			n = g.gapStart
		}
		g.gapStart -= n
	case Forward:
		if after := len(g.buf) - g.gapEnd; n > after {
			n = after
		}
		g.gapEnd += n
	default:
		return 0
	}
	if n > 0 {
		g.version++
	}
	return n
}

// DeleteAt moves the gap to pos and removes count bytes in dir.
func (g *GapBuffer) DeleteAt(pos, count int, dir Direction) (int, error) {
	if pos < 0 || pos > g.Len() {
		return 0, fmt.Errorf("delete at %d: %w", pos, ErrOutOfRange)
	}
	g.MoveGap(pos)
	return g.Delete(count, dir), nil
}

// ByteAt returns the byte at logical index i. If i is out of bounds, it
// returns 0.
func (g *GapBuffer) ByteAt(i int) byte {
	if i < 0 || i >= g.Len() {
		return 0
	}
	return g.byteAt(i)
}

func (g *GapBuffer) byteAt(i int) byte {
	if i < g.gapStart {
		return g.buf[i]
	}
	return g.buf[g.gapEnd+(i-g.gapStart)]
}

// Slice returns a copy of the logical bytes in [start,end).
func (g *GapBuffer) Slice(start, end int) []byte {
	if start < 0 {
		start = 0
	}
	if end > g.Len() {
		end = g.Len()
	}
	if start >= end {
		return []byte{}
	}
	out := make([]byte, 0, end-start)
	if start < g.gapStart {
		out = append(out, g.buf[start:min(end, g.gapStart)]...)
	}
	if end > g.gapStart {
		from := max(start, g.gapStart) - g.gapStart + g.gapEnd
		to := end - g.gapStart + g.gapEnd
		out = append(out, g.buf[from:to]...)
	}
	return out
}

// Bytes returns the full logical content as one contiguous copy.
func (g *GapBuffer) Bytes() []byte {
	return g.Slice(0, g.Len())
}

// String returns the buffer as a string (for debugging)
func (g *GapBuffer) String() string {
	return string(g.Bytes())
}

// WriteTo writes the logical content to w without joining the two segments.
func (g *GapBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(g.buf[:g.gapStart])
	total := int64(n)
	if err != nil {
		return total, err
	}
	n, err = w.Write(g.buf[g.gapEnd:])
	total += int64(n)
	return total, err
}
