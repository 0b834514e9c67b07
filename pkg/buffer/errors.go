package buffer

import "errors"

var (
	// ErrOutOfMemory is returned when the gap cannot be grown. The buffer is
	// left exactly as it was before the failing call.
	ErrOutOfMemory = errors.New("buffer: cannot grow storage")

	// ErrOutOfRange is returned by the raw storage primitives when a
	// position lies outside 0..Len().
	ErrOutOfRange = errors.New("buffer: position out of range")

	// ErrStaleIterator is reported by an Iterator whose buffer was mutated
	// after the iterator was created or last reset.
	ErrStaleIterator = errors.New("buffer: iterator invalidated by mutation")
)
