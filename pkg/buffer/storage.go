package buffer

// TextStorage defines the minimal storage operations used by the editor.
// Positions and lengths are expressed in bytes.
type TextStorage interface {
	Len() int
	Cursor() int
	ByteAt(i int) byte
	MoveGap(pos int)
	Insert(data []byte) error
	Delete(n int, dir Direction) int
	Bytes() []byte
	Version() uint64
}

var _ TextStorage = (*GapBuffer)(nil)
