package lines

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type bytesSource []byte

func (b bytesSource) Len() int          { return len(b) }
func (b bytesSource) ByteAt(i int) byte { return b[i] }

func scan(b []byte) []int {
	var out []int
	for i, c := range b {
		if c == '\n' {
			out = append(out, i)
		}
	}
	return out
}

func TestRebuild(t *testing.T) {
	src := bytesSource("one\ntwo\n\nthree")
	x := New()
	x.Rebuild(src, 9)
	if diff := cmp.Diff([]int{3, 7, 8}, x.Offsets()); diff != "" {
		t.Fatalf("offsets mismatch (-want +got):\n%s", diff)
	}
	if x.Count() != 4 {
		t.Fatalf("expected 4 lines, got %d", x.Count())
	}
	if x.Current() != 3 {
		t.Fatalf("expected cursor on line 3, got %d", x.Current())
	}
}

func TestLineContaining(t *testing.T) {
	src := bytesSource("one\ntwo\nthree")
	x := New()
	x.Rebuild(src, 0)
	cases := []struct {
		offset     int
		start, end int
	}{
		{0, 0, 3},
		{3, 0, 3},
		{4, 4, 7},
		{7, 4, 7},
		{8, 8, 13},
		{13, 8, 13},
	}
	for _, c := range cases {
		start, end := x.LineContaining(c.offset, src.Len())
		if start != c.start || end != c.end {
			t.Fatalf("LineContaining(%d): expected [%d,%d), got [%d,%d)", c.offset, c.start, c.end, start, end)
		}
	}
	if start, end := x.Bounds(99, src.Len()); start != 8 || end != 13 {
		t.Fatalf("expected out-of-range line to clamp to last, got [%d,%d)", start, end)
	}
}

func TestEmptyContent(t *testing.T) {
	x := New()
	x.Rebuild(bytesSource(nil), 0)
	if x.Count() != 1 || x.Current() != 0 || !x.IsLast(0) {
		t.Fatalf("unexpected empty index state: count=%d current=%d", x.Count(), x.Current())
	}
	if start, end := x.Bounds(0, 0); start != 0 || end != 0 {
		t.Fatalf("expected [0,0), got [%d,%d)", start, end)
	}
}

func TestIncrementalMatchesRescan(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	content := []byte("a\nbc\n\ndef\n")
	x := New()
	x.Rebuild(bytesSource(content), 0)
	alphabet := []byte("ab\n\t")
	for step := 0; step < 500; step++ {
		pos := rng.Intn(len(content) + 1)
		if rng.Intn(3) == 0 && len(content) > 0 {
			n := rng.Intn(len(content)-pos+1)
			content = append(content[:pos:pos], content[pos+n:]...)
			x.Deleted(pos, n)
		} else {
			data := make([]byte, rng.Intn(4)+1)
			for i := range data {
				data[i] = alphabet[rng.Intn(len(alphabet))]
			}
			next := append([]byte{}, content[:pos]...)
			next = append(next, data...)
			content = append(next, content[pos:]...)
			x.Inserted(pos, data)
		}
		want := scan(content)
		if diff := cmp.Diff(want, x.Offsets(), cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("step %d: offsets mismatch (-want +got):\n%s", step, diff)
		}
	}
}
