package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

// post retries until the simulation screen's event queue accepts ev.
func post(s tcell.Screen, ev tcell.Event) {
	for s.PostEvent(ev) != nil {
		time.Sleep(time.Millisecond)
	}
}

func postText(s tcell.Screen, text string) {
	for _, ch := range text {
		post(s, tcell.NewEventKey(tcell.KeyRune, ch, 0))
	}
}

func ctrl(ch rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModCtrl)
}

func runAsync(t *testing.T, r *Runner) <-chan error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- r.Run() }()
	return done
}

func wait(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("runner returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timeout waiting for runner to quit")
	}
}

func TestRun_TypingSaveQuit(t *testing.T) {
	r, s := newSimRunner(t, "")
	path := filepath.Join(t.TempDir(), "run.txt")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if err := r.LoadFile(path); err != nil {
		t.Fatal(err)
	}

	done := runAsync(t, r)
	postText(s, "ab")
	post(s, ctrl('s'))
	post(s, ctrl('q'))
	wait(t, done)

	if got := r.doc().String(); got != "ab" {
		t.Fatalf("expected buffer 'ab', got %q", got)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "ab" {
		t.Fatalf("expected file 'ab', got %q", data)
	}
}

func TestRun_QuitPromptOnDirty(t *testing.T) {
	r, s := newSimRunner(t, "")
	done := runAsync(t, r)
	postText(s, "a")
	post(s, ctrl('q'))
	postText(s, "n")
	postText(s, "b")
	post(s, ctrl('q'))
	postText(s, "y")
	wait(t, done)

	if got := r.doc().String(); got != "ab" {
		t.Fatalf("content = %q, want %q", got, "ab")
	}
}

func TestRun_SaveAsPromptForUnnamed(t *testing.T) {
	r, s := newSimRunner(t, "")
	path := filepath.Join(t.TempDir(), "new.txt")
	done := runAsync(t, r)
	postText(s, "hi")
	post(s, ctrl('s'))
	postText(s, path)
	post(s, tcell.NewEventKey(tcell.KeyEnter, 0, 0))
	post(s, ctrl('q'))
	wait(t, done)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("save as did not write: %v", err)
	}
	if string(data) != "hi" {
		t.Fatalf("saved %q, want %q", data, "hi")
	}
	if got := r.doc().Path(); got != path {
		t.Fatalf("document bound to %q, want %q", got, path)
	}
}

func TestRun_SearchPrompt(t *testing.T) {
	r, s := newSimRunner(t, "foo bar foo")
	done := runAsync(t, r)
	post(s, ctrl('w'))
	postText(s, "foo")
	post(s, tcell.NewEventKey(tcell.KeyEnter, 0, 0))
	post(s, ctrl('q'))
	wait(t, done)

	if got := r.doc().Cursor(); got != 8 {
		t.Fatalf("cursor after search = %d, want 8", got)
	}
	if r.LastSearch != "foo" {
		t.Fatalf("LastSearch = %q", r.LastSearch)
	}
}

func TestRun_OpenPromptStaysOnError(t *testing.T) {
	r, s := newSimRunner(t, "")
	done := runAsync(t, r)
	post(s, ctrl('o'))
	postText(s, "missing")
	post(s, tcell.NewEventKey(tcell.KeyEnter, 0, 0))
	post(s, tcell.NewEventKey(tcell.KeyEsc, 0, 0))
	post(s, ctrl('q'))
	wait(t, done)

	if got := len(r.Editor.Documents); got != 1 {
		t.Fatalf("documents = %d, want 1", got)
	}
}
