package app

import (
	"errors"
	"fmt"

	"example.com/gapedit/pkg/config"
	"example.com/gapedit/pkg/editor"
	"example.com/gapedit/pkg/logs"
	"example.com/gapedit/pkg/search"
	"github.com/gdamore/tcell/v2"
)

// Runner owns the terminal lifecycle and the event loop around an Editor.
type Runner struct {
	Screen   tcell.Screen
	Editor   *editor.Editor
	Logger   *logs.Logger
	Keymap   map[string]config.Keybinding
	Theme    config.Theme
	TopLine  int
	MiniBuf  []string
	ShowHelp bool

	// LastSearch is the most recent search query; matches are highlighted
	// until the next edit.
	LastSearch string
	highlights []search.Range

	// fatal is set when an edit cannot be applied and the session must end.
	fatal error
}

func (r *Runner) setMiniBuffer(lines []string) {
	r.MiniBuf = lines
}

func (r *Runner) clearMiniBuffer() {
	r.MiniBuf = nil
}

// New creates a Runner with no open documents from cfg. A nil cfg uses the
// defaults.
func New(cfg *config.Config, logger *logs.Logger) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}
	opts := editor.Options{
		UnderscoreBreaks: cfg.UnderscoreBreaks,
		InitialSlack:     cfg.InitialSlack,
		GrowthIncrement:  cfg.GrowthIncrement,
		Logger:           logger,
	}
	return &Runner{
		Editor: editor.New(opts),
		Logger: logger,
		Keymap: cfg.Keymap,
		Theme:  cfg.Theme,
	}
}

func (r *Runner) ensureEditor() {
	if r.Editor == nil {
		r.Editor = editor.New(editor.Options{Logger: r.Logger})
	}
}

// doc returns the active document, creating an empty one if none is open.
func (r *Runner) doc() *editor.Document {
	r.ensureEditor()
	if d := r.Editor.CurrentDocument(); d != nil {
		return d
	}
	return r.Editor.NewEmpty()
}

// LoadFile opens path as a new document and makes it current.
func (r *Runner) LoadFile(path string) error {
	if path == "" {
		return nil
	}
	r.ensureEditor()
	if _, err := r.Editor.Open(path); err != nil {
		return err
	}
	r.resetView()
	return nil
}

// Save writes the active document to its bound path.
func (r *Runner) Save() error {
	return r.doc().Save()
}

// SaveAs writes the active document to path and binds it there.
func (r *Runner) SaveAs(path string) error {
	return r.doc().SaveAs(path)
}

// resetView is called whenever the active document changes.
func (r *Runner) resetView() {
	r.TopLine = 0
	r.highlights = nil
	r.LastSearch = ""
}

// InitScreen initializes a tcell screen if one is not already set.
func (r *Runner) InitScreen() error {
	if r.Screen != nil {
		return nil
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	s.SetStyle(tcell.StyleDefault)
	s.EnableMouse()
	s.Clear()
	r.Screen = s
	return nil
}

// Fini finalizes the screen if initialized.
func (r *Runner) Fini() {
	if r.Screen != nil {
		r.Screen.Fini()
		r.Screen = nil
	}
}

// Run starts the event loop. It will initialize the screen if needed and
// return when the user requests quit. A failed edit that leaves the session
// unable to continue is returned as an error.
func (r *Runner) Run() error {
	if r.Screen == nil {
		if err := r.InitScreen(); err != nil {
			return err
		}
		defer r.Fini()
	}
	if r.Keymap == nil {
		r.Keymap = config.DefaultKeymap()
	}
	if r.Theme == (config.Theme{}) {
		r.Theme = config.DefaultTheme()
	}

	d := r.doc()
	r.Logger.Event("run.start", map[string]any{"file": d.Path(), "documents": len(r.Editor.Documents)})
	defer func() {
		r.Logger.Event("run.end", map[string]any{"file": r.doc().Path()})
	}()

	r.draw()
	for {
		ev := r.Screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			r.Logger.Event("key", map[string]any{
				"key":       int(ev.Key()),
				"rune":      string(ev.Rune()),
				"modifiers": int(ev.Modifiers()),
			})
			// If help is currently shown, consume this key to dismiss it
			if r.ShowHelp {
				r.ShowHelp = false
				r.draw()
				continue
			}
			if r.handleKeyEvent(ev) {
				r.Logger.Event("action", map[string]any{"name": "quit"})
				return nil
			}
		case *tcell.EventMouse:
			r.handleMouseEvent(ev)
		case *tcell.EventResize:
			r.Screen.Sync()
			r.draw()
		case nil:
			// screen finalized
			return nil
		}
		if r.fatal != nil {
			r.Logger.Event("action", map[string]any{"name": "abort", "error": r.fatal.Error()})
			return r.fatal
		}
	}
}

// fail records an edit error. Out-of-memory ends the session; anything else
// is reported in the mini-buffer.
func (r *Runner) fail(err error) {
	if err == nil {
		return
	}
	if editor.IsOutOfMemory(err) {
		r.fatal = fmt.Errorf("cannot continue editing: %w", err)
		return
	}
	r.setMiniBuffer([]string{"Error: " + err.Error()})
}

// errorMessage formats an open or save failure for the mini-buffer.
func errorMessage(err error) string {
	var ioErr *editor.IOError
	if errors.As(err, &ioErr) {
		return fmt.Sprintf("Cannot %s %q: %v", ioErr.Op, ioErr.Path, ioErr.Err)
	}
	return "Error: " + err.Error()
}
