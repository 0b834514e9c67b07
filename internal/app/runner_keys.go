package app

import (
	"unicode/utf8"

	"example.com/gapedit/pkg/config"
	"github.com/gdamore/tcell/v2"
)

// commands are checked in order before the editing keys.
var commands = []string{"quit", "save", "saveas", "open", "new", "close", "search", "next", "prev"}

// handleKeyEvent processes a key event. It returns true if the event signals
// the runner should quit.
func (r *Runner) handleKeyEvent(ev *tcell.EventKey) bool {
	for _, name := range commands {
		if r.matchCommand(ev, name) {
			return r.runCommand(name)
		}
	}

	d := r.doc()
	ctrl := ev.Modifiers()&tcell.ModCtrl != 0
	action := ""
	switch ev.Key() {
	case tcell.KeyF1:
		r.ShowHelp = true
		action = "help"
	case tcell.KeyLeft:
		d.StepLeft(ctrl)
		action = "left"
	case tcell.KeyRight:
		d.StepRight(ctrl)
		action = "right"
	case tcell.KeyUp:
		d.Up()
		action = "up"
	case tcell.KeyDown:
		d.Down()
		action = "down"
	case tcell.KeyPgUp:
		for i := 0; i < r.pageHeight(); i++ {
			d.Up()
		}
		action = "pageup"
	case tcell.KeyPgDn:
		for i := 0; i < r.pageHeight(); i++ {
			d.Down()
		}
		action = "pagedown"
	case tcell.KeyHome:
		if ctrl {
			d.FullStart()
		} else {
			d.Home()
		}
		action = "home"
	case tcell.KeyEnd:
		if ctrl {
			d.FullEnd()
		} else {
			d.EndOfLine()
		}
		action = "end"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		d.DeleteBackward(ctrl)
		r.highlights = nil
		action = "delete.backward"
	case tcell.KeyDelete:
		d.DeleteForward(ctrl)
		r.highlights = nil
		action = "delete.forward"
	case tcell.KeyEnter:
		r.insert([]byte{'\n'})
		action = "newline"
	case tcell.KeyTab:
		r.insert([]byte{'\t'})
		action = "tab"
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return false
		}
		r.insert(utf8.AppendRune(nil, ev.Rune()))
		action = "insert"
	default:
		return false
	}
	r.Logger.Event("action", map[string]any{"name": action, "cursor": d.Cursor(), "buffer_len": d.Len()})
	r.draw()
	return false
}

func (r *Runner) insert(text []byte) {
	r.highlights = nil
	r.fail(r.doc().Insert(text))
}

// handleMouseEvent moves the cursor to the clicked cell.
func (r *Runner) handleMouseEvent(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	x, y := ev.Position()
	if y >= r.pageHeight() {
		return
	}
	d := r.doc()
	col := x - r.gutterWidth()
	if col < 0 {
		col = 0
	}
	d.MoveToLineColumn(r.TopLine+y, col)
	r.Logger.Event("action", map[string]any{"name": "click", "cursor": d.Cursor(), "line": d.Line()})
	r.draw()
}

// runCommand performs a keymap command. It returns true on quit.
func (r *Runner) runCommand(name string) bool {
	r.Logger.Event("action", map[string]any{"name": name})
	r.clearMiniBuffer()
	switch name {
	case "quit":
		if r.anyDirty() && !r.runQuitPrompt() {
			r.draw()
			return false
		}
		return true
	case "save":
		d := r.doc()
		if !d.HasPath() {
			r.runSaveAsPrompt()
			break
		}
		if err := d.Save(); err != nil {
			r.setMiniBuffer([]string{errorMessage(err)})
		} else {
			r.setMiniBuffer([]string{"Saved " + d.Path()})
		}
	case "saveas":
		r.runSaveAsPrompt()
	case "open":
		r.runOpenPrompt()
	case "new":
		r.Editor.NewEmpty()
		r.resetView()
	case "close":
		r.closeCurrent()
	case "search":
		r.runSearchPrompt()
	case "next":
		r.Editor.Next()
		r.resetView()
	case "prev":
		r.Editor.Prev()
		r.resetView()
	}
	r.draw()
	return false
}

// closeCurrent drops the active document without saving. Closing the last
// document leaves an empty one in its place.
func (r *Runner) closeCurrent() {
	if r.Editor.Current < 0 {
		return
	}
	if err := r.Editor.Close(r.Editor.Current); err != nil {
		r.setMiniBuffer([]string{"Error: " + err.Error()})
		return
	}
	r.doc()
	r.resetView()
}

func (r *Runner) anyDirty() bool {
	for _, d := range r.Editor.Documents {
		if d.Dirty() {
			return true
		}
	}
	return false
}

func (r *Runner) matchCommand(ev *tcell.EventKey, name string) bool {
	if r.Keymap == nil {
		r.Keymap = config.DefaultKeymap()
	}
	kb, ok := r.Keymap[name]
	if !ok {
		return false
	}
	return kb.Matches(ev)
}
