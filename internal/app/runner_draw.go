package app

import (
	"fmt"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"example.com/gapedit/pkg/buffer"
	"example.com/gapedit/pkg/config"
	"example.com/gapedit/pkg/lines"
	"github.com/gdamore/tcell/v2"
)

func drawHelp(s tcell.Screen, km map[string]config.Keybinding) {
	width, height := s.Size()
	s.Clear()
	s.SetStyle(tcell.StyleDefault)
	help := []string{
		"Help:",
		"- F1: Show this help",
		"- " + bindingName(km, "quit") + ": Quit",
		"- " + bindingName(km, "open") + ": Open file",
		"- " + bindingName(km, "save") + ": Save (Save As if no file)",
		"- " + bindingName(km, "saveas") + ": Save As",
		"- " + bindingName(km, "new") + ": New document",
		"- " + bindingName(km, "close") + ": Close document",
		"- " + bindingName(km, "next") + "/" + bindingName(km, "prev") + ": Next/previous document",
		"- " + bindingName(km, "search") + ": Search",
		"- Arrow keys: Move cursor (Ctrl+Left/Right by word)",
		"- Home/End: Line start/end (Ctrl for document)",
		"- Backspace/Delete: Remove (Ctrl by word)",
		"- Typing: Inserts characters",
	}
	y := (height - len(help)) / 2
	for i, line := range help {
		x := (width - len(line)) / 2
		for j, r := range line {
			s.SetContent(x+j, y+i, r, nil, tcell.StyleDefault.Foreground(tcell.ColorWhite))
		}
	}
	s.Show()
}

func bindingName(km map[string]config.Keybinding, name string) string {
	kb, ok := km[name]
	if !ok || kb.Key != tcell.KeyRune {
		return "?"
	}
	if kb.Mod == tcell.ModCtrl {
		return "Ctrl+" + string(kb.Rune-'a'+'A')
	}
	return string(kb.Rune)
}

// pageHeight is the number of text rows above the mini-buffer and status bar.
func (r *Runner) pageHeight() int {
	if r.Screen == nil {
		return 0
	}
	_, height := r.Screen.Size()
	return max(height-1-len(r.MiniBuf), 0)
}

// gutterWidth is the width of the line-number column including its padding.
func (r *Runner) gutterWidth() int {
	return len(strconv.Itoa(r.doc().LineCount())) + 1
}

// ensureCursorVisible scrolls so the cursor line is on screen.
func (r *Runner) ensureCursorVisible() {
	rows := r.pageHeight()
	line := r.doc().Line()
	if line < r.TopLine {
		r.TopLine = line
	}
	if rows > 0 && line >= r.TopLine+rows {
		r.TopLine = line - rows + 1
	}
	if r.TopLine < 0 {
		r.TopLine = 0
	}
}

// draw renders the active document, the mini-buffer and the status bar.
func (r *Runner) draw() {
	if r.Screen == nil {
		return
	}
	s := r.Screen
	if r.ShowHelp {
		drawHelp(s, r.Keymap)
		return
	}
	d := r.doc()
	r.ensureCursorVisible()
	width, height := s.Size()
	s.Clear()

	gw := r.gutterWidth()
	rows := r.pageHeight()
	for y := 0; y < rows && r.TopLine+y < d.LineCount(); y++ {
		line := r.TopLine + y
		drawText(s, 0, y, gw, fmt.Sprintf("%*d ", gw-1, line+1), r.Theme.Gutter)
		r.drawLine(line, gw, y, width)
	}

	// draw mini-buffer lines just above status bar
	for i, line := range r.MiniBuf {
		y := height - 1 - len(r.MiniBuf) + i
		drawText(s, 0, y, width, line, r.Theme.Status)
	}
	drawText(s, 0, height-1, width, r.statusLine(), r.Theme.Status)
	s.Show()
}

// drawLine renders one line starting at screen column x0. Tabs expand to
// the next tab stop and invalid sequences show as U+FFFD.
func (r *Runner) drawLine(line, x0, y, width int) {
	d := r.doc()
	start, end := d.LineBounds(line)
	cursor := d.Cursor()
	col := 0
	var seq []byte
	seqStart := start

	flush := func() {
		if len(seq) == 0 {
			return
		}
		defer func() { seq = seq[:0] }()
		if buffer.IsContinuation(seq[0]) {
			return
		}
		style := r.Theme.Text
		if r.highlighted(seqStart) {
			style = r.Theme.Highlight
		}
		if seqStart == cursor {
			style = r.Theme.Cursor
		}
		next := lines.Advance(col, seq[0])
		ch := ' '
		if seq[0] != '\t' {
			ch, _ = utf8.DecodeRune(seq)
		}
		for c := col; c < next; c++ {
			if x := x0 + c; x < width {
				r.Screen.SetContent(x, y, ch, nil, style)
			}
			if seq[0] == '\t' && seqStart == cursor {
				style = r.Theme.Text
			}
		}
		col = next
	}

	it := d.Iter(start)
	for it.Next() && it.Offset() < end {
		b := it.Byte()
		if !buffer.IsContinuation(b) {
			flush()
			seqStart = it.Offset()
		}
		seq = append(seq, b)
	}
	flush()

	// caret past the last byte of the line
	if cursor == end {
		if x := x0 + col; x < width {
			r.Screen.SetContent(x, y, ' ', nil, r.Theme.Cursor)
		}
	}
}

func (r *Runner) highlighted(offset int) bool {
	for _, h := range r.highlights {
		if offset >= h.Start && offset < h.End {
			return true
		}
	}
	return false
}

func (r *Runner) statusLine() string {
	d := r.doc()
	name := "[No File]"
	if d.HasPath() {
		name = filepath.Base(d.Path())
	}
	if d.Dirty() {
		name += " [+]"
	}
	return fmt.Sprintf("%s  Ln %d, Col %d  (%d/%d)  F1 help",
		name, d.Line()+1, d.Column()+1, r.Editor.Current+1, len(r.Editor.Documents))
}

// drawText writes text from x, padding with spaces up to width cells.
func drawText(s tcell.Screen, x, y, width int, text string, style tcell.Style) {
	i := 0
	for _, ch := range text {
		if i >= width {
			return
		}
		s.SetContent(x+i, y, ch, nil, style)
		i++
	}
	for ; i < width; i++ {
		s.SetContent(x+i, y, ' ', nil, style)
	}
}
