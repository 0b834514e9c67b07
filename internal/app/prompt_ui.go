package app

import (
	"github.com/gdamore/tcell/v2"
)

// runPrompt reads a line of input on the status bar. Enter calls submit with
// the input; a non-nil error is shown right-aligned and the prompt stays
// open. Esc cancels. It reports whether submit succeeded.
func (r *Runner) runPrompt(label, input string, submit func(string) error) bool {
	if r.Screen == nil {
		return false
	}
	s := r.Screen
	errMsg := ""
	for {
		r.draw()
		width, height := s.Size()
		prompt := label + input
		drawText(s, 0, height-1, width, prompt, r.Theme.Status)
		if errMsg != "" {
			start := max(width-len([]rune(errMsg)), len([]rune(prompt))+1)
			drawText(s, start, height-1, max(width-start, 0), errMsg, r.Theme.Error)
		}
		s.Show()

		ev := s.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return false
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEsc:
				r.draw()
				return false
			case ev.Key() == tcell.KeyEnter:
				if input == "" {
					errMsg = "input required"
					continue
				}
				if err := submit(input); err != nil {
					errMsg = errorMessage(err)
					continue
				}
				return true
			case ev.Key() == tcell.KeyBackspace || ev.Key() == tcell.KeyBackspace2:
				if rs := []rune(input); len(rs) > 0 {
					input = string(rs[:len(rs)-1])
				}
			case ev.Key() == tcell.KeyRune && ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0:
				input += string(ev.Rune())
				errMsg = ""
			}
		}
	}
}
