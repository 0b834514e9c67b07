package config

import "github.com/gdamore/tcell/v2"

// Theme holds the colors of the terminal surface.
type Theme struct {
	Text      tcell.Style
	Gutter    tcell.Style
	Status    tcell.Style
	Cursor    tcell.Style
	Highlight tcell.Style
	Error     tcell.Style
}

// DefaultTheme returns the built-in dark theme.
func DefaultTheme() Theme {
	base := tcell.StyleDefault
	return Theme{
		Text:      base.Foreground(tcell.ColorWhite),
		Gutter:    base.Foreground(tcell.ColorGray),
		Status:    base.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite),
		Cursor:    base.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen),
		Highlight: base.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow),
		Error:     base.Foreground(tcell.ColorRed).Background(tcell.ColorWhite),
	}
}
