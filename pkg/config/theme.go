package config

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Theme represents configurable colors for the text area, cursor and bars.
type Theme struct {
	UIBackground tcell.Color
	UIForeground tcell.Color

	StatusBackground tcell.Color
	StatusForeground tcell.Color

	CursorText tcell.Color
	CursorBG   tcell.Color

	HighlightSearchBG tcell.Color
	HighlightSearchFG tcell.Color
}

// Text returns the style for plain text.
func (t Theme) Text() tcell.Style {
	return tcell.StyleDefault.Foreground(t.UIForeground).Background(t.UIBackground)
}

// Status returns the style for the status bar.
func (t Theme) Status() tcell.Style {
	return tcell.StyleDefault.Foreground(t.StatusForeground).Background(t.StatusBackground)
}

// Cursor returns the style for the cell under the edit point.
func (t Theme) Cursor() tcell.Style {
	return tcell.StyleDefault.Foreground(t.CursorText).Background(t.CursorBG)
}

// Highlight returns the style for search matches.
func (t Theme) Highlight() tcell.Style {
	return tcell.StyleDefault.Foreground(t.HighlightSearchFG).Background(t.HighlightSearchBG)
}

// DefaultTheme returns the built-in light-on-dark theme.
func DefaultTheme() Theme {
	return Theme{
		UIBackground:      tcell.ColorBlack,
		UIForeground:      tcell.ColorWhite,
		StatusBackground:  tcell.ColorWhite,
		StatusForeground:  tcell.ColorBlack,
		CursorText:        tcell.ColorBlack,
		CursorBG:          tcell.ColorBlue,
		HighlightSearchBG: tcell.ColorYellow,
		HighlightSearchFG: tcell.ColorBlack,
	}
}

// TerminalTheme leaves foreground and background to the terminal and only
// picks palette entries for accents.
func TerminalTheme() Theme {
	return Theme{
		UIBackground:      tcell.ColorDefault,
		UIForeground:      tcell.ColorDefault,
		StatusBackground:  tcell.ColorGray,
		StatusForeground:  tcell.ColorDefault,
		CursorText:        tcell.ColorDefault,
		CursorBG:          tcell.ColorBlue,
		HighlightSearchBG: tcell.ColorYellow,
		HighlightSearchFG: tcell.ColorDefault,
	}
}

// BuiltinThemes exposes the presets by name.
var BuiltinThemes = map[string]Theme{
	"default":  DefaultTheme(),
	"terminal": TerminalTheme(),
}

// ThemeByName returns the named preset, falling back to DefaultTheme.
func ThemeByName(name string) Theme {
	if t, ok := BuiltinThemes[strings.ToLower(name)]; ok {
		return t
	}
	return DefaultTheme()
}
