package view

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"example.com/gapedit/pkg/buffer"
	"example.com/gapedit/pkg/config"
	"example.com/gapedit/pkg/search"
)

// Frame is everything needed to paint one screen.
type Frame struct {
	Buf     buffer.Reader[rune]
	Cursor  int
	Matches []search.Range
	Status  string
	Theme   config.Theme
}

// Draw paints the text area and the status bar. The viewport is resized to
// the screen minus one status row and scrolled so the cursor is shown.
func Draw(s tcell.Screen, v *Viewport, f Frame) {
	width, height := s.Size()
	v.Width = width
	v.Height = max(height-1, 0)

	line := cursorLine(f.Buf, f.Cursor)
	v.ScrollTo(line)
	start, _ := f.Buf.LineBounds(f.Cursor, '\n')
	col := v.Column(Row{Start: start, Text: f.Buf.Slice(start, f.Cursor)}, f.Cursor)
	if col < v.Left {
		v.Left = col
	} else if col >= v.Left+width {
		v.Left = col - width + 1
	}

	s.SetStyle(f.Theme.Text())
	s.Clear()
	for y, row := range v.Visible(f.Buf) {
		drawRow(s, *v, y, row, f)
	}

	cx, cy := col-v.Left, line-v.Top
	if cy >= 0 && cy < v.Height {
		r, _, _, _ := s.GetContent(cx, cy)
		s.SetContent(cx, cy, r, nil, f.Theme.Cursor())
		s.ShowCursor(cx, cy)
	}
	drawStatus(s, width, height-1, f.Status, f.Theme.Status())
	s.Show()
}

func drawRow(s tcell.Screen, v Viewport, y int, row Row, f Frame) {
	for _, c := range v.Clip(row.Text) {
		style := f.Theme.Text()
		if inMatch(f.Matches, row.Start+c.Index) {
			style = f.Theme.Highlight()
		}
		s.SetContent(c.X, y, c.Rune, nil, style)
	}
}

func drawStatus(s tcell.Screen, width, y int, status string, style tcell.Style) {
	if y < 0 {
		return
	}
	for x := 0; x < width; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
	x := 0
	for _, r := range status {
		w := runewidth.RuneWidth(r)
		if x+w > width {
			break
		}
		s.SetContent(x, y, r, nil, style)
		x += w
	}
}

func inMatch(ms []search.Range, pos int) bool {
	for _, m := range ms {
		if pos >= m.Start && pos < m.End {
			return true
		}
	}
	return false
}

// cursorLine returns the 0-based line holding offset pos.
func cursorLine(r buffer.Reader[rune], pos int) int {
	n := 0
	for i, c := range r.All() {
		if i >= pos {
			break
		}
		if c == '\n' {
			n++
		}
	}
	return n
}
