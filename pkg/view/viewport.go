// Package view turns a buffer into the rows a terminal shows. It only reads
// the buffer: every draw cycle asks for the line count, locates the first
// visible line with Find and pulls each line with Line.
package view

import (
	"github.com/mattn/go-runewidth"

	"example.com/gapedit/pkg/buffer"
	"example.com/gapedit/pkg/search"
)

// DefaultTabWidth is the tab stop distance used when Viewport.TabWidth is unset.
const DefaultTabWidth = 4

// Row is one visible line.
type Row struct {
	Line  int    // 0-based line number
	Start int    // logical offset of the first rune
	Text  []rune // line content without its line break
}

// Viewport is a window of Height rows and Width cells starting at line Top.
type Viewport struct {
	Top       int
	Left      int
	Height    int
	Width     int
	ScrollOff int
	TabWidth  int
}

// Cell is one screen cell produced by Clip.
type Cell struct {
	X     int  // screen column relative to the viewport
	Rune  rune // rune to paint; tabs and cut-off wide runes become spaces
	Index int  // index in the row text of the rune the cell belongs to
}

// LineStart returns the offset where line n begins, or buffer.NotFound if
// the buffer has fewer lines. Line 0 always starts at 0.
func LineStart(r buffer.Reader[rune], n int) int {
	if n == 0 {
		return 0
	}
	i := search.Nth(r, '\n', n)
	if i == buffer.NotFound {
		return buffer.NotFound
	}
	return i + 1
}

// Visible returns the rows inside the viewport.
func (v Viewport) Visible(r buffer.Reader[rune]) []Row {
	if v.Height <= 0 {
		return nil
	}
	total := r.LineCount('\n')
	rows := make([]Row, 0, min(v.Height, max(total-v.Top, 0)))
	for n := v.Top; n < total && len(rows) < v.Height; n++ {
		start := LineStart(r, n)
		if start == buffer.NotFound || start >= r.Len() {
			break
		}
		text := r.Line(start, '\n')
		if k := len(text); k > 0 && text[k-1] == '\n' {
			text = text[:k-1]
		}
		rows = append(rows, Row{Line: n, Start: start, Text: text})
	}
	return rows
}

// ScrollTo adjusts Top so that line stays at least ScrollOff rows away from
// the top and bottom edges when the document allows it.
func (v *Viewport) ScrollTo(line int) {
	if v.Height <= 0 {
		return
	}
	off := min(v.ScrollOff, (v.Height-1)/2)
	if line-off < v.Top {
		v.Top = max(line-off, 0)
	}
	if line+off >= v.Top+v.Height {
		v.Top = line + off - v.Height + 1
	}
}

func (v Viewport) tabWidth() int {
	if v.TabWidth > 0 {
		return v.TabWidth
	}
	return DefaultTabWidth
}

// width returns the number of cells r takes when it starts at column col.
// A tab runs to the next tab stop.
func (v Viewport) width(r rune, col int) int {
	if r == '\t' {
		tw := v.tabWidth()
		return tw - col%tw
	}
	return runewidth.RuneWidth(r)
}

// Clip lays text out in display columns, scrolled left by v.Left cells and
// cut to v.Width cells. Tabs are expanded to spaces. A wide rune that
// straddles either edge is replaced by spaces for the part that is visible,
// so every later rune keeps its column. Zero-width runes are dropped.
func (v Viewport) Clip(text []rune) []Cell {
	var out []Cell
	right := v.Left + v.Width
	col := 0
	for i, r := range text {
		start := col
		col += v.width(r, start)
		x0 := max(start, v.Left) - v.Left
		x1 := min(col, right) - v.Left
		if x0 >= x1 {
			if start >= right {
				break
			}
			continue
		}
		if r == '\t' || start < v.Left || col > right {
			for x := x0; x < x1; x++ {
				out = append(out, Cell{X: x, Rune: ' ', Index: i})
			}
		} else {
			out = append(out, Cell{X: x0, Rune: r, Index: i})
		}
		if col >= right {
			break
		}
	}
	return out
}

// Column returns the display column of offset pos within row, counted from
// the start of the line.
func (v Viewport) Column(row Row, pos int) int {
	n := min(max(pos-row.Start, 0), len(row.Text))
	col := 0
	for _, r := range row.Text[:n] {
		col += v.width(r, col)
	}
	return col
}
