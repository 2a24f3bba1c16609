package app

import (
	"fmt"
	"path/filepath"

	"example.com/gapedit/pkg/view"
)

// statusLine describes the current document for the status bar.
func (r *Runner) statusLine() string {
	d := r.Editor.CurrentDoc()
	if d == nil {
		return "gapedit: no document"
	}
	if r.MiniBuf != "" {
		return r.MiniBuf
	}
	name := "[scratch]"
	if d.Path != "" {
		name = filepath.Base(d.Path)
	}
	if d.Dirty {
		name += " *"
	}
	line, col := d.LineCol()
	s := fmt.Sprintf("%s  %d:%d", name, line+1, col+1)
	if len(r.matches) > 0 {
		s += fmt.Sprintf("  [%d matches]", len(r.matches))
	}
	return s
}

func (r *Runner) draw() {
	d := r.Editor.CurrentDoc()
	if r.Screen == nil || d == nil {
		return
	}
	view.Draw(r.Screen, &r.View, view.Frame{
		Buf:     d.Buf,
		Cursor:  d.Cursor(),
		Matches: r.matches,
		Status:  r.statusLine(),
		Theme:   r.Theme,
	})
}
