package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"example.com/gapedit/pkg/editor"
	"example.com/gapedit/pkg/search"
)

func (r *Runner) bound(name string, ev *tcell.EventKey) bool {
	kb, ok := r.Keymap[name]
	return ok && kb.Matches(ev)
}

// handleKeyEvent processes a key event. It returns true if the event signals
// the runner should quit.
func (r *Runner) handleKeyEvent(ev *tcell.EventKey) bool {
	d := r.Editor.CurrentDoc()
	if d == nil {
		return true
	}
	r.clearMiniBuffer()
	if !r.bound("search", ev) && !r.bound("search_back", ev) {
		r.matches = nil
	}

	switch {
	case r.bound("quit", ev):
		if r.Editor.AnyDirty() {
			return r.runConfirm("Unsaved changes. Quit without saving? (y/n)")
		}
		return true
	case r.bound("save", ev):
		r.save(d)
		return false
	case r.bound("search", ev):
		r.runSearch(d, false)
		return false
	case r.bound("search_back", ev):
		r.runSearch(d, true)
		return false
	case r.bound("kill", ev):
		d.KillLine()
		return false
	case r.bound("yank", ev):
		if !d.Yank() {
			r.setMiniBuffer("kill ring is empty")
		}
		return false
	case r.bound("yank_pop", ev):
		if !d.YankPop() {
			r.setMiniBuffer("previous command was not a yank")
		}
		return false
	case r.bound("word_end", ev):
		d.WordEnd()
		return false
	case r.bound("undo", ev):
		if err := d.Undo(); err != nil {
			r.setMiniBuffer(err.Error())
		}
		return false
	case r.bound("redo", ev):
		if err := d.Redo(); err != nil {
			r.setMiniBuffer(err.Error())
		}
		return false
	case r.bound("next", ev):
		r.Editor.Next()
		return false
	case r.bound("prev", ev):
		r.Editor.Prev()
		return false
	case r.bound("close", ev):
		return r.closeDoc(d)
	}

	word := ev.Modifiers()&tcell.ModCtrl != 0
	switch ev.Key() {
	case tcell.KeyLeft:
		if word {
			d.WordLeft()
		} else {
			d.Left()
		}
	case tcell.KeyRight:
		if word {
			d.WordRight()
		} else {
			d.Right()
		}
	case tcell.KeyUp:
		d.Up()
	case tcell.KeyDown:
		d.Down()
	case tcell.KeyPgUp:
		for range max(r.View.Height-1, 1) {
			d.Up()
		}
	case tcell.KeyPgDn:
		for range max(r.View.Height-1, 1) {
			d.Down()
		}
	case tcell.KeyHome:
		d.LineStart()
	case tcell.KeyEnd:
		d.LineEnd()
	case tcell.KeyEnter:
		d.Newline()
	case tcell.KeyTab:
		r.insertTab(d)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		d.Backspace()
	case tcell.KeyDelete:
		d.DeleteForward()
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0 {
			d.Type(ev.Rune())
		}
	}
	return false
}

func (r *Runner) insertTab(d *editor.Document) {
	cfg := r.Editor.Config.Buffer
	if !cfg.ExpandTabs {
		d.Type('\t')
		return
	}
	width := max(cfg.TabWidth, 1)
	_, col := d.LineCol()
	d.Type([]rune(strings.Repeat(" ", width-col%width))...)
}

// closeDoc closes the current document after confirming unsaved changes.
// Closing the last document quits.
func (r *Runner) closeDoc(d *editor.Document) bool {
	if d.Dirty && !r.runConfirm("Unsaved changes. Close without saving? (y/n)") {
		return false
	}
	r.Editor.Close()
	r.Logger.Event("action", map[string]any{"name": "close", "file": d.Path})
	return r.Editor.CurrentDoc() == nil
}

func (r *Runner) save(d *editor.Document) {
	err := d.Save()
	if errors.Is(err, editor.ErrNoPath) {
		path, ok := r.runPrompt("Save as: ", "")
		if !ok {
			return
		}
		err = d.SaveAs(path)
	}
	if err != nil {
		r.setMiniBuffer("save failed: " + err.Error())
		return
	}
	r.setMiniBuffer("saved " + d.Path)
}

// runSearch prompts for a query, highlights every match and moves the cursor
// to the next match after it, or the previous one before it when backward is
// set. Both directions wrap.
func (r *Runner) runSearch(d *editor.Document, backward bool) {
	label := "Search: "
	if backward {
		label = "Search backward: "
	}
	q, ok := r.runPrompt(label, string(r.query))
	if !ok || q == "" {
		r.matches = nil
		return
	}
	r.query = []rune(q)
	r.matches = search.SearchAll(d.Buf, r.query)
	if len(r.matches) == 0 {
		r.setMiniBuffer(fmt.Sprintf("not found: %s", q))
		return
	}
	var i int
	if backward {
		i = search.SearchPrev(r.matches, d.Cursor())
	} else {
		i = search.SearchNext(r.matches, d.Cursor())
		if r.matches[i].Start == d.Cursor() {
			i = (i + 1) % len(r.matches)
		}
	}
	d.MoveTo(r.matches[i].Start)
	r.Logger.Event("search", map[string]any{"query": q, "matches": len(r.matches), "pos": d.Cursor(), "backward": backward})
}
