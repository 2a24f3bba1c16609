package app

import (
	"github.com/gdamore/tcell/v2"

	"example.com/gapedit/pkg/config"
	"example.com/gapedit/pkg/editor"
	"example.com/gapedit/pkg/logs"
	"example.com/gapedit/pkg/search"
	"example.com/gapedit/pkg/view"
)

// Runner owns the terminal lifecycle and the event loop.
type Runner struct {
	Screen  tcell.Screen
	Editor  *editor.Editor
	View    view.Viewport
	Theme   config.Theme
	Keymap  map[string]config.Keybinding
	Logger  *logs.Logger
	MiniBuf string

	query   []rune
	matches []search.Range
}

// New creates a Runner for ed using its configuration.
func New(ed *editor.Editor) *Runner {
	return &Runner{
		Editor: ed,
		View: view.Viewport{
			ScrollOff: ed.Config.View.ScrollOff,
			TabWidth:  ed.Config.Buffer.TabWidth,
		},
		Theme:  config.ThemeByName(ed.Config.Theme),
		Keymap: ed.Config.Keymap,
		Logger: ed.Logger,
	}
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

// Run starts the event loop and returns when the user quits.
func (r *Runner) Run() error {
	if r.Screen == nil {
		if err := r.InitScreen(); err != nil {
			return err
		}
		defer r.Fini()
	}
	if r.Editor.CurrentDoc() == nil {
		if _, err := r.Editor.NewDocument(); err != nil {
			return err
		}
	}
	r.Logger.Event("run.start", map[string]any{"docs": len(r.Editor.Docs)})
	defer r.Logger.Event("run.end", nil)

	r.draw()
	for {
		switch ev := r.waitEvent().(type) {
		case *tcell.EventKey:
			if r.Logger.Enabled() {
				r.Logger.Event("key", map[string]any{
					"key":       int(ev.Key()),
					"rune":      string(ev.Rune()),
					"modifiers": int(ev.Modifiers()),
				})
			}
			if r.handleKeyEvent(ev) {
				r.Logger.Event("action", map[string]any{"name": "quit"})
				return nil
			}
			r.draw()
		case *tcell.EventResize:
			r.Screen.Sync()
			r.draw()
		case nil:
			// screen finalized
			return nil
		}
	}
}

func (r *Runner) waitEvent() tcell.Event {
	if r.Screen == nil {
		return nil
	}
	return r.Screen.PollEvent()
}

func (r *Runner) setMiniBuffer(msg string) { r.MiniBuf = msg }

func (r *Runner) clearMiniBuffer() { r.MiniBuf = "" }
