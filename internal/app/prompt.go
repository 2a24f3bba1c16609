package app

import "github.com/gdamore/tcell/v2"

// runPrompt reads a line of input in the status bar. Esc cancels; Enter
// accepts. It reports false when cancelled.
func (r *Runner) runPrompt(label, initial string) (string, bool) {
	input := []rune(initial)
	for {
		r.setMiniBuffer(label + string(input))
		r.draw()
		switch ev := r.waitEvent().(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEsc:
				r.clearMiniBuffer()
				return "", false
			case tcell.KeyEnter:
				r.clearMiniBuffer()
				return string(input), true
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(input) > 0 {
					input = input[:len(input)-1]
				}
			case tcell.KeyRune:
				input = append(input, ev.Rune())
			}
		case nil:
			r.clearMiniBuffer()
			return "", false
		}
	}
}

// runConfirm shows question in the status bar and waits for y or n.
// It returns true if the user answers yes.
func (r *Runner) runConfirm(question string) bool {
	for {
		r.setMiniBuffer(question)
		r.draw()
		switch ev := r.waitEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEsc || (ev.Key() == tcell.KeyRune && (ev.Rune() == 'n' || ev.Rune() == 'N')) {
				r.clearMiniBuffer()
				return false
			}
			if ev.Key() == tcell.KeyRune && (ev.Rune() == 'y' || ev.Rune() == 'Y') {
				r.clearMiniBuffer()
				return true
			}
		case nil:
			return true
		}
	}
}
