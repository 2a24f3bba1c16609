package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"example.com/gapedit/pkg/config"
	"example.com/gapedit/pkg/editor"
)

func newSimRunner(t *testing.T, text string) (*Runner, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	t.Cleanup(s.Fini)
	s.SetSize(40, 6)

	ed := editor.New(nil, nil)
	d, err := ed.NewDocument()
	require.NoError(t, err)
	if text != "" {
		d.Type([]rune(text)...)
	}
	r := New(ed)
	r.Screen = s
	return r, s
}

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }

func char(c rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, c, tcell.ModNone) }

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	out := make([]rune, 0, w)
	for x := 0; x < w; x++ {
		c, _, _, _ := s.GetContent(x, y)
		out = append(out, c)
	}
	return string(out)
}

func TestRun_TypeAndConfirmQuit(t *testing.T) {
	r, s := newSimRunner(t, "")
	s.InjectKey(tcell.KeyRune, 'h', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'i', tcell.ModNone)
	s.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)
	s.InjectKey(tcell.KeyRune, 'y', tcell.ModNone)

	require.NoError(t, r.Run())
	d := r.Editor.CurrentDoc()
	require.Equal(t, "hi", d.Buf.String())
	require.True(t, d.Dirty)
	require.Equal(t, "hi", rowText(s, 0)[:2])
}

func TestQuit_DeclinedKeepsRunning(t *testing.T) {
	r, s := newSimRunner(t, "x")
	s.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)
	require.False(t, r.handleKeyEvent(key(tcell.KeyCtrlQ)))

	r.Editor.CurrentDoc().Dirty = false
	require.True(t, r.handleKeyEvent(key(tcell.KeyCtrlQ)))
}

func TestHandleKey_EditingAndMotion(t *testing.T) {
	r, _ := newSimRunner(t, "abc\ndef")
	d := r.Editor.CurrentDoc()

	r.handleKeyEvent(key(tcell.KeyHome))
	require.Equal(t, 4, d.Cursor())
	r.handleKeyEvent(key(tcell.KeyUp))
	require.Equal(t, 0, d.Cursor())
	r.handleKeyEvent(key(tcell.KeyEnd))
	require.Equal(t, 3, d.Cursor())
	r.handleKeyEvent(key(tcell.KeyBackspace2))
	require.Equal(t, "ab\ndef", d.Buf.String())
	r.handleKeyEvent(key(tcell.KeyDelete))
	require.Equal(t, "abdef", d.Buf.String())
	r.handleKeyEvent(key(tcell.KeyEnter))
	r.handleKeyEvent(char('X'))
	require.Equal(t, "ab\nXdef", d.Buf.String())

	// the newline and the X were typed back to back and undo as one edit
	r.handleKeyEvent(key(tcell.KeyCtrlZ))
	require.Equal(t, "abdef", d.Buf.String())
	r.handleKeyEvent(key(tcell.KeyCtrlR))
	require.Equal(t, "ab\nXdef", d.Buf.String())

	r.handleKeyEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModCtrl))
	require.Equal(t, 3, d.Cursor())
}

func TestHandleKey_KillAndYank(t *testing.T) {
	r, _ := newSimRunner(t, "one\ntwo")
	d := r.Editor.CurrentDoc()
	d.MoveTo(0)

	r.handleKeyEvent(key(tcell.KeyCtrlY))
	require.Equal(t, "kill ring is empty", r.MiniBuf)

	r.handleKeyEvent(key(tcell.KeyCtrlK))
	require.Equal(t, "\ntwo", d.Buf.String())
	r.handleKeyEvent(key(tcell.KeyDown))
	r.handleKeyEvent(key(tcell.KeyEnd))
	r.handleKeyEvent(key(tcell.KeyCtrlY))
	require.Equal(t, "\ntwoone", d.Buf.String())
}

func TestHandleKey_UndoEmptyReportsError(t *testing.T) {
	r, _ := newSimRunner(t, "")
	r.handleKeyEvent(key(tcell.KeyCtrlZ))
	require.NotEmpty(t, r.MiniBuf)
	r.handleKeyEvent(char('a'))
	require.Empty(t, r.MiniBuf)
}

func TestHandleKey_ExpandTab(t *testing.T) {
	r, _ := newSimRunner(t, "ab")
	r.Editor.Config.Buffer.ExpandTabs = true
	r.handleKeyEvent(key(tcell.KeyTab))
	require.Equal(t, "ab  ", r.Editor.CurrentDoc().Buf.String())

	r.Editor.Config.Buffer.ExpandTabs = false
	r.handleKeyEvent(key(tcell.KeyTab))
	require.Equal(t, "ab  \t", r.Editor.CurrentDoc().Buf.String())
}

func TestSearch_JumpsAndHighlights(t *testing.T) {
	r, s := newSimRunner(t, "foo bar foo")
	d := r.Editor.CurrentDoc()
	d.MoveTo(0)

	for _, c := range "foo" {
		s.InjectKey(tcell.KeyRune, c, tcell.ModNone)
	}
	s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	r.handleKeyEvent(key(tcell.KeyCtrlW))

	require.Equal(t, 8, d.Cursor())
	require.Len(t, r.matches, 2)
	require.Contains(t, r.statusLine(), "[2 matches]")

	r.draw()
	_, _, style, _ := s.GetContent(1, 0)
	require.Equal(t, r.Theme.Highlight(), style)

	// the previous query is offered again; Enter wraps to the first match
	s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	r.handleKeyEvent(key(tcell.KeyCtrlW))
	require.Equal(t, 0, d.Cursor())

	r.handleKeyEvent(key(tcell.KeyRight))
	require.Empty(t, r.matches)
}

func TestSearch_NotFound(t *testing.T) {
	r, s := newSimRunner(t, "abc")
	s.InjectKey(tcell.KeyRune, 'z', tcell.ModNone)
	s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	r.handleKeyEvent(key(tcell.KeyCtrlW))
	require.Equal(t, "not found: z", r.MiniBuf)
	require.Equal(t, 3, r.Editor.CurrentDoc().Cursor())
}

func TestSave_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0o644))

	r, _ := newSimRunner(t, "")
	d, err := r.Editor.Open(path)
	require.NoError(t, err)
	r.handleKeyEvent(char('b'))
	r.handleKeyEvent(key(tcell.KeyCtrlS))

	require.Equal(t, "saved "+path, r.MiniBuf)
	require.False(t, d.Dirty)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "a\nb", string(data))
}

func TestSave_ScratchPromptCancelled(t *testing.T) {
	r, s := newSimRunner(t, "x")
	s.InjectKey(tcell.KeyEsc, 0, tcell.ModNone)
	r.handleKeyEvent(key(tcell.KeyCtrlS))
	require.True(t, r.Editor.CurrentDoc().Dirty)
	require.Empty(t, r.MiniBuf)
}

func TestRemappedKeymap(t *testing.T) {
	r, _ := newSimRunner(t, "")
	kb, err := config.ParseKeybinding("Ctrl+X")
	require.NoError(t, err)
	r.Keymap["quit"] = kb
	require.False(t, r.handleKeyEvent(key(tcell.KeyCtrlQ)))
	require.True(t, r.handleKeyEvent(key(tcell.KeyCtrlX)))
}

func TestStatusLine(t *testing.T) {
	r, s := newSimRunner(t, "ab\ncd")
	require.Equal(t, "[scratch] *  2:3", r.statusLine())
	r.draw()
	require.Equal(t, "[scratch] *  2:3", rowText(s, 5)[:16])
}

func TestHandleKey_DocumentSwitchingThroughKeymap(t *testing.T) {
	r, _ := newSimRunner(t, "first")
	second, err := r.Editor.NewDocument()
	require.NoError(t, err)
	first := r.Editor.Docs[0]

	r.handleKeyEvent(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModCtrl))
	require.Same(t, first, r.Editor.CurrentDoc())
	r.handleKeyEvent(key(tcell.KeyCtrlP))
	require.Same(t, second, r.Editor.CurrentDoc())

	kb, err := config.ParseKeybinding("Ctrl+O")
	require.NoError(t, err)
	r.Keymap["next"] = kb
	r.handleKeyEvent(key(tcell.KeyCtrlN))
	require.Same(t, second, r.Editor.CurrentDoc())
	r.handleKeyEvent(key(tcell.KeyCtrlO))
	require.Same(t, first, r.Editor.CurrentDoc())
}

func TestHandleKey_CloseDocument(t *testing.T) {
	r, s := newSimRunner(t, "dirty")
	clean, err := r.Editor.NewDocument()
	require.NoError(t, err)

	require.False(t, r.handleKeyEvent(key(tcell.KeyCtrlD)))
	require.Len(t, r.Editor.Docs, 1)
	require.NotSame(t, clean, r.Editor.CurrentDoc())

	s.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)
	require.False(t, r.handleKeyEvent(key(tcell.KeyCtrlD)))
	require.Len(t, r.Editor.Docs, 1)

	s.InjectKey(tcell.KeyRune, 'y', tcell.ModNone)
	require.True(t, r.handleKeyEvent(key(tcell.KeyCtrlD)), "closing the last document quits")
	require.Empty(t, r.Editor.Docs)
}

func TestHandleKey_YankPop(t *testing.T) {
	r, _ := newSimRunner(t, "one\ntwo")
	d := r.Editor.CurrentDoc()
	d.MoveTo(0)
	r.handleKeyEvent(key(tcell.KeyCtrlK))
	r.handleKeyEvent(key(tcell.KeyRight))
	r.handleKeyEvent(key(tcell.KeyCtrlK))
	require.Equal(t, "\n", d.Buf.String())

	altY := tcell.NewEventKey(tcell.KeyRune, 'y', tcell.ModAlt)
	r.handleKeyEvent(altY)
	require.Equal(t, "previous command was not a yank", r.MiniBuf)

	r.handleKeyEvent(key(tcell.KeyCtrlY))
	require.Equal(t, "\ntwo", d.Buf.String())
	r.handleKeyEvent(altY)
	require.Equal(t, "\none", d.Buf.String())
}

func TestHandleKey_WordEnd(t *testing.T) {
	r, _ := newSimRunner(t, "hello world")
	d := r.Editor.CurrentDoc()
	d.MoveTo(0)
	altF := tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModAlt)
	r.handleKeyEvent(altF)
	require.Equal(t, 5, d.Cursor())
	r.handleKeyEvent(altF)
	require.Equal(t, 11, d.Cursor())
	require.Equal(t, "hello world", d.Buf.String(), "Alt+F must not type")
}

func TestSearch_Backward(t *testing.T) {
	r, s := newSimRunner(t, "foo bar foo")
	d := r.Editor.CurrentDoc()
	d.MoveTo(9)

	for _, c := range "foo" {
		s.InjectKey(tcell.KeyRune, c, tcell.ModNone)
	}
	s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	r.handleKeyEvent(key(tcell.KeyCtrlB))
	require.Equal(t, 8, d.Cursor())
	require.Len(t, r.matches, 2)

	s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	r.handleKeyEvent(key(tcell.KeyCtrlB))
	require.Equal(t, 0, d.Cursor())

	// wraps to the last match
	s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	r.handleKeyEvent(key(tcell.KeyCtrlB))
	require.Equal(t, 8, d.Cursor())
}

func TestHandleKey_ExpandTabWithoutWidth(t *testing.T) {
	r, _ := newSimRunner(t, "ab")
	r.Editor.Config.Buffer.ExpandTabs = true
	r.Editor.Config.Buffer.TabWidth = 0
	r.handleKeyEvent(key(tcell.KeyTab))
	require.Equal(t, "ab ", r.Editor.CurrentDoc().Buf.String())
}

func TestDraw_LiteralTabUsesConfiguredWidth(t *testing.T) {
	r, s := newSimRunner(t, "")
	r.handleKeyEvent(char('a'))
	r.handleKeyEvent(key(tcell.KeyTab))
	r.handleKeyEvent(char('b'))
	require.Equal(t, "a\tb", r.Editor.CurrentDoc().Buf.String())

	r.draw()
	require.Equal(t, "a   b", rowText(s, 0)[:5])
	_, _, style, _ := s.GetContent(5, 0)
	require.Equal(t, r.Theme.Cursor(), style)
}
