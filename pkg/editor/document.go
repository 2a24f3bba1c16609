package editor

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"example.com/gapedit/pkg/buffer"
	"example.com/gapedit/pkg/config"
	"example.com/gapedit/pkg/history"
	"example.com/gapedit/pkg/logs"
)

// ErrNoPath is returned when saving a document that was never given a file.
var ErrNoPath = errors.New("document has no file path")

// Document is one open file: its gap buffer plus editing state. The edit
// point of Buf is the cursor.
type Document struct {
	ID       uuid.UUID
	Path     string
	Buf      *buffer.GapBuffer[rune]
	History  *history.History
	KillRing history.KillRing
	Dirty    bool
	Logger   *logs.Logger

	// lastKill lets consecutive KillLine calls extend one kill ring entry.
	lastKill bool
	// yanked is the length of the text the last Yank inserted, or 0 once
	// anything else happened.
	yanked int
}

// NewDocument creates an empty document sized by cfg.
func NewDocument(cfg config.BufferConfig) (*Document, error) {
	buf, err := buffer.WithCapacity[rune](cfg.InitialCapacity)
	if err != nil {
		return nil, err
	}
	return &Document{ID: uuid.New(), Buf: buf, History: history.NewWithLimit(cfg.HistoryLimit)}, nil
}

// LoadFile reads a file and builds a document from its content. CRLF line
// endings become LF and, when cfg.ExpandTabs is set, tabs become spaces.
func LoadFile(path string, cfg config.BufferConfig, logger *logs.Logger) (*Document, error) {
	logger.Event("open.attempt", map[string]any{"file": path})
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Event("open.error", map[string]any{"file": path, "error": err.Error()})
		return nil, err
	}
	text := Normalize(string(data), cfg)
	d := &Document{
		ID:      uuid.New(),
		Path:    path,
		Buf:     buffer.FromString(text),
		History: history.NewWithLimit(cfg.HistoryLimit),
		Logger:  logger,
	}
	logger.Event("open.success", map[string]any{
		"doc":   d.ID.String(),
		"file":  path,
		"bytes": len(data),
		"runes": d.Buf.Len(),
		"cap":   d.Buf.Cap(),
	})
	return d, nil
}

// Normalize converts CRLF to LF and optionally expands tabs to the next
// tab stop.
func Normalize(s string, cfg config.BufferConfig) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	if !cfg.ExpandTabs || !strings.Contains(s, "\t") {
		return s
	}
	width := max(cfg.TabWidth, 1)
	var sb strings.Builder
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			n := width - col%width
			sb.WriteString(strings.Repeat(" ", n))
			col += n
		case '\n':
			sb.WriteRune(r)
			col = 0
		default:
			sb.WriteRune(r)
			col++
		}
	}
	return sb.String()
}

// Save writes the buffer contents to Path and clears Dirty.
func (d *Document) Save() error {
	if d.Path == "" {
		return ErrNoPath
	}
	return d.SaveAs(d.Path)
}

// SaveAs writes the buffer contents to path and makes it the document's path.
func (d *Document) SaveAs(path string) error {
	data := []byte(d.Buf.String())
	if err := os.WriteFile(path, data, 0644); err != nil {
		d.Logger.Event("save.error", map[string]any{"file": path, "error": err.Error()})
		return err
	}
	d.Path = path
	d.Dirty = false
	d.Logger.Event("save.success", map[string]any{"file": path, "bytes": len(data)})
	return nil
}

// Cursor returns the edit position.
func (d *Document) Cursor() int { return d.Buf.EditPos() }

// Type inserts text at the cursor.
func (d *Document) Type(text ...rune) {
	if len(text) == 0 {
		return
	}
	pos := d.Buf.EditPos()
	d.Buf.Insert(text...)
	d.History.RecordInsert(pos, text)
	d.edited("insert", pos)
}

// Newline inserts a line break at the cursor.
func (d *Document) Newline() { d.Type('\n') }

// Backspace deletes the rune before the cursor. It reports whether a rune
// was removed.
func (d *Document) Backspace() bool {
	removed, err := d.Buf.Erase(1)
	if err != nil {
		return false
	}
	pos := d.Buf.EditPos()
	d.History.RecordDelete(pos, removed)
	d.edited("delete", pos)
	return true
}

// DeleteForward deletes the rune after the cursor.
func (d *Document) DeleteForward() bool {
	if err := d.Buf.Advance(); err != nil {
		return false
	}
	return d.Backspace()
}

// Left moves the cursor one rune back.
func (d *Document) Left() bool {
	d.breakChains()
	return d.Buf.Retreat() == nil
}

// Right moves the cursor one rune forward.
func (d *Document) Right() bool {
	d.breakChains()
	return d.Buf.Advance() == nil
}

// MoveTo places the cursor at pos, clamped to the document.
func (d *Document) MoveTo(pos int) {
	d.breakChains()
	pos = min(max(pos, 0), d.Buf.Len())
	if err := d.Buf.Seek(pos); err != nil {
		panic(fmt.Sprintf("editor: clamped seek failed: %v", err))
	}
}

// WordLeft moves the cursor to the start of the previous word.
func (d *Document) WordLeft() { d.MoveTo(buffer.WordStart(d.Buf, d.Cursor())) }

// WordRight moves the cursor to the start of the next word.
func (d *Document) WordRight() { d.MoveTo(buffer.NextWordStart(d.Buf, d.Cursor())) }

// WordEnd moves the cursor just past the end of the word under it, or of the
// next word when the cursor is not on one.
func (d *Document) WordEnd() {
	pos := d.Cursor()
	if pos >= d.Buf.Len() {
		return
	}
	end := buffer.WordEnd(d.Buf, pos)
	if r, err := d.Buf.At(pos); err == nil && buffer.IsWordRune(r) {
		// buffer.WordEnd jumps ahead when pos is already a word's last rune
		if next, err := d.Buf.At(pos + 1); err != nil || !buffer.IsWordRune(next) {
			end = pos
		}
	}
	d.MoveTo(end + 1)
}

func (d *Document) breakChains() {
	d.lastKill = false
	d.yanked = 0
}

// LineStart moves the cursor to the start of its line.
func (d *Document) LineStart() {
	start, _ := d.Buf.LineBounds(d.Cursor(), '\n')
	d.MoveTo(start)
}

// LineEnd moves the cursor before the line break of its line.
func (d *Document) LineEnd() { d.MoveTo(d.lineEnd()) }

func (d *Document) lineEnd() int {
	_, end := d.Buf.LineBounds(d.Cursor(), '\n')
	if end > 0 {
		if r, err := d.Buf.At(end - 1); err == nil && r == '\n' {
			end--
		}
	}
	return end
}

// Up moves the cursor to the previous line, keeping the column when possible.
func (d *Document) Up() { d.moveLine(-1) }

// Down moves the cursor to the next line, keeping the column when possible.
func (d *Document) Down() { d.moveLine(1) }

func (d *Document) moveLine(delta int) {
	line, col := d.LineCol()
	target := line + delta
	if target < 0 || target >= d.lineTotal() {
		return
	}
	start, end := d.Buf.LineAt(target, '\n')
	lineLen := end - start
	if r, err := d.Buf.At(end - 1); err == nil && lineLen > 0 && r == '\n' {
		lineLen--
	}
	d.MoveTo(start + min(col, lineLen))
}

// lineTotal counts lines the way the cursor sees them: a trailing newline
// opens an empty last line the cursor can move to.
func (d *Document) lineTotal() int {
	n := d.Buf.LineCount('\n')
	if last, err := d.Buf.Back(); err == nil && last == '\n' {
		n++
	}
	return max(n, 1)
}

// LineCol returns the 0-based line and column of the cursor.
func (d *Document) LineCol() (line, col int) {
	pos := d.Cursor()
	start, _ := d.Buf.LineBounds(pos, '\n')
	for i, r := range d.Buf.All() {
		if i >= start {
			break
		}
		if r == '\n' {
			line++
		}
	}
	return line, pos - start
}

// KillLine deletes from the cursor to the end of the line, or the line
// break itself when the cursor already sits before it. The text goes to the
// kill ring; consecutive kills extend the same entry.
func (d *Document) KillLine() bool {
	appendKill := d.lastKill
	pos := d.Cursor()
	end := d.lineEnd()
	if end == pos {
		_, lineEnd := d.Buf.LineBounds(pos, '\n')
		end = lineEnd
	}
	if end == pos {
		return false
	}
	d.MoveTo(end)
	removed, err := d.Buf.Erase(end - pos)
	if err != nil {
		panic(fmt.Sprintf("editor: erase after seek failed: %v", err))
	}
	if appendKill {
		d.KillRing.Append(removed)
	} else {
		d.KillRing.Push(removed)
	}
	d.History.RecordDelete(pos, removed)
	d.edited("kill", pos)
	d.lastKill = true
	return true
}

// Yank inserts the current kill ring entry at the cursor.
func (d *Document) Yank() bool {
	if !d.KillRing.HasData() {
		return false
	}
	text := d.KillRing.Current()
	d.Type(text...)
	d.yanked = len(text)
	return true
}

// YankPop replaces the text inserted by the previous Yank or YankPop with
// the next older kill ring entry. It only works directly after a yank.
func (d *Document) YankPop() bool {
	n := d.yanked
	if n == 0 || !d.KillRing.Rotate() {
		return false
	}
	removed, err := d.Buf.Erase(n)
	if err != nil {
		panic(fmt.Sprintf("editor: erase of yanked text failed: %v", err))
	}
	pos := d.Cursor()
	d.History.RecordDelete(pos, removed)
	d.edited("yank_pop", pos)
	return d.Yank()
}

// Undo reverts the last edit and moves the cursor to it.
func (d *Document) Undo() error {
	op, err := d.History.Undo(d.Buf)
	if err != nil {
		return err
	}
	d.edited("undo", op.Pos)
	return nil
}

// Redo reapplies the last undone edit.
func (d *Document) Redo() error {
	op, err := d.History.Redo(d.Buf)
	if err != nil {
		return err
	}
	d.edited("redo", op.Pos)
	return nil
}

func (d *Document) edited(action string, pos int) {
	d.Dirty = true
	d.yanked = 0
	if action != "kill" {
		d.lastKill = false
	}
	if d.Logger.Enabled() {
		d.Logger.Event("edit."+action, map[string]any{
			"doc":  d.ID.String(),
			"file": d.Path,
			"pos":  pos,
			"len":  d.Buf.Len(),
			"cap":  d.Buf.Cap(),
			"gap":  d.Buf.GapLen(),
		})
	}
}
