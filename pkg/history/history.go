package history

import (
	"errors"
	"fmt"

	"example.com/gapedit/pkg/buffer"
)

var (
	// ErrNothingToUndo indicates the undo stack is empty.
	ErrNothingToUndo = errors.New("nothing to undo")
	// ErrNothingToRedo indicates the redo stack is empty.
	ErrNothingToRedo = errors.New("nothing to redo")
	// ErrMismatch indicates the buffer no longer holds the text an operation recorded.
	ErrMismatch = errors.New("buffer does not match recorded edit")
)

// OpType represents the type of an edit operation.
type OpType int

const (
	InsertOp OpType = iota
	DeleteOp
)

func (t OpType) String() string {
	switch t {
	case InsertOp:
		return "insert"
	case DeleteOp:
		return "delete"
	default:
		return fmt.Sprintf("OpType(%d)", int(t))
	}
}

// Operation captures a single edit for undo/redo.
// Pos is a rune index; Text is the inserted/deleted text.
type Operation struct {
	Type OpType
	Pos  int
	Text []rune
}

// End returns the index one past the affected text.
func (op Operation) End() int { return op.Pos + len(op.Text) }

// History keeps stacks of past/future operations for undo/redo.
// Consecutive inserts that continue each other are merged so one undo
// removes a typed run.
type History struct {
	past   []Operation
	future []Operation
	limit  int
}

// DefaultLimit bounds the number of operations kept by New.
const DefaultLimit = 1000

// New creates an empty History.
func New() *History { return &History{limit: DefaultLimit} }

// NewWithLimit creates a History that keeps at most limit operations.
// A limit of zero or less keeps everything.
func NewWithLimit(limit int) *History { return &History{limit: limit} }

// RecordInsert records an insertion of text at pos.
func (h *History) RecordInsert(pos int, text []rune) {
	if len(text) == 0 {
		return
	}
	h.future = nil
	if n := len(h.past); n > 0 {
		last := &h.past[n-1]
		if last.Type == InsertOp && last.End() == pos {
			last.Text = append(last.Text, text...)
			return
		}
	}
	h.push(Operation{Type: InsertOp, Pos: pos, Text: append([]rune(nil), text...)})
}

// RecordDelete records a deletion at pos of the given text.
func (h *History) RecordDelete(pos int, text []rune) {
	if len(text) == 0 {
		return
	}
	h.future = nil
	if n := len(h.past); n > 0 {
		last := &h.past[n-1]
		// backspacing: the new deletion ends where the previous one started
		if last.Type == DeleteOp && pos+len(text) == last.Pos {
			last.Text = append(append([]rune(nil), text...), last.Text...)
			last.Pos = pos
			return
		}
	}
	h.push(Operation{Type: DeleteOp, Pos: pos, Text: append([]rune(nil), text...)})
}

func (h *History) push(op Operation) {
	h.past = append(h.past, op)
	if h.limit > 0 && len(h.past) > h.limit {
		h.past = append(h.past[:0], h.past[len(h.past)-h.limit:]...)
	}
}

// Len returns the number of undoable operations.
func (h *History) Len() int { return len(h.past) }

// CanUndo reports whether there is an operation to undo.
func (h *History) CanUndo() bool { return len(h.past) > 0 }

// CanRedo reports whether there is an operation to redo.
func (h *History) CanRedo() bool { return len(h.future) > 0 }

// Undo applies the inverse of the last operation to buf. The edit point is
// left where the operation happened.
func (h *History) Undo(buf *buffer.GapBuffer[rune]) (Operation, error) {
	if !h.CanUndo() {
		return Operation{}, ErrNothingToUndo
	}
	op := h.past[len(h.past)-1]
	var err error
	switch op.Type {
	case InsertOp:
		err = remove(buf, op)
	case DeleteOp:
		err = insert(buf, op)
	default:
		err = fmt.Errorf("unknown op type %v", op.Type)
	}
	if err != nil {
		return Operation{}, fmt.Errorf("undo %v at %d: %w", op.Type, op.Pos, err)
	}
	h.past = h.past[:len(h.past)-1]
	h.future = append(h.future, op)
	return op, nil
}

// Redo reapplies the next operation to buf.
func (h *History) Redo(buf *buffer.GapBuffer[rune]) (Operation, error) {
	if !h.CanRedo() {
		return Operation{}, ErrNothingToRedo
	}
	op := h.future[len(h.future)-1]
	var err error
	switch op.Type {
	case InsertOp:
		err = insert(buf, op)
	case DeleteOp:
		err = remove(buf, op)
	default:
		err = fmt.Errorf("unknown op type %v", op.Type)
	}
	if err != nil {
		return Operation{}, fmt.Errorf("redo %v at %d: %w", op.Type, op.Pos, err)
	}
	h.future = h.future[:len(h.future)-1]
	h.past = append(h.past, op)
	return op, nil
}

// insert puts op.Text back at op.Pos; the edit point ends after it.
func insert(buf *buffer.GapBuffer[rune], op Operation) error {
	if err := buf.Seek(op.Pos); err != nil {
		return err
	}
	buf.Insert(op.Text...)
	return nil
}

// remove deletes op.Text from op.Pos by erasing backwards from its end.
func remove(buf *buffer.GapBuffer[rune], op Operation) error {
	if op.End() > buf.Len() || string(buf.Slice(op.Pos, op.End())) != string(op.Text) {
		return ErrMismatch
	}
	if err := buf.Seek(op.End()); err != nil {
		return err
	}
	_, err := buf.Erase(len(op.Text))
	return err
}
