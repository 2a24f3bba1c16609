package buffer

import "fmt"

// Cursor is a random-access position in a GapBuffer. It stores a logical
// index, so cursor arithmetic never sees the gap; Slot reports where the
// position lives in the backing slice.
//
// A Cursor is valid until the next mutation of its buffer. Using it after
// that panics with ErrStaleCursor.
type Cursor[T comparable] struct {
	g   *GapBuffer[T]
	pos int
	gen uint64
}

// Begin returns a cursor at logical position 0.
func (g *GapBuffer[T]) Begin() Cursor[T] {
	return Cursor[T]{g: g, pos: 0, gen: g.gen}
}

// End returns a cursor one past the last live element.
func (g *GapBuffer[T]) End() Cursor[T] {
	return Cursor[T]{g: g, pos: g.Len(), gen: g.gen}
}

// CursorAt returns a cursor at logical position i in [0, Len()].
func (g *GapBuffer[T]) CursorAt(i int) (Cursor[T], error) {
	if i < 0 || i > g.Len() {
		return Cursor[T]{}, fmt.Errorf("cursor at %d (len %d): %w", i, g.Len(), ErrOutOfRange)
	}
	return Cursor[T]{g: g, pos: i, gen: g.gen}, nil
}

func (c Cursor[T]) check() {
	if c.g == nil {
		panic("buffer: use of zero Cursor")
	}
	if c.gen != c.g.gen {
		panic(ErrStaleCursor)
	}
}

// Pos returns the logical position.
func (c Cursor[T]) Pos() int {
	c.check()
	return c.pos
}

// Slot returns the physical slot backing the cursor. A cursor positioned at
// the edit point reports the first slot after the gap.
func (c Cursor[T]) Slot() int {
	c.check()
	return physical(c.pos, c.g.gapStart, c.g.gapEnd)
}

// AtEnd reports whether the cursor is one past the last element.
func (c Cursor[T]) AtEnd() bool {
	c.check()
	return c.pos >= c.g.Len()
}

// Value returns the element under the cursor.
func (c Cursor[T]) Value() T {
	c.check()
	if c.pos < 0 || c.pos >= c.g.Len() {
		panic(fmt.Sprintf("buffer: dereference of cursor at %d (len %d)", c.pos, c.g.Len()))
	}
	return c.g.at(c.pos)
}

// Next returns the cursor moved one element forward.
func (c Cursor[T]) Next() Cursor[T] {
	return c.Add(1)
}

// Prev returns the cursor moved one element back.
func (c Cursor[T]) Prev() Cursor[T] {
	return c.Add(-1)
}

// Add returns the cursor moved n elements. The result must stay within
// [0, Len()].
func (c Cursor[T]) Add(n int) Cursor[T] {
	c.check()
	p := c.pos + n
	if p < 0 || p > c.g.Len() {
		panic(fmt.Sprintf("buffer: cursor moved to %d outside [0,%d]", p, c.g.Len()))
	}
	c.pos = p
	return c
}

// Sub returns the cursor moved n elements back.
func (c Cursor[T]) Sub(n int) Cursor[T] {
	return c.Add(-n)
}

// Distance returns the number of elements from c to other.
func (c Cursor[T]) Distance(other Cursor[T]) int {
	c.check()
	other.check()
	if c.g != other.g {
		panic("buffer: distance between cursors of different buffers")
	}
	return other.pos - c.pos
}

// Equal reports whether both cursors point at the same position.
func (c Cursor[T]) Equal(other Cursor[T]) bool {
	return c.Distance(other) == 0
}

// Less reports whether c is before other.
func (c Cursor[T]) Less(other Cursor[T]) bool {
	return c.Distance(other) > 0
}

// ReverseCursor walks a GapBuffer from the back. It wraps a forward cursor
// positioned one past the element it refers to.
type ReverseCursor[T comparable] struct {
	base Cursor[T]
}

// RBegin returns a reverse cursor at the last element.
func (g *GapBuffer[T]) RBegin() ReverseCursor[T] {
	return ReverseCursor[T]{base: g.End()}
}

// REnd returns a reverse cursor one before the first element.
func (g *GapBuffer[T]) REnd() ReverseCursor[T] {
	return ReverseCursor[T]{base: g.Begin()}
}

// Base returns the underlying forward cursor.
func (r ReverseCursor[T]) Base() Cursor[T] { return r.base }

// Pos returns the logical position of the element the cursor refers to.
func (r ReverseCursor[T]) Pos() int { return r.base.Pos() - 1 }

// Value returns the element before the base cursor.
func (r ReverseCursor[T]) Value() T { return r.base.Prev().Value() }

// AtEnd reports whether the cursor has passed the first element.
func (r ReverseCursor[T]) AtEnd() bool { return r.base.Pos() == 0 }

// Next moves toward the front of the buffer.
func (r ReverseCursor[T]) Next() ReverseCursor[T] { return ReverseCursor[T]{base: r.base.Prev()} }

// Prev moves toward the back of the buffer.
func (r ReverseCursor[T]) Prev() ReverseCursor[T] { return ReverseCursor[T]{base: r.base.Next()} }

// Add moves n elements toward the front.
func (r ReverseCursor[T]) Add(n int) ReverseCursor[T] { return ReverseCursor[T]{base: r.base.Sub(n)} }

// Distance returns the number of reverse steps from r to other.
func (r ReverseCursor[T]) Distance(other ReverseCursor[T]) int {
	return other.base.Distance(r.base)
}

// Sub moves n elements toward the back.
func (r ReverseCursor[T]) Sub(n int) ReverseCursor[T] { return ReverseCursor[T]{base: r.base.Add(n)} }

// Equal reports whether both reverse cursors refer to the same element.
func (r ReverseCursor[T]) Equal(other ReverseCursor[T]) bool { return r.base.Equal(other.base) }

// Less reports whether r comes before other in reverse order.
func (r ReverseCursor[T]) Less(other ReverseCursor[T]) bool { return other.base.Less(r.base) }
