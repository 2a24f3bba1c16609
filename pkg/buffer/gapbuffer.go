package buffer

import (
	"errors"
	"fmt"
)

const (
	// DefaultCapacity is the number of slots allocated by New.
	DefaultCapacity = 128
	// MinCapacity is the smallest capacity accepted by WithCapacity and the
	// capacity a zero-capacity buffer grows to on first write.
	MinCapacity = 2
	// Slack is the gap left after content loaded through FromSlice.
	Slack = 8
)

var (
	// ErrOutOfRange is returned when an index or count falls outside the live content.
	ErrOutOfRange = errors.New("index out of range")
	// ErrInvalidCapacity is returned when a buffer is constructed with fewer than MinCapacity slots.
	ErrInvalidCapacity = errors.New("invalid capacity")
	// ErrStaleCursor is the panic value raised when a cursor outlives a mutation.
	ErrStaleCursor = errors.New("cursor used after buffer mutation")
)

// GapBuffer is a sequence with a movable gap at the edit point.
//
// The backing slice is split into a prefix buf[:gapStart], the gap
// buf[gapStart:gapEnd] and a suffix buf[gapEnd:]. Inserting and deleting at
// the edit point only touch the gap boundaries; moving the edit point copies
// the elements it crosses.
//
// A GapBuffer is not safe for concurrent use.
type GapBuffer[T comparable] struct {
	buf      []T
	gapStart int
	gapEnd   int

	// gen is bumped by every mutation and stamped into cursors.
	gen uint64
}

// New creates an empty GapBuffer with DefaultCapacity slots.
func New[T comparable]() *GapBuffer[T] {
	return &GapBuffer[T]{buf: make([]T, DefaultCapacity), gapEnd: DefaultCapacity}
}

// WithCapacity creates an empty GapBuffer with n slots. n must be at least MinCapacity.
func WithCapacity[T comparable](n int) (*GapBuffer[T], error) {
	if n < MinCapacity {
		return nil, fmt.Errorf("capacity %d: %w", n, ErrInvalidCapacity)
	}
	return &GapBuffer[T]{buf: make([]T, n), gapEnd: n}, nil
}

// FromSlice creates a GapBuffer holding a copy of s with the edit point at
// the end and a gap of Slack slots.
func FromSlice[T comparable](s []T) *GapBuffer[T] {
	n := len(s) + Slack
	b := make([]T, n)
	copy(b, s)
	return &GapBuffer[T]{buf: b, gapStart: len(s), gapEnd: n}
}

// FromString initializes a rune GapBuffer with the provided text.
func FromString(s string) *GapBuffer[rune] {
	return FromSlice([]rune(s))
}

// Clone returns a deep copy of g. The two buffers share nothing.
func (g *GapBuffer[T]) Clone() *GapBuffer[T] {
	b := make([]T, len(g.buf))
	copy(b, g.buf)
	return &GapBuffer[T]{buf: b, gapStart: g.gapStart, gapEnd: g.gapEnd}
}

// Take moves the contents of g into a new buffer. g is left as an empty
// zero-capacity buffer; cursors taken from g before the move are stale.
func (g *GapBuffer[T]) Take() *GapBuffer[T] {
	out := &GapBuffer[T]{buf: g.buf, gapStart: g.gapStart, gapEnd: g.gapEnd}
	g.buf = nil
	g.gapStart, g.gapEnd = 0, 0
	g.touch()
	return out
}

// Len returns the number of live elements.
func (g *GapBuffer[T]) Len() int {
	return len(g.buf) - (g.gapEnd - g.gapStart)
}

// Cap returns the number of backing slots, gap included.
func (g *GapBuffer[T]) Cap() int {
	return len(g.buf)
}

// GapLen returns the number of unused slots.
func (g *GapBuffer[T]) GapLen() int {
	return g.gapEnd - g.gapStart
}

// EditPos returns the number of live elements before the gap.
func (g *GapBuffer[T]) EditPos() int {
	return g.gapStart
}

// IsEmpty reports whether the buffer holds no live elements.
func (g *GapBuffer[T]) IsEmpty() bool {
	return g.Len() == 0
}

// physical maps logical index i to its slot in the backing slice.
func physical(i, gapStart, gapEnd int) int {
	if i < gapStart {
		return i
	}
	return i + (gapEnd - gapStart)
}

func (g *GapBuffer[T]) at(i int) T {
	return g.buf[physical(i, g.gapStart, g.gapEnd)]
}

// At returns the element at logical index i.
func (g *GapBuffer[T]) At(i int) (T, error) {
	if i < 0 || i >= g.Len() {
		var zero T
		return zero, fmt.Errorf("at %d (len %d): %w", i, g.Len(), ErrOutOfRange)
	}
	return g.at(i), nil
}

// Front returns the first live element.
func (g *GapBuffer[T]) Front() (T, error) {
	var zero T
	if g.IsEmpty() {
		return zero, fmt.Errorf("front of empty buffer: %w", ErrOutOfRange)
	}
	if g.gapStart == 0 {
		return g.buf[g.gapEnd], nil
	}
	return g.buf[0], nil
}

// Back returns the last live element.
func (g *GapBuffer[T]) Back() (T, error) {
	var zero T
	if g.IsEmpty() {
		return zero, fmt.Errorf("back of empty buffer: %w", ErrOutOfRange)
	}
	if g.gapEnd == len(g.buf) {
		return g.buf[g.gapStart-1], nil
	}
	return g.buf[len(g.buf)-1], nil
}

// Clear drops all content but keeps the backing capacity.
func (g *GapBuffer[T]) Clear() {
	clear(g.buf)
	g.gapStart = 0
	g.gapEnd = len(g.buf)
	g.touch()
}

// Reserve grows the backing slice to n slots. The prefix stays at the start,
// the suffix moves to the end and the gap absorbs the new slots. Reserve is a
// no-op when n does not exceed Cap.
func (g *GapBuffer[T]) Reserve(n int) {
	if n <= len(g.buf) {
		return
	}
	newBuf := make([]T, n)
	copy(newBuf, g.buf[:g.gapStart])
	suffixLen := len(g.buf) - g.gapEnd
	copy(newBuf[n-suffixLen:], g.buf[g.gapEnd:])
	g.buf = newBuf
	g.gapEnd = n - suffixLen
	g.touch()
	g.checkInvariants()
}

// grow is the growth policy applied when the gap is used up.
func (g *GapBuffer[T]) grow() {
	g.Reserve(max(2*len(g.buf), MinCapacity))
}

// touch invalidates outstanding cursors.
func (g *GapBuffer[T]) touch() {
	g.gen++
}

// checkInvariants panics when the gap bounds are inconsistent. A broken gap
// means the logical to physical mapping is wrong and any further write would
// corrupt content.
func (g *GapBuffer[T]) checkInvariants() {
	if g.gapStart < 0 || g.gapStart > g.gapEnd || g.gapEnd > len(g.buf) {
		panic(fmt.Sprintf("buffer: gap [%d,%d) outside backing region of %d", g.gapStart, g.gapEnd, len(g.buf)))
	}
}
