package buffer

import "iter"

// Reader is the read-only surface renderers and searchers use. Positions
// and lengths are logical indices; the gap is never visible through it.
type Reader[T comparable] interface {
	Len() int
	At(i int) (T, error)
	Slice(start, end int) []T
	All() iter.Seq2[int, T]
	LineBounds(pos int, delim T) (start, end int)
	Line(pos int, delim T) []T
	LineCount(delim T) int
	Find(c T, occurrence int) int
}

var _ Reader[rune] = (*GapBuffer[rune])(nil)
