package buffer

import "iter"

// All yields logical index and element pairs front to back. Mutating the
// buffer during iteration panics with ErrStaleCursor.
func (g *GapBuffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for c := g.Begin(); !c.AtEnd(); c = c.Next() {
			if !yield(c.Pos(), c.Value()) {
				return
			}
		}
	}
}

// Backward yields logical index and element pairs back to front.
func (g *GapBuffer[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for r := g.RBegin(); !r.AtEnd(); r = r.Next() {
			if !yield(r.Pos(), r.Value()) {
				return
			}
		}
	}
}

// Values yields the elements front to back.
func (g *GapBuffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.All() {
			if !yield(v) {
				return
			}
		}
	}
}
