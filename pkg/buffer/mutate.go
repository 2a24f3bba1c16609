package buffer

import "fmt"

// PushBack writes v at the edit point. The buffer doubles its capacity when
// the write uses up the gap.
func (g *GapBuffer[T]) PushBack(v T) {
	if g.gapStart == g.gapEnd {
		g.grow()
	}
	g.buf[g.gapStart] = v
	g.gapStart++
	if g.gapStart == g.gapEnd {
		g.grow()
	}
	g.touch()
}

// PopBack removes and returns the element just before the edit point.
func (g *GapBuffer[T]) PopBack() (T, error) {
	var zero T
	if g.gapStart == 0 {
		return zero, fmt.Errorf("pop at edit position 0: %w", ErrOutOfRange)
	}
	g.gapStart--
	v := g.buf[g.gapStart]
	g.buf[g.gapStart] = zero
	g.touch()
	return v, nil
}

// Insert writes vals at the edit point, in order. The edit point ends up
// after the last inserted element.
func (g *GapBuffer[T]) Insert(vals ...T) {
	if len(vals) == 0 {
		return
	}
	if need := len(vals) + 1; g.GapLen() < need {
		n := max(len(g.buf), MinCapacity)
		for n-g.Len() < need {
			n *= 2
		}
		g.Reserve(n)
	}
	g.gapStart += copy(g.buf[g.gapStart:], vals)
	g.touch()
	g.checkInvariants()
}

// Erase removes count elements immediately before the edit point and
// returns them in document order. When count exceeds the edit position the
// buffer is left unchanged.
func (g *GapBuffer[T]) Erase(count int) ([]T, error) {
	if count < 0 || count > g.gapStart {
		return nil, fmt.Errorf("erase %d before edit position %d: %w", count, g.gapStart, ErrOutOfRange)
	}
	out := make([]T, count)
	for i := count - 1; i >= 0; i-- {
		v, err := g.PopBack()
		if err != nil {
			panic(fmt.Sprintf("buffer: pop failed inside checked erase: %v", err))
		}
		out[i] = v
	}
	return out, nil
}

// Advance moves the edit point one element to the right. The element after
// the gap is copied to the front of the gap and its old slot joins the gap.
// With a zero-length gap it does nothing.
func (g *GapBuffer[T]) Advance() error {
	if g.gapEnd == len(g.buf) {
		return fmt.Errorf("advance past end: %w", ErrOutOfRange)
	}
	if g.gapStart == g.gapEnd {
		// nothing to carry across an empty gap
		return nil
	}
	var zero T
	g.buf[g.gapStart] = g.buf[g.gapEnd]
	g.buf[g.gapEnd] = zero
	g.gapStart++
	g.gapEnd++
	g.touch()
	return nil
}

// Retreat moves the edit point one element to the left. With a zero-length
// gap it does nothing.
func (g *GapBuffer[T]) Retreat() error {
	if g.gapStart == 0 {
		return fmt.Errorf("retreat past start: %w", ErrOutOfRange)
	}
	if g.gapStart == g.gapEnd {
		return nil
	}
	var zero T
	g.buf[g.gapEnd-1] = g.buf[g.gapStart-1]
	g.buf[g.gapStart-1] = zero
	g.gapStart--
	g.gapEnd--
	g.touch()
	return nil
}

// Seek moves the edit point to logical position pos in [0, Len()]. The
// result is the same as repeated Advance or Retreat calls but the crossed
// elements are moved with one copy.
func (g *GapBuffer[T]) Seek(pos int) error {
	if pos < 0 || pos > g.Len() {
		return fmt.Errorf("seek %d (len %d): %w", pos, g.Len(), ErrOutOfRange)
	}
	if pos == g.gapStart {
		return nil
	}
	if pos < g.gapStart {
		d := g.gapStart - pos
		copy(g.buf[g.gapEnd-d:g.gapEnd], g.buf[pos:g.gapStart])
		g.gapStart -= d
		g.gapEnd -= d
		clear(g.buf[g.gapStart:g.gapEnd])
	} else {
		d := pos - g.gapStart
		copy(g.buf[g.gapStart:g.gapStart+d], g.buf[g.gapEnd:g.gapEnd+d])
		g.gapStart += d
		g.gapEnd += d
		clear(g.buf[g.gapStart:g.gapEnd])
	}
	g.touch()
	g.checkInvariants()
	return nil
}
