package buffer

import "fmt"

// NotFound is returned by Find when the requested occurrence does not exist.
const NotFound = -1

// ToSlice returns the live content as a fresh slice, prefix then suffix.
func (g *GapBuffer[T]) ToSlice() []T {
	out := make([]T, g.Len())
	n := copy(out, g.buf[:g.gapStart])
	copy(out[n:], g.buf[g.gapEnd:])
	return out
}

// String returns the content as text for rune and byte buffers, and the
// fmt representation of the elements otherwise.
func (g *GapBuffer[T]) String() string {
	switch s := any(g.ToSlice()).(type) {
	case []rune:
		return string(s)
	case []byte:
		return string(s)
	default:
		return fmt.Sprint(s)
	}
}

// Slice returns a copy of the elements in [start,end). Bounds are clamped to
// the live content.
func (g *GapBuffer[T]) Slice(start, end int) []T {
	if start < 0 {
		start = 0
	}
	if end > g.Len() {
		end = g.Len()
	}
	if start >= end {
		return []T{}
	}
	out := make([]T, 0, end-start)
	if start < g.gapStart {
		out = append(out, g.buf[start:min(end, g.gapStart)]...)
	}
	if end > g.gapStart {
		gl := g.GapLen()
		out = append(out, g.buf[max(start, g.gapStart)+gl:end+gl]...)
	}
	return out
}

// indexFrom returns the logical index of the first c at or after from, or -1.
func (g *GapBuffer[T]) indexFrom(from int, c T) int {
	for i := from; i < g.gapStart; i++ {
		if g.buf[i] == c {
			return i
		}
	}
	gl := g.GapLen()
	for p := max(from, g.gapStart) + gl; p < len(g.buf); p++ {
		if g.buf[p] == c {
			return p - gl
		}
	}
	return -1
}

// lastIndexBefore returns the logical index of the last c before end, or -1.
func (g *GapBuffer[T]) lastIndexBefore(end int, c T) int {
	gl := g.GapLen()
	for i := end - 1; i >= g.gapStart; i-- {
		if g.buf[i+gl] == c {
			return i
		}
	}
	for i := min(end, g.gapStart) - 1; i >= 0; i-- {
		if g.buf[i] == c {
			return i
		}
	}
	return -1
}

// LineBounds returns the [start,end) bounds of the line containing logical
// position pos. pos is clamped to [0, Len()]. The line starts after the
// nearest delim before pos and ends after the next delim at or after pos,
// or at Len() when there is none.
func (g *GapBuffer[T]) LineBounds(pos int, delim T) (start, end int) {
	pos = min(max(pos, 0), g.Len())
	start = g.lastIndexBefore(pos, delim) + 1
	end = g.indexFrom(pos, delim)
	if end < 0 {
		end = g.Len()
	} else {
		end++
	}
	return start, end
}

// Line returns the line containing pos, including its trailing delim when present.
func (g *GapBuffer[T]) Line(pos int, delim T) []T {
	return g.Slice(g.LineBounds(pos, delim))
}

// LineCount returns the number of delim-terminated segments, plus one when
// the content does not end with delim. An empty buffer has no lines.
func (g *GapBuffer[T]) LineCount(delim T) int {
	if g.IsEmpty() {
		return 0
	}
	n := 0
	for i := g.indexFrom(0, delim); i >= 0; i = g.indexFrom(i+1, delim) {
		n++
	}
	if last, _ := g.Back(); last != delim {
		n++
	}
	return n
}

// Find returns the logical index of the occurrence-th c (1-based).
// occurrence 0 returns 0; a missing occurrence returns NotFound.
func (g *GapBuffer[T]) Find(c T, occurrence int) int {
	if occurrence == 0 {
		return 0
	}
	if occurrence < 0 {
		return NotFound
	}
	i := -1
	for ; occurrence > 0; occurrence-- {
		i = g.indexFrom(i+1, c)
		if i < 0 {
			return NotFound
		}
	}
	return i
}

// LineAt returns the rune start and end indices for the given line number
// (0-based). If the line index is past the end, it returns the last line's
// bounds. The end index includes the terminating delim when present.
func (g *GapBuffer[T]) LineAt(n int, delim T) (start, end int) {
	if n <= 0 || g.IsEmpty() {
		return g.LineBounds(0, delim)
	}
	if i := g.Find(delim, n); i != NotFound {
		return g.LineBounds(i+1, delim)
	}
	return g.LineBounds(g.Len(), delim)
}
