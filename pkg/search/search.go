package search

import "example.com/gapedit/pkg/buffer"

// Range represents a rune-offset half-open interval [Start, End).
type Range struct {
	Start int
	End   int
}

// SearchAll returns all non-overlapping occurrences of query in r as rune
// ranges. It streams the buffer once; empty query returns nil.
func SearchAll(r buffer.Reader[rune], query []rune) []Range {
	if len(query) == 0 {
		return nil
	}
	fail := failureTable(query)
	var res []Range
	k := 0
	for i, c := range r.All() {
		for k > 0 && c != query[k] {
			k = fail[k-1]
		}
		if c == query[k] {
			k++
		}
		if k == len(query) {
			res = append(res, Range{Start: i + 1 - k, End: i + 1})
			// restart so matches do not overlap
			k = 0
		}
	}
	return res
}

// failureTable is the KMP prefix function of q.
func failureTable(q []rune) []int {
	fail := make([]int, len(q))
	k := 0
	for i := 1; i < len(q); i++ {
		for k > 0 && q[i] != q[k] {
			k = fail[k-1]
		}
		if q[i] == q[k] {
			k++
		}
		fail[i] = k
	}
	return fail
}

// SearchNext returns the index in ranges of the next match at or after pos.
// If pos is past all matches, it wraps and returns 0. Returns -1 if no ranges.
func SearchNext(ranges []Range, pos int) int {
	if len(ranges) == 0 {
		return -1
	}
	for i, r := range ranges {
		if pos < r.End {
			return i
		}
	}
	// wrap
	return 0
}

// SearchPrev returns the index in ranges of the last match starting before
// pos, wrapping to the last match. Returns -1 if no ranges.
func SearchPrev(ranges []Range, pos int) int {
	if len(ranges) == 0 {
		return -1
	}
	for i := len(ranges) - 1; i >= 0; i-- {
		if ranges[i].Start < pos {
			return i
		}
	}
	return len(ranges) - 1
}

// Nth returns the position of the n-th (1-based) occurrence of c, 0 for n
// == 0 and buffer.NotFound when there are fewer than n.
func Nth(r buffer.Reader[rune], c rune, n int) int {
	return r.Find(c, n)
}
