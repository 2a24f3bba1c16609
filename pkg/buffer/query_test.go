package buffer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const crlfText = "lorem ipsum\r\ndolor sit amet\r\nfoo bar baz"

func TestLine_ByOffset(t *testing.T) {
	tests := []struct {
		name string
		pos  int
		want string
	}{
		{"first line start", 0, "lorem ipsum\r\n"},
		{"middle line", 21, "dolor sit amet\r\n"},
		{"on delimiter", 12, "lorem ipsum\r\n"},
		{"after delimiter", 13, "dolor sit amet\r\n"},
		{"last line", 35, "foo bar baz"},
		{"end of content", len(crlfText), "foo bar baz"},
		{"clamped high", 1000, "foo bar baz"},
		{"clamped low", -5, "lorem ipsum\r\n"},
	}
	// The answer must not depend on where the gap sits.
	for _, gapAt := range []int{0, 5, 13, 20, 29, len(crlfText)} {
		g := FromString(crlfText)
		if err := g.Seek(gapAt); err != nil {
			t.Fatalf("seek %d: %v", gapAt, err)
		}
		for _, tt := range tests {
			if got := string(g.Line(tt.pos, '\n')); got != tt.want {
				t.Fatalf("%s (gap at %d): line(%d) = %q, want %q", tt.name, gapAt, tt.pos, got, tt.want)
			}
		}
	}
}

func TestLine_NoDelimiter(t *testing.T) {
	g := FromString("single line")
	_ = g.Seek(4)
	for _, pos := range []int{0, 4, 11} {
		if got := string(g.Line(pos, '\n')); got != "single line" {
			t.Fatalf("line(%d) = %q", pos, got)
		}
	}
}

func TestLine_GapHoldsStaleDelimiter(t *testing.T) {
	g := FromString("ab\ncd")
	_ = g.Seek(3)
	// erasing the newline leaves it in the gap; it must not be seen
	if _, err := g.Erase(1); err != nil {
		t.Fatalf("erase: %v", err)
	}
	g.buf[g.gapStart] = '\n'
	if got := string(g.Line(1, '\n')); got != "abcd" {
		t.Fatalf("line saw the gap: %q", got)
	}
	if n := g.LineCount('\n'); n != 1 {
		t.Fatalf("expected 1 line, got %d", n)
	}
}

func TestLineCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"a", 1},
		{"\n", 1},
		{"a\n", 1},
		{"a\nb", 2},
		{"a\n\n", 2},
		{crlfText, 3},
	}
	for _, tt := range tests {
		g := FromString(tt.text)
		_ = g.Seek(g.Len() / 2)
		if got := g.LineCount('\n'); got != tt.want {
			t.Fatalf("LineCount(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestFind(t *testing.T) {
	g := FromString("a.b.c.d")
	_ = g.Seek(3)
	if got := g.Find('.', 0); got != 0 {
		t.Fatalf("occurrence 0: expected 0, got %d", got)
	}
	if got := g.Find('q', 0); got != 0 {
		t.Fatalf("occurrence 0 of missing char: expected 0, got %d", got)
	}
	if got := g.Find('q', 1); got != NotFound {
		t.Fatalf("missing char: expected NotFound, got %d", got)
	}
	for n, want := range map[int]int{1: 1, 2: 3, 3: 5, 4: NotFound} {
		if got := g.Find('.', n); got != want {
			t.Fatalf("find('.', %d) = %d, want %d", n, got, want)
		}
	}
}

func TestLineAt(t *testing.T) {
	g := FromString("one\ntwo\nthree")
	_ = g.Seek(6)
	for n, want := range []string{"one\n", "two\n", "three", "three"} {
		start, end := g.LineAt(n, '\n')
		if got := string(g.Slice(start, end)); got != want {
			t.Fatalf("line %d: expected %q, got %q", n, want, got)
		}
	}
}

func TestSlice_AcrossGap(t *testing.T) {
	g := FromString("0123456789")
	_ = g.Seek(4)
	tests := []struct {
		start, end int
		want       string
	}{
		{0, 10, "0123456789"},
		{2, 4, "23"},
		{4, 7, "456"},
		{2, 7, "23456"},
		{-3, 2, "01"},
		{8, 20, "89"},
		{5, 5, ""},
		{7, 3, ""},
	}
	for _, tt := range tests {
		if got := string(g.Slice(tt.start, tt.end)); got != tt.want {
			t.Fatalf("slice(%d,%d) = %q, want %q", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestToSlice(t *testing.T) {
	g := FromSlice([]int{1, 2, 3, 4})
	_ = g.Seek(1)
	g.PushBack(9)
	if diff := cmp.Diff([]int{1, 9, 2, 3, 4}, g.ToSlice()); diff != "" {
		t.Fatalf("content mismatch (-want +got):\n%s", diff)
	}
}
