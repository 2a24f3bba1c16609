package buffer

import "testing"

func TestWordEndAtWordBoundary(t *testing.T) {
	g := FromString("one two")
	if got := WordEnd(g, 2); got != 6 {
		t.Fatalf("expected 6, got %d", got)
	}
}

func TestWordEndInsideWord(t *testing.T) {
	g := FromString("one")
	if got := WordEnd(g, 1); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}

func TestWordMotions_GapInsideWord(t *testing.T) {
	g := FromString("alpha beta_2 gamma")
	_ = g.Seek(8)
	if got := WordStart(g, 9); got != 6 {
		t.Fatalf("WordStart: expected 6, got %d", got)
	}
	if got := NextWordStart(g, 7); got != 13 {
		t.Fatalf("NextWordStart: expected 13, got %d", got)
	}
	if got := NextWordStart(g, 18); got != 18 {
		t.Fatalf("NextWordStart at end: expected 18, got %d", got)
	}
	if got := WordStart(g, 0); got != 0 {
		t.Fatalf("WordStart at 0: expected 0, got %d", got)
	}
}
