// Package buffer implements the gap buffer that stores the text of an open
// file.
//
// A GapBuffer keeps its content in one backing slice with an unused region,
// the gap, at the edit point. Typing and deleting at the edit point cost
// amortized O(1); moving the edit point costs one copy per element crossed.
//
//	g := buffer.FromString("hello world")
//	g.Retreat()          // edit point before 'd'
//	g.PushBack('!')      // "hello worl!d"
//	line := g.Line(0, '\n')
//
// Cursors and iterators address logical positions and are invalidated by
// any mutation; a stale cursor panics rather than reading shifted content.
package buffer
