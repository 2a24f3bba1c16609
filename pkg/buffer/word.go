package buffer

import "unicode"

// IsWordRune reports whether r is considered part of a word.
// Words consist of letters, digits, or underscore characters.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isWordAt(r Reader[rune], i int) bool {
	c, err := r.At(i)
	return err == nil && IsWordRune(c)
}

// WordStart returns the index of the beginning of the word that ends at or before pos.
// It behaves similar to Vim's 'b' motion.
func WordStart(r Reader[rune], pos int) int {
	if r == nil || r.Len() == 0 {
		return 0
	}
	pos = min(pos, r.Len())
	if pos > 0 {
		pos--
	}
	for pos > 0 && !isWordAt(r, pos) {
		pos--
	}
	for pos > 0 && isWordAt(r, pos-1) {
		pos--
	}
	return pos
}

// WordEnd returns the index of the last rune of the word that begins at or after pos.
// It behaves similar to Vim's 'e' motion.
func WordEnd(r Reader[rune], pos int) int {
	if r == nil || r.Len() == 0 {
		return 0
	}
	n := r.Len()
	if pos >= n {
		return n - 1
	}
	if isWordAt(r, pos) && !isWordAt(r, pos+1) {
		pos++
	}
	for pos < n && !isWordAt(r, pos) {
		pos++
	}
	for pos < n && isWordAt(r, pos) {
		pos++
	}
	if pos > 0 {
		pos--
	}
	return pos
}

// NextWordStart returns the index of the start of the next word after pos.
// It behaves similar to Vim's 'w' motion.
func NextWordStart(r Reader[rune], pos int) int {
	if r == nil || r.Len() == 0 {
		return 0
	}
	n := r.Len()
	if pos >= n {
		return n
	}
	for pos < n && isWordAt(r, pos) {
		pos++
	}
	for pos < n && !isWordAt(r, pos) {
		pos++
	}
	return pos
}
