package history

// KillRing stores a small history of killed text entries.
type KillRing struct {
	entries [][]rune
	pos     int
}

const killRingMax = 10

// Push adds killed text to the front of the ring.
func (k *KillRing) Push(text []rune) {
	if len(text) == 0 {
		return
	}
	if k.entries == nil {
		k.entries = make([][]rune, 0, killRingMax)
	}
	if len(k.entries) < killRingMax {
		k.entries = append(k.entries, nil)
	}
	copy(k.entries[1:], k.entries[:len(k.entries)-1])
	k.entries[0] = append([]rune(nil), text...)
	k.pos = 0
}

// Append extends the newest entry, so consecutive kills yank back as one.
func (k *KillRing) Append(text []rune) {
	if len(k.entries) == 0 {
		k.Push(text)
		return
	}
	k.entries[0] = append(k.entries[0], text...)
	k.pos = 0
}

// Rotate moves to the next entry in the ring.
func (k *KillRing) Rotate() bool {
	if len(k.entries) <= 1 {
		return false
	}
	k.pos = (k.pos + 1) % len(k.entries)
	return true
}

// Current returns a copy of the current killed text.
func (k *KillRing) Current() []rune {
	if len(k.entries) == 0 {
		return nil
	}
	return append([]rune(nil), k.entries[k.pos]...)
}

// Len returns the number of entries in the ring.
func (k *KillRing) Len() int { return len(k.entries) }

// HasData reports whether the ring contains text.
func (k *KillRing) HasData() bool { return len(k.entries) > 0 }
