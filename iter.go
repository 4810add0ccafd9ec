package conftree

import "iter"

// The stateful cursor below is the iteration protocol over a tree's direct
// entries. There is exactly one cursor per instance: nested or concurrent
// traversal of the same tree through these methods corrupts its state. That
// is an accepted limitation of the single-cursor design; use Items for
// traversals that must nest.

// Reset moves the cursor to the first entry (or to the exhausted state when
// the tree is empty) and zeroes the logical position counter.
func (t *Tree) Reset() {
	t.cursor = 0
	t.pos = 0
}

// Advance moves the cursor to the next entry. The logical position counter
// increments unconditionally, even past the end; it tracks how many
// advances have occurred since Reset, not a clamped index.
func (t *Tree) Advance() {
	t.cursor++
	t.pos++
}

// Valid reports whether the cursor denotes a real entry. An entry holding a
// zero or empty scalar is still a real entry: Value carries an explicit kind
// tag, so validity never has to be inferred from the value itself.
func (t *Tree) Valid() bool {
	return t.cursor >= 0 && t.cursor < len(t.entries)
}

// CurrentKey returns the key at the cursor, or the zero Key once the cursor
// is exhausted.
func (t *Tree) CurrentKey() Key {
	if !t.Valid() {
		return Key{}
	}
	return t.entries[t.cursor].key
}

// CurrentValue returns the value at the cursor, or the missing Value once
// the cursor is exhausted.
func (t *Tree) CurrentValue() Value {
	if !t.Valid() {
		return Value{}
	}
	return t.entries[t.cursor].value
}

// Position returns the number of advances since the last Reset.
func (t *Tree) Position() int {
	return t.pos
}

// Keys returns the keys of the direct entries in insertion order.
func (t *Tree) Keys() []Key {
	keys := make([]Key, len(t.entries))
	for i, e := range t.entries {
		keys[i] = e.key
	}
	return keys
}

// Items iterates over the direct entries in insertion order. Unlike the
// cursor methods, the returned sequence carries its own position and can be
// nested freely.
func (t *Tree) Items() iter.Seq2[Key, Value] {
	return func(yield func(Key, Value) bool) {
		for _, e := range t.entries {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}
