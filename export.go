package conftree

// Export produces a plain nested structure mirroring the tree: a []any when
// the keys are exactly the indexes 0..n-1 in order, a map[string]any
// otherwise (index keys among mixed keys render as their decimal form).
// Nested trees export recursively; no *Tree values appear in the result.
// An empty tree exports as an empty map, since configuration roots are
// mapping-shaped. Pure and non-mutating.
func (t *Tree) Export() any {
	if t.isList() {
		out := make([]any, len(t.entries))
		for i, e := range t.entries {
			out[i] = e.value.Export()
		}
		return out
	}
	out := make(map[string]any, len(t.entries))
	for _, e := range t.entries {
		out[e.key.String()] = e.value.Export()
	}
	return out
}

func (t *Tree) isList() bool {
	if len(t.entries) == 0 {
		return false
	}
	for i, e := range t.entries {
		if !e.key.IsIndex() || e.key.index != i {
			return false
		}
	}
	return true
}

// Clone returns a deep copy: nested trees are recursively cloned, never
// shared, and scalars are copied by value. The copy's size cache is
// recomputed rather than inherited, and its cursor starts fresh.
func (t *Tree) Clone() *Tree {
	c := newTree(len(t.entries))
	c.nextIndex = t.nextIndex
	c.entries = make([]entry, len(t.entries))
	for i, e := range t.entries {
		v := e.value
		if v.IsNode() {
			v = Node(v.node.Clone())
		}
		c.entries[i] = entry{e.key, v}
		c.byKey[e.key] = i
	}
	c.cachedSize = len(c.entries)
	return c
}

// String renders the fixed literal "Array", a stand-in signaling that the
// value is a composite rather than a scalar. It is deliberately not a
// serialization; use Export or Dump for those.
func (t *Tree) String() string {
	return "Array"
}
