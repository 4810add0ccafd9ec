package conftree

// Merge deep-merges other into t. Entries of other override or extend the
// receiver's: when both sides hold a subtree under the same key the subtrees
// merge recursively, otherwise other's value wins. The receiver keeps its
// insertion order and keys new to it append at the end. Subtrees taken from
// other are cloned, so the two trees stay independent afterwards.
func (t *Tree) Merge(other *Tree) {
	if other == nil {
		return
	}
	for _, e := range other.entries {
		if i, ok := t.byKey[e.key]; ok {
			mine := t.entries[i].value
			if mine.IsNode() && e.value.IsNode() {
				mine.node.Merge(e.value.node)
				continue
			}
			t.entries[i].value = cloneValue(e.value)
			t.sizeDirty = true
		} else {
			t.setValue(e.key, cloneValue(e.value))
		}
	}
}

func cloneValue(v Value) Value {
	if v.IsNode() {
		return Node(v.node.Clone())
	}
	return v
}
