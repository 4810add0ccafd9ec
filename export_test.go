package conftree

import "testing"

func TestExport_round_trip_mapping(t *testing.T) {
	m := map[string]any{
		"name": "demo",
		"db": map[string]any{
			"host": "localhost",
			"port": 5432,
		},
		"tags": []any{"a", "b", map[string]any{"deep": true}},
	}
	deepEqual(t, New(m).Export(), any(m))
}

func TestExport_round_trip_sequence(t *testing.T) {
	s := []any{1, "two", []any{3, 4}}
	deepEqual(t, New(s).Export(), any(s))
}

func TestExport_mixed_keys_become_mapping(t *testing.T) {
	tree := New(nil)
	tree.Set(Name("a"), 1)
	tree.Append("b")
	deepEqual(t, tree.Export(), any(map[string]any{"a": 1, "0": "b"}))
}

func TestExport_empty_tree(t *testing.T) {
	deepEqual(t, New(nil).Export(), any(map[string]any{}))
}

func TestExport_does_not_mutate(t *testing.T) {
	tree := New(map[string]any{"a": map[string]any{"b": 1}})
	tree.Set(Name("c"), 2)
	_ = tree.Export()
	eq(t, tree.sizeDirty, true) // Export neither reads nor clears the cache
	eq(t, tree.Count(), 2)
}

func TestClone_independence(t *testing.T) {
	a := New(map[string]any{
		"db": map[string]any{"host": "localhost", "port": 5432},
	})
	b := a.Clone()

	a.Get(Name("db")).Node().Delete(Name("port"))
	eq(t, b.Get(Name("db")).Node().Has(Name("port")), true)

	b.Get(Name("db")).Node().Set(Name("host"), "elsewhere")
	eq(t, a.Get(Name("db")).Node().Get(Name("host")).Scalar().(string), "localhost")
}

func TestClone_recomputes_size_cache(t *testing.T) {
	a := New(nil)
	a.Set(Name("x"), 1)
	a.Set(Name("y"), 2)
	// a's cache is dirty at clone time
	eq(t, a.sizeDirty, true)
	b := a.Clone()
	eq(t, b.sizeDirty, false)
	eq(t, b.cachedSize, 2)
	eq(t, b.Count(), 2)
}

func TestClone_append_counter_carries_over(t *testing.T) {
	a := New(nil)
	a.Append("v0")
	a.Append("v1")
	b := a.Clone()
	eq(t, b.Append("v2"), Index(2))
}

func TestString_is_the_Array_literal(t *testing.T) {
	eq(t, New(nil).String(), "Array")
	eq(t, New(map[string]any{"a": 1}).String(), "Array")
	eq(t, Node(New(nil)).String(), "Array")
}

func TestDump(t *testing.T) {
	tree := New(nil)
	tree.Set(Name("a"), 1)
	tree.Set(Name("b"), map[string]any{"x": "y"})
	tree.Append(true)
	eq(t, tree.Dump(), "{a: 1, b: {x: y}, 0: true}")
}
