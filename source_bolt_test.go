package conftree

import (
	"path/filepath"
	"testing"

	"go.etcd.io/bbolt"
)

func TestBoltSource_round_trip(t *testing.T) {
	src := openTestBoltSource(t)
	orig := New(map[string]any{
		"name": "demo",
		"db":   map[string]any{"host": "localhost"},
	})
	ensure(src.Put("app", orig))

	tree := New(nil)
	tree.Load(src, "app")
	eq(t, tree.Count(), 2)
	eq(t, tree.Get(Name("name")).Scalar().(string), "demo")
	eq(t, tree.Get(Name("db")).Node().Get(Name("host")).Scalar().(string), "localhost")
}

func TestBoltSource_missing_name(t *testing.T) {
	src := openTestBoltSource(t)
	tree := New(map[string]any{"keep": 1})
	tree.Load(src, "absent")
	eq(t, tree.Count(), 1)
}

func TestBoltSource_delete(t *testing.T) {
	src := openTestBoltSource(t)
	ensure(src.Put("app", New(map[string]any{"a": 1})))
	ensure(src.Delete("app"))
	if src.Config("app") != nil {
		t.Fatalf("deleted document still readable")
	}

	// deleting from a source that never stored anything is fine too
	ensure(src.Delete("never-stored"))
}

func openTestBoltSource(t testing.TB) *BoltSource {
	bdb := must(bbolt.Open(filepath.Join(t.TempDir(), "conf.db"), 0o644, nil))
	t.Cleanup(func() { bdb.Close() })
	return NewBoltSource(bdb, "")
}
