package conftree

import (
	"errors"
	"testing"
)

func TestEncoding_JSON_round_trip(t *testing.T) {
	tree := New(map[string]any{
		"name": "demo",
		"nested": map[string]any{
			"list": []any{"a", "b"},
		},
	})
	data := JSON.Encode(tree)
	back := must(JSON.Decode(data))
	eq(t, back.Get(Name("name")).Scalar().(string), "demo")
	list := back.Get(Name("nested")).Node().Get(Name("list"))
	if !list.IsNode() {
		t.Fatalf("decoded list is not a tree")
	}
	eq(t, list.Node().Get(Index(1)).Scalar().(string), "b")
}

func TestEncoding_MsgPack_round_trip(t *testing.T) {
	tree := New(map[string]any{"a": "x", "sub": map[string]any{"n": "y"}})
	data := MsgPack.Encode(tree)
	back := must(MsgPack.Decode(data))
	eq(t, back.Get(Name("a")).Scalar().(string), "x")
	eq(t, back.Get(Name("sub")).Node().Get(Name("n")).Scalar().(string), "y")
}

func TestEncoding_Decode_bad_data(t *testing.T) {
	_, err := JSON.Decode([]byte("{not json"))
	if err == nil {
		t.Fatalf("expected an error")
	}
	var de *DataError
	if !errors.As(err, &de) {
		t.Fatalf("error is %T, wanted *DataError", err)
	}
	if de.Error() == "" {
		t.Fatalf("empty error message")
	}
}

func TestEncoding_Decode_scalar_yields_empty_tree(t *testing.T) {
	back := must(JSON.Decode([]byte(`"just a string"`)))
	eq(t, back.Count(), 0)
}
