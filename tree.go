package conftree

import (
	"fmt"
	"reflect"
	"sort"
)

type entry struct {
	key   Key
	value Value
}

// Tree is the recursive, ordered configuration container. Direct entries are
// kept in insertion order; a key-to-position map backs O(1) keyed access.
// The cursor fields belong to the iteration protocol and are never shared
// between instances, clones included.
type Tree struct {
	entries    []entry
	byKey      map[Key]int
	cursor     int
	pos        int
	cachedSize int
	sizeDirty  bool
	nextIndex  int
}

// New builds a tree from bootstrap data. A nil or non-composite bootstrap
// yields an empty tree; a composite is converted recursively, so every
// nested map or slice inside it becomes a nested *Tree. The entry count is
// computed once here, making Count on a fresh tree side-effect free.
func New(bootstrap any) *Tree {
	t := newTree(0)
	t.replace(bootstrap)
	t.Reset()
	t.Count()
	return t
}

func newTree(capacity int) *Tree {
	return &Tree{byKey: make(map[Key]int, capacity)}
}

// replace converts src and adopts the result as the tree's entire contents.
// Returns false, leaving the entries untouched, when src is not a composite.
func (t *Tree) replace(src any) bool {
	v := convert(src)
	if !v.IsNode() {
		return false
	}
	n := v.Node()
	if n == t {
		t.sizeDirty = true
		return true
	}
	switch src.(type) {
	case *Tree, Value:
		// convert passed an existing tree through; adopt a copy rather than
		// aliasing its storage
		n = n.Clone()
	}
	t.entries, t.byKey, t.nextIndex = n.entries, n.byKey, n.nextIndex
	t.sizeDirty = true
	return true
}

// Load asks src for the configuration bound to name and bulk-replaces the
// tree's contents with the converted result. A non-composite answer
// (including nil) means the source has nothing usable under that name; the
// call then returns without touching the entries.
func (t *Tree) Load(src Source, name string) {
	raw := src.Config(name)
	if !isComposite(raw) {
		if debugLogLoads {
			logLoadFailure(name, raw)
		}
		return
	}
	t.replace(raw)
}

// Set stores value under key, converting any composite into a nested *Tree.
// Overwriting an existing key keeps its position; a new key appends at the
// end. The zero Key appends under the next auto-assigned index.
func (t *Tree) Set(key Key, value any) {
	if key.IsZero() {
		t.Append(value)
		return
	}
	t.setValue(key, convert(value))
}

// Append stores value under the next auto-assigned integer index and
// returns the key it was stored under.
func (t *Tree) Append(value any) Key {
	key := Index(t.nextIndex)
	t.setValue(key, convert(value))
	return key
}

func (t *Tree) setValue(key Key, v Value) {
	if i, ok := t.byKey[key]; ok {
		t.entries[i].value = v
	} else {
		if t.byKey == nil {
			t.byKey = make(map[Key]int)
		}
		t.byKey[key] = len(t.entries)
		t.entries = append(t.entries, entry{key, v})
	}
	if key.kind == keyKindIndex && key.index >= t.nextIndex {
		t.nextIndex = key.index + 1
	}
	t.sizeDirty = true
}

// Get returns the value stored under key, or the missing Value sentinel.
func (t *Tree) Get(key Key) Value {
	if i, ok := t.byKey[key]; ok {
		return t.entries[i].value
	}
	return Value{}
}

func (t *Tree) Has(key Key) bool {
	_, ok := t.byKey[key]
	return ok
}

// Delete removes the entry under key; absent keys are a no-op.
func (t *Tree) Delete(key Key) {
	i, ok := t.byKey[key]
	if !ok {
		return
	}
	copy(t.entries[i:], t.entries[i+1:])
	t.entries = t.entries[:len(t.entries)-1]
	delete(t.byKey, key)
	for j := i; j < len(t.entries); j++ {
		t.byKey[t.entries[j].key] = j
	}
	t.sizeDirty = true
}

// Count returns the number of direct entries. The count is cached and only
// recomputed after a mutation has marked it dirty.
func (t *Tree) Count() int {
	if t.sizeDirty {
		t.cachedSize = len(t.entries)
		t.sizeDirty = false
	}
	return t.cachedSize
}

// convert is the single normalization function shared by every write path:
// construction, Load, Set and Append all produce identical trees for the
// same input. Scalars pass through unchanged; composites become trees with
// every nested composite converted depth-first. A *Tree or Value passes
// through as-is.
func convert(v any) Value {
	switch v := v.(type) {
	case nil:
		return Scalar(nil)
	case Value:
		if v.IsMissing() {
			return Scalar(nil)
		}
		return v
	case *Tree:
		if v == nil {
			return Scalar(nil)
		}
		return Node(v)
	case map[string]any:
		return Node(treeFromStringMap(v))
	case []any:
		return Node(treeFromSlice(v))
	case []byte:
		return Scalar(v)
	case string, bool, int, int64, uint64, float64:
		return Scalar(v)
	default:
		return convertReflect(v)
	}
}

func treeFromStringMap(m map[string]any) *Tree {
	t := newTree(len(m))
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		t.setValue(Name(name), convert(m[name]))
	}
	t.Count()
	return t
}

func treeFromSlice(s []any) *Tree {
	t := newTree(len(s))
	for i, el := range s {
		t.setValue(Index(i), convert(el))
	}
	t.Count()
	return t
}

// convertReflect handles the non-canonical composite kinds (typed maps,
// slices and arrays). Map keys are sorted so that conversion of unordered
// Go maps is deterministic, the same way the msgpack codec sorts map keys.
func convertReflect(v any) Value {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		t := newTree(rv.Len())
		type kv struct {
			key Key
			val Value
		}
		pairs := make([]kv, 0, rv.Len())
		mr := rv.MapRange()
		for mr.Next() {
			pairs = append(pairs, kv{reflectKey(mr.Key()), convert(mr.Value().Interface())})
		}
		sort.Slice(pairs, func(i, j int) bool { return keyLess(pairs[i].key, pairs[j].key) })
		for _, p := range pairs {
			t.setValue(p.key, p.val)
		}
		t.Count()
		return Node(t)
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Scalar(v)
		}
		t := newTree(rv.Len())
		for i, n := 0, rv.Len(); i < n; i++ {
			t.setValue(Index(i), convert(rv.Index(i).Interface()))
		}
		t.Count()
		return Node(t)
	default:
		return Scalar(v)
	}
}

func reflectKey(rk reflect.Value) Key {
	if rk.CanInt() && rk.Int() >= 0 {
		return Index(int(rk.Int()))
	}
	if rk.CanUint() {
		return Index(int(rk.Uint()))
	}
	if rk.Kind() == reflect.String {
		return Name(rk.String())
	}
	return Name(fmt.Sprint(rk.Interface()))
}

// isComposite reports whether v would convert into a tree rather than pass
// through as a scalar.
func isComposite(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case *Tree:
		return v != nil
	case []byte:
		return false
	case map[string]any, []any:
		return true
	case Value:
		return v.IsNode()
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Map:
		return true
	case reflect.Slice, reflect.Array:
		return rv.Type().Elem().Kind() != reflect.Uint8
	}
	return false
}
