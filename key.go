package conftree

import (
	"fmt"
	"strconv"
)

type keyKind byte

const (
	keyKindNone keyKind = iota
	keyKindName
	keyKindIndex
)

// Key identifies an entry within a Tree: either a name or a non-negative
// integer index. Keys are comparable values; the zero Key is the absent-key
// sentinel returned by CurrentKey when the cursor is exhausted.
type Key struct {
	name  string
	index int
	kind  keyKind
}

func Name(name string) Key {
	return Key{name: name, kind: keyKindName}
}

func Index(i int) Key {
	if i < 0 {
		panic(fmt.Sprintf("conftree: negative index %d", i))
	}
	return Key{index: i, kind: keyKindIndex}
}

func (k Key) IsZero() bool  { return k.kind == keyKindNone }
func (k Key) IsName() bool  { return k.kind == keyKindName }
func (k Key) IsIndex() bool { return k.kind == keyKindIndex }

// Name returns the string form of a name key, or "" for index and zero keys.
func (k Key) Name() string {
	return k.name
}

// Index returns the integer form of an index key, or -1 otherwise.
func (k Key) Index() int {
	if k.kind != keyKindIndex {
		return -1
	}
	return k.index
}

func (k Key) String() string {
	switch k.kind {
	case keyKindName:
		return k.name
	case keyKindIndex:
		return strconv.Itoa(k.index)
	default:
		return "<none>"
	}
}

// keyLess orders index keys numerically before name keys ordered
// lexicographically. Used to make conversion of unordered Go maps
// deterministic.
func keyLess(a, b Key) bool {
	if a.kind != b.kind {
		return a.kind == keyKindIndex
	}
	if a.kind == keyKindIndex {
		return a.index < b.index
	}
	return a.name < b.name
}
