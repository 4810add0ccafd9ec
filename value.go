package conftree

import "fmt"

type Kind int

const (
	KindMissing Kind = iota
	KindScalar
	KindNode
)

// Value is a tagged union of the two things a Tree holds under a key:
// a scalar or a nested *Tree. The zero Value is the missing sentinel
// returned by Get and CurrentValue, so lookups never fail and presence
// never has to be inferred from the truthiness of a stored value.
type Value struct {
	node   *Tree
	scalar any
	kind   Kind
}

func Scalar(v any) Value {
	return Value{scalar: v, kind: KindScalar}
}

func Node(t *Tree) Value {
	if t == nil {
		return Value{}
	}
	return Value{node: t, kind: KindNode}
}

func (v Value) Kind() Kind      { return v.kind }
func (v Value) IsMissing() bool { return v.kind == KindMissing }
func (v Value) IsScalar() bool  { return v.kind == KindScalar }
func (v Value) IsNode() bool    { return v.kind == KindNode }

// Scalar returns the scalar payload, or nil for nodes and missing values.
func (v Value) Scalar() any {
	return v.scalar
}

// Node returns the nested tree, or nil for scalars and missing values.
func (v Value) Node() *Tree {
	return v.node
}

// Export returns the plain form of the value: the scalar itself, or the
// recursively exported tree. A missing value exports as nil.
func (v Value) Export() any {
	if v.kind == KindNode {
		return v.node.Export()
	}
	return v.scalar
}

func (v Value) String() string {
	switch v.kind {
	case KindNode:
		return v.node.String()
	case KindScalar:
		return fmt.Sprint(v.scalar)
	default:
		return "<missing>"
	}
}
