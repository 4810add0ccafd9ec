package conftree

// A Tree is simultaneously a keyed mapping, a sequential cursor over its
// direct entries, and a counted collection. The three capabilities are
// independent contracts; use the narrow interface when a caller only needs
// one of them.
type (
	Mapping interface {
		Set(key Key, value any)
		Get(key Key) Value
		Has(key Key) bool
		Delete(key Key)
	}

	Cursor interface {
		Reset()
		CurrentKey() Key
		CurrentValue() Value
		Advance()
		Valid() bool
	}

	Counter interface {
		Count() int
	}
)

var (
	_ Mapping = (*Tree)(nil)
	_ Cursor  = (*Tree)(nil)
	_ Counter = (*Tree)(nil)
)
