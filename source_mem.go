package conftree

// MemSource is an in-memory Source backed by a plain map, useful for
// embedding defaults and in tests.
type MemSource map[string]any

func (s MemSource) Config(name string) any {
	return s[name]
}
