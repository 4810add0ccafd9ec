package conftree

// Source supplies raw configuration data to Tree.Load. Config returns the
// value bound to the given name: a composite (map or slice) on success, or
// any non-composite value (commonly nil) when nothing usable exists under
// that name. Sources never report errors through this interface; a failed
// read degrades to a non-composite answer, which Load absorbs silently.
type Source interface {
	Config(name string) any
}
