package conftree

import (
	"fmt"
	"log/slog"
	"strings"
)

const debugLogLoads = false

// Dump renders the tree as a compact single-line {key: value, ...} string
// for debugging. Nested trees render recursively; scalars render via %v.
func (t *Tree) Dump() string {
	var buf strings.Builder
	dumpTree(&buf, t)
	return buf.String()
}

func dumpTree(buf *strings.Builder, t *Tree) {
	if t == nil {
		buf.WriteString("<missing>")
		return
	}
	buf.WriteByte('{')
	for i, e := range t.entries {
		if i > 0 {
			buf.WriteByte(',')
			buf.WriteByte(' ')
		}
		buf.WriteString(e.key.String())
		buf.WriteByte(':')
		buf.WriteByte(' ')
		if e.value.IsNode() {
			dumpTree(buf, e.value.node)
		} else {
			fmt.Fprintf(buf, "%v", e.value.scalar)
		}
	}
	buf.WriteByte('}')
}

func logLoadFailure(name string, raw any) {
	slog.Debug("conftree: source supplied no usable config", "name", name, "got", fmt.Sprintf("%T", raw))
}
