package tree

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/redact"
)

// Dump writes a nested Internal[k0, k1, ...] / Leaf[k0, k1, ...] tree
// description to w, one node per line, indented by depth. Purely
// diagnostic, not a persistence format.
func (t *Tree[K]) Dump(w io.Writer) error {
	return dumpNode(w, t.root, 0)
}

func dumpNode[K any](w io.Writer, n *node[K], depth int) error {
	kind := "Internal"
	if n.leaf {
		kind = "Leaf"
	}
	line := dumpLine[K]{kind: kind, keys: n.keys}
	if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), line.String()); err != nil {
		return err
	}
	if n.leaf {
		return nil
	}
	for _, child := range n.children {
		if err := dumpNode(w, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// dumpLine renders one node's diagnostic line through redact.SafeFormatter.
type dumpLine[K any] struct {
	kind string
	keys []K
}

// SafeFormat implements redact.SafeFormatter.
func (d dumpLine[K]) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("%s[", redact.SafeString(d.kind))
	for i, k := range d.keys {
		if i > 0 {
			w.SafeString(", ")
		}
		w.Printf("%v", k)
	}
	w.SafeString("]")
}

// String implements fmt.Stringer.
func (d dumpLine[K]) String() string {
	return redact.StringWithoutMarkers(d)
}
