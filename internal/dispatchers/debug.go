package dispatchers

import (
	"fmt"
	"io"
	"strings"
)

// DebugName describes n for diagnostics. It has no effect on matching.
func (n *MatchNode) DebugName() string {
	var label string
	switch {
	case n.terminal:
		label = "*term*"
	case n.IsRoot():
		label = "*root*"
	default:
		label = n.converter.Label()
	}
	if n.varArgs {
		label += "..."
	}

	return fmt.Sprintf("%s varargs: %t arg: %d input: %d var: %d",
		label, n.varArgs, n.argIndex, n.inputIndex, n.variant)
}

func (n *MatchNode) String() string {
	parts := make([]string, len(n.children))
	for i, child := range n.children {
		parts[i] = child.String()
	}
	return fmt.Sprintf("%s:[%s]", n.DebugName(), strings.Join(parts, ", "))
}

// Dump writes an indented rendering of n and its subtree to w, two
// spaces per level starting at depth.
func (n *MatchNode) Dump(w io.Writer, depth int) error {
	if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), n.DebugName()); err != nil {
		return err
	}
	for _, child := range n.children {
		if err := child.Dump(w, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Dump writes an indented rendering of the whole tree to w.
func (t *Tree) Dump(w io.Writer) error {
	return t.root.Dump(w, 0)
}

// String renders the tree on a single line.
func (t *Tree) String() string {
	return t.root.String()
}
