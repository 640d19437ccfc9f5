package dispatchers

import (
	"fmt"

	"github.com/footprint-tools/argtree/internal/convert"
)

// Step describes one parameter of a variant's argument chain.
type Step struct {
	ArgIndex  int
	Converter *convert.Converter
	VarArgs   bool
}

// Tree stores the argument chains of all registered variants, sharing
// common prefixes. A tree is built with Insert and then only read; Match
// is safe for concurrent use once all inserts have returned.
type Tree struct {
	root *MatchNode
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{root: NewRoot()}
}

// Insert adds the argument chain for variant. Steps matching an existing
// branch (same argument index, same converter, same var-args flag) reuse
// it. The chain is validated before anything is attached.
func (t *Tree) Insert(variant int, steps []Step) error {
	if variant < 0 {
		return &StructuralError{Op: "insert", Reason: fmt.Sprintf("invalid variant id %d", variant)}
	}
	for i, s := range steps {
		if s.Converter == nil {
			return &StructuralError{Op: "insert", Reason: fmt.Sprintf("variant %d step %d has no converter", variant, i)}
		}
		if s.VarArgs && i != len(steps)-1 {
			return &StructuralError{Op: "insert", Reason: fmt.Sprintf("variant %d step %d: only the last parameter can be var-args", variant, i)}
		}
	}

	current := t.root
	for i, s := range steps {
		next := findStep(current, s)
		if next == nil {
			next = NewTyped(variant, s.ArgIndex, i, s.Converter, s.VarArgs)
			if err := current.AddChild(next); err != nil {
				return err
			}
		}
		current = next
	}

	for _, child := range current.children {
		if child.terminal && child.variant == variant {
			return nil
		}
	}
	return current.AddChild(NewTerminal(variant, -1, len(steps)))
}

func findStep(parent *MatchNode, s Step) *MatchNode {
	for _, child := range parent.children {
		if child.sameStep(s.ArgIndex, s.Converter, s.VarArgs) {
			return child
		}
	}
	return nil
}

// Variants returns the ids of all variants with a terminal in the tree,
// in match order.
func (t *Tree) Variants() []int {
	return t.root.completes()
}

// Shadowed reports the variants that share their whole chain with a
// variant inserted earlier. They can never be matched.
func (t *Tree) Shadowed() []int {
	var ids []int
	var walk func(n *MatchNode)
	walk = func(n *MatchNode) {
		terminals := 0
		for _, child := range n.children {
			if child.terminal {
				if terminals > 0 {
					ids = append(ids, child.variant)
				}
				terminals++
				continue
			}
			walk(child)
		}
	}
	walk(t.root)
	return ids
}
