package dispatchers

import (
	"slices"
	"weak"

	"github.com/footprint-tools/argtree/internal/convert"
)

// Specificity scores. Siblings are kept in ascending score order so that
// typed continuations are tried before var-args, and var-args before
// accepting the current position as a completed variant.
const (
	scoreTyped    = 0
	scoreVarArgs  = 1
	scoreTerminal = 2
)

// MatchNode is one step in the dispatch tree.
type MatchNode struct {
	variant    int
	argIndex   int
	inputIndex int
	converter  *convert.Converter
	terminal   bool
	varArgs    bool

	children []*MatchNode

	// parent is only used to compute Depth. The parent owns the child,
	// never the other way around.
	parent    weak.Pointer[MatchNode]
	hasParent bool
}

// AddChild attaches node below n, keeping children ordered by specificity.
// Among equal scores insertion order is preserved.
func (n *MatchNode) AddChild(node *MatchNode) error {
	if node == nil {
		return &StructuralError{Op: "add child", Reason: "nil node"}
	}
	if n.terminal {
		return &StructuralError{Op: "add child", Node: n.DebugName(), Reason: "terminal nodes cannot have children"}
	}
	if node.hasParent {
		return &StructuralError{Op: "add child", Node: node.DebugName(), Reason: "node already has a parent"}
	}
	for ancestor := n; ancestor != nil; ancestor = ancestor.Parent() {
		if ancestor == node {
			return &StructuralError{Op: "add child", Node: node.DebugName(), Reason: "node is an ancestor of its new parent"}
		}
	}

	score := node.score()
	pos := len(n.children)
	for i, child := range n.children {
		if score < child.score() {
			pos = i
			break
		}
	}
	n.children = slices.Insert(n.children, pos, node)

	node.parent = weak.Make(n)
	node.hasParent = true
	return nil
}

func (n *MatchNode) score() int {
	switch {
	case n.terminal:
		return scoreTerminal
	case n.varArgs:
		return scoreVarArgs
	default:
		return scoreTyped
	}
}

// Depth returns the number of hops from n to the root.
func (n *MatchNode) Depth() int {
	depth := 0
	for node := n.Parent(); node != nil; node = node.Parent() {
		depth++
	}
	return depth
}

// Parent returns the node n is attached to, or nil for the root.
func (n *MatchNode) Parent() *MatchNode {
	if !n.hasParent {
		return nil
	}
	return n.parent.Value()
}

// Children returns a copy of n's children in match order.
func (n *MatchNode) Children() []*MatchNode {
	return slices.Clone(n.children)
}

// IsTerminal reports whether n ends a variant's argument chain.
func (n *MatchNode) IsTerminal() bool {
	return n.terminal
}

// IsVarArgs reports whether n consumes all remaining input tokens.
func (n *MatchNode) IsVarArgs() bool {
	return n.varArgs
}

// IsRoot reports whether n is a root node.
func (n *MatchNode) IsRoot() bool {
	return !n.terminal && n.converter == nil
}

func (n *MatchNode) Variant() int {
	return n.variant
}

func (n *MatchNode) ArgumentIndex() int {
	return n.argIndex
}

func (n *MatchNode) InputIndex() int {
	return n.inputIndex
}

func (n *MatchNode) Converter() *convert.Converter {
	return n.converter
}

// sameStep reports whether n was built from an identical chain step and
// can therefore be shared between variants.
func (n *MatchNode) sameStep(argIndex int, c *convert.Converter, varArgs bool) bool {
	return !n.terminal && n.argIndex == argIndex && n.converter == c && n.varArgs == varArgs
}
