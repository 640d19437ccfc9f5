package dispatchers

import "github.com/footprint-tools/argtree/internal/convert"

// NewTerminal creates a node marking the end of variant's argument chain.
func NewTerminal(variant, argIndex, inputIndex int) *MatchNode {
	return &MatchNode{
		variant:    variant,
		argIndex:   argIndex,
		inputIndex: inputIndex,
		terminal:   true,
	}
}

// NewTyped creates a node that converts the token at inputIndex, or the
// joined remainder of the input when varArgs is set.
func NewTyped(variant, argIndex, inputIndex int, c *convert.Converter, varArgs bool) *MatchNode {
	return &MatchNode{
		variant:    variant,
		argIndex:   argIndex,
		inputIndex: inputIndex,
		converter:  c,
		varArgs:    varArgs,
	}
}

// NewRoot creates a tree root. It matches nothing by itself.
func NewRoot() *MatchNode {
	return &MatchNode{
		variant:    -1,
		argIndex:   -1,
		inputIndex: -1,
	}
}
