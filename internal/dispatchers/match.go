package dispatchers

import (
	"slices"
	"strings"
)

// Result is a resolved variant and its converted arguments, in chain order.
type Result struct {
	Variant int
	Args    []any
}

// Match walks the tree depth first against tokens and returns the first
// variant whose converters accept the whole input. Children are visited
// in specificity order, so typed branches win over var-args branches,
// which win over stopping early. A conversion failure only prunes the
// branch it happened on.
func (t *Tree) Match(tokens []string) (Result, error) {
	w := &walker{tokens: tokens}
	if res, ok := w.walk(t.root, 0, nil); ok {
		return res, nil
	}
	return Result{}, w.noMatch()
}

// walker holds the state of a single Match call.
type walker struct {
	tokens []string

	deepest    int
	candidates []int
	failures   []error
}

func (w *walker) walk(node *MatchNode, pos int, args []any) (Result, bool) {
	for _, child := range node.children {
		switch {
		case child.terminal:
			if pos == len(w.tokens) {
				out := make([]any, len(args))
				copy(out, args)
				return Result{Variant: child.variant, Args: out}, true
			}
			w.reached(pos, child, nil)

		case child.varArgs:
			if pos >= len(w.tokens) {
				w.reached(pos, child, nil)
				continue
			}
			v, err := child.converter.Convert(strings.Join(w.tokens[pos:], " "))
			if err != nil {
				w.reached(pos, child, err)
				continue
			}
			if res, ok := w.walk(child, len(w.tokens), append(args, v)); ok {
				return res, true
			}

		default:
			if pos >= len(w.tokens) {
				w.reached(pos, child, nil)
				continue
			}
			v, err := child.converter.Convert(w.tokens[pos])
			if err != nil {
				w.reached(pos, child, err)
				continue
			}
			if res, ok := w.walk(child, pos+1, append(args, v)); ok {
				return res, true
			}
		}
	}
	return Result{}, false
}

// reached records that the branch through node stopped at input index pos.
// Every variant completed below node becomes a candidate.
func (w *walker) reached(pos int, node *MatchNode, err error) {
	if pos > w.deepest {
		w.deepest = pos
		w.candidates = w.candidates[:0]
		w.failures = nil
	}
	if pos < w.deepest {
		return
	}
	for _, variant := range node.completes() {
		if !slices.Contains(w.candidates, variant) {
			w.candidates = append(w.candidates, variant)
		}
	}
	if err != nil {
		w.failures = append(w.failures, err)
	}
}

func (w *walker) noMatch() *NoMatchError {
	candidates := slices.Clone(w.candidates)
	slices.Sort(candidates)
	return &NoMatchError{
		Tokens:     len(w.tokens),
		Deepest:    w.deepest,
		Candidates: candidates,
		Failures:   w.failures,
	}
}

// completes returns the variants whose terminals lie at or below n.
func (n *MatchNode) completes() []int {
	if n.terminal {
		return []int{n.variant}
	}
	var ids []int
	for _, child := range n.children {
		ids = append(ids, child.completes()...)
	}
	return ids
}
