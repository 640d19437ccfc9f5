package dispatchers

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoMatch is wrapped by every NoMatchError.
	ErrNoMatch = errors.New("no matching variant")

	// ErrStructural is wrapped by every StructuralError.
	ErrStructural = errors.New("dispatch tree structural violation")
)

// StructuralError reports a tree construction bug such as attaching a
// node that already has a parent. The tree is left unchanged.
type StructuralError struct {
	Op     string
	Node   string
	Reason string
}

func (e *StructuralError) Error() string {
	if e.Node == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Op, e.Reason, e.Node)
}

func (e *StructuralError) Unwrap() error {
	return ErrStructural
}

// NoMatchError reports that no registered chain consumed the whole input.
type NoMatchError struct {
	// Tokens is the number of input tokens.
	Tokens int
	// Deepest is the furthest input index any branch reached.
	Deepest int
	// Candidates are the variants whose branches reached Deepest, sorted.
	Candidates []int
	// Failures are the conversion errors raised at Deepest.
	Failures []error
}

func (e *NoMatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s for %d token(s)", ErrNoMatch, e.Tokens)
	if e.Tokens > 0 {
		fmt.Fprintf(&b, ", stopped at input %d", e.Deepest)
	}
	if len(e.Failures) > 0 {
		b.WriteString(": ")
		b.WriteString(e.Failures[0].Error())
	}
	return b.String()
}

func (e *NoMatchError) Unwrap() error {
	return ErrNoMatch
}

// Verify error types implement the error interface.
var (
	_ error = (*StructuralError)(nil)
	_ error = (*NoMatchError)(nil)
)
