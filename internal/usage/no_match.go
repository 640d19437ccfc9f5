package usage

import (
	"fmt"
	"strings"
)

// NoMatchingVariant is returned when the input fits none of a command's
// variants. candidates are the usages of the closest variants.
func NoMatchingVariant(command string, input []string, candidates []string, cause error) *Error {
	e := &Error{
		Kind:    ErrNoMatchingVariant,
		Message: fmt.Sprintf("argtree: no variant of '%s' accepts '%s'", command, strings.Join(input, " ")),
		Err:     cause,
	}
	if len(candidates) > 0 {
		e.Hints = append(e.Hints, "Closest usage:")
		for _, c := range candidates {
			e.Hints = append(e.Hints, "    "+c)
		}
	}
	return e
}
