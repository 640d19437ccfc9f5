package cli

import "strings"

// SplitArgs separates flags (words starting with "-") from positional
// tokens. Negative numbers such as -3 or -.5 stay positional, and
// everything after a bare "--" is positional.
func SplitArgs(args []string) (tokens, flags []string) {
	for i, a := range args {
		if a == "--" {
			tokens = append(tokens, args[i+1:]...)
			break
		}
		if isFlag(a) {
			flags = append(flags, a)
			continue
		}
		tokens = append(tokens, a)
	}
	return tokens, flags
}

func isFlag(a string) bool {
	if len(a) < 2 || !strings.HasPrefix(a, "-") {
		return false
	}
	c := a[1]
	return !(c >= '0' && c <= '9') && c != '.'
}
