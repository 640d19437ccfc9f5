package dispatchers

import (
	"slices"
	"strings"
)

// ParsedFlags provides typed access to command-line flags.
type ParsedFlags struct {
	raw []string
}

// NewParsedFlags creates a ParsedFlags from a slice of flag strings.
func NewParsedFlags(flags []string) *ParsedFlags {
	return &ParsedFlags{raw: flags}
}

// Has reports whether any of names is present as a boolean flag.
func (f *ParsedFlags) Has(names ...string) bool {
	return slices.ContainsFunc(f.raw, func(flag string) bool {
		return slices.Contains(names, flag)
	})
}

// String returns the value of a --flag=value flag, or defaultVal if not
// present. The last occurrence wins.
func (f *ParsedFlags) String(name, defaultVal string) string {
	prefix := name + "="
	value := defaultVal
	for _, flag := range f.raw {
		if v, ok := strings.CutPrefix(flag, prefix); ok {
			value = v
		}
	}
	return value
}

// Unknown returns the flags whose name is not in known.
func (f *ParsedFlags) Unknown(known ...string) []string {
	var out []string
	for _, flag := range f.raw {
		name, _, _ := strings.Cut(flag, "=")
		if !slices.Contains(known, name) {
			out = append(out, flag)
		}
	}
	return out
}
