package catalog

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/footprint-tools/argtree/internal/convert"
)

// TypeSpec declares a catalog-local param type. Exactly one of Choices
// and Pattern is set.
type TypeSpec struct {
	Name string `yaml:"name"`
	// Choices are matched ignoring case and converted to the listed spelling.
	Choices []string `yaml:"choices,omitempty"`
	// Pattern must match the whole token.
	Pattern string `yaml:"pattern,omitempty"`
}

// registerTypes adds the catalog's own types to the registry. Builtin
// names cannot be redefined.
func (c *Catalog) registerTypes(path string) error {
	seen := make(map[string]bool)
	for i, t := range c.Types {
		conv, err := t.converter()
		if err != nil {
			return fmt.Errorf("%s: types[%d]: %w", path, i, err)
		}
		if seen[t.Name] {
			return fmt.Errorf("%s: types[%d]: duplicate type %q", path, i, t.Name)
		}
		if _, builtin := c.registry.Lookup(t.Name); builtin {
			return fmt.Errorf("%s: types[%d]: %q redefines a builtin type", path, i, t.Name)
		}
		seen[t.Name] = true
		if err := c.registry.Register(conv); err != nil {
			return fmt.Errorf("%s: types[%d]: %w", path, i, err)
		}
	}
	return nil
}

func (t TypeSpec) converter() (*convert.Converter, error) {
	if t.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if strings.ContainsAny(t.Name, " \t") {
		return nil, fmt.Errorf("name %q contains whitespace", t.Name)
	}

	switch {
	case len(t.Choices) > 0 && t.Pattern != "":
		return nil, fmt.Errorf("type %q: choices and pattern are mutually exclusive", t.Name)
	case len(t.Choices) > 0:
		if slices.Contains(t.Choices, "") {
			return nil, fmt.Errorf("type %q: empty choice", t.Name)
		}
		choices := slices.Clone(t.Choices)
		return convert.New(t.Name, func(token string) (any, error) {
			for _, choice := range choices {
				if strings.EqualFold(token, choice) {
					return choice, nil
				}
			}
			return nil, fmt.Errorf("expected one of %s", strings.Join(choices, ", "))
		}), nil
	case t.Pattern != "":
		re, err := regexp.Compile(`^(?:` + t.Pattern + `)$`)
		if err != nil {
			return nil, fmt.Errorf("type %q: %w", t.Name, err)
		}
		return convert.New(t.Name, func(token string) (any, error) {
			if !re.MatchString(token) {
				return nil, fmt.Errorf("does not match %s", t.Pattern)
			}
			return token, nil
		}), nil
	default:
		return nil, fmt.Errorf("type %q: choices or pattern is required", t.Name)
	}
}
