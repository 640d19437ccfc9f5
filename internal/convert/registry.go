package convert

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry maps type names to converters. Literal converters are
// memoized per word so that chains using the same literal share a branch.
type Registry struct {
	mu       sync.Mutex
	types    map[string]*Converter
	literals map[string]*Converter
}

// NewRegistry creates a registry preloaded with the builtin converters.
func NewRegistry() *Registry {
	r := &Registry{
		types:    make(map[string]*Converter),
		literals: make(map[string]*Converter),
	}
	for _, c := range Builtins() {
		r.types[c.Name()] = c
	}
	return r
}

// Register adds or replaces a named converter.
func (r *Registry) Register(c *Converter) error {
	if c.Name() == "" {
		return fmt.Errorf("convert: cannot register anonymous converter")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[c.Name()] = c
	return nil
}

// Lookup returns the converter registered under name.
func (r *Registry) Lookup(name string) (*Converter, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.types[name]
	return c, ok
}

// Names returns the registered type names, sorted.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Literal returns the converter that accepts exactly word, ignoring case,
// and yields word itself. Repeated calls return the same converter.
func (r *Registry) Literal(word string) *Converter {
	key := strings.ToLower(word)

	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.literals[key]; ok {
		return c
	}

	c := New(word, func(token string) (any, error) {
		if !strings.EqualFold(token, word) {
			return nil, fmt.Errorf("expected %q", word)
		}
		return word, nil
	})
	r.literals[key] = c
	return c
}
