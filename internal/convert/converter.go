// Package convert defines token converters: named, stateless functions
// that turn one raw input token (or the joined remainder of the input)
// into a typed value.
package convert

import "fmt"

// Func converts a raw token into a typed value.
type Func func(token string) (any, error)

// Converter is a named conversion function. Converters are compared by
// identity: two distinct *Converter values never share a dispatch branch,
// even when they wrap the same function.
type Converter struct {
	name string
	fn   Func
}

// New creates a converter with the given display name.
func New(name string, fn Func) *Converter {
	if fn == nil {
		panic("convert: nil conversion func for " + name)
	}
	return &Converter{name: name, fn: fn}
}

// Name returns the display name given at registration.
func (c *Converter) Name() string {
	return c.name
}

// Label returns the display name, or a generated label for anonymous converters.
func (c *Converter) Label() string {
	if c.name != "" {
		return c.name
	}
	return fmt.Sprintf("converter@%p", c)
}

// Convert applies the converter to token. Failures are always *Error.
func (c *Converter) Convert(token string) (any, error) {
	v, err := c.fn(token)
	if err != nil {
		return nil, &Error{Converter: c.Label(), Input: token, Err: err}
	}
	return v, nil
}

func (c *Converter) String() string {
	return c.Label()
}

// Error reports that a converter rejected its input.
type Error struct {
	Converter string
	Input     string
	Err       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: cannot convert %q: %v", e.Converter, e.Input, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
