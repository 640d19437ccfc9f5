// Package variants resolves raw input tokens to one of a set of
// registered command variants.
package variants

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"sync/atomic"

	"github.com/footprint-tools/argtree/internal/convert"
	"github.com/footprint-tools/argtree/internal/dispatchers"
	"github.com/footprint-tools/argtree/internal/domain"
	"github.com/footprint-tools/argtree/internal/log"
)

// Param is one parameter of a variant, as produced by the registration layer.
type Param struct {
	// Position is the parameter's index in the variant's parameter list.
	Position  int
	Name      string
	Converter *convert.Converter
	// VarArgs binds all remaining input tokens to this parameter.
	VarArgs bool
}

// Descriptor describes one registered variant.
type Descriptor struct {
	ID     int
	Usage  string
	Params []Param
}

// Resolution is the outcome of a successful Resolve.
type Resolution struct {
	Variant int
	Usage   string
	Args    []any
}

type snapshot struct {
	tree  *dispatchers.Tree
	usage map[int]string
}

// Resolver owns a dispatch tree built from variant descriptors.
// Resolve is safe for concurrent use, including while Reload runs.
type Resolver struct {
	current atomic.Pointer[snapshot]
	logger  domain.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for resolution diagnostics.
func WithLogger(logger domain.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// New builds a resolver for the given descriptors.
func New(descriptors []Descriptor, opts ...Option) (*Resolver, error) {
	r := &Resolver{logger: log.NopLogger{}}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.Reload(descriptors); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload builds a new tree from descriptors and swaps it in. On error the
// previous tree stays active.
func (r *Resolver) Reload(descriptors []Descriptor) error {
	snap, err := build(descriptors)
	if err != nil {
		return err
	}

	for _, id := range snap.tree.Shadowed() {
		r.logger.Warn("variants: variant %d (%s) duplicates an earlier variant and can never match", id, snap.usage[id])
	}

	r.current.Store(snap)
	r.logger.Debug("variants: loaded %d variant(s)", len(snap.tree.Variants()))
	return nil
}

func build(descriptors []Descriptor) (*snapshot, error) {
	snap := &snapshot{
		tree:  dispatchers.NewTree(),
		usage: make(map[int]string, len(descriptors)),
	}

	for _, d := range descriptors {
		if _, dup := snap.usage[d.ID]; dup {
			return nil, fmt.Errorf("variants: duplicate variant id %d", d.ID)
		}

		params := slices.Clone(d.Params)
		slices.SortStableFunc(params, func(a, b Param) int {
			return a.Position - b.Position
		})

		steps := make([]dispatchers.Step, len(params))
		for i, p := range params {
			steps[i] = dispatchers.Step{
				ArgIndex:  p.Position,
				Converter: p.Converter,
				VarArgs:   p.VarArgs,
			}
		}

		if err := snap.tree.Insert(d.ID, steps); err != nil {
			return nil, fmt.Errorf("variants: register variant %d (%s): %w", d.ID, d.Usage, err)
		}
		snap.usage[d.ID] = d.Usage
	}

	return snap, nil
}

// Resolve selects the variant matching tokens and returns its converted
// arguments. Failures wrap dispatchers.ErrNoMatch.
func (r *Resolver) Resolve(tokens []string) (Resolution, error) {
	snap := r.current.Load()

	res, err := snap.tree.Match(tokens)
	if err != nil {
		var noMatch *dispatchers.NoMatchError
		if errors.As(err, &noMatch) {
			r.logger.Debug("variants: no match for %q (deepest input %d, candidates %v)", tokens, noMatch.Deepest, noMatch.Candidates)
		}
		return Resolution{}, err
	}

	r.logger.Debug("variants: %q resolved to variant %d", tokens, res.Variant)
	return Resolution{
		Variant: res.Variant,
		Usage:   snap.usage[res.Variant],
		Args:    res.Args,
	}, nil
}

// Usage returns the usage string registered for variant.
func (r *Resolver) Usage(variant int) string {
	return r.current.Load().usage[variant]
}

// Candidates returns the usage strings of the variants named in a
// NoMatchError, in id order. It returns nil for any other error.
func (r *Resolver) Candidates(err error) []string {
	var noMatch *dispatchers.NoMatchError
	if !errors.As(err, &noMatch) {
		return nil
	}
	snap := r.current.Load()
	usages := make([]string, 0, len(noMatch.Candidates))
	for _, id := range noMatch.Candidates {
		usages = append(usages, snap.usage[id])
	}
	return usages
}

// Dump writes a debug rendering of the current tree to w.
func (r *Resolver) Dump(w io.Writer) error {
	return r.current.Load().tree.Dump(w)
}
