// Package cli maps argtree's command line onto its actions. Subcommands
// are registered as variants with literal words and resolved by the same
// dispatch tree that serves catalog commands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/footprint-tools/argtree/internal/convert"
	"github.com/footprint-tools/argtree/internal/dispatchers"
	"github.com/footprint-tools/argtree/internal/domain"
	"github.com/footprint-tools/argtree/internal/log"
	"github.com/footprint-tools/argtree/internal/usage"
	"github.com/footprint-tools/argtree/internal/variants"
)

// Action runs a resolved subcommand. args holds the converted values of
// the pattern's placeholders; literal words are dropped. A trailing
// <name:type...> placeholder binds the raw remaining tokens as []string.
type Action func(args []any, flags *dispatchers.ParsedFlags) error

// Category groups commands in help output.
type Category int

const (
	CategoryResolve Category = iota
	CategoryInspect
	CategoryConfig
	CategoryInfo
)

func (c Category) String() string {
	switch c {
	case CategoryResolve:
		return "Resolve input"
	case CategoryInspect:
		return "Inspect"
	case CategoryConfig:
		return "Configuration"
	default:
		return "Info"
	}
}

// Command is one subcommand variant.
type Command struct {
	// Pattern is a sequence of literal words and <name:type> placeholders.
	// The last placeholder may be <name:type...> to take the remaining input.
	Pattern  string
	Summary  string
	Category Category
	Action   Action

	params []patternParam
}

// Usage renders the command for help output, e.g. "argtree config get <key>".
func (c Command) Usage() string {
	return "argtree " + usageOf(c.params)
}

// Name is the first word of the pattern.
func (c Command) Name() string {
	return c.params[0].literal
}

// Resolution is a dispatched subcommand ready to execute.
type Resolution struct {
	Command  Command
	Args     []any
	Flags    *dispatchers.ParsedFlags
	ExitCode int
}

// Execute runs the resolved action.
func (r Resolution) Execute() error {
	return r.Command.Action(r.Args, r.Flags)
}

// GlobalFlags are accepted by every command.
var GlobalFlags = []struct {
	Name        string
	ValueHint   string
	Description string
}{
	{Name: "--help", Description: "Show help (also -h)"},
	{Name: "--no-color", Description: "Disable colored output"},
	{Name: "--json", Description: "Print machine-readable output where supported"},
	{Name: "--catalog", ValueHint: "<path>", Description: "Use this catalog instead of catalog_path"},
}

func knownFlags() []string {
	names := []string{"-h"}
	for _, f := range GlobalFlags {
		names = append(names, f.Name)
	}
	return names
}

// Dispatcher resolves command lines to subcommands.
type Dispatcher struct {
	commands []Command
	resolver *variants.Resolver
	words    []string
}

// NewDispatcher registers commands as variants. Command ids are indexes
// into commands, so earlier commands win over identical later patterns.
func NewDispatcher(commands []Command, logger domain.Logger) (*Dispatcher, error) {
	d := &Dispatcher{}
	if err := d.init(commands, logger); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dispatcher) init(commands []Command, logger domain.Logger) error {
	if logger == nil {
		logger = log.NopLogger{}
	}
	reg := convert.NewRegistry()
	descs := make([]variants.Descriptor, 0, len(commands))
	d.commands = make([]Command, len(commands))

	for i, c := range commands {
		params, err := parsePattern(c.Pattern)
		if err != nil {
			return err
		}
		if params[0].literal == "" {
			return fmt.Errorf("cli: pattern %q must start with a command word", c.Pattern)
		}
		c.params = params

		desc, err := descriptorOf(i, c.Usage(), params, reg)
		if err != nil {
			return err
		}
		descs = append(descs, desc)
		d.commands[i] = c

		if !slices.Contains(d.words, c.Name()) {
			d.words = append(d.words, c.Name())
		}
	}

	r, err := variants.New(descs, variants.WithLogger(logger))
	if err != nil {
		return err
	}
	d.resolver = r
	return nil
}

// Commands returns the registered commands in registration order.
func (d *Dispatcher) Commands() []Command {
	return slices.Clone(d.commands)
}

// Dump writes the dispatch tree of argtree's own commands.
func (d *Dispatcher) Dump(w io.Writer) error {
	return d.resolver.Dump(w)
}

// Dispatch resolves tokens to a command. With no tokens, or with --help,
// it resolves to help.
func (d *Dispatcher) Dispatch(tokens []string, flags *dispatchers.ParsedFlags) (Resolution, error) {
	if unknown := flags.Unknown(knownFlags()...); len(unknown) > 0 {
		return Resolution{}, usage.InvalidFlag(unknown[0])
	}

	if len(tokens) == 0 || flags.Has("--help", "-h") {
		res, err := d.resolve(append([]string{"help"}, tokens...), flags)
		if err != nil {
			return Resolution{}, err
		}
		if len(tokens) == 0 && !flags.Has("--help", "-h") {
			res.ExitCode = 1
		}
		return res, nil
	}

	return d.resolve(tokens, flags)
}

func (d *Dispatcher) resolve(tokens []string, flags *dispatchers.ParsedFlags) (Resolution, error) {
	res, err := d.resolver.Resolve(tokens)
	if err != nil {
		if !errors.Is(err, dispatchers.ErrNoMatch) {
			return Resolution{}, err
		}
		if !d.isWord(tokens[0]) {
			return Resolution{}, usage.NotACommand(tokens[0], dispatchers.FindSimilar(tokens[0], d.words, 3)...)
		}
		return Resolution{}, usage.NoMatchingVariant(tokens[0], tokens[1:], d.closest(tokens[0], err), err)
	}

	cmd := d.commands[res.Variant]
	var args []any
	for i, p := range cmd.params {
		switch {
		case p.literal != "":
		case p.varArgs:
			// Every earlier param consumed exactly one token.
			args = append(args, slices.Clone(tokens[i:]))
		default:
			args = append(args, res.Args[i])
		}
	}

	return Resolution{Command: cmd, Args: args, Flags: flags}, nil
}

func (d *Dispatcher) isWord(token string) bool {
	return slices.ContainsFunc(d.words, func(w string) bool {
		return strings.EqualFold(w, token)
	})
}

// closest returns the usages of the variants the walk got furthest into,
// falling back to every variant of the command.
func (d *Dispatcher) closest(word string, err error) []string {
	if candidates := d.resolver.Candidates(err); len(candidates) > 0 {
		return candidates
	}
	var usages []string
	for _, c := range d.commands {
		if strings.EqualFold(c.Name(), word) {
			usages = append(usages, c.Usage())
		}
	}
	return usages
}
