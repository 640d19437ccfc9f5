// Package catalog loads command definitions from a YAML file and turns
// them into resolver descriptors.
//
// A catalog looks like:
//
//	commands:
//	  - name: ban
//	    summary: Ban a player
//	    variants:
//	      - usage: ban <player> <reason...>
//	        params:
//	          - {name: player, type: word}
//	          - {name: reason, type: string, varargs: true}
//	  - name: whitelist
//	    variants:
//	      - params:
//	          - {literal: add}
//	          - {name: player, type: word}
//	types:
//	  - name: gamemode
//	    choices: [survival, creative]
package catalog

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/footprint-tools/argtree/internal/convert"
	"github.com/footprint-tools/argtree/internal/variants"
)

// Catalog is a parsed, validated command catalog.
type Catalog struct {
	Commands []Command  `yaml:"commands"`
	Types    []TypeSpec `yaml:"types,omitempty"`

	registry *convert.Registry
}

// Command is one named command with its variants.
type Command struct {
	Name     string        `yaml:"name"`
	Summary  string        `yaml:"summary,omitempty"`
	Variants []VariantSpec `yaml:"variants"`
}

// VariantSpec is one accepted parameter layout of a command.
type VariantSpec struct {
	// Usage is generated from the params when empty.
	Usage  string      `yaml:"usage,omitempty"`
	Params []ParamSpec `yaml:"params,omitempty"`
}

// ParamSpec is a typed parameter or a literal word. Exactly one of Type
// and Literal is set.
type ParamSpec struct {
	Name    string `yaml:"name,omitempty"`
	Type    string `yaml:"type,omitempty"`
	VarArgs bool   `yaml:"varargs,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// Load reads and parses the catalog at path.
func Load(path string, reg *convert.Registry) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return Parse(data, path, reg)
}

// Parse parses catalog content. The path is used only for error messages.
// Param types are resolved against reg, after the catalog's own types
// are registered in it.
func Parse(data []byte, path string, reg *convert.Registry) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	c.registry = reg
	if err := c.registerTypes(path); err != nil {
		return nil, err
	}
	if err := c.validate(path); err != nil {
		return nil, err
	}
	c.setDefaults()
	return &c, nil
}

func (c *Catalog) validate(path string) error {
	if len(c.Commands) == 0 {
		return fmt.Errorf("%s: no commands defined", path)
	}

	seen := make(map[string]int)
	for i, cmd := range c.Commands {
		if cmd.Name == "" {
			return fmt.Errorf("%s: commands[%d]: name is required", path, i)
		}
		if strings.ContainsAny(cmd.Name, " \t") {
			return fmt.Errorf("%s: commands[%d]: name %q contains whitespace", path, i, cmd.Name)
		}
		key := strings.ToLower(cmd.Name)
		if prev, dup := seen[key]; dup {
			return fmt.Errorf("%s: commands[%d]: duplicate command %q (first defined at commands[%d])", path, i, cmd.Name, prev)
		}
		seen[key] = i

		if len(cmd.Variants) == 0 {
			return fmt.Errorf("%s: command %q: no variants defined", path, cmd.Name)
		}
		for j, v := range cmd.Variants {
			if err := c.validateVariant(v); err != nil {
				return fmt.Errorf("%s: command %q: variants[%d]: %w", path, cmd.Name, j, err)
			}
		}
	}
	return nil
}

func (c *Catalog) validateVariant(v VariantSpec) error {
	for k, p := range v.Params {
		switch {
		case p.Literal != "" && p.Type != "":
			return fmt.Errorf("params[%d]: literal and type are mutually exclusive", k)
		case p.Literal != "":
			if p.VarArgs {
				return fmt.Errorf("params[%d]: a literal cannot be varargs", k)
			}
			if strings.ContainsAny(p.Literal, " \t") {
				return fmt.Errorf("params[%d]: literal %q contains whitespace", k, p.Literal)
			}
		case p.Type == "":
			return fmt.Errorf("params[%d]: type or literal is required", k)
		default:
			if _, ok := c.registry.Lookup(p.Type); !ok {
				return fmt.Errorf("params[%d]: unknown type %q (known: %s)", k, p.Type, strings.Join(c.registry.Names(), ", "))
			}
		}
		if p.VarArgs && k != len(v.Params)-1 {
			return fmt.Errorf("params[%d]: only the last param can be varargs", k)
		}
	}
	return nil
}

func (c *Catalog) setDefaults() {
	for i := range c.Commands {
		cmd := &c.Commands[i]
		for j := range cmd.Variants {
			if cmd.Variants[j].Usage == "" {
				cmd.Variants[j].Usage = Usage(cmd.Name, cmd.Variants[j].Params)
			}
		}
	}
}

// Usage renders a usage line such as "ban <player> <reason...>".
func Usage(command string, params []ParamSpec) string {
	parts := []string{command}
	for _, p := range params {
		if p.Literal != "" {
			parts = append(parts, p.Literal)
			continue
		}
		label := p.Name
		if label == "" {
			label = p.Type
		}
		if p.VarArgs {
			label += "..."
		}
		parts = append(parts, "<"+label+">")
	}
	return strings.Join(parts, " ")
}

// Names returns the command names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Commands))
	for i, cmd := range c.Commands {
		names[i] = cmd.Name
	}
	return names
}

// Command returns the command called name, ignoring case.
func (c *Catalog) Command(name string) (Command, bool) {
	i := slices.IndexFunc(c.Commands, func(cmd Command) bool {
		return strings.EqualFold(cmd.Name, name)
	})
	if i < 0 {
		return Command{}, false
	}
	return c.Commands[i], true
}

// Descriptors converts the variants of command name into resolver
// descriptors. Variant ids are indexes into the command's variant list.
func (c *Catalog) Descriptors(name string) ([]variants.Descriptor, error) {
	cmd, ok := c.Command(name)
	if !ok {
		return nil, fmt.Errorf("catalog: unknown command %q", name)
	}

	descs := make([]variants.Descriptor, len(cmd.Variants))
	for i, v := range cmd.Variants {
		params := make([]variants.Param, len(v.Params))
		for k, p := range v.Params {
			params[k] = variants.Param{
				Position: k,
				Name:     p.Name,
				VarArgs:  p.VarArgs,
			}
			if p.Literal != "" {
				params[k].Name = p.Literal
				params[k].Converter = c.registry.Literal(p.Literal)
				continue
			}
			// Validated by Parse.
			params[k].Converter, _ = c.registry.Lookup(p.Type)
		}
		descs[i] = variants.Descriptor{ID: i, Usage: v.Usage, Params: params}
	}
	return descs, nil
}
