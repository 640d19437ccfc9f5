package cli

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/argtree/internal/convert"
	"github.com/footprint-tools/argtree/internal/variants"
)

// patternParam is one word of a command pattern: a literal such as
// "config", or a typed placeholder such as "<key:word>" or "<value:string...>".
type patternParam struct {
	literal string
	name    string
	typ     string
	varArgs bool
}

func parsePattern(pattern string) ([]patternParam, error) {
	fields := strings.Fields(pattern)
	if len(fields) == 0 {
		return nil, fmt.Errorf("cli: empty pattern")
	}

	params := make([]patternParam, len(fields))
	for i, f := range fields {
		inner, ok := strings.CutPrefix(f, "<")
		if !ok {
			params[i] = patternParam{literal: f}
			continue
		}
		inner, ok = strings.CutSuffix(inner, ">")
		if !ok {
			return nil, fmt.Errorf("cli: pattern %q: unterminated placeholder %q", pattern, f)
		}

		p := patternParam{}
		inner, p.varArgs = strings.CutSuffix(inner, "...")
		p.name, p.typ, ok = strings.Cut(inner, ":")
		if !ok || p.name == "" || p.typ == "" {
			return nil, fmt.Errorf("cli: pattern %q: placeholder %q must be <name:type>", pattern, f)
		}
		params[i] = p
	}
	return params, nil
}

// usageOf renders params without their types, e.g. "config get <key>".
func usageOf(params []patternParam) string {
	parts := make([]string, len(params))
	for i, p := range params {
		switch {
		case p.literal != "":
			parts[i] = p.literal
		case p.varArgs:
			parts[i] = "<" + p.name + "...>"
		default:
			parts[i] = "<" + p.name + ">"
		}
	}
	return strings.Join(parts, " ")
}

func descriptorOf(id int, usage string, params []patternParam, reg *convert.Registry) (variants.Descriptor, error) {
	d := variants.Descriptor{ID: id, Usage: usage}
	for i, p := range params {
		param := variants.Param{Position: i, VarArgs: p.varArgs}
		if p.literal != "" {
			param.Name = p.literal
			param.Converter = reg.Literal(p.literal)
		} else {
			c, ok := reg.Lookup(p.typ)
			if !ok {
				return variants.Descriptor{}, fmt.Errorf("cli: %s: unknown type %q", usage, p.typ)
			}
			param.Name = p.name
			param.Converter = c
		}
		d.Params = append(d.Params, param)
	}
	return d, nil
}
