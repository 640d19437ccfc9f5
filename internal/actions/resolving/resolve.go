package resolving

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/footprint-tools/argtree/internal/config"
	"github.com/footprint-tools/argtree/internal/dispatchers"
)

// Resolve handles "argtree resolve <command> [tokens...]".
func Resolve(args []any, flags *dispatchers.ParsedFlags, deps Deps) error {
	command, tokens := splitInput(args)

	engine, cfg, err := OpenEngine(flags, deps)
	if err != nil {
		return err
	}

	outcome, resolveErr := engine.Resolve(command, tokens)

	if config.Bool(cfg, "enable_history") {
		Record(deps.History, deps.logger(), command, tokens, outcome, resolveErr)
	}
	if resolveErr != nil {
		return resolveErr
	}

	if flags.Has("--json") {
		return writeJSON(deps, outcome)
	}
	return writeText(deps, outcome)
}

// splitInput unpacks the command word and the input tokens, passed on
// exactly as the CLI received them.
func splitInput(args []any) (string, []string) {
	var command string
	var tokens []string
	if len(args) > 0 {
		command, _ = args[0].(string)
	}
	if len(args) > 1 {
		tokens, _ = args[1].([]string)
	}
	return command, tokens
}

// ArgView is one converted argument as shown to the user.
type ArgView struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// OutcomeView is the JSON shape of a resolution.
type OutcomeView struct {
	Command string    `json:"command"`
	Variant int       `json:"variant"`
	Usage   string    `json:"usage"`
	Args    []ArgView `json:"args"`
}

// View flattens an outcome for display.
func View(o Outcome) OutcomeView {
	params := o.Params()
	view := OutcomeView{
		Command: o.Command.Name,
		Variant: o.Resolution.Variant,
		Usage:   o.Resolution.Usage,
		Args:    make([]ArgView, len(o.Resolution.Args)),
	}
	for i, v := range o.Resolution.Args {
		p := params[i]
		a := ArgView{Name: p.Name, Type: p.Type, Value: v}
		if a.Name == "" {
			a.Name = p.Type
		}
		if p.Literal != "" {
			a.Name, a.Type = p.Literal, "literal"
		}
		if d, ok := v.(time.Duration); ok {
			a.Value = d.String()
		}
		view.Args[i] = a
	}
	return view
}

func writeJSON(deps Deps, o Outcome) error {
	enc := json.NewEncoder(deps.out())
	enc.SetIndent("", "  ")
	return enc.Encode(View(o))
}

func writeText(deps Deps, o Outcome) error {
	s := deps.styler()
	view := View(o)

	_, _ = fmt.Fprintf(deps.out(), "%s %s\n", s.Success(view.Usage), s.Muted(fmt.Sprintf("(variant %d)", view.Variant)))

	tw := tabwriter.NewWriter(deps.out(), 0, 0, 2, ' ', 0)
	for _, a := range view.Args {
		_, _ = fmt.Fprintf(tw, "  %s\t%v\t%s\n", a.Name, a.Value, s.Muted(a.Type))
	}
	return tw.Flush()
}
