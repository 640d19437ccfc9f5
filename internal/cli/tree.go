package cli

import (
	"strings"

	"github.com/footprint-tools/argtree/internal/actions"
	configactions "github.com/footprint-tools/argtree/internal/actions/config"
	"github.com/footprint-tools/argtree/internal/actions/repl"
	"github.com/footprint-tools/argtree/internal/actions/resolving"
	"github.com/footprint-tools/argtree/internal/dispatchers"
	"github.com/footprint-tools/argtree/internal/domain"
)

// Build registers argtree's subcommands against app's services.
func Build(app *domain.Application) (*Dispatcher, error) {
	d := &Dispatcher{}

	res := resolving.DefaultDeps(app, d.Dump)
	cfg := configactions.DefaultDeps(app.Config, app.Output)
	rpl := repl.DefaultDeps(res)

	with := func(fn func([]any, *dispatchers.ParsedFlags, resolving.Deps) error) Action {
		return func(args []any, flags *dispatchers.ParsedFlags) error {
			return fn(args, flags, res)
		}
	}
	withConfig := func(fn func([]any, *dispatchers.ParsedFlags, configactions.Deps) error) Action {
		return func(args []any, flags *dispatchers.ParsedFlags) error {
			return fn(args, flags, cfg)
		}
	}
	help := func(args []any, _ *dispatchers.ParsedFlags) error {
		var topic string
		if len(args) > 0 {
			words, _ := args[0].([]string)
			topic = strings.Join(words, " ")
		}
		return d.WriteHelp(app.Output, app.Styler, topic)
	}

	commands := []Command{
		// Resolve input
		{
			Pattern:  "resolve <command:word> <input:string...>",
			Summary:  "Resolve input against a catalog command",
			Category: CategoryResolve,
			Action:   with(resolving.Resolve),
		},
		{
			Pattern:  "resolve <command:word>",
			Summary:  "Resolve a command given no input",
			Category: CategoryResolve,
			Action:   with(resolving.Resolve),
		},
		{
			Pattern:  "repl",
			Summary:  "Resolve lines interactively",
			Category: CategoryResolve,
			Action: func(args []any, flags *dispatchers.ParsedFlags) error {
				return repl.Run(args, flags, rpl)
			},
		},

		// Inspect
		{
			Pattern:  "commands",
			Summary:  "List catalog commands and their variants",
			Category: CategoryInspect,
			Action:   with(resolving.Commands),
		},
		{
			Pattern:  "tree <command:word>",
			Summary:  "Show the dispatch tree of a catalog command",
			Category: CategoryInspect,
			Action:   with(resolving.Tree),
		},
		{
			Pattern:  "tree",
			Summary:  "Show the dispatch tree of argtree's own commands",
			Category: CategoryInspect,
			Action:   with(resolving.Tree),
		},
		{
			Pattern:  "history <limit:int>",
			Summary:  "Show the last <limit> resolutions",
			Category: CategoryInspect,
			Action:   with(resolving.History),
		},
		{
			Pattern:  "history",
			Summary:  "Show recent resolutions",
			Category: CategoryInspect,
			Action:   with(resolving.History),
		},

		// Configuration
		{
			Pattern:  "config get <key:word>",
			Summary:  "Print a setting",
			Category: CategoryConfig,
			Action:   withConfig(configactions.Get),
		},
		{
			Pattern:  "config set <key:word> <value:string...>",
			Summary:  "Change a setting",
			Category: CategoryConfig,
			Action:   withConfig(configactions.Set),
		},
		{
			Pattern:  "config unset <key:word>",
			Summary:  "Restore a setting's default",
			Category: CategoryConfig,
			Action:   withConfig(configactions.Unset),
		},
		{
			Pattern:  "config list",
			Summary:  "List settings",
			Category: CategoryConfig,
			Action:   withConfig(configactions.List),
		},
		{
			Pattern:  "config",
			Summary:  "List settings",
			Category: CategoryConfig,
			Action:   withConfig(configactions.List),
		},

		// Info
		{
			Pattern:  "help <topic:string...>",
			Summary:  "Show help for a command",
			Category: CategoryInfo,
			Action:   help,
		},
		{
			Pattern:  "help",
			Summary:  "Show this overview",
			Category: CategoryInfo,
			Action:   help,
		},
		{
			Pattern:  "version",
			Summary:  "Print the argtree version",
			Category: CategoryInfo,
			Action:   actions.ShowVersion(app.Output),
		},
	}

	if err := d.init(commands, app.Logger); err != nil {
		return nil, err
	}
	return d, nil
}
