package config

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/argtree/internal/dispatchers"
	"github.com/footprint-tools/argtree/internal/usage"
)

// Set handles "argtree config set <key> <value...>".
func Set(args []any, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 2 {
		return usage.MissingArgument("key value")
	}
	key, err := keyArg(args)
	if err != nil {
		return err
	}
	words, _ := args[1].([]string)
	value := strings.Join(words, " ")

	previous, _ := deps.Get(key)
	if err := deps.Set(key, value); err != nil {
		return err
	}

	if previous == value {
		_, _ = fmt.Fprintf(deps.Out, "unchanged %s=%s\n", key, value)
		return nil
	}
	_, _ = fmt.Fprintf(deps.Out, "updated %s=%s (was %q)\n", key, value, previous)
	return nil
}
