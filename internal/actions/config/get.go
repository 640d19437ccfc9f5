package config

import (
	"fmt"

	"github.com/footprint-tools/argtree/internal/dispatchers"
	"github.com/footprint-tools/argtree/internal/usage"
)

// Get handles "argtree config get <key>".
func Get(args []any, _ *dispatchers.ParsedFlags, deps Deps) error {
	key, err := keyArg(args)
	if err != nil {
		return err
	}

	value, found := deps.Get(key)
	if !found {
		return usage.InvalidConfigKey(key)
	}

	_, _ = fmt.Fprintln(deps.Out, value)
	return nil
}

func keyArg(args []any) (string, error) {
	if len(args) < 1 {
		return "", usage.MissingArgument("key")
	}
	key, _ := args[0].(string)
	if key == "" {
		return "", usage.MissingArgument("key")
	}
	return key, nil
}
