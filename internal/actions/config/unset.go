package config

import (
	"fmt"

	"github.com/footprint-tools/argtree/internal/dispatchers"
)

// Unset handles "argtree config unset <key>".
func Unset(args []any, _ *dispatchers.ParsedFlags, deps Deps) error {
	key, err := keyArg(args)
	if err != nil {
		return err
	}

	if err := deps.Unset(key); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(deps.Out, "unset %s\n", key)
	return nil
}
