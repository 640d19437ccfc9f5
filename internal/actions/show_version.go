package actions

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/footprint-tools/argtree/internal/dispatchers"
)

// ShowVersion returns the action for "argtree version", writing to out.
func ShowVersion(out io.Writer) func([]any, *dispatchers.ParsedFlags) error {
	deps := defaultDeps(out)
	return func(args []any, flags *dispatchers.ParsedFlags) error {
		return showVersion(args, flags, deps)
	}
}

func showVersion(_ []any, flags *dispatchers.ParsedFlags, deps actionDependencies) error {
	if flags.Has("--json") {
		return json.NewEncoder(deps.Out).Encode(map[string]string{
			"version": deps.Version(),
			"runtime": deps.Runtime(),
		})
	}
	_, _ = fmt.Fprintf(deps.Out, "argtree version %v (%s)\n", deps.Version(), deps.Runtime())
	return nil
}
