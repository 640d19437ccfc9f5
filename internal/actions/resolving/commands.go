package resolving

import (
	"fmt"

	"github.com/footprint-tools/argtree/internal/dispatchers"
)

// Commands handles "argtree commands": every catalog command with its usages.
func Commands(_ []any, flags *dispatchers.ParsedFlags, deps Deps) error {
	engine, _, err := OpenEngine(flags, deps)
	if err != nil {
		return err
	}

	s := deps.styler()
	out := deps.out()
	for i, cmd := range engine.Catalog().Commands {
		if i > 0 {
			_, _ = fmt.Fprintln(out)
		}
		if cmd.Summary != "" {
			_, _ = fmt.Fprintf(out, "%s  %s\n", s.Header(cmd.Name), s.Muted(cmd.Summary))
		} else {
			_, _ = fmt.Fprintln(out, s.Header(cmd.Name))
		}
		for _, v := range cmd.Variants {
			_, _ = fmt.Fprintf(out, "  %s\n", v.Usage)
		}
	}
	return nil
}
