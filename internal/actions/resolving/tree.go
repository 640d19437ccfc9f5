package resolving

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/footprint-tools/argtree/internal/dispatchers"
	"github.com/footprint-tools/argtree/internal/domain"
)

// Tree handles "argtree tree [command]". Without a command it dumps the
// tree of argtree's own subcommands.
func Tree(args []any, flags *dispatchers.ParsedFlags, deps Deps) error {
	var buf bytes.Buffer

	if len(args) == 0 {
		if deps.Self == nil {
			return fmt.Errorf("tree: no command tree available")
		}
		if err := deps.Self(&buf); err != nil {
			return err
		}
		return writeTree(deps.out(), deps.styler(), &buf)
	}

	command, _ := args[0].(string)
	engine, _, err := OpenEngine(flags, deps)
	if err != nil {
		return err
	}
	r, _, err := engine.Resolver(command)
	if err != nil {
		return err
	}
	if err := r.Dump(&buf); err != nil {
		return err
	}
	return writeTree(deps.out(), deps.styler(), &buf)
}

// writeTree copies a tree dump to w, styling each node's label.
func writeTree(w io.Writer, s domain.Styler, dump io.Reader) error {
	scanner := bufio.NewScanner(dump)
	for scanner.Scan() {
		line := scanner.Text()
		body := strings.TrimLeft(line, " ")
		indent := line[:len(line)-len(body)]

		label, rest, _ := strings.Cut(body, " ")
		switch label {
		case "*term*":
			label = s.Success(label)
		case "*root*":
			label = s.Header(label)
		default:
			label = s.Info(label)
		}
		if _, err := fmt.Fprintf(w, "%s%s %s\n", indent, label, s.Muted(rest)); err != nil {
			return err
		}
	}
	return scanner.Err()
}
