package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/footprint-tools/argtree/internal/app"
	"github.com/footprint-tools/argtree/internal/cli"
	"github.com/footprint-tools/argtree/internal/config"
	"github.com/footprint-tools/argtree/internal/dispatchers"
	"github.com/footprint-tools/argtree/internal/usage"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	tokens, rawFlags := cli.SplitArgs(args)
	flags := dispatchers.NewParsedFlags(rawFlags)

	cfg, _ := config.GetAll()
	opts := app.DefaultOptions(cfg)
	opts.Output = stdout
	// Enable styling if stdout is a terminal and --no-color is not set
	opts.StyleEnabled = opts.StyleEnabled && isTerminal(stdout) && !flags.Has("--no-color")

	application, err := app.New(opts)
	if err != nil {
		return report(stderr, err)
	}
	defer func() { _ = app.Close(application) }()

	d, err := cli.Build(application)
	if err != nil {
		return report(stderr, err)
	}

	res, err := d.Dispatch(tokens, flags)
	if err != nil {
		return report(stderr, err)
	}

	if err := res.Execute(); err != nil {
		return report(stderr, err)
	}

	// Non-zero when the resolution asks for it, e.g. argtree with no args
	return res.ExitCode
}

func report(w io.Writer, err error) int {
	var ue *usage.Error
	if errors.As(err, &ue) {
		_, _ = fmt.Fprintln(w, ue.Detail())
		return ue.ExitCode()
	}
	_, _ = fmt.Fprintf(w, "argtree: %v\n", err)
	return 1
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
