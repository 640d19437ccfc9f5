// Package actions holds the small subcommands that need no package of
// their own.
package actions

import (
	"io"
	"os"
	"runtime"

	"github.com/footprint-tools/argtree/internal/app"
)

type actionDependencies struct {
	Out     io.Writer
	Version func() string
	Runtime func() string
}

func defaultDeps(out io.Writer) actionDependencies {
	if out == nil {
		out = os.Stdout
	}
	return actionDependencies{
		Out:     out,
		Version: func() string { return app.Version },
		Runtime: func() string { return runtime.Version() + " " + runtime.GOOS + "/" + runtime.GOARCH },
	}
}
