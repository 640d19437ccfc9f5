// Package repl implements "argtree repl", an interactive console that
// resolves each entered line against the catalog.
package repl

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/footprint-tools/argtree/internal/actions/resolving"
)

type Deps struct {
	resolving.Deps
	IsTerminal func() bool
	Run        func(tea.Model) error
}

// DefaultDeps runs the console on the process terminal.
func DefaultDeps(base resolving.Deps) Deps {
	return Deps{
		Deps: base,
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
		Run: func(m tea.Model) error {
			_, err := tea.NewProgram(m).Run()
			return err
		},
	}
}
