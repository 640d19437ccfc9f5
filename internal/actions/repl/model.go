package repl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/footprint-tools/argtree/internal/actions/resolving"
	"github.com/footprint-tools/argtree/internal/catalog"
	"github.com/footprint-tools/argtree/internal/domain"
	"github.com/footprint-tools/argtree/internal/usage"
)

const maxOutputLines = 500

type recordFunc func(command string, tokens []string, o resolving.Outcome, err error)

// model is the Bubble Tea model for the console
type model struct {
	engine *resolving.Engine
	record recordFunc
	styler domain.Styler

	// reload reads the catalog again after changes signals an edit.
	reload  func() (*catalog.Catalog, error)
	changes <-chan struct{}

	input textinput.Model
	help  help.Model
	keys  keyMap

	// Output, oldest first
	lines []string

	// Submitted input, oldest first. recall indexes into it while
	// browsing with up/down and equals len(entered) otherwise.
	entered []string
	recall  int

	height   int
	quitting bool
}

func newModel(engine *resolving.Engine, styler domain.Styler, record recordFunc) model {
	ti := textinput.New()
	ti.Prompt = "argtree> "
	ti.Placeholder = "command args..."
	ti.Focus()

	return model{
		engine: engine,
		record: record,
		styler: styler,
		input:  ti,
		help:   help.New(),
		keys:   defaultKeyMap(),
	}
}

// Init implements tea.Model
func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForChange(m.changes))
}

// Update implements tea.Model
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = msg.Width - len(m.input.Prompt) - 1
		return m, nil

	case catalogChangedMsg:
		m.reloadCatalog()
		return m, waitForChange(m.changes)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Prev):
			m.browse(-1)
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.browse(1)
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.lines = nil
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if line == "" {
		return m, nil
	}

	m.entered = append(m.entered, line)
	m.recall = len(m.entered)

	if line == "exit" || line == "quit" {
		m.quitting = true
		return m, tea.Quit
	}

	m.appendLines(m.styler.Muted("> " + line))
	m.appendLines(m.evaluate(line)...)
	return m, nil
}

// evaluate resolves one line: the first word names the command and the
// rest is its input.
func (m model) evaluate(line string) []string {
	fields := strings.Fields(line)
	command, tokens := fields[0], fields[1:]

	outcome, err := m.engine.Resolve(command, tokens)
	if m.record != nil {
		m.record(command, tokens, outcome, err)
	}
	if err != nil {
		var ue *usage.Error
		if errors.As(err, &ue) {
			return append([]string{m.styler.Error(ue.Message)}, ue.Hints...)
		}
		return []string{m.styler.Error(err.Error())}
	}

	view := resolving.View(outcome)
	out := []string{fmt.Sprintf("%s %s", m.styler.Success(view.Usage), m.styler.Muted(fmt.Sprintf("(variant %d)", view.Variant)))}
	for _, a := range view.Args {
		out = append(out, fmt.Sprintf("  %s = %v %s", a.Name, a.Value, m.styler.Muted(a.Type)))
	}
	return out
}

func (m *model) reloadCatalog() {
	if m.reload == nil {
		return
	}
	cat, err := m.reload()
	if err != nil {
		m.appendLines(m.styler.Warning("catalog not reloaded: " + err.Error()))
		return
	}
	m.engine.Reload(cat)
	m.appendLines(m.styler.Muted(fmt.Sprintf("catalog reloaded, %d command(s)", len(cat.Commands))))
}

func (m *model) appendLines(lines ...string) {
	m.lines = append(m.lines, lines...)
	if extra := len(m.lines) - maxOutputLines; extra > 0 {
		m.lines = m.lines[extra:]
	}
}

func (m *model) browse(delta int) {
	if len(m.entered) == 0 {
		return
	}
	m.recall = max(0, min(len(m.entered), m.recall+delta))
	if m.recall == len(m.entered) {
		m.input.SetValue("")
		return
	}
	m.input.SetValue(m.entered[m.recall])
	m.input.CursorEnd()
}

// View implements tea.Model
func (m model) View() string {
	if m.quitting {
		return ""
	}

	lines := m.lines
	// Reserve rows for the prompt, a spacer and the help line.
	if m.height > 3 && len(lines) > m.height-3 {
		lines = lines[len(lines)-(m.height-3):]
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
