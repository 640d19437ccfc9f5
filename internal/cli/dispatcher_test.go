package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/argtree/internal/dispatchers"
	"github.com/footprint-tools/argtree/internal/ui/style"
	"github.com/footprint-tools/argtree/internal/usage"
)

type call struct {
	pattern string
	args    []any
}

func testDispatcher(t *testing.T) (*Dispatcher, *[]call) {
	t.Helper()
	var calls []call
	action := func(pattern string) Action {
		return func(args []any, _ *dispatchers.ParsedFlags) error {
			calls = append(calls, call{pattern, args})
			return nil
		}
	}

	patterns := []struct {
		pattern  string
		category Category
	}{
		{"greet <name:word>", CategoryResolve},
		{"greet", CategoryResolve},
		{"add <a:int> <b:int>", CategoryInspect},
		{"config get <key:word>", CategoryConfig},
		{"help <topic:string...>", CategoryInfo},
		{"help", CategoryInfo},
	}
	var commands []Command
	for _, p := range patterns {
		commands = append(commands, Command{
			Pattern:  p.pattern,
			Summary:  "summary of " + p.pattern,
			Category: p.category,
			Action:   action(p.pattern),
		})
	}

	d, err := NewDispatcher(commands, nil)
	require.NoError(t, err)
	return d, &calls
}

func dispatch(t *testing.T, d *Dispatcher, args ...string) (Resolution, error) {
	t.Helper()
	tokens, flags := SplitArgs(args)
	return d.Dispatch(tokens, dispatchers.NewParsedFlags(flags))
}

func TestDispatch(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantPattern string
		wantArgs    []any
	}{
		{"placeholder", []string{"greet", "bob"}, "greet <name:word>", []any{"bob"}},
		{"bare word", []string{"greet"}, "greet", nil},
		{"case insensitive literal", []string{"GREET"}, "greet", nil},
		{"typed args", []string{"add", "1", "2"}, "add <a:int> <b:int>", []any{1, 2}},
		{"literals dropped", []string{"config", "get", "color"}, "config get <key:word>", []any{"color"}},
		{"flags ignored", []string{"greet", "--json", "bob"}, "greet <name:word>", []any{"bob"}},
		{"negative numbers are not flags", []string{"add", "-1", "-2"}, "add <a:int> <b:int>", []any{-1, -2}},
		{"varargs keeps raw tokens", []string{"help", "config get", ""}, "help <topic:string...>", []any{[]string{"config get", ""}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, calls := testDispatcher(t)

			res, err := dispatch(t, d, tt.args...)
			require.NoError(t, err)
			require.Equal(t, tt.wantPattern, res.Command.Pattern)
			require.Equal(t, tt.wantArgs, res.Args)
			require.Zero(t, res.ExitCode)

			require.NoError(t, res.Execute())
			require.Equal(t, []call{{tt.wantPattern, tt.wantArgs}}, *calls)
		})
	}
}

func TestDispatch_Help(t *testing.T) {
	d, _ := testDispatcher(t)

	res, err := dispatch(t, d)
	require.NoError(t, err)
	require.Equal(t, "help", res.Command.Pattern)
	require.Equal(t, 1, res.ExitCode)

	res, err = dispatch(t, d, "--help")
	require.NoError(t, err)
	require.Equal(t, "help", res.Command.Pattern)
	require.Zero(t, res.ExitCode)

	res, err = dispatch(t, d, "config", "get", "-h")
	require.NoError(t, err)
	require.Equal(t, "help <topic:string...>", res.Command.Pattern)
	require.Equal(t, []any{[]string{"config", "get"}}, res.Args)
}

func TestDispatch_UnknownFlag(t *testing.T) {
	d, _ := testDispatcher(t)

	_, err := dispatch(t, d, "greet", "--verbose")

	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	require.Equal(t, usage.ErrInvalidFlag, ue.Kind)
	require.Contains(t, ue.Message, "--verbose")
	require.Equal(t, 2, ue.ExitCode())
}

func TestDispatch_NotACommand(t *testing.T) {
	d, _ := testDispatcher(t)

	_, err := dispatch(t, d, "gret", "bob")

	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	require.Equal(t, usage.ErrUnknownCommand, ue.Kind)
	require.Contains(t, ue.Message, "'gret' is not an argtree command")
	require.Equal(t, []string{"Did you mean 'greet'?"}, ue.Hints)
}

func TestDispatch_NoMatchingVariant(t *testing.T) {
	d, _ := testDispatcher(t)

	_, err := dispatch(t, d, "add", "1", "x")

	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	require.Equal(t, usage.ErrNoMatchingVariant, ue.Kind)
	require.ErrorIs(t, err, dispatchers.ErrNoMatch)
	require.Equal(t, []string{"Closest usage:", "    argtree add <a> <b>"}, ue.Hints)
}

func TestDispatch_NoMatchTooManyTokens(t *testing.T) {
	d, _ := testDispatcher(t)

	_, err := dispatch(t, d, "greet", "a", "b")

	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	require.Contains(t, ue.Hints, "    argtree greet <name>")
}

func TestNewDispatcher_Invalid(t *testing.T) {
	noop := func([]any, *dispatchers.ParsedFlags) error { return nil }

	_, err := NewDispatcher([]Command{{Pattern: "<x:int>", Action: noop}}, nil)
	require.ErrorContains(t, err, "must start with a command word")

	_, err = NewDispatcher([]Command{{Pattern: "x <y:color>", Action: noop}}, nil)
	require.ErrorContains(t, err, "unknown type")

	_, err = NewDispatcher([]Command{{Pattern: "x <y:string...> <z:int>", Action: noop}}, nil)
	require.Error(t, err)
}

func TestDispatcher_Dump(t *testing.T) {
	d, _ := testDispatcher(t)

	var buf bytes.Buffer
	require.NoError(t, d.Dump(&buf))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "*root*"))
	require.Contains(t, out, "  greet varargs: false arg: 0 input: 0")
	require.Contains(t, out, "string... varargs: true")
	require.Len(t, d.Commands(), 6)
}

func TestWriteHelp_Overview(t *testing.T) {
	d, _ := testDispatcher(t)

	var buf bytes.Buffer
	require.NoError(t, d.WriteHelp(&buf, style.NopStyler{}, ""))

	out := buf.String()
	for _, want := range []string{
		"Usage:",
		"Resolve input:",
		"Inspect:",
		"Configuration:",
		"Info:",
		"Flags:",
		"argtree greet <name>",
		"argtree config get <key>",
		"--catalog=<path>",
	} {
		require.Contains(t, out, want)
	}
	require.Less(t, strings.Index(out, "Resolve input:"), strings.Index(out, "Inspect:"))
}

func TestWriteHelp_Topic(t *testing.T) {
	d, _ := testDispatcher(t)

	var buf bytes.Buffer
	require.NoError(t, d.WriteHelp(&buf, style.NopStyler{}, "greet"))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "argtree greet <name>")
	require.Contains(t, lines[1], "argtree greet")

	buf.Reset()
	require.NoError(t, d.WriteHelp(&buf, style.NopStyler{}, "config get"))
	require.Contains(t, buf.String(), "argtree config get <key>")

	err := d.WriteHelp(&buf, style.NopStyler{}, "gret")
	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	require.Equal(t, []string{"Did you mean 'greet'?"}, ue.Hints)
}
