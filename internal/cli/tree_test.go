package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/argtree/internal/app"
	"github.com/footprint-tools/argtree/internal/dispatchers"
	"github.com/footprint-tools/argtree/internal/testutil"
	"github.com/footprint-tools/argtree/internal/usage"
)

const buildCatalog = `
commands:
  - name: ban
    summary: Ban a player
    variants:
      - params:
          - {name: player, type: word}
      - params:
          - {name: player, type: word}
          - {name: reason, type: string, varargs: true}
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	d, err := Build(app.NewForTesting(&out))
	require.NoError(t, err)

	tokens, flags := SplitArgs(args)
	res, err := d.Dispatch(tokens, dispatchers.NewParsedFlags(flags))
	if err != nil {
		return "", err
	}
	err = res.Execute()
	return out.String(), err
}

func TestBuild_Version(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "argtree version dev")
}

func TestBuild_Help(t *testing.T) {
	out, err := run(t, "help")
	require.NoError(t, err)
	for _, want := range []string{
		"argtree resolve <command> <input...>",
		"argtree tree <command>",
		"argtree config set <key> <value...>",
		"argtree repl",
	} {
		require.Contains(t, out, want)
	}

	out, err = run(t, "config", "--help")
	require.NoError(t, err)
	require.Contains(t, out, "argtree config get <key>")
	require.NotContains(t, out, "argtree resolve")
}

func TestBuild_Resolve(t *testing.T) {
	home := testutil.TempHome(t)
	catalogPath := testutil.WriteCatalog(t, home, buildCatalog)

	out, err := run(t, "resolve", "ban", "steve", "spamming", "chat", "--catalog="+catalogPath)
	require.NoError(t, err)
	require.Contains(t, out, "ban <player> <reason...> (variant 1)")
	require.Contains(t, out, "spamming chat")

	out, err = run(t, "resolve", "ban", "steve", "--catalog="+catalogPath)
	require.NoError(t, err)
	require.Contains(t, out, "ban <player> (variant 0)")

	_, err = run(t, "resolve", "ban", "--catalog="+catalogPath)
	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	require.Equal(t, usage.ErrNoMatchingVariant, ue.Kind)
}

func TestBuild_Config(t *testing.T) {
	testutil.TempHome(t)

	out, err := run(t, "config", "get", "history_limit")
	require.NoError(t, err)
	require.Equal(t, "20\n", out)

	_, err = run(t, "config", "set", "history_limit", "5")
	require.NoError(t, err)

	out, err = run(t, "config", "get", "history_limit")
	require.NoError(t, err)
	require.Equal(t, "5\n", out)

	out, err = run(t, "config")
	require.NoError(t, err)
	require.Contains(t, out, "history_limit")

	_, err = run(t, "config", "set", "nope", "1")
	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	require.Equal(t, usage.ErrInvalidConfigKey, ue.Kind)
}

func TestBuild_SelfTree(t *testing.T) {
	out, err := run(t, "tree")
	require.NoError(t, err)
	require.Contains(t, out, "*root*")
	require.Contains(t, out, "resolve varargs: false")
	require.Contains(t, out, "config varargs: false")
}

func TestBuild_HistoryDisabled(t *testing.T) {
	testutil.TempHome(t)

	out, err := run(t, "history")
	require.NoError(t, err)
	require.Contains(t, out, "History is disabled")
}
