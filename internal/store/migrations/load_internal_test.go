package migrations

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestLoad_OrdersByVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"sql/10_later.sql": {Data: []byte("SELECT 10;")},
		"sql/2_early.sql":  {Data: []byte("SELECT 2;")},
		"sql/notes.txt":    {Data: []byte("ignored")},
	}

	all, err := load(fsys, "sql")
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "02_early", all[0].String())
	require.Equal(t, "SELECT 10;", all[1].SQL)
}

func TestLoad_RejectsBadFiles(t *testing.T) {
	tests := map[string]fstest.MapFS{
		"expected NN_description.sql": {"sql/create.sql": {}},
		`version "x1"`:                {"sql/x1_create.sql": {}},
		"version 1 used by":           {"sql/1_a.sql": {}, "sql/01_b.sql": {}},
	}
	for want, fsys := range tests {
		_, err := load(fsys, "sql")
		require.ErrorContains(t, err, want)
	}
}
