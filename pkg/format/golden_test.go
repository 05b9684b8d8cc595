package format_test

import (
	"bytes"
	"testing"

	"github.com/pseudomuto/renamer/pkg/ddl"
	"github.com/pseudomuto/renamer/pkg/dialect"
	. "github.com/pseudomuto/renamer/pkg/format"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

func TestGoldenFiles(t *testing.T) {
	renames := []ddl.Rename{
		{From: "foo", To: "bar"},
		{From: "users", To: "accounts"},
	}

	for _, d := range dialect.All() {
		t.Run(d.String(), func(t *testing.T) {
			stmts, err := ddl.Plan(d, renames...)
			require.NoError(t, err)

			f := NewDefault().ForDialect(d)

			var buf bytes.Buffer
			require.NoError(t, f.Header(&buf, d, renames...))
			require.NoError(t, f.Format(&buf, stmts...))

			// Golden file at testdata/<dialect>.sql
			golden.Assert(t, buf.String(), d.String()+".sql")
		})
	}
}
