package format_test

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/pseudomuto/renamer/pkg/ddl"
	"github.com/pseudomuto/renamer/pkg/dialect"
	. "github.com/pseudomuto/renamer/pkg/format"
	"github.com/stretchr/testify/require"
)

func TestFormatter_Statement(t *testing.T) {
	f := NewDefault()

	require.Equal(t, "ALTER TABLE foo RENAME TO bar;", f.Statement("ALTER TABLE foo RENAME TO bar"))
	require.Equal(t, "END IF; END;", f.Statement("END IF; END;"))
	require.Equal(t, "DROP TRIGGER foo_idt;", f.Statement("  DROP TRIGGER foo_idt \n"))
	require.Empty(t, f.Statement("   "))

	raw := New(&FormatterOptions{})
	require.Equal(t, "RENAME foo TO bar", raw.Statement("RENAME foo TO bar"))
}

func TestFormatter_Format(t *testing.T) {
	tests := []struct {
		name       string
		options    *FormatterOptions
		statements []string
		expected   string
	}{
		{
			name:     "no statements",
			expected: "",
		},
		{
			name:       "single statement",
			statements: []string{"ALTER TABLE foo RENAME TO bar"},
			expected:   "ALTER TABLE foo RENAME TO bar;\n",
		},
		{
			name:       "skips empty statements",
			statements: []string{"", "RENAME a TO b", " "},
			expected:   "RENAME a TO b;\n",
		},
		{
			name:       "blank lines",
			options:    &FormatterOptions{Terminator: ";", BlankLines: true},
			statements: []string{"RENAME a TO b", "RENAME c TO d"},
			expected:   "RENAME a TO b;\n\nRENAME c TO d;\n",
		},
		{
			name:       "nil options use defaults",
			statements: []string{"RENAME a TO b", "RENAME c TO d"},
			expected:   "RENAME a TO b;\nRENAME c TO d;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, New(tt.options).Format(&buf, tt.statements...))
			require.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestFormatter_ForDialect(t *testing.T) {
	trigger := "CREATE OR REPLACE TRIGGER b_idt BEFORE INSERT ON b FOR EACH ROW BEGIN IF :new.id IS null THEN SELECT b_seq.nextval INTO :new.id FROM dual; END IF; END;"
	stmts := []string{trigger, "DROP TRIGGER c_idt"}

	t.Run("oracle closes blocks", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewDefault().ForDialect(dialect.Oracle).Format(&buf, stmts...))
		require.Equal(t, trigger+"\n/\nDROP TRIGGER c_idt;\n", buf.String())
	})

	t.Run("oracle with blank lines", func(t *testing.T) {
		f := New(&FormatterOptions{Terminator: ";", BlankLines: true}).ForDialect(dialect.Oracle)

		var buf bytes.Buffer
		require.NoError(t, f.Format(&buf, stmts...))
		require.Equal(t, trigger+"\n/\n\nDROP TRIGGER c_idt;\n", buf.String())
	})

	t.Run("other dialects unchanged", func(t *testing.T) {
		for _, d := range []dialect.Dialect{dialect.H2, dialect.MySQL, dialect.PostgreSQL, dialect.MSSQL} {
			var buf bytes.Buffer
			require.NoError(t, NewDefault().ForDialect(d).Format(&buf, stmts...))
			require.Equal(t, trigger+"\nDROP TRIGGER c_idt;\n", buf.String())
		}
	})

	t.Run("does not modify receiver", func(t *testing.T) {
		f := NewDefault()
		_ = f.ForDialect(dialect.Oracle)

		var buf bytes.Buffer
		require.NoError(t, f.Format(&buf, trigger))
		require.Equal(t, trigger+"\n", buf.String())
	})
}

func TestFormatter_Header(t *testing.T) {
	var buf bytes.Buffer
	err := NewDefault().Header(&buf, dialect.PostgreSQL,
		ddl.Rename{From: "foo", To: "bar"},
		ddl.Rename{From: "a", To: "b"},
	)
	require.NoError(t, err)
	require.Equal(t, "-- renamer: rename tables on postgresql\n--   foo -> bar\n--   a -> b\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestFormatter_WriteErrors(t *testing.T) {
	err := Format(failingWriter{}, "RENAME a TO b")
	require.ErrorContains(t, err, "failed to write statement: disk full")

	err = NewDefault().Header(failingWriter{}, dialect.H2)
	require.ErrorContains(t, err, "failed to write header")
}
