package dialect_test

import (
	"testing"

	"github.com/pkg/errors"
	. "github.com/pseudomuto/renamer/pkg/dialect"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Dialect
	}{
		{input: "h2", expected: H2},
		{input: "H2", expected: H2},
		{input: "mysql", expected: MySQL},
		{input: "MySQL", expected: MySQL},
		{input: "postgresql", expected: PostgreSQL},
		{input: "postgres", expected: PostgreSQL},
		{input: "mssql", expected: MSSQL},
		{input: "sqlserver", expected: MSSQL},
		{input: "oracle", expected: Oracle},
		{input: "  Oracle ", expected: Oracle},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := Parse(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, d)
		})
	}
}

func TestParse_Unknown(t *testing.T) {
	for _, input := range []string{"", "sqlite", "db2", "unknown"} {
		t.Run(input, func(t *testing.T) {
			d, err := Parse(input)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrUnknownDialect))
			require.Equal(t, Unknown, d)
			require.Contains(t, err.Error(), "supported: h2, mysql, postgresql, mssql, oracle")
		})
	}
}

func TestDialect_String(t *testing.T) {
	require.Equal(t, []string{"h2", "mysql", "postgresql", "mssql", "oracle"}, IDs())
	require.Equal(t, "unknown", Unknown.String())
	require.Equal(t, "unknown", Dialect(42).String())
}

func TestDialect_Valid(t *testing.T) {
	for _, d := range All() {
		require.True(t, d.Valid(), d.String())
	}

	require.False(t, Unknown.Valid())
	require.False(t, Dialect(-1).Valid())
}

func TestDialect_RoundTripsThroughText(t *testing.T) {
	for _, d := range All() {
		text, err := d.MarshalText()
		require.NoError(t, err)

		var parsed Dialect
		require.NoError(t, parsed.UnmarshalText(text))
		require.Equal(t, d, parsed)
	}

	_, err := Unknown.MarshalText()
	require.ErrorIs(t, err, ErrUnknownDialect)
}

func TestDialect_UnmarshalYAML(t *testing.T) {
	var doc struct {
		Dialect Dialect `yaml:"dialect"`
	}

	require.NoError(t, yaml.Unmarshal([]byte("dialect: oracle\n"), &doc))
	require.Equal(t, Oracle, doc.Dialect)

	err := yaml.Unmarshal([]byte("dialect: sybase\n"), &doc)
	require.ErrorIs(t, err, ErrUnknownDialect)

	err = yaml.Unmarshal([]byte("dialect: [oracle]\n"), &doc)
	require.Error(t, err)
	require.Contains(t, err.Error(), "dialect must be a string")
}
