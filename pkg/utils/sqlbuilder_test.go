package utils_test

import (
	"testing"

	"github.com/pseudomuto/renamer/pkg/utils"
	"github.com/stretchr/testify/require"
)

func TestSQLBuilder(t *testing.T) {
	tests := []struct {
		name     string
		builder  func() *utils.SQLBuilder
		expected string
	}{
		{
			name:     "empty",
			builder:  utils.NewSQLBuilder,
			expected: "",
		},
		{
			name: "ALTER TABLE RENAME TO",
			builder: func() *utils.SQLBuilder {
				return utils.NewSQLBuilder().Alter("TABLE").Name("foo").Rename("").To("bar")
			},
			expected: "ALTER TABLE foo RENAME TO bar",
		},
		{
			name: "RENAME TABLE",
			builder: func() *utils.SQLBuilder {
				return utils.NewSQLBuilder().Rename("TABLE").Name("foo").To("bar")
			},
			expected: "RENAME TABLE foo TO bar",
		},
		{
			name: "DROP TRIGGER",
			builder: func() *utils.SQLBuilder {
				return utils.NewSQLBuilder().Drop("TRIGGER").Name("foo_idt")
			},
			expected: "DROP TRIGGER foo_idt",
		},
		{
			name: "EXEC with quoted arguments",
			builder: func() *utils.SQLBuilder {
				return utils.NewSQLBuilder().Exec("sp_rename").Quoted("foo", "bar")
			},
			expected: "EXEC sp_rename 'foo', 'bar'",
		},
		{
			name: "quoted value with quote",
			builder: func() *utils.SQLBuilder {
				return utils.NewSQLBuilder().Raw("SELECT").Quoted("it's")
			},
			expected: "SELECT 'it''s'",
		},
		{
			name: "CREATE OR REPLACE with raw body",
			builder: func() *utils.SQLBuilder {
				return utils.NewSQLBuilder().CreateOrReplace("TRIGGER").Name("t").Raw("BEFORE INSERT ON").Name("x")
			},
			expected: "CREATE OR REPLACE TRIGGER t BEFORE INSERT ON x",
		},
		{
			name: "empty parts are skipped",
			builder: func() *utils.SQLBuilder {
				return utils.NewSQLBuilder().Drop("TRIGGER").Name("").Raw("").To("").Quoted().Name("t")
			},
			expected: "DROP TRIGGER t",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.builder().String())
		})
	}
}
