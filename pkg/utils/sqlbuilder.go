package utils

import "strings"

// SQLBuilder provides a fluent interface for building DDL statements. Each call
// appends one or more space separated parts; String joins them.
//
// Example usage:
//
//	sql := NewSQLBuilder().
//		Exec("sp_rename").
//		Quoted("foo", "bar").
//		String()
//	// Output: EXEC sp_rename 'foo', 'bar'
type SQLBuilder struct {
	parts []string
}

// NewSQLBuilder creates a new SQLBuilder instance.
func NewSQLBuilder() *SQLBuilder {
	return &SQLBuilder{
		parts: make([]string, 0, 8),
	}
}

// CreateOrReplace adds a CREATE OR REPLACE clause with the specified object type.
//
// Example:
//
//	builder.CreateOrReplace("TRIGGER")  // CREATE OR REPLACE TRIGGER
func (b *SQLBuilder) CreateOrReplace(objectType string) *SQLBuilder {
	b.parts = append(b.parts, "CREATE", "OR", "REPLACE", objectType)
	return b
}

// Drop adds a DROP clause with the specified object type.
//
// Example:
//
//	builder.Drop("TRIGGER")  // DROP TRIGGER
func (b *SQLBuilder) Drop(objectType string) *SQLBuilder {
	b.parts = append(b.parts, "DROP", objectType)
	return b
}

// Alter adds an ALTER clause with the specified object type.
//
// Example:
//
//	builder.Alter("TABLE")  // ALTER TABLE
func (b *SQLBuilder) Alter(objectType string) *SQLBuilder {
	b.parts = append(b.parts, "ALTER", objectType)
	return b
}

// Rename adds a RENAME clause. The object type is optional since Oracle's
// RENAME and the ALTER TABLE ... RENAME TO form take none.
//
// Example:
//
//	builder.Rename("")       // RENAME
//	builder.Rename("TABLE")  // RENAME TABLE
func (b *SQLBuilder) Rename(objectType string) *SQLBuilder {
	b.parts = append(b.parts, "RENAME")
	if objectType != "" {
		b.parts = append(b.parts, objectType)
	}
	return b
}

// Exec adds an EXEC clause for the given stored procedure.
//
// Example:
//
//	builder.Exec("sp_rename")  // EXEC sp_rename
func (b *SQLBuilder) Exec(procedure string) *SQLBuilder {
	b.parts = append(b.parts, "EXEC", procedure)
	return b
}

// Name adds an object name as is. Names are expected to have been validated
// with IsValidTableName.
func (b *SQLBuilder) Name(name string) *SQLBuilder {
	if name != "" {
		b.parts = append(b.parts, name)
	}
	return b
}

// To adds a TO clause for rename operations.
//
// Example:
//
//	builder.To("new_name")  // TO new_name
func (b *SQLBuilder) To(name string) *SQLBuilder {
	if name != "" {
		b.parts = append(b.parts, "TO", name)
	}
	return b
}

// Quoted adds a comma separated list of single quoted string literals.
// Embedded quotes are doubled.
//
// Example:
//
//	builder.Quoted("foo", "bar")  // 'foo', 'bar'
//	builder.Quoted("it's")        // 'it''s'
func (b *SQLBuilder) Quoted(values ...string) *SQLBuilder {
	if len(values) == 0 {
		return b
	}

	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + strings.ReplaceAll(v, "'", "''") + "'"
	}
	b.parts = append(b.parts, strings.Join(quoted, ", "))
	return b
}

// Raw adds raw SQL text to the builder. Use sparingly for complex constructs
// that don't fit the fluent pattern.
//
// Example:
//
//	builder.Raw("FOR EACH ROW")  // FOR EACH ROW
func (b *SQLBuilder) Raw(sql string) *SQLBuilder {
	if sql != "" {
		b.parts = append(b.parts, sql)
	}
	return b
}

// String builds and returns the final SQL statement. No terminator is added.
func (b *SQLBuilder) String() string {
	return strings.Join(b.parts, " ")
}
