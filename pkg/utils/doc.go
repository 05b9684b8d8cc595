// Package utils provides common utility functions used throughout the renamer codebase.
//
// # Identifier Utilities (identifier.go)
//
// Table names are embedded into generated SQL without quoting, so every name
// has to satisfy a single, dialect independent rule: lower case ASCII letters,
// digits and '_' only.
//
//	utils.IsValidTableName("user_roles") // true
//	utils.IsValidTableName("UserRoles")  // false
//	utils.IsValidTableName("")           // false
//
// Oracle emulates auto-increment columns with a sequence and a trigger whose
// names are derived from the table name:
//
//	utils.SuffixIdentifier("users", "seq") // users_seq
//
// # SQLBuilder (sqlbuilder.go)
//
// A small fluent builder used by the ddl package to compose statements:
//
//	sql := utils.NewSQLBuilder().
//		Alter("TABLE").
//		Name("foo").
//		Rename("").
//		To("bar").
//		String()
//	// Output: ALTER TABLE foo RENAME TO bar
//
// Statements are returned without a trailing semicolon. The format package is
// responsible for terminating statements when they are written out.
package utils
