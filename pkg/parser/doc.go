// Package parser provides a participle-based parser for rename scripts.
//
// A rename script is a list of RENAME TABLE statements, one or more renames per
// statement, each terminated by a semicolon:
//
//	-- move the legacy tables out of the way
//	RENAME TABLE users TO legacy_users;
//	rename table orders to legacy_orders, items to legacy_items;
//
// Keywords are case-insensitive. Table names are captured as written, either
// bare or double quoted, and are not validated here: the ddl package rejects
// names that break the identifier rule when statements are generated, so a
// script containing RENAME TABLE "My Table" TO t parses fine but cannot be
// planned.
//
// Basic usage:
//
//	script, err := parser.ParseString(`RENAME TABLE foo TO bar;`)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	stmts, err := ddl.Plan(dialect.Oracle, script.Renames()...)
//
// Parse errors carry the line and column of the offending token.
package parser
