// Package format writes generated statements as a SQL script.
//
// The ddl package returns bare statements. Before they are printed or saved as
// a migration file each one is terminated and placed on its own line:
//
//	stmts, _ := ddl.Plan(dialect.MySQL, ddl.Rename{From: "foo", To: "bar"})
//
//	f := format.New(format.DefaultOptions())
//	_ = f.Header(os.Stdout, dialect.MySQL, ddl.Rename{From: "foo", To: "bar"})
//	_ = f.Format(os.Stdout, stmts...)
//
// Output:
//
//	-- renamer: rename tables on mysql
//	--   foo -> bar
//	ALTER TABLE foo RENAME TO bar;
//
// Statements that already end with the terminator, such as Oracle's trigger
// body, are written unchanged.
package format
