// Package ddl generates the SQL statements needed to rename tables on each
// supported dialect.
//
// Builders are plain values: configure the names, then call Build. Names are
// only validated when Build runs, so setters can be called in any order.
//
//	stmts, err := ddl.NewRenameTableBuilder(dialect.Oracle).
//		SetName("foo").
//		SetNewName("bar").
//		Build()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, stmt := range stmts {
//		fmt.Println(stmt)
//	}
//
// Output:
//
//	DROP TRIGGER foo_idt
//	RENAME foo TO bar
//	RENAME foo_seq TO bar_seq
//	CREATE OR REPLACE TRIGGER bar_idt BEFORE INSERT ON bar FOR EACH ROW BEGIN IF :new.id IS null THEN SELECT bar_seq.nextval INTO :new.id FROM dual; END IF; END;
//
// Oracle has no identity columns in the schemas renamer targets. Auto-increment
// ids are emulated with a <table>_seq sequence and a <table>_idt trigger, both
// of which are renamed along with the table.
//
// Plan builds several renames at once and is what the CLI uses.
package ddl
