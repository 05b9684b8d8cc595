package parser

import (
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"github.com/pseudomuto/renamer/pkg/ddl"
)

var (
	// scriptLexer defines the lexer for rename scripts
	scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `--[^\r\n]*`},
		{Name: "MultilineComment", Pattern: `/\*[^*]*\*+([^/*][^*]*\*+)*/`},
		{Name: "QuotedIdent", Pattern: `"([^"\\]|\\.)*"`},
		{Name: "Ident", Pattern: `[a-zA-Z0-9_]+`},
		{Name: "Punct", Pattern: `[,;]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	parser = participle.MustBuild[Script](
		participle.Lexer(scriptLexer),
		participle.Elide("Comment", "MultilineComment", "Whitespace"),
		participle.CaseInsensitive("Ident"),
		participle.Unquote("QuotedIdent"),
	)
)

type (
	// Script is a parsed rename script.
	Script struct {
		Statements []*RenameTableStmt `parser:"@@*"`
	}

	// RenameTableStmt represents a RENAME TABLE statement.
	//   RENAME TABLE table1 TO table2[, table3 TO table4 ...];
	RenameTableStmt struct {
		Pos       lexer.Position
		Rename    string         `parser:"'RENAME' 'TABLE'"`
		Renames   []*TableRename `parser:"@@ (',' @@)*"`
		Semicolon bool           `parser:"';'"`
	}

	// TableRename represents a single table rename operation.
	TableRename struct {
		From string `parser:"@(Ident | QuotedIdent)"`
		To   string `parser:"'TO' @(Ident | QuotedIdent)"`
	}
)

// Parse parses a rename script from r.
//
// Example usage:
//
//	f, err := os.Open("renames.sql")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer f.Close()
//
//	script, err := parser.Parse(f)
//	if err != nil {
//		log.Fatalf("Parse error: %v", err)
//	}
//
//	for _, r := range script.Renames() {
//		fmt.Printf("%s -> %s\n", r.From, r.To)
//	}
func Parse(r io.Reader) (*Script, error) {
	script, err := parser.Parse("", r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse rename script")
	}

	return script, nil
}

// ParseString parses a rename script held in a string.
func ParseString(sql string) (*Script, error) {
	return Parse(strings.NewReader(sql))
}

// ParseFile parses the rename script stored at path.
func ParseFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	script, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "in file: %s", path)
	}

	return script, nil
}

// Renames flattens every rename in the script, in source order.
func (s *Script) Renames() []ddl.Rename {
	var out []ddl.Rename
	for _, stmt := range s.Statements {
		for _, r := range stmt.Renames {
			out = append(out, ddl.Rename{From: r.From, To: r.To})
		}
	}

	return out
}
