package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/renamer/pkg/ddl"
	"github.com/pseudomuto/renamer/pkg/dialect"
)

// FormatterOptions controls formatting behavior
type FormatterOptions struct {
	// Terminator is appended to statements that don't already end with it
	Terminator string
	// BlankLines separates statements with an empty line
	BlankLines bool
	// BlockDelimiter is written on its own line after a PL/SQL block (a
	// statement ending in END;)
	BlockDelimiter string
}

// DefaultOptions returns standard formatting options
func DefaultOptions() *FormatterOptions {
	return &FormatterOptions{
		Terminator: ";",
	}
}

// Formatter writes statements with configurable options
type Formatter struct {
	options *FormatterOptions
}

// New creates a new Formatter with the specified options
func New(options *FormatterOptions) *Formatter {
	if options == nil {
		options = DefaultOptions()
	}
	return &Formatter{options: options}
}

// NewDefault creates a new Formatter with default options
func NewDefault() *Formatter {
	return New(DefaultOptions())
}

// ForDialect returns a Formatter for scripts run against d. Oracle clients
// (SQL*Plus, SQLcl, Flyway) need a "/" line to close each PL/SQL block.
func (f *Formatter) ForDialect(d dialect.Dialect) *Formatter {
	opts := *f.options
	if d == dialect.Oracle {
		opts.BlockDelimiter = "/"
	}
	return &Formatter{options: &opts}
}

// Statement returns stmt terminated according to the formatter options.
func (f *Formatter) Statement(stmt string) string {
	stmt = strings.TrimSpace(stmt)
	if stmt == "" || f.options.Terminator == "" || strings.HasSuffix(stmt, f.options.Terminator) {
		return stmt
	}
	return stmt + f.options.Terminator
}

// Format writes each statement on its own line.
func (f *Formatter) Format(w io.Writer, statements ...string) error {
	sep := "\n"
	if f.options.BlankLines {
		sep = "\n\n"
	}

	first := true
	for _, stmt := range statements {
		formatted := f.Statement(stmt)
		if formatted == "" {
			continue
		}

		if !first {
			if _, err := io.WriteString(w, sep); err != nil {
				return errors.Wrap(err, "failed to write statement separator")
			}
		}
		first = false

		if _, err := io.WriteString(w, formatted); err != nil {
			return errors.Wrap(err, "failed to write statement")
		}

		if f.options.BlockDelimiter != "" && isBlock(formatted) {
			if _, err := io.WriteString(w, "\n"+f.options.BlockDelimiter); err != nil {
				return errors.Wrap(err, "failed to write block delimiter")
			}
		}
	}

	if !first {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return errors.Wrap(err, "failed to write final newline")
		}
	}

	return nil
}

func isBlock(stmt string) bool {
	return strings.HasSuffix(strings.ToUpper(stmt), "END;")
}

// Header writes a comment block describing the renames a script performs.
func (f *Formatter) Header(w io.Writer, d dialect.Dialect, renames ...ddl.Rename) error {
	if _, err := fmt.Fprintf(w, "-- renamer: rename tables on %s\n", d); err != nil {
		return errors.Wrap(err, "failed to write header")
	}

	for _, r := range renames {
		if _, err := fmt.Fprintf(w, "--   %s -> %s\n", r.From, r.To); err != nil {
			return errors.Wrap(err, "failed to write header")
		}
	}

	return nil
}

// Format writes statements using the default options (convenience function)
func Format(w io.Writer, statements ...string) error {
	return NewDefault().Format(w, statements...)
}
