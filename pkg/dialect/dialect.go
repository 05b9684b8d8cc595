// Package dialect defines the closed set of SQL dialects renamer can generate
// statements for.
//
// Dialects are identified on the command line and in renamer.yaml by a short
// lower case id:
//
//	d, err := dialect.Parse("oracle")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Println(d) // oracle
package dialect

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Dialect is a named SQL variant. The zero value is Unknown and is never a
// valid target.
type Dialect int

const (
	Unknown Dialect = iota
	H2
	MySQL
	PostgreSQL
	MSSQL
	Oracle
)

// ErrUnknownDialect is returned when a dialect id cannot be resolved.
var ErrUnknownDialect = errors.New("unknown dialect")

var (
	ids = map[Dialect]string{
		H2:         "h2",
		MySQL:      "mysql",
		PostgreSQL: "postgresql",
		MSSQL:      "mssql",
		Oracle:     "oracle",
	}

	aliases = map[string]Dialect{
		"h2":         H2,
		"mysql":      MySQL,
		"postgresql": PostgreSQL,
		"postgres":   PostgreSQL,
		"mssql":      MSSQL,
		"sqlserver":  MSSQL,
		"oracle":     Oracle,
	}
)

// All returns every supported dialect in declaration order.
func All() []Dialect {
	return []Dialect{H2, MySQL, PostgreSQL, MSSQL, Oracle}
}

// Parse resolves a dialect id. Matching is case-insensitive and ignores
// surrounding whitespace; "postgres" and "sqlserver" are accepted as aliases.
func Parse(id string) (Dialect, error) {
	if d, ok := aliases[strings.ToLower(strings.TrimSpace(id))]; ok {
		return d, nil
	}

	return Unknown, errors.Wrapf(ErrUnknownDialect, "%q (supported: %s)", id, strings.Join(IDs(), ", "))
}

// IDs returns the canonical ids of all supported dialects.
func IDs() []string {
	all := All()
	out := make([]string, len(all))
	for i, d := range all {
		out[i] = d.String()
	}
	return out
}

// Valid reports whether d is one of the supported dialects.
func (d Dialect) Valid() bool {
	_, ok := ids[d]
	return ok
}

// String returns the canonical id of the dialect.
func (d Dialect) String() string {
	if id, ok := ids[d]; ok {
		return id
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (d Dialect) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, errors.Wrapf(ErrUnknownDialect, "%d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Dialect) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler so dialects can be declared in
// renamer.yaml by id.
func (d *Dialect) UnmarshalYAML(value *yaml.Node) error {
	var id string
	if err := value.Decode(&id); err != nil {
		return errors.Wrap(err, "dialect must be a string")
	}

	return d.UnmarshalText([]byte(id))
}
