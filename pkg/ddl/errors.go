package ddl

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument classifies errors caused by a malformed table name.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedDialect is returned when a builder was created without one
	// of the supported dialects.
	ErrUnsupportedDialect = errors.New("unsupported dialect")

	// ErrConflictingRename is returned by Plan when two renames touch the same
	// source or target table.
	ErrConflictingRename = errors.New("conflicting rename")
)

// InvalidTableNameError reports a table name that fails the identifier rule.
// It matches ErrInvalidArgument with errors.Is.
type InvalidTableNameError struct {
	Name string
}

func (e *InvalidTableNameError) Error() string {
	return fmt.Sprintf("Table name must be lower case and contain only alphanumeric chars or '_', got '%s'", e.Name)
}

// Is makes errors.Is(err, ErrInvalidArgument) succeed.
func (e *InvalidTableNameError) Is(target error) bool {
	return target == ErrInvalidArgument
}
