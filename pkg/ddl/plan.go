package ddl

import (
	"github.com/pkg/errors"
	"github.com/pseudomuto/renamer/pkg/dialect"
)

// Rename is a single table rename request.
type Rename struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Plan returns the statements for all renames, in the order given.
//
// Every rename is validated before anything is generated, so an invalid name
// anywhere in the list yields no statements at all. Renaming the same table
// twice, two tables to the same name, a table to itself, or a cycle such as
// a->b, b->a fails with ErrConflictingRename. Chains such as a->b followed by
// b->c are allowed.
func Plan(d dialect.Dialect, renames ...Rename) ([]string, error) {
	if !d.Valid() {
		return nil, errors.Wrapf(ErrUnsupportedDialect, "%s", d)
	}

	if err := checkRenames(renames); err != nil {
		return nil, err
	}

	stmts := make([]string, 0, len(renames))
	for i, r := range renames {
		out, err := NewRenameTableBuilder(d).SetName(r.From).SetNewName(r.To).Build()
		if err != nil {
			return nil, errors.Wrapf(err, "rename %d (%s -> %s)", i+1, r.From, r.To)
		}

		stmts = append(stmts, out...)
	}

	return stmts, nil
}

func checkRenames(renames []Rename) error {
	sources := make(map[string]int, len(renames))
	targets := make(map[string]int, len(renames))

	for i, r := range renames {
		pos := i + 1
		if err := ValidateTableName(r.From); err != nil {
			return errors.Wrapf(err, "rename %d", pos)
		}
		if err := ValidateTableName(r.To); err != nil {
			return errors.Wrapf(err, "rename %d", pos)
		}
		if r.From == r.To {
			return errors.Wrapf(ErrConflictingRename, "rename %d renames %s to itself", pos, r.From)
		}

		if prev, ok := sources[r.From]; ok {
			return errors.Wrapf(ErrConflictingRename, "table %s renamed by both rename %d and rename %d", r.From, prev, pos)
		}
		if prev, ok := targets[r.To]; ok {
			return errors.Wrapf(ErrConflictingRename, "table %s targeted by both rename %d and rename %d", r.To, prev, pos)
		}

		sources[r.From] = pos
		targets[r.To] = pos
	}

	return checkCycles(renames, sources)
}

// checkCycles rejects renames that lead back to their own source, such as
// a->b, b->a. Sources and targets are unique at this point, so following the
// chain from any rename visits each rename at most once.
func checkCycles(renames []Rename, sources map[string]int) error {
	for i, r := range renames {
		next := r.To
		for range renames {
			pos, ok := sources[next]
			if !ok {
				break
			}
			if next == r.From {
				return errors.Wrapf(ErrConflictingRename, "rename %d (%s -> %s) is part of a cycle", i+1, r.From, r.To)
			}
			next = renames[pos-1].To
		}
	}

	return nil
}
