package ddl

import (
	"github.com/pkg/errors"
	"github.com/pseudomuto/renamer/pkg/dialect"
	"github.com/pseudomuto/renamer/pkg/utils"
)

const (
	oracleSequenceSuffix = "seq"
	oracleTriggerSuffix  = "idt"
)

// RenameTableBuilder generates the statements renaming a table on a single
// dialect. The zero value is not usable; create one with NewRenameTableBuilder.
type RenameTableBuilder struct {
	dialect dialect.Dialect
	name    string
	newName string
}

// NewRenameTableBuilder returns a builder targeting d.
func NewRenameTableBuilder(d dialect.Dialect) *RenameTableBuilder {
	return &RenameTableBuilder{dialect: d}
}

// SetName sets the current name of the table. It is validated by Build.
func (b *RenameTableBuilder) SetName(name string) *RenameTableBuilder {
	b.name = name
	return b
}

// SetNewName sets the name the table is renamed to. It is validated by Build.
func (b *RenameTableBuilder) SetNewName(name string) *RenameTableBuilder {
	b.newName = name
	return b
}

// Build validates both names and returns the statements to execute, in order.
// On error no statements are returned.
func (b *RenameTableBuilder) Build() ([]string, error) {
	if err := ValidateTableName(b.name); err != nil {
		return nil, err
	}
	if err := ValidateTableName(b.newName); err != nil {
		return nil, err
	}

	switch b.dialect {
	case dialect.H2, dialect.MySQL, dialect.PostgreSQL:
		return []string{alterTableRename(b.name, b.newName)}, nil
	case dialect.MSSQL:
		return []string{spRename(b.name, b.newName)}, nil
	case dialect.Oracle:
		return oracleRename(b.name, b.newName), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedDialect, "%s", b.dialect)
	}
}

// ValidateTableName returns an *InvalidTableNameError when name does not
// satisfy the identifier rule.
func ValidateTableName(name string) error {
	if !utils.IsValidTableName(name) {
		return &InvalidTableNameError{Name: name}
	}
	return nil
}

// OracleSequenceName returns the name of the sequence backing the id column of
// table on Oracle.
func OracleSequenceName(table string) string {
	return utils.SuffixIdentifier(table, oracleSequenceSuffix)
}

// OracleTriggerName returns the name of the trigger populating the id column
// of table on Oracle.
func OracleTriggerName(table string) string {
	return utils.SuffixIdentifier(table, oracleTriggerSuffix)
}

func alterTableRename(name, newName string) string {
	return utils.NewSQLBuilder().
		Alter("TABLE").
		Name(name).
		Rename("").
		To(newName).
		String()
}

func spRename(name, newName string) string {
	return utils.NewSQLBuilder().
		Exec("sp_rename").
		Quoted(name, newName).
		String()
}

// oracleRename drops the id trigger before the table moves and recreates it
// against the renamed table and sequence afterwards.
func oracleRename(name, newName string) []string {
	return []string{
		utils.NewSQLBuilder().Drop("TRIGGER").Name(OracleTriggerName(name)).String(),
		utils.NewSQLBuilder().Rename("").Name(name).To(newName).String(),
		utils.NewSQLBuilder().Rename("").Name(OracleSequenceName(name)).To(OracleSequenceName(newName)).String(),
		oracleIDTrigger(newName),
	}
}

func oracleIDTrigger(table string) string {
	return utils.NewSQLBuilder().
		CreateOrReplace("TRIGGER").
		Name(OracleTriggerName(table)).
		Raw("BEFORE INSERT ON").
		Name(table).
		Raw("FOR EACH ROW BEGIN IF :new.id IS null THEN SELECT").
		Raw(OracleSequenceName(table) + ".nextval").
		Raw("INTO :new.id FROM dual; END IF; END;").
		String()
}
