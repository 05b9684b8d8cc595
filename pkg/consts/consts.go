package consts

import (
	"os"

	"github.com/pseudomuto/renamer/pkg/dialect"
)

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// ConfigFile is the name of the project configuration file
	ConfigFile = "renamer.yaml"

	// DefaultDialect is used when neither the config nor a flag names one
	DefaultDialect = dialect.H2

	// DefaultMigrationDir is where `plan --write` stores generated scripts
	DefaultMigrationDir = "db/migrations"

	// MigrationTimeFormat is the layout of the version prefix of generated files
	MigrationTimeFormat = "20060102150405"
)
