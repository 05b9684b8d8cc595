package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/renamer/pkg/consts"
	"github.com/pseudomuto/renamer/pkg/ddl"
	"github.com/pseudomuto/renamer/pkg/dialect"
	"gopkg.in/yaml.v3"
)

// Config represents the project configuration read from renamer.yaml.
type Config struct {
	// Dialect is the target database dialect
	Dialect dialect.Dialect `yaml:"dialect"`

	// Dir specifies the directory where generated migration files are written
	Dir string `yaml:"dir"`

	// Renames lists the tables to rename, in execution order
	Renames []ddl.Rename `yaml:"renames"`
}

// LoadConfig parses a project configuration from the provided io.Reader.
//
// The function expects YAML-formatted configuration data. Missing values are
// filled in with consts.DefaultDialect and consts.DefaultMigrationDir.
//
// Example:
//
//	yamlData := `
//	dialect: postgresql
//	renames:
//	  - from: users
//	    to: accounts
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Printf("Dialect: %s\n", cfg.Dialect)
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal renamer config")
	}

	if cfg.Dialect == dialect.Unknown {
		cfg.Dialect = consts.DefaultDialect
	}
	if cfg.Dir == "" {
		cfg.Dir = consts.DefaultMigrationDir
	}

	return &cfg, nil
}

// LoadConfigFile loads a project configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}
