package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/pseudomuto/renamer/pkg/config"
	"github.com/pseudomuto/renamer/pkg/consts"
	"github.com/pseudomuto/renamer/pkg/ddl"
	"github.com/pseudomuto/renamer/pkg/dialect"
	"github.com/pseudomuto/renamer/pkg/format"
	"github.com/urfave/cli/v3"
)

// now is swapped out in tests to get stable migration file names.
var now = time.Now

// createMigration creates a new migration file, failing if path already exists.
var createMigration = func(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, consts.ModeFile)
}

func dialectFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "dialect",
		Aliases: []string{"D"},
		Usage:   "the target dialect (h2, mysql, postgresql, mssql, oracle)",
		Sources: cli.EnvVars("RENAMER_DIALECT"),
		Config: cli.StringConfig{
			TrimSpace: true,
		},
	}
}

func writeFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:    "write",
		Aliases: []string{"w"},
		Usage:   "Write a migration file to the configured directory instead of stdout",
	}
}

// resolveDialect picks the dialect from the --dialect flag, then the config
// file, then falls back to consts.DefaultDialect.
func resolveDialect(cmd *cli.Command, cfg *config.Config) (dialect.Dialect, error) {
	if cmd.IsSet("dialect") {
		return dialect.Parse(cmd.String("dialect"))
	}

	if cfg != nil && cfg.Dialect.Valid() {
		return cfg.Dialect, nil
	}

	return consts.DefaultDialect, nil
}

func migrationDir(cfg *config.Config) string {
	if cfg != nil && cfg.Dir != "" {
		return cfg.Dir
	}
	return consts.DefaultMigrationDir
}

// emit plans the renames and either prints the statements or, when write is
// set, stores them as a new migration file under dir.
func emit(w io.Writer, f *format.Formatter, d dialect.Dialect, renames []ddl.Rename, write bool, dir string) error {
	stmts, err := ddl.Plan(d, renames...)
	if err != nil {
		return err
	}

	f = f.ForDialect(d)
	if !write {
		return f.Format(w, stmts...)
	}

	path, err := writeMigration(f, d, renames, stmts, dir)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "Wrote %d statements to %s\n", len(stmts), path)
	return err
}

func writeMigration(f *format.Formatter, d dialect.Dialect, renames []ddl.Rename, stmts []string, dir string) (string, error) {
	if err := os.MkdirAll(dir, consts.ModeDir); err != nil {
		return "", errors.Wrapf(err, "failed to create migration directory: %s", dir)
	}

	version := now().UTC().Format(consts.MigrationTimeFormat)
	path := filepath.Join(dir, version+"_rename_tables.sql")

	file, err := createMigration(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to create migration file: %s", path)
	}

	if err := writeScript(file, f, d, renames, stmts); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return "", errors.Wrapf(err, "failed to write migration file: %s", path)
	}

	if err := file.Close(); err != nil {
		_ = os.Remove(path)
		return "", errors.Wrapf(err, "failed to write migration file: %s", path)
	}

	return path, nil
}

func writeScript(w io.Writer, f *format.Formatter, d dialect.Dialect, renames []ddl.Rename, stmts []string) error {
	if err := f.Header(w, d, renames...); err != nil {
		return err
	}
	return f.Format(w, stmts...)
}

func requireConfig(cfg *config.Config) func(context.Context, *cli.Command) (context.Context, error) {
	return func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
		if cfg == nil {
			return ctx, errors.New(consts.ConfigFile + " not found")
		}

		return ctx, nil
	}
}
