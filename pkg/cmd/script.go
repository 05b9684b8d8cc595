package cmd

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/pseudomuto/renamer/pkg/config"
	"github.com/pseudomuto/renamer/pkg/format"
	"github.com/pseudomuto/renamer/pkg/parser"
	"github.com/urfave/cli/v3"
)

// script creates a CLI command that plans every rename found in a rename
// script (see the parser package for the syntax).
//
// Examples:
//
//	# Print the statements for MSSQL
//	renamer script --dialect mssql db/renames.sql
//
//	# Store them as a migration file
//	renamer script -D oracle -w db/renames.sql
func script(cfg *config.Config, f *format.Formatter) *cli.Command {
	return &cli.Command{
		Name:      "script",
		Usage:     "Print the statements for a rename script",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			dialectFlag(),
			writeFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("exactly one path argument is required")
			}

			d, err := resolveDialect(cmd, cfg)
			if err != nil {
				return err
			}

			path := cmd.Args().First()
			s, err := parser.ParseFile(path)
			if err != nil {
				return err
			}

			renames := s.Renames()
			slog.Info("Planning renames", "dialect", d, "path", path, "count", len(renames))

			return emit(cmd.Writer, f, d, renames, cmd.Bool("write"), migrationDir(cfg))
		},
	}
}
