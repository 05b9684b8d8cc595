package cmd

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/pseudomuto/renamer/pkg/config"
	"github.com/pseudomuto/renamer/pkg/consts"
	"github.com/pseudomuto/renamer/pkg/format"
	"github.com/urfave/cli/v3"
)

// plan creates a CLI command that plans the renames listed in renamer.yaml.
// The dialect comes from the --dialect flag when given, otherwise from the
// config file.
//
// Examples:
//
//	# Print the statements
//	renamer plan
//
//	# Write <dir>/<version>_rename_tables.sql
//	renamer plan --write
func plan(cfg *config.Config, f *format.Formatter) *cli.Command {
	return &cli.Command{
		Name:   "plan",
		Usage:  "Print the statements for the renames in " + consts.ConfigFile,
		Before: requireConfig(cfg),
		Flags: []cli.Flag{
			dialectFlag(),
			writeFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if len(cfg.Renames) == 0 {
				return errors.New("no renames configured in " + consts.ConfigFile)
			}

			d, err := resolveDialect(cmd, cfg)
			if err != nil {
				return err
			}

			slog.Info("Planning renames", "dialect", d, "count", len(cfg.Renames))
			return emit(cmd.Writer, f, d, cfg.Renames, cmd.Bool("write"), migrationDir(cfg))
		},
	}
}
