package cmd

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/pseudomuto/renamer/pkg/config"
	"github.com/pseudomuto/renamer/pkg/ddl"
	"github.com/pseudomuto/renamer/pkg/format"
	"github.com/urfave/cli/v3"
)

// renameCmd creates a CLI command that prints the statements renaming a single
// table.
//
// Examples:
//
//	# Rename on PostgreSQL
//	renamer rename --dialect postgresql users accounts
//
//	# Rename on Oracle, including the id sequence and trigger
//	renamer rename -D oracle users accounts
//
//	# Write a migration file instead of printing
//	renamer rename -D mysql -w users accounts
func renameCmd(cfg *config.Config, f *format.Formatter) *cli.Command {
	return &cli.Command{
		Name:      "rename",
		Usage:     "Print the statements renaming a table",
		ArgsUsage: "<current> <new>",
		Flags: []cli.Flag{
			dialectFlag(),
			writeFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return errors.New("exactly two arguments are required: <current> <new>")
			}

			d, err := resolveDialect(cmd, cfg)
			if err != nil {
				return err
			}

			rename := ddl.Rename{From: cmd.Args().Get(0), To: cmd.Args().Get(1)}
			slog.Info("Renaming table", "dialect", d, "from", rename.From, "to", rename.To)

			return emit(cmd.Writer, f, d, []ddl.Rename{rename}, cmd.Bool("write"), migrationDir(cfg))
		},
	}
}
