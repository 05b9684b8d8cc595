package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run builds the renamer CLI application from the registered commands and
// runs it once the fx application starts. The process exits with code 1 when
// the command fails.
//
// Example usage:
//
//	renamer rename --dialect oracle users accounts
//	renamer script --dialect mssql renames.sql
//	RENAMER_DIALECT=postgresql renamer plan --write
func Run(p Params) {
	p.Lifecycle.Append(fx.StartHook(func() {
		if err := NewApp(p.Version, p.Commands...).Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
			return
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}

// NewApp returns the root command with the given subcommands.
func NewApp(v *Version, commands ...*cli.Command) *cli.Command {
	if v == nil {
		v = &Version{}
	}

	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", v.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", v.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", v.Timestamp)
	}

	return &cli.Command{
		Name:  "renamer",
		Usage: "Generate the SQL needed to rename tables",
		Description: `renamer emits the statements that rename tables on H2, MySQL,
PostgreSQL, MSSQL and Oracle. On Oracle the id sequence and trigger of each
table are renamed along with it.`,
		Version:  v.Version,
		Commands: commands,
	}
}
