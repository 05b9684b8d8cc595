package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/pseudomuto/renamer/pkg/cmd"
	"github.com/pseudomuto/renamer/pkg/config"
	"go.uber.org/fx"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	app := fx.New(
		fx.NopLogger,
		fx.Supply(
			os.Args,
			fx.Annotate(context.Background(), fx.As(new(context.Context))),
			&cmd.Version{
				Version:   version,
				Commit:    commit,
				Timestamp: date,
			},
		),
		config.Module,
		cmd.Module,
	)

	if err := app.Err(); err != nil {
		slog.Error("Failed to start renamer", "err", err)
		os.Exit(1)
	}

	app.Run()
}
