package cmd

import (
	"context"
	"fmt"

	"github.com/pseudomuto/renamer/pkg/dialect"
	"github.com/urfave/cli/v3"
)

// dialects lists the supported dialect ids, one per line.
func dialects() *cli.Command {
	return &cli.Command{
		Name:  "dialects",
		Usage: "List the supported dialects",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			for _, id := range dialect.IDs() {
				if _, err := fmt.Fprintln(cmd.Writer, id); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
