package cmd

import (
	"context"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"

	"neighbornet/internal/cmd/flags"
	"neighbornet/internal/persistence"
)

var migrateCmd = &cli.Command{
	Name:  "migrate",
	Usage: "Manage the database schema",
	Flags: []cli.Flag{
		flags.DatabaseURL,
	},
	Commands: []*cli.Command{
		{
			Name:  "up",
			Usage: "Apply all pending migrations",
			Action: func(ctx context.Context, c *cli.Command) error {
				return run(ctx, c,
					persistence.Provide(),
					pal.Provide(&persistence.MigrationUpRunner{}),
				)
			},
		},
		{
			Name:  "down",
			Usage: "Roll back the latest migration",
			Action: func(ctx context.Context, c *cli.Command) error {
				return run(ctx, c,
					persistence.Provide(),
					pal.Provide(&persistence.MigrationDownRunner{}),
				)
			},
		},
	},
}
