package cmd

import (
	"context"
	"errors"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"

	"neighbornet/internal/alerts"
	"neighbornet/internal/cmd/flags"
	"neighbornet/internal/metrics"
	"neighbornet/internal/nats"
)

var ErrNoNATSURL = errors.New("no NATS_URL provided")

var alertsCmd = &cli.Command{
	Name:  "alerts",
	Usage: "Watch created posts on NATS JetStream and report urgent and high priority ones",
	Flags: []cli.Flag{
		flags.NATSURL,
		flags.InitNATS,
		flags.MetricsAddr,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		if c.String(flags.NATSURL.Name) == "" {
			return ErrNoNATSURL
		}

		return run(ctx, c,
			nats.Provide(),
			pal.Provide(&alerts.Watcher{}),
			pal.Provide(&metrics.HTTPServer{}),
		)
	},
}
