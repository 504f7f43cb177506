package cmd

import (
	"context"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"

	"neighbornet/internal/api"
	"neighbornet/internal/auth"
	"neighbornet/internal/cmd/flags"
	"neighbornet/internal/feed"
	"neighbornet/internal/metrics"
	"neighbornet/internal/nats"
	"neighbornet/internal/posting"
)

var storageFlags = []cli.Flag{
	flags.DatabaseURL,
	flags.RedisURL,
	flags.CacheTTL,
}

var serveCmd = &cli.Command{
	Name:  "serve",
	Usage: "Serve the feed API and metrics",
	Flags: append([]cli.Flag{
		flags.HTTPAddr,
		flags.MetricsAddr,
		flags.JWTSecret,
		flags.JWTExpiry,
		flags.NATSURL,
		flags.InitNATS,
	}, storageFlags...),
	Action: func(ctx context.Context, c *cli.Command) error {
		return run(ctx, c,
			storage(c),
			nats.ProvidePublisher(c.String(flags.NATSURL.Name)),
			pal.Provide(&feed.Enricher{}),
			pal.Provide(&feed.Assembler{}),
			pal.Provide(&posting.Service{}),
			pal.Provide(&auth.Tokens{}),
			pal.Provide(&api.Backend{}),
			pal.Provide(&api.Server{}),
			pal.Provide(&metrics.Collector{}),
			pal.Provide(&metrics.HTTPServer{}),
		)
	},
}
