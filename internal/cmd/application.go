package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"

	"neighbornet/internal/cache"
	"neighbornet/internal/cmd/flags"
	"neighbornet/internal/config"
	"neighbornet/internal/core"
	"neighbornet/internal/persistence"
	"neighbornet/internal/persistence/incidents"
	"neighbornet/internal/persistence/posts"
	"neighbornet/internal/persistence/tags"
	"neighbornet/internal/persistence/users"
	"neighbornet/pkg/clicfg"
)

const VERSION = "0.1.0"

var cmd = &cli.Command{
	Name:    "neighbornet",
	Usage:   "NeighborNet is a neighborhood feed backend",
	Version: VERSION,
	Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
		if err := initLogger(c.String("log-level")); err != nil {
			return ctx, err
		}
		return ctx, nil
	},
	Flags: []cli.Flag{
		flags.LogLevel,
	},
	Commands: []*cli.Command{
		serveCmd,
		alertsCmd,
		migrateCmd,
		feedCmd,
		tokenCmd,
	},
}

func Run() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Println(err)
		os.Exit(1)
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *cli.Command, services ...pal.ServiceDef) error {
	cfg := config.Config{}
	if err := clicfg.ParseFlags(c, &cfg); err != nil {
		return err
	}
	services = append(services, pal.Provide(&cfg))

	return pal.New(services...).
		InjectSlog().
		InitTimeout(2*time.Second).
		HealthCheckTimeout(1*time.Second).
		ShutdownTimeout(10*time.Second).
		Run(ctx, syscall.SIGINT, syscall.SIGTERM)
}

// storage registers the database, the cache and every repository.
func storage(c *cli.Command) pal.ServiceDef {
	return pal.ProvideList(
		persistence.Provide(),
		cache.Provide(c.String(flags.RedisURL.Name)),
		pal.Provide[core.UserRepository](&users.Repository{}),
		pal.Provide[core.PostRepository](&posts.Repository{}),
		pal.Provide[core.TagRepository](&tags.Repository{}),
		pal.Provide[core.IncidentRepository](&incidents.Repository{}),
	)
}
