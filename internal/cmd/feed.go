package cmd

import (
	"context"
	"log/slog"

	"github.com/k0kubun/pp"
	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"

	"neighbornet/internal/cmd/flags"
	"neighbornet/internal/core"
	"neighbornet/internal/feed"
)

var feedCmd = &cli.Command{
	Name:  "feed",
	Usage: "Assemble a feed for a user and print it",
	Flags: append([]cli.Flag{
		flags.UserID,
		flags.FeedVariant,
		flags.Query,
		flags.Tag,
	}, storageFlags...),
	Action: func(ctx context.Context, c *cli.Command) error {
		return run(ctx, c,
			storage(c),
			pal.Provide(&feed.Enricher{}),
			pal.Provide(&feed.Assembler{}),
			pal.Provide(&printer{
				userID:  c.Int64(flags.UserID.Name),
				variant: c.String(flags.FeedVariant.Name),
				filter:  core.NewSearchFilter(c.String(flags.Query.Name), c.String(flags.Tag.Name)),
			}),
		)
	},
}

type printer struct {
	Logger    *slog.Logger
	Assembler *feed.Assembler

	userID  int64
	variant string
	filter  core.SearchFilter
}

func (p *printer) Run(ctx context.Context) error {
	p.Logger.Debug("assembling feed", "variant", p.variant, "user_id", p.userID)

	var (
		result any
		err    error
	)

	switch p.variant {
	case "priority":
		result, err = p.Assembler.Priority(ctx, p.userID)
	case "search":
		result, err = p.Assembler.Search(ctx, p.filter)
	default:
		result, err = p.Assembler.Full(ctx, p.userID, core.Page{})
	}
	if err != nil {
		return err
	}

	_, err = pp.Println(result)
	return err
}
