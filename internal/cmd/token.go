package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"

	"neighbornet/internal/auth"
	"neighbornet/internal/cmd/flags"
)

var tokenCmd = &cli.Command{
	Name:  "token",
	Usage: "Issue a bearer token for a user",
	Flags: []cli.Flag{
		flags.UserID,
		flags.JWTSecret,
		flags.JWTExpiry,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		return run(ctx, c,
			pal.Provide(&auth.Tokens{}),
			pal.Provide(&tokenPrinter{userID: c.Int64(flags.UserID.Name)}),
		)
	},
}

type tokenPrinter struct {
	Tokens *auth.Tokens

	userID int64
}

func (p *tokenPrinter) Run(_ context.Context) error {
	token, err := p.Tokens.Issue(p.userID)
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}
