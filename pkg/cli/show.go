package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/kioku/pkg/model"
	"github.com/urfave/cli/v3"
)

func showCommand() *cli.Command {
	var (
		cfg    config
		memoID model.MemoID
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "memo-id",
			Aliases:     []string{"id"},
			Usage:       "Memo ID to show",
			Sources:     cli.EnvVars("KIOKU_MEMO_ID"),
			Destination: (*string)(&memoID),
			Required:    true,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "show",
		Usage: "Show a single memo as JSON",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg.setupLogger()

			// Initialize dependencies
			uc, err := cfg.newUseCase()
			if err != nil {
				return err
			}

			// Show memo
			m, err := uc.Get(ctx, memoID)
			if err != nil {
				return goerr.Wrap(err, "failed to get memo")
			}
			if m == nil {
				return goerr.New("memo not found", goerr.V("id", memoID))
			}

			return printJSON(c.Root().Writer, m)
		},
	}
}
