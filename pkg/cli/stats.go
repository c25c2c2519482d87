package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func statsCommand() *cli.Command {
	var cfg config

	flags := globalFlags(&cfg)

	return &cli.Command{
		Name:  "stats",
		Usage: "Show statistics of the memo collection as JSON",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg.setupLogger()

			// Initialize dependencies
			uc, err := cfg.newUseCase()
			if err != nil {
				return err
			}

			stats, err := uc.Stats(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to collect stats")
			}

			return printJSON(c.Root().Writer, stats)
		},
	}
}
