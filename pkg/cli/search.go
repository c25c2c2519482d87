package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func searchCommand() *cli.Command {
	var (
		cfg   config
		query string
		limit int64
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "query",
			Aliases:     []string{"q"},
			Usage:       "Text to search for in content, tags, context and emotion",
			Sources:     cli.EnvVars("KIOKU_SEARCH_QUERY"),
			Destination: &query,
			Required:    true,
		},
		&cli.IntFlag{
			Name:        "limit",
			Aliases:     []string{"l"},
			Usage:       "Maximum number of memos to return",
			Value:       10,
			Sources:     cli.EnvVars("KIOKU_SEARCH_LIMIT"),
			Destination: &limit,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "search",
		Usage: "Search memos by keyword",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg.setupLogger()

			// Initialize dependencies
			uc, err := cfg.newUseCase()
			if err != nil {
				return err
			}

			// Search memos
			memos, err := uc.Search(ctx, query, int(limit))
			if err != nil {
				return goerr.Wrap(err, "failed to search memos")
			}

			// Display memos
			for _, m := range memos {
				fmt.Fprintf(c.Root().Writer, "%s\t%d\t%s\t%s\n",
					m.ID, m.Importance, m.Content, strings.Join(m.Tags, ","))
			}

			return nil
		},
	}
}
