package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/kioku/pkg/usecase/memo"
	"github.com/urfave/cli/v3"
)

func listCommand() *cli.Command {
	var (
		cfg           config
		tags          []string
		minImportance int64
		memoContext   string
		limit         int64
	)

	flags := []cli.Flag{
		&cli.StringSliceFlag{
			Name:        "tag",
			Aliases:     []string{"t"},
			Usage:       "Only memos carrying at least one of these tags (repeatable)",
			Destination: &tags,
		},
		&cli.IntFlag{
			Name:        "min-importance",
			Aliases:     []string{"i"},
			Usage:       "Only memos with importance at or above this value",
			Destination: &minImportance,
		},
		&cli.StringFlag{
			Name:        "context",
			Usage:       "Only memos with exactly this context",
			Destination: &memoContext,
		},
		&cli.IntFlag{
			Name:        "limit",
			Aliases:     []string{"l"},
			Usage:       "Maximum number of memos to list",
			Sources:     cli.EnvVars("KIOKU_LIST_LIMIT"),
			Destination: &limit,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "list",
		Usage: "List memos sorted by importance",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg.setupLogger()

			// Initialize dependencies
			uc, err := cfg.newUseCase()
			if err != nil {
				return err
			}

			// List memos
			memos, err := uc.List(ctx, memo.ListOptions{
				Tags:          tags,
				MinImportance: int(minImportance),
				Context:       memoContext,
				Limit:         int(limit),
			})
			if err != nil {
				return goerr.Wrap(err, "failed to list memos")
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
