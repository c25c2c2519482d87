package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/kioku/pkg/usecase/memo"
	"github.com/urfave/cli/v3"
)

func newCommand() *cli.Command {
	var (
		cfg         config
		content     string
		tags        []string
		importance  int64
		emotion     string
		memoContext string
		relatedTo   []string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "content",
			Aliases:     []string{"c"},
			Usage:       "Memo content",
			Sources:     cli.EnvVars("KIOKU_NEW_CONTENT"),
			Destination: &content,
			Required:    true,
		},
		&cli.StringSliceFlag{
			Name:        "tag",
			Aliases:     []string{"t"},
			Usage:       "Tag to attach (repeatable)",
			Destination: &tags,
		},
		&cli.IntFlag{
			Name:        "importance",
			Aliases:     []string{"i"},
			Usage:       "Importance from 1 to 5",
			Value:       1,
			Destination: &importance,
		},
		&cli.StringFlag{
			Name:        "emotion",
			Aliases:     []string{"e"},
			Usage:       "Emotion associated with the memo",
			Destination: &emotion,
		},
		&cli.StringFlag{
			Name:        "context",
			Usage:       "Situation or context of the memo",
			Destination: &memoContext,
		},
		&cli.StringSliceFlag{
			Name:        "related-to",
			Aliases:     []string{"r"},
			Usage:       "ID of a related memo (repeatable)",
			Destination: &relatedTo,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "new",
		Usage: "Create a new memo",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg.setupLogger()

			// Initialize dependencies
			uc, err := cfg.newUseCase()
			if err != nil {
				return err
			}

			opts := memo.CreateOptions{
				Content:    content,
				Tags:       tags,
				Importance: int(importance),
				RelatedTo:  toMemoIDs(relatedTo),
			}
			if emotion != "" {
				opts.Emotion = &emotion
			}
			if memoContext != "" {
				opts.Context = &memoContext
			}

			created, err := uc.Create(ctx, opts)
			if err != nil {
				return goerr.Wrap(err, "failed to create memo")
			}

			return printJSON(c.Root().Writer, created)
		},
	}
}
