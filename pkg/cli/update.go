package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/kioku/pkg/model"
	"github.com/m-mizutani/kioku/pkg/usecase/memo"
	"github.com/urfave/cli/v3"
)

func updateCommand() *cli.Command {
	var (
		cfg         config
		memoID      model.MemoID
		content     string
		tags        []string
		importance  int64
		emotion     string
		memoContext string
		relatedTo   []string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "memo-id",
			Aliases:     []string{"id"},
			Usage:       "Memo ID to update",
			Sources:     cli.EnvVars("KIOKU_MEMO_ID"),
			Destination: (*string)(&memoID),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "content",
			Aliases:     []string{"c"},
			Usage:       "New content",
			Destination: &content,
		},
		&cli.StringSliceFlag{
			Name:        "tag",
			Aliases:     []string{"t"},
			Usage:       "New tag set (repeatable, replaces the old set)",
			Destination: &tags,
		},
		&cli.IntFlag{
			Name:        "importance",
			Aliases:     []string{"i"},
			Usage:       "New importance from 1 to 5",
			Destination: &importance,
		},
		&cli.StringFlag{
			Name:        "emotion",
			Aliases:     []string{"e"},
			Usage:       "New emotion",
			Destination: &emotion,
		},
		&cli.StringFlag{
			Name:        "context",
			Usage:       "New context",
			Destination: &memoContext,
		},
		&cli.StringSliceFlag{
			Name:        "related-to",
			Aliases:     []string{"r"},
			Usage:       "New related memo ID set (repeatable, replaces the old set)",
			Destination: &relatedTo,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "update",
		Usage: "Update fields of an existing memo",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg.setupLogger()

			// Initialize dependencies
			uc, err := cfg.newUseCase()
			if err != nil {
				return err
			}

			// Only flags given on the command line become part of the update
			var opts memo.UpdateOptions
			if c.IsSet("content") {
				opts.Content = &content
			}
			if c.IsSet("tag") {
				opts.Tags = &tags
			}
			if c.IsSet("importance") {
				v := int(importance)
				opts.Importance = &v
			}
			if c.IsSet("emotion") {
				opts.Emotion = &emotion
			}
			if c.IsSet("context") {
				opts.Context = &memoContext
			}
			if c.IsSet("related-to") {
				ids := toMemoIDs(relatedTo)
				opts.RelatedTo = &ids
			}

			updated, err := uc.Update(ctx, memoID, opts)
			if err != nil {
				return goerr.Wrap(err, "failed to update memo")
			}
			if updated == nil {
				return goerr.New("memo not found", goerr.V("id", memoID))
			}

			return printJSON(c.Root().Writer, updated)
		},
	}
}
