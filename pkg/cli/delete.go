package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/kioku/pkg/model"
	"github.com/urfave/cli/v3"
)

func deleteCommand() *cli.Command {
	var (
		cfg    config
		memoID model.MemoID
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "memo-id",
			Aliases:     []string{"id"},
			Usage:       "Memo ID to delete",
			Sources:     cli.EnvVars("KIOKU_MEMO_ID"),
			Destination: (*string)(&memoID),
			Required:    true,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "delete",
		Usage: "Delete a memo and drop references to it from other memos",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg.setupLogger()

			// Initialize dependencies
			uc, err := cfg.newUseCase()
			if err != nil {
				return err
			}

			// Delete memo
			deleted, err := uc.Delete(ctx, memoID)
			if err != nil {
				return goerr.Wrap(err, "failed to delete memo")
			}
			if !deleted {
				return goerr.New("memo not found", goerr.V("id", memoID))
			}

			fmt.Fprintf(c.Root().Writer, "Memo deleted: %s\n", memoID)
			return nil
		},
	}
}
