package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/kioku/pkg/model"
	"github.com/urfave/cli/v3"
)

type Error struct {
	Code    int
	Message string
}

func Run(ctx context.Context, argv []string) *Error {
	cmd := &cli.Command{
		Name:  "kioku",
		Usage: "Persistent memo store with an MCP tool surface",
		Commands: []*cli.Command{
			serveCommand(),
			newCommand(),
			listCommand(),
			showCommand(),
			updateCommand(),
			deleteCommand(),
			searchCommand(),
			statsCommand(),
		},
	}

	if err := cmd.Run(ctx, argv); err != nil {
		return &Error{
			Code:    1,
			Message: err.Error(),
		}
	}

	return nil
}

// printJSON writes a value as indented JSON
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to marshal output")
	}

	fmt.Fprintf(w, "%s\n", string(data))
	return nil
}

func toMemoIDs(ids []string) []model.MemoID {
	if ids == nil {
		return nil
	}
	out := make([]model.MemoID, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.MemoID(id))
	}
	return out
}
