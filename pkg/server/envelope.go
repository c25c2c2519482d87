package server

import (
	"encoding/json"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/kioku/pkg/model"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool responses are JSON envelopes carried as text content. Domain
// failures such as validation errors and unknown IDs are reported inside
// the envelope with success set to false, never as protocol errors, so a
// calling agent always receives a well-formed body it can inspect.

// memoResult is the envelope for tools acting on at most one memo
type memoResult struct {
	Success bool        `json:"success"`
	Memo    *model.Memo `json:"memo,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message"`
}

// listResult is the envelope for tools returning a set of memos
type listResult struct {
	Success bool          `json:"success"`
	Memos   []*model.Memo `json:"memos"`
	Count   int           `json:"count"`
	Query   string        `json:"query,omitempty"`
	Message string        `json:"message"`
}

// statsResult is the envelope for the statistics tool
type statsResult struct {
	Success bool         `json:"success"`
	Stats   *model.Stats `json:"stats"`
	Message string       `json:"message"`
}

// textResult serializes an envelope as indented JSON text content
func textResult(v any) (*mcp.CallToolResult, any, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to encode tool result")
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(raw)},
		},
	}, nil, nil
}

// failure builds an envelope for an operation that went wrong
func failure(message string, err error) (*mcp.CallToolResult, any, error) {
	return textResult(memoResult{
		Success: false,
		Error:   err.Error(),
		Message: message,
	})
}

// notFound builds an envelope for an unknown memo ID
func notFound(id model.MemoID) (*mcp.CallToolResult, any, error) {
	return textResult(memoResult{
		Success: false,
		Message: fmt.Sprintf("memo %s is not found", id),
	})
}
