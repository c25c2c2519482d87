package server

import (
	"context"
	"fmt"

	"github.com/m-mizutani/kioku/pkg/model"
	"github.com/m-mizutani/kioku/pkg/usecase/memo"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const defaultSearchLimit = 10

type createMemoParams struct {
	Content    string   `json:"content"`
	Tags       []string `json:"tags,omitempty"`
	Importance int      `json:"importance,omitempty"`
	Emotion    *string  `json:"emotion,omitempty"`
	Context    *string  `json:"context,omitempty"`
	RelatedTo  []string `json:"related_to,omitempty"`
}

func (s *Server) createMemo(ctx context.Context, req *mcp.CallToolRequest, params *createMemoParams) (*mcp.CallToolResult, any, error) {
	created, err := s.uc.Create(ctx, memo.CreateOptions{
		Content: params.Content,
		Tags:    params.Tags,
		// Clamping also turns the omitted zero value into the default of 1
		Importance: clampImportance(params.Importance),
		Emotion:    params.Emotion,
		Context:    params.Context,
		RelatedTo:  toMemoIDs(params.RelatedTo),
	})
	if err != nil {
		return failure("failed to create memo", err)
	}

	return textResult(memoResult{
		Success: true,
		Memo:    created,
		Message: fmt.Sprintf("created memo %s", created.ID),
	})
}

type getMemosParams struct {
	Limit         int      `json:"limit,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	ImportanceMin int      `json:"importance_min,omitempty"`
	Context       string   `json:"context,omitempty"`
}

func (s *Server) getMemos(ctx context.Context, req *mcp.CallToolRequest, params *getMemosParams) (*mcp.CallToolResult, any, error) {
	memos, err := s.uc.List(ctx, memo.ListOptions{
		Tags:          params.Tags,
		MinImportance: params.ImportanceMin,
		Context:       params.Context,
		Limit:         params.Limit,
	})
	if err != nil {
		return failure("failed to list memos", err)
	}

	return textResult(listResult{
		Success: true,
		Memos:   memos,
		Count:   len(memos),
		Message: fmt.Sprintf("found %d memos", len(memos)),
	})
}

type getMemoParams struct {
	MemoID string `json:"memo_id"`
}

func (s *Server) getMemo(ctx context.Context, req *mcp.CallToolRequest, params *getMemoParams) (*mcp.CallToolResult, any, error) {
	got, err := s.uc.Get(ctx, model.MemoID(params.MemoID))
	if err != nil {
		return failure("failed to get memo", err)
	}
	if got == nil {
		return notFound(model.MemoID(params.MemoID))
	}

	return textResult(memoResult{
		Success: true,
		Memo:    got,
		Message: fmt.Sprintf("got memo %s", got.ID),
	})
}

type updateMemoParams struct {
	MemoID     string    `json:"memo_id"`
	Content    *string   `json:"content,omitempty"`
	Tags       *[]string `json:"tags,omitempty"`
	Importance *int      `json:"importance,omitempty"`
	Emotion    *string   `json:"emotion,omitempty"`
	Context    *string   `json:"context,omitempty"`
	RelatedTo  *[]string `json:"related_to,omitempty"`
}

func (s *Server) updateMemo(ctx context.Context, req *mcp.CallToolRequest, params *updateMemoParams) (*mcp.CallToolResult, any, error) {
	opts := memo.UpdateOptions{
		Content: params.Content,
		Emotion: params.Emotion,
		Context: params.Context,
	}
	if params.Importance != nil {
		clamped := clampImportance(*params.Importance)
		opts.Importance = &clamped
	}
	if params.Tags != nil {
		tags := *params.Tags
		opts.Tags = &tags
	}
	if params.RelatedTo != nil {
		related := toMemoIDs(*params.RelatedTo)
		opts.RelatedTo = &related
	}

	updated, err := s.uc.Update(ctx, model.MemoID(params.MemoID), opts)
	if err != nil {
		return failure("failed to update memo", err)
	}
	if updated == nil {
		return notFound(model.MemoID(params.MemoID))
	}

	return textResult(memoResult{
		Success: true,
		Memo:    updated,
		Message: fmt.Sprintf("updated memo %s", updated.ID),
	})
}

type deleteMemoParams struct {
	MemoID string `json:"memo_id"`
}

func (s *Server) deleteMemo(ctx context.Context, req *mcp.CallToolRequest, params *deleteMemoParams) (*mcp.CallToolResult, any, error) {
	deleted, err := s.uc.Delete(ctx, model.MemoID(params.MemoID))
	if err != nil {
		return failure("failed to delete memo", err)
	}
	if !deleted {
		return notFound(model.MemoID(params.MemoID))
	}

	return textResult(memoResult{
		Success: true,
		Message: fmt.Sprintf("deleted memo %s", params.MemoID),
	})
}

type searchMemosParams struct {
	Query string `json:"query"`
	Limit *int   `json:"limit,omitempty"`
}

func (s *Server) searchMemos(ctx context.Context, req *mcp.CallToolRequest, params *searchMemosParams) (*mcp.CallToolResult, any, error) {
	limit := defaultSearchLimit
	if params.Limit != nil {
		limit = *params.Limit
	}

	memos, err := s.uc.Search(ctx, params.Query, limit)
	if err != nil {
		return failure("failed to search memos", err)
	}

	return textResult(listResult{
		Success: true,
		Memos:   memos,
		Count:   len(memos),
		Query:   params.Query,
		Message: fmt.Sprintf("%d memos matched %q", len(memos), params.Query),
	})
}

type memoStatsParams struct{}

func (s *Server) memoStats(ctx context.Context, req *mcp.CallToolRequest, params *memoStatsParams) (*mcp.CallToolResult, any, error) {
	stats, err := s.uc.Stats(ctx)
	if err != nil {
		return failure("failed to collect memo statistics", err)
	}

	return textResult(statsResult{
		Success: true,
		Stats:   stats,
		Message: fmt.Sprintf("%d memos in the collection", stats.TotalCount),
	})
}

// clampImportance forces a tool-supplied importance into the valid range.
// The store rejects out-of-range values; the tool surface adjusts them
// instead.
func clampImportance(v int) int {
	if v < model.MinImportance {
		return model.MinImportance
	}
	if v > model.MaxImportance {
		return model.MaxImportance
	}
	return v
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
