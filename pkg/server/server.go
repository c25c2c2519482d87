package server

import (
	"context"

	"github.com/m-mizutani/kioku/pkg/usecase/memo"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "kioku"
	serverVersion = "0.1.0"
)

// Server exposes the memo store as a set of MCP tools
type Server struct {
	uc  *memo.UseCase
	mcp *mcp.Server
}

// New creates an MCP server wired to the given memo UseCase
func New(uc *memo.UseCase) *Server {
	s := &Server{
		uc: uc,
		mcp: mcp.NewServer(&mcp.Implementation{
			Name:    serverName,
			Version: serverVersion,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "create_memo",
		Description: "Create a new memo with content, tags, importance, emotion and context",
		InputSchema: createMemoSchema(),
	}, s.createMemo)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_memos",
		Description: "List memos, optionally filtered by tags, minimum importance and context",
		InputSchema: getMemosSchema(),
	}, s.getMemos)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_memo",
		Description: "Get a single memo by its ID",
		InputSchema: getMemoSchema(),
	}, s.getMemo)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "update_memo",
		Description: "Update fields of an existing memo; omitted fields stay unchanged",
		InputSchema: updateMemoSchema(),
	}, s.updateMemo)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "delete_memo",
		Description: "Delete a memo and remove references to it from other memos",
		InputSchema: deleteMemoSchema(),
	}, s.deleteMemo)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "search_memos",
		Description: "Search memos by content, tags, context and emotion",
		InputSchema: searchMemosSchema(),
	}, s.searchMemos)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "memo_stats",
		Description: "Get aggregate statistics over all memos",
		InputSchema: memoStatsSchema(),
	}, s.memoStats)
}

// Run serves MCP requests on stdin and stdout until the context is done or
// the transport closes
func (s *Server) Run(ctx context.Context) error {
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// MCP returns the underlying MCP server for embedding into transports other
// than stdio
func (s *Server) MCP() *mcp.Server {
	return s.mcp
}
