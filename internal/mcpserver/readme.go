package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kinmeic/memos-mcp/internal/readme"
)

type getReadmeInput struct{}

func (s *Server) handleGetReadme(_ context.Context, _ *mcp.CallToolRequest, _ getReadmeInput) (*mcp.CallToolResult, any, error) {
	s.logger.Info("mcp tool call", "tool", "get_readme")
	return textResult(readme.Content), nil, nil
}
