// Package mcpserver exposes the Memos API as MCP tools and resources over a
// stdio transport.
package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kinmeic/memos-mcp/internal/memos"
)

// Server wraps the MCP server with tools for the Memos API.
type Server struct {
	client    *memos.Client
	mcpServer *mcp.Server
	logger    *slog.Logger
}

// New creates an MCP server backed by the given Memos client.
func New(client *memos.Client, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{
		client: client,
		logger: logger,
	}

	s.mcpServer = mcp.NewServer(&mcp.Implementation{
		Name:    "memos-mcp",
		Version: version,
	}, &mcp.ServerOptions{Logger: logger})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_memo",
		Description: "Create a new memo in Memos. Content should be in Markdown format.",
	}, s.handleCreateMemo)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_memos",
		Description: "List memos from your Memos instance with pagination, sorting, and filters. Supports CEL expressions for advanced filtering.",
	}, s.handleListMemos)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_memo",
		Description: "Get a specific memo by its ID.",
	}, s.handleGetMemo)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_memo",
		Description: "Update an existing memo. Only the provided fields are changed.",
	}, s.handleUpdateMemo)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_memo",
		Description: "Delete a memo by its ID.",
	}, s.handleDeleteMemo)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_memo_attachments",
		Description: "List all attachments for a specific memo with pagination support.",
	}, s.handleListMemoAttachments)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_memo_attachments",
		Description: "Set attachments for a memo. This replaces all existing attachments. Each attachment must have 'filename' and 'type'. Use 'content' for base64-encoded file data OR 'externalLink' for URLs. Do NOT include 'size' or 'createTime' (server-generated).",
	}, s.handleSetMemoAttachments)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_attachment",
		Description: "Create a new attachment. Use 'content' for base64-encoded file data OR 'externalLink' for external URLs. Attachments can be linked to memos.",
	}, s.handleCreateAttachment)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_attachment",
		Description: "Get a specific attachment by ID.",
	}, s.handleGetAttachment)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_attachments",
		Description: "List all attachments with pagination, filtering, and sorting. Supports CEL expressions for filtering.",
	}, s.handleListAttachments)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_attachment",
		Description: "Update an existing attachment. Requires the updateMask parameter specifying which fields to update.",
	}, s.handleUpdateAttachment)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_attachment",
		Description: "Delete an attachment by ID.",
	}, s.handleDeleteAttachment)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_readme",
		Description: "Get the memos-mcp README documentation with setup instructions and configuration details.",
	}, s.handleGetReadme)

	s.registerResources()

	return s
}

// Run starts the MCP server on the given transport.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	return s.mcpServer.Run(ctx, transport)
}

// MCPServer returns the underlying MCP server for testing.
func (s *Server) MCPServer() *mcp.Server {
	return s.mcpServer
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: msg},
		},
	}
}

func textResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: msg},
		},
	}
}

// jsonResult pretty-prints a raw API response as the tool result.
func jsonResult(raw json.RawMessage) *mcp.CallToolResult {
	return textResult(indentJSON(raw))
}

func indentJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
