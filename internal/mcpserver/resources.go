package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kinmeic/memos-mcp/internal/memos"
)

const (
	memosResourceURI  = "memos://memos"
	configResourceURI = "memos://config"

	// Matches the default page size the upstream web UI uses for a full view.
	memosResourcePageSize = 100
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         memosResourceURI,
		Name:        "All Memos",
		Description: "List all memos from your Memos instance",
		MIMEType:    "application/json",
	}, s.handleMemosResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         configResourceURI,
		Name:        "Configuration",
		Description: "Current Memos server configuration",
		MIMEType:    "application/json",
	}, s.handleConfigResource)
}

// handleMemosResource serves the memos://memos listing. API failures are
// reported inside the JSON body rather than as protocol errors, so hosts can
// still render the resource.
func (s *Server) handleMemosResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	s.logger.Info("mcp resource read", "uri", req.Params.URI)

	var text string
	raw, err := s.client.ListMemos(ctx, memos.ListMemosParams{PageSize: memosResourcePageSize})
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		text = string(errJSON)
	} else {
		text = indentJSON(raw)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     text,
			},
		},
	}, nil
}

func (s *Server) handleConfigResource(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	s.logger.Info("mcp resource read", "uri", req.Params.URI)

	// The API key itself never leaves the process.
	cfg, _ := json.MarshalIndent(map[string]any{
		"base_url":    s.client.BaseURL(),
		"has_api_key": s.client.HasAPIKey(),
	}, "", "  ")

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(cfg),
			},
		},
	}, nil
}
