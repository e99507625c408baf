package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kinmeic/memos-mcp/internal/memos"
)

type attachmentInput struct {
	Filename     string `json:"filename" jsonschema:"The filename of the attachment (required)"`
	Type         string `json:"type" jsonschema:"MIME type of the attachment (required, e.g. image/png or application/pdf)"`
	Content      string `json:"content,omitempty" jsonschema:"Base64 encoded content of the file (for small files, alternative to externalLink)"`
	ExternalLink string `json:"externalLink,omitempty" jsonschema:"External link URL for the attachment (alternative to content)"`
}

func toAttachments(in []attachmentInput) []memos.Attachment {
	if in == nil {
		return nil
	}
	out := make([]memos.Attachment, len(in))
	for i, a := range in {
		out[i] = memos.Attachment{
			Filename:     a.Filename,
			Type:         a.Type,
			Content:      a.Content,
			ExternalLink: a.ExternalLink,
		}
	}
	return out
}

type createMemoInput struct {
	Content     string            `json:"content,omitempty" jsonschema:"The content of the memo in Markdown format (required)"`
	Visibility  string            `json:"visibility,omitempty" jsonschema:"Visibility of the memo: PRIVATE, PROTECTED, or PUBLIC (default PRIVATE)"`
	State       string            `json:"state,omitempty" jsonschema:"State of the memo: NORMAL or ARCHIVED (default NORMAL)"`
	Pinned      bool              `json:"pinned,omitempty" jsonschema:"Whether to pin the memo"`
	Name        string            `json:"name,omitempty" jsonschema:"Resource name of the memo (format: memos/{id})"`
	CreateTime  string            `json:"createTime,omitempty" jsonschema:"Creation timestamp in RFC3339 format (e.g. 2024-01-01T12:00:00Z)"`
	UpdateTime  string            `json:"updateTime,omitempty" jsonschema:"Last update timestamp in RFC3339 format"`
	DisplayTime string            `json:"displayTime,omitempty" jsonschema:"Display timestamp in RFC3339 format"`
	Attachments []attachmentInput `json:"attachments,omitempty" jsonschema:"Attachments to create with the memo"`
	Relations   []map[string]any  `json:"relations,omitempty" jsonschema:"Memo relation objects"`
	Property    map[string]any    `json:"property,omitempty" jsonschema:"Property object (e.g. hasLink, hasTaskList, hasCode, hasIncompleteTasks)"`
	Location    map[string]any    `json:"location,omitempty" jsonschema:"Location object (placeholder, latitude, longitude)"`
}

type listMemosInput struct {
	PageSize    int    `json:"pageSize,omitempty" jsonschema:"Maximum number of memos to return (default 50, max 1000)"`
	PageToken   string `json:"pageToken,omitempty" jsonschema:"Page token from a previous response for pagination"`
	State       string `json:"state,omitempty" jsonschema:"Filter by state: NORMAL or ARCHIVED (default NORMAL)"`
	OrderBy     string `json:"orderBy,omitempty" jsonschema:"Order to sort results by. Default: display_time desc. Supports comma-separated fields: pinned, display_time, create_time, update_time, name"`
	Filter      string `json:"filter,omitempty" jsonschema:"CEL expression to filter memos, e.g. visibility == 'PUBLIC' or content.contains('meeting')"`
	ShowDeleted *bool  `json:"showDeleted,omitempty" jsonschema:"If true, show deleted memos in the response"`
}

type getMemoInput struct {
	MemoID      string `json:"memo_id,omitempty" jsonschema:"The ID or name of the memo (e.g. 123 or memos/123)"`
	MemoIDCamel string `json:"memoId,omitempty" jsonschema:"Alias for memo_id"`
}

type updateMemoInput struct {
	MemoID      string            `json:"memo_id,omitempty" jsonschema:"The ID or name of the memo to update"`
	MemoIDCamel string            `json:"memoId,omitempty" jsonschema:"Alias for memo_id"`
	Content     *string           `json:"content,omitempty" jsonschema:"New content for the memo in Markdown format"`
	Visibility  *string           `json:"visibility,omitempty" jsonschema:"New visibility: PRIVATE, PROTECTED, or PUBLIC"`
	State       *string           `json:"state,omitempty" jsonschema:"New state: NORMAL or ARCHIVED"`
	Pinned      *bool             `json:"pinned,omitempty" jsonschema:"New pinned state"`
	CreateTime  *string           `json:"createTime,omitempty" jsonschema:"Creation timestamp in RFC3339 format"`
	UpdateTime  *string           `json:"updateTime,omitempty" jsonschema:"Last update timestamp in RFC3339 format"`
	DisplayTime *string           `json:"displayTime,omitempty" jsonschema:"Display timestamp in RFC3339 format"`
	Attachments []attachmentInput `json:"attachments,omitempty" jsonschema:"Replacement attachment objects"`
	Relations   []map[string]any  `json:"relations,omitempty" jsonschema:"Memo relation objects"`
	Property    map[string]any    `json:"property,omitempty" jsonschema:"Property object"`
	Location    map[string]any    `json:"location,omitempty" jsonschema:"Location object"`
}

type deleteMemoInput struct {
	MemoID      string `json:"memo_id,omitempty" jsonschema:"The ID or name of the memo to delete"`
	MemoIDCamel string `json:"memoId,omitempty" jsonschema:"Alias for memo_id"`
}

// coalesceID returns the first non-empty ID spelling. The upstream API docs
// use memo_id and memoId interchangeably, so both are accepted.
func coalesceID(snake, camel string) string {
	if snake != "" {
		return snake
	}
	return camel
}

// validPageSize checks the 1-1000 range the API documents for pageSize.
func validPageSize(n int) bool {
	return n >= 0 && n <= 1000
}

func (s *Server) handleCreateMemo(ctx context.Context, _ *mcp.CallToolRequest, input createMemoInput) (*mcp.CallToolResult, any, error) {
	s.logger.Info("mcp tool call", "tool", "create_memo", "visibility", input.Visibility, "state", input.State, "pinned", input.Pinned)

	if input.Content == "" {
		return errorResult("content is required"), nil, nil
	}
	if input.Visibility != "" && !memos.ValidVisibility(input.Visibility) {
		return errorResult(fmt.Sprintf("invalid visibility %q: must be PRIVATE, PROTECTED, or PUBLIC", input.Visibility)), nil, nil
	}
	if input.State != "" && !memos.ValidState(input.State) {
		return errorResult(fmt.Sprintf("invalid state %q: must be NORMAL or ARCHIVED", input.State)), nil, nil
	}

	raw, err := s.client.CreateMemo(ctx, memos.CreateMemoParams{
		Content:     input.Content,
		Visibility:  input.Visibility,
		State:       input.State,
		Pinned:      input.Pinned,
		Name:        input.Name,
		CreateTime:  input.CreateTime,
		UpdateTime:  input.UpdateTime,
		DisplayTime: input.DisplayTime,
		Attachments: toAttachments(input.Attachments),
		Relations:   input.Relations,
		Property:    input.Property,
		Location:    input.Location,
	})
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}
	return jsonResult(raw), nil, nil
}

func (s *Server) handleListMemos(ctx context.Context, _ *mcp.CallToolRequest, input listMemosInput) (*mcp.CallToolResult, any, error) {
	s.logger.Info("mcp tool call", "tool", "list_memos", "pageSize", input.PageSize, "state", input.State, "filter", input.Filter)

	if !validPageSize(input.PageSize) {
		return errorResult("pageSize must be between 1 and 1000"), nil, nil
	}
	if input.State != "" && !memos.ValidState(input.State) {
		return errorResult(fmt.Sprintf("invalid state %q: must be NORMAL or ARCHIVED", input.State)), nil, nil
	}

	raw, err := s.client.ListMemos(ctx, memos.ListMemosParams{
		PageSize:    input.PageSize,
		PageToken:   input.PageToken,
		State:       input.State,
		OrderBy:     input.OrderBy,
		Filter:      input.Filter,
		ShowDeleted: input.ShowDeleted,
	})
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}
	return jsonResult(raw), nil, nil
}

func (s *Server) handleGetMemo(ctx context.Context, _ *mcp.CallToolRequest, input getMemoInput) (*mcp.CallToolResult, any, error) {
	id := coalesceID(input.MemoID, input.MemoIDCamel)
	s.logger.Info("mcp tool call", "tool", "get_memo", "memo_id", id)

	if id == "" {
		return errorResult("memo_id is required"), nil, nil
	}

	raw, err := s.client.GetMemo(ctx, memos.MemoID(id))
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}
	return jsonResult(raw), nil, nil
}

func (s *Server) handleUpdateMemo(ctx context.Context, _ *mcp.CallToolRequest, input updateMemoInput) (*mcp.CallToolResult, any, error) {
	id := coalesceID(input.MemoID, input.MemoIDCamel)
	s.logger.Info("mcp tool call", "tool", "update_memo", "memo_id", id)

	if id == "" {
		return errorResult("memo_id is required"), nil, nil
	}
	if input.Visibility != nil && !memos.ValidVisibility(*input.Visibility) {
		return errorResult(fmt.Sprintf("invalid visibility %q: must be PRIVATE, PROTECTED, or PUBLIC", *input.Visibility)), nil, nil
	}
	if input.State != nil && !memos.ValidState(*input.State) {
		return errorResult(fmt.Sprintf("invalid state %q: must be NORMAL or ARCHIVED", *input.State)), nil, nil
	}

	raw, err := s.client.UpdateMemo(ctx, memos.MemoID(id), memos.UpdateMemoParams{
		Content:     input.Content,
		Visibility:  input.Visibility,
		State:       input.State,
		Pinned:      input.Pinned,
		CreateTime:  input.CreateTime,
		UpdateTime:  input.UpdateTime,
		DisplayTime: input.DisplayTime,
		Attachments: toAttachments(input.Attachments),
		Relations:   input.Relations,
		Property:    input.Property,
		Location:    input.Location,
	})
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}
	return jsonResult(raw), nil, nil
}

func (s *Server) handleDeleteMemo(ctx context.Context, _ *mcp.CallToolRequest, input deleteMemoInput) (*mcp.CallToolResult, any, error) {
	id := coalesceID(input.MemoID, input.MemoIDCamel)
	s.logger.Info("mcp tool call", "tool", "delete_memo", "memo_id", id)

	if id == "" {
		return errorResult("memo_id is required"), nil, nil
	}

	if err := s.client.DeleteMemo(ctx, memos.MemoID(id)); err != nil {
		return errorResult(err.Error()), nil, nil
	}
	return textResult(fmt.Sprintf("Successfully deleted memo: %s", id)), nil, nil
}
