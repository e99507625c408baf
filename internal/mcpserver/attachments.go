package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kinmeic/memos-mcp/internal/memos"
)

type listMemoAttachmentsInput struct {
	MemoID      string `json:"memo_id,omitempty" jsonschema:"The ID or name of the memo (e.g. 123 or memos/123)"`
	MemoIDCamel string `json:"memoId,omitempty" jsonschema:"Alias for memo_id"`
	PageSize    int    `json:"pageSize,omitempty" jsonschema:"Maximum number of attachments to return (default 50, max 1000)"`
	PageToken   string `json:"pageToken,omitempty" jsonschema:"Page token from a previous response for pagination"`
}

type setMemoAttachmentsInput struct {
	MemoID      string            `json:"memo_id,omitempty" jsonschema:"The ID or name of the memo"`
	MemoIDCamel string            `json:"memoId,omitempty" jsonschema:"Alias for memo_id"`
	Attachments []attachmentInput `json:"attachments,omitempty" jsonschema:"Attachment objects with filename, type, and optionally content (base64) or externalLink"`
}

type createAttachmentInput struct {
	Filename          string `json:"filename,omitempty" jsonschema:"The filename of the attachment (required)"`
	Type              string `json:"type,omitempty" jsonschema:"MIME type of the attachment (required, e.g. image/png or application/pdf)"`
	AttachmentID      string `json:"attachment_id,omitempty" jsonschema:"Optional custom attachment ID"`
	AttachmentIDCamel string `json:"attachmentId,omitempty" jsonschema:"Alias for attachment_id"`
	Content           string `json:"content,omitempty" jsonschema:"Base64 encoded file content (alternative to externalLink, for small files)"`
	ExternalLink      string `json:"externalLink,omitempty" jsonschema:"External link URL for the attachment (alternative to content)"`
	Memo              string `json:"memo,omitempty" jsonschema:"Related memo resource name (format: memos/{memo})"`
}

type getAttachmentInput struct {
	AttachmentID      string `json:"attachment_id,omitempty" jsonschema:"The ID or name of the attachment (e.g. 123 or attachments/123)"`
	AttachmentIDCamel string `json:"attachmentId,omitempty" jsonschema:"Alias for attachment_id"`
}

type listAttachmentsInput struct {
	PageSize  int    `json:"pageSize,omitempty" jsonschema:"Maximum number of attachments to return (default 50, max 1000)"`
	PageToken string `json:"pageToken,omitempty" jsonschema:"Page token from a previous response for pagination"`
	Filter    string `json:"filter,omitempty" jsonschema:"CEL expression to filter attachments, e.g. mime_type == \"image/png\" or filename.contains(\"test\")"`
	OrderBy   string `json:"orderBy,omitempty" jsonschema:"Order to sort results by, e.g. create_time desc or filename asc"`
}

type updateAttachmentInput struct {
	AttachmentID      string  `json:"attachment_id,omitempty" jsonschema:"The ID or name of the attachment to update"`
	AttachmentIDCamel string  `json:"attachmentId,omitempty" jsonschema:"Alias for attachment_id"`
	UpdateMask        string  `json:"updateMask,omitempty" jsonschema:"Comma-separated list of fields to update (e.g. filename,type,externalLink)"`
	Filename          *string `json:"filename,omitempty" jsonschema:"New filename"`
	Type              *string `json:"type,omitempty" jsonschema:"New MIME type"`
	Content           *string `json:"content,omitempty" jsonschema:"New base64 encoded file content"`
	ExternalLink      *string `json:"externalLink,omitempty" jsonschema:"New external link URL"`
	Memo              *string `json:"memo,omitempty" jsonschema:"New related memo resource name (format: memos/{memo})"`
}

type deleteAttachmentInput struct {
	AttachmentID      string `json:"attachment_id,omitempty" jsonschema:"The ID or name of the attachment to delete"`
	AttachmentIDCamel string `json:"attachmentId,omitempty" jsonschema:"Alias for attachment_id"`
}

func (s *Server) handleListMemoAttachments(ctx context.Context, _ *mcp.CallToolRequest, input listMemoAttachmentsInput) (*mcp.CallToolResult, any, error) {
	id := coalesceID(input.MemoID, input.MemoIDCamel)
	s.logger.Info("mcp tool call", "tool", "list_memo_attachments", "memo_id", id, "pageSize", input.PageSize)

	if id == "" {
		return errorResult("memo_id is required"), nil, nil
	}
	if !validPageSize(input.PageSize) {
		return errorResult("pageSize must be between 1 and 1000"), nil, nil
	}

	raw, err := s.client.ListMemoAttachments(ctx, memos.MemoID(id), memos.PageParams{
		PageSize:  input.PageSize,
		PageToken: input.PageToken,
	})
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}
	return jsonResult(raw), nil, nil
}

func (s *Server) handleSetMemoAttachments(ctx context.Context, _ *mcp.CallToolRequest, input setMemoAttachmentsInput) (*mcp.CallToolResult, any, error) {
	id := coalesceID(input.MemoID, input.MemoIDCamel)
	s.logger.Info("mcp tool call", "tool", "set_memo_attachments", "memo_id", id, "count", len(input.Attachments))

	if id == "" {
		return errorResult("memo_id is required"), nil, nil
	}
	if input.Attachments == nil {
		return errorResult("attachments is required"), nil, nil
	}

	if err := s.client.SetMemoAttachments(ctx, memos.MemoID(id), toAttachments(input.Attachments)); err != nil {
		return errorResult(err.Error()), nil, nil
	}
	return textResult(fmt.Sprintf("Successfully set %d attachment(s) for memo: %s", len(input.Attachments), id)), nil, nil
}

func (s *Server) handleCreateAttachment(ctx context.Context, _ *mcp.CallToolRequest, input createAttachmentInput) (*mcp.CallToolResult, any, error) {
	s.logger.Info("mcp tool call", "tool", "create_attachment", "filename", input.Filename, "type", input.Type)

	if input.Filename == "" {
		return errorResult("filename is required"), nil, nil
	}
	if input.Type == "" {
		return errorResult("type is required"), nil, nil
	}

	raw, err := s.client.CreateAttachment(ctx, memos.CreateAttachmentParams{
		Filename:     input.Filename,
		Type:         input.Type,
		AttachmentID: coalesceID(input.AttachmentID, input.AttachmentIDCamel),
		Content:      input.Content,
		ExternalLink: input.ExternalLink,
		Memo:         input.Memo,
	})
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}
	return jsonResult(raw), nil, nil
}

func (s *Server) handleGetAttachment(ctx context.Context, _ *mcp.CallToolRequest, input getAttachmentInput) (*mcp.CallToolResult, any, error) {
	id := coalesceID(input.AttachmentID, input.AttachmentIDCamel)
	s.logger.Info("mcp tool call", "tool", "get_attachment", "attachment_id", id)

	if id == "" {
		return errorResult("attachment_id is required"), nil, nil
	}

	raw, err := s.client.GetAttachment(ctx, memos.AttachmentID(id))
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}
	return jsonResult(raw), nil, nil
}

func (s *Server) handleListAttachments(ctx context.Context, _ *mcp.CallToolRequest, input listAttachmentsInput) (*mcp.CallToolResult, any, error) {
	s.logger.Info("mcp tool call", "tool", "list_attachments", "pageSize", input.PageSize, "filter", input.Filter)

	if !validPageSize(input.PageSize) {
		return errorResult("pageSize must be between 1 and 1000"), nil, nil
	}

	raw, err := s.client.ListAttachments(ctx, memos.ListAttachmentsParams{
		PageSize:  input.PageSize,
		PageToken: input.PageToken,
		Filter:    input.Filter,
		OrderBy:   input.OrderBy,
	})
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}
	return jsonResult(raw), nil, nil
}

func (s *Server) handleUpdateAttachment(ctx context.Context, _ *mcp.CallToolRequest, input updateAttachmentInput) (*mcp.CallToolResult, any, error) {
	id := coalesceID(input.AttachmentID, input.AttachmentIDCamel)
	s.logger.Info("mcp tool call", "tool", "update_attachment", "attachment_id", id, "updateMask", input.UpdateMask)

	if id == "" {
		return errorResult("attachment_id is required"), nil, nil
	}
	if input.UpdateMask == "" {
		return errorResult("updateMask is required"), nil, nil
	}

	raw, err := s.client.UpdateAttachment(ctx, memos.AttachmentID(id), input.UpdateMask, memos.UpdateAttachmentParams{
		Filename:     input.Filename,
		Type:         input.Type,
		Content:      input.Content,
		ExternalLink: input.ExternalLink,
		Memo:         input.Memo,
	})
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}
	return jsonResult(raw), nil, nil
}

func (s *Server) handleDeleteAttachment(ctx context.Context, _ *mcp.CallToolRequest, input deleteAttachmentInput) (*mcp.CallToolResult, any, error) {
	id := coalesceID(input.AttachmentID, input.AttachmentIDCamel)
	s.logger.Info("mcp tool call", "tool", "delete_attachment", "attachment_id", id)

	if id == "" {
		return errorResult("attachment_id is required"), nil, nil
	}

	if err := s.client.DeleteAttachment(ctx, memos.AttachmentID(id)); err != nil {
		return errorResult(err.Error()), nil, nil
	}
	return textResult(fmt.Sprintf("Successfully deleted attachment: %s", memos.AttachmentID(id))), nil, nil
}
