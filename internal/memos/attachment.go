package memos

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

// CreateAttachment creates a standalone attachment. A custom ID, if given,
// travels as the attachmentId query parameter rather than in the body.
func (c *Client) CreateAttachment(ctx context.Context, p CreateAttachmentParams) (json.RawMessage, error) {
	payload := map[string]any{
		"filename": p.Filename,
		"type":     p.Type,
	}
	if p.Content != "" {
		payload["content"] = p.Content
	}
	if p.ExternalLink != "" {
		payload["externalLink"] = p.ExternalLink
	}
	if p.Memo != "" {
		payload["memo"] = p.Memo
	}

	var q url.Values
	if p.AttachmentID != "" {
		q = url.Values{"attachmentId": {p.AttachmentID}}
	}
	return c.do(ctx, http.MethodPost, "/api/v1/attachments", q, payload)
}

// GetAttachment fetches an attachment by bare ID.
func (c *Client) GetAttachment(ctx context.Context, id string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/api/v1/attachments/"+id, nil, nil)
}

// ListAttachments lists attachments with pagination, CEL filtering, and
// ordering.
func (c *Client) ListAttachments(ctx context.Context, p ListAttachmentsParams) (json.RawMessage, error) {
	q := url.Values{}
	if p.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(p.PageSize))
	}
	if p.PageToken != "" {
		q.Set("pageToken", p.PageToken)
	}
	if p.Filter != "" {
		q.Set("filter", p.Filter)
	}
	if p.OrderBy != "" {
		q.Set("orderBy", p.OrderBy)
	}
	return c.do(ctx, http.MethodGet, "/api/v1/attachments", q, nil)
}

// UpdateAttachment patches an attachment. updateMask names the fields the
// server should apply, comma-separated.
func (c *Client) UpdateAttachment(ctx context.Context, id, updateMask string, p UpdateAttachmentParams) (json.RawMessage, error) {
	payload := map[string]any{}
	if p.Filename != nil {
		payload["filename"] = *p.Filename
	}
	if p.Type != nil {
		payload["type"] = *p.Type
	}
	if p.Content != nil {
		payload["content"] = *p.Content
	}
	if p.ExternalLink != nil {
		payload["externalLink"] = *p.ExternalLink
	}
	if p.Memo != nil {
		payload["memo"] = *p.Memo
	}

	q := url.Values{"updateMask": {updateMask}}
	return c.do(ctx, http.MethodPatch, "/api/v1/attachments/"+id, q, payload)
}

// DeleteAttachment deletes an attachment by bare ID.
func (c *Client) DeleteAttachment(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/v1/attachments/"+id, nil, nil)
	return err
}
