package memos

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

// CreateMemo creates a new memo and returns the created memo JSON.
func (c *Client) CreateMemo(ctx context.Context, p CreateMemoParams) (json.RawMessage, error) {
	if p.Visibility == "" {
		p.Visibility = "PRIVATE"
	}
	if p.State == "" {
		p.State = "NORMAL"
	}

	payload := map[string]any{
		"content":    p.Content,
		"visibility": "VISIBILITY_" + p.Visibility,
		"state":      "STATE_" + p.State,
	}
	// pinned is optional on the wire; only sent when set.
	if p.Pinned {
		payload["pinned"] = true
	}
	if p.Name != "" {
		payload["name"] = p.Name
	}
	if p.CreateTime != "" {
		payload["createTime"] = p.CreateTime
	}
	if p.UpdateTime != "" {
		payload["updateTime"] = p.UpdateTime
	}
	if p.DisplayTime != "" {
		payload["displayTime"] = p.DisplayTime
	}
	if p.Attachments != nil {
		payload["attachments"] = p.Attachments
	}
	if p.Relations != nil {
		payload["relations"] = p.Relations
	}
	if p.Property != nil {
		payload["property"] = p.Property
	}
	if p.Location != nil {
		payload["location"] = p.Location
	}

	return c.do(ctx, http.MethodPost, "/api/v1/memos", nil, payload)
}

// ListMemos lists memos with pagination, sorting, and CEL filtering. Filter
// and orderBy expressions pass through to the API verbatim.
func (c *Client) ListMemos(ctx context.Context, p ListMemosParams) (json.RawMessage, error) {
	q := url.Values{}
	if p.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(p.PageSize))
	}
	if p.PageToken != "" {
		q.Set("pageToken", p.PageToken)
	}
	if p.State != "" {
		q.Set("state", "STATE_"+p.State)
	}
	if p.OrderBy != "" {
		q.Set("orderBy", p.OrderBy)
	}
	if p.Filter != "" {
		q.Set("filter", p.Filter)
	}
	if p.ShowDeleted != nil {
		q.Set("showDeleted", strconv.FormatBool(*p.ShowDeleted))
	}
	return c.do(ctx, http.MethodGet, "/api/v1/memos", q, nil)
}

// GetMemo fetches a memo by bare ID.
func (c *Client) GetMemo(ctx context.Context, id string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/api/v1/memos/"+id, nil, nil)
}

// UpdateMemo patches a memo; only fields present in p are sent.
func (c *Client) UpdateMemo(ctx context.Context, id string, p UpdateMemoParams) (json.RawMessage, error) {
	payload := map[string]any{}
	if p.Content != nil {
		payload["content"] = *p.Content
	}
	if p.Visibility != nil {
		payload["visibility"] = "VISIBILITY_" + *p.Visibility
	}
	if p.State != nil {
		payload["state"] = "STATE_" + *p.State
	}
	if p.Pinned != nil {
		payload["pinned"] = *p.Pinned
	}
	if p.CreateTime != nil {
		payload["createTime"] = *p.CreateTime
	}
	if p.UpdateTime != nil {
		payload["updateTime"] = *p.UpdateTime
	}
	if p.DisplayTime != nil {
		payload["displayTime"] = *p.DisplayTime
	}
	if p.Attachments != nil {
		payload["attachments"] = p.Attachments
	}
	if p.Relations != nil {
		payload["relations"] = p.Relations
	}
	if p.Property != nil {
		payload["property"] = p.Property
	}
	if p.Location != nil {
		payload["location"] = p.Location
	}
	return c.do(ctx, http.MethodPatch, "/api/v1/memos/"+id, nil, payload)
}

// DeleteMemo deletes a memo by bare ID.
func (c *Client) DeleteMemo(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/v1/memos/"+id, nil, nil)
	return err
}

// ListMemoAttachments lists the attachments of a memo.
func (c *Client) ListMemoAttachments(ctx context.Context, id string, p PageParams) (json.RawMessage, error) {
	q := url.Values{}
	if p.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(p.PageSize))
	}
	if p.PageToken != "" {
		q.Set("pageToken", p.PageToken)
	}
	return c.do(ctx, http.MethodGet, "/api/v1/memos/"+id+"/attachments", q, nil)
}

// SetMemoAttachments replaces all attachments of a memo.
func (c *Client) SetMemoAttachments(ctx context.Context, id string, attachments []Attachment) error {
	payload := map[string]any{
		"name":        MemoName(id),
		"attachments": attachments,
	}
	_, err := c.do(ctx, http.MethodPatch, "/api/v1/memos/"+id+"/attachments", nil, payload)
	return err
}
