package memos

// Memo visibility values accepted by the API. The wire format carries a
// VISIBILITY_ prefix that callers never see.
var Visibilities = []string{"PRIVATE", "PROTECTED", "PUBLIC"}

// Memo state values accepted by the API. The wire format carries a STATE_
// prefix.
var States = []string{"NORMAL", "ARCHIVED"}

// ValidVisibility reports whether v is one of PRIVATE, PROTECTED, PUBLIC.
func ValidVisibility(v string) bool { return contains(Visibilities, v) }

// ValidState reports whether v is one of NORMAL, ARCHIVED.
func ValidState(v string) bool { return contains(States, v) }

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// Attachment is a memo attachment as sent to the API. Size and createTime are
// output-only fields set by the server and must not be included on writes.
type Attachment struct {
	Name         string `json:"name,omitempty"`
	Filename     string `json:"filename,omitempty"`
	Type         string `json:"type,omitempty"`
	Content      string `json:"content,omitempty"`
	ExternalLink string `json:"externalLink,omitempty"`
	Memo         string `json:"memo,omitempty"`
}

// CreateMemoParams are the fields for CreateMemo. Content is required;
// Visibility and State default to PRIVATE and NORMAL. Optional fields are
// omitted from the request body when zero.
type CreateMemoParams struct {
	Content     string
	Visibility  string
	State       string
	Pinned      bool
	Name        string
	CreateTime  string
	UpdateTime  string
	DisplayTime string
	Attachments []Attachment
	Relations   []map[string]any
	Property    map[string]any
	Location    map[string]any
}

// UpdateMemoParams are the fields for UpdateMemo. Nil pointers and nil
// slices/maps are left out of the PATCH body entirely.
type UpdateMemoParams struct {
	Content     *string
	Visibility  *string
	State       *string
	Pinned      *bool
	CreateTime  *string
	UpdateTime  *string
	DisplayTime *string
	Attachments []Attachment
	Relations   []map[string]any
	Property    map[string]any
	Location    map[string]any
}

// ListMemosParams are the query parameters for ListMemos. Zero values are
// omitted; ShowDeleted is a pointer so an explicit false is still sent.
type ListMemosParams struct {
	PageSize    int
	PageToken   string
	State       string
	OrderBy     string
	Filter      string
	ShowDeleted *bool
}

// PageParams are pagination parameters for per-memo attachment listings.
type PageParams struct {
	PageSize  int
	PageToken string
}

// CreateAttachmentParams are the fields for CreateAttachment. Filename and
// Type are required. AttachmentID is sent as a query parameter when set.
type CreateAttachmentParams struct {
	Filename     string
	Type         string
	AttachmentID string
	Content      string
	ExternalLink string
	Memo         string
}

// UpdateAttachmentParams are the fields for UpdateAttachment. Nil pointers
// are left out of the PATCH body; the update mask decides what the server
// applies.
type UpdateAttachmentParams struct {
	Filename     *string
	Type         *string
	Content      *string
	ExternalLink *string
	Memo         *string
}

// ListAttachmentsParams are the query parameters for ListAttachments.
type ListAttachmentsParams struct {
	PageSize  int
	PageToken string
	Filter    string
	OrderBy   string
}
