package memos

import "strings"

// MemoID extracts the bare identifier from a memo reference, accepting both
// "123" and "memos/123".
func MemoID(s string) string {
	if strings.HasPrefix(s, "memos/") {
		return lastSegment(s)
	}
	return s
}

// AttachmentID extracts the bare identifier from an attachment reference,
// accepting both "123" and "attachments/123".
func AttachmentID(s string) string {
	if strings.HasPrefix(s, "attachments/") {
		return lastSegment(s)
	}
	return s
}

// MemoName returns the resource name "memos/<id>" for a memo reference in
// either form.
func MemoName(s string) string {
	return "memos/" + MemoID(s)
}

func lastSegment(s string) string {
	return s[strings.LastIndex(s, "/")+1:]
}
