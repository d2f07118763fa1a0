package model

import "strings"

// UserConcern is the bundle of free-form input a patient provides about
// their condition. Every field is optional, but at least one must be
// populated before classification makes sense. Immutable once submitted.
type UserConcern struct {
	Keywords        string `json:"keywords,omitempty"`
	Questions       string `json:"questions,omitempty"`
	Description     string `json:"description,omitempty"`
	AttachmentCount int    `json:"attachment_count,omitempty"`
}

// IsEmpty reports whether no field carries any usable input.
// Attachment contents are never parsed, only counted, so a positive
// count still counts as input.
func (c UserConcern) IsEmpty() bool {
	return strings.TrimSpace(c.Keywords) == "" &&
		strings.TrimSpace(c.Questions) == "" &&
		strings.TrimSpace(c.Description) == "" &&
		c.AttachmentCount <= 0
}

// ClassifyRequest is the wire form of a classification call.
type ClassifyRequest struct {
	UserConcern
}

// ClassifyResponse carries the recommended specialty.
type ClassifyResponse struct {
	Specialty string `json:"specialty"`
	Took      int64  `json:"took_ms"`
}
