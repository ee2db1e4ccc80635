package domain

import "strings"

// Document is one checklist item (e.g. W-4) associated with a consultant.
type Document struct {
	ID           int64          `json:"id"`
	ConsultantID int64          `json:"consultant_id"`
	DocumentType string         `json:"document_type"`
	FilePath     string         `json:"file_path"`
	Status       DocumentStatus `json:"status"`
	SentDate     string         `json:"sent_date"`
	ReceivedDate string         `json:"received_date"`
}

// Filename returns the last path segment of FilePath, splitting on either
// slash style. Empty when no file is attached.
func (d Document) Filename() string {
	if d.FilePath == "" {
		return ""
	}
	segs := strings.FieldsFunc(d.FilePath, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(segs) == 0 {
		return ""
	}
	return segs[len(segs)-1]
}

// StandardDocumentTypes is the predefined checklist applied in bulk by the
// add-standard-docs action (matches the backend's set, shown in empty states).
var StandardDocumentTypes = []string{
	"Offer Letter",
	"Job Description",
	"W-4",
	"I-9",
	"Direct Deposit Form",
}
