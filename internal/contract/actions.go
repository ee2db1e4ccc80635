package contract

// MessageResponse is the common acknowledgement shape for side-effecting
// endpoints (send-offer, send-reminder, add-standard-docs).
type MessageResponse struct {
	Message string `json:"message"`
}

// GeneratedFile is one inline file payload returned by generate-docs on
// serverless deployments, carried as base64 instead of a stored path.
type GeneratedFile struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Data string `json:"data"`
}

// GenerateDocsResponse is the response for POST /api/consultants/:id/generate-docs.
type GenerateDocsResponse struct {
	Message   string          `json:"message"`
	Offer     string          `json:"offer,omitempty"`
	Checklist string          `json:"checklist,omitempty"`
	Files     []GeneratedFile `json:"files,omitempty"`
}
