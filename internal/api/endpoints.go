package api

import (
	"context"
	"fmt"

	"github.com/solutionspm/onboard/internal/contract"
	"github.com/solutionspm/onboard/internal/domain"
)

// Summary fetches the aggregate status counts.
func (c *Client) Summary(ctx context.Context) (domain.Summary, error) {
	var s domain.Summary
	err := c.get(ctx, "/api/summary", &s)
	return s, err
}

// Consultants fetches all consultant summaries.
func (c *Client) Consultants(ctx context.Context) ([]domain.Consultant, error) {
	var list []domain.Consultant
	err := c.get(ctx, "/api/consultants", &list)
	return list, err
}

// Consultant fetches one consultant's full record: profile, documents,
// activities, and computed completion stats.
func (c *Client) Consultant(ctx context.Context, id int64) (*contract.ConsultantDetail, error) {
	var detail contract.ConsultantDetail
	if err := c.get(ctx, fmt.Sprintf("/api/consultants/%d", id), &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// ConsultantActivities fetches the activity log for one consultant.
func (c *Client) ConsultantActivities(ctx context.Context, id int64) ([]domain.Activity, error) {
	var acts []domain.Activity
	err := c.get(ctx, fmt.Sprintf("/api/consultants/%d/activities", id), &acts)
	return acts, err
}

// CreateConsultant submits a new consultant and returns the created record.
func (c *Client) CreateConsultant(ctx context.Context, req contract.NewConsultantRequest) (*domain.Consultant, error) {
	var created domain.Consultant
	if err := c.post(ctx, "/api/consultants", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// GenerateDocs asks the backend to generate onboarding documents, returning
// any inline base64 file payloads.
func (c *Client) GenerateDocs(ctx context.Context, id int64) (*contract.GenerateDocsResponse, error) {
	var resp contract.GenerateDocsResponse
	if err := c.post(ctx, fmt.Sprintf("/api/consultants/%d/generate-docs", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SendOffer emails the offer letter to the consultant.
func (c *Client) SendOffer(ctx context.Context, id int64) (*contract.MessageResponse, error) {
	var resp contract.MessageResponse
	if err := c.post(ctx, fmt.Sprintf("/api/consultants/%d/send-offer", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SendReminder emails a pending-documents reminder to the consultant.
func (c *Client) SendReminder(ctx context.Context, id int64) (*contract.MessageResponse, error) {
	var resp contract.MessageResponse
	if err := c.post(ctx, fmt.Sprintf("/api/consultants/%d/send-reminder", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddStandardDocs applies the predefined document checklist to a consultant.
func (c *Client) AddStandardDocs(ctx context.Context, id int64) error {
	return c.post(ctx, fmt.Sprintf("/api/consultants/%d/add-standard-docs", id), nil, nil)
}

// UpdateConsultantStatus sets a consultant's onboarding status.
func (c *Client) UpdateConsultantStatus(ctx context.Context, id int64, status domain.ConsultantStatus) error {
	body := contract.StatusUpdateRequest{Status: string(status)}
	return c.put(ctx, fmt.Sprintf("/api/consultants/%d/status", id), body, nil)
}

// UpdateDocumentStatus sets one checklist document's status.
func (c *Client) UpdateDocumentStatus(ctx context.Context, docID int64, status domain.DocumentStatus) error {
	body := contract.StatusUpdateRequest{Status: string(status)}
	return c.put(ctx, fmt.Sprintf("/api/documents/%d/status", docID), body, nil)
}

// ExportKinds are the datasets the backend can export as CSV.
var ExportKinds = []string{"consultants", "documents", "activities"}

// ExportCSV downloads one dataset export into destDir and returns the
// written path.
func (c *Client) ExportCSV(ctx context.Context, kind, destDir string) (string, error) {
	return c.download(ctx, "/api/export/"+kind, destDir, kind+".csv")
}

// DownloadFile fetches a stored document file by name into destDir.
func (c *Client) DownloadFile(ctx context.Context, filename, destDir string) (string, error) {
	return c.download(ctx, "/api/download/"+filename, destDir, filename)
}
