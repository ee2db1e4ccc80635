// Package contract defines the request and response shapes exchanged with
// the onboarding REST API.
package contract

import "github.com/solutionspm/onboard/internal/domain"

// NewConsultantRequest is the body for POST /api/consultants. Blank optional
// fields are sent as empty strings (dates as null), never omitted.
type NewConsultantRequest struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Position        string  `json:"position"`
	Manager         string  `json:"manager"`
	PayRate         string  `json:"pay_rate"`
	StartDate       *string `json:"start_date"`
	EndDate         *string `json:"end_date"`
	EmploymentType  string  `json:"employment_type"`
	AddStandardDocs bool    `json:"add_standard_docs"`
}

// ConsultantDetail is the response for GET /api/consultants/:id.
type ConsultantDetail struct {
	Consultant           domain.Consultant  `json:"consultant"`
	Documents            []domain.Document  `json:"documents"`
	Activities           []domain.Activity  `json:"activities"`
	TotalDocuments       int                `json:"total_documents"`
	CompletedDocuments   int                `json:"completed_documents"`
	CompletionPercentage float64            `json:"completion_percentage"`
}

// StatusUpdateRequest is the body for the consultant and document status
// PUT endpoints.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}
