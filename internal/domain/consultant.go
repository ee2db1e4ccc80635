package domain

// Consultant is the primary tracked entity: a person undergoing onboarding.
// All fields are owned by the backend; the client holds transient copies
// exactly as delivered (no local arithmetic on the doc_* fields).
type Consultant struct {
	ID             int64            `json:"id"`
	Name           string           `json:"name"`
	Email          string           `json:"email"`
	Position       string           `json:"position"`
	Manager        string           `json:"manager"`
	StartDate      string           `json:"start_date"`
	EndDate        string           `json:"end_date"`
	EmploymentType string           `json:"employment_type"`
	PayRate        string           `json:"pay_rate"`
	Status         ConsultantStatus `json:"status"`
	CreatedAt      string           `json:"created_at"`

	// Checklist aggregates, present on list responses.
	DocTotal     int     `json:"doc_total"`
	DocCompleted int     `json:"doc_completed"`
	DocProgress  float64 `json:"doc_progress"`
}
