package domain

type ConsultantStatus string

const (
	StatusPending    ConsultantStatus = "Pending"
	StatusInProgress ConsultantStatus = "In Progress"
	StatusComplete   ConsultantStatus = "Complete"
)

// StatusCycle is the canonical ordering used by the status-cycle action.
var StatusCycle = []ConsultantStatus{StatusPending, StatusInProgress, StatusComplete}

// NextStatus returns the status following s in the cycle. Unknown or
// free-text statuses restart the cycle at Pending.
func NextStatus(s ConsultantStatus) ConsultantStatus {
	for i, c := range StatusCycle {
		if c == s {
			return StatusCycle[(i+1)%len(StatusCycle)]
		}
	}
	return StatusPending
}

type DocumentStatus string

const (
	DocPending   DocumentStatus = "Pending"
	DocCompleted DocumentStatus = "Completed"
	DocSent      DocumentStatus = "Sent"
	DocGenerated DocumentStatus = "Generated"
)

// ToggledDocStatus returns the status a document should move to when the
// user toggles its checklist entry: Completed flips back to Pending,
// everything else becomes Completed.
func ToggledDocStatus(s DocumentStatus) DocumentStatus {
	if s == DocCompleted {
		return DocPending
	}
	return DocCompleted
}

// EmploymentTypes is the fixed set offered by the new-consultant form.
var EmploymentTypes = []string{
	"Full-Time Consultant",
	"Part-Time Consultant",
	"Contract",
	"1099 Contractor",
}
