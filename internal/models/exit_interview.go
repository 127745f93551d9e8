package models

import "time"

// ExitInterviewState captures exit interview progress.
type ExitInterviewState string

const (
	ExitInterviewDraft     ExitInterviewState = "draft"
	ExitInterviewConfirmed ExitInterviewState = "confirmed"
	ExitInterviewDone      ExitInterviewState = "done"
)

// ExitReason is why the employee is leaving.
type ExitReason string

const (
	ExitResignation ExitReason = "resignation"
	ExitTermination ExitReason = "termination"
	ExitContractEnd ExitReason = "contract_end"
	ExitRetirement  ExitReason = "retirement"
	ExitOther       ExitReason = "other"
)

// ExitInterview records structured leaver feedback. Ratings run 1 to 5.
type ExitInterview struct {
	ID                    string             `db:"id" json:"id"`
	Reference             string             `db:"reference" json:"reference"`
	EmployeeID            string             `db:"employee_id" json:"employeeId"`
	ResignationID         *string            `db:"resignation_id" json:"resignationId,omitempty"`
	InterviewDate         time.Time          `db:"interview_date" json:"interviewDate"`
	InterviewerID         *string            `db:"interviewer_id" json:"interviewerId,omitempty"`
	ExitReason            *ExitReason        `db:"exit_reason" json:"exitReason,omitempty"`
	WouldRehire           bool               `db:"would_rehire" json:"wouldRehire"`
	WorkEnvironmentRating *int               `db:"work_environment_rating" json:"workEnvironmentRating,omitempty"`
	ManagementRating      *int               `db:"management_rating" json:"managementRating,omitempty"`
	CompensationRating    *int               `db:"compensation_rating" json:"compensationRating,omitempty"`
	GrowthRating          *int               `db:"growth_rating" json:"growthRating,omitempty"`
	Feedback              *string            `db:"feedback" json:"feedback,omitempty"`
	Recommendation        *string            `db:"recommendation" json:"recommendation,omitempty"`
	State                 ExitInterviewState `db:"state" json:"state"`
	CreatedBy             string             `db:"created_by" json:"createdBy"`
	CreatedAt             time.Time          `db:"created_at" json:"createdAt"`
	UpdatedAt             time.Time          `db:"updated_at" json:"updatedAt"`
}

// ExitInterviewFilter constrains exit interview listings.
type ExitInterviewFilter struct {
	EmployeeID    string
	ResignationID string
	States        []ExitInterviewState
	Limit         int
	Offset        int
}
