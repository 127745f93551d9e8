package models

import "time"

// AppealStage captures the appeal lifecycle.
type AppealStage string

const (
	AppealStageSubmitted        AppealStage = "submitted"
	AppealStageUnderReview      AppealStage = "under_review"
	AppealStageHearingScheduled AppealStage = "hearing_scheduled"
	AppealStageDecided          AppealStage = "decided"
	AppealStageClosed           AppealStage = "closed"
)

// AppealOutcome is the result of an appeal hearing.
type AppealOutcome string

const (
	AppealUpheld          AppealOutcome = "upheld"
	AppealPartiallyUpheld AppealOutcome = "partially_upheld"
	AppealDismissed       AppealOutcome = "dismissed"
)

// Appeal contests a served case decision, optionally against one action.
type Appeal struct {
	ID             string         `db:"id" json:"id"`
	CaseID         string         `db:"case_id" json:"caseId"`
	EmployeeID     string         `db:"employee_id" json:"employeeId"`
	ActionID       *string        `db:"action_id" json:"actionId,omitempty"`
	SubmissionDate time.Time      `db:"submission_date" json:"submissionDate"`
	Grounds        string         `db:"grounds" json:"grounds"`
	Stage          AppealStage    `db:"stage" json:"stage"`
	HearingDate    *time.Time     `db:"hearing_date" json:"hearingDate,omitempty"`
	HearingNotes   *string        `db:"hearing_notes" json:"hearingNotes,omitempty"`
	Decision       *string        `db:"decision" json:"decision,omitempty"`
	Outcome        *AppealOutcome `db:"outcome" json:"outcome,omitempty"`
	DecidedBy      *string        `db:"decided_by" json:"decidedBy,omitempty"`
	DecisionDate   *time.Time     `db:"decision_date" json:"decisionDate,omitempty"`
	CreatedBy      string         `db:"created_by" json:"createdBy"`
	CreatedAt      time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updatedAt"`

	EmployeeDeadline time.Time `db:"-" json:"employeeDeadline"`
	IsLateFiling     bool      `db:"-" json:"isLateFiling"`
}
