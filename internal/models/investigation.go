package models

import "time"

// InvestigationState captures investigation progress.
type InvestigationState string

const (
	InvestigationOngoing   InvestigationState = "ongoing"
	InvestigationCompleted InvestigationState = "completed"
	InvestigationSuspended InvestigationState = "suspended"
)

// Investigation records fact finding performed for a case.
type Investigation struct {
	ID         string             `db:"id" json:"id"`
	CaseID     string             `db:"case_id" json:"caseId"`
	EmployeeID string             `db:"employee_id" json:"employeeId"`
	OfficerID  string             `db:"officer_id" json:"officerId"`
	StartDate  time.Time          `db:"start_date" json:"startDate"`
	EndDate    *time.Time         `db:"end_date" json:"endDate,omitempty"`
	Findings   *string            `db:"findings" json:"findings,omitempty"`
	Witnesses  *string            `db:"witnesses" json:"witnesses,omitempty"`
	State      InvestigationState `db:"state" json:"state"`
	CreatedBy  string             `db:"created_by" json:"createdBy"`
	CreatedAt  time.Time          `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time          `db:"updated_at" json:"updatedAt"`

	IsOverdue bool `db:"-" json:"isOverdue"`
}
