package models

import "time"

// Severity grades an offense.
type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityModerate Severity = "moderate"
	SeveritySerious  Severity = "serious"
	SeverityGross    Severity = "gross"
)

// ApprovalLevel is the authority needed to approve actions for an offense.
type ApprovalLevel string

const (
	ApprovalHR        ApprovalLevel = "hr"
	ApprovalManager   ApprovalLevel = "manager"
	ApprovalExecutive ApprovalLevel = "executive"
)

// OffenseClassification is reference data describing a category of misconduct.
type OffenseClassification struct {
	ID                    string        `db:"id" json:"id"`
	Name                  string        `db:"name" json:"name"`
	Description           string        `db:"description" json:"description"`
	Severity              Severity      `db:"severity" json:"severity"`
	ApprovalLevel         ApprovalLevel `db:"approval_level" json:"approvalLevel"`
	InvestigationRequired bool          `db:"investigation_required" json:"investigationRequired"`
	ImmediateDismissal    bool          `db:"immediate_dismissal" json:"immediateDismissal"`
	Active                bool          `db:"active" json:"active"`
	CreatedBy             *string       `db:"created_by" json:"createdBy,omitempty"`
	UpdatedBy             *string       `db:"updated_by" json:"updatedBy,omitempty"`
	CreatedAt             time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt             time.Time     `db:"updated_at" json:"updatedAt"`

	DefaultAction ActionType `db:"-" json:"defaultAction"`
}

// OffenseFilter constrains offense listings.
type OffenseFilter struct {
	Severity   Severity
	ActiveOnly bool
	Search     string
}
