package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActionType enumerates disciplinary sanctions.
type ActionType string

const (
	ActionVerbalWarning  ActionType = "verbal_warning"
	ActionWrittenWarning ActionType = "written_warning"
	ActionFinalWarning   ActionType = "final_warning"
	ActionSuspension     ActionType = "suspension"
	ActionDemotion       ActionType = "demotion"
	ActionFine           ActionType = "fine"
	ActionTermination    ActionType = "termination"
)

// IsWarning reports whether t counts toward progressive discipline.
func (t ActionType) IsWarning() bool {
	return t == ActionVerbalWarning || t == ActionWrittenWarning || t == ActionFinalWarning
}

// ActionStage captures the sanction lifecycle.
type ActionStage string

const (
	ActionStageDraft           ActionStage = "draft"
	ActionStagePendingApproval ActionStage = "pending_approval"
	ActionStageApproved        ActionStage = "approved"
	ActionStageServed          ActionStage = "served"
	ActionStageCompleted       ActionStage = "completed"
	ActionStageRevoked         ActionStage = "revoked"
	ActionStageAppealed        ActionStage = "appealed"
)

// DisciplinaryAction is a sanction issued under a case.
type DisciplinaryAction struct {
	ID            string      `db:"id" json:"id"`
	CaseID        string      `db:"case_id" json:"caseId"`
	EmployeeID    string      `db:"employee_id" json:"employeeId"`
	ActionType    ActionType  `db:"action_type" json:"actionType"`
	Stage         ActionStage `db:"stage" json:"stage"`
	Justification string      `db:"justification" json:"justification"`
	ApprovedBy    *string     `db:"approved_by" json:"approvedBy,omitempty"`
	ApprovedDate  *time.Time  `db:"approved_date" json:"approvedDate,omitempty"`
	EffectiveDate time.Time   `db:"effective_date" json:"effectiveDate"`
	HasExpiry     bool        `db:"has_expiry" json:"hasExpiry"`
	ExpiryDate    *time.Time  `db:"expiry_date" json:"expiryDate,omitempty"`

	SuspensionDays    int                 `db:"suspension_days" json:"suspensionDays"`
	SuspensionWithPay bool                `db:"suspension_with_pay" json:"suspensionWithPay"`
	FineAmount        decimal.NullDecimal `db:"fine_amount" json:"fineAmount"`
	FineCurrency      *string             `db:"fine_currency" json:"fineCurrency,omitempty"`

	TerminationType      *TerminationType `db:"termination_type" json:"terminationType,omitempty"`
	NoticePeriodMonths   int              `db:"notice_period_months" json:"noticePeriodMonths"`
	NoticeServedDate     *time.Time       `db:"notice_served_date" json:"noticeServedDate,omitempty"`
	NoticeDeliveryMethod *DeliveryMethod  `db:"notice_delivery_method" json:"noticeDeliveryMethod,omitempty"`

	RevokeReason *string    `db:"revoke_reason" json:"revokeReason,omitempty"`
	RevokedBy    *string    `db:"revoked_by" json:"revokedBy,omitempty"`
	RevokedDate  *time.Time `db:"revoked_date" json:"revokedDate,omitempty"`

	CreatedBy string    `db:"created_by" json:"createdBy"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`

	IsExpired       bool `db:"-" json:"isExpired"`
	IsActiveWarning bool `db:"-" json:"isActiveWarning"`
}

// ActionFilter constrains action listings.
type ActionFilter struct {
	CaseID     string
	EmployeeID string
	Stages     []ActionStage
	Types      []ActionType
	Limit      int
	Offset     int
}
