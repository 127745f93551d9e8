package models

import "time"

// ResignationState captures resignation processing.
type ResignationState string

const (
	ResignationDraft    ResignationState = "draft"
	ResignationConfirm  ResignationState = "confirm"
	ResignationApproved ResignationState = "approved"
	ResignationCancel   ResignationState = "cancel"
)

// ResignationType distinguishes voluntary exits from dismissals.
type ResignationType string

const (
	ResignationResigned ResignationType = "resigned"
	ResignationFired    ResignationType = "fired"
)

// Resignation is an employee separation request.
type Resignation struct {
	ID                string           `db:"id" json:"id"`
	Reference         string           `db:"reference" json:"reference"`
	EmployeeID        string           `db:"employee_id" json:"employeeId"`
	DepartmentID      *string          `db:"department_id" json:"departmentId,omitempty"`
	ContractStartDate *time.Time       `db:"contract_start_date" json:"contractStartDate,omitempty"`
	ExpectedLastDay   time.Time        `db:"expected_last_day" json:"expectedLastDay"`
	ApprovedLastDay   *time.Time       `db:"approved_last_day" json:"approvedLastDay,omitempty"`
	ConfirmDate       *time.Time       `db:"confirm_date" json:"confirmDate,omitempty"`
	Reason            string           `db:"reason" json:"reason"`
	ResignationType   *ResignationType `db:"resignation_type" json:"resignationType,omitempty"`
	State             ResignationState `db:"state" json:"state"`
	CreatedBy         string           `db:"created_by" json:"createdBy"`
	CreatedAt         time.Time        `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time        `db:"updated_at" json:"updatedAt"`
}

// ResignationFilter constrains resignation listings.
type ResignationFilter struct {
	EmployeeID string
	States     []ResignationState
	Limit      int
	Offset     int
}
