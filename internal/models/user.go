package models

import "time"

// UserRole represents the roles carried in identity tokens.
type UserRole string

const (
	RoleAdmin     UserRole = "ADMIN"
	RoleHRManager UserRole = "HR_MANAGER"
	RoleHROfficer UserRole = "HR_OFFICER"
	RoleExecutive UserRole = "EXECUTIVE"
	RoleEmployee  UserRole = "EMPLOYEE"
)

// Valid reports whether r is a known role.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleHRManager, RoleHROfficer, RoleExecutive, RoleEmployee:
		return true
	}
	return false
}

// Employee is the directory record the workflows snapshot from.
type Employee struct {
	ID                string     `db:"id" json:"id"`
	UserID            *string    `db:"user_id" json:"userId,omitempty"`
	FullName          string     `db:"full_name" json:"fullName"`
	DepartmentID      *string    `db:"department_id" json:"departmentId,omitempty"`
	DepartmentName    *string    `db:"department_name" json:"departmentName,omitempty"`
	Position          *string    `db:"position" json:"position,omitempty"`
	ManagerID         *string    `db:"manager_id" json:"managerId,omitempty"`
	FirstContractDate *time.Time `db:"first_contract_date" json:"firstContractDate,omitempty"`
	Active            bool       `db:"active" json:"active"`
	CreatedAt         time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updatedAt"`
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
