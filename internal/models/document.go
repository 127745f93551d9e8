package models

import "time"

// ExpiryStatus classifies a document against today's date.
type ExpiryStatus string

const (
	ExpiryNone         ExpiryStatus = "no_expiry"
	ExpiryExpired      ExpiryStatus = "expired"
	ExpiryExpiringSoon ExpiryStatus = "expiring_soon"
	ExpiryValid        ExpiryStatus = "valid"
)

// DocumentType categorises employee documents (ID, passport, medical...).
type DocumentType struct {
	ID            string    `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Code          *string   `db:"code" json:"code,omitempty"`
	Description   *string   `db:"description" json:"description,omitempty"`
	DocumentCount int       `db:"document_count" json:"documentCount"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}

// EmployeeDocument is a stored file attached to an employee.
type EmployeeDocument struct {
	ID             string     `db:"id" json:"id"`
	Name           string     `db:"name" json:"name"`
	EmployeeID     string     `db:"employee_id" json:"employeeId"`
	DepartmentID   *string    `db:"department_id" json:"departmentId,omitempty"`
	DocumentTypeID *string    `db:"document_type_id" json:"documentTypeId,omitempty"`
	Description    *string    `db:"description" json:"description,omitempty"`
	FilePath       string     `db:"file_path" json:"-"`
	FileName       string     `db:"file_name" json:"fileName"`
	FileSize       int64      `db:"file_size" json:"fileSize"`
	UploadDate     time.Time  `db:"upload_date" json:"uploadDate"`
	ExpiryDate     *time.Time `db:"expiry_date" json:"expiryDate,omitempty"`
	Active         bool       `db:"active" json:"active"`
	UploadedBy     string     `db:"uploaded_by" json:"uploadedBy"`
	CreatedAt      time.Time  `db:"created_at" json:"createdAt"`

	ExpiryStatus ExpiryStatus `db:"-" json:"expiryStatus"`
	DaysToExpiry int          `db:"-" json:"daysToExpiry"`
	DownloadURL  string       `db:"-" json:"downloadUrl,omitempty"`
}

// DocumentFilter constrains document listings.
type DocumentFilter struct {
	EmployeeID      string
	DocumentTypeID  string
	// ExpiringBefore limits results to documents expiring on or before the date.
	ExpiringBefore  *time.Time
	IncludeArchived bool
	Limit           int
	Offset          int
}
