package dto

import (
	"io"

	"github.com/noah-isme/hr-disciplinary-api/internal/models"
)

// CreateDocumentTypeRequest defines a document category.
type CreateDocumentTypeRequest struct {
	Name        string  `json:"name" validate:"required,max=120"`
	Code        *string `json:"code" validate:"omitempty,max=32"`
	Description *string `json:"description"`
}

// UploadDocumentRequest is built from a multipart upload.
type UploadDocumentRequest struct {
	Name           string
	EmployeeID     string `validate:"required"`
	DocumentTypeID *string
	Description    *string
	UploadDate     *Date
	ExpiryDate     *Date
	FileName       string `validate:"required"`
	Size           int64
	Content        io.Reader `validate:"required"`
}

// CreateResignationRequest files a resignation.
type CreateResignationRequest struct {
	EmployeeID        string `json:"employeeId"`
	ContractStartDate *Date  `json:"contractStartDate"`
	ExpectedLastDay   *Date  `json:"expectedLastDay" validate:"required"`
	Reason            string `json:"reason" validate:"required"`
}

// ApproveResignationRequest classifies the separation on approval.
type ApproveResignationRequest struct {
	ResignationType models.ResignationType `json:"resignationType" validate:"required,oneof=resigned fired"`
}

// CreateExitInterviewRequest records an exit interview.
type CreateExitInterviewRequest struct {
	EmployeeID            string             `json:"employeeId" validate:"required"`
	ResignationID         *string            `json:"resignationId"`
	InterviewDate         *Date              `json:"interviewDate"`
	InterviewerID         *string            `json:"interviewerId"`
	ExitReason            *models.ExitReason `json:"exitReason" validate:"omitempty,oneof=resignation termination contract_end retirement other"`
	WouldRehire           bool               `json:"wouldRehire"`
	WorkEnvironmentRating *int               `json:"workEnvironmentRating" validate:"omitempty,min=1,max=5"`
	ManagementRating      *int               `json:"managementRating" validate:"omitempty,min=1,max=5"`
	CompensationRating    *int               `json:"compensationRating" validate:"omitempty,min=1,max=5"`
	GrowthRating          *int               `json:"growthRating" validate:"omitempty,min=1,max=5"`
	Feedback              *string            `json:"feedback"`
	Recommendation        *string            `json:"recommendation"`
}

// IssueTokenResponse is a signed development token.
type IssueTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}
