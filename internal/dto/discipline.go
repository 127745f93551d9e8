package dto

import (
	"github.com/shopspring/decimal"

	"github.com/noah-isme/hr-disciplinary-api/internal/models"
)

// UpsertOffenseRequest creates or replaces an offense classification.
type UpsertOffenseRequest struct {
	Name                  string               `json:"name" validate:"required,max=200"`
	Description           string               `json:"description"`
	Severity              models.Severity      `json:"severity" validate:"required,oneof=minor moderate serious gross"`
	ApprovalLevel         models.ApprovalLevel `json:"approvalLevel" validate:"required,oneof=hr manager executive"`
	InvestigationRequired bool                 `json:"investigationRequired"`
	ImmediateDismissal    bool                 `json:"immediateDismissal"`
	Active                *bool                `json:"active"`
}

// CreateCaseRequest reports a new disciplinary case.
type CreateCaseRequest struct {
	EmployeeID              string                 `json:"employeeId" validate:"required"`
	OffenseClassificationID string                 `json:"offenseClassificationId" validate:"required"`
	IncidentDate            *Date                  `json:"incidentDate" validate:"required"`
	ReportedDate            *Date                  `json:"reportedDate"`
	Description             string                 `json:"description" validate:"required"`
	LabourLawBasis          *models.LabourLawBasis `json:"labourLawBasis" validate:"omitempty,oneof=art_27 art_28 progressive"`
	EmployerKnowledgeDate   *Date                  `json:"employerKnowledgeDate"`
	NoticeDeliveryMethod    *models.DeliveryMethod `json:"noticeDeliveryMethod" validate:"omitempty,oneof=personal refused postal notice_board"`
	NoticeWitnessID         *string                `json:"noticeWitnessId"`
	NoticeBoardPostedDate   *Date                  `json:"noticeBoardPostedDate"`
	UnauthorizedAbsenceDays int                    `json:"unauthorizedAbsenceDays" validate:"min=0"`
	LateArrivalCount        int                    `json:"lateArrivalCount" validate:"min=0"`
	AbsenceWarningsIssued   bool                   `json:"absenceWarningsIssued"`
}

// ShowCauseResponseRequest carries the employee's written explanation.
type ShowCauseResponseRequest struct {
	Response string `json:"response"`
}

// HearingRequest schedules a disciplinary or appeal hearing.
type HearingRequest struct {
	Date      *Date   `json:"date"`
	OfficerID *string `json:"officerId"`
	Notes     *string `json:"notes"`
}

// DecisionRequest records the case decision.
type DecisionRequest struct {
	Outcome            models.DecisionOutcome  `json:"outcome" validate:"omitempty,oneof=cleared verbal_warning written_warning final_warning suspension demotion termination"`
	Rationale          string                  `json:"rationale"`
	TerminationType    *models.TerminationType `json:"terminationType" validate:"omitempty,oneof=without_notice with_notice"`
	NoticePeriodMonths int                     `json:"noticePeriodMonths" validate:"min=0"`
	SuspensionDays     int                     `json:"suspensionDays" validate:"min=0"`
	SuspensionWithPay  bool                    `json:"suspensionWithPay"`
	WarningExpiryDate  *Date                   `json:"warningExpiryDate"`
	LabourLawBasis     *models.LabourLawBasis  `json:"labourLawBasis" validate:"omitempty,oneof=art_27 art_28 progressive"`
}

// ServeDecisionRequest records delivery of the decision.
type ServeDecisionRequest struct {
	Method    models.DeliveryMethod `json:"method" validate:"omitempty,oneof=personal refused postal notice_board"`
	WitnessID *string               `json:"witnessId"`
}

// CloseCaseRequest captures settlement details on closure.
type CloseCaseRequest struct {
	Summary                     *string          `json:"summary"`
	FinalPaymentCompleted       bool             `json:"finalPaymentCompleted"`
	EmploymentCertificateIssued bool             `json:"employmentCertificateIssued"`
	SeveranceApplicable         bool             `json:"severanceApplicable"`
	SeveranceAmount             *decimal.Decimal `json:"severanceAmount"`
}

// ContestRequest is the employee's contest statement.
type ContestRequest struct {
	Statement string `json:"statement"`
}

// RecommendationResponse is the advisory sanction and what it was based on.
type RecommendationResponse struct {
	CaseID         string               `json:"caseId"`
	Recommendation string               `json:"recommendation"`
	PriorWarnings  models.WarningCounts `json:"priorWarnings"`
}

// LetterResponse points at a generated decision letter.
type LetterResponse struct {
	CaseID      string `json:"caseId"`
	DownloadURL string `json:"downloadUrl"`
	ExpiresAt   string `json:"expiresAt"`
}

// CreateActionRequest drafts a disciplinary action.
type CreateActionRequest struct {
	ActionType         models.ActionType       `json:"actionType" validate:"required,oneof=verbal_warning written_warning final_warning suspension demotion fine termination"`
	Justification      string                  `json:"justification"`
	EffectiveDate      *Date                   `json:"effectiveDate"`
	HasExpiry          bool                    `json:"hasExpiry"`
	ExpiryDate         *Date                   `json:"expiryDate"`
	SuspensionDays     int                     `json:"suspensionDays" validate:"min=0"`
	SuspensionWithPay  bool                    `json:"suspensionWithPay"`
	FineAmount         *decimal.Decimal        `json:"fineAmount"`
	FineCurrency       *string                 `json:"fineCurrency" validate:"omitempty,len=3"`
	TerminationType    *models.TerminationType `json:"terminationType" validate:"omitempty,oneof=without_notice with_notice"`
	NoticePeriodMonths int                     `json:"noticePeriodMonths" validate:"min=0"`
}

// ServeActionRequest records delivery of an action notice.
type ServeActionRequest struct {
	Method *models.DeliveryMethod `json:"method" validate:"omitempty,oneof=personal refused postal notice_board"`
}

// RevokeActionRequest withdraws an action.
type RevokeActionRequest struct {
	Reason string `json:"reason"`
}

// CreateAppealRequest files an appeal against a served decision.
type CreateAppealRequest struct {
	ActionID       *string `json:"actionId"`
	Grounds        string  `json:"grounds"`
	SubmissionDate *Date   `json:"submissionDate"`
}

// DecideAppealRequest records the appeal outcome.
type DecideAppealRequest struct {
	Outcome  models.AppealOutcome `json:"outcome"`
	Decision string               `json:"decision"`
}

// CreateInvestigationRequest opens an investigation.
type CreateInvestigationRequest struct {
	OfficerID string  `json:"officerId"`
	StartDate *Date   `json:"startDate"`
	EndDate   *Date   `json:"endDate"`
	Witnesses *string `json:"witnesses"`
}

// CompleteInvestigationRequest carries the findings.
type CompleteInvestigationRequest struct {
	Findings *string `json:"findings"`
}
