package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CaseState enumerates the disciplinary case stages.
type CaseState string

const (
	CaseStateNotified      CaseState = "notified"
	CaseStateShowCause     CaseState = "show_cause"
	CaseStateInvestigation CaseState = "investigation"
	CaseStateHearing       CaseState = "hearing"
	CaseStateDecision      CaseState = "decision"
	CaseStateAppeal        CaseState = "appeal"
	CaseStateClosed        CaseState = "closed"
)

// LabourLawBasis records the statutory footing of the case.
type LabourLawBasis string

const (
	LabourLawArt27       LabourLawBasis = "art_27"
	LabourLawArt28       LabourLawBasis = "art_28"
	LabourLawProgressive LabourLawBasis = "progressive"
)

// AcknowledgmentState is the employee's response to the case.
type AcknowledgmentState string

const (
	AckPending      AcknowledgmentState = "pending"
	AckAcknowledged AcknowledgmentState = "acknowledged"
	AckContested    AcknowledgmentState = "contested"
)

// DecisionOutcome is the formal result of a case.
type DecisionOutcome string

const (
	OutcomeCleared        DecisionOutcome = "cleared"
	OutcomeVerbalWarning  DecisionOutcome = "verbal_warning"
	OutcomeWrittenWarning DecisionOutcome = "written_warning"
	OutcomeFinalWarning   DecisionOutcome = "final_warning"
	OutcomeSuspension     DecisionOutcome = "suspension"
	OutcomeDemotion       DecisionOutcome = "demotion"
	OutcomeTermination    DecisionOutcome = "termination"
)

// TerminationType distinguishes Art. 27 and Art. 28 terminations.
type TerminationType string

const (
	TerminationWithoutNotice TerminationType = "without_notice"
	TerminationWithNotice    TerminationType = "with_notice"
)

// DeliveryMethod is how a notice or decision reached the employee.
type DeliveryMethod string

const (
	DeliveryPersonal    DeliveryMethod = "personal"
	DeliveryRefused     DeliveryMethod = "refused"
	DeliveryPostal      DeliveryMethod = "postal"
	DeliveryNoticeBoard DeliveryMethod = "notice_board"
)

// DisciplinaryCase is the aggregate root of the disciplinary workflow. Dates
// are calendar dates stored at UTC midnight.
type DisciplinaryCase struct {
	ID         string `db:"id" json:"id"`
	Reference  string `db:"reference" json:"reference"`
	EmployeeID string `db:"employee_id" json:"employeeId"`
	// Snapshots of the employee directory taken on create.
	DepartmentID *string `db:"department_id" json:"departmentId,omitempty"`
	Position     *string `db:"position" json:"position,omitempty"`
	ManagerID    *string `db:"manager_id" json:"managerId,omitempty"`

	IncidentDate            time.Time       `db:"incident_date" json:"incidentDate"`
	ReportedDate            time.Time       `db:"reported_date" json:"reportedDate"`
	Description             string          `db:"description" json:"description"`
	OffenseClassificationID string          `db:"offense_classification_id" json:"offenseClassificationId"`
	Severity                Severity        `db:"severity" json:"severity"`
	ImmediateDismissal      bool            `db:"immediate_dismissal" json:"immediateDismissal"`
	LabourLawBasis          *LabourLawBasis `db:"labour_law_basis" json:"labourLawBasis,omitempty"`

	State               CaseState           `db:"state" json:"state"`
	AcknowledgmentState AcknowledgmentState `db:"acknowledgment_state" json:"acknowledgmentState"`
	AcknowledgedDate    *time.Time          `db:"acknowledged_date" json:"acknowledgedDate,omitempty"`
	ContestReason       *string             `db:"contest_reason" json:"contestReason,omitempty"`
	ContestDate         *time.Time          `db:"contest_date" json:"contestDate,omitempty"`

	ShowCauseIssuedDate *time.Time `db:"show_cause_issued_date" json:"showCauseIssuedDate,omitempty"`
	ShowCauseDeadline   *time.Time `db:"show_cause_deadline" json:"showCauseDeadline,omitempty"`
	ShowCauseResponse   *string    `db:"show_cause_response" json:"showCauseResponse,omitempty"`
	ShowCauseResponded  bool       `db:"show_cause_responded" json:"showCauseResponded"`

	HearingDate      *time.Time `db:"hearing_date" json:"hearingDate,omitempty"`
	HearingNotes     *string    `db:"hearing_notes" json:"hearingNotes,omitempty"`
	HearingOfficerID *string    `db:"hearing_officer_id" json:"hearingOfficerId,omitempty"`

	DecisionOutcome    *DecisionOutcome `db:"decision_outcome" json:"decisionOutcome,omitempty"`
	DecisionRationale  *string          `db:"decision_rationale" json:"decisionRationale,omitempty"`
	DecisionDate       *time.Time       `db:"decision_date" json:"decisionDate,omitempty"`
	DecisionBy         *string          `db:"decision_by" json:"decisionBy,omitempty"`
	SuspensionDays     int              `db:"suspension_days" json:"suspensionDays"`
	SuspensionWithPay  bool             `db:"suspension_with_pay" json:"suspensionWithPay"`
	TerminationType    *TerminationType `db:"termination_type" json:"terminationType,omitempty"`
	NoticePeriodMonths int              `db:"notice_period_months" json:"noticePeriodMonths"`

	DecisionServed       bool            `db:"decision_served" json:"decisionServed"`
	DecisionServedDate   *time.Time      `db:"decision_served_date" json:"decisionServedDate,omitempty"`
	DecisionServedMethod *DeliveryMethod `db:"decision_served_method" json:"decisionServedMethod,omitempty"`

	NoticeDeliveryMethod  *DeliveryMethod `db:"notice_delivery_method" json:"noticeDeliveryMethod,omitempty"`
	NoticeWitnessID       *string         `db:"notice_witness_id" json:"noticeWitnessId,omitempty"`
	NoticeBoardPostedDate *time.Time      `db:"notice_board_posted_date" json:"noticeBoardPostedDate,omitempty"`

	EmployerKnowledgeDate *time.Time `db:"employer_knowledge_date" json:"employerKnowledgeDate,omitempty"`

	UnauthorizedAbsenceDays int  `db:"unauthorized_absence_days" json:"unauthorizedAbsenceDays"`
	LateArrivalCount        int  `db:"late_arrival_count" json:"lateArrivalCount"`
	AbsenceWarningsIssued   bool `db:"absence_warnings_issued" json:"absenceWarningsIssued"`

	ClosureDate                 *time.Time          `db:"closure_date" json:"closureDate,omitempty"`
	ClosureSummary              *string             `db:"closure_summary" json:"closureSummary,omitempty"`
	FinalPaymentCompleted       bool                `db:"final_payment_completed" json:"finalPaymentCompleted"`
	EmploymentCertificateIssued bool                `db:"employment_certificate_issued" json:"employmentCertificateIssued"`
	SeveranceApplicable         bool                `db:"severance_applicable" json:"severanceApplicable"`
	SeveranceAmount             decimal.NullDecimal `db:"severance_amount" json:"severanceAmount"`
	WarningExpiryDate           *time.Time          `db:"warning_expiry_date" json:"warningExpiryDate,omitempty"`

	LetterPath *string `db:"letter_path" json:"-"`

	CreatedBy string    `db:"created_by" json:"createdBy"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`

	CaseDerived
}

// CaseDerived holds values computed from stored fields and today's date.
type CaseDerived struct {
	EmployerDeadline       *time.Time `db:"-" json:"employerDeadline,omitempty"`
	IsTimeBarred           bool       `db:"-" json:"isTimeBarred"`
	NoticeBoardRemovalDate *time.Time `db:"-" json:"noticeBoardRemovalDate,omitempty"`
	FinalPaymentDueDate    *time.Time `db:"-" json:"finalPaymentDueDate,omitempty"`
	AppealDeadline         time.Time  `db:"-" json:"appealDeadline"`
}

// CaseFilter constrains case listings.
type CaseFilter struct {
	EmployeeID   string
	DepartmentID string
	States       []CaseState
	Severity     Severity
	Outcome      DecisionOutcome
	IncidentFrom *time.Time
	IncidentTo   *time.Time
	Search       string
	Page         int
	PageSize     int
	SortBy       string
	SortOrder    string
}

// WarningCounts are the prior closed-case outcomes used by the recommender.
type WarningCounts struct {
	Verbal  int `db:"verbal" json:"verbal"`
	Written int `db:"written" json:"written"`
	Final   int `db:"final" json:"final"`
}
