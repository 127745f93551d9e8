package discipline

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	appErrors "github.com/noah-isme/hr-disciplinary-api/pkg/errors"
)

// Case transition names recorded in the event log.
const (
	CaseCreated             = "created"
	CaseShowCauseIssued     = "show_cause_issued"
	CaseShowCauseResponded  = "show_cause_responded"
	CaseInvestigationOpened = "investigation_started"
	CaseHearingScheduled    = "hearing_scheduled"
	CaseMovedToDecision     = "moved_to_decision"
	CaseDecisionRecorded    = "decision_recorded"
	CaseDecisionServed      = "decision_served"
	CaseClosed              = "closed"
	CaseAppealOpened        = "appeal_opened"
	CaseAcknowledged        = "acknowledged"
	CaseContested           = "contested"
	CaseLetterGenerated     = "letter_generated"
)

// openStates are the pre-decision stages in which the employer deadline applies.
var openStates = map[models.CaseState]bool{
	models.CaseStateNotified:      true,
	models.CaseStateShowCause:     true,
	models.CaseStateInvestigation: true,
	models.CaseStateHearing:       true,
}

// Transition describes one applied state change.
type Transition struct {
	Entity   models.EventEntity
	EntityID string
	Name     string
	From     string
	To       string
	Details  map[string]any
}

// EmployerDeadline is knowledge date + 42 days, nil when unknown.
func EmployerDeadline(c *models.DisciplinaryCase) *time.Time {
	return addDaysPtr(c.EmployerKnowledgeDate, EmployerActionDays)
}

// IsTimeBarred reports whether the employer deadline has passed while the case
// is still in a pre-decision stage.
func IsTimeBarred(c *models.DisciplinaryCase, today time.Time) bool {
	deadline := EmployerDeadline(c)
	return deadline != nil && IsPast(*deadline, today) && openStates[c.State]
}

// AppealDeadline is the employee filing deadline. It is anchored to the
// incident date, so it can lapse before the decision is served.
func AppealDeadline(incident time.Time) time.Time {
	return AddDays(incident, AppealFilingDays)
}

// DeriveCase fills the computed fields of c.
func DeriveCase(c *models.DisciplinaryCase, today time.Time) {
	c.EmployerDeadline = EmployerDeadline(c)
	c.IsTimeBarred = IsTimeBarred(c, today)
	c.NoticeBoardRemovalDate = addDaysPtr(c.NoticeBoardPostedDate, NoticeBoardDays)
	c.FinalPaymentDueDate = nil
	if c.State == models.CaseStateClosed {
		c.FinalPaymentDueDate = addDaysPtr(c.ClosureDate, FinalPaymentDays)
	}
	c.AppealDeadline = AppealDeadline(c.IncidentDate)
}

// ValidateCase checks the structural invariants committed with a case.
func ValidateCase(c *models.DisciplinaryCase) error {
	if Date(c.ReportedDate).Before(Date(c.IncidentDate)) {
		return appErrors.Validation("reported date cannot be before the incident date")
	}
	if c.DecisionOutcome != nil && *c.DecisionOutcome == models.OutcomeTermination && c.TerminationType == nil {
		return appErrors.Validation("termination requires a termination type")
	}
	if c.SeveranceAmount.Valid && c.SeveranceAmount.Decimal.IsNegative() {
		return appErrors.Validation("severance amount cannot be negative")
	}
	return nil
}

// NewCase prepares a freshly reported case in the notified state.
func NewCase(c models.DisciplinaryCase, offense *models.OffenseClassification, employee *models.Employee, today time.Time) (*models.DisciplinaryCase, Transition, error) {
	if offense == nil || !offense.Active {
		return nil, Transition{}, appErrors.Validation("offense classification is not active")
	}
	c.IncidentDate = Date(c.IncidentDate)
	if c.ReportedDate.IsZero() {
		c.ReportedDate = Date(today)
	} else {
		c.ReportedDate = Date(c.ReportedDate)
	}
	c.EmployerKnowledgeDate = normalizePtr(c.EmployerKnowledgeDate)
	c.NoticeBoardPostedDate = normalizePtr(c.NoticeBoardPostedDate)
	c.OffenseClassificationID = offense.ID
	c.Severity = offense.Severity
	c.ImmediateDismissal = offense.ImmediateDismissal
	if employee != nil {
		c.EmployeeID = employee.ID
		c.DepartmentID = employee.DepartmentID
		c.Position = employee.Position
		c.ManagerID = employee.ManagerID
	}
	c.State = models.CaseStateNotified
	c.AcknowledgmentState = models.AckPending
	if err := ValidateCase(&c); err != nil {
		return nil, Transition{}, err
	}
	return &c, caseTransition(&c, CaseCreated, "", nil), nil
}

// IssueShowCause demands a written explanation, due in five days.
func IssueShowCause(c models.DisciplinaryCase, today time.Time) (*models.DisciplinaryCase, Transition, error) {
	if err := requireState(&c, "issue show cause", models.CaseStateNotified); err != nil {
		return nil, Transition{}, err
	}
	if IsTimeBarred(&c, today) {
		return nil, Transition{}, timeBarred()
	}
	from := c.State
	c.State = models.CaseStateShowCause
	c.ShowCauseIssuedDate = datePtr(today)
	c.ShowCauseDeadline = datePtr(AddDays(today, ShowCauseResponseDays))
	return &c, caseTransition(&c, CaseShowCauseIssued, from, map[string]any{
		"Deadline": c.ShowCauseDeadline.Format(time.DateOnly),
	}), nil
}

// RecordShowCauseResponse stores the employee's written response. An empty
// response falls back to one already on the case.
func RecordShowCauseResponse(c models.DisciplinaryCase, response string) (*models.DisciplinaryCase, Transition, error) {
	if err := requireState(&c, "record a show cause response", models.CaseStateShowCause); err != nil {
		return nil, Transition{}, err
	}
	if strings.TrimSpace(response) != "" {
		c.ShowCauseResponse = &response
	}
	if c.ShowCauseResponse == nil || strings.TrimSpace(*c.ShowCauseResponse) == "" {
		return nil, Transition{}, appErrors.UserError("record the employee's written response before confirming")
	}
	c.ShowCauseResponded = true
	return &c, caseTransition(&c, CaseShowCauseResponded, c.State, nil), nil
}

// StartInvestigation moves the case into investigation.
func StartInvestigation(c models.DisciplinaryCase, today time.Time) (*models.DisciplinaryCase, Transition, error) {
	if err := requireState(&c, "start an investigation", models.CaseStateNotified, models.CaseStateShowCause); err != nil {
		return nil, Transition{}, err
	}
	if IsTimeBarred(&c, today) {
		return nil, Transition{}, timeBarred()
	}
	from := c.State
	c.State = models.CaseStateInvestigation
	return &c, caseTransition(&c, CaseInvestigationOpened, from, nil), nil
}

// HearingInput carries optional hearing details supplied with the transition.
type HearingInput struct {
	Date      *time.Time
	OfficerID *string
	Notes     *string
}

// ScheduleHearing requires a hearing date, either supplied or already set.
func ScheduleHearing(c models.DisciplinaryCase, in HearingInput) (*models.DisciplinaryCase, Transition, error) {
	if err := requireState(&c, "schedule a hearing", models.CaseStateNotified, models.CaseStateShowCause, models.CaseStateInvestigation); err != nil {
		return nil, Transition{}, err
	}
	if in.Date != nil {
		c.HearingDate = datePtr(*in.Date)
	}
	if c.HearingDate == nil {
		return nil, Transition{}, appErrors.UserError("set a hearing date before scheduling the hearing")
	}
	if in.OfficerID != nil {
		c.HearingOfficerID = in.OfficerID
	}
	if in.Notes != nil {
		c.HearingNotes = in.Notes
	}
	from := c.State
	c.State = models.CaseStateHearing
	return &c, caseTransition(&c, CaseHearingScheduled, from, map[string]any{
		"HearingDate": c.HearingDate.Format(time.DateOnly),
	}), nil
}

// MoveToDecision opens the decision stage.
func MoveToDecision(c models.DisciplinaryCase) (*models.DisciplinaryCase, Transition, error) {
	if err := requireState(&c, "move to decision", models.CaseStateShowCause, models.CaseStateInvestigation, models.CaseStateHearing); err != nil {
		return nil, Transition{}, err
	}
	from := c.State
	c.State = models.CaseStateDecision
	return &c, caseTransition(&c, CaseMovedToDecision, from, nil), nil
}

// DecisionInput is the formal decision recorded by HR.
type DecisionInput struct {
	Outcome            models.DecisionOutcome
	Rationale          string
	TerminationType    *models.TerminationType
	NoticePeriodMonths int
	SuspensionDays     int
	SuspensionWithPay  bool
	WarningExpiryDate  *time.Time
	LabourLawBasis     *models.LabourLawBasis
}

// RecordDecision stores the outcome. Fields that do not apply to the outcome
// are cleared; a termination without a notice period gets one suggested from
// the employee's first contract date. A served decision is final.
func RecordDecision(c models.DisciplinaryCase, in DecisionInput, actorID string, firstContract *time.Time, today time.Time) (*models.DisciplinaryCase, Transition, error) {
	if err := requireState(&c, "record a decision", models.CaseStateDecision); err != nil {
		return nil, Transition{}, err
	}
	if c.DecisionServed {
		return nil, Transition{}, appErrors.UserError("the decision has already been served and cannot be changed")
	}
	if in.Outcome == "" {
		return nil, Transition{}, appErrors.UserError("select a decision outcome before recording")
	}
	if strings.TrimSpace(in.Rationale) == "" {
		return nil, Transition{}, appErrors.UserError("provide the decision rationale before recording")
	}
	if in.Outcome == models.OutcomeTermination && in.TerminationType == nil {
		return nil, Transition{}, appErrors.UserError("specify the termination type before recording")
	}

	outcome := in.Outcome
	rationale := in.Rationale
	c.DecisionOutcome = &outcome
	c.DecisionRationale = &rationale
	c.DecisionDate = datePtr(today)
	c.DecisionBy = &actorID
	c.WarningExpiryDate = normalizePtr(in.WarningExpiryDate)
	if in.LabourLawBasis != nil {
		c.LabourLawBasis = in.LabourLawBasis
	}

	c.TerminationType = nil
	c.NoticePeriodMonths = 0
	if outcome == models.OutcomeTermination {
		c.TerminationType = in.TerminationType
		c.NoticePeriodMonths = in.NoticePeriodMonths
		if c.NoticePeriodMonths == 0 && firstContract != nil {
			c.NoticePeriodMonths = NoticePeriodMonths(ServiceYears(*firstContract, today))
		}
	}
	c.SuspensionDays = 0
	c.SuspensionWithPay = false
	if outcome == models.OutcomeSuspension {
		c.SuspensionDays = in.SuspensionDays
		c.SuspensionWithPay = in.SuspensionWithPay
	}

	if err := ValidateCase(&c); err != nil {
		return nil, Transition{}, err
	}
	return &c, caseTransition(&c, CaseDecisionRecorded, c.State, map[string]any{
		"Outcome": string(outcome),
	}), nil
}

// ServeInput records how the decision reached the employee.
type ServeInput struct {
	Method    models.DeliveryMethod
	WitnessID *string
}

// ServeDecision marks the decision delivered. The appeal window stays anchored
// to the incident date; when it has already lapsed the transition records it.
func ServeDecision(c models.DisciplinaryCase, in ServeInput, today time.Time) (*models.DisciplinaryCase, Transition, error) {
	if err := requireState(&c, "serve the decision", models.CaseStateDecision); err != nil {
		return nil, Transition{}, err
	}
	if c.DecisionOutcome == nil {
		return nil, Transition{}, appErrors.UserError("record the decision outcome before serving it")
	}
	if in.Method == "" {
		return nil, Transition{}, appErrors.UserError("select how the decision was delivered to the employee")
	}
	method := in.Method
	c.DecisionServed = true
	c.DecisionServedDate = datePtr(today)
	c.DecisionServedMethod = &method
	if in.WitnessID != nil {
		c.NoticeWitnessID = in.WitnessID
	}
	if method == models.DeliveryNoticeBoard {
		c.NoticeBoardPostedDate = datePtr(today)
	}

	deadline := AppealDeadline(c.IncidentDate)
	details := map[string]any{
		"Method":         string(method),
		"AppealDeadline": deadline.Format(time.DateOnly),
	}
	if IsPast(deadline, today) {
		details["appeal_window_expired"] = true
	}
	return &c, caseTransition(&c, CaseDecisionServed, c.State, details), nil
}

// CloseInput carries final settlement details captured on closure.
type CloseInput struct {
	Summary                     *string
	FinalPaymentCompleted       bool
	EmploymentCertificateIssued bool
	SeveranceApplicable         bool
	SeveranceAmount             *decimal.Decimal
}

// CloseCase finalises the case; final payment falls due ten days later.
func CloseCase(c models.DisciplinaryCase, in CloseInput, today time.Time) (*models.DisciplinaryCase, Transition, error) {
	if err := requireState(&c, "close the case", models.CaseStateDecision, models.CaseStateAppeal); err != nil {
		return nil, Transition{}, err
	}
	if c.DecisionOutcome == nil {
		return nil, Transition{}, appErrors.UserError("a decision must be recorded before closing the case")
	}
	if in.Summary != nil {
		c.ClosureSummary = in.Summary
	}
	c.FinalPaymentCompleted = in.FinalPaymentCompleted
	c.EmploymentCertificateIssued = in.EmploymentCertificateIssued
	c.SeveranceApplicable = in.SeveranceApplicable
	c.SeveranceAmount = decimal.NullDecimal{}
	if in.SeveranceApplicable && in.SeveranceAmount != nil {
		c.SeveranceAmount = decimal.NewNullDecimal(*in.SeveranceAmount)
	}
	if err := ValidateCase(&c); err != nil {
		return nil, Transition{}, err
	}
	from := c.State
	closeCase(&c, today)
	return &c, caseTransition(&c, CaseClosed, from, map[string]any{
		"FinalPaymentDue": AddDays(today, FinalPaymentDays).Format(time.DateOnly),
	}), nil
}

// OpenAppeal moves a served decision into appeal.
func OpenAppeal(c models.DisciplinaryCase) (*models.DisciplinaryCase, Transition, error) {
	if !c.DecisionServed {
		return nil, Transition{}, appErrors.UserError("the decision must be served to the employee before an appeal can be filed")
	}
	if c.DecisionOutcome != nil && *c.DecisionOutcome == models.OutcomeCleared {
		return nil, Transition{}, appErrors.UserError("the employee was cleared; there is no decision to appeal")
	}
	if c.AcknowledgmentState == models.AckAcknowledged && c.State != models.CaseStateDecision {
		return nil, Transition{}, appErrors.UserError("the employee acknowledged the case; appeal is only available from the decision stage")
	}
	if err := requireState(&c, "open an appeal", models.CaseStateDecision); err != nil {
		return nil, Transition{}, err
	}
	from := c.State
	c.State = models.CaseStateAppeal
	return &c, caseTransition(&c, CaseAppealOpened, from, nil), nil
}

// Acknowledge records the employee's acknowledgment. Allowed in any state.
func Acknowledge(c models.DisciplinaryCase, today time.Time) (*models.DisciplinaryCase, Transition, error) {
	from := c.AcknowledgmentState
	c.AcknowledgmentState = models.AckAcknowledged
	c.AcknowledgedDate = datePtr(today)
	t := caseTransition(&c, CaseAcknowledged, "", nil)
	t.From, t.To = string(from), string(c.AcknowledgmentState)
	return &c, t, nil
}

// Contest records the employee's written dispute. Allowed in any state.
func Contest(c models.DisciplinaryCase, statement string, today time.Time) (*models.DisciplinaryCase, Transition, error) {
	if strings.TrimSpace(statement) == "" {
		return nil, Transition{}, appErrors.UserError("write a contest statement before contesting the case")
	}
	from := c.AcknowledgmentState
	c.AcknowledgmentState = models.AckContested
	c.ContestReason = &statement
	c.ContestDate = datePtr(today)
	t := caseTransition(&c, CaseContested, "", map[string]any{"Reason": statement})
	t.From, t.To = string(from), string(c.AcknowledgmentState)
	return &c, t, nil
}

// ServiceYears is the length of service in years, counting 365-day years.
func ServiceYears(firstContract, today time.Time) float64 {
	days := Date(today).Sub(Date(firstContract)).Hours() / 24
	return days / 365
}

func closeCase(c *models.DisciplinaryCase, today time.Time) {
	c.State = models.CaseStateClosed
	c.ClosureDate = datePtr(today)
}

func requireState(c *models.DisciplinaryCase, op string, allowed ...models.CaseState) error {
	if c.State == models.CaseStateClosed {
		return appErrors.UserError(fmt.Sprintf("cannot %s: case is closed", op))
	}
	for _, s := range allowed {
		if c.State == s {
			return nil
		}
	}
	return appErrors.UserError(fmt.Sprintf("cannot %s from the %s stage", op, c.State))
}

func timeBarred() error {
	return appErrors.UserError("this case is time-barred: the employer action deadline has passed")
}

func caseTransition(c *models.DisciplinaryCase, name string, from models.CaseState, details map[string]any) Transition {
	return Transition{
		Entity:   models.EntityCase,
		EntityID: c.ID,
		Name:     name,
		From:     string(from),
		To:       string(c.State),
		Details:  details,
	}
}

func normalizePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	return datePtr(*t)
}
