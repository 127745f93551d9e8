package discipline

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	appErrors "github.com/noah-isme/hr-disciplinary-api/pkg/errors"
)

func baseCase() models.DisciplinaryCase {
	return models.DisciplinaryCase{
		ID:                  "case-1",
		EmployeeID:          "emp-1",
		IncidentDate:        day("2024-01-10"),
		ReportedDate:        day("2024-01-11"),
		Description:         "left shift without permission",
		Severity:            models.SeverityModerate,
		State:               models.CaseStateNotified,
		AcknowledgmentState: models.AckPending,
	}
}

func decidedCase(outcome models.DecisionOutcome) models.DisciplinaryCase {
	c := baseCase()
	c.State = models.CaseStateDecision
	c.DecisionOutcome = &outcome
	return c
}

func servedCase(outcome models.DecisionOutcome) models.DisciplinaryCase {
	c := decidedCase(outcome)
	c.DecisionServed = true
	c.DecisionServedDate = dayPtr("2024-01-20")
	return c
}

func TestNewCase(t *testing.T) {
	offense := &models.OffenseClassification{ID: "off-1", Severity: models.SeverityGross, ImmediateDismissal: true, Active: true}
	dept, pos := "dept-1", "Driver"
	employee := &models.Employee{ID: "emp-1", DepartmentID: &dept, Position: &pos}

	in := baseCase()
	in.State = ""
	in.ReportedDate = time.Time{}
	c, tr, err := NewCase(in, offense, employee, day("2024-01-12"))
	require.NoError(t, err)
	assert.Equal(t, models.CaseStateNotified, c.State)
	assert.Equal(t, models.AckPending, c.AcknowledgmentState)
	assert.Equal(t, day("2024-01-12"), c.ReportedDate)
	assert.Equal(t, models.SeverityGross, c.Severity)
	assert.True(t, c.ImmediateDismissal)
	assert.Equal(t, &dept, c.DepartmentID)
	assert.Equal(t, CaseCreated, tr.Name)

	in.ReportedDate = day("2024-01-09")
	_, _, err = NewCase(in, offense, employee, day("2024-01-12"))
	assert.True(t, appErrors.IsValidation(err))

	_, _, err = NewCase(baseCase(), &models.OffenseClassification{ID: "off-2"}, employee, day("2024-01-12"))
	assert.True(t, appErrors.IsValidation(err))
}

func TestIsTimeBarred(t *testing.T) {
	c := baseCase()
	assert.False(t, IsTimeBarred(&c, day("2030-01-01")), "no knowledge date")

	c.EmployerKnowledgeDate = dayPtr("2024-01-10")
	assert.Equal(t, day("2024-02-21"), *EmployerDeadline(&c))
	assert.False(t, IsTimeBarred(&c, day("2024-02-21")))
	assert.True(t, IsTimeBarred(&c, day("2024-02-22")))

	for _, s := range []models.CaseState{models.CaseStateDecision, models.CaseStateAppeal, models.CaseStateClosed} {
		c.State = s
		assert.False(t, IsTimeBarred(&c, day("2024-06-01")), s)
	}
}

func TestIssueShowCause(t *testing.T) {
	c := baseCase()
	out, tr, err := IssueShowCause(c, day("2024-01-15"))
	require.NoError(t, err)
	assert.Equal(t, models.CaseStateShowCause, out.State)
	assert.Equal(t, day("2024-01-15"), *out.ShowCauseIssuedDate)
	assert.Equal(t, day("2024-01-20"), *out.ShowCauseDeadline)
	assert.Equal(t, "notified", tr.From)
	assert.Equal(t, "show_cause", tr.To)
	assert.Equal(t, models.CaseStateNotified, c.State, "input is not mutated")

	c.EmployerKnowledgeDate = dayPtr("2023-11-01")
	_, _, err = IssueShowCause(c, day("2024-01-15"))
	assert.True(t, appErrors.IsUserError(err))
}

func TestStartInvestigationTimeBarred(t *testing.T) {
	c := baseCase()
	c.State = models.CaseStateShowCause
	c.EmployerKnowledgeDate = dayPtr("2024-01-01")

	_, _, err := StartInvestigation(c, day("2024-02-13"))
	assert.True(t, appErrors.IsUserError(err))

	out, _, err := StartInvestigation(c, day("2024-02-12"))
	require.NoError(t, err)
	assert.Equal(t, models.CaseStateInvestigation, out.State)
}

func TestRecordShowCauseResponse(t *testing.T) {
	c := baseCase()
	c.State = models.CaseStateShowCause

	_, _, err := RecordShowCauseResponse(c, "  ")
	assert.True(t, appErrors.IsUserError(err))

	out, _, err := RecordShowCauseResponse(c, "I was unwell")
	require.NoError(t, err)
	assert.True(t, out.ShowCauseResponded)
	assert.Equal(t, "I was unwell", *out.ShowCauseResponse)
}

func TestScheduleHearingRequiresDate(t *testing.T) {
	c := baseCase()
	c.State = models.CaseStateInvestigation

	_, _, err := ScheduleHearing(c, HearingInput{})
	assert.True(t, appErrors.IsUserError(err))

	out, tr, err := ScheduleHearing(c, HearingInput{Date: dayPtr("2024-01-25")})
	require.NoError(t, err)
	assert.Equal(t, models.CaseStateHearing, out.State)
	assert.Equal(t, "2024-01-25", tr.Details["HearingDate"])
}

func TestRecordDecision(t *testing.T) {
	c := baseCase()
	c.State = models.CaseStateDecision
	c.SuspensionDays = 3
	today := day("2024-01-30")

	_, _, err := RecordDecision(c, DecisionInput{Rationale: "x"}, "hr-1", nil, today)
	assert.True(t, appErrors.IsUserError(err))
	_, _, err = RecordDecision(c, DecisionInput{Outcome: models.OutcomeFinalWarning}, "hr-1", nil, today)
	assert.True(t, appErrors.IsUserError(err))
	_, _, err = RecordDecision(c, DecisionInput{Outcome: models.OutcomeTermination, Rationale: "x"}, "hr-1", nil, today)
	assert.True(t, appErrors.IsUserError(err))

	out, _, err := RecordDecision(c, DecisionInput{Outcome: models.OutcomeFinalWarning, Rationale: "repeat offense", NoticePeriodMonths: 2}, "hr-1", nil, today)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeFinalWarning, *out.DecisionOutcome)
	assert.Equal(t, "hr-1", *out.DecisionBy)
	assert.Equal(t, today, *out.DecisionDate)
	assert.Zero(t, out.SuspensionDays, "suspension fields cleared")
	assert.Zero(t, out.NoticePeriodMonths, "termination fields cleared")
	assert.Nil(t, out.TerminationType)

	withNotice := models.TerminationWithNotice
	out, _, err = RecordDecision(c, DecisionInput{Outcome: models.OutcomeTermination, Rationale: "gross", TerminationType: &withNotice}, "hr-1", dayPtr("2020-01-01"), today)
	require.NoError(t, err)
	assert.Equal(t, 2, out.NoticePeriodMonths)

	out, _, err = RecordDecision(c, DecisionInput{Outcome: models.OutcomeTermination, Rationale: "gross", TerminationType: &withNotice}, "hr-1", dayPtr("2010-01-01"), today)
	require.NoError(t, err)
	assert.Equal(t, 3, out.NoticePeriodMonths)

	out, _, err = RecordDecision(c, DecisionInput{Outcome: models.OutcomeSuspension, Rationale: "x", SuspensionDays: 5, SuspensionWithPay: true}, "hr-1", nil, today)
	require.NoError(t, err)
	assert.Equal(t, 5, out.SuspensionDays)
	assert.True(t, out.SuspensionWithPay)
}

func TestRecordDecisionAfterServiceRejected(t *testing.T) {
	c := servedCase(models.OutcomeFinalWarning)

	out, _, err := RecordDecision(c, DecisionInput{Outcome: models.OutcomeCleared, Rationale: "reconsidered"}, "hr-1", nil, day("2024-01-25"))
	assert.Nil(t, out)
	assert.True(t, appErrors.IsUserError(err))
	assert.Equal(t, models.OutcomeFinalWarning, *c.DecisionOutcome)
}

func TestServeDecision(t *testing.T) {
	c := baseCase()
	c.State = models.CaseStateDecision

	_, _, err := ServeDecision(c, ServeInput{Method: models.DeliveryPersonal}, day("2024-01-20"))
	assert.True(t, appErrors.IsUserError(err), "outcome required")

	c = decidedCase(models.OutcomeWrittenWarning)
	_, _, err = ServeDecision(c, ServeInput{}, day("2024-01-20"))
	assert.True(t, appErrors.IsUserError(err), "method required")

	out, tr, err := ServeDecision(c, ServeInput{Method: models.DeliveryNoticeBoard}, day("2024-01-20"))
	require.NoError(t, err)
	assert.True(t, out.DecisionServed)
	assert.Equal(t, day("2024-01-20"), *out.DecisionServedDate)
	assert.Equal(t, day("2024-01-20"), *out.NoticeBoardPostedDate)
	assert.Equal(t, "2024-01-31", tr.Details["AppealDeadline"])
	assert.NotContains(t, tr.Details, "appeal_window_expired")

	DeriveCase(out, day("2024-01-20"))
	assert.Equal(t, day("2024-01-30"), *out.NoticeBoardRemovalDate)

	_, tr, err = ServeDecision(c, ServeInput{Method: models.DeliveryPostal}, day("2024-02-05"))
	require.NoError(t, err)
	assert.Equal(t, true, tr.Details["appeal_window_expired"])
}

func TestCloseCase(t *testing.T) {
	c := baseCase()
	c.State = models.CaseStateDecision
	_, _, err := CloseCase(c, CloseInput{}, day("2024-02-01"))
	assert.True(t, appErrors.IsUserError(err))

	c = servedCase(models.OutcomeTermination)
	withNotice := models.TerminationWithNotice
	c.TerminationType = &withNotice
	amount := decimal.RequireFromString("1250.50")
	out, _, err := CloseCase(c, CloseInput{SeveranceApplicable: true, SeveranceAmount: &amount}, day("2024-02-01"))
	require.NoError(t, err)
	assert.Equal(t, models.CaseStateClosed, out.State)
	assert.True(t, out.SeveranceAmount.Decimal.Equal(amount))

	DeriveCase(out, day("2024-02-01"))
	assert.Equal(t, day("2024-02-11"), *out.FinalPaymentDueDate)

	negative := decimal.NewFromInt(-1)
	_, _, err = CloseCase(c, CloseInput{SeveranceApplicable: true, SeveranceAmount: &negative}, day("2024-02-01"))
	assert.True(t, appErrors.IsValidation(err))
}

func TestClosedIsTerminal(t *testing.T) {
	c := servedCase(models.OutcomeFinalWarning)
	c.State = models.CaseStateClosed
	today := day("2024-02-01")

	_, _, err := IssueShowCause(c, today)
	assert.True(t, appErrors.IsUserError(err))
	_, _, err = StartInvestigation(c, today)
	assert.True(t, appErrors.IsUserError(err))
	_, _, err = ScheduleHearing(c, HearingInput{Date: &today})
	assert.True(t, appErrors.IsUserError(err))
	_, _, err = MoveToDecision(c)
	assert.True(t, appErrors.IsUserError(err))
	_, _, err = CloseCase(c, CloseInput{}, today)
	assert.True(t, appErrors.IsUserError(err))
	_, _, err = OpenAppeal(c)
	assert.True(t, appErrors.IsUserError(err))

	_, _, err = Acknowledge(c, today)
	assert.NoError(t, err, "employee actions ignore HR state")
}

func TestOpenAppeal(t *testing.T) {
	notServed := decidedCase(models.OutcomeFinalWarning)
	_, _, err := OpenAppeal(notServed)
	assert.True(t, appErrors.IsUserError(err))

	cleared := servedCase(models.OutcomeCleared)
	_, _, err = OpenAppeal(cleared)
	assert.True(t, appErrors.IsUserError(err))

	ack := servedCase(models.OutcomeFinalWarning)
	ack.AcknowledgmentState = models.AckAcknowledged
	out, tr, err := OpenAppeal(ack)
	require.NoError(t, err)
	assert.Equal(t, models.CaseStateAppeal, out.State)
	assert.Equal(t, CaseAppealOpened, tr.Name)

	ack.State = models.CaseStateHearing
	_, _, err = OpenAppeal(ack)
	assert.True(t, appErrors.IsUserError(err))
}

func TestAcknowledgeAndContest(t *testing.T) {
	c := baseCase()
	c.State = models.CaseStateHearing
	today := day("2024-01-15")

	out, tr, err := Acknowledge(c, today)
	require.NoError(t, err)
	assert.Equal(t, models.AckAcknowledged, out.AcknowledgmentState)
	assert.Equal(t, models.CaseStateHearing, out.State)
	assert.Equal(t, "pending", tr.From)
	assert.Equal(t, "acknowledged", tr.To)

	_, _, err = Contest(c, " ", today)
	assert.True(t, appErrors.IsUserError(err))

	out, _, err = Contest(c, "I was on approved leave", today)
	require.NoError(t, err)
	assert.Equal(t, models.AckContested, out.AcknowledgmentState)
	assert.Equal(t, today, *out.ContestDate)
}

func TestDeriveCaseAppealDeadline(t *testing.T) {
	c := baseCase()
	DeriveCase(&c, day("2024-01-15"))
	assert.Equal(t, day("2024-01-31"), c.AppealDeadline)
	assert.Nil(t, c.FinalPaymentDueDate)
	assert.Nil(t, c.EmployerDeadline)
}

func TestFullCaseLifecycle(t *testing.T) {
	c := baseCase()
	c.EmployerKnowledgeDate = dayPtr("2024-01-10")
	steps := []func(models.DisciplinaryCase) (*models.DisciplinaryCase, Transition, error){
		func(c models.DisciplinaryCase) (*models.DisciplinaryCase, Transition, error) {
			return IssueShowCause(c, day("2024-01-12"))
		},
		func(c models.DisciplinaryCase) (*models.DisciplinaryCase, Transition, error) {
			return RecordShowCauseResponse(c, "response")
		},
		func(c models.DisciplinaryCase) (*models.DisciplinaryCase, Transition, error) {
			return StartInvestigation(c, day("2024-01-18"))
		},
		func(c models.DisciplinaryCase) (*models.DisciplinaryCase, Transition, error) {
			return ScheduleHearing(c, HearingInput{Date: dayPtr("2024-01-22")})
		},
		MoveToDecision,
		func(c models.DisciplinaryCase) (*models.DisciplinaryCase, Transition, error) {
			return RecordDecision(c, DecisionInput{Outcome: models.OutcomeWrittenWarning, Rationale: "late"}, "hr-1", nil, day("2024-01-23"))
		},
		func(c models.DisciplinaryCase) (*models.DisciplinaryCase, Transition, error) {
			return ServeDecision(c, ServeInput{Method: models.DeliveryPersonal}, day("2024-01-24"))
		},
		OpenAppeal,
		func(c models.DisciplinaryCase) (*models.DisciplinaryCase, Transition, error) {
			return CloseCase(c, CloseInput{}, day("2024-02-10"))
		},
	}
	for i, step := range steps {
		next, _, err := step(c)
		require.NoError(t, err, "step %d", i)
		c = *next
	}
	assert.Equal(t, models.CaseStateClosed, c.State)
}
