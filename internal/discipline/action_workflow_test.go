package discipline

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	appErrors "github.com/noah-isme/hr-disciplinary-api/pkg/errors"
)

func baseAction(stage models.ActionStage) models.DisciplinaryAction {
	return models.DisciplinaryAction{
		ID:            "act-1",
		CaseID:        "case-1",
		EmployeeID:    "emp-1",
		ActionType:    models.ActionWrittenWarning,
		Stage:         stage,
		Justification: "second late arrival",
		EffectiveDate: day("2024-02-01"),
	}
}

func TestValidateActionExpiry(t *testing.T) {
	a := baseAction(models.ActionStageDraft)
	a.HasExpiry = true
	assert.True(t, appErrors.IsValidation(ValidateAction(&a)), "expiry date missing")

	a.ExpiryDate = dayPtr("2024-02-01")
	assert.True(t, appErrors.IsValidation(ValidateAction(&a)), "expiry equal to effective")

	a.ExpiryDate = dayPtr("2024-01-15")
	assert.True(t, appErrors.IsValidation(ValidateAction(&a)), "expiry before effective")

	a.ExpiryDate = dayPtr("2024-08-01")
	assert.NoError(t, ValidateAction(&a))

	a.HasExpiry = false
	require.NoError(t, ValidateAction(&a))
	assert.NotNil(t, a.ExpiryDate, "validation leaves the action untouched")
}

func TestValidateActionTerminationAndFine(t *testing.T) {
	a := baseAction(models.ActionStageDraft)
	a.ActionType = models.ActionTermination
	assert.True(t, appErrors.IsValidation(ValidateAction(&a)))
	without := models.TerminationWithoutNotice
	a.TerminationType = &without
	assert.NoError(t, ValidateAction(&a))

	fine := baseAction(models.ActionStageDraft)
	fine.ActionType = models.ActionFine
	assert.True(t, appErrors.IsValidation(ValidateAction(&fine)))
	fine.FineAmount = decimal.NewNullDecimal(decimal.RequireFromString("150.00"))
	assert.NoError(t, ValidateAction(&fine))

	blank := baseAction(models.ActionStageDraft)
	blank.Justification = " "
	assert.True(t, appErrors.IsValidation(ValidateAction(&blank)))
}

func TestNewAction(t *testing.T) {
	c := baseCase()
	c.State = models.CaseStateDecision
	in := baseAction("")
	in.ActionType = models.ActionTermination
	with := models.TerminationWithNotice
	in.TerminationType = &with
	in.SuspensionDays = 4

	a, tr, err := NewAction(in, &c, dayPtr("2023-06-01"), day("2024-02-01"))
	require.NoError(t, err)
	assert.Equal(t, models.ActionStageDraft, a.Stage)
	assert.Equal(t, 1, a.NoticePeriodMonths)
	assert.Zero(t, a.SuspensionDays)
	assert.Equal(t, "termination", tr.Details["ActionType"])

	c.State = models.CaseStateClosed
	_, _, err = NewAction(in, &c, nil, day("2024-02-01"))
	assert.True(t, appErrors.IsUserError(err))
}

func TestNewActionDropsExpiryWhenDisabled(t *testing.T) {
	c := baseCase()
	c.State = models.CaseStateDecision
	in := baseAction("")
	in.ExpiryDate = dayPtr("2024-08-01")

	a, _, err := NewAction(in, &c, nil, day("2024-02-01"))
	require.NoError(t, err)
	assert.Nil(t, a.ExpiryDate)
	assert.NotNil(t, in.ExpiryDate)
}

func TestActionStageFlow(t *testing.T) {
	today := day("2024-02-02")
	a := baseAction(models.ActionStageDraft)

	_, _, err := ApproveAction(a, "mgr", today)
	assert.True(t, appErrors.IsUserError(err), "cannot approve a draft")

	next, _, err := SubmitForApproval(a)
	require.NoError(t, err)
	next, tr, err := ApproveAction(*next, "mgr", today)
	require.NoError(t, err)
	assert.Equal(t, "pending_approval", tr.From)
	assert.Equal(t, "mgr", *next.ApprovedBy)

	method := models.DeliveryPersonal
	next, _, err = MarkServed(*next, &method, today)
	require.NoError(t, err)
	assert.Equal(t, today, *next.NoticeServedDate)

	next, _, err = CompleteAction(*next)
	require.NoError(t, err)
	assert.Equal(t, models.ActionStageCompleted, next.Stage)

	_, _, err = MarkAppealed(*next)
	assert.True(t, appErrors.IsUserError(err))
}

func TestRevokeAction(t *testing.T) {
	a := baseAction(models.ActionStageServed)
	_, _, err := RevokeAction(a, "", "hr", day("2024-02-03"))
	assert.True(t, appErrors.IsValidation(err))

	out, _, err := RevokeAction(a, "wrong employee", "hr", day("2024-02-03"))
	require.NoError(t, err)
	assert.Equal(t, models.ActionStageRevoked, out.Stage)
	assert.Equal(t, "hr", *out.RevokedBy)

	_, _, err = RevokeAction(*out, "again", "hr", day("2024-02-03"))
	assert.True(t, appErrors.IsUserError(err))
}

func TestActiveWarning(t *testing.T) {
	a := baseAction(models.ActionStageServed)
	a.HasExpiry = true
	a.ExpiryDate = dayPtr("2024-06-01")

	DeriveAction(&a, day("2024-06-01"))
	assert.False(t, a.IsExpired)
	assert.True(t, a.IsActiveWarning)

	DeriveAction(&a, day("2024-06-02"))
	assert.True(t, a.IsExpired)
	assert.False(t, a.IsActiveWarning)

	draft := baseAction(models.ActionStageDraft)
	assert.False(t, IsActiveWarning(&draft, day("2024-03-01")))

	suspension := baseAction(models.ActionStageApproved)
	suspension.ActionType = models.ActionSuspension
	assert.False(t, IsActiveWarning(&suspension, day("2024-03-01")))
}
