package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hr-disciplinary-api/internal/dto"
	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	appErrors "github.com/noah-isme/hr-disciplinary-api/pkg/errors"
)

type memActions map[string]*models.DisciplinaryAction

func (m memActions) List(_ context.Context, filter models.ActionFilter) ([]models.DisciplinaryAction, error) {
	var out []models.DisciplinaryAction
	for _, a := range m {
		if filter.CaseID == "" || a.CaseID == filter.CaseID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m memActions) GetByID(_ context.Context, id string) (*models.DisciplinaryAction, error) {
	a, ok := m[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copy := *a
	return &copy, nil
}

func pendingAction(caseID string) *models.DisciplinaryAction {
	return &models.DisciplinaryAction{
		ID:            "act-1",
		CaseID:        caseID,
		EmployeeID:    "emp-1",
		ActionType:    models.ActionWrittenWarning,
		Stage:         models.ActionStagePendingApproval,
		Justification: "second offence",
		EffectiveDate: day("2026-03-12"),
	}
}

func TestActionServiceCreateFine(t *testing.T) {
	f := newWorkflowFixture("2026-03-12", decisionCase(models.OutcomeWrittenWarning, true))
	svc := NewActionService(memActions{}, f.deps)
	amount := decimal.RequireFromString("150.00")
	currency := "EUR"

	a, err := svc.Create(context.Background(), hrOfficer, "case-1", dto.CreateActionRequest{
		ActionType:    models.ActionFine,
		Justification: "damaged equipment",
		FineAmount:    &amount,
		FineCurrency:  &currency,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, models.ActionStageDraft, a.Stage)
	assert.Equal(t, "emp-1", a.EmployeeID)
	assert.Equal(t, day("2026-03-12"), a.EffectiveDate)
	assert.True(t, a.FineAmount.Decimal.Equal(amount))

	cs := f.store.last()
	require.NotNil(t, cs.CreateAction)
	assert.Equal(t, a.ID, cs.Events[0].EntityID)
	assert.Equal(t, models.EntityAction, cs.Events[0].Entity)
}

func TestActionServiceCreateRejectsExpiryBeforeEffective(t *testing.T) {
	f := newWorkflowFixture("2026-03-12", decisionCase(models.OutcomeWrittenWarning, true))
	svc := NewActionService(memActions{}, f.deps)
	effective := dto.NewDate(day("2026-03-12"))
	expiry := dto.NewDate(day("2026-03-01"))

	_, err := svc.Create(context.Background(), hrOfficer, "case-1", dto.CreateActionRequest{
		ActionType:    models.ActionWrittenWarning,
		Justification: "x",
		EffectiveDate: &effective,
		HasExpiry:     true,
		ExpiryDate:    &expiry,
	})
	assert.True(t, appErrors.IsValidation(err))
	assert.Empty(t, f.store.applied)
}

func TestActionServiceApproveRespectsApprovalLevel(t *testing.T) {
	c := decisionCase(models.OutcomeTermination, true)
	c.OffenseClassificationID = "off-gross"
	f := newWorkflowFixture("2026-03-12", c)
	svc := NewActionService(memActions{"act-1": pendingAction("case-1")}, f.deps)
	ctx := context.Background()

	_, err := svc.Approve(ctx, hrManager, "act-1")
	assert.ErrorIs(t, err, appErrors.ErrForbidden)
	assert.Empty(t, f.store.applied)

	a, err := svc.Approve(ctx, executive, "act-1")
	require.NoError(t, err)
	assert.Equal(t, models.ActionStageApproved, a.Stage)
	assert.Equal(t, executive.UserID, *a.ApprovedBy)
	assert.Equal(t, day("2026-03-12"), *a.ApprovedDate)
}

func TestActionServiceHRLevelApproval(t *testing.T) {
	f := newWorkflowFixture("2026-03-12", decisionCase(models.OutcomeWrittenWarning, true))
	svc := NewActionService(memActions{"act-1": pendingAction("case-1")}, f.deps)

	a, err := svc.Approve(context.Background(), hrOfficer, "act-1")
	require.NoError(t, err)
	assert.Equal(t, models.ActionStageApproved, a.Stage)
}

func TestActionServiceRevokeNeedsReason(t *testing.T) {
	f := newWorkflowFixture("2026-03-12", decisionCase(models.OutcomeWrittenWarning, true))
	svc := NewActionService(memActions{"act-1": pendingAction("case-1")}, f.deps)
	ctx := context.Background()

	_, err := svc.Revoke(ctx, hrOfficer, "act-1", dto.RevokeActionRequest{})
	assert.True(t, appErrors.IsValidation(err))

	a, err := svc.Revoke(ctx, hrOfficer, "act-1", dto.RevokeActionRequest{Reason: "issued in error"})
	require.NoError(t, err)
	assert.Equal(t, models.ActionStageRevoked, a.Stage)
	assert.Equal(t, "issued in error", *a.RevokeReason)
}

func TestActionServiceServeFromDraftFails(t *testing.T) {
	draft := pendingAction("case-1")
	draft.Stage = models.ActionStageDraft
	f := newWorkflowFixture("2026-03-12", decisionCase(models.OutcomeWrittenWarning, true))
	svc := NewActionService(memActions{"act-1": draft}, f.deps)

	_, err := svc.Serve(context.Background(), hrOfficer, "act-1", dto.ServeActionRequest{})
	assert.True(t, appErrors.IsUserError(err))
}

func TestActionServiceListDerivesActiveWarnings(t *testing.T) {
	approved := pendingAction("case-1")
	approved.Stage = models.ActionStageApproved
	f := newWorkflowFixture("2026-03-12", decisionCase(models.OutcomeWrittenWarning, true))
	svc := NewActionService(memActions{"act-1": approved}, f.deps)

	actions, err := svc.ListByCase(context.Background(), employee1, "case-1")
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.True(t, actions[0].IsActiveWarning)

	_, err = svc.ListByCase(context.Background(), employee2, "case-1")
	assert.ErrorIs(t, err, appErrors.ErrForbidden)
}
