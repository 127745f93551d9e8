package discipline

import (
	"fmt"
	"strings"
	"time"

	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	appErrors "github.com/noah-isme/hr-disciplinary-api/pkg/errors"
)

// Action transition names.
const (
	ActionCreated   = "created"
	ActionSubmitted = "submitted"
	ActionApproved  = "approved"
	ActionServed    = "served"
	ActionCompleted = "completed"
	ActionRevoked   = "revoked"
	ActionAppealed  = "appealed"
)

// ValidateAction checks the structural invariants of an action.
func ValidateAction(a *models.DisciplinaryAction) error {
	if strings.TrimSpace(a.Justification) == "" {
		return appErrors.Validation("justification is required")
	}
	if a.ActionType == models.ActionTermination && a.TerminationType == nil {
		return appErrors.Validation("specify whether termination is with notice (Art. 28) or without notice (Art. 27)")
	}
	if !a.HasExpiry {
		return validateFine(a)
	}
	if a.ExpiryDate == nil {
		return appErrors.Validation("set an expiry date")
	}
	if !Date(*a.ExpiryDate).After(Date(a.EffectiveDate)) {
		return appErrors.Validation("expiry date must be after the effective date")
	}
	return validateFine(a)
}

func validateFine(a *models.DisciplinaryAction) error {
	if a.ActionType != models.ActionFine {
		return nil
	}
	if !a.FineAmount.Valid || !a.FineAmount.Decimal.IsPositive() {
		return appErrors.Validation("fine amount must be greater than zero")
	}
	return nil
}

// NewAction drafts an action under c. Terminations without a notice period
// get one suggested from length of service.
func NewAction(a models.DisciplinaryAction, c *models.DisciplinaryCase, firstContract *time.Time, today time.Time) (*models.DisciplinaryAction, Transition, error) {
	if c.State == models.CaseStateClosed {
		return nil, Transition{}, appErrors.UserError("cannot add an action to a closed case")
	}
	a.CaseID = c.ID
	a.EmployeeID = c.EmployeeID
	a.Stage = models.ActionStageDraft
	if a.EffectiveDate.IsZero() {
		a.EffectiveDate = Date(today)
	} else {
		a.EffectiveDate = Date(a.EffectiveDate)
	}
	a.ExpiryDate = normalizePtr(a.ExpiryDate)
	if !a.HasExpiry {
		a.ExpiryDate = nil
	}
	if a.ActionType != models.ActionSuspension {
		a.SuspensionDays = 0
		a.SuspensionWithPay = false
	}
	if a.ActionType == models.ActionTermination && a.NoticePeriodMonths == 0 && firstContract != nil {
		a.NoticePeriodMonths = NoticePeriodMonths(ServiceYears(*firstContract, today))
	}
	if err := ValidateAction(&a); err != nil {
		return nil, Transition{}, err
	}
	return &a, actionTransition(&a, ActionCreated, "", map[string]any{"ActionType": string(a.ActionType)}), nil
}

// SubmitForApproval sends a draft for approval.
func SubmitForApproval(a models.DisciplinaryAction) (*models.DisciplinaryAction, Transition, error) {
	if err := requireStage(&a, "submit", models.ActionStageDraft); err != nil {
		return nil, Transition{}, err
	}
	from := a.Stage
	a.Stage = models.ActionStagePendingApproval
	return &a, actionTransition(&a, ActionSubmitted, from, nil), nil
}

// ApproveAction activates a pending action. Whether the approver holds the
// offense's approval level is checked by the caller.
func ApproveAction(a models.DisciplinaryAction, actorID string, today time.Time) (*models.DisciplinaryAction, Transition, error) {
	if err := requireStage(&a, "approve", models.ActionStagePendingApproval); err != nil {
		return nil, Transition{}, err
	}
	from := a.Stage
	a.Stage = models.ActionStageApproved
	a.ApprovedBy = &actorID
	a.ApprovedDate = datePtr(today)
	return &a, actionTransition(&a, ActionApproved, from, nil), nil
}

// MarkServed records delivery of the action notice.
func MarkServed(a models.DisciplinaryAction, method *models.DeliveryMethod, today time.Time) (*models.DisciplinaryAction, Transition, error) {
	if err := requireStage(&a, "serve", models.ActionStageApproved); err != nil {
		return nil, Transition{}, err
	}
	from := a.Stage
	a.Stage = models.ActionStageServed
	a.NoticeServedDate = datePtr(today)
	if method != nil {
		a.NoticeDeliveryMethod = method
	}
	return &a, actionTransition(&a, ActionServed, from, nil), nil
}

// CompleteAction closes out a served action.
func CompleteAction(a models.DisciplinaryAction) (*models.DisciplinaryAction, Transition, error) {
	if err := requireStage(&a, "complete", models.ActionStageServed); err != nil {
		return nil, Transition{}, err
	}
	from := a.Stage
	a.Stage = models.ActionStageCompleted
	return &a, actionTransition(&a, ActionCompleted, from, nil), nil
}

// RevokeAction withdraws an action; a reason is mandatory.
func RevokeAction(a models.DisciplinaryAction, reason, actorID string, today time.Time) (*models.DisciplinaryAction, Transition, error) {
	if a.Stage == models.ActionStageRevoked {
		return nil, Transition{}, appErrors.UserError("action is already revoked")
	}
	if strings.TrimSpace(reason) == "" {
		return nil, Transition{}, appErrors.Validation("provide a revocation reason before revoking")
	}
	from := a.Stage
	revoke(&a, reason, actorID, today)
	return &a, actionTransition(&a, ActionRevoked, from, map[string]any{"Reason": reason}), nil
}

// MarkAppealed flags an active action as under appeal.
func MarkAppealed(a models.DisciplinaryAction) (*models.DisciplinaryAction, Transition, error) {
	if err := requireStage(&a, "mark as appealed", models.ActionStageApproved, models.ActionStageServed); err != nil {
		return nil, Transition{}, err
	}
	from := a.Stage
	a.Stage = models.ActionStageAppealed
	return &a, actionTransition(&a, ActionAppealed, from, nil), nil
}

// IsExpired reports whether an expiring action has passed its expiry date.
func IsExpired(a *models.DisciplinaryAction, today time.Time) bool {
	return a.HasExpiry && a.ExpiryDate != nil && IsPast(*a.ExpiryDate, today)
}

// IsActiveWarning reports whether a warning still counts against the employee.
func IsActiveWarning(a *models.DisciplinaryAction, today time.Time) bool {
	if !a.ActionType.IsWarning() || IsExpired(a, today) {
		return false
	}
	switch a.Stage {
	case models.ActionStageApproved, models.ActionStageServed, models.ActionStageCompleted:
		return true
	}
	return false
}

// DeriveAction fills the computed fields of a.
func DeriveAction(a *models.DisciplinaryAction, today time.Time) {
	a.IsExpired = IsExpired(a, today)
	a.IsActiveWarning = IsActiveWarning(a, today)
}

func revoke(a *models.DisciplinaryAction, reason, actorID string, today time.Time) {
	a.Stage = models.ActionStageRevoked
	a.RevokeReason = &reason
	a.RevokedBy = &actorID
	a.RevokedDate = datePtr(today)
}

func requireStage(a *models.DisciplinaryAction, op string, allowed ...models.ActionStage) error {
	for _, s := range allowed {
		if a.Stage == s {
			return nil
		}
	}
	return appErrors.UserError(fmt.Sprintf("cannot %s an action in the %s stage", op, a.Stage))
}

func actionTransition(a *models.DisciplinaryAction, name string, from models.ActionStage, details map[string]any) Transition {
	return Transition{
		Entity:   models.EntityAction,
		EntityID: a.ID,
		Name:     name,
		From:     string(from),
		To:       string(a.Stage),
		Details:  details,
	}
}
