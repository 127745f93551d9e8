package discipline

import (
	"fmt"
	"strings"
	"time"

	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	appErrors "github.com/noah-isme/hr-disciplinary-api/pkg/errors"
)

// Investigation transition names.
const (
	InvestigationCreated   = "created"
	InvestigationCompleted = "completed"
	InvestigationSuspended = "suspended"
	InvestigationResumed   = "resumed"
)

// NewInvestigation opens an ongoing investigation for c, starting today unless
// a start date is given.
func NewInvestigation(inv models.Investigation, c *models.DisciplinaryCase, today time.Time) (*models.Investigation, Transition, error) {
	if strings.TrimSpace(inv.OfficerID) == "" {
		return nil, Transition{}, appErrors.Validation("investigating officer is required")
	}
	if c.State == models.CaseStateClosed {
		return nil, Transition{}, appErrors.UserError("cannot investigate a closed case")
	}
	inv.CaseID = c.ID
	inv.EmployeeID = c.EmployeeID
	inv.State = models.InvestigationOngoing
	if inv.StartDate.IsZero() {
		inv.StartDate = Date(today)
	} else {
		inv.StartDate = Date(inv.StartDate)
	}
	inv.EndDate = normalizePtr(inv.EndDate)
	if inv.EndDate != nil && inv.EndDate.Before(inv.StartDate) {
		return nil, Transition{}, appErrors.Validation("end date cannot be before the start date")
	}
	return &inv, investigationTransition(&inv, InvestigationCreated, "", nil), nil
}

// CompleteInvestigation records findings and finishes the investigation. The
// end date defaults to today.
func CompleteInvestigation(inv models.Investigation, findings *string, today time.Time) (*models.Investigation, Transition, error) {
	if err := requireInvestigationState(&inv, "complete", models.InvestigationOngoing, models.InvestigationSuspended); err != nil {
		return nil, Transition{}, err
	}
	if findings != nil {
		inv.Findings = findings
	}
	if inv.EndDate == nil {
		inv.EndDate = datePtr(today)
	}
	from := inv.State
	inv.State = models.InvestigationCompleted
	return &inv, investigationTransition(&inv, InvestigationCompleted, from, nil), nil
}

// SuspendInvestigation pauses an ongoing investigation.
func SuspendInvestigation(inv models.Investigation) (*models.Investigation, Transition, error) {
	if err := requireInvestigationState(&inv, "suspend", models.InvestigationOngoing); err != nil {
		return nil, Transition{}, err
	}
	from := inv.State
	inv.State = models.InvestigationSuspended
	return &inv, investigationTransition(&inv, InvestigationSuspended, from, nil), nil
}

// ResumeInvestigation restarts a suspended investigation.
func ResumeInvestigation(inv models.Investigation) (*models.Investigation, Transition, error) {
	if err := requireInvestigationState(&inv, "resume", models.InvestigationSuspended); err != nil {
		return nil, Transition{}, err
	}
	from := inv.State
	inv.State = models.InvestigationOngoing
	return &inv, investigationTransition(&inv, InvestigationResumed, from, nil), nil
}

// IsOverdue reports an ongoing investigation past its planned end date.
func IsOverdue(inv *models.Investigation, today time.Time) bool {
	return inv.State == models.InvestigationOngoing && inv.EndDate != nil && IsPast(*inv.EndDate, today)
}

func requireInvestigationState(inv *models.Investigation, op string, allowed ...models.InvestigationState) error {
	for _, s := range allowed {
		if inv.State == s {
			return nil
		}
	}
	return appErrors.UserError(fmt.Sprintf("cannot %s an investigation that is %s", op, inv.State))
}

func investigationTransition(inv *models.Investigation, name string, from models.InvestigationState, details map[string]any) Transition {
	return Transition{
		Entity:   models.EntityInvestigation,
		EntityID: inv.ID,
		Name:     name,
		From:     string(from),
		To:       string(inv.State),
		Details:  details,
	}
}
