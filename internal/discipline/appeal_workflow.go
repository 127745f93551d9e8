package discipline

import (
	"fmt"
	"strings"
	"time"

	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	appErrors "github.com/noah-isme/hr-disciplinary-api/pkg/errors"
)

// Appeal transition names.
const (
	AppealFiled            = "filed"
	AppealReviewStarted    = "review_started"
	AppealHearingScheduled = "hearing_scheduled"
	AppealDecided          = "decided"
	AppealClosed           = "closed"
)

// upheldRevokeReason is stored on actions overturned by an upheld appeal.
const upheldRevokeReason = "overturned on appeal"

// DeriveAppeal fills the filing deadline and late flag from the case incident date.
func DeriveAppeal(ap *models.Appeal, incident time.Time) {
	ap.EmployeeDeadline = AppealDeadline(incident)
	ap.IsLateFiling = Date(ap.SubmissionDate).After(ap.EmployeeDeadline)
}

// NewAppeal files an appeal against a served decision. When an action is
// named it must belong to the case.
func NewAppeal(ap models.Appeal, c *models.DisciplinaryCase, action *models.DisciplinaryAction, today time.Time) (*models.Appeal, Transition, error) {
	if strings.TrimSpace(ap.Grounds) == "" {
		return nil, Transition{}, appErrors.Validation("grounds for appeal are required")
	}
	if ap.ActionID != nil {
		if action == nil || action.CaseID != c.ID {
			return nil, Transition{}, appErrors.Validation("the appealed action must belong to the case")
		}
	}
	if c.State == models.CaseStateClosed {
		return nil, Transition{}, appErrors.UserError("cannot appeal a closed case")
	}
	if !c.DecisionServed {
		return nil, Transition{}, appErrors.UserError("the decision must be served before an appeal can be filed")
	}
	if c.DecisionOutcome != nil && *c.DecisionOutcome == models.OutcomeCleared {
		return nil, Transition{}, appErrors.UserError("the employee was cleared; there is no decision to appeal")
	}
	ap.CaseID = c.ID
	ap.EmployeeID = c.EmployeeID
	ap.Stage = models.AppealStageSubmitted
	if ap.SubmissionDate.IsZero() {
		ap.SubmissionDate = Date(today)
	} else {
		ap.SubmissionDate = Date(ap.SubmissionDate)
	}
	DeriveAppeal(&ap, c.IncidentDate)
	return &ap, appealTransition(&ap, AppealFiled, "", map[string]any{
		"LateFiling": ap.IsLateFiling,
	}), nil
}

// StartReview picks up a submitted appeal.
func StartReview(ap models.Appeal) (*models.Appeal, Transition, error) {
	if err := requireAppealStage(&ap, "start review of", models.AppealStageSubmitted); err != nil {
		return nil, Transition{}, err
	}
	from := ap.Stage
	ap.Stage = models.AppealStageUnderReview
	return &ap, appealTransition(&ap, AppealReviewStarted, from, nil), nil
}

// ScheduleAppealHearing requires a hearing date, supplied or already set.
func ScheduleAppealHearing(ap models.Appeal, date *time.Time, notes *string) (*models.Appeal, Transition, error) {
	if err := requireAppealStage(&ap, "schedule a hearing for", models.AppealStageSubmitted, models.AppealStageUnderReview); err != nil {
		return nil, Transition{}, err
	}
	if date != nil {
		ap.HearingDate = datePtr(*date)
	}
	if ap.HearingDate == nil {
		return nil, Transition{}, appErrors.Validation("set a hearing date before scheduling")
	}
	if notes != nil {
		ap.HearingNotes = notes
	}
	from := ap.Stage
	ap.Stage = models.AppealStageHearingScheduled
	return &ap, appealTransition(&ap, AppealHearingScheduled, from, map[string]any{
		"HearingDate": ap.HearingDate.Format(time.DateOnly),
	}), nil
}

// AppealDecision is the result of deciding an appeal. Action and Case are nil
// when the outcome leaves them untouched.
type AppealDecision struct {
	Appeal      *models.Appeal
	Action      *models.DisciplinaryAction
	Case        *models.DisciplinaryCase
	Transitions []Transition
}

// DecideAppeal records the outcome and cascades it: upheld revokes the linked
// action and closes the case, partially upheld restores the action to
// approved, dismissed changes neither.
func DecideAppeal(ap models.Appeal, c models.DisciplinaryCase, action *models.DisciplinaryAction, outcome models.AppealOutcome, decision, actorID string, today time.Time) (*AppealDecision, error) {
	if err := requireAppealStage(&ap, "decide", models.AppealStageSubmitted, models.AppealStageUnderReview, models.AppealStageHearingScheduled); err != nil {
		return nil, err
	}
	switch outcome {
	case models.AppealUpheld, models.AppealPartiallyUpheld, models.AppealDismissed:
	case "":
		return nil, appErrors.Validation("select an outcome before recording the decision")
	default:
		return nil, appErrors.Validation(fmt.Sprintf("unknown appeal outcome %q", outcome))
	}
	if strings.TrimSpace(decision) == "" {
		return nil, appErrors.Validation("enter the decision reasoning before recording")
	}
	if ap.ActionID != nil && (action == nil || action.ID != *ap.ActionID) {
		return nil, appErrors.Validation("the appealed action could not be loaded")
	}

	from := ap.Stage
	ap.Stage = models.AppealStageDecided
	ap.Outcome = &outcome
	ap.Decision = &decision
	ap.DecidedBy = &actorID
	ap.DecisionDate = datePtr(today)
	result := &AppealDecision{Appeal: &ap}
	result.Transitions = append(result.Transitions, appealTransition(&ap, AppealDecided, from, map[string]any{
		"Outcome": string(outcome),
	}))

	switch outcome {
	case models.AppealUpheld:
		if action != nil && action.Stage != models.ActionStageRevoked {
			a := *action
			prev := a.Stage
			revoke(&a, upheldRevokeReason, actorID, today)
			result.Action = &a
			result.Transitions = append(result.Transitions, actionTransition(&a, ActionRevoked, prev, map[string]any{
				"Reason": upheldRevokeReason, "AppealID": ap.ID,
			}))
		}
		if c.State != models.CaseStateClosed {
			prev := c.State
			closeCase(&c, today)
			result.Case = &c
			result.Transitions = append(result.Transitions, caseTransition(&c, CaseClosed, prev, map[string]any{
				"AppealID": ap.ID,
			}))
		}
	case models.AppealPartiallyUpheld:
		if action != nil && action.Stage != models.ActionStageApproved {
			a := *action
			prev := a.Stage
			a.Stage = models.ActionStageApproved
			result.Action = &a
			result.Transitions = append(result.Transitions, actionTransition(&a, ActionApproved, prev, map[string]any{
				"AppealID": ap.ID,
			}))
		}
	}
	return result, nil
}

// CloseAppeal closes a decided appeal and, when the case is still in the
// appeal stage, the case as well. The returned case is nil when unchanged.
func CloseAppeal(ap models.Appeal, c models.DisciplinaryCase, today time.Time) (*models.Appeal, *models.DisciplinaryCase, []Transition, error) {
	if err := requireAppealStage(&ap, "close", models.AppealStageDecided); err != nil {
		return nil, nil, nil, err
	}
	from := ap.Stage
	ap.Stage = models.AppealStageClosed
	transitions := []Transition{appealTransition(&ap, AppealClosed, from, nil)}
	if c.State != models.CaseStateAppeal {
		return &ap, nil, transitions, nil
	}
	closeCase(&c, today)
	transitions = append(transitions, caseTransition(&c, CaseClosed, models.CaseStateAppeal, map[string]any{
		"AppealID": ap.ID,
	}))
	return &ap, &c, transitions, nil
}

func requireAppealStage(ap *models.Appeal, op string, allowed ...models.AppealStage) error {
	for _, s := range allowed {
		if ap.Stage == s {
			return nil
		}
	}
	return appErrors.UserError(fmt.Sprintf("cannot %s an appeal in the %s stage", op, ap.Stage))
}

func appealTransition(ap *models.Appeal, name string, from models.AppealStage, details map[string]any) Transition {
	return Transition{
		Entity:   models.EntityAppeal,
		EntityID: ap.ID,
		Name:     name,
		From:     string(from),
		To:       string(ap.Stage),
		Details:  details,
	}
}
