package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/noah-isme/hr-disciplinary-api/internal/authz"
	"github.com/noah-isme/hr-disciplinary-api/internal/discipline"
	"github.com/noah-isme/hr-disciplinary-api/internal/dto"
	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	"github.com/noah-isme/hr-disciplinary-api/internal/repository"
	appErrors "github.com/noah-isme/hr-disciplinary-api/pkg/errors"
)

type appealRepository interface {
	ListByCase(ctx context.Context, caseID string) ([]models.Appeal, error)
	GetByID(ctx context.Context, id string) (*models.Appeal, error)
}

type actionReader interface {
	GetByID(ctx context.Context, id string) (*models.DisciplinaryAction, error)
}

// AppealService runs appeals against served decisions.
type AppealService struct {
	WorkflowDeps
	appeals appealRepository
	actions actionReader
}

// NewAppealService constructs the service.
func NewAppealService(appeals appealRepository, actions actionReader, deps WorkflowDeps) *AppealService {
	return &AppealService{WorkflowDeps: deps.withDefaults(), appeals: appeals, actions: actions}
}

// ListByCase returns the appeals filed against a case.
func (s *AppealService) ListByCase(ctx context.Context, actor *models.JWTClaims, caseID string) ([]models.Appeal, error) {
	c, err := s.loadCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if err := authz.ViewCase(actor, c); err != nil {
		return nil, err
	}
	appeals, err := s.appeals.ListByCase(ctx, caseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list appeals")
	}
	for i := range appeals {
		discipline.DeriveAppeal(&appeals[i], c.IncidentDate)
	}
	return appeals, nil
}

// File records a new appeal. Filing does not move the case; the appeal
// stage is opened separately.
func (s *AppealService) File(ctx context.Context, actor *models.JWTClaims, caseID string, req dto.CreateAppealRequest) (*models.Appeal, error) {
	c, err := s.loadCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if err := authz.FileAppeal(actor, c); err != nil {
		return nil, err
	}
	var action *models.DisciplinaryAction
	if req.ActionID != nil && *req.ActionID != "" {
		action, err = s.actions.GetByID(ctx, *req.ActionID)
		if err != nil {
			return nil, lookupError(err, "action")
		}
	} else {
		req.ActionID = nil
	}

	draft := models.Appeal{
		ID:             uuid.NewString(),
		ActionID:       req.ActionID,
		Grounds:        req.Grounds,
		SubmissionDate: req.SubmissionDate.OrZero(),
		CreatedBy:      actor.ActorID(),
	}
	ap, t, err := discipline.NewAppeal(draft, c, action, s.today())
	if err != nil {
		return nil, s.reject(err)
	}
	if err := s.commit(ctx, c, actor, repository.ChangeSet{CreateAppeal: ap}, t); err != nil {
		return nil, err
	}
	return ap, nil
}

func (s *AppealService) load(ctx context.Context, actor *models.JWTClaims, id string) (*models.Appeal, *models.DisciplinaryCase, error) {
	if err := authz.ReviewAppeal(actor); err != nil {
		return nil, nil, err
	}
	ap, err := s.appeals.GetByID(ctx, id)
	if err != nil {
		return nil, nil, lookupError(err, "appeal")
	}
	c, err := s.loadCase(ctx, ap.CaseID)
	if err != nil {
		return nil, nil, err
	}
	return ap, c, nil
}

func (s *AppealService) save(ctx context.Context, actor *models.JWTClaims, c *models.DisciplinaryCase, ap *models.Appeal, t discipline.Transition) (*models.Appeal, error) {
	if err := s.commit(ctx, c, actor, repository.ChangeSet{UpdateAppeal: ap}, t); err != nil {
		return nil, err
	}
	discipline.DeriveAppeal(ap, c.IncidentDate)
	return ap, nil
}

// StartReview picks up a submitted appeal.
func (s *AppealService) StartReview(ctx context.Context, actor *models.JWTClaims, id string) (*models.Appeal, error) {
	ap, c, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	updated, t, err := discipline.StartReview(*ap)
	if err != nil {
		return nil, s.reject(err)
	}
	return s.save(ctx, actor, c, updated, t)
}

// ScheduleHearing sets the appeal hearing.
func (s *AppealService) ScheduleHearing(ctx context.Context, actor *models.JWTClaims, id string, req dto.HearingRequest) (*models.Appeal, error) {
	ap, c, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	updated, t, err := discipline.ScheduleAppealHearing(*ap, req.Date.TimePtr(), req.Notes)
	if err != nil {
		return nil, s.reject(err)
	}
	return s.save(ctx, actor, c, updated, t)
}

// Decide records the appeal outcome and, in the same transaction, applies its
// effect on the appealed action and the case.
func (s *AppealService) Decide(ctx context.Context, actor *models.JWTClaims, id string, req dto.DecideAppealRequest) (*models.Appeal, error) {
	ap, c, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	var action *models.DisciplinaryAction
	if ap.ActionID != nil {
		action, err = s.actions.GetByID(ctx, *ap.ActionID)
		if err != nil {
			return nil, lookupError(err, "action")
		}
	}
	result, err := discipline.DecideAppeal(*ap, *c, action, req.Outcome, req.Decision, actor.ActorID(), s.today())
	if err != nil {
		return nil, s.reject(err)
	}
	cs := repository.ChangeSet{
		UpdateAppeal: result.Appeal,
		UpdateAction: result.Action,
		UpdateCase:   result.Case,
	}
	subject := c
	if result.Case != nil {
		subject = result.Case
	}
	if err := s.commit(ctx, subject, actor, cs, result.Transitions...); err != nil {
		return nil, err
	}
	discipline.DeriveAppeal(result.Appeal, c.IncidentDate)
	return result.Appeal, nil
}

// Close closes a decided appeal, and the case when it is still in appeal.
func (s *AppealService) Close(ctx context.Context, actor *models.JWTClaims, id string) (*models.Appeal, error) {
	ap, c, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	updated, closedCase, transitions, err := discipline.CloseAppeal(*ap, *c, s.today())
	if err != nil {
		return nil, s.reject(err)
	}
	subject := c
	if closedCase != nil {
		subject = closedCase
	}
	if err := s.commit(ctx, subject, actor, repository.ChangeSet{UpdateAppeal: updated, UpdateCase: closedCase}, transitions...); err != nil {
		return nil, err
	}
	discipline.DeriveAppeal(updated, c.IncidentDate)
	return updated, nil
}
