package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/hr-disciplinary-api/internal/authz"
	"github.com/noah-isme/hr-disciplinary-api/internal/discipline"
	"github.com/noah-isme/hr-disciplinary-api/internal/dto"
	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	"github.com/noah-isme/hr-disciplinary-api/internal/repository"
	appErrors "github.com/noah-isme/hr-disciplinary-api/pkg/errors"
)

type investigationRepository interface {
	ListByCase(ctx context.Context, caseID string) ([]models.Investigation, error)
	GetByID(ctx context.Context, id string) (*models.Investigation, error)
}

type investigationStep func(inv models.Investigation, today time.Time) (*models.Investigation, discipline.Transition, error)

// InvestigationService tracks fact finding performed for cases.
type InvestigationService struct {
	WorkflowDeps
	investigations investigationRepository
}

// NewInvestigationService constructs the service.
func NewInvestigationService(investigations investigationRepository, deps WorkflowDeps) *InvestigationService {
	return &InvestigationService{WorkflowDeps: deps.withDefaults(), investigations: investigations}
}

// ListByCase returns the investigations of a case.
func (s *InvestigationService) ListByCase(ctx context.Context, actor *models.JWTClaims, caseID string) ([]models.Investigation, error) {
	c, err := s.loadCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if err := authz.ViewCase(actor, c); err != nil {
		return nil, err
	}
	items, err := s.investigations.ListByCase(ctx, caseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list investigations")
	}
	today := s.today()
	for i := range items {
		items[i].IsOverdue = discipline.IsOverdue(&items[i], today)
	}
	return items, nil
}

// Create opens an investigation for a case.
func (s *InvestigationService) Create(ctx context.Context, actor *models.JWTClaims, caseID string, req dto.CreateInvestigationRequest) (*models.Investigation, error) {
	if err := authz.ManageCase(actor); err != nil {
		return nil, err
	}
	c, err := s.loadCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	draft := models.Investigation{
		ID:        uuid.NewString(),
		OfficerID: req.OfficerID,
		StartDate: req.StartDate.OrZero(),
		EndDate:   req.EndDate.TimePtr(),
		Witnesses: req.Witnesses,
		CreatedBy: actor.ActorID(),
	}
	today := s.today()
	inv, t, err := discipline.NewInvestigation(draft, c, today)
	if err != nil {
		return nil, s.reject(err)
	}
	if err := s.commit(ctx, c, actor, repository.ChangeSet{CreateInvestigation: inv}, t); err != nil {
		return nil, err
	}
	inv.IsOverdue = discipline.IsOverdue(inv, today)
	return inv, nil
}

func (s *InvestigationService) apply(ctx context.Context, actor *models.JWTClaims, id string, step investigationStep) (*models.Investigation, error) {
	if err := authz.ManageCase(actor); err != nil {
		return nil, err
	}
	inv, err := s.investigations.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "investigation")
	}
	c, err := s.loadCase(ctx, inv.CaseID)
	if err != nil {
		return nil, err
	}
	today := s.today()
	updated, t, err := step(*inv, today)
	if err != nil {
		return nil, s.reject(err)
	}
	if err := s.commit(ctx, c, actor, repository.ChangeSet{UpdateInvestigation: updated}, t); err != nil {
		return nil, err
	}
	updated.IsOverdue = discipline.IsOverdue(updated, today)
	return updated, nil
}

// Complete records findings and finishes the investigation.
func (s *InvestigationService) Complete(ctx context.Context, actor *models.JWTClaims, id string, req dto.CompleteInvestigationRequest) (*models.Investigation, error) {
	return s.apply(ctx, actor, id, func(inv models.Investigation, today time.Time) (*models.Investigation, discipline.Transition, error) {
		return discipline.CompleteInvestigation(inv, req.Findings, today)
	})
}

// Suspend pauses an ongoing investigation.
func (s *InvestigationService) Suspend(ctx context.Context, actor *models.JWTClaims, id string) (*models.Investigation, error) {
	return s.apply(ctx, actor, id, func(inv models.Investigation, _ time.Time) (*models.Investigation, discipline.Transition, error) {
		return discipline.SuspendInvestigation(inv)
	})
}

// Resume restarts a suspended investigation.
func (s *InvestigationService) Resume(ctx context.Context, actor *models.JWTClaims, id string) (*models.Investigation, error) {
	return s.apply(ctx, actor, id, func(inv models.Investigation, _ time.Time) (*models.Investigation, discipline.Transition, error) {
		return discipline.ResumeInvestigation(inv)
	})
}
