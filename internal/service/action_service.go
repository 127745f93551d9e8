package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/hr-disciplinary-api/internal/authz"
	"github.com/noah-isme/hr-disciplinary-api/internal/discipline"
	"github.com/noah-isme/hr-disciplinary-api/internal/dto"
	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	"github.com/noah-isme/hr-disciplinary-api/internal/repository"
	appErrors "github.com/noah-isme/hr-disciplinary-api/pkg/errors"
)

type actionRepository interface {
	List(ctx context.Context, filter models.ActionFilter) ([]models.DisciplinaryAction, error)
	GetByID(ctx context.Context, id string) (*models.DisciplinaryAction, error)
}

type actionStep func(a models.DisciplinaryAction, today time.Time) (*models.DisciplinaryAction, discipline.Transition, error)

// ActionService manages sanctions issued under a case.
type ActionService struct {
	WorkflowDeps
	actions actionRepository
}

// NewActionService constructs the service.
func NewActionService(actions actionRepository, deps WorkflowDeps) *ActionService {
	return &ActionService{WorkflowDeps: deps.withDefaults(), actions: actions}
}

// ListByCase returns the actions of a case.
func (s *ActionService) ListByCase(ctx context.Context, actor *models.JWTClaims, caseID string) ([]models.DisciplinaryAction, error) {
	c, err := s.loadCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if err := authz.ViewCase(actor, c); err != nil {
		return nil, err
	}
	actions, err := s.actions.List(ctx, models.ActionFilter{CaseID: caseID, Limit: 200})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list actions")
	}
	today := s.today()
	for i := range actions {
		discipline.DeriveAction(&actions[i], today)
	}
	return actions, nil
}

// Create drafts an action under a case.
func (s *ActionService) Create(ctx context.Context, actor *models.JWTClaims, caseID string, req dto.CreateActionRequest) (*models.DisciplinaryAction, error) {
	if err := authz.ManageCase(actor); err != nil {
		return nil, err
	}
	if err := s.Validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid action payload")
	}
	c, err := s.loadCase(ctx, caseID)
	if err != nil {
		return nil, err
	}

	draft := models.DisciplinaryAction{
		ID:                 uuid.NewString(),
		ActionType:         req.ActionType,
		Justification:      req.Justification,
		EffectiveDate:      req.EffectiveDate.OrZero(),
		HasExpiry:          req.HasExpiry,
		ExpiryDate:         req.ExpiryDate.TimePtr(),
		SuspensionDays:     req.SuspensionDays,
		SuspensionWithPay:  req.SuspensionWithPay,
		FineCurrency:       req.FineCurrency,
		TerminationType:    req.TerminationType,
		NoticePeriodMonths: req.NoticePeriodMonths,
		CreatedBy:          actor.ActorID(),
	}
	if req.FineAmount != nil {
		draft.FineAmount = decimal.NewNullDecimal(*req.FineAmount)
	}
	today := s.today()
	a, t, err := discipline.NewAction(draft, c, s.firstContract(ctx, c.EmployeeID), today)
	if err != nil {
		return nil, s.reject(err)
	}
	if err := s.commit(ctx, c, actor, repository.ChangeSet{CreateAction: a}, t); err != nil {
		return nil, err
	}
	discipline.DeriveAction(a, today)
	return a, nil
}

func (s *ActionService) apply(ctx context.Context, actor *models.JWTClaims, id string, authorize func(*models.JWTClaims, *models.DisciplinaryAction) error, step actionStep) (*models.DisciplinaryAction, error) {
	a, err := s.actions.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "action")
	}
	if err := authorize(actor, a); err != nil {
		return nil, err
	}
	c, err := s.loadCase(ctx, a.CaseID)
	if err != nil {
		return nil, err
	}
	today := s.today()
	updated, t, err := step(*a, today)
	if err != nil {
		return nil, s.reject(err)
	}
	if err := s.commit(ctx, c, actor, repository.ChangeSet{UpdateAction: updated}, t); err != nil {
		return nil, err
	}
	discipline.DeriveAction(updated, today)
	return updated, nil
}

func manageAction(actor *models.JWTClaims, _ *models.DisciplinaryAction) error {
	return authz.ManageCase(actor)
}

// Submit sends a draft for approval.
func (s *ActionService) Submit(ctx context.Context, actor *models.JWTClaims, id string) (*models.DisciplinaryAction, error) {
	return s.apply(ctx, actor, id, manageAction, func(a models.DisciplinaryAction, _ time.Time) (*models.DisciplinaryAction, discipline.Transition, error) {
		return discipline.SubmitForApproval(a)
	})
}

// Approve activates a pending action. The approver must hold the approval
// level of the case's offense classification.
func (s *ActionService) Approve(ctx context.Context, actor *models.JWTClaims, id string) (*models.DisciplinaryAction, error) {
	authorize := func(actor *models.JWTClaims, a *models.DisciplinaryAction) error {
		c, err := s.loadCase(ctx, a.CaseID)
		if err != nil {
			return err
		}
		offense, err := s.Offenses.GetByID(ctx, c.OffenseClassificationID)
		if err != nil {
			return lookupError(err, "offense classification")
		}
		if err := authz.ApproveAction(actor, offense.ApprovalLevel); err != nil {
			s.Metrics.RecordRejection("APPROVAL_LEVEL")
			return err
		}
		return nil
	}
	return s.apply(ctx, actor, id, authorize, func(a models.DisciplinaryAction, today time.Time) (*models.DisciplinaryAction, discipline.Transition, error) {
		return discipline.ApproveAction(a, actor.ActorID(), today)
	})
}

// Serve records delivery of the action notice.
func (s *ActionService) Serve(ctx context.Context, actor *models.JWTClaims, id string, req dto.ServeActionRequest) (*models.DisciplinaryAction, error) {
	if err := s.Validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid serve payload")
	}
	return s.apply(ctx, actor, id, manageAction, func(a models.DisciplinaryAction, today time.Time) (*models.DisciplinaryAction, discipline.Transition, error) {
		return discipline.MarkServed(a, req.Method, today)
	})
}

// Complete closes out a served action.
func (s *ActionService) Complete(ctx context.Context, actor *models.JWTClaims, id string) (*models.DisciplinaryAction, error) {
	return s.apply(ctx, actor, id, manageAction, func(a models.DisciplinaryAction, _ time.Time) (*models.DisciplinaryAction, discipline.Transition, error) {
		return discipline.CompleteAction(a)
	})
}

// Revoke withdraws an action.
func (s *ActionService) Revoke(ctx context.Context, actor *models.JWTClaims, id string, req dto.RevokeActionRequest) (*models.DisciplinaryAction, error) {
	return s.apply(ctx, actor, id, manageAction, func(a models.DisciplinaryAction, today time.Time) (*models.DisciplinaryAction, discipline.Transition, error) {
		return discipline.RevokeAction(a, req.Reason, actor.ActorID(), today)
	})
}

// MarkAppealed flags an action as under appeal.
func (s *ActionService) MarkAppealed(ctx context.Context, actor *models.JWTClaims, id string) (*models.DisciplinaryAction, error) {
	return s.apply(ctx, actor, id, manageAction, func(a models.DisciplinaryAction, _ time.Time) (*models.DisciplinaryAction, discipline.Transition, error) {
		return discipline.MarkAppealed(a)
	})
}
