package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/hr-disciplinary-api/internal/authz"
	"github.com/noah-isme/hr-disciplinary-api/internal/discipline"
	"github.com/noah-isme/hr-disciplinary-api/internal/dto"
	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	appErrors "github.com/noah-isme/hr-disciplinary-api/pkg/errors"
)

type exitInterviewRepository interface {
	exitInterviewLister
	GetByID(ctx context.Context, id string) (*models.ExitInterview, error)
	Create(ctx context.Context, ei *models.ExitInterview) error
	Update(ctx context.Context, ei *models.ExitInterview) error
}

type resignationReader interface {
	GetByID(ctx context.Context, id string) (*models.Resignation, error)
}

// ExitInterviewService records leaver feedback.
type ExitInterviewService struct {
	repo         exitInterviewRepository
	resignations resignationReader
	employees    employeeDirectory
	validator    *validator.Validate
	logger       *zap.Logger
	clock        func() time.Time
}

// NewExitInterviewService constructs the service.
func NewExitInterviewService(repo exitInterviewRepository, resignations resignationReader, employees employeeDirectory, validate *validator.Validate, logger *zap.Logger) *ExitInterviewService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExitInterviewService{
		repo:         repo,
		resignations: resignations,
		employees:    employees,
		validator:    validate,
		logger:       logger,
		clock:        func() time.Time { return time.Now().UTC() },
	}
}

// List returns exit interviews for HR staff.
func (s *ExitInterviewService) List(ctx context.Context, actor *models.JWTClaims, filter models.ExitInterviewFilter) ([]models.ExitInterview, error) {
	if err := authz.ManageExitInterviews(actor); err != nil {
		return nil, err
	}
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list exit interviews")
	}
	return items, nil
}

// Create records a draft exit interview. A linked resignation must belong to
// the same employee.
func (s *ExitInterviewService) Create(ctx context.Context, actor *models.JWTClaims, req dto.CreateExitInterviewRequest) (*models.ExitInterview, error) {
	if err := authz.ManageExitInterviews(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid exit interview payload")
	}
	if _, err := s.employees.GetByID(ctx, req.EmployeeID); err != nil {
		return nil, lookupError(err, "employee")
	}
	if req.ResignationID != nil && *req.ResignationID != "" {
		res, err := s.resignations.GetByID(ctx, *req.ResignationID)
		if err != nil {
			return nil, lookupError(err, "resignation")
		}
		if res.EmployeeID != req.EmployeeID {
			return nil, appErrors.Validation("the resignation belongs to a different employee")
		}
	} else {
		req.ResignationID = nil
	}

	interviewDate := discipline.Date(s.clock())
	if req.InterviewDate != nil {
		interviewDate = discipline.Date(req.InterviewDate.Time)
	}
	ei := &models.ExitInterview{
		EmployeeID:            req.EmployeeID,
		ResignationID:         req.ResignationID,
		InterviewDate:         interviewDate,
		InterviewerID:         req.InterviewerID,
		ExitReason:            req.ExitReason,
		WouldRehire:           req.WouldRehire,
		WorkEnvironmentRating: req.WorkEnvironmentRating,
		ManagementRating:      req.ManagementRating,
		CompensationRating:    req.CompensationRating,
		GrowthRating:          req.GrowthRating,
		Feedback:              req.Feedback,
		Recommendation:        req.Recommendation,
		State:                 models.ExitInterviewDraft,
		CreatedBy:             actor.ActorID(),
	}
	if ei.InterviewerID == nil && actor.EmployeeID != "" {
		interviewer := actor.EmployeeID
		ei.InterviewerID = &interviewer
	}
	if err := s.repo.Create(ctx, ei); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create exit interview")
	}
	return ei, nil
}

// Confirm schedules a drafted interview.
func (s *ExitInterviewService) Confirm(ctx context.Context, actor *models.JWTClaims, id string) (*models.ExitInterview, error) {
	return s.move(ctx, actor, id, "confirm", models.ExitInterviewConfirmed, models.ExitInterviewDraft)
}

// Done marks a confirmed interview as held.
func (s *ExitInterviewService) Done(ctx context.Context, actor *models.JWTClaims, id string) (*models.ExitInterview, error) {
	return s.move(ctx, actor, id, "complete", models.ExitInterviewDone, models.ExitInterviewConfirmed)
}

// ResetToDraft reopens an interview.
func (s *ExitInterviewService) ResetToDraft(ctx context.Context, actor *models.JWTClaims, id string) (*models.ExitInterview, error) {
	return s.move(ctx, actor, id, "reset", models.ExitInterviewDraft, models.ExitInterviewConfirmed, models.ExitInterviewDone)
}

func (s *ExitInterviewService) move(ctx context.Context, actor *models.JWTClaims, id, op string, to models.ExitInterviewState, from ...models.ExitInterviewState) (*models.ExitInterview, error) {
	if err := authz.ManageExitInterviews(actor); err != nil {
		return nil, err
	}
	ei, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "exit interview")
	}
	allowed := false
	for _, st := range from {
		if ei.State == st {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, appErrors.UserError(fmt.Sprintf("cannot %s an exit interview in the %s state", op, ei.State))
	}
	ei.State = to
	if err := s.repo.Update(ctx, ei); err != nil {
		return nil, lookupError(err, "exit interview")
	}
	s.logger.Info("exit interview updated", zap.String("exit_interview_id", ei.ID), zap.String("state", string(ei.State)))
	return ei, nil
}
