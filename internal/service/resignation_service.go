package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/hr-disciplinary-api/internal/authz"
	"github.com/noah-isme/hr-disciplinary-api/internal/discipline"
	"github.com/noah-isme/hr-disciplinary-api/internal/dto"
	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	"github.com/noah-isme/hr-disciplinary-api/internal/repository"
	appErrors "github.com/noah-isme/hr-disciplinary-api/pkg/errors"
)

type resignationRepository interface {
	List(ctx context.Context, filter models.ResignationFilter) ([]models.Resignation, error)
	GetByID(ctx context.Context, id string) (*models.Resignation, error)
	CountActive(ctx context.Context, employeeID, excludeID string) (int, error)
	Create(ctx context.Context, res *models.Resignation) error
	Update(ctx context.Context, res *models.Resignation) error
}

type exitInterviewLister interface {
	List(ctx context.Context, filter models.ExitInterviewFilter) ([]models.ExitInterview, error)
}

type employeeStatusWriter interface {
	employeeDirectory
	SetActive(ctx context.Context, id string, active bool) error
}

// ResignationService processes employee separation requests.
type ResignationService struct {
	repo       resignationRepository
	interviews exitInterviewLister
	employees  employeeStatusWriter
	validator  *validator.Validate
	logger     *zap.Logger
	clock      func() time.Time
}

// NewResignationService constructs the service.
func NewResignationService(repo resignationRepository, interviews exitInterviewLister, employees employeeStatusWriter, validate *validator.Validate, logger *zap.Logger) *ResignationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResignationService{
		repo:       repo,
		interviews: interviews,
		employees:  employees,
		validator:  validate,
		logger:     logger,
		clock:      func() time.Time { return time.Now().UTC() },
	}
}

// List returns resignations visible to actor.
func (s *ResignationService) List(ctx context.Context, actor *models.JWTClaims, filter models.ResignationFilter) ([]models.Resignation, error) {
	scope, err := authz.ScopeEmployee(actor)
	if err != nil {
		return nil, err
	}
	if scope != "" {
		filter.EmployeeID = scope
	}
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list resignations")
	}
	return items, nil
}

// Get returns one resignation.
func (s *ResignationService) Get(ctx context.Context, actor *models.JWTClaims, id string) (*models.Resignation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "resignation")
	}
	if err := authz.ViewDocument(actor, res.EmployeeID); err != nil {
		return nil, err
	}
	return res, nil
}

// Create files a draft resignation. Anyone but an HR manager files for
// themselves.
func (s *ResignationService) Create(ctx context.Context, actor *models.JWTClaims, req dto.CreateResignationRequest) (*models.Resignation, error) {
	if !authz.IsResignationManager(actor) {
		if actor == nil || actor.EmployeeID == "" {
			return nil, appErrors.Clone(appErrors.ErrForbidden, "no employee record is linked to this account")
		}
		req.EmployeeID = actor.EmployeeID
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid resignation payload")
	}
	if req.EmployeeID == "" {
		return nil, appErrors.Validation("employee is required")
	}
	employee, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, lookupError(err, "employee")
	}
	res := &models.Resignation{
		EmployeeID:        employee.ID,
		DepartmentID:      employee.DepartmentID,
		ContractStartDate: req.ContractStartDate.TimePtr(),
		ExpectedLastDay:   discipline.Date(req.ExpectedLastDay.OrZero()),
		Reason:            req.Reason,
		State:             models.ResignationDraft,
		CreatedBy:         actor.ActorID(),
	}
	if res.ContractStartDate == nil {
		res.ContractStartDate = employee.FirstContractDate
	}
	if err := s.repo.Create(ctx, res); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create resignation")
	}
	s.logger.Info("resignation filed", zap.String("resignation_id", res.ID), zap.String("employee_id", res.EmployeeID))
	return res, nil
}

// Confirm submits a draft for processing. An employee has at most one
// confirmed or approved resignation.
func (s *ResignationService) Confirm(ctx context.Context, actor *models.JWTClaims, id string) (*models.Resignation, error) {
	res, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.ConfirmResignation(actor, res); err != nil {
		return nil, err
	}
	if err := requireResignationState(res, "confirm", models.ResignationDraft); err != nil {
		return nil, err
	}
	if res.ContractStartDate == nil {
		return nil, appErrors.UserError("enter the contract start date before confirming")
	}
	if !res.ContractStartDate.Before(res.ExpectedLastDay) {
		return nil, appErrors.UserError("the last day must be after the contract start date")
	}
	active, err := s.repo.CountActive(ctx, res.EmployeeID, res.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check active resignations")
	}
	if active > 0 {
		return nil, appErrors.UserError("the employee already has a resignation in progress")
	}
	res.State = models.ResignationConfirm
	res.ConfirmDate = datePtr(s.clock())
	return res, s.save(ctx, res)
}

// Approve accepts a confirmed resignation and deactivates the employee. A
// linked exit interview has to be done first.
func (s *ResignationService) Approve(ctx context.Context, actor *models.JWTClaims, id string, req dto.ApproveResignationRequest) (*models.Resignation, error) {
	if err := authz.ManageResignations(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid approval payload")
	}
	res, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireResignationState(res, "approve", models.ResignationConfirm); err != nil {
		return nil, err
	}
	if res.ExpectedLastDay.IsZero() {
		return nil, appErrors.UserError("enter the expected last day before approving")
	}
	interviews, err := s.interviews.List(ctx, models.ExitInterviewFilter{ResignationID: res.ID})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load exit interviews")
	}
	for _, ei := range interviews {
		if ei.State != models.ExitInterviewDone {
			return nil, appErrors.UserError(fmt.Sprintf("exit interview %s must be done before approval", ei.Reference))
		}
	}

	lastDay := res.ExpectedLastDay
	kind := req.ResignationType
	res.ApprovedLastDay = &lastDay
	res.ResignationType = &kind
	res.State = models.ResignationApproved
	if err := s.save(ctx, res); err != nil {
		return nil, err
	}
	if err := s.employees.SetActive(ctx, res.EmployeeID, false); err != nil {
		s.logger.Error("failed to deactivate employee", zap.String("employee_id", res.EmployeeID), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "resignation approved but the employee record was not updated")
	}
	s.logger.Info("resignation approved", zap.String("resignation_id", res.ID), zap.String("employee_id", res.EmployeeID))
	return res, nil
}

// Cancel withdraws a resignation that has not been approved.
func (s *ResignationService) Cancel(ctx context.Context, actor *models.JWTClaims, id string) (*models.Resignation, error) {
	return s.move(ctx, actor, id, "cancel", models.ResignationCancel, models.ResignationDraft, models.ResignationConfirm)
}

// ResetToDraft reopens a cancelled resignation.
func (s *ResignationService) ResetToDraft(ctx context.Context, actor *models.JWTClaims, id string) (*models.Resignation, error) {
	return s.move(ctx, actor, id, "reset", models.ResignationDraft, models.ResignationCancel)
}

func (s *ResignationService) move(ctx context.Context, actor *models.JWTClaims, id, op string, to models.ResignationState, from ...models.ResignationState) (*models.Resignation, error) {
	if err := authz.ManageResignations(actor); err != nil {
		return nil, err
	}
	res, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireResignationState(res, op, from...); err != nil {
		return nil, err
	}
	res.State = to
	if to == models.ResignationDraft {
		res.ConfirmDate = nil
	}
	return res, s.save(ctx, res)
}

func (s *ResignationService) load(ctx context.Context, id string) (*models.Resignation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "resignation")
	}
	return res, nil
}

func (s *ResignationService) save(ctx context.Context, res *models.Resignation) error {
	if err := s.repo.Update(ctx, res); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return appErrors.UserError("the employee already has a resignation in progress")
		}
		return lookupError(err, "resignation")
	}
	return nil
}

func requireResignationState(res *models.Resignation, op string, allowed ...models.ResignationState) error {
	for _, st := range allowed {
		if res.State == st {
			return nil
		}
	}
	return appErrors.UserError(fmt.Sprintf("cannot %s a resignation in the %s state", op, res.State))
}

func datePtr(t time.Time) *time.Time {
	d := discipline.Date(t)
	return &d
}
