package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/hr-disciplinary-api/internal/authz"
	"github.com/noah-isme/hr-disciplinary-api/internal/discipline"
	"github.com/noah-isme/hr-disciplinary-api/internal/dto"
	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	"github.com/noah-isme/hr-disciplinary-api/internal/repository"
	appErrors "github.com/noah-isme/hr-disciplinary-api/pkg/errors"
	"github.com/noah-isme/hr-disciplinary-api/pkg/export"
)

// Export formats.
const (
	ExportCSV = "csv"
	ExportPDF = "pdf"
)

const maxExportRows = 5000

type caseRepository interface {
	caseReader
	List(ctx context.Context, filter models.CaseFilter) ([]models.DisciplinaryCase, int, error)
	Delete(ctx context.Context, id string) error
	CountPriorWarnings(ctx context.Context, employeeID, excludeCaseID string) (models.WarningCounts, error)
}

type fileRemover interface {
	Delete(name string) error
}

type datasetRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

// CaseService runs the disciplinary case state machine.
type CaseService struct {
	WorkflowDeps
	cases     caseRepository
	letters   fileRemover
	renderers map[string]datasetRenderer
}

// NewCaseService constructs the service. letters may be nil when no decision
// letters are stored.
func NewCaseService(cases caseRepository, letters fileRemover, deps WorkflowDeps) *CaseService {
	deps.Cases = cases
	return &CaseService{
		WorkflowDeps: deps.withDefaults(),
		cases:        cases,
		letters:      letters,
		renderers: map[string]datasetRenderer{
			ExportCSV: export.NewCSVExporter(),
			ExportPDF: export.NewPDFExporter(),
		},
	}
}

type caseAuthorizer func(actor *models.JWTClaims, c *models.DisciplinaryCase) error

type caseStep func(c models.DisciplinaryCase, today time.Time) (*models.DisciplinaryCase, discipline.Transition, error)

func hrOnly(actor *models.JWTClaims, _ *models.DisciplinaryCase) error {
	return authz.ManageCase(actor)
}

// hrOrEmployee lets HR act on the case or the employee answer for themselves.
func hrOrEmployee(actor *models.JWTClaims, c *models.DisciplinaryCase) error {
	if authz.IsHRStaff(actor) {
		return nil
	}
	return authz.RespondToCase(actor, c)
}

// List returns a page of cases visible to actor.
func (s *CaseService) List(ctx context.Context, actor *models.JWTClaims, filter models.CaseFilter) ([]models.DisciplinaryCase, *models.Pagination, error) {
	if err := authz.ScopeCaseFilter(actor, &filter); err != nil {
		return nil, nil, err
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	filter.PageSize = pageSize(filter.PageSize)
	cases, total, err := s.cases.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list cases")
	}
	today := s.today()
	for i := range cases {
		discipline.DeriveCase(&cases[i], today)
	}
	return cases, &models.Pagination{Page: filter.Page, PageSize: filter.PageSize, TotalCount: total}, nil
}

// Get returns a case with its derived deadlines.
func (s *CaseService) Get(ctx context.Context, actor *models.JWTClaims, id string) (*models.DisciplinaryCase, error) {
	c, err := s.loadCase(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.ViewCase(actor, c); err != nil {
		return nil, err
	}
	discipline.DeriveCase(c, s.today())
	return c, nil
}

// Create reports a new case against an employee.
func (s *CaseService) Create(ctx context.Context, actor *models.JWTClaims, req dto.CreateCaseRequest) (*models.DisciplinaryCase, error) {
	if err := authz.ManageCase(actor); err != nil {
		return nil, err
	}
	if err := s.Validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid case payload")
	}
	offense, err := s.Offenses.GetByID(ctx, req.OffenseClassificationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, s.reject(appErrors.Validation("offense classification not found"))
		}
		return nil, lookupError(err, "offense classification")
	}
	employee, err := s.Employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, s.reject(appErrors.Validation("employee not found"))
		}
		return nil, lookupError(err, "employee")
	}

	draft := models.DisciplinaryCase{
		ID:                      uuid.NewString(),
		IncidentDate:            req.IncidentDate.OrZero(),
		ReportedDate:            req.ReportedDate.OrZero(),
		Description:             req.Description,
		LabourLawBasis:          req.LabourLawBasis,
		EmployerKnowledgeDate:   req.EmployerKnowledgeDate.TimePtr(),
		NoticeDeliveryMethod:    req.NoticeDeliveryMethod,
		NoticeWitnessID:         req.NoticeWitnessID,
		NoticeBoardPostedDate:   req.NoticeBoardPostedDate.TimePtr(),
		UnauthorizedAbsenceDays: req.UnauthorizedAbsenceDays,
		LateArrivalCount:        req.LateArrivalCount,
		AbsenceWarningsIssued:   req.AbsenceWarningsIssued,
		CreatedBy:               actor.ActorID(),
	}
	today := s.today()
	c, t, err := discipline.NewCase(draft, offense, employee, today)
	if err != nil {
		return nil, s.reject(err)
	}
	if err := s.commit(ctx, c, actor, repository.ChangeSet{CreateCase: c}, t); err != nil {
		return nil, err
	}
	discipline.DeriveCase(c, today)
	return c, nil
}

func (s *CaseService) apply(ctx context.Context, actor *models.JWTClaims, id string, authorize caseAuthorizer, step caseStep) (*models.DisciplinaryCase, error) {
	c, err := s.loadCase(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(actor, c); err != nil {
		return nil, err
	}
	today := s.today()
	updated, t, err := step(*c, today)
	if err != nil {
		return nil, s.reject(err)
	}
	if err := s.commit(ctx, updated, actor, repository.ChangeSet{UpdateCase: updated}, t); err != nil {
		return nil, err
	}
	discipline.DeriveCase(updated, today)
	return updated, nil
}

// IssueShowCause demands a written explanation from the employee.
func (s *CaseService) IssueShowCause(ctx context.Context, actor *models.JWTClaims, id string) (*models.DisciplinaryCase, error) {
	return s.apply(ctx, actor, id, hrOnly, discipline.IssueShowCause)
}

// RecordShowCauseResponse stores the employee's explanation.
func (s *CaseService) RecordShowCauseResponse(ctx context.Context, actor *models.JWTClaims, id string, req dto.ShowCauseResponseRequest) (*models.DisciplinaryCase, error) {
	return s.apply(ctx, actor, id, hrOrEmployee, func(c models.DisciplinaryCase, _ time.Time) (*models.DisciplinaryCase, discipline.Transition, error) {
		return discipline.RecordShowCauseResponse(c, req.Response)
	})
}

// StartInvestigation moves the case into investigation.
func (s *CaseService) StartInvestigation(ctx context.Context, actor *models.JWTClaims, id string) (*models.DisciplinaryCase, error) {
	return s.apply(ctx, actor, id, hrOnly, discipline.StartInvestigation)
}

// ScheduleHearing sets the disciplinary hearing.
func (s *CaseService) ScheduleHearing(ctx context.Context, actor *models.JWTClaims, id string, req dto.HearingRequest) (*models.DisciplinaryCase, error) {
	return s.apply(ctx, actor, id, hrOnly, func(c models.DisciplinaryCase, _ time.Time) (*models.DisciplinaryCase, discipline.Transition, error) {
		return discipline.ScheduleHearing(c, discipline.HearingInput{Date: req.Date.TimePtr(), OfficerID: req.OfficerID, Notes: req.Notes})
	})
}

// MoveToDecision readies the case for a decision.
func (s *CaseService) MoveToDecision(ctx context.Context, actor *models.JWTClaims, id string) (*models.DisciplinaryCase, error) {
	return s.apply(ctx, actor, id, hrOnly, func(c models.DisciplinaryCase, _ time.Time) (*models.DisciplinaryCase, discipline.Transition, error) {
		return discipline.MoveToDecision(c)
	})
}

// RecordDecision records the outcome. A termination without a notice period
// gets one suggested from the employee's service length.
func (s *CaseService) RecordDecision(ctx context.Context, actor *models.JWTClaims, id string, req dto.DecisionRequest) (*models.DisciplinaryCase, error) {
	if err := s.Validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid decision payload")
	}
	return s.apply(ctx, actor, id, hrOnly, func(c models.DisciplinaryCase, today time.Time) (*models.DisciplinaryCase, discipline.Transition, error) {
		in := discipline.DecisionInput{
			Outcome:            req.Outcome,
			Rationale:          req.Rationale,
			TerminationType:    req.TerminationType,
			NoticePeriodMonths: req.NoticePeriodMonths,
			SuspensionDays:     req.SuspensionDays,
			SuspensionWithPay:  req.SuspensionWithPay,
			WarningExpiryDate:  req.WarningExpiryDate.TimePtr(),
			LabourLawBasis:     req.LabourLawBasis,
		}
		return discipline.RecordDecision(c, in, actor.ActorID(), s.firstContract(ctx, c.EmployeeID), today)
	})
}

// ServeDecision records delivery of the decision to the employee.
func (s *CaseService) ServeDecision(ctx context.Context, actor *models.JWTClaims, id string, req dto.ServeDecisionRequest) (*models.DisciplinaryCase, error) {
	if err := s.Validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid serve payload")
	}
	return s.apply(ctx, actor, id, hrOnly, func(c models.DisciplinaryCase, today time.Time) (*models.DisciplinaryCase, discipline.Transition, error) {
		updated, t, err := discipline.ServeDecision(c, discipline.ServeInput{Method: req.Method, WitnessID: req.WitnessID}, today)
		if err == nil && t.Details["appeal_window_expired"] == true {
			s.Logger.Warn("decision served after the appeal window closed",
				zap.String("case_id", c.ID),
				zap.String("reference", c.Reference),
				zap.Any("appeal_deadline", t.Details["AppealDeadline"]),
			)
		}
		return updated, t, err
	})
}

// Close closes the case with its settlement details.
func (s *CaseService) Close(ctx context.Context, actor *models.JWTClaims, id string, req dto.CloseCaseRequest) (*models.DisciplinaryCase, error) {
	return s.apply(ctx, actor, id, hrOnly, func(c models.DisciplinaryCase, today time.Time) (*models.DisciplinaryCase, discipline.Transition, error) {
		return discipline.CloseCase(c, discipline.CloseInput{
			Summary:                     req.Summary,
			FinalPaymentCompleted:       req.FinalPaymentCompleted,
			EmploymentCertificateIssued: req.EmploymentCertificateIssued,
			SeveranceApplicable:         req.SeveranceApplicable,
			SeveranceAmount:             req.SeveranceAmount,
		}, today)
	})
}

// OpenAppeal moves a served decision into the appeal stage.
func (s *CaseService) OpenAppeal(ctx context.Context, actor *models.JWTClaims, id string) (*models.DisciplinaryCase, error) {
	return s.apply(ctx, actor, id, authz.FileAppeal, func(c models.DisciplinaryCase, _ time.Time) (*models.DisciplinaryCase, discipline.Transition, error) {
		return discipline.OpenAppeal(c)
	})
}

// Acknowledge records that the employee accepts the case.
func (s *CaseService) Acknowledge(ctx context.Context, actor *models.JWTClaims, id string) (*models.DisciplinaryCase, error) {
	return s.apply(ctx, actor, id, authz.RespondToCase, discipline.Acknowledge)
}

// Contest records the employee's objection.
func (s *CaseService) Contest(ctx context.Context, actor *models.JWTClaims, id string, req dto.ContestRequest) (*models.DisciplinaryCase, error) {
	return s.apply(ctx, actor, id, authz.RespondToCase, func(c models.DisciplinaryCase, today time.Time) (*models.DisciplinaryCase, discipline.Transition, error) {
		return discipline.Contest(c, req.Statement, today)
	})
}

// Recommend suggests the next sanction from the employee's closed-case history.
func (s *CaseService) Recommend(ctx context.Context, actor *models.JWTClaims, id string) (*dto.RecommendationResponse, error) {
	c, err := s.loadCase(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.ViewCase(actor, c); err != nil {
		return nil, err
	}
	prior, err := s.cases.CountPriorWarnings(ctx, c.EmployeeID, c.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count prior warnings")
	}
	rec := discipline.Recommend(discipline.InputForCase(c, prior))
	return &dto.RecommendationResponse{CaseID: c.ID, Recommendation: string(rec), PriorWarnings: prior}, nil
}

// Delete removes a case with everything under it.
func (s *CaseService) Delete(ctx context.Context, actor *models.JWTClaims, id string) error {
	if err := authz.DeleteCase(actor); err != nil {
		return err
	}
	c, err := s.loadCase(ctx, id)
	if err != nil {
		return err
	}
	if err := s.cases.Delete(ctx, id); err != nil {
		return lookupError(err, "case")
	}
	if c.LetterPath != nil && s.letters != nil {
		if err := s.letters.Delete(*c.LetterPath); err != nil {
			s.Logger.Warn("failed to remove decision letter", zap.String("case_id", id), zap.Error(err))
		}
	}
	s.Metrics.RecordTransition(string(models.EntityCase), "deleted")
	s.Logger.Info("case deleted", zap.String("case_id", id), zap.String("reference", c.Reference), zap.String("actor_id", actor.ActorID()))
	return nil
}

// Export renders the cases matching filter as a register in format. It
// returns the file body and its content type.
func (s *CaseService) Export(ctx context.Context, actor *models.JWTClaims, filter models.CaseFilter, format string) ([]byte, string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = ExportCSV
	}
	renderer, ok := s.renderers[format]
	if !ok {
		return nil, "", appErrors.Validation(fmt.Sprintf("unsupported export format %q", format))
	}
	if err := authz.ScopeCaseFilter(actor, &filter); err != nil {
		return nil, "", err
	}

	filter.Page = 1
	filter.PageSize = 200
	var rows []map[string]string
	today := s.today()
	for len(rows) < maxExportRows {
		cases, total, err := s.cases.List(ctx, filter)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list cases")
		}
		for i := range cases {
			discipline.DeriveCase(&cases[i], today)
			rows = append(rows, caseRow(&cases[i]))
		}
		if len(cases) == 0 || filter.Page*filter.PageSize >= total {
			break
		}
		filter.Page++
	}

	body, err := renderer.Render(export.Dataset{
		Title:   "Disciplinary case register",
		Columns: caseColumns,
		Rows:    rows,
	})
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	s.Logger.Info("cases exported", zap.String("format", format), zap.Int("rows", len(rows)), zap.String("actor_id", actor.ActorID()))
	if format == ExportPDF {
		return body, "application/pdf", nil
	}
	return body, "text/csv", nil
}

var caseColumns = []export.Column{
	{Key: "reference", Title: "Reference", Width: 1.2},
	{Key: "employee", Title: "Employee", Width: 1.4},
	{Key: "incident", Title: "Incident", Width: 1},
	{Key: "severity", Title: "Severity", Width: 0.9},
	{Key: "state", Title: "State", Width: 1},
	{Key: "outcome", Title: "Outcome", Width: 1.3},
	{Key: "appeal_deadline", Title: "Appeal deadline", Width: 1.1},
	{Key: "time_barred", Title: "Time barred", Width: 0.8},
}

func caseRow(c *models.DisciplinaryCase) map[string]string {
	row := map[string]string{
		"reference":       c.Reference,
		"employee":        c.EmployeeID,
		"incident":        c.IncidentDate.Format(time.DateOnly),
		"severity":        string(c.Severity),
		"state":           string(c.State),
		"appeal_deadline": c.AppealDeadline.Format(time.DateOnly),
		"time_barred":     strconv.FormatBool(c.IsTimeBarred),
	}
	if c.DecisionOutcome != nil {
		row["outcome"] = string(*c.DecisionOutcome)
	}
	return row
}
