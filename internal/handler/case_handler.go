package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hr-disciplinary-api/internal/dto"
	"github.com/noah-isme/hr-disciplinary-api/internal/middleware"
	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	"github.com/noah-isme/hr-disciplinary-api/pkg/response"
)

type caseService interface {
	List(ctx context.Context, actor *models.JWTClaims, filter models.CaseFilter) ([]models.DisciplinaryCase, *models.Pagination, error)
	Get(ctx context.Context, actor *models.JWTClaims, id string) (*models.DisciplinaryCase, error)
	Create(ctx context.Context, actor *models.JWTClaims, req dto.CreateCaseRequest) (*models.DisciplinaryCase, error)
	IssueShowCause(ctx context.Context, actor *models.JWTClaims, id string) (*models.DisciplinaryCase, error)
	RecordShowCauseResponse(ctx context.Context, actor *models.JWTClaims, id string, req dto.ShowCauseResponseRequest) (*models.DisciplinaryCase, error)
	StartInvestigation(ctx context.Context, actor *models.JWTClaims, id string) (*models.DisciplinaryCase, error)
	ScheduleHearing(ctx context.Context, actor *models.JWTClaims, id string, req dto.HearingRequest) (*models.DisciplinaryCase, error)
	MoveToDecision(ctx context.Context, actor *models.JWTClaims, id string) (*models.DisciplinaryCase, error)
	RecordDecision(ctx context.Context, actor *models.JWTClaims, id string, req dto.DecisionRequest) (*models.DisciplinaryCase, error)
	ServeDecision(ctx context.Context, actor *models.JWTClaims, id string, req dto.ServeDecisionRequest) (*models.DisciplinaryCase, error)
	Close(ctx context.Context, actor *models.JWTClaims, id string, req dto.CloseCaseRequest) (*models.DisciplinaryCase, error)
	OpenAppeal(ctx context.Context, actor *models.JWTClaims, id string) (*models.DisciplinaryCase, error)
	Acknowledge(ctx context.Context, actor *models.JWTClaims, id string) (*models.DisciplinaryCase, error)
	Contest(ctx context.Context, actor *models.JWTClaims, id string, req dto.ContestRequest) (*models.DisciplinaryCase, error)
	Recommend(ctx context.Context, actor *models.JWTClaims, id string) (*dto.RecommendationResponse, error)
	Delete(ctx context.Context, actor *models.JWTClaims, id string) error
	Export(ctx context.Context, actor *models.JWTClaims, filter models.CaseFilter, format string) ([]byte, string, error)
}

type historyService interface {
	History(ctx context.Context, actor *models.JWTClaims, caseID string) ([]models.CaseEvent, error)
}

// CaseHandler exposes the disciplinary case workflow.
type CaseHandler struct {
	cases   caseService
	history historyService
}

// NewCaseHandler builds a new handler.
func NewCaseHandler(cases caseService, history historyService) *CaseHandler {
	return &CaseHandler{cases: cases, history: history}
}

// List godoc
// @Summary List disciplinary cases
// @Description Employees only see their own cases
// @Tags Cases
// @Produce json
// @Param employeeId query string false "Employee ID"
// @Param departmentId query string false "Department ID"
// @Param state query string false "Comma separated states"
// @Param severity query string false "Offense severity"
// @Param outcome query string false "Decision outcome"
// @Param incidentFrom query string false "Incident date lower bound (YYYY-MM-DD)"
// @Param incidentTo query string false "Incident date upper bound (YYYY-MM-DD)"
// @Param search query string false "Reference or description search"
// @Param page query int false "Page"
// @Param pageSize query int false "Page size"
// @Param sortBy query string false "Sort column"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} response.Envelope
// @Router /cases [get]
func (h *CaseHandler) List(c *gin.Context) {
	filter, err := caseFilterFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	items, pagination, err := h.cases.List(c.Request.Context(), claimsFromContext(c), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, pagination, middleware.ExtractMeta(c))
}

// Export godoc
// @Summary Export the case register
// @Tags Cases
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /cases/export [get]
func (h *CaseHandler) Export(c *gin.Context) {
	filter, err := caseFilterFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	format := c.DefaultQuery("format", "csv")
	data, contentType, err := h.cases.Export(c.Request.Context(), claimsFromContext(c), filter, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	filename := fmt.Sprintf("disciplinary-cases-%s.%s", time.Now().UTC().Format("20060102"), strings.ToLower(format))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, contentType, data)
}

// Get godoc
// @Summary Get a disciplinary case
// @Tags Cases
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /cases/{id} [get]
func (h *CaseHandler) Get(c *gin.Context) {
	item, err := h.cases.Get(c.Request.Context(), claimsFromContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, item)
}

// Create godoc
// @Summary Report a disciplinary case
// @Tags Cases
// @Accept json
// @Produce json
// @Param payload body dto.CreateCaseRequest true "Case payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /cases [post]
func (h *CaseHandler) Create(c *gin.Context) {
	var req dto.CreateCaseRequest
	if !bindJSON(c, &req, "invalid case payload") {
		return
	}
	item, err := h.cases.Create(c.Request.Context(), claimsFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// Delete godoc
// @Summary Delete a disciplinary case
// @Tags Cases
// @Param id path string true "Case ID"
// @Success 204
// @Router /cases/{id} [delete]
func (h *CaseHandler) Delete(c *gin.Context) {
	if err := h.cases.Delete(c.Request.Context(), claimsFromContext(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Recommendation godoc
// @Summary Advisory sanction from prior warnings
// @Tags Cases
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} response.Envelope
// @Router /cases/{id}/recommendation [get]
func (h *CaseHandler) Recommendation(c *gin.Context) {
	rec, err := h.cases.Recommend(c.Request.Context(), claimsFromContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rec)
}

// History godoc
// @Summary Case audit trail
// @Description Transitions of the case and its actions, appeals and investigations, oldest first
// @Tags Cases
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} response.Envelope
// @Router /cases/{id}/history [get]
func (h *CaseHandler) History(c *gin.Context) {
	events, err := h.history.History(c.Request.Context(), claimsFromContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, events)
}

// IssueShowCause godoc
// @Summary Issue the show-cause notice
// @Tags Case workflow
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /cases/{id}/show-cause [post]
func (h *CaseHandler) IssueShowCause(c *gin.Context) {
	h.respond(c)(h.cases.IssueShowCause(c.Request.Context(), claimsFromContext(c), c.Param("id")))
}

// RecordShowCauseResponse godoc
// @Summary Record the employee's show-cause response
// @Tags Case workflow
// @Accept json
// @Produce json
// @Param id path string true "Case ID"
// @Param payload body dto.ShowCauseResponseRequest true "Response"
// @Success 200 {object} response.Envelope
// @Router /cases/{id}/show-cause-response [post]
func (h *CaseHandler) RecordShowCauseResponse(c *gin.Context) {
	var req dto.ShowCauseResponseRequest
	if !bindJSON(c, &req, "invalid show-cause response") {
		return
	}
	h.respond(c)(h.cases.RecordShowCauseResponse(c.Request.Context(), claimsFromContext(c), c.Param("id"), req))
}

// StartInvestigation godoc
// @Summary Move the case into investigation
// @Tags Case workflow
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} response.Envelope
// @Router /cases/{id}/investigation [post]
func (h *CaseHandler) StartInvestigation(c *gin.Context) {
	h.respond(c)(h.cases.StartInvestigation(c.Request.Context(), claimsFromContext(c), c.Param("id")))
}

// ScheduleHearing godoc
// @Summary Schedule the disciplinary hearing
// @Tags Case workflow
// @Accept json
// @Produce json
// @Param id path string true "Case ID"
// @Param payload body dto.HearingRequest false "Hearing details"
// @Success 200 {object} response.Envelope
// @Router /cases/{id}/hearing [post]
func (h *CaseHandler) ScheduleHearing(c *gin.Context) {
	var req dto.HearingRequest
	if !bindOptionalJSON(c, &req, "invalid hearing payload") {
		return
	}
	h.respond(c)(h.cases.ScheduleHearing(c.Request.Context(), claimsFromContext(c), c.Param("id"), req))
}

// MoveToDecision godoc
// @Summary Move the case to the decision stage
// @Tags Case workflow
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} response.Envelope
// @Router /cases/{id}/decision-stage [post]
func (h *CaseHandler) MoveToDecision(c *gin.Context) {
	h.respond(c)(h.cases.MoveToDecision(c.Request.Context(), claimsFromContext(c), c.Param("id")))
}

// RecordDecision godoc
// @Summary Record the case decision
// @Tags Case workflow
// @Accept json
// @Produce json
// @Param id path string true "Case ID"
// @Param payload body dto.DecisionRequest true "Decision"
// @Success 200 {object} response.Envelope
// @Router /cases/{id}/decision [post]
func (h *CaseHandler) RecordDecision(c *gin.Context) {
	var req dto.DecisionRequest
	if !bindJSON(c, &req, "invalid decision payload") {
		return
	}
	h.respond(c)(h.cases.RecordDecision(c.Request.Context(), claimsFromContext(c), c.Param("id"), req))
}

// ServeDecision godoc
// @Summary Record delivery of the decision
// @Tags Case workflow
// @Accept json
// @Produce json
// @Param id path string true "Case ID"
// @Param payload body dto.ServeDecisionRequest false "Delivery"
// @Success 200 {object} response.Envelope
// @Router /cases/{id}/serve [post]
func (h *CaseHandler) ServeDecision(c *gin.Context) {
	var req dto.ServeDecisionRequest
	if !bindOptionalJSON(c, &req, "invalid delivery payload") {
		return
	}
	h.respond(c)(h.cases.ServeDecision(c.Request.Context(), claimsFromContext(c), c.Param("id"), req))
}

// Close godoc
// @Summary Close the case
// @Tags Case workflow
// @Accept json
// @Produce json
// @Param id path string true "Case ID"
// @Param payload body dto.CloseCaseRequest false "Settlement"
// @Success 200 {object} response.Envelope
// @Router /cases/{id}/close [post]
func (h *CaseHandler) Close(c *gin.Context) {
	var req dto.CloseCaseRequest
	if !bindOptionalJSON(c, &req, "invalid close payload") {
		return
	}
	h.respond(c)(h.cases.Close(c.Request.Context(), claimsFromContext(c), c.Param("id"), req))
}

// OpenAppeal godoc
// @Summary Move a served case into the appeal stage
// @Tags Case workflow
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} response.Envelope
// @Router /cases/{id}/appeal [post]
func (h *CaseHandler) OpenAppeal(c *gin.Context) {
	h.respond(c)(h.cases.OpenAppeal(c.Request.Context(), claimsFromContext(c), c.Param("id")))
}

// Acknowledge godoc
// @Summary Employee acknowledges the case
// @Tags Case workflow
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} response.Envelope
// @Router /cases/{id}/acknowledge [post]
func (h *CaseHandler) Acknowledge(c *gin.Context) {
	h.respond(c)(h.cases.Acknowledge(c.Request.Context(), claimsFromContext(c), c.Param("id")))
}

// Contest godoc
// @Summary Employee contests the case
// @Tags Case workflow
// @Accept json
// @Produce json
// @Param id path string true "Case ID"
// @Param payload body dto.ContestRequest true "Statement"
// @Success 200 {object} response.Envelope
// @Router /cases/{id}/contest [post]
func (h *CaseHandler) Contest(c *gin.Context) {
	var req dto.ContestRequest
	if !bindJSON(c, &req, "invalid contest payload") {
		return
	}
	h.respond(c)(h.cases.Contest(c.Request.Context(), claimsFromContext(c), c.Param("id"), req))
}

func (h *CaseHandler) respond(c *gin.Context) func(*models.DisciplinaryCase, error) {
	return func(item *models.DisciplinaryCase, err error) {
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, item)
	}
}

func caseFilterFromQuery(c *gin.Context) (models.CaseFilter, error) {
	filter := models.CaseFilter{
		EmployeeID:   c.Query("employeeId"),
		DepartmentID: c.Query("departmentId"),
		Severity:     models.Severity(c.Query("severity")),
		Outcome:      models.DecisionOutcome(c.Query("outcome")),
		Search:       c.Query("search"),
		Page:         queryInt(c, "page"),
		PageSize:     queryInt(c, "pageSize"),
		SortBy:       c.Query("sortBy"),
		SortOrder:    c.Query("sortOrder"),
	}
	for _, s := range queryList(c, "state") {
		filter.States = append(filter.States, models.CaseState(s))
	}
	var err error
	if filter.IncidentFrom, err = queryDate(c, "incidentFrom"); err != nil {
		return filter, err
	}
	if filter.IncidentTo, err = queryDate(c, "incidentTo"); err != nil {
		return filter, err
	}
	return filter, nil
}
