package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hr-disciplinary-api/internal/dto"
	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	"github.com/noah-isme/hr-disciplinary-api/pkg/response"
)

type exitInterviewService interface {
	List(ctx context.Context, actor *models.JWTClaims, filter models.ExitInterviewFilter) ([]models.ExitInterview, error)
	Create(ctx context.Context, actor *models.JWTClaims, req dto.CreateExitInterviewRequest) (*models.ExitInterview, error)
	Confirm(ctx context.Context, actor *models.JWTClaims, id string) (*models.ExitInterview, error)
	Done(ctx context.Context, actor *models.JWTClaims, id string) (*models.ExitInterview, error)
	ResetToDraft(ctx context.Context, actor *models.JWTClaims, id string) (*models.ExitInterview, error)
}

// ExitInterviewHandler exposes exit interviews.
type ExitInterviewHandler struct {
	service exitInterviewService
}

// NewExitInterviewHandler builds a new handler.
func NewExitInterviewHandler(service exitInterviewService) *ExitInterviewHandler {
	return &ExitInterviewHandler{service: service}
}

// List godoc
// @Summary List exit interviews
// @Tags Exit interviews
// @Produce json
// @Param employeeId query string false "Employee ID"
// @Param resignationId query string false "Resignation ID"
// @Success 200 {object} response.Envelope
// @Router /exit-interviews [get]
func (h *ExitInterviewHandler) List(c *gin.Context) {
	filter := models.ExitInterviewFilter{
		EmployeeID:    c.Query("employeeId"),
		ResignationID: c.Query("resignationId"),
		Limit:         queryInt(c, "limit"),
		Offset:        queryInt(c, "offset"),
	}
	for _, s := range queryList(c, "state") {
		filter.States = append(filter.States, models.ExitInterviewState(s))
	}
	items, err := h.service.List(c.Request.Context(), claimsFromContext(c), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// Create godoc
// @Summary Record an exit interview
// @Tags Exit interviews
// @Accept json
// @Produce json
// @Param payload body dto.CreateExitInterviewRequest true "Interview"
// @Success 201 {object} response.Envelope
// @Router /exit-interviews [post]
func (h *ExitInterviewHandler) Create(c *gin.Context) {
	var req dto.CreateExitInterviewRequest
	if !bindJSON(c, &req, "invalid exit interview payload") {
		return
	}
	item, err := h.service.Create(c.Request.Context(), claimsFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// Confirm godoc
// @Summary Confirm an exit interview
// @Tags Exit interviews
// @Produce json
// @Param id path string true "Exit interview ID"
// @Success 200 {object} response.Envelope
// @Router /exit-interviews/{id}/confirm [post]
func (h *ExitInterviewHandler) Confirm(c *gin.Context) {
	h.respond(c)(h.service.Confirm(c.Request.Context(), claimsFromContext(c), c.Param("id")))
}

// Done godoc
// @Summary Mark an exit interview as held
// @Tags Exit interviews
// @Produce json
// @Param id path string true "Exit interview ID"
// @Success 200 {object} response.Envelope
// @Router /exit-interviews/{id}/done [post]
func (h *ExitInterviewHandler) Done(c *gin.Context) {
	h.respond(c)(h.service.Done(c.Request.Context(), claimsFromContext(c), c.Param("id")))
}

// Reset godoc
// @Summary Reset an exit interview to draft
// @Tags Exit interviews
// @Produce json
// @Param id path string true "Exit interview ID"
// @Success 200 {object} response.Envelope
// @Router /exit-interviews/{id}/reset [post]
func (h *ExitInterviewHandler) Reset(c *gin.Context) {
	h.respond(c)(h.service.ResetToDraft(c.Request.Context(), claimsFromContext(c), c.Param("id")))
}

func (h *ExitInterviewHandler) respond(c *gin.Context) func(*models.ExitInterview, error) {
	return func(item *models.ExitInterview, err error) {
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, item)
	}
}
