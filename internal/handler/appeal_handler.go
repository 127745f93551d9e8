package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hr-disciplinary-api/internal/dto"
	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	"github.com/noah-isme/hr-disciplinary-api/pkg/response"
)

type appealService interface {
	ListByCase(ctx context.Context, actor *models.JWTClaims, caseID string) ([]models.Appeal, error)
	File(ctx context.Context, actor *models.JWTClaims, caseID string, req dto.CreateAppealRequest) (*models.Appeal, error)
	StartReview(ctx context.Context, actor *models.JWTClaims, id string) (*models.Appeal, error)
	ScheduleHearing(ctx context.Context, actor *models.JWTClaims, id string, req dto.HearingRequest) (*models.Appeal, error)
	Decide(ctx context.Context, actor *models.JWTClaims, id string, req dto.DecideAppealRequest) (*models.Appeal, error)
	Close(ctx context.Context, actor *models.JWTClaims, id string) (*models.Appeal, error)
}

// AppealHandler exposes the appeal sub-workflow.
type AppealHandler struct {
	service appealService
}

// NewAppealHandler builds a new handler.
func NewAppealHandler(service appealService) *AppealHandler {
	return &AppealHandler{service: service}
}

// List godoc
// @Summary List appeals of a case
// @Tags Appeals
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} response.Envelope
// @Router /cases/{id}/appeals [get]
func (h *AppealHandler) List(c *gin.Context) {
	items, err := h.service.ListByCase(c.Request.Context(), claimsFromContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// File godoc
// @Summary File an appeal against a served decision
// @Tags Appeals
// @Accept json
// @Produce json
// @Param id path string true "Case ID"
// @Param payload body dto.CreateAppealRequest true "Appeal"
// @Success 201 {object} response.Envelope
// @Router /cases/{id}/appeals [post]
func (h *AppealHandler) File(c *gin.Context) {
	var req dto.CreateAppealRequest
	if !bindJSON(c, &req, "invalid appeal payload") {
		return
	}
	item, err := h.service.File(c.Request.Context(), claimsFromContext(c), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// StartReview godoc
// @Summary Start reviewing an appeal
// @Tags Appeals
// @Produce json
// @Param id path string true "Appeal ID"
// @Success 200 {object} response.Envelope
// @Router /appeals/{id}/review [post]
func (h *AppealHandler) StartReview(c *gin.Context) {
	h.respond(c)(h.service.StartReview(c.Request.Context(), claimsFromContext(c), c.Param("id")))
}

// ScheduleHearing godoc
// @Summary Schedule an appeal hearing
// @Tags Appeals
// @Accept json
// @Produce json
// @Param id path string true "Appeal ID"
// @Param payload body dto.HearingRequest false "Hearing"
// @Success 200 {object} response.Envelope
// @Router /appeals/{id}/hearing [post]
func (h *AppealHandler) ScheduleHearing(c *gin.Context) {
	var req dto.HearingRequest
	if !bindOptionalJSON(c, &req, "invalid hearing payload") {
		return
	}
	h.respond(c)(h.service.ScheduleHearing(c.Request.Context(), claimsFromContext(c), c.Param("id"), req))
}

// Decide godoc
// @Summary Decide an appeal
// @Description Upheld revokes the appealed action and closes the case
// @Tags Appeals
// @Accept json
// @Produce json
// @Param id path string true "Appeal ID"
// @Param payload body dto.DecideAppealRequest true "Outcome"
// @Success 200 {object} response.Envelope
// @Router /appeals/{id}/decide [post]
func (h *AppealHandler) Decide(c *gin.Context) {
	var req dto.DecideAppealRequest
	if !bindJSON(c, &req, "invalid appeal decision") {
		return
	}
	h.respond(c)(h.service.Decide(c.Request.Context(), claimsFromContext(c), c.Param("id"), req))
}

// Close godoc
// @Summary Close a decided appeal
// @Tags Appeals
// @Produce json
// @Param id path string true "Appeal ID"
// @Success 200 {object} response.Envelope
// @Router /appeals/{id}/close [post]
func (h *AppealHandler) Close(c *gin.Context) {
	h.respond(c)(h.service.Close(c.Request.Context(), claimsFromContext(c), c.Param("id")))
}

func (h *AppealHandler) respond(c *gin.Context) func(*models.Appeal, error) {
	return func(item *models.Appeal, err error) {
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, item)
	}
}
