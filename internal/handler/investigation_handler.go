package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hr-disciplinary-api/internal/dto"
	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	"github.com/noah-isme/hr-disciplinary-api/pkg/response"
)

type investigationService interface {
	ListByCase(ctx context.Context, actor *models.JWTClaims, caseID string) ([]models.Investigation, error)
	Create(ctx context.Context, actor *models.JWTClaims, caseID string, req dto.CreateInvestigationRequest) (*models.Investigation, error)
	Complete(ctx context.Context, actor *models.JWTClaims, id string, req dto.CompleteInvestigationRequest) (*models.Investigation, error)
	Suspend(ctx context.Context, actor *models.JWTClaims, id string) (*models.Investigation, error)
	Resume(ctx context.Context, actor *models.JWTClaims, id string) (*models.Investigation, error)
}

// InvestigationHandler exposes case investigations.
type InvestigationHandler struct {
	service investigationService
}

// NewInvestigationHandler builds a new handler.
func NewInvestigationHandler(service investigationService) *InvestigationHandler {
	return &InvestigationHandler{service: service}
}

// List godoc
// @Summary List investigations of a case
// @Tags Investigations
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} response.Envelope
// @Router /cases/{id}/investigations [get]
func (h *InvestigationHandler) List(c *gin.Context) {
	items, err := h.service.ListByCase(c.Request.Context(), claimsFromContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// Create godoc
// @Summary Open an investigation
// @Tags Investigations
// @Accept json
// @Produce json
// @Param id path string true "Case ID"
// @Param payload body dto.CreateInvestigationRequest true "Investigation"
// @Success 201 {object} response.Envelope
// @Router /cases/{id}/investigations [post]
func (h *InvestigationHandler) Create(c *gin.Context) {
	var req dto.CreateInvestigationRequest
	if !bindJSON(c, &req, "invalid investigation payload") {
		return
	}
	item, err := h.service.Create(c.Request.Context(), claimsFromContext(c), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// Complete godoc
// @Summary Complete an investigation
// @Tags Investigations
// @Accept json
// @Produce json
// @Param id path string true "Investigation ID"
// @Param payload body dto.CompleteInvestigationRequest false "Findings"
// @Success 200 {object} response.Envelope
// @Router /investigations/{id}/complete [post]
func (h *InvestigationHandler) Complete(c *gin.Context) {
	var req dto.CompleteInvestigationRequest
	if !bindOptionalJSON(c, &req, "invalid findings payload") {
		return
	}
	h.respond(c)(h.service.Complete(c.Request.Context(), claimsFromContext(c), c.Param("id"), req))
}

// Suspend godoc
// @Summary Suspend an investigation
// @Tags Investigations
// @Produce json
// @Param id path string true "Investigation ID"
// @Success 200 {object} response.Envelope
// @Router /investigations/{id}/suspend [post]
func (h *InvestigationHandler) Suspend(c *gin.Context) {
	h.respond(c)(h.service.Suspend(c.Request.Context(), claimsFromContext(c), c.Param("id")))
}

// Resume godoc
// @Summary Resume a suspended investigation
// @Tags Investigations
// @Produce json
// @Param id path string true "Investigation ID"
// @Success 200 {object} response.Envelope
// @Router /investigations/{id}/resume [post]
func (h *InvestigationHandler) Resume(c *gin.Context) {
	h.respond(c)(h.service.Resume(c.Request.Context(), claimsFromContext(c), c.Param("id")))
}

func (h *InvestigationHandler) respond(c *gin.Context) func(*models.Investigation, error) {
	return func(item *models.Investigation, err error) {
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, item)
	}
}
