package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hr-disciplinary-api/internal/dto"
	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	"github.com/noah-isme/hr-disciplinary-api/pkg/response"
)

type resignationService interface {
	List(ctx context.Context, actor *models.JWTClaims, filter models.ResignationFilter) ([]models.Resignation, error)
	Get(ctx context.Context, actor *models.JWTClaims, id string) (*models.Resignation, error)
	Create(ctx context.Context, actor *models.JWTClaims, req dto.CreateResignationRequest) (*models.Resignation, error)
	Confirm(ctx context.Context, actor *models.JWTClaims, id string) (*models.Resignation, error)
	Approve(ctx context.Context, actor *models.JWTClaims, id string, req dto.ApproveResignationRequest) (*models.Resignation, error)
	Cancel(ctx context.Context, actor *models.JWTClaims, id string) (*models.Resignation, error)
	ResetToDraft(ctx context.Context, actor *models.JWTClaims, id string) (*models.Resignation, error)
}

// ResignationHandler exposes resignation processing.
type ResignationHandler struct {
	service resignationService
}

// NewResignationHandler builds a new handler.
func NewResignationHandler(service resignationService) *ResignationHandler {
	return &ResignationHandler{service: service}
}

// List godoc
// @Summary List resignations
// @Tags Resignations
// @Produce json
// @Param employeeId query string false "Employee ID"
// @Param state query string false "Comma separated states"
// @Success 200 {object} response.Envelope
// @Router /resignations [get]
func (h *ResignationHandler) List(c *gin.Context) {
	filter := models.ResignationFilter{
		EmployeeID: c.Query("employeeId"),
		Limit:      queryInt(c, "limit"),
		Offset:     queryInt(c, "offset"),
	}
	for _, s := range queryList(c, "state") {
		filter.States = append(filter.States, models.ResignationState(s))
	}
	items, err := h.service.List(c.Request.Context(), claimsFromContext(c), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// Get godoc
// @Summary Get a resignation
// @Tags Resignations
// @Produce json
// @Param id path string true "Resignation ID"
// @Success 200 {object} response.Envelope
// @Router /resignations/{id} [get]
func (h *ResignationHandler) Get(c *gin.Context) {
	h.respond(c)(h.service.Get(c.Request.Context(), claimsFromContext(c), c.Param("id")))
}

// Create godoc
// @Summary File a resignation
// @Tags Resignations
// @Accept json
// @Produce json
// @Param payload body dto.CreateResignationRequest true "Resignation"
// @Success 201 {object} response.Envelope
// @Router /resignations [post]
func (h *ResignationHandler) Create(c *gin.Context) {
	var req dto.CreateResignationRequest
	if !bindJSON(c, &req, "invalid resignation payload") {
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
// @Summary Confirm a draft resignation
// @Tags Resignations
// @Produce json
// @Param id path string true "Resignation ID"
// @Success 200 {object} response.Envelope
// @Router /resignations/{id}/confirm [post]
func (h *ResignationHandler) Confirm(c *gin.Context) {
	h.respond(c)(h.service.Confirm(c.Request.Context(), claimsFromContext(c), c.Param("id")))
}

// Approve godoc
// @Summary Approve a confirmed resignation
// @Tags Resignations
// @Accept json
// @Produce json
// @Param id path string true "Resignation ID"
// @Param payload body dto.ApproveResignationRequest true "Separation type"
// @Success 200 {object} response.Envelope
// @Router /resignations/{id}/approve [post]
func (h *ResignationHandler) Approve(c *gin.Context) {
	var req dto.ApproveResignationRequest
	if !bindJSON(c, &req, "invalid approval payload") {
		return
	}
	h.respond(c)(h.service.Approve(c.Request.Context(), claimsFromContext(c), c.Param("id"), req))
}

// Cancel godoc
// @Summary Cancel a resignation
// @Tags Resignations
// @Produce json
// @Param id path string true "Resignation ID"
// @Success 200 {object} response.Envelope
// @Router /resignations/{id}/cancel [post]
func (h *ResignationHandler) Cancel(c *gin.Context) {
	h.respond(c)(h.service.Cancel(c.Request.Context(), claimsFromContext(c), c.Param("id")))
}

// Reset godoc
// @Summary Reset a cancelled resignation to draft
// @Tags Resignations
// @Produce json
// @Param id path string true "Resignation ID"
// @Success 200 {object} response.Envelope
// @Router /resignations/{id}/reset [post]
func (h *ResignationHandler) Reset(c *gin.Context) {
	h.respond(c)(h.service.ResetToDraft(c.Request.Context(), claimsFromContext(c), c.Param("id")))
}

func (h *ResignationHandler) respond(c *gin.Context) func(*models.Resignation, error) {
	return func(item *models.Resignation, err error) {
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, item)
	}
}
