package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hr-disciplinary-api/internal/dto"
	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	"github.com/noah-isme/hr-disciplinary-api/pkg/response"
)

type actionService interface {
	ListByCase(ctx context.Context, actor *models.JWTClaims, caseID string) ([]models.DisciplinaryAction, error)
	Create(ctx context.Context, actor *models.JWTClaims, caseID string, req dto.CreateActionRequest) (*models.DisciplinaryAction, error)
	Submit(ctx context.Context, actor *models.JWTClaims, id string) (*models.DisciplinaryAction, error)
	Approve(ctx context.Context, actor *models.JWTClaims, id string) (*models.DisciplinaryAction, error)
	Serve(ctx context.Context, actor *models.JWTClaims, id string, req dto.ServeActionRequest) (*models.DisciplinaryAction, error)
	Complete(ctx context.Context, actor *models.JWTClaims, id string) (*models.DisciplinaryAction, error)
	Revoke(ctx context.Context, actor *models.JWTClaims, id string, req dto.RevokeActionRequest) (*models.DisciplinaryAction, error)
	MarkAppealed(ctx context.Context, actor *models.JWTClaims, id string) (*models.DisciplinaryAction, error)
}

// ActionHandler exposes disciplinary actions.
type ActionHandler struct {
	service actionService
}

// NewActionHandler builds a new handler.
func NewActionHandler(service actionService) *ActionHandler {
	return &ActionHandler{service: service}
}

// List godoc
// @Summary List actions of a case
// @Tags Actions
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} response.Envelope
// @Router /cases/{id}/actions [get]
func (h *ActionHandler) List(c *gin.Context) {
	items, err := h.service.ListByCase(c.Request.Context(), claimsFromContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// Create godoc
// @Summary Draft an action under a case
// @Tags Actions
// @Accept json
// @Produce json
// @Param id path string true "Case ID"
// @Param payload body dto.CreateActionRequest true "Action"
// @Success 201 {object} response.Envelope
// @Router /cases/{id}/actions [post]
func (h *ActionHandler) Create(c *gin.Context) {
	var req dto.CreateActionRequest
	if !bindJSON(c, &req, "invalid action payload") {
		return
	}
	item, err := h.service.Create(c.Request.Context(), claimsFromContext(c), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// Submit godoc
// @Summary Submit an action for approval
// @Tags Actions
// @Produce json
// @Param id path string true "Action ID"
// @Success 200 {object} response.Envelope
// @Router /actions/{id}/submit [post]
func (h *ActionHandler) Submit(c *gin.Context) {
	h.respond(c)(h.service.Submit(c.Request.Context(), claimsFromContext(c), c.Param("id")))
}

// Approve godoc
// @Summary Approve an action
// @Description The approver must hold the offense's approval level
// @Tags Actions
// @Produce json
// @Param id path string true "Action ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /actions/{id}/approve [post]
func (h *ActionHandler) Approve(c *gin.Context) {
	h.respond(c)(h.service.Approve(c.Request.Context(), claimsFromContext(c), c.Param("id")))
}

// Serve godoc
// @Summary Record delivery of an action notice
// @Tags Actions
// @Accept json
// @Produce json
// @Param id path string true "Action ID"
// @Param payload body dto.ServeActionRequest false "Delivery"
// @Success 200 {object} response.Envelope
// @Router /actions/{id}/serve [post]
func (h *ActionHandler) Serve(c *gin.Context) {
	var req dto.ServeActionRequest
	if !bindOptionalJSON(c, &req, "invalid delivery payload") {
		return
	}
	h.respond(c)(h.service.Serve(c.Request.Context(), claimsFromContext(c), c.Param("id"), req))
}

// Complete godoc
// @Summary Complete a served action
// @Tags Actions
// @Produce json
// @Param id path string true "Action ID"
// @Success 200 {object} response.Envelope
// @Router /actions/{id}/complete [post]
func (h *ActionHandler) Complete(c *gin.Context) {
	h.respond(c)(h.service.Complete(c.Request.Context(), claimsFromContext(c), c.Param("id")))
}

// Revoke godoc
// @Summary Revoke an action
// @Tags Actions
// @Accept json
// @Produce json
// @Param id path string true "Action ID"
// @Param payload body dto.RevokeActionRequest true "Reason"
// @Success 200 {object} response.Envelope
// @Router /actions/{id}/revoke [post]
func (h *ActionHandler) Revoke(c *gin.Context) {
	var req dto.RevokeActionRequest
	if !bindJSON(c, &req, "invalid revoke payload") {
		return
	}
	h.respond(c)(h.service.Revoke(c.Request.Context(), claimsFromContext(c), c.Param("id"), req))
}

// MarkAppealed godoc
// @Summary Flag an action as under appeal
// @Tags Actions
// @Produce json
// @Param id path string true "Action ID"
// @Success 200 {object} response.Envelope
// @Router /actions/{id}/appealed [post]
func (h *ActionHandler) MarkAppealed(c *gin.Context) {
	h.respond(c)(h.service.MarkAppealed(c.Request.Context(), claimsFromContext(c), c.Param("id")))
}

func (h *ActionHandler) respond(c *gin.Context) func(*models.DisciplinaryAction, error) {
	return func(item *models.DisciplinaryAction, err error) {
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, item)
	}
}
