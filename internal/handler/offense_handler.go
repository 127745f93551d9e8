package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hr-disciplinary-api/internal/dto"
	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	"github.com/noah-isme/hr-disciplinary-api/pkg/response"
)

type offenseService interface {
	List(ctx context.Context, filter models.OffenseFilter) ([]models.OffenseClassification, error)
	Get(ctx context.Context, id string) (*models.OffenseClassification, error)
	Create(ctx context.Context, actor *models.JWTClaims, req dto.UpsertOffenseRequest) (*models.OffenseClassification, error)
	Update(ctx context.Context, actor *models.JWTClaims, id string, req dto.UpsertOffenseRequest) (*models.OffenseClassification, error)
}

// OffenseHandler exposes offense classifications.
type OffenseHandler struct {
	service offenseService
}

// NewOffenseHandler builds a new handler.
func NewOffenseHandler(service offenseService) *OffenseHandler {
	return &OffenseHandler{service: service}
}

// List godoc
// @Summary List offense classifications
// @Tags Offenses
// @Produce json
// @Param severity query string false "Severity"
// @Param active query bool false "Active only"
// @Param search query string false "Name search"
// @Success 200 {object} response.Envelope
// @Router /offenses [get]
func (h *OffenseHandler) List(c *gin.Context) {
	filter := models.OffenseFilter{
		Severity:   models.Severity(c.Query("severity")),
		ActiveOnly: queryBool(c, "active"),
		Search:     c.Query("search"),
	}
	items, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil)
}

// Get godoc
// @Summary Get an offense classification
// @Tags Offenses
// @Produce json
// @Param id path string true "Offense ID"
// @Success 200 {object} response.Envelope
// @Router /offenses/{id} [get]
func (h *OffenseHandler) Get(c *gin.Context) {
	item, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, item)
}

// Create godoc
// @Summary Create an offense classification
// @Tags Offenses
// @Accept json
// @Produce json
// @Param payload body dto.UpsertOffenseRequest true "Offense"
// @Success 201 {object} response.Envelope
// @Router /offenses [post]
func (h *OffenseHandler) Create(c *gin.Context) {
	var req dto.UpsertOffenseRequest
	if !bindJSON(c, &req, "invalid offense payload") {
		return
	}
	item, err := h.service.Create(c.Request.Context(), claimsFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// Update godoc
// @Summary Update an offense classification
// @Tags Offenses
// @Accept json
// @Produce json
// @Param id path string true "Offense ID"
// @Param payload body dto.UpsertOffenseRequest true "Offense"
// @Success 200 {object} response.Envelope
// @Router /offenses/{id} [put]
func (h *OffenseHandler) Update(c *gin.Context) {
	var req dto.UpsertOffenseRequest
	if !bindJSON(c, &req, "invalid offense payload") {
		return
	}
	item, err := h.service.Update(c.Request.Context(), claimsFromContext(c), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, item)
}
