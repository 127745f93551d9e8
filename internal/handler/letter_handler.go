package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/hr-disciplinary-api/internal/dto"
	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	appErrors "github.com/noah-isme/hr-disciplinary-api/pkg/errors"
	"github.com/noah-isme/hr-disciplinary-api/pkg/response"
)

type letterService interface {
	Generate(ctx context.Context, actor *models.JWTClaims, caseID string) (*dto.LetterResponse, error)
	Link(ctx context.Context, actor *models.JWTClaims, caseID string) (*dto.LetterResponse, error)
	Download(ctx context.Context, token string) (io.ReadCloser, string, error)
}

// LetterHandler issues and serves decision letters.
type LetterHandler struct {
	service letterService
	logger  *zap.Logger
}

// NewLetterHandler builds a new handler.
func NewLetterHandler(service letterService, logger *zap.Logger) *LetterHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LetterHandler{service: service, logger: logger}
}

// Generate godoc
// @Summary Generate the decision letter
// @Tags Letters
// @Produce json
// @Param id path string true "Case ID"
// @Success 201 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /cases/{id}/letter [post]
func (h *LetterHandler) Generate(c *gin.Context) {
	res, err := h.service.Generate(c.Request.Context(), claimsFromContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, res)
}

// Link godoc
// @Summary Get a fresh download link for the decision letter
// @Tags Letters
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} response.Envelope
// @Router /cases/{id}/letter [get]
func (h *LetterHandler) Link(c *gin.Context) {
	res, err := h.service.Link(c.Request.Context(), claimsFromContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, res)
}

// Download godoc
// @Summary Download a decision letter through a signed link
// @Tags Letters
// @Produce application/pdf
// @Param token query string true "Signed token"
// @Success 200 {file} file
// @Failure 403 {object} response.Envelope
// @Router /letters/download [get]
func (h *LetterHandler) Download(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, appErrors.Validation("token is required"))
		return
	}
	body, filename, err := h.service.Download(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer func() {
		if err := body.Close(); err != nil {
			h.logger.Warn("failed to close letter", zap.Error(err))
		}
	}()
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Cache-Control", "no-store")
	c.DataFromReader(http.StatusOK, -1, "application/pdf", body, nil)
}
