package handler

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/hr-disciplinary-api/internal/dto"
	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	appErrors "github.com/noah-isme/hr-disciplinary-api/pkg/errors"
	"github.com/noah-isme/hr-disciplinary-api/pkg/response"
)

type documentService interface {
	ListTypes(ctx context.Context) ([]models.DocumentType, error)
	CreateType(ctx context.Context, actor *models.JWTClaims, req dto.CreateDocumentTypeRequest) (*models.DocumentType, error)
	List(ctx context.Context, actor *models.JWTClaims, filter models.DocumentFilter) ([]models.EmployeeDocument, error)
	Get(ctx context.Context, actor *models.JWTClaims, id string) (*models.EmployeeDocument, error)
	Upload(ctx context.Context, actor *models.JWTClaims, req dto.UploadDocumentRequest) (*models.EmployeeDocument, error)
	Open(ctx context.Context, actor *models.JWTClaims, id string) (*os.File, *models.EmployeeDocument, error)
	Archive(ctx context.Context, actor *models.JWTClaims, id string) error
}

// DocumentHandler exposes employee documents.
type DocumentHandler struct {
	service documentService
	logger  *zap.Logger
}

// NewDocumentHandler builds a new handler.
func NewDocumentHandler(service documentService, logger *zap.Logger) *DocumentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentHandler{service: service, logger: logger}
}

// ListTypes godoc
// @Summary List document types
// @Tags Documents
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /document-types [get]
func (h *DocumentHandler) ListTypes(c *gin.Context) {
	items, err := h.service.ListTypes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// CreateType godoc
// @Summary Create a document type
// @Tags Documents
// @Accept json
// @Produce json
// @Param payload body dto.CreateDocumentTypeRequest true "Type"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /document-types [post]
func (h *DocumentHandler) CreateType(c *gin.Context) {
	var req dto.CreateDocumentTypeRequest
	if !bindJSON(c, &req, "invalid document type payload") {
		return
	}
	item, err := h.service.CreateType(c.Request.Context(), claimsFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// List godoc
// @Summary List employee documents
// @Description Employees only see their own documents
// @Tags Documents
// @Produce json
// @Param employeeId query string false "Employee ID"
// @Param documentTypeId query string false "Document type ID"
// @Param expiringBefore query string false "Expiring on or before (YYYY-MM-DD)"
// @Param includeArchived query bool false "Include archived documents"
// @Success 200 {object} response.Envelope
// @Router /documents [get]
func (h *DocumentHandler) List(c *gin.Context) {
	expiring, err := queryDate(c, "expiringBefore")
	if err != nil {
		response.Error(c, err)
		return
	}
	filter := models.DocumentFilter{
		EmployeeID:      c.Query("employeeId"),
		DocumentTypeID:  c.Query("documentTypeId"),
		ExpiringBefore:  expiring,
		IncludeArchived: queryBool(c, "includeArchived"),
		Limit:           queryInt(c, "limit"),
		Offset:          queryInt(c, "offset"),
	}
	items, err := h.service.List(c.Request.Context(), claimsFromContext(c), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// Get godoc
// @Summary Get an employee document
// @Tags Documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} response.Envelope
// @Router /documents/{id} [get]
func (h *DocumentHandler) Get(c *gin.Context) {
	item, err := h.service.Get(c.Request.Context(), claimsFromContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, item)
}

// Upload godoc
// @Summary Upload an employee document
// @Tags Documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document file"
// @Param employeeId formData string true "Employee ID"
// @Param documentTypeId formData string false "Document type ID"
// @Param name formData string false "Document name"
// @Param description formData string false "Description"
// @Param uploadDate formData string false "Upload date (YYYY-MM-DD)"
// @Param expiryDate formData string false "Expiry date (YYYY-MM-DD)"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /documents [post]
func (h *DocumentHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "a file is required"))
		return
	}
	req, err := uploadRequest(c, header)
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := header.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "the uploaded file could not be read"))
		return
	}
	defer file.Close() //nolint:errcheck
	req.Content = file

	item, err := h.service.Upload(c.Request.Context(), claimsFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// Download godoc
// @Summary Download the stored file
// @Tags Documents
// @Produce octet-stream
// @Param id path string true "Document ID"
// @Success 200 {file} file
// @Router /documents/{id}/download [get]
func (h *DocumentHandler) Download(c *gin.Context) {
	file, doc, err := h.service.Open(c.Request.Context(), claimsFromContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			h.logger.Warn("failed to close document", zap.String("document_id", doc.ID), zap.Error(err))
		}
	}()
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	c.Header("Cache-Control", "no-store")
	c.DataFromReader(http.StatusOK, doc.FileSize, "application/octet-stream", file, nil)
}

// Archive godoc
// @Summary Archive an employee document
// @Tags Documents
// @Param id path string true "Document ID"
// @Success 204
// @Router /documents/{id} [delete]
func (h *DocumentHandler) Archive(c *gin.Context) {
	if err := h.service.Archive(c.Request.Context(), claimsFromContext(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func uploadRequest(c *gin.Context, header *multipart.FileHeader) (dto.UploadDocumentRequest, error) {
	req := dto.UploadDocumentRequest{
		Name:       strings.TrimSpace(c.PostForm("name")),
		EmployeeID: strings.TrimSpace(c.PostForm("employeeId")),
		FileName:   header.Filename,
		Size:       header.Size,
	}
	if v := strings.TrimSpace(c.PostForm("documentTypeId")); v != "" {
		req.DocumentTypeID = &v
	}
	if v := strings.TrimSpace(c.PostForm("description")); v != "" {
		req.Description = &v
	}
	for field, dest := range map[string]**dto.Date{"uploadDate": &req.UploadDate, "expiryDate": &req.ExpiryDate} {
		raw := strings.TrimSpace(c.PostForm(field))
		if raw == "" {
			continue
		}
		d, err := dto.ParseDate(raw)
		if err != nil {
			return req, appErrors.Validation(field + ": " + err.Error())
		}
		*dest = &d
	}
	return req, nil
}
