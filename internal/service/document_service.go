package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/hr-disciplinary-api/internal/authz"
	"github.com/noah-isme/hr-disciplinary-api/internal/discipline"
	"github.com/noah-isme/hr-disciplinary-api/internal/dto"
	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	"github.com/noah-isme/hr-disciplinary-api/internal/repository"
	appErrors "github.com/noah-isme/hr-disciplinary-api/pkg/errors"
)

type documentRepository interface {
	ListTypes(ctx context.Context) ([]models.DocumentType, error)
	GetType(ctx context.Context, id string) (*models.DocumentType, error)
	CreateType(ctx context.Context, t *models.DocumentType) error
	List(ctx context.Context, filter models.DocumentFilter) ([]models.EmployeeDocument, error)
	GetByID(ctx context.Context, id string) (*models.EmployeeDocument, error)
	Create(ctx context.Context, doc *models.EmployeeDocument) error
	Archive(ctx context.Context, id string) error
}

type documentStorage interface {
	SaveStream(name string, r io.Reader) (int64, error)
	Open(name string) (*os.File, error)
	Delete(name string) error
}

// DocumentConfig bounds uploads and sets the expiry warning window.
type DocumentConfig struct {
	MaxFileSize       int64
	ExpiryWarningDays int
	DownloadPrefix    string
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// DocumentService stores employee documents and tracks their expiry.
type DocumentService struct {
	repo      documentRepository
	employees employeeDirectory
	storage   documentStorage
	config    DocumentConfig
	validator *validator.Validate
	logger    *zap.Logger
	clock     func() time.Time
}

// NewDocumentService constructs the service.
func NewDocumentService(repo documentRepository, employees employeeDirectory, storage documentStorage, config DocumentConfig, validate *validator.Validate, logger *zap.Logger) *DocumentService {
	if config.MaxFileSize <= 0 {
		config.MaxFileSize = 10 << 20
	}
	if config.ExpiryWarningDays <= 0 {
		config.ExpiryWarningDays = 30
	}
	if config.DownloadPrefix == "" {
		config.DownloadPrefix = "/api/v1/documents"
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentService{
		repo:      repo,
		employees: employees,
		storage:   storage,
		config:    config,
		validator: validate,
		logger:    logger,
		clock:     func() time.Time { return time.Now().UTC() },
	}
}

// ListTypes returns every document type with its document count.
func (s *DocumentService) ListTypes(ctx context.Context) ([]models.DocumentType, error) {
	types, err := s.repo.ListTypes(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list document types")
	}
	return types, nil
}

// CreateType defines a document category. Codes are unique.
func (s *DocumentService) CreateType(ctx context.Context, actor *models.JWTClaims, req dto.CreateDocumentTypeRequest) (*models.DocumentType, error) {
	if err := authz.ManageDocuments(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid document type payload")
	}
	t := &models.DocumentType{Name: strings.TrimSpace(req.Name), Code: req.Code, Description: req.Description}
	if err := s.repo.CreateType(ctx, t); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "document type code already exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create document type")
	}
	return t, nil
}

// List returns documents visible to actor. Employees only see their own.
func (s *DocumentService) List(ctx context.Context, actor *models.JWTClaims, filter models.DocumentFilter) ([]models.EmployeeDocument, error) {
	scope, err := authz.ScopeEmployee(actor)
	if err != nil {
		return nil, err
	}
	if scope != "" {
		filter.EmployeeID = scope
	}
	docs, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list documents")
	}
	today := discipline.Date(s.clock())
	for i := range docs {
		s.derive(&docs[i], today)
	}
	return docs, nil
}

// Get returns one document.
func (s *DocumentService) Get(ctx context.Context, actor *models.JWTClaims, id string) (*models.EmployeeDocument, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "document")
	}
	if err := authz.ViewDocument(actor, doc.EmployeeID); err != nil {
		return nil, err
	}
	s.derive(doc, discipline.Date(s.clock()))
	return doc, nil
}

// Upload stores the file and records the document.
func (s *DocumentService) Upload(ctx context.Context, actor *models.JWTClaims, req dto.UploadDocumentRequest) (*models.EmployeeDocument, error) {
	if err := authz.ManageDocuments(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid document upload")
	}
	if req.Size > s.config.MaxFileSize {
		return nil, appErrors.Validation(fmt.Sprintf("file exceeds the %d byte limit", s.config.MaxFileSize))
	}
	employee, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, lookupError(err, "employee")
	}
	if req.DocumentTypeID != nil && *req.DocumentTypeID != "" {
		if _, err := s.repo.GetType(ctx, *req.DocumentTypeID); err != nil {
			return nil, lookupError(err, "document type")
		}
	} else {
		req.DocumentTypeID = nil
	}

	today := discipline.Date(s.clock())
	uploadDate := today
	if req.UploadDate != nil {
		uploadDate = discipline.Date(req.UploadDate.Time)
	}
	var expiry *time.Time
	if req.ExpiryDate != nil {
		d := discipline.Date(req.ExpiryDate.Time)
		if d.Before(uploadDate) {
			return nil, appErrors.Validation("expiry date cannot be before the upload date")
		}
		expiry = &d
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = employee.FullName + " - Document"
	}

	doc := &models.EmployeeDocument{
		ID:             uuid.NewString(),
		Name:           name,
		EmployeeID:     employee.ID,
		DepartmentID:   employee.DepartmentID,
		DocumentTypeID: req.DocumentTypeID,
		Description:    req.Description,
		FileName:       filepath.Base(req.FileName),
		UploadDate:     uploadDate,
		ExpiryDate:     expiry,
		Active:         true,
		UploadedBy:     actor.ActorID(),
	}
	doc.FilePath = fmt.Sprintf("employees/%s/%s-%s", employee.ID, doc.ID, unsafeFileChars.ReplaceAllString(doc.FileName, "_"))

	n, err := s.storage.SaveStream(doc.FilePath, io.LimitReader(req.Content, s.config.MaxFileSize+1))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store document")
	}
	if n > s.config.MaxFileSize {
		s.discard(doc.FilePath)
		return nil, appErrors.Validation(fmt.Sprintf("file exceeds the %d byte limit", s.config.MaxFileSize))
	}
	doc.FileSize = n
	if err := s.repo.Create(ctx, doc); err != nil {
		s.discard(doc.FilePath)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save document")
	}
	s.logger.Info("document uploaded",
		zap.String("document_id", doc.ID),
		zap.String("employee_id", doc.EmployeeID),
		zap.Int64("size", n),
	)
	s.derive(doc, today)
	return doc, nil
}

// Open returns the stored file of a document for download.
func (s *DocumentService) Open(ctx context.Context, actor *models.JWTClaims, id string) (*os.File, *models.EmployeeDocument, error) {
	doc, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, nil, err
	}
	file, err := s.storage.Open(doc.FilePath)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrNotFound.Code, appErrors.ErrNotFound.Status, "document file not found")
	}
	return file, doc, nil
}

// Archive hides a document from default listings. The file is kept.
func (s *DocumentService) Archive(ctx context.Context, actor *models.JWTClaims, id string) error {
	if err := authz.ManageDocuments(actor); err != nil {
		return err
	}
	if err := s.repo.Archive(ctx, id); err != nil {
		return lookupError(err, "document")
	}
	return nil
}

func (s *DocumentService) derive(doc *models.EmployeeDocument, today time.Time) {
	doc.DownloadURL = s.config.DownloadPrefix + "/" + doc.ID + "/download"
	doc.ExpiryStatus, doc.DaysToExpiry = ExpiryStatus(doc.ExpiryDate, today, s.config.ExpiryWarningDays)
}

func (s *DocumentService) discard(path string) {
	if err := s.storage.Delete(path); err != nil {
		s.logger.Warn("failed to remove stored document", zap.String("path", path), zap.Error(err))
	}
}

// ExpiryStatus classifies an expiry date against today. Documents expiring
// within warnDays are expiring soon.
func ExpiryStatus(expiry *time.Time, today time.Time, warnDays int) (models.ExpiryStatus, int) {
	if expiry == nil {
		return models.ExpiryNone, 0
	}
	days := int(discipline.Date(*expiry).Sub(discipline.Date(today)).Hours() / 24)
	switch {
	case days < 0:
		return models.ExpiryExpired, days
	case days <= warnDays:
		return models.ExpiryExpiringSoon, days
	}
	return models.ExpiryValid, days
}
