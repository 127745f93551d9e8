package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/hr-disciplinary-api/internal/models"
)

var documentColumns = []string{
	"id", "name", "employee_id", "department_id", "document_type_id", "description", "file_path",
	"file_name", "file_size", "upload_date", "expiry_date", "active", "uploaded_by", "created_at",
}

// DocumentRepository persists document types and employee documents.
type DocumentRepository struct {
	db queryer
}

// NewDocumentRepository constructs the repository.
func NewDocumentRepository(db *sqlx.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// ListTypes returns document types with the number of active documents each.
func (r *DocumentRepository) ListTypes(ctx context.Context) ([]models.DocumentType, error) {
	const query = `SELECT t.id, t.name, t.code, t.description, t.created_at,
	(SELECT COUNT(*) FROM employee_documents d WHERE d.document_type_id = t.id AND d.active) AS document_count
FROM document_types t
ORDER BY t.name ASC`
	var types []models.DocumentType
	if err := r.db.SelectContext(ctx, &types, query); err != nil {
		return nil, fmt.Errorf("list document types: %w", err)
	}
	return types, nil
}

// GetType fetches a document type.
func (r *DocumentRepository) GetType(ctx context.Context, id string) (*models.DocumentType, error) {
	const query = `SELECT id, name, code, description, created_at, 0 AS document_count FROM document_types WHERE id = $1`
	var t models.DocumentType
	if err := r.db.GetContext(ctx, &t, query, id); err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateType inserts a document type. Codes are unique.
func (r *DocumentRepository) CreateType(ctx context.Context, t *models.DocumentType) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO document_types (id, name, code, description, created_at) VALUES (:id, :name, :code, :description, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, t); err != nil {
		return fmt.Errorf("create document type: %w", mapUnique(err))
	}
	return nil
}

// List returns documents matching filter, soonest expiry first.
func (r *DocumentRepository) List(ctx context.Context, filter models.DocumentFilter) ([]models.EmployeeDocument, error) {
	builder := psql.Select(selectColumns(documentColumns)).From("employee_documents")
	if filter.EmployeeID != "" {
		builder = builder.Where(sq.Eq{"employee_id": filter.EmployeeID})
	}
	if filter.DocumentTypeID != "" {
		builder = builder.Where(sq.Eq{"document_type_id": filter.DocumentTypeID})
	}
	if filter.ExpiringBefore != nil {
		builder = builder.Where(sq.LtOrEq{"expiry_date": *filter.ExpiringBefore})
	}
	if !filter.IncludeArchived {
		builder = builder.Where(sq.Eq{"active": true})
	}
	limit, offset := clampLimit(filter.Limit, filter.Offset)
	query, args, err := builder.OrderBy("expiry_date ASC NULLS LAST", "upload_date DESC").Limit(limit).Offset(offset).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build document list: %w", err)
	}
	var docs []models.EmployeeDocument
	if err := r.db.SelectContext(ctx, &docs, query, args...); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// GetByID fetches a document.
func (r *DocumentRepository) GetByID(ctx context.Context, id string) (*models.EmployeeDocument, error) {
	query := "SELECT " + selectColumns(documentColumns) + " FROM employee_documents WHERE id = $1"
	var doc models.EmployeeDocument
	if err := r.db.GetContext(ctx, &doc, query, id); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Create inserts a document record.
func (r *DocumentRepository) Create(ctx context.Context, doc *models.EmployeeDocument) error {
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}
	if _, err := r.db.NamedExecContext(ctx, insertQuery("employee_documents", documentColumns), doc); err != nil {
		return fmt.Errorf("create document: %w", err)
	}
	return nil
}

// Archive deactivates a document while keeping its file.
func (r *DocumentRepository) Archive(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE employee_documents SET active = FALSE WHERE id = $1 AND active`, id)
	if err != nil {
		return fmt.Errorf("archive document: %w", err)
	}
	return ensureAffected(res)
}
