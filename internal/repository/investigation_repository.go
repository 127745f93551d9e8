package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/hr-disciplinary-api/internal/models"
)

var investigationColumns = []string{
	"id", "case_id", "employee_id", "officer_id", "start_date", "end_date", "findings",
	"witnesses", "state", "created_by", "created_at", "updated_at",
}

// InvestigationRepository persists investigations.
type InvestigationRepository struct {
	db queryer
}

// NewInvestigationRepository constructs the repository.
func NewInvestigationRepository(db *sqlx.DB) *InvestigationRepository {
	return &InvestigationRepository{db: db}
}

// ListByCase returns investigations for a case by start date.
func (r *InvestigationRepository) ListByCase(ctx context.Context, caseID string) ([]models.Investigation, error) {
	query := "SELECT " + selectColumns(investigationColumns) + " FROM investigations WHERE case_id = $1 ORDER BY start_date ASC"
	var items []models.Investigation
	if err := r.db.SelectContext(ctx, &items, query, caseID); err != nil {
		return nil, fmt.Errorf("list investigations: %w", err)
	}
	return items, nil
}

// GetByID fetches an investigation.
func (r *InvestigationRepository) GetByID(ctx context.Context, id string) (*models.Investigation, error) {
	query := "SELECT " + selectColumns(investigationColumns) + " FROM investigations WHERE id = $1"
	var inv models.Investigation
	if err := r.db.GetContext(ctx, &inv, query, id); err != nil {
		return nil, err
	}
	return &inv, nil
}

// Create inserts an investigation.
func (r *InvestigationRepository) Create(ctx context.Context, inv *models.Investigation) error {
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = now
	}
	inv.UpdatedAt = now
	if _, err := r.db.NamedExecContext(ctx, insertQuery("investigations", investigationColumns), inv); err != nil {
		return fmt.Errorf("create investigation: %w", err)
	}
	return nil
}

// Update writes every mutable investigation column.
func (r *InvestigationRepository) Update(ctx context.Context, inv *models.Investigation) error {
	inv.UpdatedAt = time.Now().UTC()
	res, err := r.db.NamedExecContext(ctx, updateQuery("investigations", investigationColumns), inv)
	if err != nil {
		return fmt.Errorf("update investigation: %w", err)
	}
	return ensureAffected(res)
}
