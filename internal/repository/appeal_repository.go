package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/hr-disciplinary-api/internal/models"
)

var appealColumns = []string{
	"id", "case_id", "employee_id", "action_id", "submission_date", "grounds", "stage",
	"hearing_date", "hearing_notes", "decision", "outcome", "decided_by", "decision_date",
	"created_by", "created_at", "updated_at",
}

// AppealRepository persists appeals.
type AppealRepository struct {
	db queryer
}

// NewAppealRepository constructs the repository.
func NewAppealRepository(db *sqlx.DB) *AppealRepository {
	return &AppealRepository{db: db}
}

// ListByCase returns the appeals lodged against a case, oldest first.
func (r *AppealRepository) ListByCase(ctx context.Context, caseID string) ([]models.Appeal, error) {
	query := "SELECT " + selectColumns(appealColumns) + " FROM appeals WHERE case_id = $1 ORDER BY submission_date ASC, created_at ASC"
	var appeals []models.Appeal
	if err := r.db.SelectContext(ctx, &appeals, query, caseID); err != nil {
		return nil, fmt.Errorf("list appeals: %w", err)
	}
	return appeals, nil
}

// GetByID fetches an appeal.
func (r *AppealRepository) GetByID(ctx context.Context, id string) (*models.Appeal, error) {
	query := "SELECT " + selectColumns(appealColumns) + " FROM appeals WHERE id = $1"
	var ap models.Appeal
	if err := r.db.GetContext(ctx, &ap, query, id); err != nil {
		return nil, err
	}
	return &ap, nil
}

// Create inserts an appeal.
func (r *AppealRepository) Create(ctx context.Context, ap *models.Appeal) error {
	if ap.ID == "" {
		ap.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if ap.CreatedAt.IsZero() {
		ap.CreatedAt = now
	}
	ap.UpdatedAt = now
	if _, err := r.db.NamedExecContext(ctx, insertQuery("appeals", appealColumns), ap); err != nil {
		return fmt.Errorf("create appeal: %w", err)
	}
	return nil
}

// Update writes every mutable appeal column.
func (r *AppealRepository) Update(ctx context.Context, ap *models.Appeal) error {
	ap.UpdatedAt = time.Now().UTC()
	res, err := r.db.NamedExecContext(ctx, updateQuery("appeals", appealColumns), ap)
	if err != nil {
		return fmt.Errorf("update appeal: %w", err)
	}
	return ensureAffected(res)
}
