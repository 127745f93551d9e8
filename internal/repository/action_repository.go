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

var actionColumns = []string{
	"id", "case_id", "employee_id", "action_type", "stage", "justification", "approved_by",
	"approved_date", "effective_date", "has_expiry", "expiry_date", "suspension_days",
	"suspension_with_pay", "fine_amount", "fine_currency", "termination_type",
	"notice_period_months", "notice_served_date", "notice_delivery_method", "revoke_reason",
	"revoked_by", "revoked_date", "created_by", "created_at", "updated_at",
}

// ActionRepository persists disciplinary actions.
type ActionRepository struct {
	db queryer
}

// NewActionRepository constructs the repository.
func NewActionRepository(db *sqlx.DB) *ActionRepository {
	return &ActionRepository{db: db}
}

// List returns actions matching filter, newest effective date first.
func (r *ActionRepository) List(ctx context.Context, filter models.ActionFilter) ([]models.DisciplinaryAction, error) {
	builder := psql.Select(selectColumns(actionColumns)).From("disciplinary_actions")
	if filter.CaseID != "" {
		builder = builder.Where(sq.Eq{"case_id": filter.CaseID})
	}
	if filter.EmployeeID != "" {
		builder = builder.Where(sq.Eq{"employee_id": filter.EmployeeID})
	}
	if len(filter.Stages) > 0 {
		builder = builder.Where(sq.Eq{"stage": filter.Stages})
	}
	if len(filter.Types) > 0 {
		builder = builder.Where(sq.Eq{"action_type": filter.Types})
	}
	limit, offset := clampLimit(filter.Limit, filter.Offset)
	query, args, err := builder.OrderBy("effective_date DESC", "created_at DESC").Limit(limit).Offset(offset).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build action list: %w", err)
	}
	var actions []models.DisciplinaryAction
	if err := r.db.SelectContext(ctx, &actions, query, args...); err != nil {
		return nil, fmt.Errorf("list actions: %w", err)
	}
	return actions, nil
}

// GetByID fetches an action.
func (r *ActionRepository) GetByID(ctx context.Context, id string) (*models.DisciplinaryAction, error) {
	query := "SELECT " + selectColumns(actionColumns) + " FROM disciplinary_actions WHERE id = $1"
	var a models.DisciplinaryAction
	if err := r.db.GetContext(ctx, &a, query, id); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts an action.
func (r *ActionRepository) Create(ctx context.Context, a *models.DisciplinaryAction) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	if _, err := r.db.NamedExecContext(ctx, insertQuery("disciplinary_actions", actionColumns), a); err != nil {
		return fmt.Errorf("create action: %w", err)
	}
	return nil
}

// Update writes every mutable action column.
func (r *ActionRepository) Update(ctx context.Context, a *models.DisciplinaryAction) error {
	a.UpdatedAt = time.Now().UTC()
	res, err := r.db.NamedExecContext(ctx, updateQuery("disciplinary_actions", actionColumns), a)
	if err != nil {
		return fmt.Errorf("update action: %w", err)
	}
	return ensureAffected(res)
}
