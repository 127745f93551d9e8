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

var resignationColumns = []string{
	"id", "reference", "employee_id", "department_id", "contract_start_date", "expected_last_day",
	"approved_last_day", "confirm_date", "reason", "resignation_type", "state", "created_by",
	"created_at", "updated_at",
}

// ResignationRepository persists resignations.
type ResignationRepository struct {
	db queryer
}

// NewResignationRepository constructs the repository.
func NewResignationRepository(db *sqlx.DB) *ResignationRepository {
	return &ResignationRepository{db: db}
}

// List returns resignations matching filter, newest first.
func (r *ResignationRepository) List(ctx context.Context, filter models.ResignationFilter) ([]models.Resignation, error) {
	builder := psql.Select(selectColumns(resignationColumns)).From("resignations")
	if filter.EmployeeID != "" {
		builder = builder.Where(sq.Eq{"employee_id": filter.EmployeeID})
	}
	if len(filter.States) > 0 {
		builder = builder.Where(sq.Eq{"state": filter.States})
	}
	limit, offset := clampLimit(filter.Limit, filter.Offset)
	query, args, err := builder.OrderBy("created_at DESC").Limit(limit).Offset(offset).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build resignation list: %w", err)
	}
	var items []models.Resignation
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("list resignations: %w", err)
	}
	return items, nil
}

// GetByID fetches a resignation.
func (r *ResignationRepository) GetByID(ctx context.Context, id string) (*models.Resignation, error) {
	query := "SELECT " + selectColumns(resignationColumns) + " FROM resignations WHERE id = $1"
	var res models.Resignation
	if err := r.db.GetContext(ctx, &res, query, id); err != nil {
		return nil, err
	}
	return &res, nil
}

// CountActive counts confirmed or approved resignations of employeeID other
// than excludeID.
func (r *ResignationRepository) CountActive(ctx context.Context, employeeID, excludeID string) (int, error) {
	const query = `SELECT COUNT(*) FROM resignations
WHERE employee_id = $1 AND state IN ('confirm', 'approved') AND id::text <> $2`
	var count int
	if err := r.db.GetContext(ctx, &count, query, employeeID, excludeID); err != nil {
		return 0, fmt.Errorf("count active resignations: %w", err)
	}
	return count, nil
}

// Create inserts a resignation, allocating a RES/<sequence> reference.
func (r *ResignationRepository) Create(ctx context.Context, res *models.Resignation) error {
	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	if res.Reference == "" {
		var seq int64
		if err := r.db.GetContext(ctx, &seq, "SELECT nextval('resignation_reference_seq')"); err != nil {
			return fmt.Errorf("next resignation reference: %w", err)
		}
		res.Reference = fmt.Sprintf("RES/%05d", seq)
	}
	now := time.Now().UTC()
	if res.CreatedAt.IsZero() {
		res.CreatedAt = now
	}
	res.UpdatedAt = now
	if _, err := r.db.NamedExecContext(ctx, insertQuery("resignations", resignationColumns), res); err != nil {
		return fmt.Errorf("create resignation: %w", err)
	}
	return nil
}

// Update writes every mutable column. A second active resignation for the
// same employee yields ErrDuplicate.
func (r *ResignationRepository) Update(ctx context.Context, res *models.Resignation) error {
	res.UpdatedAt = time.Now().UTC()
	result, err := r.db.NamedExecContext(ctx, updateQuery("resignations", resignationColumns), res)
	if err != nil {
		return fmt.Errorf("update resignation: %w", mapUnique(err))
	}
	return ensureAffected(result)
}
