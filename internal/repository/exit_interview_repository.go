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

var exitInterviewColumns = []string{
	"id", "reference", "employee_id", "resignation_id", "interview_date", "interviewer_id",
	"exit_reason", "would_rehire", "work_environment_rating", "management_rating",
	"compensation_rating", "growth_rating", "feedback", "recommendation", "state", "created_by",
	"created_at", "updated_at",
}

// ExitInterviewRepository persists exit interviews.
type ExitInterviewRepository struct {
	db queryer
}

// NewExitInterviewRepository constructs the repository.
func NewExitInterviewRepository(db *sqlx.DB) *ExitInterviewRepository {
	return &ExitInterviewRepository{db: db}
}

// List returns interviews matching filter, latest interview first.
func (r *ExitInterviewRepository) List(ctx context.Context, filter models.ExitInterviewFilter) ([]models.ExitInterview, error) {
	builder := psql.Select(selectColumns(exitInterviewColumns)).From("exit_interviews")
	if filter.EmployeeID != "" {
		builder = builder.Where(sq.Eq{"employee_id": filter.EmployeeID})
	}
	if filter.ResignationID != "" {
		builder = builder.Where(sq.Eq{"resignation_id": filter.ResignationID})
	}
	if len(filter.States) > 0 {
		builder = builder.Where(sq.Eq{"state": filter.States})
	}
	limit, offset := clampLimit(filter.Limit, filter.Offset)
	query, args, err := builder.OrderBy("interview_date DESC").Limit(limit).Offset(offset).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build exit interview list: %w", err)
	}
	var items []models.ExitInterview
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("list exit interviews: %w", err)
	}
	return items, nil
}

// GetByID fetches an exit interview.
func (r *ExitInterviewRepository) GetByID(ctx context.Context, id string) (*models.ExitInterview, error) {
	query := "SELECT " + selectColumns(exitInterviewColumns) + " FROM exit_interviews WHERE id = $1"
	var ei models.ExitInterview
	if err := r.db.GetContext(ctx, &ei, query, id); err != nil {
		return nil, err
	}
	return &ei, nil
}

// Create inserts an exit interview with an EXIT/<sequence> reference.
func (r *ExitInterviewRepository) Create(ctx context.Context, ei *models.ExitInterview) error {
	if ei.ID == "" {
		ei.ID = uuid.NewString()
	}
	if ei.Reference == "" {
		var seq int64
		if err := r.db.GetContext(ctx, &seq, "SELECT nextval('exit_interview_reference_seq')"); err != nil {
			return fmt.Errorf("next exit interview reference: %w", err)
		}
		ei.Reference = fmt.Sprintf("EXIT/%05d", seq)
	}
	now := time.Now().UTC()
	if ei.CreatedAt.IsZero() {
		ei.CreatedAt = now
	}
	ei.UpdatedAt = now
	if _, err := r.db.NamedExecContext(ctx, insertQuery("exit_interviews", exitInterviewColumns), ei); err != nil {
		return fmt.Errorf("create exit interview: %w", err)
	}
	return nil
}

// Update writes every mutable column.
func (r *ExitInterviewRepository) Update(ctx context.Context, ei *models.ExitInterview) error {
	ei.UpdatedAt = time.Now().UTC()
	res, err := r.db.NamedExecContext(ctx, updateQuery("exit_interviews", exitInterviewColumns), ei)
	if err != nil {
		return fmt.Errorf("update exit interview: %w", err)
	}
	return ensureAffected(res)
}
