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

var offenseColumns = []string{
	"id", "name", "description", "severity", "approval_level", "investigation_required",
	"immediate_dismissal", "active", "created_by", "updated_by", "created_at", "updated_at",
}

// OffenseRepository persists offense classifications.
type OffenseRepository struct {
	db queryer
}

// NewOffenseRepository constructs the repository.
func NewOffenseRepository(db *sqlx.DB) *OffenseRepository {
	return &OffenseRepository{db: db}
}

// List returns classifications ordered by severity then name.
func (r *OffenseRepository) List(ctx context.Context, filter models.OffenseFilter) ([]models.OffenseClassification, error) {
	builder := psql.Select(selectColumns(offenseColumns)).From("offense_classifications")
	if filter.Severity != "" {
		builder = builder.Where(sq.Eq{"severity": filter.Severity})
	}
	if filter.ActiveOnly {
		builder = builder.Where(sq.Eq{"active": true})
	}
	if filter.Search != "" {
		builder = builder.Where(sq.ILike{"name": "%" + filter.Search + "%"})
	}
	builder = builder.OrderBy(
		"CASE severity WHEN 'minor' THEN 1 WHEN 'moderate' THEN 2 WHEN 'serious' THEN 3 ELSE 4 END",
		"name ASC",
	)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build offense list: %w", err)
	}
	var offenses []models.OffenseClassification
	if err := r.db.SelectContext(ctx, &offenses, query, args...); err != nil {
		return nil, fmt.Errorf("list offenses: %w", err)
	}
	return offenses, nil
}

// GetByID fetches a classification.
func (r *OffenseRepository) GetByID(ctx context.Context, id string) (*models.OffenseClassification, error) {
	query := "SELECT " + selectColumns(offenseColumns) + " FROM offense_classifications WHERE id = $1"
	var offense models.OffenseClassification
	if err := r.db.GetContext(ctx, &offense, query, id); err != nil {
		return nil, err
	}
	return &offense, nil
}

// Create inserts a classification.
func (r *OffenseRepository) Create(ctx context.Context, offense *models.OffenseClassification) error {
	if offense.ID == "" {
		offense.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if offense.CreatedAt.IsZero() {
		offense.CreatedAt = now
	}
	offense.UpdatedAt = now
	if _, err := r.db.NamedExecContext(ctx, insertQuery("offense_classifications", offenseColumns), offense); err != nil {
		return fmt.Errorf("create offense: %w", err)
	}
	return nil
}

// Update persists changes to a classification.
func (r *OffenseRepository) Update(ctx context.Context, offense *models.OffenseClassification) error {
	offense.UpdatedAt = time.Now().UTC()
	res, err := r.db.NamedExecContext(ctx, updateQuery("offense_classifications", offenseColumns), offense)
	if err != nil {
		return fmt.Errorf("update offense: %w", err)
	}
	return ensureAffected(res)
}
