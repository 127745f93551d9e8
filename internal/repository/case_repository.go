package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/hr-disciplinary-api/internal/models"
)

var caseColumns = []string{
	"id", "reference", "employee_id", "department_id", "position", "manager_id",
	"incident_date", "reported_date", "description", "offense_classification_id", "severity",
	"immediate_dismissal", "labour_law_basis", "state", "acknowledgment_state", "acknowledged_date",
	"contest_reason", "contest_date", "show_cause_issued_date", "show_cause_deadline",
	"show_cause_response", "show_cause_responded", "hearing_date", "hearing_notes",
	"hearing_officer_id", "decision_outcome", "decision_rationale", "decision_date", "decision_by",
	"suspension_days", "suspension_with_pay", "termination_type", "notice_period_months",
	"decision_served", "decision_served_date", "decision_served_method", "notice_delivery_method",
	"notice_witness_id", "notice_board_posted_date", "employer_knowledge_date",
	"unauthorized_absence_days", "late_arrival_count", "absence_warnings_issued", "closure_date",
	"closure_summary", "final_payment_completed", "employment_certificate_issued",
	"severance_applicable", "severance_amount", "warning_expiry_date", "letter_path",
	"created_by", "created_at", "updated_at",
}

var caseSortColumns = map[string]string{
	"incident_date": "incident_date",
	"reported_date": "reported_date",
	"created_at":    "created_at",
	"reference":     "reference",
	"state":         "state",
	"severity":      "severity",
}

// CaseRepository persists disciplinary cases.
type CaseRepository struct {
	db queryer
}

// NewCaseRepository constructs the repository.
func NewCaseRepository(db *sqlx.DB) *CaseRepository {
	return &CaseRepository{db: db}
}

// List returns a page of cases plus the total matching count.
func (r *CaseRepository) List(ctx context.Context, filter models.CaseFilter) ([]models.DisciplinaryCase, int, error) {
	where := caseConditions(filter)

	countQuery, countArgs, err := psql.Select("COUNT(*)").From("disciplinary_cases").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build case count: %w", err)
	}
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count cases: %w", err)
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	limit, _ := clampLimit(filter.PageSize, 0)
	sortBy, ok := caseSortColumns[filter.SortBy]
	if !ok {
		sortBy = "reported_date"
	}
	order := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		order = "ASC"
	}

	query, args, err := psql.Select(selectColumns(caseColumns)).
		From("disciplinary_cases").
		Where(where).
		OrderBy(sortBy+" "+order, "reference "+order).
		Limit(limit).
		Offset(uint64(page-1) * limit).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build case list: %w", err)
	}
	var cases []models.DisciplinaryCase
	if err := r.db.SelectContext(ctx, &cases, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list cases: %w", err)
	}
	return cases, total, nil
}

func caseConditions(filter models.CaseFilter) sq.And {
	where := sq.And{}
	if filter.EmployeeID != "" {
		where = append(where, sq.Eq{"employee_id": filter.EmployeeID})
	}
	if filter.DepartmentID != "" {
		where = append(where, sq.Eq{"department_id": filter.DepartmentID})
	}
	if len(filter.States) > 0 {
		where = append(where, sq.Eq{"state": filter.States})
	}
	if filter.Severity != "" {
		where = append(where, sq.Eq{"severity": filter.Severity})
	}
	if filter.Outcome != "" {
		where = append(where, sq.Eq{"decision_outcome": filter.Outcome})
	}
	if filter.IncidentFrom != nil {
		where = append(where, sq.GtOrEq{"incident_date": *filter.IncidentFrom})
	}
	if filter.IncidentTo != nil {
		where = append(where, sq.LtOrEq{"incident_date": *filter.IncidentTo})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		where = append(where, sq.Or{sq.ILike{"reference": pattern}, sq.ILike{"description": pattern}})
	}
	return where
}

// GetByID fetches a case.
func (r *CaseRepository) GetByID(ctx context.Context, id string) (*models.DisciplinaryCase, error) {
	query := "SELECT " + selectColumns(caseColumns) + " FROM disciplinary_cases WHERE id = $1"
	var c models.DisciplinaryCase
	if err := r.db.GetContext(ctx, &c, query, id); err != nil {
		return nil, err
	}
	return &c, nil
}

// NextReference allocates the next DC/<year>/<sequence> reference.
func (r *CaseRepository) NextReference(ctx context.Context, year int) (string, error) {
	var seq int64
	if err := r.db.GetContext(ctx, &seq, "SELECT nextval('disciplinary_case_reference_seq')"); err != nil {
		return "", fmt.Errorf("next case reference: %w", err)
	}
	return fmt.Sprintf("DC/%d/%05d", year, seq), nil
}

// Create inserts a case, allocating a reference when none is set.
func (r *CaseRepository) Create(ctx context.Context, c *models.DisciplinaryCase) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if c.Reference == "" {
		ref, err := r.NextReference(ctx, now.Year())
		if err != nil {
			return err
		}
		c.Reference = ref
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	if _, err := r.db.NamedExecContext(ctx, insertQuery("disciplinary_cases", caseColumns), c); err != nil {
		return fmt.Errorf("create case: %w", err)
	}
	return nil
}

// Update writes every mutable case column.
func (r *CaseRepository) Update(ctx context.Context, c *models.DisciplinaryCase) error {
	c.UpdatedAt = time.Now().UTC()
	res, err := r.db.NamedExecContext(ctx, updateQuery("disciplinary_cases", caseColumns), c)
	if err != nil {
		return fmt.Errorf("update case: %w", err)
	}
	return ensureAffected(res)
}

// Delete removes a case; actions, appeals, investigations and events go with
// it through ON DELETE CASCADE.
func (r *CaseRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM disciplinary_cases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete case: %w", err)
	}
	return ensureAffected(res)
}

// CountPriorWarnings counts the employee's closed cases per warning outcome,
// excluding excludeCaseID.
func (r *CaseRepository) CountPriorWarnings(ctx context.Context, employeeID, excludeCaseID string) (models.WarningCounts, error) {
	const query = `SELECT
	COUNT(*) FILTER (WHERE decision_outcome = 'verbal_warning') AS verbal,
	COUNT(*) FILTER (WHERE decision_outcome = 'written_warning') AS written,
	COUNT(*) FILTER (WHERE decision_outcome = 'final_warning') AS final
FROM disciplinary_cases
WHERE employee_id = $1 AND state = 'closed' AND id::text <> $2`
	var counts models.WarningCounts
	if err := r.db.GetContext(ctx, &counts, query, employeeID, excludeCaseID); err != nil {
		return models.WarningCounts{}, fmt.Errorf("count prior warnings: %w", err)
	}
	return counts, nil
}
