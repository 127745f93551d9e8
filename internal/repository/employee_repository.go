package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/hr-disciplinary-api/internal/models"
)

const employeeSelect = `SELECT e.id, e.user_id, e.full_name, e.department_id, d.name AS department_name,
	e.position, e.manager_id, e.first_contract_date, e.active, e.created_at, e.updated_at
FROM employees e
LEFT JOIN departments d ON d.id = e.department_id`

// EmployeeRepository reads the employee directory that workflows snapshot from.
type EmployeeRepository struct {
	db queryer
}

// NewEmployeeRepository constructs the repository.
func NewEmployeeRepository(db *sqlx.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// GetByID fetches an employee with their department name.
func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	var emp models.Employee
	if err := r.db.GetContext(ctx, &emp, employeeSelect+" WHERE e.id = $1", id); err != nil {
		return nil, err
	}
	return &emp, nil
}

// SetActive flags the employee as active or separated.
func (r *EmployeeRepository) SetActive(ctx context.Context, id string, active bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE employees SET active = $1, updated_at = NOW() WHERE id = $2`, active, id)
	if err != nil {
		return fmt.Errorf("update employee status: %w", err)
	}
	return ensureAffected(res)
}
