package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hrmslite/backend/internal/app/models"
	"github.com/hrmslite/backend/internal/metrics"
	"github.com/hrmslite/backend/internal/pkg/apperrors"
	"github.com/hrmslite/backend/internal/pkg/dberrors"
)

// EmployeeRepoIface represents the interface for interacting with employee
// records in the store.
type EmployeeRepoIface interface {
	Create(ctx context.Context, employee *models.Employee) error
	GetByEmployeeID(ctx context.Context, employeeID string) (*models.Employee, error)
	GetAll(ctx context.Context) ([]*models.Employee, error)
	ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	DeleteWithAttendance(ctx context.Context, employeeID string) error
}

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db      Database
	metrics *metrics.Metrics
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db Database, m *metrics.Metrics) *EmployeeRepository {
	return &EmployeeRepository{db: db, metrics: m}
}

func (r *EmployeeRepository) observe(queryType string, start time.Time) {
	r.metrics.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(start).Seconds())
}

// Create inserts a new employee and fills in the store-assigned identifier.
// Unique violations raised inside the check-then-insert race window are
// translated to the same logical errors the pre-checks produce.
func (r *EmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	defer r.observe("create_employee", time.Now())

	query := `
		INSERT INTO employees (employee_id, full_name, email, department)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		employee.EmployeeID, employee.FullName, employee.Email, employee.Department,
	).Scan(&employee.ID, &employee.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.EmployeeIDConstraint) {
			return apperrors.ErrEmployeeIDExists
		}
		if dberrors.IsDuplicateConstraintError(err, dberrors.EmployeeEmailConstraint) {
			return apperrors.ErrEmailExists
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}

	return nil
}

// GetByEmployeeID retrieves an employee by the caller-supplied identifier.
func (r *EmployeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*models.Employee, error) {
	defer r.observe("get_employee", time.Now())

	query := `
		SELECT id, employee_id, full_name, email, department, created_at
		FROM employees
		WHERE employee_id = $1
	`

	var employee models.Employee
	err := r.db.QueryRow(ctx, query, employeeID).Scan(
		&employee.ID,
		&employee.EmployeeID,
		&employee.FullName,
		&employee.Email,
		&employee.Department,
		&employee.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return &employee, nil
}

// GetAll retrieves all employees in store-native order.
func (r *EmployeeRepository) GetAll(ctx context.Context) ([]*models.Employee, error) {
	defer r.observe("list_employees", time.Now())

	query := `
		SELECT id, employee_id, full_name, email, department, created_at
		FROM employees
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []*models.Employee
	for rows.Next() {
		var employee models.Employee
		if err := rows.Scan(
			&employee.ID,
			&employee.EmployeeID,
			&employee.FullName,
			&employee.Email,
			&employee.Department,
			&employee.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, &employee)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}

	return employees, nil
}

// ExistsByEmployeeID checks if an employee with the given identifier exists.
func (r *EmployeeRepository) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	defer r.observe("employee_exists_by_id", time.Now())

	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM employees WHERE employee_id = $1)`,
		employeeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check employee existence: %w", err)
	}

	return exists, nil
}

// ExistsByEmail checks if an employee with the given email exists.
func (r *EmployeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	defer r.observe("employee_exists_by_email", time.Now())

	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM employees WHERE email = $1)`,
		email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}

	return exists, nil
}

// DeleteWithAttendance deletes an employee and cascades to its attendance
// records inside one transaction, so a crash cannot leave orphans.
func (r *EmployeeRepository) DeleteWithAttendance(ctx context.Context, employeeID string) error {
	defer r.observe("delete_employee", time.Now())

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cmdTag, err := tx.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEmployeeNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM attendance WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("failed to delete attendance records: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
