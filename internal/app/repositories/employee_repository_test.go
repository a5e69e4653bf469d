package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrmslite/backend/internal/app/models"
	"github.com/hrmslite/backend/internal/app/repositories"
	"github.com/hrmslite/backend/internal/metrics"
	"github.com/hrmslite/backend/internal/pkg/apperrors"
)

func newEmployeeRepo(t *testing.T) (pgxmock.PgxPoolIface, *repositories.EmployeeRepository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, repositories.NewEmployeeRepository(mock, metrics.NewMetrics())
}

func TestEmployeeCreate_Success(t *testing.T) {
	t.Parallel()

	mock, repo := newEmployeeRepo(t)

	storeID := uuid.New()
	createdAt := time.Now()
	mock.ExpectQuery(`INSERT INTO employees`).
		WithArgs("E1", "Jane Doe", "jane@example.com", "Engineering").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(storeID, createdAt))

	employee := &models.Employee{
		EmployeeID: "E1",
		FullName:   "Jane Doe",
		Email:      "jane@example.com",
		Department: "Engineering",
	}
	err := repo.Create(context.Background(), employee)

	require.NoError(t, err)
	assert.Equal(t, storeID, employee.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeCreate_DuplicateEmployeeID(t *testing.T) {
	t.Parallel()

	mock, repo := newEmployeeRepo(t)

	mock.ExpectQuery(`INSERT INTO employees`).
		WithArgs("E1", "Jane Doe", "jane@example.com", "Engineering").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "employees_employee_id_key"})

	err := repo.Create(context.Background(), &models.Employee{
		EmployeeID: "E1",
		FullName:   "Jane Doe",
		Email:      "jane@example.com",
		Department: "Engineering",
	})

	require.ErrorIs(t, err, apperrors.ErrEmployeeIDExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeCreate_DuplicateEmail(t *testing.T) {
	t.Parallel()

	mock, repo := newEmployeeRepo(t)

	mock.ExpectQuery(`INSERT INTO employees`).
		WithArgs("E2", "John Doe", "jane@example.com", "Engineering").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "employees_email_key"})

	err := repo.Create(context.Background(), &models.Employee{
		EmployeeID: "E2",
		FullName:   "John Doe",
		Email:      "jane@example.com",
		Department: "Engineering",
	})

	require.ErrorIs(t, err, apperrors.ErrEmailExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByEmployeeID_NotFound(t *testing.T) {
	t.Parallel()

	mock, repo := newEmployeeRepo(t)

	mock.ExpectQuery(`SELECT id, employee_id, full_name, email, department, created_at`).
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)

	employee, err := repo.GetByEmployeeID(context.Background(), "ghost")

	require.ErrorIs(t, err, apperrors.ErrEmployeeNotFound)
	assert.Nil(t, employee)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByEmployeeID_Success(t *testing.T) {
	t.Parallel()

	mock, repo := newEmployeeRepo(t)

	storeID := uuid.New()
	mock.ExpectQuery(`SELECT id, employee_id, full_name, email, department, created_at`).
		WithArgs("E1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "employee_id", "full_name", "email", "department", "created_at"}).
			AddRow(storeID, "E1", "Jane Doe", "jane@example.com", "Engineering", time.Now()))

	employee, err := repo.GetByEmployeeID(context.Background(), "E1")

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", employee.FullName)
	assert.Equal(t, storeID, employee.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExistsByEmployeeID(t *testing.T) {
	t.Parallel()

	mock, repo := newEmployeeRepo(t)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("E1").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByEmployeeID(context.Background(), "E1")

	require.NoError(t, err)
	assert.True(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteWithAttendance_Success(t *testing.T) {
	t.Parallel()

	mock, repo := newEmployeeRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM employees`).
		WithArgs("E1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM attendance`).
		WithArgs("E1").
		WillReturnResult(pgxmock.NewResult("DELETE", 3))
	mock.ExpectCommit()

	err := repo.DeleteWithAttendance(context.Background(), "E1")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteWithAttendance_NotFound(t *testing.T) {
	t.Parallel()

	mock, repo := newEmployeeRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM employees`).
		WithArgs("ghost").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectRollback()

	err := repo.DeleteWithAttendance(context.Background(), "ghost")

	require.ErrorIs(t, err, apperrors.ErrEmployeeNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
