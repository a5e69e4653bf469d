package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hrmslite/backend/internal/app/models"
	"github.com/hrmslite/backend/internal/metrics"
	"github.com/hrmslite/backend/internal/pkg/apperrors"
	"github.com/hrmslite/backend/internal/pkg/dberrors"
)

// AttendanceRepoIface represents the interface for interacting with
// attendance records in the store.
type AttendanceRepoIface interface {
	Create(ctx context.Context, record *models.AttendanceRecord) error
	GetByEmployeeAndDate(ctx context.Context, employeeID string, day time.Time) (*models.AttendanceRecord, error)
	ListAll(ctx context.Context, filterDate *time.Time) ([]*models.AttendanceRecord, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*models.AttendanceRecord, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db      Database
	metrics *metrics.Metrics
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db Database, m *metrics.Metrics) *AttendanceRepository {
	return &AttendanceRepository{db: db, metrics: m}
}

func (r *AttendanceRepository) observe(queryType string, start time.Time) {
	r.metrics.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(start).Seconds())
}

// Create inserts a new attendance record. The caller must pass a date already
// normalized to its calendar day. A unique violation raised inside the
// check-then-insert race window maps back to the duplicate error.
func (r *AttendanceRepository) Create(ctx context.Context, record *models.AttendanceRecord) error {
	defer r.observe("create_attendance", time.Now())

	query := `
		INSERT INTO attendance (employee_id, date, status)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, record.EmployeeID, record.Date, record.Status).Scan(&record.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.AttendancePerDayConstraint) {
			return apperrors.ErrDuplicateAttendance
		}
		return fmt.Errorf("failed to create attendance record: %w", err)
	}

	return nil
}

// GetByEmployeeAndDate looks up the attendance record for one employee on one
// calendar day. Dates are stored normalized, so an exact-day equality covers
// the whole day. Returns (nil, nil) when no record exists.
func (r *AttendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, day time.Time) (*models.AttendanceRecord, error) {
	defer r.observe("get_attendance_by_day", time.Now())

	query := `
		SELECT id, employee_id, date, status
		FROM attendance
		WHERE employee_id = $1 AND date = $2
	`

	var record models.AttendanceRecord
	err := r.db.QueryRow(ctx, query, employeeID, day).Scan(
		&record.ID,
		&record.EmployeeID,
		&record.Date,
		&record.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return &record, nil
}

// ListAll retrieves attendance records sorted by date descending, optionally
// restricted to one calendar day.
func (r *AttendanceRepository) ListAll(ctx context.Context, filterDate *time.Time) ([]*models.AttendanceRecord, error) {
	defer r.observe("list_attendance", time.Now())

	var (
		rows pgx.Rows
		err  error
	)
	if filterDate != nil {
		rows, err = r.db.Query(ctx, `
		SELECT id, employee_id, date, status
		FROM attendance
		WHERE date = $1
		ORDER BY date DESC
	`, *filterDate)
	} else {
		rows, err = r.db.Query(ctx, `
		SELECT id, employee_id, date, status
		FROM attendance
		ORDER BY date DESC
	`)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

// ListByEmployee retrieves all attendance records for one employee, sorted by
// date descending.
func (r *AttendanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]*models.AttendanceRecord, error) {
	defer r.observe("list_attendance_by_employee", time.Now())

	rows, err := r.db.Query(ctx, `
		SELECT id, employee_id, date, status
		FROM attendance
		WHERE employee_id = $1
		ORDER BY date DESC
	`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

// DeleteByID deletes one attendance record by its store identifier.
func (r *AttendanceRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	defer r.observe("delete_attendance", time.Now())

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM attendance WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAttendanceNotFound
	}

	return nil
}

func scanAttendanceRows(rows pgx.Rows) ([]*models.AttendanceRecord, error) {
	var records []*models.AttendanceRecord
	for rows.Next() {
		var record models.AttendanceRecord
		if err := rows.Scan(
			&record.ID,
			&record.EmployeeID,
			&record.Date,
			&record.Status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance records: %w", err)
	}

	return records, nil
}
