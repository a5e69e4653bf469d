package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/hrmslite/backend/internal/app/models"
	"github.com/hrmslite/backend/internal/metrics"
)

// DashboardRepoIface represents the counting queries behind the dashboard.
// Each call is an independent read: the assembled summary is a snapshot, not
// an atomically consistent view.
type DashboardRepoIface interface {
	CountEmployees(ctx context.Context) (int, error)
	CountAttendance(ctx context.Context) (int, error)
	CountAttendanceByStatus(ctx context.Context, status models.AttendanceStatus) (int, error)
	GetEmployeeBreakdown(ctx context.Context) ([]models.EmployeeAttendanceCounts, error)
}

// DashboardRepository handles the dashboard counting queries
type DashboardRepository struct {
	db      Database
	metrics *metrics.Metrics
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(db Database, m *metrics.Metrics) *DashboardRepository {
	return &DashboardRepository{db: db, metrics: m}
}

func (r *DashboardRepository) observe(queryType string, start time.Time) {
	r.metrics.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(start).Seconds())
}

// CountEmployees returns the total number of employee records.
func (r *DashboardRepository) CountEmployees(ctx context.Context) (int, error) {
	defer r.observe("count_employees", time.Now())

	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return count, nil
}

// CountAttendance returns the total number of attendance records.
func (r *DashboardRepository) CountAttendance(ctx context.Context) (int, error) {
	defer r.observe("count_attendance", time.Now())

	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM attendance`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	return count, nil
}

// CountAttendanceByStatus returns the number of attendance records with the
// given status.
func (r *DashboardRepository) CountAttendanceByStatus(ctx context.Context, status models.AttendanceStatus) (int, error) {
	defer r.observe("count_attendance_by_status", time.Now())

	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM attendance WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance records by status: %w", err)
	}

	return count, nil
}

// GetEmployeeBreakdown returns present/absent tallies for every employee.
func (r *DashboardRepository) GetEmployeeBreakdown(ctx context.Context) ([]models.EmployeeAttendanceCounts, error) {
	defer r.observe("employee_breakdown", time.Now())

	query := `
		SELECT e.employee_id, e.full_name, e.department,
			COUNT(a.id) FILTER (WHERE a.status = 'Present'),
			COUNT(a.id) FILTER (WHERE a.status = 'Absent')
		FROM employees e
		LEFT JOIN attendance a ON a.employee_id = e.employee_id
		GROUP BY e.employee_id, e.full_name, e.department
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee breakdown: %w", err)
	}
	defer rows.Close()

	var breakdown []models.EmployeeAttendanceCounts
	for rows.Next() {
		var row models.EmployeeAttendanceCounts
		if err := rows.Scan(
			&row.EmployeeID,
			&row.FullName,
			&row.Department,
			&row.PresentCount,
			&row.AbsentCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee breakdown: %w", err)
		}
		breakdown = append(breakdown, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employee breakdown: %w", err)
	}

	return breakdown, nil
}
