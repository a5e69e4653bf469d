package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hrmslite/backend/internal/metrics"
)

// Database is the subset of pgxpool.Pool the repositories need. Narrowing it
// to an interface lets tests substitute a pgxmock pool.
type Database interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	Employee   EmployeeRepoIface
	Attendance AttendanceRepoIface
	Dashboard  DashboardRepoIface
}

// NewRepositories initializes all repositories
func NewRepositories(db Database, m *metrics.Metrics) *Repositories {
	return &Repositories{
		Employee:   NewEmployeeRepository(db, m),
		Attendance: NewAttendanceRepository(db, m),
		Dashboard:  NewDashboardRepository(db, m),
	}
}
