package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Constraint names from migrations/001_init.sql. The unique indexes close the
// check-then-insert race window at the store level; these helpers let the
// repositories translate a violation raised inside that window back into the
// same logical error the pre-check would have produced.
const (
	EmployeeIDConstraint       = "employees_employee_id_key"
	EmployeeEmailConstraint    = "employees_email_key"
	AttendancePerDayConstraint = "attendance_employee_id_date_key"
)

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique
// violation (23505) for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == constraintName
}
