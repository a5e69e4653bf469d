package models

// EmployeeAttendanceCounts is one per-employee row of the dashboard breakdown.
type EmployeeAttendanceCounts struct {
	EmployeeID   string
	FullName     string
	Department   string
	PresentCount int
	AbsentCount  int
}
