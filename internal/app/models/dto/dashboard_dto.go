package dto

// EmployeeAttendanceBreakdown is one row of the per-employee dashboard table.
type EmployeeAttendanceBreakdown struct {
	EmployeeID   string `json:"employee_id" example:"E1"`
	FullName     string `json:"full_name" example:"Jane Doe"`
	Department   string `json:"department" example:"Engineering"`
	TotalPresent int    `json:"total_present" example:"12"`
	TotalAbsent  int    `json:"total_absent" example:"2"`
}

// DashboardSummary aggregates counts across both collections.
type DashboardSummary struct {
	TotalEmployees         int                           `json:"total_employees" example:"5"`
	TotalAttendanceRecords int                           `json:"total_attendance_records" example:"40"`
	TotalPresent           int                           `json:"total_present" example:"33"`
	TotalAbsent            int                           `json:"total_absent" example:"7"`
	EmployeesSummary       []EmployeeAttendanceBreakdown `json:"employees_summary"`
}
