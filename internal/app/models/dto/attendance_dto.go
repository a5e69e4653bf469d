package dto

import (
	"github.com/hrmslite/backend/internal/app/models"
	"github.com/hrmslite/backend/internal/pkg/helpers"
)

// MarkAttendanceRequest is the body of POST /attendance/
type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required" example:"E1"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02" example:"2024-03-01"`
	Status     string `json:"status" binding:"required,oneof=Present Absent" example:"Present"`
}

// AttendanceResponse is the transport-safe form of an attendance record:
// string identifier, calendar-date string, and the employee's current name.
type AttendanceResponse struct {
	ID           string `json:"id" example:"1b6e5a0c-84a7-4f5e-90c2-9a35c5d91a47"`
	EmployeeID   string `json:"employee_id" example:"E1"`
	Date         string `json:"date" example:"2024-03-01"`
	Status       string `json:"status" example:"Present"`
	EmployeeName string `json:"employee_name" example:"Jane Doe"`
}

// NewAttendanceResponse normalizes a stored attendance record for transport.
func NewAttendanceResponse(rec *models.AttendanceRecord, employeeName string) AttendanceResponse {
	return AttendanceResponse{
		ID:           rec.ID.String(),
		EmployeeID:   rec.EmployeeID,
		Date:         helpers.FormatDate(rec.Date),
		Status:       string(rec.Status),
		EmployeeName: employeeName,
	}
}

// EmployeeIdentity carries the identity fields of an employee inside an
// attendance summary.
type EmployeeIdentity struct {
	EmployeeID string `json:"employee_id" example:"E1"`
	FullName   string `json:"full_name" example:"Jane Doe"`
	Department string `json:"department" example:"Engineering"`
}

// EmployeeAttendanceSummary is the body of GET /attendance/{employee_id}
type EmployeeAttendanceSummary struct {
	Employee     EmployeeIdentity     `json:"employee"`
	TotalPresent int                  `json:"total_present" example:"1"`
	TotalAbsent  int                  `json:"total_absent" example:"0"`
	TotalRecords int                  `json:"total_records" example:"1"`
	Records      []AttendanceResponse `json:"records"`
}
