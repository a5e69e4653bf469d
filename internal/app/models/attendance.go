package models

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceStatus defines the attendance status type
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

// AttendanceRecord represents one employee's attendance on one calendar day.
// Date is always normalized to midnight UTC before storage.
type AttendanceRecord struct {
	ID         uuid.UUID        `json:"id"`
	EmployeeID string           `json:"employee_id"`
	Date       time.Time        `json:"date"`
	Status     AttendanceStatus `json:"status"`
}
