package dto

import (
	"github.com/hrmslite/backend/internal/app/models"
)

// CreateEmployeeRequest is the body of POST /employees/
type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id" binding:"required" example:"E1"`
	FullName   string `json:"full_name" binding:"required" example:"Jane Doe"`
	Email      string `json:"email" binding:"required,email" example:"jane@example.com"`
	Department string `json:"department" binding:"required" example:"Engineering"`
}

// EmployeeResponse is the transport-safe form of an employee record: the
// store identifier is stringified and internal-only fields are dropped.
type EmployeeResponse struct {
	ID         string `json:"id" example:"7f9df2c4-3f1e-4d37-9f6a-2f6d7f1f4b11"`
	EmployeeID string `json:"employee_id" example:"E1"`
	FullName   string `json:"full_name" example:"Jane Doe"`
	Email      string `json:"email" example:"jane@example.com"`
	Department string `json:"department" example:"Engineering"`
}

// NewEmployeeResponse normalizes a stored employee record for transport.
func NewEmployeeResponse(e *models.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID.String(),
		EmployeeID: e.EmployeeID,
		FullName:   e.FullName,
		Email:      e.Email,
		Department: e.Department,
	}
}

// NewEmployeeListResponse normalizes a list of employee records.
func NewEmployeeListResponse(employees []*models.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, NewEmployeeResponse(e))
	}
	return out
}
