package services

import (
	"context"
	"fmt"

	"github.com/hrmslite/backend/internal/app/models"
	"github.com/hrmslite/backend/internal/app/models/dto"
	"github.com/hrmslite/backend/internal/app/repositories"
	"github.com/hrmslite/backend/internal/pkg/apperrors"
)

// EmployeeService handles employee registration, listing and deletion.
type EmployeeService interface {
	Create(ctx context.Context, req dto.CreateEmployeeRequest) (dto.EmployeeResponse, error)
	List(ctx context.Context) ([]dto.EmployeeResponse, error)
	Delete(ctx context.Context, employeeID string) error
}

type employeeService struct {
	employeeRepo repositories.EmployeeRepoIface
}

// NewEmployeeService creates a new employee service instance
func NewEmployeeService(employeeRepo repositories.EmployeeRepoIface) EmployeeService {
	return &employeeService{employeeRepo: employeeRepo}
}

// Create registers a new employee, enforcing uniqueness of the employee
// identifier and email. The pre-checks produce the specific conflict errors;
// the unique indexes below them close the race window.
func (s *employeeService) Create(ctx context.Context, req dto.CreateEmployeeRequest) (dto.EmployeeResponse, error) {
	exists, err := s.employeeRepo.ExistsByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return dto.EmployeeResponse{}, fmt.Errorf("error checking employee ID: %w", err)
	}
	if exists {
		return dto.EmployeeResponse{}, apperrors.ErrEmployeeIDExists
	}

	exists, err = s.employeeRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return dto.EmployeeResponse{}, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return dto.EmployeeResponse{}, apperrors.ErrEmailExists
	}

	employee := &models.Employee{
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      req.Email,
		Department: req.Department,
	}
	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return dto.EmployeeResponse{}, err
	}

	return dto.NewEmployeeResponse(employee), nil
}

// List returns all employees, normalized, in store-native order.
func (s *employeeService) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving employees: %w", err)
	}

	return dto.NewEmployeeListResponse(employees), nil
}

// Delete removes an employee and cascades deletion of every attendance record
// sharing that employee identifier.
func (s *employeeService) Delete(ctx context.Context, employeeID string) error {
	return s.employeeRepo.DeleteWithAttendance(ctx, employeeID)
}
