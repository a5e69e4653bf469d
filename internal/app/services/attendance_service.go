package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hrmslite/backend/internal/app/models"
	"github.com/hrmslite/backend/internal/app/models/dto"
	"github.com/hrmslite/backend/internal/app/repositories"
	"github.com/hrmslite/backend/internal/pkg/apperrors"
	"github.com/hrmslite/backend/internal/pkg/helpers"
)

// unknownEmployeeName is shown for records whose employee no longer exists.
const unknownEmployeeName = "Unknown"

// AttendanceService handles marking, listing and deleting attendance records.
type AttendanceService interface {
	Mark(ctx context.Context, req dto.MarkAttendanceRequest) (dto.AttendanceResponse, error)
	ListAll(ctx context.Context, filterDate string) ([]dto.AttendanceResponse, error)
	ListForEmployee(ctx context.Context, employeeID string) (*dto.EmployeeAttendanceSummary, error)
	Delete(ctx context.Context, attendanceID string) error
}

type attendanceService struct {
	attendanceRepo repositories.AttendanceRepoIface
	employeeRepo   repositories.EmployeeRepoIface
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(attendanceRepo repositories.AttendanceRepoIface, employeeRepo repositories.EmployeeRepoIface) AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// Mark records attendance for one employee on one calendar day. The date is
// normalized to midnight before the duplicate lookup and the insert, so at
// most one record per (employee, day) pair can exist.
func (s *attendanceService) Mark(ctx context.Context, req dto.MarkAttendanceRequest) (dto.AttendanceResponse, error) {
	employee, err := s.employeeRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return dto.AttendanceResponse{}, err
	}

	parsed, err := helpers.ParseDate(req.Date)
	if err != nil {
		return dto.AttendanceResponse{}, apperrors.NewCustomError(apperrors.ErrInvalidDateFormat, "Invalid date format. Use YYYY-MM-DD")
	}
	day := helpers.TruncateToDay(parsed)

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, day)
	if err != nil {
		return dto.AttendanceResponse{}, fmt.Errorf("error checking existing attendance: %w", err)
	}
	if existing != nil {
		return dto.AttendanceResponse{}, apperrors.NewDuplicateAttendanceError(fmt.Sprintf(
			"Attendance for %s on %s is already marked as '%s'",
			employee.FullName, helpers.FormatDate(day), existing.Status,
		))
	}

	record := &models.AttendanceRecord{
		EmployeeID: req.EmployeeID,
		Date:       day,
		Status:     models.AttendanceStatus(req.Status),
	}
	if err := s.attendanceRepo.Create(ctx, record); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateAttendance) {
			// Lost the race between check and insert. Render the same message
			// the pre-check would have produced.
			return dto.AttendanceResponse{}, apperrors.NewDuplicateAttendanceError(fmt.Sprintf(
				"Attendance for %s on %s is already marked", employee.FullName, helpers.FormatDate(day),
			))
		}
		return dto.AttendanceResponse{}, err
	}

	return dto.NewAttendanceResponse(record, employee.FullName), nil
}

// ListAll returns attendance records sorted by date descending, optionally
// restricted to one calendar day. Each record is enriched with the employee's
// current full name, looked up per record.
func (s *attendanceService) ListAll(ctx context.Context, filterDate string) ([]dto.AttendanceResponse, error) {
	var day *time.Time
	if filterDate != "" {
		parsed, err := helpers.ParseDate(filterDate)
		if err != nil {
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidDateFormat, "Invalid date format. Use YYYY-MM-DD")
		}
		truncated := helpers.TruncateToDay(parsed)
		day = &truncated
	}

	records, err := s.attendanceRepo.ListAll(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendance records: %w", err)
	}

	out := make([]dto.AttendanceResponse, 0, len(records))
	for _, record := range records {
		out = append(out, dto.NewAttendanceResponse(record, s.lookupName(ctx, record.EmployeeID)))
	}

	return out, nil
}

func (s *attendanceService) lookupName(ctx context.Context, employeeID string) string {
	employee, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return unknownEmployeeName
	}
	return employee.FullName
}

// ListForEmployee returns the employee's identity fields, present/absent
// tallies and the full date-descending record list.
func (s *attendanceService) ListForEmployee(ctx context.Context, employeeID string) (*dto.EmployeeAttendanceSummary, error) {
	employee, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendance records: %w", err)
	}

	summary := &dto.EmployeeAttendanceSummary{
		Employee: dto.EmployeeIdentity{
			EmployeeID: employee.EmployeeID,
			FullName:   employee.FullName,
			Department: employee.Department,
		},
		TotalRecords: len(records),
		Records:      make([]dto.AttendanceResponse, 0, len(records)),
	}

	for _, record := range records {
		switch record.Status {
		case models.StatusPresent:
			summary.TotalPresent++
		case models.StatusAbsent:
			summary.TotalAbsent++
		}
		summary.Records = append(summary.Records, dto.NewAttendanceResponse(record, employee.FullName))
	}

	return summary, nil
}

// Delete removes one attendance record by its store identifier.
func (s *attendanceService) Delete(ctx context.Context, attendanceID string) error {
	id, err := uuid.Parse(attendanceID)
	if err != nil {
		return apperrors.NewCustomError(apperrors.ErrInvalidIDFormat, "Invalid attendance ID format")
	}

	return s.attendanceRepo.DeleteByID(ctx, id)
}
