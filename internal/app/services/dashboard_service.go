package services

import (
	"context"
	"fmt"

	"github.com/hrmslite/backend/internal/app/models"
	"github.com/hrmslite/backend/internal/app/models/dto"
	"github.com/hrmslite/backend/internal/app/repositories"
)

// DashboardService aggregates counts across both collections.
type DashboardService interface {
	Summary(ctx context.Context) (*dto.DashboardSummary, error)
}

type dashboardService struct {
	dashboardRepo repositories.DashboardRepoIface
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(dashboardRepo repositories.DashboardRepoIface) DashboardService {
	return &dashboardService{dashboardRepo: dashboardRepo}
}

// Summary computes the dashboard by direct counting queries at call time.
// The reads are independent, so the result is a snapshot that may be
// internally inconsistent under concurrent writes.
func (s *dashboardService) Summary(ctx context.Context) (*dto.DashboardSummary, error) {
	totalEmployees, err := s.dashboardRepo.CountEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting employees: %w", err)
	}

	totalAttendance, err := s.dashboardRepo.CountAttendance(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting attendance: %w", err)
	}

	totalPresent, err := s.dashboardRepo.CountAttendanceByStatus(ctx, models.StatusPresent)
	if err != nil {
		return nil, fmt.Errorf("error counting present records: %w", err)
	}

	totalAbsent, err := s.dashboardRepo.CountAttendanceByStatus(ctx, models.StatusAbsent)
	if err != nil {
		return nil, fmt.Errorf("error counting absent records: %w", err)
	}

	breakdown, err := s.dashboardRepo.GetEmployeeBreakdown(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving employee breakdown: %w", err)
	}

	summary := &dto.DashboardSummary{
		TotalEmployees:         totalEmployees,
		TotalAttendanceRecords: totalAttendance,
		TotalPresent:           totalPresent,
		TotalAbsent:            totalAbsent,
		EmployeesSummary:       make([]dto.EmployeeAttendanceBreakdown, 0, len(breakdown)),
	}

	for _, row := range breakdown {
		summary.EmployeesSummary = append(summary.EmployeesSummary, dto.EmployeeAttendanceBreakdown{
			EmployeeID:   row.EmployeeID,
			FullName:     row.FullName,
			Department:   row.Department,
			TotalPresent: row.PresentCount,
			TotalAbsent:  row.AbsentCount,
		})
	}

	return summary, nil
}
