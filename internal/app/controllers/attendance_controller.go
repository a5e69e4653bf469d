package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hrmslite/backend/internal/app/models/dto"
	"github.com/hrmslite/backend/internal/app/services"
	"github.com/hrmslite/backend/internal/middleware"
)

// AttendanceController handles attendance-related endpoints
type AttendanceController struct {
	attendanceService services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// MarkAttendance records attendance for an employee on a calendar day
// @Summary Mark attendance
// @Description Records Present/Absent for an employee on a calendar day; at most one record per employee per day
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.MarkAttendanceRequest true "Attendance information"
// @Success 201 {object} dto.Response{data=dto.AttendanceResponse} "Attendance marked successfully"
// @Failure 400 {object} dto.Response "Attendance already marked for this day"
// @Failure 404 {object} dto.Response "Employee not found"
// @Failure 422 {object} dto.Response "Validation failed"
// @Router /attendance [post]
func (c *AttendanceController) MarkAttendance(ctx *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	record, err := c.attendanceService.Mark(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated,
		dto.NewSuccessResponse(record, "Attendance marked successfully", http.StatusCreated))
}

// GetAllAttendance lists attendance records with an optional date filter
// @Summary List attendance records
// @Description Retrieves attendance records sorted by date descending, optionally filtered to one calendar day
// @Tags attendance
// @Produce json
// @Param filter_date query string false "Calendar day filter (YYYY-MM-DD)"
// @Success 200 {object} dto.Response{data=[]dto.AttendanceResponse} "Attendance records fetched successfully"
// @Failure 400 {object} dto.Response "Invalid date format"
// @Router /attendance [get]
func (c *AttendanceController) GetAllAttendance(ctx *gin.Context) {
	records, err := c.attendanceService.ListAll(ctx, ctx.Query("filter_date"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK,
		dto.NewSuccessResponse(records, "Attendance records fetched successfully", http.StatusOK))
}

// GetAttendanceByEmployee summarizes one employee's attendance
// @Summary Get attendance for an employee
// @Description Retrieves the employee's identity, present/absent tallies and full record list
// @Tags attendance
// @Produce json
// @Param employee_id path string true "Employee ID"
// @Success 200 {object} dto.Response{data=dto.EmployeeAttendanceSummary} "Attendance fetched successfully"
// @Failure 404 {object} dto.Response "Employee not found"
// @Router /attendance/{employee_id} [get]
func (c *AttendanceController) GetAttendanceByEmployee(ctx *gin.Context) {
	summary, err := c.attendanceService.ListForEmployee(ctx, ctx.Param("employeeId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := fmt.Sprintf("Attendance for %s fetched successfully", summary.Employee.FullName)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(summary, message, http.StatusOK))
}

// DeleteAttendance deletes one attendance record
// @Summary Delete an attendance record
// @Description Deletes an attendance record by its store identifier
// @Tags attendance
// @Produce json
// @Param attendance_id path string true "Attendance record ID"
// @Success 200 {object} dto.Response "Attendance deleted successfully"
// @Failure 400 {object} dto.Response "Invalid attendance ID format"
// @Failure 404 {object} dto.Response "Attendance record not found"
// @Router /attendance/{attendance_id} [delete]
func (c *AttendanceController) DeleteAttendance(ctx *gin.Context) {
	if err := c.attendanceService.Delete(ctx, ctx.Param("attendanceId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK,
		dto.NewSuccessResponse(nil, "Attendance deleted successfully", http.StatusOK))
}
