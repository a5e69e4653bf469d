package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hrmslite/backend/internal/app/models/dto"
	"github.com/hrmslite/backend/internal/app/services"
	"github.com/hrmslite/backend/internal/middleware"
)

// EmployeeController handles employee-related endpoints
type EmployeeController struct {
	employeeService services.EmployeeService
}

// NewEmployeeController creates a new EmployeeController
func NewEmployeeController(employeeService services.EmployeeService) *EmployeeController {
	return &EmployeeController{employeeService: employeeService}
}

// CreateEmployee handles employee registration
// @Summary Create a new employee
// @Description Registers a new employee with a unique employee ID and email
// @Tags employees
// @Accept json
// @Produce json
// @Param request body dto.CreateEmployeeRequest true "Employee information"
// @Success 201 {object} dto.Response{data=dto.EmployeeResponse} "Employee created successfully"
// @Failure 400 {object} dto.Response "Duplicate employee ID or email"
// @Failure 422 {object} dto.Response "Validation failed"
// @Router /employees [post]
func (c *EmployeeController) CreateEmployee(ctx *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	employee, err := c.employeeService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated,
		dto.NewSuccessResponse(employee, "Employee created successfully", http.StatusCreated))
}

// GetEmployees lists all employees
// @Summary List all employees
// @Description Retrieves all employee records in store-native order
// @Tags employees
// @Produce json
// @Success 200 {object} dto.Response{data=[]dto.EmployeeResponse} "Employees fetched successfully"
// @Router /employees [get]
func (c *EmployeeController) GetEmployees(ctx *gin.Context) {
	employees, err := c.employeeService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK,
		dto.NewSuccessResponse(employees, "Employees fetched successfully", http.StatusOK))
}

// DeleteEmployee deletes an employee and its attendance records
// @Summary Delete an employee
// @Description Deletes an employee by employee ID, cascading to its attendance records
// @Tags employees
// @Produce json
// @Param employee_id path string true "Employee ID"
// @Success 200 {object} dto.Response "Employee deleted successfully"
// @Failure 404 {object} dto.Response "Employee not found"
// @Router /employees/{employee_id} [delete]
func (c *EmployeeController) DeleteEmployee(ctx *gin.Context) {
	if err := c.employeeService.Delete(ctx, ctx.Param("employeeId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK,
		dto.NewSuccessResponse(nil, "Employee deleted successfully", http.StatusOK))
}
