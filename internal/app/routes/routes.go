package routes

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hrmslite/backend/internal/app/controllers"
	"github.com/hrmslite/backend/internal/app/models/dto"
)

// DBPinger reports store reachability for the health endpoint.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	employeeController *controllers.EmployeeController,
	attendanceController *controllers.AttendanceController,
	dashboardController *controllers.DashboardController,
	db DBPinger,
) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "HRMS Lite API Running", http.StatusOK))
	})

	employees := router.Group("/employees")
	{
		employees.POST("", employeeController.CreateEmployee)
		employees.GET("", employeeController.GetEmployees)
		employees.DELETE("/:employeeId", employeeController.DeleteEmployee)
	}

	attendance := router.Group("/attendance")
	{
		attendance.POST("", attendanceController.MarkAttendance)
		attendance.GET("", attendanceController.GetAllAttendance)
		attendance.GET("/:employeeId", attendanceController.GetAttendanceByEmployee)
		attendance.DELETE("/:attendanceId", attendanceController.DeleteAttendance)
	}

	router.GET("/dashboard", dashboardController.GetDashboard)

	router.GET("/health", func(c *gin.Context) {
		if err := db.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable,
				dto.NewErrorResponse("database unavailable", http.StatusServiceUnavailable))
			return
		}
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"database": "ok"}, "OK", http.StatusOK))
	})
}
