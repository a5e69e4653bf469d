package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrmslite/backend/internal/middleware"
	"github.com/hrmslite/backend/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveWithError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	router := gin.New()
	router.GET("/boom", func(c *gin.Context) {
		middleware.HandleAPIError(c, err)
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/boom", nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	return recorder, body
}

func TestHandleAPIError_KnownErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"employee not found", apperrors.ErrEmployeeNotFound, http.StatusNotFound, "Employee not found"},
		{"attendance not found", apperrors.ErrAttendanceNotFound, http.StatusNotFound, "Attendance record not found"},
		{"duplicate employee id", apperrors.ErrEmployeeIDExists, http.StatusBadRequest, "Employee ID already exists"},
		{"duplicate email", apperrors.ErrEmailExists, http.StatusBadRequest, "Email already registered"},
		{"invalid id format", apperrors.NewCustomError(apperrors.ErrInvalidIDFormat, "Invalid attendance ID format"), http.StatusBadRequest, "Invalid attendance ID format"},
		{"invalid date format", apperrors.NewCustomError(apperrors.ErrInvalidDateFormat, "Invalid date format. Use YYYY-MM-DD"), http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			recorder, body := serveWithError(t, tc.err)

			assert.Equal(t, tc.wantStatus, recorder.Code)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, float64(tc.wantStatus), body["status_code"])
			assert.Equal(t, tc.wantMsg, body["message"])
			assert.Nil(t, body["data"])
		})
	}
}

func TestHandleAPIError_DuplicateAttendanceKeepsMessage(t *testing.T) {
	t.Parallel()

	err := apperrors.NewDuplicateAttendanceError("Attendance for Jane Doe on 2024-03-01 is already marked as 'Present'")
	recorder, body := serveWithError(t, err)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Attendance for Jane Doe on 2024-03-01 is already marked as 'Present'", body["message"])
}

func TestHandleAPIError_Unhandled(t *testing.T) {
	t.Parallel()

	recorder, body := serveWithError(t, errors.New("connection reset"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, "Internal server error", body["message"])
}

func TestCORS_PreflightAllowsAnyOrigin(t *testing.T) {
	t.Parallel()

	router := gin.New()
	router.Use(middleware.CORS())
	router.POST("/employees", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/employees", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "https://anywhere.example", recorder.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", recorder.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_SimpleRequestEchoesOrigin(t *testing.T) {
	t.Parallel()

	router := gin.New()
	router.Use(middleware.CORS())
	router.GET("/employees", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/employees", nil)
	req.Header.Set("Origin", "http://localhost:5173")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "http://localhost:5173", recorder.Header().Get("Access-Control-Allow-Origin"))
}
