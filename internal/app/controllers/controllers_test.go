package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/hrmslite/backend/internal/app/models/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubEmployeeService struct {
	createFn func(ctx context.Context, req dto.CreateEmployeeRequest) (dto.EmployeeResponse, error)
	listFn   func(ctx context.Context) ([]dto.EmployeeResponse, error)
	deleteFn func(ctx context.Context, employeeID string) error
}

func (s *stubEmployeeService) Create(ctx context.Context, req dto.CreateEmployeeRequest) (dto.EmployeeResponse, error) {
	return s.createFn(ctx, req)
}

func (s *stubEmployeeService) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	return s.listFn(ctx)
}

func (s *stubEmployeeService) Delete(ctx context.Context, employeeID string) error {
	return s.deleteFn(ctx, employeeID)
}

type stubAttendanceService struct {
	markFn            func(ctx context.Context, req dto.MarkAttendanceRequest) (dto.AttendanceResponse, error)
	listAllFn         func(ctx context.Context, filterDate string) ([]dto.AttendanceResponse, error)
	listForEmployeeFn func(ctx context.Context, employeeID string) (*dto.EmployeeAttendanceSummary, error)
	deleteFn          func(ctx context.Context, attendanceID string) error
}

func (s *stubAttendanceService) Mark(ctx context.Context, req dto.MarkAttendanceRequest) (dto.AttendanceResponse, error) {
	return s.markFn(ctx, req)
}

func (s *stubAttendanceService) ListAll(ctx context.Context, filterDate string) ([]dto.AttendanceResponse, error) {
	return s.listAllFn(ctx, filterDate)
}

func (s *stubAttendanceService) ListForEmployee(ctx context.Context, employeeID string) (*dto.EmployeeAttendanceSummary, error) {
	return s.listForEmployeeFn(ctx, employeeID)
}

func (s *stubAttendanceService) Delete(ctx context.Context, attendanceID string) error {
	return s.deleteFn(ctx, attendanceID)
}

type stubDashboardService struct {
	summaryFn func(ctx context.Context) (*dto.DashboardSummary, error)
}

func (s *stubDashboardService) Summary(ctx context.Context) (*dto.DashboardSummary, error) {
	return s.summaryFn(ctx)
}

// envelope mirrors dto.Response with the data field kept raw for
// per-test decoding.
type envelope struct {
	Success    bool            `json:"success"`
	StatusCode int             `json:"status_code"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	var env envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &env))
	require.Equal(t, recorder.Code, env.StatusCode)

	return recorder, env
}

func requireStatus(t *testing.T, recorder *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, recorder.Code)
	require.Contains(t, recorder.Header().Get("Content-Type"), "application/json")
}
