package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dakoku/timeclock-backend-go/internal/domain/attendance"
	"github.com/dakoku/timeclock-backend-go/internal/domain/employee"
	"github.com/dakoku/timeclock-backend-go/internal/domain/summary"
	"github.com/dakoku/timeclock-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AdminHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	ListLogs(w http.ResponseWriter, r *http.Request)
	UpdateLog(w http.ResponseWriter, r *http.Request)
	DeleteLog(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type adminHandlerImpl struct {
	employeeService   employee.EmployeeService
	attendanceService attendance.AttendanceService
	summaryService    summary.SummaryService
}

func NewAdminHandler(
	employeeService employee.EmployeeService,
	attendanceService attendance.AttendanceService,
	summaryService summary.SummaryService,
) AdminHandler {
	return &adminHandlerImpl{
		employeeService:   employeeService,
		attendanceService: attendanceService,
		summaryService:    summaryService,
	}
}

// ListEmployees implements AdminHandler.
func (h *adminHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.ListEmployees(r.Context())
	if err != nil {
		slog.Error("ListEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateEmployee implements AdminHandler.
func (h *adminHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.employeeService.UpdateEmployee(r.Context(), employeeID, req)
	if err != nil {
		slog.Error("UpdateEmployee service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee updated", "employee_id", employeeID)
	response.SuccessWithMessage(w, "Employee updated", result)
}

// ListLogs implements AdminHandler.
func (h *adminHandlerImpl) ListLogs(w http.ResponseWriter, r *http.Request) {
	fromKey := r.URL.Query().Get("from")
	toKey := r.URL.Query().Get("to")
	employeeID := r.URL.Query().Get("employee_id")

	result, err := h.attendanceService.ListEvents(r.Context(), employeeID, fromKey, toKey)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateLog implements AdminHandler.
func (h *adminHandlerImpl) UpdateLog(w http.ResponseWriter, r *http.Request) {
	editorID, err := claimEmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rowNumber, err := strconv.Atoi(chi.URLParam(r, "rowNumber"))
	if err != nil {
		response.BadRequest(w, "Invalid row number", nil)
		return
	}

	var req attendance.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateLog decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.attendanceService.UpdateEvent(r.Context(), editorID, rowNumber, req); err != nil {
		slog.Error("UpdateLog service error", "error", err, "row", rowNumber)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance log corrected", "editor", editorID, "row", rowNumber)
	response.SuccessWithMessage(w, "Event updated", nil)
}

// DeleteLog implements AdminHandler.
func (h *adminHandlerImpl) DeleteLog(w http.ResponseWriter, r *http.Request) {
	rowNumber, err := strconv.Atoi(chi.URLParam(r, "rowNumber"))
	if err != nil {
		response.BadRequest(w, "Invalid row number", nil)
		return
	}

	if err := h.attendanceService.DeleteEvent(r.Context(), rowNumber); err != nil {
		slog.Error("DeleteLog service error", "error", err, "row", rowNumber)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Event deleted", nil)
}

// Summary implements AdminHandler.
func (h *adminHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	fromKey := r.URL.Query().Get("from")
	toKey := r.URL.Query().Get("to")
	employeeID := r.URL.Query().Get("employee_id")

	result, err := h.summaryService.SummarizeRange(r.Context(), fromKey, toKey, employeeID)
	if err != nil {
		slog.Error("Summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
