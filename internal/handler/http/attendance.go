package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dakoku/timeclock-backend-go/internal/domain/attendance"
	"github.com/dakoku/timeclock-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Status(w http.ResponseWriter, r *http.Request)
	RegisterEvent(w http.ResponseWriter, r *http.Request)
	ListMyLogs(w http.ResponseWriter, r *http.Request)
	UpdateMyLog(w http.ResponseWriter, r *http.Request)
	DeleteMyLog(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Status implements AttendanceHandler.
func (h *attendanceHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	employeeID, err := claimEmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.FetchStatus(r.Context(), employeeID)
	if err != nil {
		slog.Error("Status service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// RegisterEvent implements AttendanceHandler.
func (h *attendanceHandlerImpl) RegisterEvent(w http.ResponseWriter, r *http.Request) {
	employeeID, err := claimEmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.RegisterEventRequest

	// Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RegisterEvent decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	result, err := h.attendanceService.RegisterEvent(r.Context(), employeeID, req)
	if err != nil {
		slog.Error("RegisterEvent service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance event recorded", "employee_id", employeeID, "event_type", req.EventType)
	response.Created(w, "Event recorded", result)
}

// ListMyLogs implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListMyLogs(w http.ResponseWriter, r *http.Request) {
	employeeID, err := claimEmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	fromKey := r.URL.Query().Get("from")
	toKey := r.URL.Query().Get("to")

	result, err := h.attendanceService.ListMyEvents(r.Context(), employeeID, fromKey, toKey)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateMyLog implements AttendanceHandler.
func (h *attendanceHandlerImpl) UpdateMyLog(w http.ResponseWriter, r *http.Request) {
	employeeID, err := claimEmployeeID(r)
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
		slog.Error("UpdateMyLog decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.attendanceService.UpdateMyEvent(r.Context(), employeeID, rowNumber, req); err != nil {
		slog.Error("UpdateMyLog service error", "error", err, "employee_id", employeeID, "row", rowNumber)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Event updated", nil)
}

// DeleteMyLog implements AttendanceHandler.
func (h *attendanceHandlerImpl) DeleteMyLog(w http.ResponseWriter, r *http.Request) {
	employeeID, err := claimEmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rowNumber, err := strconv.Atoi(chi.URLParam(r, "rowNumber"))
	if err != nil {
		response.BadRequest(w, "Invalid row number", nil)
		return
	}

	if err := h.attendanceService.DeleteMyEvent(r.Context(), employeeID, rowNumber); err != nil {
		slog.Error("DeleteMyLog service error", "error", err, "employee_id", employeeID, "row", rowNumber)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Event deleted", nil)
}
