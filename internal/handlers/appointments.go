package handlers

import (
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"clinic-dashboard-server/internal/models"
	"clinic-dashboard-server/internal/schedule"
	"clinic-dashboard-server/internal/utils"
)

// AppointmentHandler handles appointment related requests, delegating the
// derivation and persistence logic to the scheduling service.
type AppointmentHandler struct {
	Svc *schedule.Service
	Log zerolog.Logger
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(svc *schedule.Service, log zerolog.Logger) *AppointmentHandler {
	return &AppointmentHandler{Svc: svc, Log: log}
}

// ListAppointments returns appointments filtered by the search and status
// query parameters. "status=all" (or no status) matches everything.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	query := c.Query("search")
	statusFilter := c.DefaultQuery("status", schedule.StatusAll)

	appts, err := h.Svc.List(c.Request.Context(), query, statusFilter)
	if err != nil {
		h.Log.Error().Err(err).Msg("listing appointments failed")
		utils.InternalServerError(c, "Failed to fetch appointments")
		return
	}

	utils.Success(c, "Appointments fetched successfully", appts)
}

// CreateAppointment handles the scheduling form submission. Invalid forms
// get field-level errors and never touch the store.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var form schedule.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	appt, fieldErrs, err := h.Svc.Create(c.Request.Context(), form)
	if err != nil {
		utils.InternalServerError(c, "Failed to create appointment")
		return
	}
	if len(fieldErrs) > 0 {
		utils.ValidationFailed(c, fieldErrs)
		return
	}

	utils.Created(c, "Appointment created successfully", appt)
}

// GetAppointmentByID returns one appointment with its patient.
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	appt, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == schedule.ErrNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Failed to fetch appointment")
		}
		return
	}

	utils.Success(c, "Appointment fetched successfully", appt)
}

// UpdateStatusRequest represents the request body for a status change.
type UpdateStatusRequest struct {
	Status models.AppointmentStatus `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}

// UpdateAppointmentStatus persists a status change and returns the result.
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	id := c.Param("id")

	var req UpdateStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if err := h.Svc.SetStatus(c.Request.Context(), id, req.Status); err != nil {
		if err == schedule.ErrNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Failed to update appointment status")
		}
		return
	}

	utils.Success(c, "Appointment status updated successfully", gin.H{
		"id":     id,
		"status": req.Status,
	})
}

// DeleteAppointment removes an appointment (admin only, wired in routes).
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id := c.Param("id")

	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		if err == schedule.ErrNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Failed to delete appointment")
		}
		return
	}

	utils.Success(c, "Appointment deleted successfully", nil)
}

// GetStats returns the dashboard counters.
func (h *AppointmentHandler) GetStats(c *gin.Context) {
	stats, err := h.Svc.Overview(c.Request.Context())
	if err != nil {
		utils.InternalServerError(c, "Failed to compute dashboard stats")
		return
	}

	utils.Success(c, "Stats fetched successfully", stats)
}

// GetDay returns the appointments on one calendar day, ordered by time.
// The day arrives as ?date=YYYY-MM-DD and defaults to today.
func (h *AppointmentHandler) GetDay(c *gin.Context) {
	day := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(schedule.DayKeyLayout, raw)
		if err != nil {
			utils.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		day = parsed
	}

	appts, err := h.Svc.Day(c.Request.Context(), day)
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch day view")
		return
	}

	utils.Success(c, "Day view fetched successfully", gin.H{
		"date":         day.Format(schedule.DayKeyLayout),
		"appointments": appts,
	})
}

// GetMonth returns the days of a month that carry appointments, for the
// month-grid markers. Defaults to the current month.
func (h *AppointmentHandler) GetMonth(c *gin.Context) {
	now := time.Now()
	year, month := now.Year(), now.Month()

	if raw := c.Query("month"); raw != "" {
		parsed, err := time.Parse("2006-01", raw)
		if err != nil {
			utils.BadRequest(c, "Invalid month, expected YYYY-MM")
			return
		}
		year, month = parsed.Year(), parsed.Month()
	}

	marks, err := h.Svc.Month(c.Request.Context(), year, month)
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch month view")
		return
	}

	days := make([]int, 0, len(marks))
	for d := range marks {
		days = append(days, d)
	}
	sort.Ints(days)

	utils.Success(c, "Month view fetched successfully", gin.H{
		"year":           year,
		"month":          int(month),
		"daysWithVisits": days,
	})
}
