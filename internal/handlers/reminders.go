package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"clinic-dashboard-server/internal/models"
	"clinic-dashboard-server/internal/schedule"
	"clinic-dashboard-server/internal/utils"
)

// ReminderHandler dispatches appointment reminders and serves the
// dispatch history. The sender is injected so tests can substitute a
// fake without touching global state.
type ReminderHandler struct {
	Svc    *schedule.Service
	Sender schedule.Sender
	DB     *gorm.DB
	Log    zerolog.Logger
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(svc *schedule.Service, sender schedule.Sender, db *gorm.DB, log zerolog.Logger) *ReminderHandler {
	return &ReminderHandler{Svc: svc, Sender: sender, DB: db, Log: log}
}

// SendPending dispatches a reminder for every pending appointment and
// reports the batch summary.
func (h *ReminderHandler) SendPending(c *gin.Context) {
	summary, err := h.Svc.SendReminders(c.Request.Context(), h.Sender)
	if err != nil {
		utils.InternalServerError(c, "Failed to send reminders")
		return
	}

	h.Log.Info().Int("sent", summary.Sent).Int("failed", summary.Failed).
		Msg("reminder batch finished")
	utils.Success(c, summary.Message, summary)
}

// GetLog returns the reminder dispatch history, newest first.
func (h *ReminderHandler) GetLog(c *gin.Context) {
	var entries []models.ReminderLog
	if err := h.DB.Order("sent_at desc").Limit(100).Find(&entries).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch reminder log: "+err.Error())
		return
	}

	utils.Success(c, "Reminder log fetched successfully", entries)
}
