package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"clinic-dashboard-server/internal/config"
	"clinic-dashboard-server/internal/models"
	"clinic-dashboard-server/internal/utils"
)

// SettingsHandler serves the clinic and notification settings pages. Both
// settings tables hold a single row, created on first read from config
// defaults.
type SettingsHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(db *gorm.DB, cfg *config.Config) *SettingsHandler {
	return &SettingsHandler{DB: db, Cfg: cfg}
}

func (h *SettingsHandler) clinicRow() (models.ClinicSettings, error) {
	var row models.ClinicSettings
	err := h.DB.First(&row).Error
	if err == gorm.ErrRecordNotFound {
		row = models.ClinicSettings{
			Name:  h.Cfg.Clinic.Name,
			Email: h.Cfg.Clinic.Email,
			Phone: h.Cfg.Clinic.Phone,
		}
		err = h.DB.Create(&row).Error
	}
	return row, err
}

func (h *SettingsHandler) notificationRow() (models.NotificationSettings, error) {
	var row models.NotificationSettings
	err := h.DB.First(&row).Error
	if err == gorm.ErrRecordNotFound {
		row = models.NotificationSettings{
			SMSEnabled:   true,
			EmailEnabled: true,
			Remind24h:    true,
		}
		err = h.DB.Create(&row).Error
	}
	return row, err
}

// GetSettings returns the clinic and notification settings.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	clinic, err := h.clinicRow()
	if err != nil {
		utils.InternalServerError(c, "Failed to load clinic settings: "+err.Error())
		return
	}
	notifications, err := h.notificationRow()
	if err != nil {
		utils.InternalServerError(c, "Failed to load notification settings: "+err.Error())
		return
	}

	utils.Success(c, "Settings fetched successfully", gin.H{
		"clinic":        clinic,
		"notifications": notifications,
	})
}

// UpdateClinicRequest represents the clinic settings form.
type UpdateClinicRequest struct {
	Name        string `json:"name" binding:"required,min=2"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email" binding:"omitempty,email"`
	Website     string `json:"website"`
	Description string `json:"description"`
}

// UpdateClinic saves the clinic identity block.
func (h *SettingsHandler) UpdateClinic(c *gin.Context) {
	var req UpdateClinicRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	row, err := h.clinicRow()
	if err != nil {
		utils.InternalServerError(c, "Failed to load clinic settings: "+err.Error())
		return
	}

	row.Name = req.Name
	row.Address = req.Address
	row.Phone = req.Phone
	row.Email = req.Email
	row.Website = req.Website
	row.Description = req.Description

	if err := h.DB.Save(&row).Error; err != nil {
		utils.InternalServerError(c, "Failed to save clinic settings: "+err.Error())
		return
	}

	utils.Success(c, "Settings saved", row)
}

// UpdateNotificationsRequest represents the reminder toggles form.
type UpdateNotificationsRequest struct {
	SMSEnabled      *bool `json:"smsEnabled"`
	EmailEnabled    *bool `json:"emailEnabled"`
	WhatsAppEnabled *bool `json:"whatsappEnabled"`
	Remind24h       *bool `json:"remind24h"`
	Remind2h        *bool `json:"remind2h"`
	Remind1h        *bool `json:"remind1h"`
}

// UpdateNotifications saves the reminder channel and timing toggles.
func (h *SettingsHandler) UpdateNotifications(c *gin.Context) {
	var req UpdateNotificationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	row, err := h.notificationRow()
	if err != nil {
		utils.InternalServerError(c, "Failed to load notification settings: "+err.Error())
		return
	}

	if req.SMSEnabled != nil {
		row.SMSEnabled = *req.SMSEnabled
	}
	if req.EmailEnabled != nil {
		row.EmailEnabled = *req.EmailEnabled
	}
	if req.WhatsAppEnabled != nil {
		row.WhatsAppEnabled = *req.WhatsAppEnabled
	}
	if req.Remind24h != nil {
		row.Remind24h = *req.Remind24h
	}
	if req.Remind2h != nil {
		row.Remind2h = *req.Remind2h
	}
	if req.Remind1h != nil {
		row.Remind1h = *req.Remind1h
	}

	if err := h.DB.Save(&row).Error; err != nil {
		utils.InternalServerError(c, "Failed to save notification settings: "+err.Error())
		return
	}

	utils.Success(c, "Settings saved", row)
}
