package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"clinic-dashboard-server/internal/models"
	"clinic-dashboard-server/internal/utils"
)

// PatientHandler handles patient record requests.
type PatientHandler struct {
	DB *gorm.DB
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(db *gorm.DB) *PatientHandler {
	return &PatientHandler{DB: db}
}

// CreatePatientRequest represents the request body for creating a patient.
type CreatePatientRequest struct {
	Name           string `json:"name" binding:"required,min=2"`
	Email          string `json:"email" binding:"omitempty,email"`
	Phone          string `json:"phone"`
	Age            int    `json:"age" binding:"omitempty,gte=0,lte=150"`
	MedicalHistory string `json:"medicalHistory"`
}

// CreatePatient handles creating a new patient record.
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req CreatePatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	patient := models.Patient{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Age:            req.Age,
		Status:         models.PatientActive,
		MedicalHistory: req.MedicalHistory,
	}

	if err := h.DB.Create(&patient).Error; err != nil {
		utils.InternalServerError(c, "Failed to create patient: "+err.Error())
		return
	}

	utils.Created(c, "Patient created successfully", patient)
}

// GetPatients returns patient records, optionally filtered by a search
// term matched against name, email and phone.
func (h *PatientHandler) GetPatients(c *gin.Context) {
	var patients []models.Patient

	query := h.DB.Order("created_at asc")
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		needle := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?",
			needle, needle, "%"+search+"%",
		)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&patients).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch patients: "+err.Error())
		return
	}

	utils.Success(c, "Patients fetched successfully", patients)
}

// GetPatientByID returns one patient together with their appointments.
func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	id := c.Param("id")

	var patient models.Patient
	if err := h.DB.Preload("Appointments").First(&patient, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Patient fetched successfully", gin.H{
		"patient":         patient,
		"appointments":    patient.Appointments,
		"nextAppointment": patient.NextAppointment(time.Now()),
	})
}

// UpdatePatientRequest represents the request body for updating a patient.
type UpdatePatientRequest struct {
	Name           string               `json:"name" binding:"omitempty,min=2"`
	Email          string               `json:"email" binding:"omitempty,email"`
	Phone          string               `json:"phone"`
	Age            int                  `json:"age" binding:"omitempty,gte=0,lte=150"`
	Status         models.PatientStatus `json:"status" binding:"omitempty,oneof=active inactive"`
	MedicalHistory string               `json:"medicalHistory"`
	LastVisit      *time.Time           `json:"lastVisit"`
}

// UpdatePatient handles updating a patient record.
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id := c.Param("id")

	var req UpdatePatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var patient models.Patient
	if err := h.DB.First(&patient, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if req.Name != "" {
		patient.Name = req.Name
	}
	if req.Email != "" {
		patient.Email = req.Email
	}
	if req.Phone != "" {
		patient.Phone = req.Phone
	}
	if req.Age != 0 {
		patient.Age = req.Age
	}
	if req.Status != "" {
		patient.Status = req.Status
	}
	if req.MedicalHistory != "" {
		patient.MedicalHistory = req.MedicalHistory
	}
	if req.LastVisit != nil {
		patient.LastVisit = req.LastVisit
	}

	if err := h.DB.Save(&patient).Error; err != nil {
		utils.InternalServerError(c, "Failed to update patient: "+err.Error())
		return
	}

	utils.Success(c, "Patient updated successfully", patient)
}

// DeletePatient handles deleting a patient record (admin only).
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id := c.Param("id")

	res := h.DB.Delete(&models.Patient{}, "id = ?", id)
	if res.Error != nil {
		utils.InternalServerError(c, "Failed to delete patient: "+res.Error.Error())
		return
	}
	if res.RowsAffected == 0 {
		utils.NotFound(c, "Patient not found")
		return
	}

	utils.Success(c, "Patient deleted successfully", nil)
}
