package schedule

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"clinic-dashboard-server/internal/models"
)

// GormStore is the production Store backed by the application database.
type GormStore struct {
	DB *gorm.DB
}

// NewGormStore creates a Store over the given gorm connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (g *GormStore) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := g.DB.WithContext(ctx).
		Preload("Patient").
		Order("created_at asc").
		Find(&appts).Error
	if err != nil {
		return nil, err
	}
	return appts, nil
}

func (g *GormStore) GetAppointment(ctx context.Context, id string) (models.Appointment, error) {
	var appt models.Appointment
	err := g.DB.WithContext(ctx).Preload("Patient").First(&appt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Appointment{}, ErrNotFound
	}
	if err != nil {
		return models.Appointment{}, err
	}
	return appt, nil
}

func (g *GormStore) CreateAppointment(ctx context.Context, appt models.Appointment) (models.Appointment, error) {
	if err := g.DB.WithContext(ctx).Create(&appt).Error; err != nil {
		return models.Appointment{}, err
	}
	return appt, nil
}

func (g *GormStore) UpdateAppointmentStatus(ctx context.Context, id string, status models.AppointmentStatus) error {
	res := g.DB.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (g *GormStore) DeleteAppointment(ctx context.Context, id string) error {
	res := g.DB.WithContext(ctx).Delete(&models.Appointment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (g *GormStore) ListPatients(ctx context.Context) ([]models.Patient, error) {
	var patients []models.Patient
	if err := g.DB.WithContext(ctx).Order("created_at asc").Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (g *GormStore) GetPatient(ctx context.Context, id string) (models.Patient, error) {
	var patient models.Patient
	err := g.DB.WithContext(ctx).First(&patient, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Patient{}, ErrNotFound
	}
	if err != nil {
		return models.Patient{}, err
	}
	return patient, nil
}

func (g *GormStore) FindPatientByName(ctx context.Context, name string) (models.Patient, error) {
	var patient models.Patient
	err := g.DB.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		First(&patient).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Patient{}, ErrNotFound
	}
	if err != nil {
		return models.Patient{}, err
	}
	return patient, nil
}

func (g *GormStore) AppendReminderLog(ctx context.Context, entry models.ReminderLog) error {
	return g.DB.WithContext(ctx).Create(&entry).Error
}
