package schedule

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"clinic-dashboard-server/internal/models"
)

// Service owns the appointment collection on behalf of the dashboard: it
// derives filtered views, aggregate counters and calendar projections, and
// mediates create/status operations against the Store.
type Service struct {
	store Store
	log   zerolog.Logger
}

// New creates a scheduling service over the given store.
func New(store Store, log zerolog.Logger) *Service {
	return &Service{store: store, log: log}
}

// Overview loads appointments and patients (concurrently, order does not
// matter) and derives the dashboard counters. On any fetch error no
// partial stats are produced; the error is logged and returned.
func (s *Service) Overview(ctx context.Context) (Stats, error) {
	var (
		wg       sync.WaitGroup
		appts    []models.Appointment
		patients []models.Patient
		apptErr  error
		patErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		appts, apptErr = s.store.ListAppointments(ctx)
	}()
	go func() {
		defer wg.Done()
		patients, patErr = s.store.ListPatients(ctx)
	}()
	wg.Wait()

	if err := errors.Join(apptErr, patErr); err != nil {
		s.log.Error().Err(err).Msg("dashboard overview load failed")
		return Stats{}, err
	}

	return ComputeStats(appts, len(patients)), nil
}

// List returns appointments passing the search query and status filter.
func (s *Service) List(ctx context.Context, query, statusFilter string) ([]models.Appointment, error) {
	appts, err := s.store.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}
	if statusFilter == "" {
		statusFilter = StatusAll
	}
	return Filter(appts, query, statusFilter), nil
}

// Get returns one appointment with its patient relation.
func (s *Service) Get(ctx context.Context, id string) (models.Appointment, error) {
	return s.store.GetAppointment(ctx, id)
}

// Create validates the scheduling form and, only if it passes, submits a
// new pending appointment to the store. Field errors mean nothing was
// submitted.
func (s *Service) Create(ctx context.Context, form Form) (models.Appointment, FieldErrors, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return models.Appointment{}, errs, nil
	}

	patient, err := s.resolvePatient(ctx, form)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.Appointment{}, FieldErrors{"patient": "Patient not found"}, nil
		}
		return models.Appointment{}, nil, err
	}

	start, err := form.StartTime()
	if err != nil {
		// Validate has already parsed both parts; reaching this means the
		// form mutated between calls.
		return models.Appointment{}, FieldErrors{"date": "Invalid date or time"}, nil
	}

	duration := form.DurationMinutes
	if duration <= 0 {
		duration = 30
	}

	appt := models.Appointment{
		PatientID:       patient.ID,
		StartTime:       start,
		DurationMinutes: duration,
		Type:            strings.TrimSpace(form.Type),
		Status:          models.StatusPending,
		Phone:           form.Phone,
		Notes:           form.Notes,
	}

	created, err := s.store.CreateAppointment(ctx, appt)
	if err != nil {
		s.log.Error().Err(err).Msg("appointment create failed")
		return models.Appointment{}, nil, err
	}
	created.Patient = patient
	return created, nil, nil
}

func (s *Service) resolvePatient(ctx context.Context, form Form) (models.Patient, error) {
	if form.PatientID != "" {
		return s.store.GetPatient(ctx, form.PatientID)
	}
	return s.store.FindPatientByName(ctx, strings.TrimSpace(form.Patient))
}

// SetStatus persists a status change. The original dashboard mutated
// status locally and never told the backend; here the store is the owner
// of record, so the write happens before the caller sees the new value.
func (s *Service) SetStatus(ctx context.Context, id string, status models.AppointmentStatus) error {
	if err := s.store.UpdateAppointmentStatus(ctx, id, status); err != nil {
		s.log.Error().Err(err).Str("appointment_id", id).Msg("status update failed")
		return err
	}
	return nil
}

// Delete removes an appointment.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.DeleteAppointment(ctx, id)
}

// Day returns the appointments on one calendar day, time ascending.
func (s *Service) Day(ctx context.Context, day time.Time) ([]models.Appointment, error) {
	appts, err := s.store.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}
	if _, skipped := GroupByDay(appts); skipped > 0 {
		s.log.Warn().Int("skipped", skipped).Msg("appointments without a valid start time excluded from calendar")
	}
	return DayView(appts, day), nil
}

// Month reports which days of a month carry at least one appointment.
func (s *Service) Month(ctx context.Context, year int, month time.Month) (map[int]bool, error) {
	appts, err := s.store.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}
	return MonthMarkers(appts, year, month), nil
}

// AnalyticsReport is the payload behind the analytics page charts.
type AnalyticsReport struct {
	ByStatus Breakdown   `json:"byStatus"`
	ByType   Breakdown   `json:"byType"`
	Weekly   WeeklyTrend `json:"weeklyTrend"`
}

// Analytics aggregates the chart data over the full collection.
func (s *Service) Analytics(ctx context.Context, now time.Time) (AnalyticsReport, error) {
	appts, err := s.store.ListAppointments(ctx)
	if err != nil {
		return AnalyticsReport{}, err
	}
	return AnalyticsReport{
		ByStatus: StatusBreakdown(appts),
		ByType:   TypeBreakdown(appts),
		Weekly:   ComputeWeeklyTrend(appts, now),
	}, nil
}
