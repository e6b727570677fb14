package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-dashboard-server/internal/models"
	"clinic-dashboard-server/internal/schedule"
)

func newTestRouter(t *testing.T) (*gin.Engine, *schedule.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	now := time.Date(2026, time.March, 9, 12, 0, 0, 0, time.UTC)
	store := schedule.NewFixtureStore(now)
	svc := schedule.New(store, zerolog.Nop())
	h := NewAppointmentHandler(svc, zerolog.Nop())

	router := gin.New()
	router.GET("/appointments", h.ListAppointments)
	router.POST("/appointments", h.CreateAppointment)
	router.GET("/appointments/:id", h.GetAppointmentByID)
	router.PATCH("/appointments/:id/status", h.UpdateAppointmentStatus)
	router.GET("/appointments/stats", h.GetStats)
	router.GET("/appointments/day", h.GetDay)
	return router, store
}

type envelope struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Error   string            `json:"error"`
	Fields  map[string]string `json:"fields"`
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestListAppointmentsDefaultsToAll(t *testing.T) {
	router, _ := newTestRouter(t)

	w, env := doJSON(t, router, http.MethodGet, "/appointments", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var appts []models.Appointment
	require.NoError(t, json.Unmarshal(env.Data, &appts))
	assert.Len(t, appts, 4)
}

func TestListAppointmentsFiltersByQueryAndStatus(t *testing.T) {
	router, _ := newTestRouter(t)

	w, env := doJSON(t, router, http.MethodGet, "/appointments?search=sarah&status=confirmed", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var appts []models.Appointment
	require.NoError(t, json.Unmarshal(env.Data, &appts))
	require.Len(t, appts, 1)
	assert.Equal(t, "Sarah Johnson", appts[0].Patient.Name)

	// The pending fixture disappears under a confirmed-only filter even
	// when the query matches it.
	w, env = doJSON(t, router, http.MethodGet, "/appointments?search=blood+test&status=confirmed", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &appts))
	assert.Empty(t, appts)
}

func TestCreateAppointmentValid(t *testing.T) {
	router, store := newTestRouter(t)

	w, env := doJSON(t, router, http.MethodPost, "/appointments", gin.H{
		"patient": "Emily Davis",
		"date":    "2026-03-10",
		"time":    "11:00",
		"type":    "Follow-up",
		"phone":   "+1 (555) 456-7890",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var appt models.Appointment
	require.NoError(t, json.Unmarshal(env.Data, &appt))
	assert.NotEmpty(t, appt.ID)
	assert.Equal(t, models.StatusPending, appt.Status)
	assert.Equal(t, "Emily Davis", appt.Patient.Name)
	assert.Equal(t, 1, store.CreateAppointmentCalls)
}

func TestCreateAppointmentValidationErrors(t *testing.T) {
	router, store := newTestRouter(t)

	w, env := doJSON(t, router, http.MethodPost, "/appointments", gin.H{
		"patient": "E",
		"date":    "",
		"time":    "11:00",
		"type":    "",
		"phone":   "123",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	for _, field := range []string{"patient", "date", "type", "phone"} {
		assert.Contains(t, env.Fields, field)
	}
	assert.Zero(t, store.CreateAppointmentCalls, "invalid form must not reach the store")
}

func TestGetAppointmentByID(t *testing.T) {
	router, store := newTestRouter(t)

	appts, err := store.ListAppointments(context.Background())
	require.NoError(t, err)

	w, env := doJSON(t, router, http.MethodGet, "/appointments/"+appts[0].ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var appt models.Appointment
	require.NoError(t, json.Unmarshal(env.Data, &appt))
	assert.Equal(t, appts[0].ID, appt.ID)
	assert.Equal(t, "Sarah Johnson", appt.Patient.Name)

	w, _ = doJSON(t, router, http.MethodGet, "/appointments/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateAppointmentStatus(t *testing.T) {
	router, store := newTestRouter(t)

	appts, err := store.ListAppointments(context.Background())
	require.NoError(t, err)
	target := appts[1]

	w, _ := doJSON(t, router, http.MethodPatch, "/appointments/"+target.ID+"/status", gin.H{
		"status": "confirmed",
	})
	require.Equal(t, http.StatusOK, w.Code)

	after, err := store.ListAppointments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, after[1].Status)
}

func TestUpdateAppointmentStatusRejectsUnknownValue(t *testing.T) {
	router, _ := newTestRouter(t)

	w, _ := doJSON(t, router, http.MethodPatch, "/appointments/some-id/status", gin.H{
		"status": "done",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAppointmentStatusNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	w, _ := doJSON(t, router, http.MethodPatch, "/appointments/no-such-id/status", gin.H{
		"status": "confirmed",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetStats(t *testing.T) {
	router, _ := newTestRouter(t)

	w, env := doJSON(t, router, http.MethodGet, "/appointments/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats schedule.Stats
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 4, stats.TotalAppointments)
	assert.Equal(t, 4, stats.TotalPatients)
	assert.Equal(t, 1, stats.UpcomingAppointments)
}

func TestGetDayRejectsBadDate(t *testing.T) {
	router, _ := newTestRouter(t)

	w, _ := doJSON(t, router, http.MethodGet, "/appointments/day?date=tomorrow", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDayReturnsSortedAppointments(t *testing.T) {
	router, _ := newTestRouter(t)

	w, env := doJSON(t, router, http.MethodGet, "/appointments/day?date=2026-03-09", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		Date         string               `json:"date"`
		Appointments []models.Appointment `json:"appointments"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	assert.Equal(t, "2026-03-09", payload.Date)
	require.Len(t, payload.Appointments, 4)
	for i := 1; i < len(payload.Appointments); i++ {
		assert.False(t, payload.Appointments[i].StartTime.Before(payload.Appointments[i-1].StartTime))
	}
}
