package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/happytails/happytails/internal/service"
	"github.com/happytails/happytails/internal/store"
	"github.com/happytails/happytails/models"
)

// ─────────────────────────────────────────────
// createReminder
// ─────────────────────────────────────────────

// TestCreateReminder_Success verifies the {"ok":true,"recordatorio":...}
// creation body.
func TestCreateReminder_Success(t *testing.T) {
	due := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	reminders := &mockReminderService{
		createReminderFn: func(_ context.Context, rem models.Reminder) (models.Reminder, error) {
			require.Equal(t, int64(3), rem.PetID)
			require.Equal(t, int64(1), rem.TypeID)
			rem.ID = 5
			rem.Status = models.ReminderPending
			return rem, nil
		},
	}

	router := newTestHandler(t, &service.Services{ReminderService: reminders}).Init()
	body := jsonBody(t, models.Reminder{PetID: 3, TypeID: 1, DueDate: due})
	req := withSessionCookie(t, httptest.NewRequest(http.MethodPost, "/api/reminders", strings.NewReader(body)), userSession())
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":true`)
	assert.Contains(t, rec.Body.String(), `"recordatorio"`)
	assert.Contains(t, rec.Body.String(), `"estado":"Pendiente"`)
}

// TestCreateReminder_UnknownPet verifies the {"ok":false} error body with the
// mapped 404 for a dangling pet reference.
func TestCreateReminder_UnknownPet(t *testing.T) {
	reminders := &mockReminderService{
		createReminderFn: func(context.Context, models.Reminder) (models.Reminder, error) {
			return models.Reminder{}, store.ErrPetNotFound
		},
	}

	router := newTestHandler(t, &service.Services{ReminderService: reminders}).Init()
	body := `{"mascota_id":99,"tipo_recordatorio_id":1,"fecha_vencimiento":"2026-10-01T00:00:00Z"}`
	req := withSessionCookie(t, httptest.NewRequest(http.MethodPost, "/api/reminders", strings.NewReader(body)), userSession())
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":false`)
	assert.Contains(t, rec.Body.String(), "pet not found")
}

// ─────────────────────────────────────────────
// listReminderTypes
// ─────────────────────────────────────────────

// TestListReminderTypes verifies the catalog listing.
func TestListReminderTypes(t *testing.T) {
	reminders := &mockReminderService{
		listTypesFn: func(context.Context) ([]models.ReminderType, error) {
			return []models.ReminderType{{ID: 1, Name: "Vacunación"}, {ID: 2, Name: "Desparasitación"}}, nil
		},
	}

	router := newTestHandler(t, &service.Services{ReminderService: reminders}).Init()
	req := withSessionCookie(t, httptest.NewRequest(http.MethodGet, "/api/reminder-types", nil), userSession())
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Vacunación")
	assert.Contains(t, rec.Body.String(), "Desparasitación")
}

// ─────────────────────────────────────────────
// deleteReminder
// ─────────────────────────────────────────────

// TestDeleteReminder_NotFound verifies the group error shape for a missing
// reminder.
func TestDeleteReminder_NotFound(t *testing.T) {
	reminders := &mockReminderService{
		deleteReminderFn: func(_ context.Context, id int64) error {
			require.Equal(t, int64(44), id)
			return store.ErrReminderNotFound
		},
	}

	router := newTestHandler(t, &service.Services{ReminderService: reminders}).Init()
	req := withSessionCookie(t, httptest.NewRequest(http.MethodDelete, "/api/reminders/44", nil), userSession())
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":false`)
}

// ─────────────────────────────────────────────
// listReminders
// ─────────────────────────────────────────────

// TestListReminders_OwnerFilter verifies that ?userId= narrows the listing to
// one owner and leaves the unfiltered path untouched.
func TestListReminders_OwnerFilter(t *testing.T) {
	reminders := &mockReminderService{
		listRemindersByOwnerFn: func(_ context.Context, ownerID int64) ([]models.Reminder, error) {
			require.Equal(t, int64(7), ownerID)
			return []models.Reminder{{ID: 3, PetID: 3, PetName: "Rocky"}}, nil
		},
		listRemindersFn: func(context.Context) ([]models.Reminder, error) {
			t.Fatal("unfiltered listing must not run when userId is present")
			return nil, nil
		},
	}

	router := newTestHandler(t, &service.Services{ReminderService: reminders}).Init()
	req := withSessionCookie(t, httptest.NewRequest(http.MethodGet, "/api/reminders?userId=7", nil), userSession())
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Rocky")
}

// TestListReminders_BadOwnerFilter verifies the 400 for a userId that is not a
// positive integer.
func TestListReminders_BadOwnerFilter(t *testing.T) {
	for _, raw := range []string{"abc", "0", "-4"} {
		router := newTestHandler(t, &service.Services{ReminderService: &mockReminderService{}}).Init()
		req := withSessionCookie(t, httptest.NewRequest(http.MethodGet, "/api/reminders?userId="+raw, nil), userSession())
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code, "userId=%s", raw)
		assert.Contains(t, rec.Body.String(), "invalid userId")
	}
}

// ─────────────────────────────────────────────
// getReminder
// ─────────────────────────────────────────────

// TestGetReminder_Success verifies the single-reminder lookup.
func TestGetReminder_Success(t *testing.T) {
	reminders := &mockReminderService{
		getReminderFn: func(_ context.Context, id int64) (models.Reminder, error) {
			require.Equal(t, int64(5), id)
			return models.Reminder{ID: 5, PetName: "Luna", Status: models.ReminderPending}, nil
		},
	}

	router := newTestHandler(t, &service.Services{ReminderService: reminders}).Init()
	req := withSessionCookie(t, httptest.NewRequest(http.MethodGet, "/api/reminders/5", nil), userSession())
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Luna")
}

// TestGetReminder_NotFound verifies the group error shape for a missing id.
func TestGetReminder_NotFound(t *testing.T) {
	reminders := &mockReminderService{
		getReminderFn: func(context.Context, int64) (models.Reminder, error) {
			return models.Reminder{}, store.ErrReminderNotFound
		},
	}

	router := newTestHandler(t, &service.Services{ReminderService: reminders}).Init()
	req := withSessionCookie(t, httptest.NewRequest(http.MethodGet, "/api/reminders/99", nil), userSession())
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":false`)
}
