package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/happytails/happytails/internal/logger"
	"github.com/happytails/happytails/internal/utils"
	"github.com/happytails/happytails/models"
)

// listReminders answers with every reminder, or with the reminders of the
// owner named by ?userId=.
func (h *Handler) listReminders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var reminders []models.Reminder
	var err error
	if raw := r.URL.Query().Get("userId"); raw != "" {
		ownerID, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil || ownerID <= 0 {
			_, _ = utils.WriteJSON(w, map[string]any{"ok": false, "error": "invalid userId"}, http.StatusBadRequest)
			return
		}
		reminders, err = h.services.ReminderService.ListRemindersByOwner(ctx, ownerID)
	} else {
		reminders, err = h.services.ReminderService.ListReminders(ctx)
	}
	if err != nil {
		writeGroupError(w, r, err, "reminder listing failed")
		return
	}

	_, _ = utils.WriteJSON(w, reminders, http.StatusOK)
}

func (h *Handler) getReminder(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	reminder, err := h.services.ReminderService.GetReminder(r.Context(), id)
	if err != nil {
		writeGroupError(w, r, err, "reminder lookup failed")
		return
	}

	_, _ = utils.WriteJSON(w, reminder, http.StatusOK)
}

func (h *Handler) createReminder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var reminder models.Reminder
	if err := json.NewDecoder(r.Body).Decode(&reminder); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		_, _ = utils.WriteJSON(w, map[string]any{"ok": false, "error": "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	created, err := h.services.ReminderService.CreateReminder(ctx, reminder)
	if err != nil {
		writeGroupError(w, r, err, "reminder creation failed")
		return
	}

	_, _ = utils.WriteJSON(w, map[string]any{"ok": true, "recordatorio": created}, http.StatusCreated)
}

func (h *Handler) updateReminder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var reminder models.Reminder
	if err := json.NewDecoder(r.Body).Decode(&reminder); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		_, _ = utils.WriteJSON(w, map[string]any{"ok": false, "error": "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if err := h.services.ReminderService.UpdateReminder(ctx, id, reminder); err != nil {
		writeGroupError(w, r, err, "reminder update failed")
		return
	}

	_, _ = utils.WriteJSON(w, map[string]any{"ok": true}, http.StatusOK)
}

func (h *Handler) deleteReminder(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.services.ReminderService.DeleteReminder(r.Context(), id); err != nil {
		writeGroupError(w, r, err, "reminder deletion failed")
		return
	}

	_, _ = utils.WriteJSON(w, map[string]any{"ok": true}, http.StatusOK)
}

func (h *Handler) listReminderTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.services.ReminderService.ListTypes(r.Context())
	if err != nil {
		writeGroupError(w, r, err, "reminder type listing failed")
		return
	}

	_, _ = utils.WriteJSON(w, types, http.StatusOK)
}
