package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/happytails/happytails/internal/logger"
	"github.com/happytails/happytails/internal/utils"
	"github.com/happytails/happytails/models"
)

// listNotifications answers with the merged feed of the user named by
// ?userId=, defaulting to the session's user.
func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	s, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	userID := s.ID
	if raw := r.URL.Query().Get("userId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			_, _ = utils.WriteJSON(w, map[string]any{"ok": false, "error": "invalid userId"}, http.StatusBadRequest)
			return
		}
		userID = parsed
	}

	feed, err := h.services.NotificationService.Feed(ctx, userID)
	if err != nil {
		writeGroupError(w, r, err, "notification feed failed")
		return
	}

	_, _ = utils.WriteJSON(w, map[string]any{"ok": true, "data": feed}, http.StatusOK)
}

func (h *Handler) createNotification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var notification models.Notification
	if err := json.NewDecoder(r.Body).Decode(&notification); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		_, _ = utils.WriteJSON(w, map[string]any{"ok": false, "error": "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if s, ok := utils.GetSessionFromContext(ctx); ok && notification.UserID == 0 {
		notification.UserID = s.ID
	}

	created, err := h.services.NotificationService.Create(ctx, notification)
	if err != nil {
		writeGroupError(w, r, err, "notification creation failed")
		return
	}

	_, _ = utils.WriteJSON(w, map[string]any{"ok": true, "notificacion": created}, http.StatusCreated)
}

// markNotificationRead flags one of the session user's notifications as
// read.
func (h *Handler) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	s, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	if err := h.services.NotificationService.MarkRead(ctx, id, s.ID); err != nil {
		writeGroupError(w, r, err, "notification read flag failed")
		return
	}

	_, _ = utils.WriteJSON(w, map[string]any{"ok": true}, http.StatusOK)
}
