package http

import (
	"encoding/json"
	"net/http"

	"github.com/happytails/happytails/internal/logger"
	"github.com/happytails/happytails/internal/utils"
	"github.com/happytails/happytails/models"
)

type adoptionRequestBody struct {
	Message string `json:"mensaje"`
}

func (h *Handler) listAdoptions(w http.ResponseWriter, r *http.Request) {
	adoptions, err := h.services.AdoptionService.ListAdoptions(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "adoption listing failed")
		return
	}

	_, _ = utils.WriteJSON(w, adoptions, http.StatusOK)
}

func (h *Handler) createAdoption(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var adoption models.Adoption
	if err := json.NewDecoder(r.Body).Decode(&adoption); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if s, ok := utils.GetSessionFromContext(ctx); ok && adoption.OwnerID == nil {
		adoption.OwnerID = &s.ID
	}

	created, err := h.services.AdoptionService.CreateAdoption(ctx, adoption)
	if err != nil {
		writeServiceError(w, r, err, "adoption creation failed")
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateAdoption(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var adoption models.Adoption
	if err := json.NewDecoder(r.Body).Decode(&adoption); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AdoptionService.UpdateAdoption(ctx, id, adoption); err != nil {
		writeServiceError(w, r, err, "adoption update failed")
		return
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "adopción actualizada"}, http.StatusOK)
}

func (h *Handler) deleteAdoption(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.services.AdoptionService.DeleteAdoption(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "adoption deletion failed")
		return
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "adopción eliminada"}, http.StatusOK)
}

// fileAdoptionRequest files a request of the session's user against the
// listing named in the route.
func (h *Handler) fileAdoptionRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	s, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	var body adoptionRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.AdoptionService.FileRequest(ctx, id, s.ID, body.Message)
	if err != nil {
		writeServiceError(w, r, err, "adoption request failed")
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

// listOwnRequests answers with the adoption requests filed by the session's
// user.
func (h *Handler) listOwnRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	s, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	requests, err := h.services.AdoptionService.ListRequestsByRequester(ctx, s.ID)
	if err != nil {
		writeServiceError(w, r, err, "adoption request listing failed")
		return
	}

	_, _ = utils.WriteJSON(w, requests, http.StatusOK)
}
