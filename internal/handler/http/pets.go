package http

import (
	"encoding/json"
	"net/http"

	"github.com/happytails/happytails/internal/logger"
	"github.com/happytails/happytails/internal/utils"
	"github.com/happytails/happytails/models"
)

// listPets answers with every registered pet, or with the reduced id/name
// projection when ?simple=true is set.
func (h *Handler) listPets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.URL.Query().Get("simple") == "true" {
		refs, err := h.services.PetService.ListPetRefs(ctx)
		if err != nil {
			writeServiceError(w, r, err, "pet listing failed")
			return
		}
		_, _ = utils.WriteJSON(w, refs, http.StatusOK)
		return
	}

	pets, err := h.services.PetService.ListPets(ctx)
	if err != nil {
		writeServiceError(w, r, err, "pet listing failed")
		return
	}

	_, _ = utils.WriteJSON(w, pets, http.StatusOK)
}

func (h *Handler) createPet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var pet models.Pet
	if err := json.NewDecoder(r.Body).Decode(&pet); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if s, ok := utils.GetSessionFromContext(ctx); ok && pet.OwnerID == 0 {
		pet.OwnerID = s.ID
	}

	created, err := h.services.PetService.CreatePet(ctx, pet)
	if err != nil {
		writeServiceError(w, r, err, "pet creation failed")
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updatePet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var pet models.Pet
	if err := json.NewDecoder(r.Body).Decode(&pet); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.PetService.UpdatePet(ctx, id, pet); err != nil {
		writeServiceError(w, r, err, "pet update failed")
		return
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "mascota actualizada"}, http.StatusOK)
}

func (h *Handler) deletePet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.services.PetService.DeletePet(ctx, id); err != nil {
		writeServiceError(w, r, err, "pet deletion failed")
		return
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "mascota eliminada"}, http.StatusOK)
}
