package http

import (
	"encoding/json"
	"net/http"

	"github.com/happytails/happytails/internal/logger"
	"github.com/happytails/happytails/internal/service"
	"github.com/happytails/happytails/internal/utils"
	"github.com/happytails/happytails/models"
)

type adminRequest struct {
	FirstName      string `json:"nombre_completo"`
	LastName       string `json:"apellidos"`
	Phone          string `json:"telefono"`
	DocumentNumber string `json:"cedula"`
	Email          string `json:"email"`
	Password       string `json:"password"`
}

func (in adminRequest) toInput() service.AdminInput {
	return service.AdminInput{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Phone:          in.Phone,
		DocumentNumber: in.DocumentNumber,
		Email:          in.Email,
		Password:       in.Password,
	}
}

func (h *Handler) listAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.services.AccountService.ListAdmins(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "admin listing failed")
		return
	}

	_, _ = utils.WriteJSON(w, admins, http.StatusOK)
}

func (h *Handler) createAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	s, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	var req adminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.AccountService.CreateAdmin(ctx, s, req.toInput())
	if err != nil {
		writeServiceError(w, r, err, "admin creation failed")
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateAdmin(w http.ResponseWriter, r *http.Request) {
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

	var req adminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AccountService.UpdateAdmin(ctx, s, id, req.toInput()); err != nil {
		writeServiceError(w, r, err, "admin update failed")
		return
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "administrador actualizado"}, http.StatusOK)
}

func (h *Handler) deleteAdmin(w http.ResponseWriter, r *http.Request) {
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

	if err := h.services.AccountService.DeleteAdmin(ctx, s, id); err != nil {
		writeServiceError(w, r, err, "admin deletion failed")
		return
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "administrador eliminado"}, http.StatusOK)
}
