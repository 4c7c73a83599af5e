package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/happytails/happytails/internal/logger"
	"github.com/happytails/happytails/internal/service"
	"github.com/happytails/happytails/internal/utils"
	"github.com/happytails/happytails/models"
)

type createUserRequest struct {
	registerRequest
	Role models.Role `json:"rol"`
}

type updateUserRequest struct {
	Username  *string      `json:"username"`
	FirstName *string      `json:"nombre_completo"`
	LastName  *string      `json:"apellidos"`
	Email     *string      `json:"email"`
	Role      *models.Role `json:"rol"`
	Password  *string      `json:"password"`
}

// listUsers answers with the admin user report: one row per account with
// pet and adoption counters.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	reports, err := h.services.AccountService.ListUserReports(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "user report failed")
		return
	}

	_, _ = utils.WriteJSON(w, reports, http.StatusOK)
}

// adminStats answers with the platform account totals per role.
func (h *Handler) adminStats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.services.AccountService.CountUsersByRole(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "role count failed")
		return
	}

	_, _ = utils.WriteJSON(w, counts, http.StatusOK)
}

// userActivity answers with the recent audit records of one account,
// newest first. ?limit= caps the page.
func (h *Handler) userActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.WriteError(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	entries, err := h.services.AccountService.UserActivity(r.Context(), id, limit)
	if err != nil {
		writeServiceError(w, r, err, "activity listing failed")
		return
	}

	_, _ = utils.WriteJSON(w, entries, http.StatusOK)
}

// getUserDetails answers with the full inspection view of one account.
func (h *Handler) getUserDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	details, err := h.services.AccountService.GetUserDetails(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "user details failed")
		return
	}

	_, _ = utils.WriteJSON(w, details, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	s, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	created, err := h.services.AccountService.CreateUser(ctx, s, service.RegisterInput{
		Username:       req.Username,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		DocumentType:   req.DocumentType,
		DocumentNumber: req.DocumentNumber,
		Email:          req.Email,
		Password:       req.Password,
	}, role)
	if err != nil {
		writeServiceError(w, r, err, "admin user creation failed")
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
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

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	err := h.services.AccountService.UpdateUser(ctx, s, id, service.UserUpdateInput{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Role:      req.Role,
		Password:  req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err, "admin user update failed")
		return
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "usuario actualizado"}, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
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

	if err := h.services.AccountService.DeleteUser(ctx, s, id); err != nil {
		writeServiceError(w, r, err, "admin user deletion failed")
		return
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "usuario eliminado"}, http.StatusOK)
}

// listAdoptionRequests answers with every filed adoption request, or only
// those of the listing named by ?adoptionId=.
func (h *Handler) listAdoptionRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var requests []models.AdoptionRequest
	var err error
	if raw := r.URL.Query().Get("adoptionId"); raw != "" {
		adoptionID, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil || adoptionID <= 0 {
			utils.WriteError(w, "invalid adoptionId", http.StatusBadRequest)
			return
		}
		requests, err = h.services.AdoptionService.ListRequestsByAdoption(ctx, adoptionID)
	} else {
		requests, err = h.services.AdoptionService.ListRequests(ctx)
	}
	if err != nil {
		writeServiceError(w, r, err, "adoption request listing failed")
		return
	}

	_, _ = utils.WriteJSON(w, requests, http.StatusOK)
}

// setAdoptionRequestStatus moves a request to the state named by ?estado=.
func (h *Handler) setAdoptionRequestStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	status := r.URL.Query().Get("estado")
	if err := h.services.AdoptionService.SetRequestStatus(r.Context(), id, status); err != nil {
		writeServiceError(w, r, err, "adoption request status change failed")
		return
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "solicitud actualizada"}, http.StatusOK)
}

func (h *Handler) deleteAdoptionRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.services.AdoptionService.DeleteRequest(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "adoption request deletion failed")
		return
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "solicitud eliminada"}, http.StatusOK)
}
