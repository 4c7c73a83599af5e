package http

import (
	"encoding/json"
	"net/http"

	"github.com/happytails/happytails/internal/logger"
	"github.com/happytails/happytails/internal/service"
	"github.com/happytails/happytails/internal/session"
	"github.com/happytails/happytails/internal/utils"
	"github.com/happytails/happytails/models"
)

type registerRequest struct {
	Username       string `json:"username"`
	FirstName      string `json:"nombre_completo"`
	LastName       string `json:"apellidos"`
	Phone          string `json:"telefono"`
	DocumentType   string `json:"tipo_documento"`
	DocumentNumber string `json:"cedula"`
	Email          string `json:"email"`
	Password       string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type mfaLoginVerifyRequest struct {
	UserID    int64  `json:"userId"`
	Token     string `json:"token"`
	Challenge string `json:"challenge"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registered, err := h.services.AuthService.Register(ctx, service.RegisterInput{
		Username:       req.Username,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		DocumentType:   req.DocumentType,
		DocumentNumber: req.DocumentNumber,
		Email:          req.Email,
		Password:       req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err, "user registration failed")
		return
	}

	log.Debug().Int64("id", registered.ID).Msg("user registered")

	_, _ = utils.WriteJSON(w, registered, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err, "login failed")
		return
	}

	if result.MfaRequired {
		// no cookie until step 2 verifies a code
		_, _ = utils.WriteJSON(w, models.LoginResponse{
			MfaRequired: true,
			UserID:      result.User.ID,
			Role:        result.User.Role,
			Challenge:   result.Challenge,
		}, http.StatusOK)
		return
	}

	h.issueSession(w, r, result.User)
}

func (h *Handler) mfaLoginVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req mfaLoginVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.VerifyMfaLogin(ctx, req.UserID, req.Token, req.Challenge)
	if err != nil {
		writeServiceError(w, r, err, "mfa login verification failed")
		return
	}

	h.issueSession(w, r, user)
}

// issueSession encodes the identity snapshot, sets the cookie and answers
// with the authenticated login body.
func (h *Handler) issueSession(w http.ResponseWriter, r *http.Request, user models.User) {
	log := logger.FromRequest(r)

	value, err := session.Encode(models.SessionFromUser(user))
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("session encoding failed")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	session.SetCookie(w, value)
	_, _ = utils.WriteJSON(w, models.LoginResponse{
		OK:     true,
		UserID: user.ID,
		Role:   user.Role,
	}, http.StatusOK)
}

// me answers with a fresh storage snapshot of the session's account.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	s, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	user, err := h.services.AuthService.GetUserByID(ctx, s.ID)
	if err != nil {
		writeServiceError(w, r, err, "account lookup failed")
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	session.ClearCookie(w)
	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "sesión cerrada"}, http.StatusOK)
}
