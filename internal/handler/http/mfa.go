// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The HappyTails Authors

package http

import (
	"encoding/json"
	"net/http"

	"github.com/happytails/happytails/internal/logger"
	"github.com/happytails/happytails/internal/utils"
	"github.com/happytails/happytails/models"
)

type mfaSetupRequest struct {
	UserUUID string `json:"user_uuid"`
}

type mfaVerifySetupRequest struct {
	UserUUID string `json:"user_uuid"`
	Token    string `json:"token"`
}

// mfaSetup provisions a fresh TOTP seed and answers with the otpauth URL.
// The seed travels only inside that URL; storage holds the encrypted
// envelope with enabled=false until a code is verified.
func (h *Handler) mfaSetup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req mfaSetupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	url, err := h.services.MfaService.Setup(ctx, req.UserUUID)
	if err != nil {
		writeServiceError(w, r, err, "mfa setup failed")
		return
	}

	_, _ = utils.WriteJSON(w, models.MfaSetupResponse{OtpauthURL: url}, http.StatusOK)
}

func (h *Handler) mfaVerifySetup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req mfaVerifySetupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.MfaService.VerifySetup(ctx, req.UserUUID, req.Token); err != nil {
		writeServiceError(w, r, err, "mfa setup verification failed")
		return
	}

	_, _ = utils.WriteJSON(w, models.MfaVerifySetupResponse{
		Success: true,
		Message: "MFA habilitado correctamente",
	}, http.StatusOK)
}
