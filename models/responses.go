// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The HappyTails Authors

package models

// LoginResponse is the step-1 login reply. When MFA is required no cookie is
// issued; Challenge carries the short-lived correlation token for step 2.
type LoginResponse struct {
	OK          bool   `json:"ok,omitempty"`
	MfaRequired bool   `json:"mfaRequired,omitempty"`
	UserID      int64  `json:"userId"`
	Role        Role   `json:"rol"`
	Challenge   string `json:"challenge,omitempty"`
	Message     string `json:"message,omitempty"`
}

// MfaSetupResponse carries the provisioning URI for an authenticator app.
// The plaintext seed exists only inside this URI, never at rest.
type MfaSetupResponse struct {
	OtpauthURL string `json:"otpauthUrl"`
}

// MfaVerifySetupResponse confirms that MFA was enabled for the account.
type MfaVerifySetupResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	Config  MfaConfig `json:"config,omitempty"`
}

// ErrorResponse is the uniform error body of the API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the uniform confirmation body of mutating endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}
