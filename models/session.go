// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The HappyTails Authors

package models

// Session is the identity snapshot carried in the ht_session cookie.
//
// The payload is encoded reversibly (base64url JSON) without a message
// authentication code, so its content is client-readable and client-forgeable.
// It is a bearer token of convenience, reconstructed by decoding on each
// request, never persisted server-side.
type Session struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Role      Role   `json:"rol"`
	FirstName string `json:"nombre"`
	LastName  string `json:"apellidos"`
}

// FromUser builds the session snapshot issued at login time.
func SessionFromUser(u User) Session {
	return Session{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
