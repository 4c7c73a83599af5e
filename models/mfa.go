// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The HappyTails Authors

package models

import "time"

// MfaConfig is the one-to-one TOTP configuration of an account.
//
// Secret holds the encrypted envelope produced by the MFA secret codec, never
// the plaintext seed. Enabled flips to true only after the owner verified a
// fresh code during setup; Enabled implies VerifiedAt is non-nil and the
// stored secret decrypts successfully.
type MfaConfig struct {
	UserID     int64      `json:"id_usuario"`
	Secret     string     `json:"-"`
	Enabled    bool       `json:"mfa_enabled"`
	VerifiedAt *time.Time `json:"mfa_verified_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the MfaConfig model.
func (m MfaConfig) TableName() string {
	return "mfa_configs"
}
