// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The HappyTails Authors

package config

import "encoding/hex"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The MFA encryption key is only checked when present: an empty key is
// allowed here and triggers the insecure-fallback warning path at codec
// construction time instead.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if key := cfg.Security.MfaEncryptionKey; key != "" {
		raw, err := hex.DecodeString(key)
		if err != nil || len(raw) != 32 {
			return ErrInvalidSecurityConfigs
		}
	}

	if cfg.Security.RequireMfaChallenge && cfg.Security.ChallengeSignKey == "" {
		return ErrInvalidSecurityConfigs
	}

	return nil
}
