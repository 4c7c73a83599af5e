// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The HappyTails Authors

package mfacrypt

import "errors"

var (
	// ErrMisconfiguredKey is returned when the configured key does not
	// decode to exactly 32 bytes. Fatal to the operation, not the process.
	ErrMisconfiguredKey = errors.New("MFA encryption key is misconfigured")

	// ErrDecryptionFailed is returned when an envelope cannot be opened:
	// malformed record, wrong key or corrupted ciphertext.
	ErrDecryptionFailed = errors.New("could not decrypt MFA secret")
)
