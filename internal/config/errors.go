package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, a missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidSecurityConfigs indicates invalid security settings
	// (for example, an MFA key that is not 64 hex characters, or challenge
	// enforcement enabled without a signing key).
	ErrInvalidSecurityConfigs = errors.New("invalid security configuration")
)
