// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The HappyTails Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/happytails/happytails/internal/logger"
	"github.com/happytails/happytails/models"
)

// mfaRepository is the PostgreSQL-backed implementation of [MfaRepository].
// One row per user; the stored secret is the encrypted envelope, never the
// plaintext seed.
type mfaRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMfaRepository constructs a [MfaRepository] backed by the provided
// database connection and logger.
func NewMfaRepository(db *DB, logger *logger.Logger) MfaRepository {
	logger.Debug().Msg("creating mfa repository")
	return &mfaRepository{
		db:     db,
		logger: logger,
	}
}

// GetConfig retrieves the TOTP configuration of userID.
// Returns [ErrMfaConfigNotFound] when the account never started setup.
func (r *mfaRepository) GetConfig(ctx context.Context, userID int64) (models.MfaConfig, error) {
	log := logger.FromContext(ctx)

	var cfg models.MfaConfig
	row := r.db.QueryRowContext(ctx, getMfaConfig, userID)
	if err := row.Scan(&cfg.UserID, &cfg.Secret, &cfg.Enabled, &cfg.VerifiedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MfaConfig{}, ErrMfaConfigNotFound
		}
		log.Err(err).Str("func", "*mfaRepository.GetConfig").Msg("error: scanning mfa config")
		return models.MfaConfig{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return cfg, nil
}

// UpsertSecret stores a freshly generated encrypted secret for userID.
// Re-running setup overwrites the previous secret and drops the enabled
// flag, so a verified code against the new secret is required again.
func (r *mfaRepository) UpsertSecret(ctx context.Context, userID int64, encryptedSecret string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, upsertMfaSecret, userID, encryptedSecret); err != nil {
		log.Err(err).Str("func", "*mfaRepository.UpsertSecret").Msg("error: upserting mfa secret")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// Enable flips the configuration of userID to enabled and stamps the
// verification time. Returns [ErrMfaConfigNotFound] when no row exists.
func (r *mfaRepository) Enable(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, enableMfa, userID)
	if err != nil {
		log.Err(err).Str("func", "*mfaRepository.Enable").Msg("error: enabling mfa")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrMfaConfigNotFound
	}

	return nil
}
