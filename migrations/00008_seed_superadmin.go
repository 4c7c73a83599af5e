// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The HappyTails Authors

package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"golang.org/x/crypto/bcrypt"
)

// Bootstrap credentials of the seeded superadmin. The password must be
// rotated right after the first login; every other path to the admin roles
// requires an already existing superadmin actor.
const (
	seedSuperadminEmail    = "root@administrador.com"
	seedSuperadminPassword = "SuperAdmin123!"
)

const insertSeedSuperadmin = `INSERT INTO users (user_uuid, username, first_name, last_name, phone, document_type, email, password_hash, role)
    VALUES ($1, 'root', 'Super', 'Admin', '', '', $2, $3, 'superadmin')
    ON CONFLICT (email) DO NOTHING;`

func init() {
	goose.AddMigrationContext(upSeedSuperadmin, downSeedSuperadmin)
}

// upSeedSuperadmin inserts the bootstrap superadmin account. The hash is
// computed at migration time so no password material lives in the repo as a
// reusable digest.
func upSeedSuperadmin(ctx context.Context, tx *sql.Tx) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedSuperadminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed superadmin: hashing password: %w", err)
	}

	if _, err := tx.ExecContext(ctx, insertSeedSuperadmin, uuid.NewString(), seedSuperadminEmail, string(hash)); err != nil {
		return fmt.Errorf("seed superadmin: %w", err)
	}

	return nil
}

func downSeedSuperadmin(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM users WHERE email = $1 AND role = 'superadmin';`, seedSuperadminEmail); err != nil {
		return fmt.Errorf("unseed superadmin: %w", err)
	}

	return nil
}
