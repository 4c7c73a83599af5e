// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The HappyTails Authors

package migrations

import (
	"context"
	"database/sql/driver"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	// goose talks to the mock without any expectations set, so the run fails
	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

// bcryptOf matches any bcrypt hash of the expected password.
type bcryptOf struct {
	password string
}

func (m bcryptOf) Match(v driver.Value) bool {
	hash, ok := v.(string)
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(m.password)) == nil
}

func TestSeedSuperadmin_InsertsBootstrapAccount(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(insertSeedSuperadmin)).
		WithArgs(sqlmock.AnyArg(), seedSuperadminEmail, bcryptOf{password: seedSuperadminPassword}).
		WillReturnResult(sqlmock.NewResult(1, 1))

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("failed to begin tx: %v", err)
	}

	if err := upSeedSuperadmin(context.Background(), tx); err != nil {
		t.Fatalf("upSeedSuperadmin returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSeedSuperadmin_InsertIsIdempotent(t *testing.T) {
	if !strings.Contains(insertSeedSuperadmin, "ON CONFLICT (email) DO NOTHING") {
		t.Error("seed insert must tolerate an already present superadmin")
	}
	if strings.Contains(insertSeedSuperadmin, "document_number") {
		t.Error("seed insert must leave document_number NULL")
	}
}
