package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/happytails/happytails/internal/config"
	"github.com/happytails/happytails/internal/logger"
	"github.com/happytails/happytails/migrations"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB wraps the shared *sql.DB connection pool. It is constructed once at
// startup and passed into every repository; no package-level singleton
// exists.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectPostgres opens the PostgreSQL connection pool described by cfg,
// configures pool limits and verifies the connection with a ping.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}

// Migrate applies all embedded goose migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// postgresError extracts the PostgreSQL error code from a driver error, or
// returns the empty string for non-postgres failures.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// uniqueViolationSentinel maps a users-table unique violation to the
// field-specific sentinel by the violated constraint name.
func uniqueViolationSentinel(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ErrEmailAlreadyExists
	}

	switch pgErr.ConstraintName {
	case "users_username_key":
		return ErrUsernameAlreadyExists
	case "users_document_number_key":
		return ErrDocumentAlreadyExists
	default:
		return ErrEmailAlreadyExists
	}
}

// foreignKeySentinel maps a reminders-table foreign key violation to the
// sentinel of the missing referenced row.
func foreignKeySentinel(err error) error {
	if postgresError(err) != pgerrcode.ForeignKeyViolation {
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	var pgErr *pgconn.PgError
	_ = errors.As(err, &pgErr)
	switch pgErr.ConstraintName {
	case "reminders_pet_id_fkey":
		return ErrPetNotFound
	case "reminders_type_id_fkey":
		return ErrReminderTypeNotFound
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}
