package store

import (
	"context"
	"fmt"

	"github.com/happytails/happytails/internal/logger"
	"github.com/happytails/happytails/models"
)

// activityRepository is the PostgreSQL-backed implementation of
// [ActivityRepository]. Inserts are fire-and-forget from the caller's point
// of view: an audit write failure never fails the triggering operation.
type activityRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewActivityRepository constructs an [ActivityRepository] backed by the
// provided database connection and logger.
func NewActivityRepository(db *DB, logger *logger.Logger) ActivityRepository {
	logger.Debug().Msg("creating activity repository")
	return &activityRepository{
		db:     db,
		logger: logger,
	}
}

// Insert appends one audit record. meta may be nil.
func (r *activityRepository) Insert(ctx context.Context, userID int64, action string, meta []byte) error {
	log := logger.FromContext(ctx)

	if len(meta) == 0 {
		meta = []byte("{}")
	}

	if _, err := r.db.ExecContext(ctx, insertActivity, userID, action, meta); err != nil {
		log.Err(err).Str("func", "*activityRepository.Insert").Msg("error: inserting activity record")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// ListByUser returns the most recent audit records of userID, newest first,
// capped at limit rows.
func (r *activityRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]models.ActivityEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listActivityByUser, userID, limit)
	if err != nil {
		log.Err(err).Str("func", "*activityRepository.ListByUser").Msg("error: querying activity records")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var entries []models.ActivityEntry
	for rows.Next() {
		var e models.ActivityEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Action, &e.Meta, &e.CreatedAt); err != nil {
			log.Err(err).Str("func", "*activityRepository.ListByUser").Msg("error: scanning activity row")
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
