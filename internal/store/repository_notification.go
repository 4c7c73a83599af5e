package store

import (
	"context"
	"fmt"

	"github.com/happytails/happytails/internal/logger"
	"github.com/happytails/happytails/models"
)

// notificationRepository is the PostgreSQL-backed implementation of
// [NotificationRepository].
type notificationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNotificationRepository constructs a [NotificationRepository] backed by
// the provided database connection and logger.
func NewNotificationRepository(db *DB, logger *logger.Logger) NotificationRepository {
	logger.Debug().Msg("creating notification repository")
	return &notificationRepository{
		db:     db,
		logger: logger,
	}
}

// ListByUser returns the persisted notifications of userID, newest first.
func (r *notificationRepository) ListByUser(ctx context.Context, userID int64) ([]models.Notification, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listNotificationsByUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*notificationRepository.ListByUser").Msg("error: querying notifications")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			log.Err(err).Str("func", "*notificationRepository.ListByUser").Msg("error: scanning notification row")
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// Create persists a new unread notification and returns it with
// server-assigned fields.
func (r *notificationRepository) Create(ctx context.Context, n models.Notification) (models.Notification, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createNotification, n.UserID, n.Message)

	var saved models.Notification
	if err := row.Scan(&saved.ID, &saved.UserID, &saved.Message, &saved.Read, &saved.CreatedAt); err != nil {
		log.Err(err).Str("func", "*notificationRepository.Create").Msg("error: inserting notification")
		return models.Notification{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// MarkRead flags one notification as read. The userID guard keeps users from
// touching each other's rows. Returns [ErrNotificationNotFound] when no row
// matched.
func (r *notificationRepository) MarkRead(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, markNotificationRead, id, userID)
	if err != nil {
		log.Err(err).Str("func", "*notificationRepository.MarkRead").Msg("error: executing update")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotificationNotFound
	}

	return nil
}
