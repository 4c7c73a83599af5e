// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The HappyTails Authors

package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/happytails/happytails/internal/logger"
	"github.com/happytails/happytails/internal/store"
	"github.com/happytails/happytails/models"
)

// notificationService implements [NotificationService]. The feed merges
// persisted notification rows with computed entries for pending reminders
// due within the lookahead window, newest first.
type notificationService struct {
	notificationRepository store.NotificationRepository
	reminderRepository     store.ReminderRepository
	logger                 *logger.Logger
}

// NewNotificationService constructs a [NotificationService].
func NewNotificationService(notifications store.NotificationRepository, reminders store.ReminderRepository, logger *logger.Logger) NotificationService {
	return &notificationService{
		notificationRepository: notifications,
		reminderRepository:     reminders,
		logger:                 logger,
	}
}

// Feed returns the merged notification feed of userID. Reminder-derived
// entries carry server-built message text including pet name, task type and
// due date.
func (s *notificationService) Feed(ctx context.Context, userID int64) ([]models.FeedEntry, error) {
	notifications, err := s.notificationRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	due, err := s.reminderRepository.ListDueReminders(ctx, userID)
	if err != nil {
		return nil, err
	}

	feed := make([]models.FeedEntry, 0, len(notifications)+len(due))
	for _, n := range notifications {
		read := n.Read
		feed = append(feed, models.FeedEntry{
			ID:      n.ID,
			Message: n.Message,
			Date:    n.CreatedAt,
			Kind:    "notificacion",
			Read:    &read,
		})
	}
	for _, d := range due {
		feed = append(feed, models.FeedEntry{
			ID:      d.ID,
			Message: fmt.Sprintf("%s: %s vence el %s", d.PetName, d.TypeName, d.DueDate.Format("02/01/2006")),
			Date:    d.DueDate,
			Kind:    "recordatorio",
			Status:  d.Status,
			Notes:   d.Notes,
		})
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Date.After(feed[j].Date)
	})

	return feed, nil
}

// Create persists one notification row.
func (s *notificationService) Create(ctx context.Context, n models.Notification) (models.Notification, error) {
	if n.UserID == 0 || n.Message == "" {
		return models.Notification{}, fmt.Errorf("%w: user and message are required", ErrInvalidDataProvided)
	}

	return s.notificationRepository.Create(ctx, n)
}

// MarkRead flags one notification of userID as read.
func (s *notificationService) MarkRead(ctx context.Context, id, userID int64) error {
	return s.notificationRepository.MarkRead(ctx, id, userID)
}
