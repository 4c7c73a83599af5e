// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The HappyTails Authors

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/happytails/happytails/internal/config"
	"github.com/happytails/happytails/internal/logger"
	"github.com/happytails/happytails/internal/store"
	"github.com/happytails/happytails/models"
)

type reminderRepoMock struct {
	markOverdueFn func(ctx context.Context, now time.Time) (int64, error)
}

func (m *reminderRepoMock) ListReminders(context.Context) ([]models.Reminder, error) {
	return nil, nil
}
func (m *reminderRepoMock) ListRemindersByOwner(context.Context, int64) ([]models.Reminder, error) {
	return nil, nil
}
func (m *reminderRepoMock) GetReminder(context.Context, int64) (models.Reminder, error) {
	return models.Reminder{}, nil
}
func (m *reminderRepoMock) CreateReminder(_ context.Context, r models.Reminder) (models.Reminder, error) {
	return r, nil
}
func (m *reminderRepoMock) UpdateReminder(context.Context, int64, map[string]any) error { return nil }
func (m *reminderRepoMock) DeleteReminder(context.Context, int64) error                 { return nil }
func (m *reminderRepoMock) ListTypes(context.Context) ([]models.ReminderType, error) {
	return nil, nil
}
func (m *reminderRepoMock) ListDueReminders(context.Context, int64) ([]models.DueReminder, error) {
	return nil, nil
}
func (m *reminderRepoMock) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	return m.markOverdueFn(ctx, now)
}

var _ store.ReminderRepository = (*reminderRepoMock)(nil)

func TestSweeper_ZeroIntervalDisabled(t *testing.T) {
	repo := &reminderRepoMock{
		markOverdueFn: func(context.Context, time.Time) (int64, error) {
			t.Fatal("sweep must not run when the interval is zero")
			return 0, nil
		},
	}

	s := NewSweeper(repo, config.Workers{SweepInterval: 0}, logger.Nop())

	done := make(chan struct{})
	go func() {
		s.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return for a disabled sweeper")
	}
}

func TestSweeper_SweepsAndStopsOnCancel(t *testing.T) {
	var calls atomic.Int64
	repo := &reminderRepoMock{
		markOverdueFn: func(context.Context, time.Time) (int64, error) {
			calls.Add(1)
			return 2, nil
		},
	}

	s := NewSweeper(repo, config.Workers{SweepInterval: 5 * time.Millisecond}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	deadline := time.After(time.Second)
	for calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("expected at least 3 sweeps, got %d", calls.Load())
		case <-time.After(time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}
}

func TestSweeper_KeepsRunningAfterSweepError(t *testing.T) {
	var calls atomic.Int64
	repo := &reminderRepoMock{
		markOverdueFn: func(context.Context, time.Time) (int64, error) {
			calls.Add(1)
			return 0, context.DeadlineExceeded
		},
	}

	s := NewSweeper(repo, config.Workers{SweepInterval: 5 * time.Millisecond}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	deadline := time.After(time.Second)
	for calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("expected the sweeper to retry after an error, got %d calls", calls.Load())
		case <-time.After(time.Millisecond):
		}
	}
}
