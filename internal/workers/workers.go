// Package workers contains the background processes that run alongside the
// HTTP server.
package workers

import (
	"context"
	"time"

	"github.com/happytails/happytails/internal/config"
	"github.com/happytails/happytails/internal/logger"
	"github.com/happytails/happytails/internal/store"
)

// Sweeper periodically flips pending reminders whose due date has passed to
// the overdue status. A zero sweep interval disables it.
type Sweeper struct {
	reminders store.ReminderRepository
	interval  time.Duration
	logger    *logger.Logger
}

func NewSweeper(reminders store.ReminderRepository, cfg config.Workers, logger *logger.Logger) *Sweeper {
	logger.Debug().Msg("creating reminder sweeper")
	return &Sweeper{
		reminders: reminders,
		interval:  cfg.SweepInterval,
		logger:    logger,
	}
}

// Run blocks until ctx is cancelled, sweeping once immediately and then on
// every interval tick.
func (s *Sweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Info().Msg("reminder sweeper disabled")
		return
	}

	s.logger.Info().Dur("interval", s.interval).Msg("reminder sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("reminder sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	swept, err := s.reminders.MarkOverdue(ctx, time.Now())
	if err != nil {
		s.logger.Err(err).Str("func", "*Sweeper.sweep").Msg("marking overdue reminders")
		return
	}
	if swept > 0 {
		s.logger.Info().Int64("swept", swept).Msg("reminders marked overdue")
	}
}
