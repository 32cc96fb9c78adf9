package scheduler

import (
	"context"
	"time"

	"github.com/coworkly/SpaceBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type reservationReminder interface {
	RemindUpcoming(ctx context.Context, within time.Duration) ([]*domain.Reservation, error)
}

// Scheduler periodically flags reservations that start soon and hands them
// to the service layer for reminder delivery.
type Scheduler struct {
	reservationService reservationReminder
	interval           time.Duration
	reminderWindow     time.Duration
	logger             logger.Logger
}

func New(
	reservationService reservationReminder,
	interval time.Duration,
	reminderWindow time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reservationService: reservationService,
		interval:           interval,
		reminderWindow:     reminderWindow,
		logger:             logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
		logger.Duration("reminder_window", s.reminderWindow),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	reminded, err := s.reservationService.RemindUpcoming(ctx, s.reminderWindow)
	if err != nil {
		s.logger.Error("failed to remind upcoming reservations",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range reminded {
		s.logger.Info("reservation reminder sent",
			logger.String("reservation_id", r.ID),
			logger.String("user_id", r.UserID),
			logger.String("space_id", r.SpaceID),
		)
	}
}
