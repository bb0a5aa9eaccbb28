package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/comparepco/comparepco/internal/pkg/logger"
	"github.com/comparepco/comparepco/internal/pkg/models"
	"github.com/comparepco/comparepco/services/bookings"
	"github.com/google/uuid"
)

// schedulerUC implements the bookings.SchedulerUC interface
type schedulerUC struct {
	cfg         *models.Config
	bookingRepo bookings.BookingRepo
	deadlineGW  bookings.DeadlineGW
	now         func() time.Time
}

// NewSchedulerUC creates the deadline scheduler
func NewSchedulerUC(
	cfg *models.Config,
	bookingRepo bookings.BookingRepo,
	deadlineGW bookings.DeadlineGW,
) bookings.SchedulerUC {
	return &schedulerUC{
		cfg:         cfg,
		bookingRepo: bookingRepo,
		deadlineGW:  deadlineGW,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// RunOnce publishes one deadline check per booking due within the reminder window.
// It returns 0 without error when another scheduler instance holds the lock.
func (s *schedulerUC) RunOnce(ctx context.Context) (int, error) {
	token := uuid.NewString()
	acquired, err := s.deadlineGW.AcquireSchedulerLock(ctx, token, s.cfg.Sweep.LockTTL)
	if err != nil {
		return 0, fmt.Errorf("failed to acquire scheduler lock: %w", err)
	}
	if !acquired {
		logger.Debug("Scheduler lock held elsewhere, skipping run")
		return 0, nil
	}
	defer func() {
		if err := s.deadlineGW.ReleaseSchedulerLock(context.Background(), token); err != nil {
			logger.Warn("Failed to release scheduler lock", logger.Err(err))
		}
	}()

	now := s.now()
	ids, err := s.bookingRepo.ListDueForSweep(ctx, now.Add(s.cfg.Booking.ReminderWindow), s.cfg.Sweep.BatchSize)
	if err != nil {
		return 0, err
	}

	published := 0
	for _, id := range ids {
		if err := s.deadlineGW.PublishDeadlineCheck(ctx, &models.DeadlineCheck{BookingID: id, RequestedAt: now}); err != nil {
			logger.Error("Failed to publish deadline check", logger.BookingID(id), logger.Err(err))
			continue
		}
		published++
	}

	logger.Info("Deadline checks published",
		logger.Int("due", len(ids)),
		logger.Int("published", published))
	return published, nil
}

// Run calls RunOnce every sweep interval until the context is cancelled
func (s *schedulerUC) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.cfg.Sweep.Interval)
	defer ticker.Stop()

	for {
		if _, err := s.RunOnce(ctx); err != nil {
			logger.Error("Deadline scheduler run failed", logger.Err(err))
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
