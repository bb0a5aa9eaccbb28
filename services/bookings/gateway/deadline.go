package gateway

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/comparepco/comparepco/internal/pkg/constants"
	"github.com/comparepco/comparepco/internal/pkg/logger"
	"github.com/comparepco/comparepco/internal/pkg/models"
)

func (g *DeadlineGW) AcquireSchedulerLock(ctx context.Context, token string, ttl time.Duration) (bool, error) {
	return g.redisClient.AcquireLock(ctx, constants.KeySchedulerLock, token, ttl)
}

func (g *DeadlineGW) ReleaseSchedulerLock(ctx context.Context, token string) error {
	return g.redisClient.ReleaseLock(ctx, constants.KeySchedulerLock, token)
}

// PublishDeadlineCheck hands one booking to the bookings service queue group.
// If the publish fails it calls the internal check-deadlines route instead.
func (g *DeadlineGW) PublishDeadlineCheck(ctx context.Context, check *models.DeadlineCheck) error {
	err := g.natsClient.PublishJSON(constants.SubjectDeadlineCheck, check)
	if err == nil || g.bookingsAPI == nil {
		return err
	}

	logger.WarnCtx(ctx, "Deadline check publish failed, calling bookings service directly",
		logger.BookingID(check.BookingID),
		logger.Err(err))

	endpoint := fmt.Sprintf("/internal/bookings/%s/check-deadlines", url.PathEscape(check.BookingID))
	if err := g.bookingsAPI.PostJSON(ctx, endpoint, nil, nil); err != nil {
		return fmt.Errorf("deadline check for %s not delivered: %w", check.BookingID, err)
	}
	return nil
}
