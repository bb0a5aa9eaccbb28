package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/comparepco/comparepco/internal/pkg/constants"
)

const minReminderTTL = time.Minute

// MarkReminderSent sets a marker that lives until the deadline. It returns false when one already exists.
func (g *BookingGW) MarkReminderSent(ctx context.Context, bookingID, kind string, until time.Time) (bool, error) {
	ttl := time.Until(until)
	if ttl < minReminderTTL {
		ttl = minReminderTTL
	}

	key := fmt.Sprintf(constants.KeyReminderSent, bookingID, kind)
	set, err := g.redisClient.SetNX(ctx, key, time.Now().UTC().Format(time.RFC3339), ttl)
	if err != nil {
		return false, fmt.Errorf("failed to set reminder marker: %w", err)
	}
	return set, nil
}
