package bookings

import (
	"context"
	"time"

	"github.com/comparepco/comparepco/internal/pkg/models"
)

// BookingGW defines the outbound side effects of the booking service
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/comparepco/comparepco/services/bookings BookingGW
type BookingGW interface {
	// EnqueueEffects appends history, ledger, notification and event rows to the outbox
	EnqueueEffects(ctx context.Context, bookingID string, effects *models.Effects) error
	RequestRefund(ctx context.Context, req *models.RefundRequest) error
	// MarkReminderSent returns true the first time it is called for a booking and kind until expiry
	MarkReminderSent(ctx context.Context, bookingID, kind string, until time.Time) (bool, error)
}

// DeadlineGW is used by the scheduler to coordinate and fan out deadline checks
//go:generate mockgen -destination=mocks/mock_deadline_gateway.go -package=mocks github.com/comparepco/comparepco/services/bookings DeadlineGW
type DeadlineGW interface {
	AcquireSchedulerLock(ctx context.Context, token string, ttl time.Duration) (bool, error)
	ReleaseSchedulerLock(ctx context.Context, token string) error
	PublishDeadlineCheck(ctx context.Context, check *models.DeadlineCheck) error
}
