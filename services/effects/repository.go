package effects

import (
	"context"
	"time"

	"github.com/comparepco/comparepco/internal/pkg/models"
)

// OutboxRepo defines access to the booking_effects outbox and the ledger tables it feeds
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/comparepco/comparepco/services/effects OutboxRepo
type OutboxRepo interface {
	// ClaimPending leases up to limit due rows so other relays skip them until the lease ends
	ClaimPending(ctx context.Context, limit int, lease time.Duration) ([]*models.Effect, error)
	MarkDispatched(ctx context.Context, effectID string) error
	Reschedule(ctx context.Context, effectID string, attempts int, next time.Time, lastErr string) error
	MarkDead(ctx context.Context, effectID string, attempts int, lastErr string) error

	InsertHistory(ctx context.Context, entry *models.BookingHistoryEntry) error
	InsertTransaction(ctx context.Context, tx *models.Transaction) error
}
