package effects

import (
	"context"

	"github.com/comparepco/comparepco/internal/pkg/models"
)

// EffectGW delivers effects that leave the database
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/comparepco/comparepco/services/effects EffectGW
type EffectGW interface {
	// SaveNotification stores the notification in Supabase; repeated calls with the same id are harmless
	SaveNotification(ctx context.Context, n *models.Notification) error
	PublishNotification(ctx context.Context, n *models.Notification) error
	PublishEvent(ctx context.Context, ev *models.BookingEvent) error
}
