package gateway

import (
	"context"
	"fmt"

	"github.com/comparepco/comparepco/internal/pkg/constants"
	"github.com/comparepco/comparepco/internal/pkg/models"
	nrpkg "github.com/comparepco/comparepco/internal/pkg/newrelic"
)

const notificationsTable = "notifications"

// SaveNotification upserts on id so a replayed effect does not notify twice
func (g *EffectGW) SaveNotification(ctx context.Context, n *models.Notification) error {
	return nrpkg.WithExternalSegment(ctx, "supabase", "upsert "+notificationsTable, g.cfg.Supabase.URL, func() error {
		_, _, err := g.store.From(notificationsTable).
			Upsert(n, "id", "minimal", "").
			Execute()
		if err != nil {
			return fmt.Errorf("failed to save notification %s: %w", n.ID, err)
		}
		return nil
	})
}

// PublishNotification lets realtime consumers push the notification to the recipient
func (g *EffectGW) PublishNotification(ctx context.Context, n *models.Notification) error {
	return nrpkg.WithMessageSegment(ctx, constants.SubjectNotificationCreated, func() error {
		return g.natsClient.PublishJSON(constants.SubjectNotificationCreated, n)
	})
}
