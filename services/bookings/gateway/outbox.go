package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/comparepco/comparepco/internal/pkg/models"
	nrpkg "github.com/comparepco/comparepco/internal/pkg/newrelic"
	"github.com/google/uuid"
)

// EnqueueEffects appends the effects of one operation to booking_effects in a single insert
func (g *BookingGW) EnqueueEffects(ctx context.Context, bookingID string, effects *models.Effects) error {
	if effects == nil || effects.Len() == 0 {
		return nil
	}

	rows, err := buildEffectRows(bookingID, effects, time.Now().UTC())
	if err != nil {
		return err
	}

	return nrpkg.WithSegment(ctx, "Outbox.Enqueue", func() error {
		_, err := g.db.NamedExecContext(ctx, `
			INSERT INTO booking_effects (
				id, booking_id, kind, payload, status, attempts, next_attempt_at, created_at
			) VALUES (
				:id, :booking_id, :kind, :payload, :status, :attempts, :next_attempt_at, :created_at
			)`, rows)
		if err != nil {
			return fmt.Errorf("failed to enqueue %d effects: %w", len(rows), err)
		}
		return nil
	})
}

func buildEffectRows(bookingID string, effects *models.Effects, now time.Time) ([]*models.Effect, error) {
	rows := make([]*models.Effect, 0, effects.Len())
	add := func(kind models.EffectKind, v interface{}) error {
		payload, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal %s effect: %w", kind, err)
		}
		rows = append(rows, &models.Effect{
			ID:            uuid.NewString(),
			BookingID:     bookingID,
			Kind:          kind,
			Payload:       payload,
			Status:        models.EffectStatusPending,
			NextAttemptAt: now,
			CreatedAt:     now,
		})
		return nil
	}

	// history first so the audit trail lands before anything announces the change
	for _, h := range effects.History {
		if err := add(models.EffectHistory, h); err != nil {
			return nil, err
		}
	}
	for _, t := range effects.Transactions {
		if err := add(models.EffectTransaction, t); err != nil {
			return nil, err
		}
	}
	for _, n := range effects.Notifications {
		if err := add(models.EffectNotification, n); err != nil {
			return nil, err
		}
	}
	for _, ev := range effects.Events {
		if err := add(models.EffectEvent, ev); err != nil {
			return nil, err
		}
	}
	return rows, nil
}
