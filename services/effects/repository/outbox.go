package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/comparepco/comparepco/internal/pkg/models"
)

// ClaimPending pushes next_attempt_at past the lease for the rows it returns.
// A relay that crashes mid-batch leaves them to be picked up again once the lease expires.
// RETURNING carries no order, so callers sort the batch themselves.
func (r *OutboxRepo) ClaimPending(ctx context.Context, limit int, lease time.Duration) ([]*models.Effect, error) {
	now := time.Now().UTC()

	var rows []*models.Effect
	err := r.db.SelectContext(ctx, &rows, `
		UPDATE booking_effects
		SET next_attempt_at = $1
		WHERE id IN (
			SELECT id FROM booking_effects
			WHERE status = $2 AND next_attempt_at <= $3
			ORDER BY created_at, seq
			FOR UPDATE SKIP LOCKED
			LIMIT $4
		)
		RETURNING id, seq, booking_id, kind, payload, status, attempts, last_error,
			next_attempt_at, created_at, dispatched_at`,
		now.Add(lease), models.EffectStatusPending, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to claim effects: %w", err)
	}

	return rows, nil
}

func (r *OutboxRepo) MarkDispatched(ctx context.Context, effectID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE booking_effects
		SET status = $1, dispatched_at = $2, last_error = NULL
		WHERE id = $3`,
		models.EffectStatusDispatched, time.Now().UTC(), effectID)
	if err != nil {
		return fmt.Errorf("failed to mark effect %s dispatched: %w", effectID, err)
	}
	return nil
}

// Reschedule records a failed attempt and when to try again
func (r *OutboxRepo) Reschedule(ctx context.Context, effectID string, attempts int, next time.Time, lastErr string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE booking_effects
		SET attempts = $1, next_attempt_at = $2, last_error = $3
		WHERE id = $4 AND status = $5`,
		attempts, next, lastErr, effectID, models.EffectStatusPending)
	if err != nil {
		return fmt.Errorf("failed to reschedule effect %s: %w", effectID, err)
	}
	return nil
}

func (r *OutboxRepo) MarkDead(ctx context.Context, effectID string, attempts int, lastErr string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE booking_effects
		SET status = $1, attempts = $2, last_error = $3
		WHERE id = $4`,
		models.EffectStatusDead, attempts, lastErr, effectID)
	if err != nil {
		return fmt.Errorf("failed to mark effect %s dead: %w", effectID, err)
	}
	return nil
}
