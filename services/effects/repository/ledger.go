package repository

import (
	"context"
	"fmt"

	"github.com/comparepco/comparepco/internal/pkg/models"
)

// Ledger rows carry ids minted when the effect was enqueued, so a redelivered effect is a no-op.

func (r *OutboxRepo) InsertHistory(ctx context.Context, entry *models.BookingHistoryEntry) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO booking_history (
			id, booking_id, action, performed_by, performed_by_type, details, description, created_at
		) VALUES (
			:id, :booking_id, :action, :performed_by, :performed_by_type, :details, :description, :created_at
		)
		ON CONFLICT (id) DO NOTHING`, entry)
	if err != nil {
		return fmt.Errorf("failed to insert history %s: %w", entry.ID, err)
	}
	return nil
}

func (r *OutboxRepo) InsertTransaction(ctx context.Context, tx *models.Transaction) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO transactions (
			id, booking_id, partner_id, driver_id, type, category, amount, net_amount,
			platform_fee, processing_fee, status, source, description, created_at
		) VALUES (
			:id, :booking_id, :partner_id, :driver_id, :type, :category, :amount, :net_amount,
			:platform_fee, :processing_fee, :status, :source, :description, :created_at
		)
		ON CONFLICT (id) DO NOTHING`, tx)
	if err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", tx.ID, err)
	}
	return nil
}
