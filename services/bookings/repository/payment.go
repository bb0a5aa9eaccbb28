package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/comparepco/comparepco/internal/pkg/apperror"
	"github.com/comparepco/comparepco/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

const instructionColumns = `
	id, booking_id, driver_id, partner_id, amount, type, method, status,
	frequency, next_due_date, reason, created_at, updated_at`

func insertInstructions(ctx context.Context, tx *sqlx.Tx, instructions []*models.PaymentInstruction) error {
	for _, in := range instructions {
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO payment_instructions (`+instructionColumns+`
			) VALUES (
				:id, :booking_id, :driver_id, :partner_id, :amount, :type, :method, :status,
				:frequency, :next_due_date, :reason, :created_at, :updated_at
			)`, in)
		if err != nil {
			return fmt.Errorf("failed to insert %s instruction: %w", in.Type, err)
		}
	}
	return nil
}

// ListInstructions returns every payment instruction of a booking, oldest first
func (r *BookingRepo) ListInstructions(ctx context.Context, bookingID string) ([]*models.PaymentInstruction, error) {
	var instructions []*models.PaymentInstruction
	err := r.db.SelectContext(ctx, &instructions,
		`SELECT `+instructionColumns+` FROM payment_instructions WHERE booking_id = $1 ORDER BY created_at`,
		bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment instructions: %w", err)
	}
	return instructions, nil
}

// GetInstruction retrieves a payment instruction by ID
func (r *BookingRepo) GetInstruction(ctx context.Context, instructionID string) (*models.PaymentInstruction, error) {
	var in models.PaymentInstruction
	err := r.db.GetContext(ctx, &in,
		`SELECT `+instructionColumns+` FROM payment_instructions WHERE id = $1`, instructionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("payment instruction %s not found", instructionID)
		}
		return nil, fmt.Errorf("failed to get payment instruction: %w", err)
	}
	return &in, nil
}

// ConfirmPayment advances a sent manual transfer, records the paid week and writes the booking change in one transaction
func (r *BookingRepo) ConfirmPayment(ctx context.Context, c *models.InstructionConfirmation, t *models.Transition) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE payment_instructions
		SET status = $1, next_due_date = COALESCE($2, next_due_date), updated_at = $3
		WHERE id = $4 AND status = $5`,
		c.NewStatus, c.NextDueDate, time.Now().UTC(), c.InstructionID, models.InstructionStatusSent)
	if err != nil {
		return fmt.Errorf("failed to confirm payment instruction: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to confirm payment instruction: %w", err)
	}
	if n == 0 {
		return apperror.Conflict("payment not marked sent yet")
	}

	if c.Received != nil {
		if err := insertInstructions(ctx, tx, []*models.PaymentInstruction{c.Received}); err != nil {
			return err
		}
	}

	if t != nil {
		if err := applyTransition(ctx, tx, t); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit payment confirmation: %w", err)
	}
	return nil
}
