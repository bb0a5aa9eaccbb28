package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/comparepco/comparepco/internal/pkg/apperror"
	"github.com/comparepco/comparepco/internal/pkg/models"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const bookingColumns = `
	id, driver_id, partner_id, vehicle_id,
	start_date, end_date, created_at, updated_at,
	partner_acceptance_deadline, payment_deadline, insurance_upload_deadline,
	partner_response_at, activated_at, completed_at, cancelled_at, last_payment_date,
	weekly_rate, deposit_amount, total_amount, final_amount, outstanding_amount,
	payment_method, payment_status, status,
	insurance_required, partner_provides_insurance, requires_document_verification,
	driver_insurance_valid, document_verification_status,
	rejection_reason, partner_response_time_minutes, activated_trigger,
	finished_by, finished_by_type, final_notes, final_mileage, final_fuel_level,
	cancellation_reason, cancel_type, refund_amount, released_documents,
	driver_name, driver_email, partner_company_name, partner_email,
	vehicle_make, vehicle_model, vehicle_registration`

// sweepableStatuses are checked against end_date for overdue detection
var sweepableStatuses = []string{
	string(models.BookingStatusActive),
	string(models.BookingStatusInProgress),
}

// CreateBooking reserves the vehicle and inserts the booking with its payment instructions
func (r *BookingRepo) CreateBooking(ctx context.Context, booking *models.Booking, instructions []*models.PaymentInstruction) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE vehicles
		SET status = $1, current_booking_id = $2
		WHERE id = $3 AND status = $4`,
		models.VehicleStatusBooked, booking.ID, booking.VehicleID, models.VehicleStatusAvailable)
	if err != nil {
		return fmt.Errorf("failed to reserve vehicle: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("failed to reserve vehicle: %w", err)
	} else if n == 0 {
		return apperror.Conflict("vehicle %s is not available", booking.VehicleID)
	}

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO bookings (`+bookingColumns+`
		) VALUES (
			:id, :driver_id, :partner_id, :vehicle_id,
			:start_date, :end_date, :created_at, :updated_at,
			:partner_acceptance_deadline, :payment_deadline, :insurance_upload_deadline,
			:partner_response_at, :activated_at, :completed_at, :cancelled_at, :last_payment_date,
			:weekly_rate, :deposit_amount, :total_amount, :final_amount, :outstanding_amount,
			:payment_method, :payment_status, :status,
			:insurance_required, :partner_provides_insurance, :requires_document_verification,
			:driver_insurance_valid, :document_verification_status,
			:rejection_reason, :partner_response_time_minutes, :activated_trigger,
			:finished_by, :finished_by_type, :final_notes, :final_mileage, :final_fuel_level,
			:cancellation_reason, :cancel_type, :refund_amount, :released_documents,
			:driver_name, :driver_email, :partner_company_name, :partner_email,
			:vehicle_make, :vehicle_model, :vehicle_registration
		)`, booking)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	if err := insertInstructions(ctx, tx, instructions); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit booking: %w", err)
	}
	return nil
}

// GetBooking retrieves a booking by ID
func (r *BookingRepo) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.GetContext(ctx, &booking, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("booking %s not found", bookingID)
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &booking, nil
}

// ApplyTransition performs the conditional status update together with its vehicle and instruction writes
func (r *BookingRepo) ApplyTransition(ctx context.Context, t *models.Transition) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := applyTransition(ctx, tx, t); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transition: %w", err)
	}
	return nil
}

func applyTransition(ctx context.Context, tx *sqlx.Tx, t *models.Transition) error {
	now := time.Now().UTC()
	sets := []string{"status = $1", "updated_at = $2"}
	args := []interface{}{t.To, now}
	for _, col := range updateColumns(&t.Update) {
		args = append(args, col.value)
		sets = append(sets, fmt.Sprintf("%s = $%d", col.name, len(args)))
	}
	args = append(args, t.BookingID, t.From)
	query := fmt.Sprintf("UPDATE bookings SET %s WHERE id = $%d AND status = $%d",
		strings.Join(sets, ", "), len(args)-1, len(args))

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	if n == 0 {
		return staleTransition(ctx, tx, t.BookingID)
	}

	if t.Vehicle != nil {
		if err := updateVehicle(ctx, tx, t.BookingID, t.Vehicle); err != nil {
			return err
		}
	}

	return insertInstructions(ctx, tx, t.Instructions)
}

// staleTransition explains why a conditional update matched nothing
func staleTransition(ctx context.Context, tx *sqlx.Tx, bookingID string) error {
	var current models.BookingStatus
	err := tx.GetContext(ctx, &current, `SELECT status FROM bookings WHERE id = $1`, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.NotFound("booking %s not found", bookingID)
		}
		return fmt.Errorf("failed to read booking status: %w", err)
	}
	return apperror.Conflict("booking is %s", current)
}

type column struct {
	name  string
	value interface{}
}

func updateColumns(u *models.BookingUpdate) []column {
	var cols []column
	add := func(name string, set bool, value interface{}) {
		if set {
			cols = append(cols, column{name: name, value: value})
		}
	}

	add("partner_acceptance_deadline", u.PartnerAcceptanceDeadline != nil, u.PartnerAcceptanceDeadline)
	add("payment_deadline", u.PaymentDeadline != nil, u.PaymentDeadline)
	add("insurance_upload_deadline", u.InsuranceUploadDeadline != nil, u.InsuranceUploadDeadline)
	add("partner_response_at", u.PartnerResponseAt != nil, u.PartnerResponseAt)
	add("activated_at", u.ActivatedAt != nil, u.ActivatedAt)
	add("completed_at", u.CompletedAt != nil, u.CompletedAt)
	add("cancelled_at", u.CancelledAt != nil, u.CancelledAt)
	add("last_payment_date", u.LastPaymentDate != nil, u.LastPaymentDate)
	add("final_amount", u.FinalAmount != nil, u.FinalAmount)
	add("outstanding_amount", u.OutstandingAmount != nil, u.OutstandingAmount)
	add("payment_status", u.PaymentStatus != nil, u.PaymentStatus)
	add("driver_insurance_valid", u.DriverInsuranceValid != nil, u.DriverInsuranceValid)
	add("rejection_reason", u.RejectionReason != nil, u.RejectionReason)
	add("partner_response_time_minutes", u.PartnerResponseTimeMinutes != nil, u.PartnerResponseTimeMinutes)
	add("activated_trigger", u.ActivatedTrigger != nil, u.ActivatedTrigger)
	add("finished_by", u.FinishedBy != nil, u.FinishedBy)
	add("finished_by_type", u.FinishedByType != nil, u.FinishedByType)
	add("final_notes", u.FinalNotes != nil, u.FinalNotes)
	add("final_mileage", u.FinalMileage != nil, u.FinalMileage)
	add("final_fuel_level", u.FinalFuelLevel != nil, u.FinalFuelLevel)
	add("cancellation_reason", u.CancellationReason != nil, u.CancellationReason)
	add("cancel_type", u.CancelType != nil, u.CancelType)
	add("refund_amount", u.RefundAmount != nil, u.RefundAmount)
	add("released_documents", u.ReleasedDocuments != nil, u.ReleasedDocuments)

	return cols
}

func updateVehicle(ctx context.Context, tx *sqlx.Tx, bookingID string, v *models.VehicleUpdate) error {
	var err error
	if v.Release {
		// only release the vehicle if this booking still holds it
		_, err = tx.ExecContext(ctx, `
			UPDATE vehicles
			SET status = $1, current_booking_id = NULL, mileage = COALESCE($2, mileage)
			WHERE id = $3 AND (current_booking_id = $4 OR current_booking_id IS NULL)`,
			models.VehicleStatusAvailable, v.Mileage, v.VehicleID, bookingID)
	} else {
		_, err = tx.ExecContext(ctx, `
			UPDATE vehicles
			SET status = $1, current_booking_id = $2, mileage = COALESCE($3, mileage)
			WHERE id = $4`,
			models.VehicleStatusBooked, bookingID, v.Mileage, v.VehicleID)
	}
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	return nil
}

// ListHistory returns the audit trail of a booking, oldest first
func (r *BookingRepo) ListHistory(ctx context.Context, bookingID string) ([]*models.BookingHistoryEntry, error) {
	var entries []*models.BookingHistoryEntry
	err := r.db.SelectContext(ctx, &entries, `
		SELECT id, booking_id, action, performed_by, performed_by_type, details, description, created_at
		FROM booking_history
		WHERE booking_id = $1
		ORDER BY created_at`, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list booking history: %w", err)
	}
	return entries, nil
}

// sweepDeadline is the deadline that applies to a booking in its current status
const sweepDeadline = `
	CASE status
		WHEN $1 THEN partner_acceptance_deadline
		WHEN $2 THEN payment_deadline
		WHEN $3 THEN insurance_upload_deadline
		ELSE end_date
	END`

// ListDueForSweep returns bookings whose active deadline falls before horizon, earliest deadline first.
// Already reminded bookings keep matching until they expire, so ordering by deadline keeps passed ones inside the batch.
func (r *BookingRepo) ListDueForSweep(ctx context.Context, horizon time.Time, limit int) ([]string, error) {
	var ids []string
	err := r.db.SelectContext(ctx, &ids, `
		SELECT id FROM bookings
		WHERE (status = $1 AND partner_acceptance_deadline <= $4)
		   OR (status = $2 AND payment_deadline <= $4)
		   OR (status = $3 AND insurance_upload_deadline <= $4)
		   OR (status = ANY($5) AND end_date <= $4)
		ORDER BY`+sweepDeadline+`, id
		LIMIT $6`,
		models.BookingStatusPendingPartnerApproval,
		models.BookingStatusPendingPayment,
		models.BookingStatusPendingInsuranceUpload,
		horizon,
		pq.Array(sweepableStatuses),
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings due for sweep: %w", err)
	}
	return ids, nil
}
