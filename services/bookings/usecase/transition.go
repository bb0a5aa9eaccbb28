package usecase

import (
	"context"
	"time"

	"github.com/comparepco/comparepco/internal/pkg/apperror"
	"github.com/comparepco/comparepco/internal/pkg/models"
	"github.com/google/uuid"
)

// actionCreate is only used to label the creation event
const actionCreate models.BookingAction = "create"

// plan resolves the action against the transition table and prepares the conditional write
func plan(b *models.Booking, action models.BookingAction, update models.BookingUpdate) (*models.Transition, error) {
	to, ok := models.NextStatus(b.Status, action)
	if !ok {
		return nil, apperror.Conflict("cannot %s booking: booking is %s", action, b.Status)
	}
	return &models.Transition{
		BookingID: b.ID,
		From:      b.Status,
		To:        to,
		Update:    update,
	}, nil
}

func releaseVehicle(b *models.Booking, mileage *int) *models.VehicleUpdate {
	return &models.VehicleUpdate{VehicleID: b.VehicleID, Release: true, Mileage: mileage}
}

// apply commits the transition and moves the in-memory booking to the new status
func (uc *bookingUC) apply(ctx context.Context, b *models.Booking, t *models.Transition) error {
	if err := uc.bookingRepo.ApplyTransition(ctx, t); err != nil {
		return err
	}
	b.Status = t.To
	return nil
}

// receivedMoney reports whether the partner has received the instruction's amount, deposits included
func receivedMoney(in *models.PaymentInstruction) bool {
	return in.CountsAsPaid() || in.Status == models.InstructionStatusDepositReceived
}

// refundInstructions creates one pending refund per payment the partner has received
func refundInstructions(b *models.Booking, instructions []*models.PaymentInstruction, reason string, now time.Time) []*models.PaymentInstruction {
	var refunds []*models.PaymentInstruction
	for _, in := range instructions {
		if in.Type == models.InstructionTypeRefund || !receivedMoney(in) {
			continue
		}
		refunds = append(refunds, &models.PaymentInstruction{
			ID:          uuid.NewString(),
			BookingID:   b.ID,
			DriverID:    b.DriverID,
			PartnerID:   b.PartnerID,
			Amount:      in.Amount,
			Type:        models.InstructionTypeRefund,
			Method:      in.Method,
			Status:      models.InstructionStatusPending,
			Frequency:   models.FrequencyOneOff,
			NextDueDate: timePtr(now),
			Reason:      strPtr(reason),
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return refunds
}
