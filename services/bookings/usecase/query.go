package usecase

import (
	"context"

	"github.com/comparepco/comparepco/internal/pkg/models"
)

func (uc *bookingUC) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	return uc.bookingRepo.GetBooking(ctx, bookingID)
}

// ListBookingHistory returns the audit trail, failing with NotFound for unknown bookings
func (uc *bookingUC) ListBookingHistory(ctx context.Context, bookingID string) ([]*models.BookingHistoryEntry, error) {
	if _, err := uc.bookingRepo.GetBooking(ctx, bookingID); err != nil {
		return nil, err
	}
	return uc.bookingRepo.ListHistory(ctx, bookingID)
}

func (uc *bookingUC) ListPaymentInstructions(ctx context.Context, bookingID string) ([]*models.PaymentInstruction, error) {
	if _, err := uc.bookingRepo.GetBooking(ctx, bookingID); err != nil {
		return nil, err
	}
	return uc.bookingRepo.ListInstructions(ctx, bookingID)
}
