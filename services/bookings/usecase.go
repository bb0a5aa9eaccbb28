package bookings

import (
	"context"

	"github.com/comparepco/comparepco/internal/pkg/models"
)

// BookingUC defines the booking lifecycle operations
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/comparepco/comparepco/services/bookings BookingUC
type BookingUC interface {
	CreateBooking(ctx context.Context, req *models.CreateBookingRequest) (*models.CreateBookingResult, error)
	RespondToBooking(ctx context.Context, req *models.PartnerResponseRequest) (*models.PartnerResponseResult, error)
	CancelBooking(ctx context.Context, req *models.CancelBookingRequest) (*models.CancelBookingResult, error)
	FinishBooking(ctx context.Context, req *models.FinishBookingRequest) (*models.FinishBookingResult, error)
	ConfirmPaymentReceived(ctx context.Context, req *models.ConfirmPaymentRequest) (*models.ConfirmPaymentResult, error)
	ConfirmInsurance(ctx context.Context, req *models.ConfirmInsuranceRequest) (*models.ConfirmInsuranceResult, error)

	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	ListBookingHistory(ctx context.Context, bookingID string) ([]*models.BookingHistoryEntry, error)
	ListPaymentInstructions(ctx context.Context, bookingID string) ([]*models.PaymentInstruction, error)

	SweepDeadlines(ctx context.Context, bookingID string) (*models.SweepReport, error)
}

// SchedulerUC publishes deadline checks for bookings whose deadlines are near
//go:generate mockgen -destination=mocks/mock_scheduler.go -package=mocks github.com/comparepco/comparepco/services/bookings SchedulerUC
type SchedulerUC interface {
	RunOnce(ctx context.Context) (int, error)
	Run(ctx context.Context) error
}
