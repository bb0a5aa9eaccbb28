package bookings

import (
	"context"
	"time"

	"github.com/comparepco/comparepco/internal/pkg/models"
)

// BookingRepo defines data access for bookings and the records they depend on
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/comparepco/comparepco/services/bookings BookingRepo
type BookingRepo interface {
	// CreateBooking reserves the vehicle, inserts the booking and its instructions in one transaction
	CreateBooking(ctx context.Context, booking *models.Booking, instructions []*models.PaymentInstruction) error
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	// ApplyTransition writes the status change only if the booking is still in t.From
	ApplyTransition(ctx context.Context, t *models.Transition) error
	ListHistory(ctx context.Context, bookingID string) ([]*models.BookingHistoryEntry, error)
	ListDueForSweep(ctx context.Context, horizon time.Time, limit int) ([]string, error)

	ListInstructions(ctx context.Context, bookingID string) ([]*models.PaymentInstruction, error)
	GetInstruction(ctx context.Context, instructionID string) (*models.PaymentInstruction, error)
	// ConfirmPayment moves a sent instruction forward and applies the booking transition atomically
	ConfirmPayment(ctx context.Context, c *models.InstructionConfirmation, t *models.Transition) error

	GetVehicle(ctx context.Context, vehicleID string) (*models.Vehicle, error)
	GetDriver(ctx context.Context, driverID string) (*models.Driver, error)
	GetPartner(ctx context.Context, partnerID string) (*models.Partner, error)
	ListApprovedDocuments(ctx context.Context, vehicleID string, types []string) ([]*models.VehicleDocument, error)
	UpsertPartnerDriver(ctx context.Context, partnerID, driverID, bookingID string) error
	ListFinanceStaff(ctx context.Context, partnerID string) ([]*models.PartnerStaff, error)
}
