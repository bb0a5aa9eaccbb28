package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/comparepco/comparepco/internal/pkg/models"
	"github.com/comparepco/comparepco/services/bookings/mocks"
	"github.com/golang/mock/gomock"
)

var fixedNow = time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

type testDeps struct {
	uc   *bookingUC
	repo *mocks.MockBookingRepo
	gw   *mocks.MockBookingGW
}

func testConfig() *models.Config {
	return &models.Config{
		Booking: models.BookingConfig{
			PartnerAcceptanceWindow: 24 * time.Hour,
			PaymentWindow:           48 * time.Hour,
			InsuranceUploadWindow:   72 * time.Hour,
			ReminderWindow:          2 * time.Hour,
			Currency:                "GBP",
		},
		Sweep: models.SweepConfig{
			Interval:  time.Minute,
			BatchSize: 100,
			LockTTL:   30 * time.Second,
		},
	}
}

func newTestUC(t *testing.T) *testDeps {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockBookingRepo(ctrl)
	gw := mocks.NewMockBookingGW(ctrl)
	uc, err := NewBookingUC(testConfig(), repo, gw)
	if err != nil {
		t.Fatal(err)
	}
	impl := uc.(*bookingUC)
	impl.now = func() time.Time { return fixedNow }
	return &testDeps{uc: impl, repo: repo, gw: gw}
}

// expectEffects captures the effects handed to the outbox
func (d *testDeps) expectEffects(bookingID string) *models.Effects {
	captured := &models.Effects{}
	d.gw.EXPECT().
		EnqueueEffects(gomock.Any(), bookingID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, e *models.Effects) error {
			*captured = *e
			return nil
		})
	return captured
}

func testBooking(status models.BookingStatus) *models.Booking {
	return &models.Booking{
		ID:                         "booking-1",
		DriverID:                   "driver-1",
		PartnerID:                  "partner-1",
		VehicleID:                  "vehicle-1",
		StartDate:                  fixedNow.Add(-10 * day),
		EndDate:                    fixedNow.Add(18 * day),
		CreatedAt:                  fixedNow.Add(-90 * time.Minute),
		WeeklyRate:                 140,
		PaymentMethod:              models.PaymentMethodBankTransfer,
		PaymentStatus:              models.PaymentStatusPending,
		Status:                     status,
		DocumentVerificationStatus: models.DocumentVerificationApproved,
		DriverName:                 "Sam Driver",
		PartnerCompanyName:         "Fleet Co",
		VehicleMake:                "Toyota",
		VehicleModel:               "Prius",
		VehicleRegistration:        "AB12 CDE",
	}
}

func instruction(id, typ, status string, amount float64) *models.PaymentInstruction {
	frequency := models.FrequencyOneOff
	if typ == models.InstructionTypeWeeklyRent {
		frequency = models.FrequencyWeekly
	}
	return &models.PaymentInstruction{
		ID:        id,
		BookingID: "booking-1",
		DriverID:  "driver-1",
		PartnerID: "partner-1",
		Amount:    amount,
		Type:      typ,
		Method:    models.PaymentMethodBankTransfer,
		Status:    status,
		Frequency: frequency,
	}
}
