package usecase

import (
	"context"
	"testing"

	"github.com/comparepco/comparepco/internal/pkg/apperror"
	"github.com/comparepco/comparepco/internal/pkg/models"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmInsurance(t *testing.T) {
	tests := []struct {
		name          string
		paymentStatus string
		expected      models.BookingStatus
		expectTrigger bool
	}{
		{name: "unpaid becomes accepted", paymentStatus: models.PaymentStatusPending, expected: models.BookingStatusPartnerAccepted},
		{name: "paid activates", paymentStatus: models.PaymentStatusPaid, expected: models.BookingStatusActive, expectTrigger: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestUC(t)
			booking := testBooking(models.BookingStatusPendingInsuranceUpload)
			booking.InsuranceRequired = true
			booking.PaymentStatus = tt.paymentStatus

			d.repo.EXPECT().GetBooking(gomock.Any(), "booking-1").Return(booking, nil)
			if tt.expectTrigger {
				d.repo.EXPECT().ListApprovedDocuments(gomock.Any(), "vehicle-1", gomock.Any()).Return(nil, nil)
			}
			var applied *models.Transition
			d.repo.EXPECT().
				ApplyTransition(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, tr *models.Transition) error {
					applied = tr
					return nil
				})
			effects := d.expectEffects("booking-1")

			result, err := d.uc.ConfirmInsurance(context.Background(), &models.ConfirmInsuranceRequest{
				BookingID:  "booking-1",
				VerifiedBy: "admin-1",
			})

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Status)
			assert.True(t, *applied.Update.DriverInsuranceValid)
			if tt.expectTrigger {
				assert.Equal(t, models.TriggerAutoOnInsurance, *applied.Update.ActivatedTrigger)
			} else {
				assert.Nil(t, applied.Update.ActivatedTrigger)
			}
			assert.Len(t, effects.History, 1)
			assert.Len(t, effects.Notifications, 2)
		})
	}
}

func TestConfirmInsurance_WrongStatus(t *testing.T) {
	d := newTestUC(t)
	d.repo.EXPECT().GetBooking(gomock.Any(), "booking-1").Return(testBooking(models.BookingStatusActive), nil)

	_, err := d.uc.ConfirmInsurance(context.Background(), &models.ConfirmInsuranceRequest{BookingID: "booking-1", VerifiedBy: "admin-1"})

	assert.True(t, apperror.Is(err, apperror.KindConflict))
}
