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

func TestListBookingHistory(t *testing.T) {
	d := newTestUC(t)
	entries := []*models.BookingHistoryEntry{{ID: "h-1", BookingID: "booking-1", Action: "booking_created"}}
	d.repo.EXPECT().GetBooking(gomock.Any(), "booking-1").Return(testBooking(models.BookingStatusActive), nil)
	d.repo.EXPECT().ListHistory(gomock.Any(), "booking-1").Return(entries, nil)

	got, err := d.uc.ListBookingHistory(context.Background(), "booking-1")

	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestListPaymentInstructions_UnknownBooking(t *testing.T) {
	d := newTestUC(t)
	d.repo.EXPECT().GetBooking(gomock.Any(), "missing").Return(nil, apperror.NotFound("booking missing not found"))
	d.repo.EXPECT().ListInstructions(gomock.Any(), gomock.Any()).Times(0)

	_, err := d.uc.ListPaymentInstructions(context.Background(), "missing")

	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}
