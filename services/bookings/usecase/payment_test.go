package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/comparepco/comparepco/internal/pkg/apperror"
	"github.com/comparepco/comparepco/internal/pkg/models"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmPaymentReceived_WeeklyRollsForward(t *testing.T) {
	// Arrange
	d := newTestUC(t)
	booking := testBooking(models.BookingStatusActive)
	due := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	weekly := instruction("wk1", models.InstructionTypeWeeklyRent, models.InstructionStatusSent, 140)
	weekly.NextDueDate = &due

	d.repo.EXPECT().GetInstruction(gomock.Any(), "wk1").Return(weekly, nil)
	d.repo.EXPECT().GetBooking(gomock.Any(), "booking-1").Return(booking, nil)

	var confirmation *models.InstructionConfirmation
	var applied *models.Transition
	d.repo.EXPECT().
		ConfirmPayment(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.InstructionConfirmation, tr *models.Transition) error {
			confirmation, applied = c, tr
			return nil
		})
	d.repo.EXPECT().ListFinanceStaff(gomock.Any(), "partner-1").Return([]*models.PartnerStaff{
		{UserID: "staff-1", PartnerID: "partner-1", IsActive: true, Permissions: []string{models.PermissionViewFinancials}},
	}, nil)
	effects := d.expectEffects("booking-1")

	// Act
	result, err := d.uc.ConfirmPaymentReceived(context.Background(), &models.ConfirmPaymentRequest{InstructionID: "wk1"})

	// Assert
	require.NoError(t, err)
	expectedDue := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, models.InstructionStatusPending, result.Status)
	require.NotNil(t, result.NextDueDate)
	assert.Equal(t, expectedDue, *result.NextDueDate)
	assert.Equal(t, models.InstructionStatusPending, confirmation.NewStatus)
	assert.Equal(t, expectedDue, *confirmation.NextDueDate)
	require.NotNil(t, confirmation.Received)
	assert.Equal(t, models.InstructionStatusReceived, confirmation.Received.Status)
	assert.Equal(t, models.InstructionTypeWeeklyRent, confirmation.Received.Type)
	assert.Equal(t, models.FrequencyOneOff, confirmation.Received.Frequency)
	assert.Equal(t, 140.0, confirmation.Received.Amount)
	assert.Equal(t, due, *confirmation.Received.NextDueDate)
	assert.True(t, confirmation.Received.CountsAsPaid())

	assert.Equal(t, models.BookingStatusActive, applied.From)
	assert.Equal(t, models.BookingStatusActive, applied.To)
	assert.Equal(t, models.PaymentStatusPaid, *applied.Update.PaymentStatus)
	assert.Equal(t, fixedNow, *applied.Update.LastPaymentDate)

	require.Len(t, effects.Transactions, 2)
	income, expense := effects.Transactions[0], effects.Transactions[1]
	assert.Equal(t, models.TransactionTypeIncome, income.Type)
	assert.Equal(t, models.TransactionTypeExpense, expense.Type)
	assert.Equal(t, income.Amount, expense.Amount)
	assert.Equal(t, 140.0, income.Amount)
	assert.Equal(t, income.BookingID, expense.BookingID)

	require.Len(t, effects.Notifications, 3)
	assert.Equal(t, models.ActorDriver, effects.Notifications[0].RecipientType)
	assert.Equal(t, models.ActorPartner, effects.Notifications[1].RecipientType)
	assert.Equal(t, "staff-1", effects.Notifications[2].RecipientID)
	assert.Equal(t, models.ActorPartnerStaff, effects.Notifications[2].RecipientType)
	assert.Empty(t, effects.Events)
}

func TestConfirmPaymentReceived_DepositAdvancesPaymentFirstBooking(t *testing.T) {
	d := newTestUC(t)
	d.uc.cfg.Booking.PlatformFeePercent = 10
	booking := testBooking(models.BookingStatusPendingPayment)

	d.repo.EXPECT().ListInstructions(gomock.Any(), "booking-1").Return([]*models.PaymentInstruction{
		instruction("dep", models.InstructionTypeDeposit, models.InstructionStatusSent, 300),
		instruction("wk1", models.InstructionTypeWeeklyRent, models.InstructionStatusPending, 140),
	}, nil)
	d.repo.EXPECT().GetBooking(gomock.Any(), "booking-1").Return(booking, nil)

	var confirmation *models.InstructionConfirmation
	var applied *models.Transition
	d.repo.EXPECT().
		ConfirmPayment(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.InstructionConfirmation, tr *models.Transition) error {
			confirmation, applied = c, tr
			return nil
		})
	d.repo.EXPECT().ListFinanceStaff(gomock.Any(), "partner-1").Return(nil, errors.New("timeout"))
	effects := d.expectEffects("booking-1")

	result, err := d.uc.ConfirmPaymentReceived(context.Background(), &models.ConfirmPaymentRequest{BookingID: "booking-1"})

	require.NoError(t, err)
	assert.Equal(t, "dep", result.InstructionID)
	assert.Nil(t, result.NextDueDate)
	assert.Equal(t, models.InstructionStatusDepositReceived, confirmation.NewStatus)
	assert.Nil(t, confirmation.Received)
	assert.Equal(t, models.BookingStatusPendingPartnerApproval, result.BookingStatus)
	assert.Equal(t, models.BookingStatusPendingPartnerApproval, applied.To)
	require.NotNil(t, applied.Update.PartnerAcceptanceDeadline)
	assert.Equal(t, fixedNow.Add(24*time.Hour), *applied.Update.PartnerAcceptanceDeadline)

	require.Len(t, effects.Transactions, 3)
	fee := effects.Transactions[2]
	assert.Equal(t, models.CategoryPlatformFee, fee.Category)
	assert.Equal(t, 30.0, fee.Amount)
	require.Len(t, effects.Events, 1)
	assert.Equal(t, string(models.ActionConfirmPayment), effects.Events[0].Action)
	assert.Len(t, effects.Notifications, 2)
}

func TestConfirmPaymentReceived_ActivatesAcceptedBooking(t *testing.T) {
	d := newTestUC(t)
	booking := testBooking(models.BookingStatusPartnerAccepted)
	deposit := instruction("dep", models.InstructionTypeDeposit, models.InstructionStatusSent, 300)

	d.repo.EXPECT().GetInstruction(gomock.Any(), "dep").Return(deposit, nil)
	d.repo.EXPECT().GetBooking(gomock.Any(), "booking-1").Return(booking, nil)
	d.repo.EXPECT().ListApprovedDocuments(gomock.Any(), "vehicle-1", models.ReleasableDocumentTypes).Return(nil, nil)

	var applied *models.Transition
	d.repo.EXPECT().
		ConfirmPayment(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.InstructionConfirmation, tr *models.Transition) error {
			applied = tr
			return nil
		})
	d.repo.EXPECT().ListFinanceStaff(gomock.Any(), "partner-1").Return(nil, nil)
	d.expectEffects("booking-1")

	result, err := d.uc.ConfirmPaymentReceived(context.Background(), &models.ConfirmPaymentRequest{InstructionID: "dep", ConfirmedBy: "partner-1"})

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusActive, result.BookingStatus)
	assert.Equal(t, models.TriggerAutoOnPayment, *applied.Update.ActivatedTrigger)
}

func TestConfirmPaymentReceived_Errors(t *testing.T) {
	directDebit := instruction("dd", models.InstructionTypeWeeklyRent, models.InstructionStatusSent, 140)
	directDebit.Method = models.PaymentMethodDirectDebit

	tests := []struct {
		name  string
		req   *models.ConfirmPaymentRequest
		setup func(*testDeps)
		kind  apperror.Kind
		msg   string
	}{
		{
			name: "nothing to identify the payment",
			req:  &models.ConfirmPaymentRequest{},
			kind: apperror.KindValidation,
		},
		{
			name: "direct debit",
			req:  &models.ConfirmPaymentRequest{InstructionID: "dd"},
			setup: func(d *testDeps) {
				d.repo.EXPECT().GetInstruction(gomock.Any(), "dd").Return(directDebit, nil)
			},
			kind: apperror.KindValidation,
			msg:  "only manual transfers require confirmation",
		},
		{
			name: "transfer not sent",
			req:  &models.ConfirmPaymentRequest{InstructionID: "wk1"},
			setup: func(d *testDeps) {
				d.repo.EXPECT().GetInstruction(gomock.Any(), "wk1").
					Return(instruction("wk1", models.InstructionTypeWeeklyRent, models.InstructionStatusPending, 140), nil)
			},
			kind: apperror.KindConflict,
			msg:  "payment not marked sent yet",
		},
		{
			name: "booking has no sent transfer",
			req:  &models.ConfirmPaymentRequest{BookingID: "booking-1"},
			setup: func(d *testDeps) {
				d.repo.EXPECT().ListInstructions(gomock.Any(), "booking-1").Return([]*models.PaymentInstruction{
					instruction("wk1", models.InstructionTypeWeeklyRent, models.InstructionStatusPending, 140),
				}, nil)
			},
			kind: apperror.KindConflict,
			msg:  "payment not marked sent yet",
		},
		{
			name: "instruction confirmed concurrently",
			req:  &models.ConfirmPaymentRequest{InstructionID: "wk1"},
			setup: func(d *testDeps) {
				d.repo.EXPECT().GetInstruction(gomock.Any(), "wk1").
					Return(instruction("wk1", models.InstructionTypeWeeklyRent, models.InstructionStatusSent, 140), nil)
				d.repo.EXPECT().GetBooking(gomock.Any(), "booking-1").Return(testBooking(models.BookingStatusActive), nil)
				d.repo.EXPECT().ConfirmPayment(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(apperror.Conflict("payment not marked sent yet"))
			},
			kind: apperror.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestUC(t)
			if tt.setup != nil {
				tt.setup(d)
			}

			result, err := d.uc.ConfirmPaymentReceived(context.Background(), tt.req)

			assert.Nil(t, result)
			assert.Equal(t, tt.kind, apperror.KindOf(err))
			if tt.msg != "" {
				assert.Equal(t, tt.msg, apperror.Message(err))
			}
		})
	}
}

func TestPickSentTransfer(t *testing.T) {
	early := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	late := early.Add(week)

	t.Run("earliest due wins", func(t *testing.T) {
		a := instruction("a", models.InstructionTypeWeeklyRent, models.InstructionStatusSent, 140)
		a.NextDueDate = &late
		b := instruction("b", models.InstructionTypeDeposit, models.InstructionStatusSent, 300)
		b.NextDueDate = &early
		c := instruction("c", models.InstructionTypeFinalPayment, models.InstructionStatusSent, 20)

		in, err := pickSentTransfer("booking-1", []*models.PaymentInstruction{a, c, b})
		require.NoError(t, err)
		assert.Equal(t, "b", in.ID)
	})

	t.Run("only direct debits", func(t *testing.T) {
		dd := instruction("dd", models.InstructionTypeWeeklyRent, models.InstructionStatusSent, 140)
		dd.Method = models.PaymentMethodDirectDebit

		_, err := pickSentTransfer("booking-1", []*models.PaymentInstruction{dd})
		assert.True(t, apperror.Is(err, apperror.KindValidation))
	})

	t.Run("no instructions", func(t *testing.T) {
		_, err := pickSentTransfer("booking-1", nil)
		assert.True(t, apperror.Is(err, apperror.KindNotFound))
	})
}

// confirmWeeks runs ConfirmPaymentReceived once per week on a 100/week transfer and returns the stored instructions
func confirmWeeks(t *testing.T, d *testDeps, weeks int) []*models.PaymentInstruction {
	due := fixedNow.Add(-14 * day)
	weekly := instruction("wk", models.InstructionTypeWeeklyRent, models.InstructionStatusSent, 100)
	weekly.NextDueDate = &due
	stored := []*models.PaymentInstruction{weekly}

	for i := 0; i < weeks; i++ {
		sent := *weekly
		sent.Status = models.InstructionStatusSent
		d.repo.EXPECT().GetInstruction(gomock.Any(), "wk").Return(&sent, nil)
		d.repo.EXPECT().GetBooking(gomock.Any(), "booking-1").Return(fundedBooking(models.BookingStatusActive), nil)
		d.repo.EXPECT().
			ConfirmPayment(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *models.InstructionConfirmation, _ *models.Transition) error {
				weekly.Status = c.NewStatus
				weekly.NextDueDate = c.NextDueDate
				if c.Received != nil {
					stored = append(stored, c.Received)
				}
				return nil
			})
		d.repo.EXPECT().ListFinanceStaff(gomock.Any(), "partner-1").Return(nil, nil)
		d.expectEffects("booking-1")

		_, err := d.uc.ConfirmPaymentReceived(context.Background(), &models.ConfirmPaymentRequest{InstructionID: "wk"})
		require.NoError(t, err)
	}
	return stored
}

func fundedBooking(status models.BookingStatus) *models.Booking {
	b := testBooking(status)
	b.StartDate = fixedNow.Add(-14 * day)
	b.EndDate = fixedNow.Add(14 * day)
	b.WeeklyRate = 100
	b.PaymentStatus = models.PaymentStatusPaid
	return b
}

func TestConfirmedWeeklyRentCountsAsPaid(t *testing.T) {
	t.Run("finish bills nothing more", func(t *testing.T) {
		d := newTestUC(t)
		stored := confirmWeeks(t, d, 2)
		require.Len(t, stored, 3)
		assert.Equal(t, 200.0, actualPaid(stored))

		d.repo.EXPECT().GetBooking(gomock.Any(), "booking-1").Return(fundedBooking(models.BookingStatusActive), nil)
		d.repo.EXPECT().ListInstructions(gomock.Any(), "booking-1").Return(stored, nil)
		var applied *models.Transition
		d.repo.EXPECT().
			ApplyTransition(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tr *models.Transition) error {
				applied = tr
				return nil
			})
		d.expectEffects("booking-1")

		result, err := d.uc.FinishBooking(context.Background(), &models.FinishBookingRequest{
			BookingID:      "booking-1",
			FinishedBy:     "driver-1",
			FinishedByType: models.ActorDriver,
		})

		require.NoError(t, err)
		assert.Equal(t, 200.0, result.FinalAmount)
		assert.Equal(t, 0.0, result.OutstandingAmount)
		assert.Equal(t, models.PaymentStatusCompleted, *applied.Update.PaymentStatus)
		assert.Empty(t, applied.Instructions)
	})

	t.Run("full cancel refunds what was confirmed", func(t *testing.T) {
		d := newTestUC(t)
		stored := confirmWeeks(t, d, 2)

		d.repo.EXPECT().GetBooking(gomock.Any(), "booking-1").Return(fundedBooking(models.BookingStatusActive), nil)
		d.repo.EXPECT().ListInstructions(gomock.Any(), "booking-1").Return(stored, nil)
		d.gw.EXPECT().
			RequestRefund(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *models.RefundRequest) error {
				assert.Equal(t, 200.0, req.Amount)
				return nil
			})
		d.repo.EXPECT().ApplyTransition(gomock.Any(), gomock.Any()).Return(nil)
		d.expectEffects("booking-1")

		result, err := d.uc.CancelBooking(context.Background(), &models.CancelBookingRequest{
			BookingID:   "booking-1",
			Reason:      "vehicle withdrawn",
			CancelType:  models.CancelTypeFull,
			CancelledBy: "admin-7",
		})

		require.NoError(t, err)
		assert.Equal(t, 200.0, result.RefundAmount)
	})
}
