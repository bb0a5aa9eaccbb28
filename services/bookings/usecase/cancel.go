package usecase

import (
	"context"
	"fmt"

	"github.com/comparepco/comparepco/internal/pkg/apperror"
	"github.com/comparepco/comparepco/internal/pkg/logger"
	"github.com/comparepco/comparepco/internal/pkg/models"
)

// CancelBooking ends a non-terminal booking and refunds the driver according to the cancel type
func (uc *bookingUC) CancelBooking(ctx context.Context, req *models.CancelBookingRequest) (*models.CancelBookingResult, error) {
	switch req.CancelType {
	case models.CancelTypeFull, models.CancelTypeProrated, models.CancelTypeNone:
	default:
		return nil, apperror.Validation("cancel_type must be one of: full prorated none")
	}
	if req.Reason == "" {
		return nil, apperror.Validation("reason is required")
	}
	if req.InsuranceRefundAmount < 0 {
		return nil, apperror.Validation("insurance_refund_amount cannot be negative")
	}

	b, err := uc.bookingRepo.GetBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if b.Status.IsTerminal() {
		return nil, apperror.Conflict("booking is %s", b.Status)
	}

	instructions, err := uc.bookingRepo.ListInstructions(ctx, b.ID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	daysUsed := ceilDays(b.StartDate, now)
	remainingDays := ceilDays(b.StartDate, b.EndDate) - daysUsed
	if remainingDays < 0 {
		remainingDays = 0
	}
	paid := actualPaid(instructions)
	refund := refundAmount(req.CancelType, b.WeeklyRate, paid, daysUsed)
	refundOwed := refund > 0 && b.PaymentStatus == models.PaymentStatusPaid

	insuranceRefund := 0.0
	if refundOwed {
		insuranceRefund = round2(req.InsuranceRefundAmount)
	}

	by, byType := req.CancelledBy, req.CancelledByType
	if by == "" {
		by, byType = models.ActorSystem, models.ActorSystem
	} else if byType == "" {
		byType = models.ActorAdmin
	}

	update := models.BookingUpdate{
		CancelledAt:        timePtr(now),
		CancellationReason: strPtr(req.Reason),
		CancelType:         strPtr(req.CancelType),
		RefundAmount:       floatPtr(refund),
	}
	if refundOwed {
		update.PaymentStatus = strPtr(models.PaymentStatusRefundPending)
	}

	t, err := plan(b, models.ActionCancel, update)
	if err != nil {
		return nil, err
	}
	t.Vehicle = releaseVehicle(b, nil)

	if refundOwed {
		err := uc.bookingGW.RequestRefund(ctx, &models.RefundRequest{
			BookingID:       b.ID,
			DriverID:        b.DriverID,
			PartnerID:       b.PartnerID,
			Amount:          refund,
			InsuranceAmount: insuranceRefund,
			Currency:        uc.cfg.Booking.Currency,
			Reason:          req.Reason,
			RequestedAt:     now,
		})
		if err != nil {
			logger.ErrorCtx(ctx, "Refund request failed, booking left unchanged",
				logger.BookingID(b.ID),
				logger.Float64("refund_amount", refund),
				logger.Err(err))
			return nil, apperror.PaymentFailure(err, "refund of %s could not be issued", money(refund, uc.cfg.Booking.Currency))
		}
	}

	from := b.Status
	if err := uc.apply(ctx, b, t); err != nil {
		if refundOwed {
			logger.ErrorCtx(ctx, "Refund issued but cancellation was not recorded",
				logger.BookingID(b.ID),
				logger.Float64("refund_amount", refund),
				logger.Err(err))
		}
		return nil, err
	}

	logger.InfoCtx(ctx, "Booking cancelled",
		logger.BookingID(b.ID),
		logger.String("cancel_type", req.CancelType),
		logger.Float64("refund_amount", refund))

	effects := &models.Effects{}
	effects.AddHistory(newHistory(b, "booking_cancelled", by, byType,
		fmt.Sprintf("Booking cancelled: %s", req.Reason),
		models.JSONMap{
			"reason":           req.Reason,
			"cancel_type":      req.CancelType,
			"previous_status":  from,
			"actual_paid":      paid,
			"refund_amount":    refund,
			"insurance_refund": insuranceRefund,
			"days_used":        daysUsed,
			"remaining_days":   remainingDays,
		}, now))
	if refundOwed {
		effects.AddTransactions(transactionPair(b, models.CategoryRefund, -refund,
			fmt.Sprintf("Refund for cancelled booking %s", b.ID), now)...)
		if insuranceRefund > 0 {
			effects.AddTransactions(transactionPair(b, models.CategoryInsuranceRefund, -insuranceRefund,
				fmt.Sprintf("Insurance refund for cancelled booking %s", b.ID), now)...)
		}
	}
	effects.Notify(notifyPartner(b, notifyBookingCancelled, models.PriorityHigh,
		"Booking cancelled",
		fmt.Sprintf("Booking for %s was cancelled: %s", b.VehicleLabel(), req.Reason),
		now))
	effects.Notify(notifyAdmin(b, notifyBookingCancelled, models.PriorityNormal,
		"Booking cancelled",
		fmt.Sprintf("Booking %s cancelled (%s), refund %s", b.ID, req.CancelType, money(refund, uc.cfg.Booking.Currency)),
		now))
	effects.AddEvent(newEvent(b, models.ActionCancel, from, b.Status, now))
	uc.dispatch(ctx, b.ID, effects)

	return &models.CancelBookingResult{
		BookingID:       b.ID,
		Status:          b.Status,
		RefundAmount:    refund,
		InsuranceRefund: insuranceRefund,
		DaysUsed:        daysUsed,
		RemainingDays:   remainingDays,
	}, nil
}
