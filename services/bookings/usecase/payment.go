package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/comparepco/comparepco/internal/pkg/apperror"
	"github.com/comparepco/comparepco/internal/pkg/logger"
	"github.com/comparepco/comparepco/internal/pkg/models"
	"github.com/google/uuid"
)

// ConfirmPaymentReceived records that a manual bank transfer reached the partner
func (uc *bookingUC) ConfirmPaymentReceived(ctx context.Context, req *models.ConfirmPaymentRequest) (*models.ConfirmPaymentResult, error) {
	if req.InstructionID == "" && req.BookingID == "" {
		return nil, apperror.Validation("instruction_id or booking_id is required")
	}

	in, err := uc.resolveInstruction(ctx, req)
	if err != nil {
		return nil, err
	}
	if in.Method != models.PaymentMethodBankTransfer {
		return nil, apperror.Validation("only manual transfers require confirmation")
	}
	if in.Status != models.InstructionStatusSent {
		return nil, apperror.Conflict("payment not marked sent yet")
	}

	b, err := uc.bookingRepo.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	confirmation := &models.InstructionConfirmation{InstructionID: in.ID}
	if in.IsRecurring() {
		due := now
		if in.NextDueDate != nil {
			due = *in.NextDueDate
		}
		confirmation.NewStatus = models.InstructionStatusPending
		confirmation.NextDueDate = timePtr(due.Add(week))
		confirmation.Received = receivedInstruction(in, due, now)
	} else {
		confirmation.NewStatus = models.InstructionStatusDepositReceived
	}

	t, action := uc.paymentTransition(ctx, b, now)
	details := models.JSONMap{
		"instruction_id":   in.ID,
		"instruction_type": in.Type,
		"amount":           in.Amount,
		"new_status":       confirmation.NewStatus,
		"next_due_date":    confirmation.NextDueDate,
		"previous_status":  b.Status,
	}
	if confirmation.Received != nil {
		details["received_instruction_id"] = confirmation.Received.ID
	}

	from := b.Status
	if err := uc.bookingRepo.ConfirmPayment(ctx, confirmation, t); err != nil {
		return nil, err
	}
	b.Status = t.To
	b.PaymentStatus = models.PaymentStatusPaid

	confirmedBy := req.ConfirmedBy
	if confirmedBy == "" {
		confirmedBy = b.PartnerID
	}

	logger.InfoCtx(ctx, "Manual payment confirmed",
		logger.BookingID(b.ID),
		logger.String("instruction_id", in.ID),
		logger.String("instruction_type", in.Type),
		logger.Float64("amount", in.Amount),
		logger.String("booking_status", string(b.Status)))

	currency := uc.cfg.Booking.Currency
	effects := &models.Effects{}
	effects.AddTransactions(transactionPair(b, models.CategoryBookingPayment, in.Amount,
		fmt.Sprintf("%s payment for booking %s", in.Type, b.ID), now)...)
	if fee := round2(in.Amount * uc.cfg.Booking.PlatformFeePercent / 100); fee > 0 {
		effects.AddTransactions(&models.Transaction{
			ID:          uuid.NewString(),
			BookingID:   b.ID,
			PartnerID:   b.PartnerID,
			DriverID:    b.DriverID,
			Type:        models.TransactionTypeExpense,
			Category:    models.CategoryPlatformFee,
			Amount:      fee,
			NetAmount:   fee,
			PlatformFee: fee,
			Status:      "completed",
			Source:      "platform",
			Description: fmt.Sprintf("Platform commission on booking %s", b.ID),
			CreatedAt:   now,
		})
	}
	effects.AddHistory(newHistory(b, "payment_received", confirmedBy, models.ActorPartner,
		fmt.Sprintf("Bank transfer of %s confirmed", money(in.Amount, currency)), details, now))

	effects.Notify(notifyDriver(b, notifyPaymentReceived, models.PriorityNormal,
		"Payment received",
		fmt.Sprintf("Your payment of %s for %s was received", money(in.Amount, currency), b.VehicleLabel()),
		now))
	partnerMessage := fmt.Sprintf("%s payment of %s received from %s", in.Type, money(in.Amount, currency), b.DriverName)
	effects.Notify(notifyPartner(b, notifyPaymentReceived, models.PriorityNormal, "Payment received", partnerMessage, now))
	staff, err := uc.bookingRepo.ListFinanceStaff(ctx, b.PartnerID)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to load finance staff", logger.BookingID(b.ID), logger.Err(err))
	}
	for _, s := range staff {
		effects.Notify(newNotification(b, notifyPaymentReceived, s.UserID, models.ActorPartnerStaff,
			models.PriorityNormal, "Payment received", partnerMessage, now))
	}
	if action != "" {
		effects.AddEvent(newEvent(b, action, from, b.Status, now))
	}
	uc.dispatch(ctx, b.ID, effects)

	return &models.ConfirmPaymentResult{
		InstructionID: in.ID,
		BookingID:     b.ID,
		Status:        confirmation.NewStatus,
		BookingStatus: b.Status,
		Amount:        in.Amount,
		NextDueDate:   confirmation.NextDueDate,
	}, nil
}

// receivedInstruction records one paid week of a recurring instruction as its own row
func receivedInstruction(in *models.PaymentInstruction, due, now time.Time) *models.PaymentInstruction {
	return &models.PaymentInstruction{
		ID:          uuid.NewString(),
		BookingID:   in.BookingID,
		DriverID:    in.DriverID,
		PartnerID:   in.PartnerID,
		Amount:      in.Amount,
		Type:        in.Type,
		Method:      in.Method,
		Status:      models.InstructionStatusReceived,
		Frequency:   models.FrequencyOneOff,
		NextDueDate: timePtr(due),
		Reason:      strPtr(fmt.Sprintf("%s due %s received", in.Type, due.Format("2006-01-02"))),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// paymentTransition decides what a confirmed payment does to the booking. The action is empty when the status stays.
func (uc *bookingUC) paymentTransition(ctx context.Context, b *models.Booking, now time.Time) (*models.Transition, models.BookingAction) {
	update := models.BookingUpdate{
		LastPaymentDate: timePtr(now),
		PaymentStatus:   strPtr(models.PaymentStatusPaid),
	}

	var action models.BookingAction
	switch {
	case b.Status == models.BookingStatusPendingPayment:
		action = models.ActionConfirmPayment
		update.PartnerAcceptanceDeadline = timePtr(now.Add(uc.cfg.Booking.PartnerAcceptanceWindow))
	case b.Status == models.BookingStatusPartnerAccepted && b.InsuranceSatisfied() && b.DocumentsSatisfied():
		action = models.ActionActivate
		update.ActivatedAt = timePtr(now)
		update.ActivatedTrigger = strPtr(models.TriggerAutoOnPayment)
		update.ReleasedDocuments = uc.releasableDocuments(ctx, b, now)
	}

	if action != "" {
		if to, ok := models.NextStatus(b.Status, action); ok {
			return &models.Transition{BookingID: b.ID, From: b.Status, To: to, Update: update}, action
		}
	}
	return &models.Transition{BookingID: b.ID, From: b.Status, To: b.Status, Update: update}, ""
}

func (uc *bookingUC) resolveInstruction(ctx context.Context, req *models.ConfirmPaymentRequest) (*models.PaymentInstruction, error) {
	if req.InstructionID != "" {
		in, err := uc.bookingRepo.GetInstruction(ctx, req.InstructionID)
		if err != nil {
			return nil, err
		}
		if req.BookingID != "" && in.BookingID != req.BookingID {
			return nil, apperror.Validation("instruction %s does not belong to booking %s", in.ID, req.BookingID)
		}
		return in, nil
	}

	instructions, err := uc.bookingRepo.ListInstructions(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	return pickSentTransfer(req.BookingID, instructions)
}

// pickSentTransfer returns the earliest-due bank transfer waiting for confirmation
func pickSentTransfer(bookingID string, instructions []*models.PaymentInstruction) (*models.PaymentInstruction, error) {
	var transfers, sent []*models.PaymentInstruction
	for _, in := range instructions {
		if in.Type == models.InstructionTypeRefund {
			continue
		}
		if in.Method != models.PaymentMethodBankTransfer {
			continue
		}
		transfers = append(transfers, in)
		if in.Status == models.InstructionStatusSent {
			sent = append(sent, in)
		}
	}

	switch {
	case len(sent) > 0:
		sort.SliceStable(sent, func(i, j int) bool {
			return dueBefore(sent[i], sent[j])
		})
		return sent[0], nil
	case len(transfers) > 0:
		return nil, apperror.Conflict("payment not marked sent yet")
	case len(instructions) > 0:
		return nil, apperror.Validation("only manual transfers require confirmation")
	default:
		return nil, apperror.NotFound("no payment instructions for booking %s", bookingID)
	}
}

// dueBefore orders by next_due_date with undated instructions last
func dueBefore(a, b *models.PaymentInstruction) bool {
	switch {
	case a.NextDueDate == nil:
		return false
	case b.NextDueDate == nil:
		return true
	default:
		return a.NextDueDate.Before(*b.NextDueDate)
	}
}
