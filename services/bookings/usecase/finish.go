package usecase

import (
	"context"
	"fmt"

	"github.com/comparepco/comparepco/internal/pkg/apperror"
	"github.com/comparepco/comparepco/internal/pkg/logger"
	"github.com/comparepco/comparepco/internal/pkg/models"
	"github.com/google/uuid"
)

// FinishBooking completes the rental and settles what the driver owes for the days used
func (uc *bookingUC) FinishBooking(ctx context.Context, req *models.FinishBookingRequest) (*models.FinishBookingResult, error) {
	switch req.FinishedByType {
	case models.ActorDriver, models.ActorPartner, models.ActorAdmin:
	default:
		return nil, apperror.Validation("finished_by_type must be one of: driver partner admin")
	}
	if req.FinishedBy == "" {
		return nil, apperror.Validation("finished_by is required")
	}

	b, err := uc.bookingRepo.GetBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if (req.FinishedByType == models.ActorDriver && req.FinishedBy != b.DriverID) ||
		(req.FinishedByType == models.ActorPartner && req.FinishedBy != b.PartnerID) {
		return nil, apperror.Authorization("%s %s cannot finish booking %s", req.FinishedByType, req.FinishedBy, b.ID)
	}

	now := uc.now()
	update := models.BookingUpdate{
		CompletedAt:    timePtr(now),
		FinishedBy:     strPtr(req.FinishedBy),
		FinishedByType: strPtr(req.FinishedByType),
		FinalMileage:   req.FinalMileage,
	}
	if req.FinalNotes != "" {
		update.FinalNotes = strPtr(req.FinalNotes)
	}
	if req.FinalFuelLevel != "" {
		update.FinalFuelLevel = strPtr(req.FinalFuelLevel)
	}

	t, err := plan(b, models.ActionFinish, update)
	if err != nil {
		return nil, err
	}

	instructions, err := uc.bookingRepo.ListInstructions(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	paid := actualPaid(instructions)
	s := settle(b.StartDate, now, b.WeeklyRate, paid)

	paymentStatus := models.PaymentStatusCompleted
	if s.outstanding > 0 {
		paymentStatus = models.PaymentStatusOutstanding
		t.Instructions = []*models.PaymentInstruction{{
			ID:          uuid.NewString(),
			BookingID:   b.ID,
			DriverID:    b.DriverID,
			PartnerID:   b.PartnerID,
			Amount:      s.outstanding,
			Type:        models.InstructionTypeFinalPayment,
			Method:      b.PaymentMethod,
			Status:      models.InstructionStatusPending,
			Frequency:   models.FrequencyOneOff,
			NextDueDate: timePtr(now),
			Reason:      strPtr("Outstanding balance at completion"),
			CreatedAt:   now,
			UpdatedAt:   now,
		}}
	}
	t.Update.FinalAmount = floatPtr(s.finalAmount)
	t.Update.OutstandingAmount = floatPtr(s.outstanding)
	t.Update.PaymentStatus = strPtr(paymentStatus)
	t.Vehicle = releaseVehicle(b, req.FinalMileage)

	from := b.Status
	if err := uc.apply(ctx, b, t); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Booking completed",
		logger.BookingID(b.ID),
		logger.Int("total_days", s.totalDays),
		logger.Float64("final_amount", s.finalAmount),
		logger.Float64("outstanding", s.outstanding))

	currency := uc.cfg.Booking.Currency
	effects := &models.Effects{}
	effects.AddHistory(newHistory(b, "booking_completed", req.FinishedBy, req.FinishedByType,
		fmt.Sprintf("Booking completed after %d days", s.totalDays),
		models.JSONMap{
			"total_days":         s.totalDays,
			"total_weeks":        s.totalWeeks,
			"final_amount":       s.finalAmount,
			"actual_paid":        paid,
			"outstanding_amount": s.outstanding,
			"final_notes":        req.FinalNotes,
			"final_mileage":      req.FinalMileage,
			"final_fuel_level":   req.FinalFuelLevel,
		}, now))
	effects.AddTransactions(&models.Transaction{
		ID:          uuid.NewString(),
		BookingID:   b.ID,
		PartnerID:   b.PartnerID,
		DriverID:    b.DriverID,
		Type:        models.TransactionTypeIncome,
		Category:    models.CategoryFinalSettlement,
		Amount:      s.finalAmount,
		NetAmount:   s.finalAmount,
		Status:      paymentStatus,
		Source:      "booking",
		Description: fmt.Sprintf("Final settlement for booking %s (%d weeks)", b.ID, s.totalWeeks),
		CreatedAt:   now,
	})

	driverMessage := fmt.Sprintf("Your booking for %s is complete", b.VehicleLabel())
	if s.outstanding > 0 {
		driverMessage = fmt.Sprintf("%s. Outstanding balance: %s", driverMessage, money(s.outstanding, currency))
	}
	effects.Notify(notifyDriver(b, notifyBookingCompleted, models.PriorityNormal, "Booking completed", driverMessage, now))
	effects.Notify(notifyPartner(b, notifyBookingCompleted, models.PriorityNormal,
		"Booking completed",
		fmt.Sprintf("%s returned %s. Final amount %s", b.DriverName, b.VehicleLabel(), money(s.finalAmount, currency)),
		now))
	effects.Notify(notifyAdmin(b, notifyBookingCompleted, models.PriorityLow,
		"Booking completed",
		fmt.Sprintf("Booking %s completed, outstanding %s", b.ID, money(s.outstanding, currency)),
		now))
	effects.AddEvent(newEvent(b, models.ActionFinish, from, b.Status, now))
	uc.dispatch(ctx, b.ID, effects)

	return &models.FinishBookingResult{
		BookingID:         b.ID,
		Status:            b.Status,
		TotalDays:         s.totalDays,
		TotalWeeks:        s.totalWeeks,
		FinalAmount:       s.finalAmount,
		OutstandingAmount: s.outstanding,
	}, nil
}
