package usecase

import (
	"context"
	"fmt"

	"github.com/comparepco/comparepco/internal/pkg/logger"
	"github.com/comparepco/comparepco/internal/pkg/models"
)

// ConfirmInsurance marks the driver's insurance valid and moves the booking on
func (uc *bookingUC) ConfirmInsurance(ctx context.Context, req *models.ConfirmInsuranceRequest) (*models.ConfirmInsuranceResult, error) {
	b, err := uc.bookingRepo.GetBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	b.DriverInsuranceValid = true
	update := models.BookingUpdate{DriverInsuranceValid: boolPtr(true)}

	action := models.ActionConfirmInsurance
	if models.PaymentConfirmed(b.PaymentStatus) && b.DocumentsSatisfied() {
		action = models.ActionAutoActivate
		update.ActivatedAt = timePtr(now)
		update.ActivatedTrigger = strPtr(models.TriggerAutoOnInsurance)
	}

	t, err := plan(b, action, update)
	if err != nil {
		return nil, err
	}
	if action == models.ActionAutoActivate && len(b.ReleasedDocuments) == 0 {
		t.Update.ReleasedDocuments = uc.releasableDocuments(ctx, b, now)
	}

	from := b.Status
	if err := uc.apply(ctx, b, t); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Driver insurance confirmed",
		logger.BookingID(b.ID),
		logger.String("verified_by", req.VerifiedBy),
		logger.String("status", string(b.Status)))

	effects := &models.Effects{}
	effects.AddHistory(newHistory(b, "insurance_confirmed", req.VerifiedBy, models.ActorAdmin,
		"Driver insurance verified",
		models.JSONMap{"previous_status": from, "status": b.Status}, now))

	driverMessage := fmt.Sprintf("Your insurance for %s has been verified", b.VehicleLabel())
	if b.Status == models.BookingStatusActive {
		driverMessage += ". Your booking is now active"
	}
	effects.Notify(notifyDriver(b, notifyInsuranceConfirmed, models.PriorityNormal, "Insurance verified", driverMessage, now))
	effects.Notify(notifyPartner(b, notifyInsuranceConfirmed, models.PriorityNormal,
		"Driver insurance verified",
		fmt.Sprintf("%s's insurance for %s was verified", b.DriverName, b.VehicleLabel()),
		now))
	effects.AddEvent(newEvent(b, action, from, b.Status, now))
	uc.dispatch(ctx, b.ID, effects)

	return &models.ConfirmInsuranceResult{BookingID: b.ID, Status: b.Status}, nil
}
