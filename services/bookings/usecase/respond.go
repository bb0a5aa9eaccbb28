package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/comparepco/comparepco/internal/pkg/apperror"
	"github.com/comparepco/comparepco/internal/pkg/logger"
	"github.com/comparepco/comparepco/internal/pkg/models"
)

// RespondToBooking records the partner's accept or reject decision
func (uc *bookingUC) RespondToBooking(ctx context.Context, req *models.PartnerResponseRequest) (*models.PartnerResponseResult, error) {
	if req.Action != "accept" && req.Action != "reject" {
		return nil, apperror.Validation("action must be one of: accept reject")
	}

	b, err := uc.bookingRepo.GetBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if b.PartnerID != req.PartnerID {
		return nil, apperror.Authorization("booking %s does not belong to partner %s", b.ID, req.PartnerID)
	}
	if b.Status != models.BookingStatusPendingPartnerApproval {
		return nil, apperror.Conflict("booking is %s", b.Status)
	}

	now := uc.now()
	responseMinutes := int(now.Sub(b.CreatedAt).Minutes())
	if responseMinutes < 0 {
		responseMinutes = 0
	}
	update := models.BookingUpdate{
		PartnerResponseAt:          timePtr(now),
		PartnerResponseTimeMinutes: intPtr(responseMinutes),
	}

	if req.Action == "reject" {
		err = uc.reject(ctx, b, req, update, now)
	} else {
		err = uc.accept(ctx, b, req, update, now)
	}
	if err != nil {
		return nil, err
	}

	return &models.PartnerResponseResult{
		BookingID:           b.ID,
		Status:              b.Status,
		ResponseTimeMinutes: responseMinutes,
	}, nil
}

func (uc *bookingUC) reject(ctx context.Context, b *models.Booking, req *models.PartnerResponseRequest, update models.BookingUpdate, now time.Time) error {
	reason := req.RejectionReason
	if reason == "" {
		reason = "No reason provided"
	}
	update.RejectionReason = strPtr(reason)

	t, err := plan(b, models.ActionReject, update)
	if err != nil {
		return err
	}

	instructions, err := uc.bookingRepo.ListInstructions(ctx, b.ID)
	if err != nil {
		return err
	}
	t.Vehicle = releaseVehicle(b, nil)
	t.Instructions = refundInstructions(b, instructions, "Booking rejected by partner", now)

	from := b.Status
	if err := uc.apply(ctx, b, t); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Booking rejected by partner",
		logger.BookingID(b.ID),
		logger.Int("refund_instructions", len(t.Instructions)))

	effects := &models.Effects{}
	effects.AddHistory(newHistory(b, "partner_rejected", req.PartnerID, models.ActorPartner,
		"Partner rejected the booking",
		models.JSONMap{
			"rejection_reason":      reason,
			"response_time_minutes": *update.PartnerResponseTimeMinutes,
			"refund_instructions":   len(t.Instructions),
		}, now))
	effects.Notify(notifyDriver(b, notifyBookingRejected, models.PriorityHigh,
		"Booking declined",
		fmt.Sprintf("%s declined your booking for %s: %s", b.PartnerCompanyName, b.VehicleLabel(), reason),
		now))
	effects.Notify(notifyAdmin(b, notifyPartnerResponse, models.PriorityNormal,
		"Partner rejected booking",
		fmt.Sprintf("%s rejected booking %s", b.PartnerCompanyName, b.ID),
		now))
	effects.AddEvent(newEvent(b, models.ActionReject, from, b.Status, now))
	uc.dispatch(ctx, b.ID, effects)
	return nil
}

func (uc *bookingUC) accept(ctx context.Context, b *models.Booking, req *models.PartnerResponseRequest, update models.BookingUpdate, now time.Time) error {
	if req.OverrideInsurance {
		b.DriverInsuranceValid = true
		update.DriverInsuranceValid = boolPtr(true)
	}

	paymentConfirmed := models.PaymentConfirmed(b.PaymentStatus)
	insuranceOK := b.InsuranceSatisfied()

	var action models.BookingAction
	switch {
	case paymentConfirmed && insuranceOK && b.DocumentsSatisfied():
		action = models.ActionAutoActivate
		update.ActivatedAt = timePtr(now)
		update.ActivatedTrigger = strPtr(models.TriggerAutoOnAcceptance)
	case !insuranceOK:
		action = models.ActionAcceptPendingInsurance
		update.InsuranceUploadDeadline = timePtr(now.Add(uc.cfg.Booking.InsuranceUploadWindow))
	default:
		action = models.ActionAccept
	}

	if paymentConfirmed {
		update.ReleasedDocuments = uc.releasableDocuments(ctx, b, now)
	}

	t, err := plan(b, action, update)
	if err != nil {
		return err
	}

	from := b.Status
	if err := uc.apply(ctx, b, t); err != nil {
		return err
	}

	if err := uc.bookingRepo.UpsertPartnerDriver(ctx, b.PartnerID, b.DriverID, b.ID); err != nil {
		logger.WarnCtx(ctx, "Failed to add driver to partner roster", logger.BookingID(b.ID), logger.Err(err))
	}

	logger.InfoCtx(ctx, "Booking accepted by partner",
		logger.BookingID(b.ID),
		logger.String("status", string(b.Status)),
		logger.Bool("payment_confirmed", paymentConfirmed))

	effects := &models.Effects{}
	effects.AddHistory(newHistory(b, "partner_accepted", req.PartnerID, models.ActorPartner,
		fmt.Sprintf("Partner accepted the booking, now %s", b.Status),
		models.JSONMap{
			"status":                b.Status,
			"response_time_minutes": *update.PartnerResponseTimeMinutes,
			"override_insurance":    req.OverrideInsurance,
			"payment_confirmed":     paymentConfirmed,
			"documents_released":    len(update.ReleasedDocuments),
		}, now))

	driverTitle, driverMessage, notifyType := "Booking accepted", fmt.Sprintf("%s accepted your booking for %s", b.PartnerCompanyName, b.VehicleLabel()), notifyBookingAccepted
	switch b.Status {
	case models.BookingStatusActive:
		driverTitle, notifyType = "Booking active", notifyBookingActivated
		driverMessage = fmt.Sprintf("Your booking for %s is now active", b.VehicleLabel())
	case models.BookingStatusPendingInsuranceUpload:
		driverTitle, notifyType = "Insurance required", notifyInsuranceRequired
		driverMessage = fmt.Sprintf("%s accepted your booking. Upload valid insurance by %s",
			b.PartnerCompanyName, update.InsuranceUploadDeadline.Format("2 Jan 2006 15:04"))
	}
	effects.Notify(notifyDriver(b, notifyType, models.PriorityHigh, driverTitle, driverMessage, now))
	effects.Notify(notifyAdmin(b, notifyPartnerResponse, models.PriorityNormal,
		"Partner accepted booking",
		fmt.Sprintf("%s accepted booking %s (%s)", b.PartnerCompanyName, b.ID, b.Status),
		now))
	effects.AddEvent(newEvent(b, action, from, b.Status, now))
	uc.dispatch(ctx, b.ID, effects)
	return nil
}

// releasableDocuments snapshots the vehicle's approved documents for the driver. A failed lookup releases nothing.
func (uc *bookingUC) releasableDocuments(ctx context.Context, b *models.Booking, now time.Time) models.ReleasedDocuments {
	docs, err := uc.bookingRepo.ListApprovedDocuments(ctx, b.VehicleID, models.ReleasableDocumentTypes)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to load vehicle documents", logger.BookingID(b.ID), logger.Err(err))
		return nil
	}
	if len(docs) == 0 {
		return nil
	}

	released := make(models.ReleasedDocuments, 0, len(docs))
	for _, d := range docs {
		released = append(released, models.ReleasedDocument{
			Type:       d.Type,
			FileURL:    d.FileURL,
			ExpiryDate: d.ExpiryDate,
			ReleasedAt: now,
		})
	}
	return released
}
