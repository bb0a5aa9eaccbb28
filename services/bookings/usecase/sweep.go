package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/comparepco/comparepco/internal/pkg/apperror"
	"github.com/comparepco/comparepco/internal/pkg/constants"
	"github.com/comparepco/comparepco/internal/pkg/logger"
	"github.com/comparepco/comparepco/internal/pkg/models"
)

// Sweep check names reported in SweepReport.ChecksPerformed
const (
	checkPartnerAcceptance = "partner_acceptance_deadline"
	checkPayment           = "payment_deadline"
	checkInsuranceUpload   = "insurance_upload_deadline"
	checkEndDate           = "end_date"
)

// SweepDeadlines evaluates the single deadline that matters for the booking's current status
func (uc *bookingUC) SweepDeadlines(ctx context.Context, bookingID string) (*models.SweepReport, error) {
	b, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	report := &models.SweepReport{
		BookingID:       b.ID,
		Status:          b.Status,
		ChecksPerformed: []string{},
		ActionsTaken:    []string{},
	}
	effects := &models.Effects{}

	switch b.Status {
	case models.BookingStatusPendingPartnerApproval:
		report.ChecksPerformed = append(report.ChecksPerformed, checkPartnerAcceptance)
		err = uc.sweepApproval(ctx, b, now, report, effects)
	case models.BookingStatusPendingPayment:
		report.ChecksPerformed = append(report.ChecksPerformed, checkPayment)
		if passed(b.PaymentDeadline, now) {
			err = uc.expire(ctx, b, models.ActionExpirePayment, now, report, effects)
		}
	case models.BookingStatusPendingInsuranceUpload:
		report.ChecksPerformed = append(report.ChecksPerformed, checkInsuranceUpload)
		if passed(b.InsuranceUploadDeadline, now) {
			err = uc.expire(ctx, b, models.ActionExpireInsurance, now, report, effects)
		}
	case models.BookingStatusActive, models.BookingStatusInProgress:
		report.ChecksPerformed = append(report.ChecksPerformed, checkEndDate)
		if now.After(b.EndDate) {
			err = uc.markOverdue(ctx, b, now, report, effects)
		}
	}

	if err != nil {
		// another writer moved the booking first; nothing left for this sweep to do
		if apperror.Is(err, apperror.KindConflict) {
			logger.InfoCtx(ctx, "Booking changed during deadline sweep", logger.BookingID(b.ID), logger.Err(err))
			return report, nil
		}
		return nil, err
	}

	report.Status = b.Status
	report.NotificationsSent = len(effects.Notifications)
	if effects.Len() > 0 {
		uc.dispatch(ctx, b.ID, effects)
	}
	if len(report.ActionsTaken) > 0 {
		logger.InfoCtx(ctx, "Deadline sweep applied",
			logger.BookingID(b.ID),
			logger.Strings("actions", report.ActionsTaken),
			logger.String("status", string(b.Status)))
	}
	return report, nil
}

func passed(deadline *time.Time, now time.Time) bool {
	return deadline != nil && now.After(*deadline)
}

func (uc *bookingUC) sweepApproval(ctx context.Context, b *models.Booking, now time.Time, report *models.SweepReport, effects *models.Effects) error {
	deadline := b.PartnerAcceptanceDeadline
	if deadline == nil {
		return nil
	}
	if now.After(*deadline) {
		return uc.expire(ctx, b, models.ActionExpireApproval, now, report, effects)
	}
	if deadline.Sub(now) > uc.cfg.Booking.ReminderWindow {
		return nil
	}

	first, err := uc.bookingGW.MarkReminderSent(ctx, b.ID, constants.ReminderPartnerApproval, *deadline)
	if err != nil {
		logger.WarnCtx(ctx, "Reminder de-duplication unavailable, sending anyway", logger.BookingID(b.ID), logger.Err(err))
		first = true
	}
	if !first {
		return nil
	}

	hoursLeft := int(deadline.Sub(now).Hours())
	effects.Notify(notifyPartner(b, notifyApprovalReminder, models.PriorityUrgent,
		"Booking awaiting your response",
		fmt.Sprintf("Booking for %s by %s expires in %d hours. Please accept or reject it.", b.VehicleLabel(), b.DriverName, hoursLeft),
		now))
	report.ActionsTaken = append(report.ActionsTaken, "partner_reminder_sent")
	return nil
}

// expire closes a booking whose actor missed the deadline and frees the vehicle
func (uc *bookingUC) expire(ctx context.Context, b *models.Booking, action models.BookingAction, now time.Time, report *models.SweepReport, effects *models.Effects) error {
	t, err := plan(b, action, models.BookingUpdate{})
	if err != nil {
		return err
	}
	t.Vehicle = releaseVehicle(b, nil)

	var reason string
	switch action {
	case models.ActionExpireApproval:
		reason = "Partner did not respond before the acceptance deadline"
		instructions, err := uc.bookingRepo.ListInstructions(ctx, b.ID)
		if err != nil {
			return err
		}
		t.Instructions = refundInstructions(b, instructions, "Booking auto-rejected", now)
	case models.ActionExpirePayment:
		reason = "Payment was not received before the payment deadline"
	default:
		reason = "Insurance was not uploaded before the deadline"
	}

	from := b.Status
	if err := uc.apply(ctx, b, t); err != nil {
		return err
	}
	report.ActionsTaken = append(report.ActionsTaken, string(b.Status))

	effects.AddHistory(newHistory(b, string(b.Status), models.ActorSystem, models.ActorSystem, reason,
		models.JSONMap{"previous_status": from, "refund_instructions": len(t.Instructions)}, now))
	effects.Notify(notifyDriver(b, notifyBookingExpired, models.PriorityHigh,
		"Booking expired",
		fmt.Sprintf("Your booking for %s has expired: %s", b.VehicleLabel(), reason),
		now))
	if action == models.ActionExpireApproval {
		effects.Notify(notifyAdmin(b, notifyBookingExpired, models.PriorityNormal,
			"Booking auto-rejected",
			fmt.Sprintf("%s did not respond to booking %s in time", b.PartnerCompanyName, b.ID),
			now))
	}
	effects.AddEvent(newEvent(b, action, from, b.Status, now))
	return nil
}

func (uc *bookingUC) markOverdue(ctx context.Context, b *models.Booking, now time.Time, report *models.SweepReport, effects *models.Effects) error {
	t, err := plan(b, models.ActionMarkOverdue, models.BookingUpdate{})
	if err != nil {
		return err
	}

	from := b.Status
	if err := uc.apply(ctx, b, t); err != nil {
		return err
	}
	report.ActionsTaken = append(report.ActionsTaken, string(b.Status))

	effects.AddHistory(newHistory(b, "booking_overdue", models.ActorSystem, models.ActorSystem,
		"Rental period ended without the vehicle being returned",
		models.JSONMap{"previous_status": from, "end_date": b.EndDate}, now))
	effects.Notify(notifyDriver(b, notifyBookingOverdue, models.PriorityUrgent,
		"Booking overdue",
		fmt.Sprintf("Your booking for %s ended on %s. Please return the vehicle.", b.VehicleLabel(), b.EndDate.Format("2 Jan 2006")),
		now))
	effects.Notify(notifyPartner(b, notifyBookingOverdue, models.PriorityHigh,
		"Booking overdue",
		fmt.Sprintf("%s has not returned %s", b.DriverName, b.VehicleLabel()),
		now))
	effects.AddEvent(newEvent(b, models.ActionMarkOverdue, from, b.Status, now))
	return nil
}
