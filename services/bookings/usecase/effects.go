package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/comparepco/comparepco/internal/pkg/logger"
	"github.com/comparepco/comparepco/internal/pkg/models"
	"github.com/google/uuid"
)

// adminRecipient addresses the shared admin inbox
const adminRecipient = "admin"

// Notification types
const (
	notifyBookingRequest     = "booking_request"
	notifyBookingCreated     = "booking_created"
	notifyBookingAccepted    = "booking_accepted"
	notifyBookingRejected    = "booking_rejected"
	notifyInsuranceRequired  = "insurance_upload_required"
	notifyBookingActivated   = "booking_activated"
	notifyBookingCancelled   = "booking_cancelled"
	notifyBookingCompleted   = "booking_completed"
	notifyPaymentReceived    = "payment_received"
	notifyApprovalReminder   = "approval_reminder"
	notifyBookingExpired     = "booking_expired"
	notifyBookingOverdue     = "booking_overdue"
	notifyInsuranceConfirmed = "insurance_confirmed"
	notifyPartnerResponse    = "partner_response"
)

func newHistory(b *models.Booking, action, by, byType, description string, details models.JSONMap, now time.Time) *models.BookingHistoryEntry {
	return &models.BookingHistoryEntry{
		ID:              uuid.NewString(),
		BookingID:       b.ID,
		Action:          action,
		PerformedBy:     by,
		PerformedByType: byType,
		Details:         details,
		Description:     description,
		CreatedAt:       now,
	}
}

func newNotification(b *models.Booking, typ, recipientID, recipientType, priority, title, message string, now time.Time) *models.Notification {
	return &models.Notification{
		ID:            uuid.NewString(),
		Type:          typ,
		RecipientID:   recipientID,
		RecipientType: recipientType,
		Title:         title,
		Message:       message,
		Data: models.JSONMap{
			"booking_id": b.ID,
			"status":     b.Status,
		},
		Priority:  priority,
		CreatedAt: now,
	}
}

func notifyDriver(b *models.Booking, typ, priority, title, message string, now time.Time) *models.Notification {
	return newNotification(b, typ, b.DriverID, models.ActorDriver, priority, title, message, now)
}

func notifyPartner(b *models.Booking, typ, priority, title, message string, now time.Time) *models.Notification {
	return newNotification(b, typ, b.PartnerID, models.ActorPartner, priority, title, message, now)
}

func notifyAdmin(b *models.Booking, typ, priority, title, message string, now time.Time) *models.Notification {
	return newNotification(b, typ, adminRecipient, models.ActorAdmin, priority, title, message, now)
}

// transactionPair records one money movement as partner income and driver expense of the same amount
func transactionPair(b *models.Booking, category string, amount float64, description string, now time.Time) []*models.Transaction {
	leg := func(typ string) *models.Transaction {
		return &models.Transaction{
			ID:          uuid.NewString(),
			BookingID:   b.ID,
			PartnerID:   b.PartnerID,
			DriverID:    b.DriverID,
			Type:        typ,
			Category:    category,
			Amount:      amount,
			NetAmount:   amount,
			Status:      "completed",
			Source:      "booking",
			Description: description,
			CreatedAt:   now,
		}
	}
	return []*models.Transaction{leg(models.TransactionTypeIncome), leg(models.TransactionTypeExpense)}
}

func newEvent(b *models.Booking, action models.BookingAction, from, to models.BookingStatus, now time.Time) *models.BookingEvent {
	return &models.BookingEvent{
		BookingID:  b.ID,
		Action:     string(action),
		FromStatus: from,
		ToStatus:   to,
		DriverID:   b.DriverID,
		PartnerID:  b.PartnerID,
		OccurredAt: now,
	}
}

// dispatch hands the effects to the outbox. The primary write already committed, so failures are only logged.
func (uc *bookingUC) dispatch(ctx context.Context, bookingID string, effects *models.Effects) {
	if err := uc.bookingGW.EnqueueEffects(ctx, bookingID, effects); err != nil {
		logger.ErrorCtx(ctx, "Failed to record booking side effects",
			logger.BookingID(bookingID),
			logger.Int("history", len(effects.History)),
			logger.Int("transactions", len(effects.Transactions)),
			logger.Int("notifications", len(effects.Notifications)),
			logger.Int("events", len(effects.Events)),
			logger.Err(err))
	}
}

func money(amount float64, currency string) string {
	symbol := currency + " "
	if currency == "GBP" {
		symbol = "£"
	}
	return fmt.Sprintf("%s%.2f", symbol, amount)
}
