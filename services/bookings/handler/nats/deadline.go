package nats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/comparepco/comparepco/internal/pkg/constants"
	"github.com/comparepco/comparepco/internal/pkg/logger"
	"github.com/comparepco/comparepco/internal/pkg/models"
	natspkg "github.com/comparepco/comparepco/internal/pkg/nats"
	nrpkg "github.com/comparepco/comparepco/internal/pkg/newrelic"
	"github.com/comparepco/comparepco/services/bookings"
	"github.com/nats-io/nats.go"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// BookingHandler handles NATS subscriptions for the bookings service
type BookingHandler struct {
	bookingUC  bookings.BookingUC
	natsClient *natspkg.Client
	queueGroup string
	nrApp      *newrelic.Application
	subs       []*nats.Subscription
}

// NewBookingHandler creates a new bookings NATS handler
func NewBookingHandler(
	bookingUC bookings.BookingUC,
	client *natspkg.Client,
	queueGroup string,
	nrApp *newrelic.Application,
) *BookingHandler {
	return &BookingHandler{
		bookingUC:  bookingUC,
		natsClient: client,
		queueGroup: queueGroup,
		nrApp:      nrApp,
		subs:       make([]*nats.Subscription, 0),
	}
}

// InitNATSConsumers joins the deadline check queue so each check runs on one instance
func (h *BookingHandler) InitNATSConsumers() error {
	sub, err := h.natsClient.QueueSubscribe(constants.SubjectDeadlineCheck, h.queueGroup, func(msg *nats.Msg) {
		report, err := h.handleDeadlineCheck(msg.Data)
		if err != nil {
			logger.Error("Error handling deadline check", logger.Err(err))
		}
		if msg.Reply != "" {
			h.reply(msg, report, err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to deadline checks: %w", err)
	}
	h.subs = append(h.subs, sub)

	return nil
}

// Unsubscribe stops all consumers
func (h *BookingHandler) Unsubscribe() {
	for _, sub := range h.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe", logger.String("subject", sub.Subject), logger.Err(err))
		}
	}
	h.subs = nil
}

func (h *BookingHandler) handleDeadlineCheck(data []byte) (*models.SweepReport, error) {
	ctx, end := nrpkg.StartBackgroundTransaction(context.Background(), h.nrApp, "Bookings.DeadlineCheck")
	defer end()

	var check models.DeadlineCheck
	if err := json.Unmarshal(data, &check); err != nil {
		return nil, fmt.Errorf("failed to unmarshal deadline check: %w", err)
	}
	if check.BookingID == "" {
		return nil, errors.New("deadline check without booking_id")
	}
	nrpkg.AddTransactionAttribute(nrpkg.FromContext(ctx), "booking_id", check.BookingID)

	report, err := h.bookingUC.SweepDeadlines(ctx, check.BookingID)
	if err != nil {
		nrpkg.NoticeTransactionError(nrpkg.FromContext(ctx), err)
		return nil, fmt.Errorf("deadline sweep for %s failed: %w", check.BookingID, err)
	}

	logger.DebugCtx(ctx, "Deadline check handled",
		logger.BookingID(check.BookingID),
		logger.Strings("actions", report.ActionsTaken))
	return report, nil
}

// reply answers request/reply callers with the report or the error message
func (h *BookingHandler) reply(msg *nats.Msg, report *models.SweepReport, err error) {
	payload := map[string]interface{}{"success": err == nil}
	if err != nil {
		payload["error"] = err.Error()
	} else {
		payload["data"] = report
	}
	data, _ := json.Marshal(payload)
	if err := msg.Respond(data); err != nil {
		logger.Warn("Failed to reply to deadline check", logger.Err(err))
	}
}
