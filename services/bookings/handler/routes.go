package handler

import (
	"github.com/comparepco/comparepco/internal/pkg/middleware"
	natspkg "github.com/comparepco/comparepco/internal/pkg/nats"
	"github.com/comparepco/comparepco/services/bookings"
	httpHandler "github.com/comparepco/comparepco/services/bookings/handler/http"
	natsHandler "github.com/comparepco/comparepco/services/bookings/handler/nats"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler combines all handlers for the bookings service
type Handler struct {
	bookingHTTP *httpHandler.BookingHandler
	bookingNATS *natsHandler.BookingHandler
}

// NewHandler creates a new combined handler
func NewHandler(
	bookingUC bookings.BookingUC,
	natsClient *natspkg.Client,
	queueGroup string,
	nrApp *newrelic.Application,
) *Handler {
	return &Handler{
		bookingHTTP: httpHandler.NewBookingHandler(bookingUC),
		bookingNATS: natsHandler.NewBookingHandler(bookingUC, natsClient, queueGroup, nrApp),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKeyMiddleware *middleware.APIKeyMiddleware) {
	api := e.Group("/api/v1")

	bookingGroup := api.Group("/bookings")
	bookingGroup.POST("", h.bookingHTTP.CreateBooking)
	bookingGroup.GET("/:bookingID", h.bookingHTTP.GetBooking)
	bookingGroup.GET("/:bookingID/history", h.bookingHTTP.ListBookingHistory)
	bookingGroup.GET("/:bookingID/payment-instructions", h.bookingHTTP.ListPaymentInstructions)
	bookingGroup.POST("/:bookingID/partner-response", h.bookingHTTP.RespondToBooking)
	bookingGroup.POST("/:bookingID/cancel", h.bookingHTTP.CancelBooking)
	bookingGroup.POST("/:bookingID/finish", h.bookingHTTP.FinishBooking)
	bookingGroup.POST("/:bookingID/insurance/confirm", h.bookingHTTP.ConfirmInsurance,
		apiKeyMiddleware.ValidateAPIKey("admin-service"))

	paymentGroup := api.Group("/payments")
	paymentGroup.POST("/confirm-received", h.bookingHTTP.ConfirmPaymentReceived)

	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal", apiKeyMiddleware.ValidateAPIKey("deadline-scheduler", "admin-service"))
	internal.POST("/bookings/:bookingID/check-deadlines", h.bookingHTTP.CheckDeadlines)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.bookingNATS.InitNATSConsumers()
}

// Close stops the NATS consumers
func (h *Handler) Close() {
	h.bookingNATS.Unsubscribe()
}
