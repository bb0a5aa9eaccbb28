package http

import (
	"net/http"

	"github.com/comparepco/comparepco/internal/pkg/apperror"
	"github.com/comparepco/comparepco/internal/pkg/logger"
	"github.com/comparepco/comparepco/internal/pkg/models"
	nrpkg "github.com/comparepco/comparepco/internal/pkg/newrelic"
	"github.com/comparepco/comparepco/internal/utils"
	"github.com/comparepco/comparepco/services/bookings"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// BookingHandler handles HTTP requests for booking operations
type BookingHandler struct {
	bookingUC bookings.BookingUC
}

// NewBookingHandler creates a new booking HTTP handler
func NewBookingHandler(bookingUC bookings.BookingUC) *BookingHandler {
	return &BookingHandler{
		bookingUC: bookingUC,
	}
}

// fail reports the error on the transaction and renders it with its kind
func fail(c echo.Context, txn *newrelic.Transaction, operation string, err error) error {
	if apperror.KindOf(err) == apperror.KindInternal {
		nrpkg.NoticeTransactionError(txn, err)
		logger.ErrorCtx(c.Request().Context(), "Booking operation failed",
			logger.String("operation", operation),
			logger.String("booking_id", c.Param("bookingID")),
			logger.Err(err))
	} else {
		logger.WarnCtx(c.Request().Context(), "Booking operation rejected",
			logger.String("operation", operation),
			logger.String("booking_id", c.Param("bookingID")),
			logger.String("kind", string(apperror.KindOf(err))),
			logger.Err(err))
	}
	return utils.AppErrorResponse(c, err)
}

// bind decodes and validates the body. The returned error is already rendered.
func bind(c echo.Context, req interface{}) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(req); err != nil {
		return false, utils.AppErrorResponse(c, err)
	}
	return true, nil
}

func begin(c echo.Context, name string) *newrelic.Transaction {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings."+name)
	if id := c.Param("bookingID"); id != "" {
		nrpkg.AddTransactionAttribute(txn, "booking_id", id)
	}
	return txn
}

// CreateBooking handles POST /api/v1/bookings
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	txn := begin(c, "Create")

	var req models.CreateBookingRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	result, err := h.bookingUC.CreateBooking(c.Request().Context(), &req)
	if err != nil {
		return fail(c, txn, "create", err)
	}
	nrpkg.AddTransactionAttribute(txn, "booking_id", result.BookingID)

	return utils.SuccessResponse(c, http.StatusCreated, "Booking created successfully", result)
}

// RespondToBooking handles POST /api/v1/bookings/:bookingID/partner-response
func (h *BookingHandler) RespondToBooking(c echo.Context) error {
	txn := begin(c, "PartnerResponse")

	var req models.PartnerResponseRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}
	req.BookingID = c.Param("bookingID")

	result, err := h.bookingUC.RespondToBooking(c.Request().Context(), &req)
	if err != nil {
		return fail(c, txn, "partner_response", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking "+req.Action+"ed", result)
}

// CancelBooking handles POST /api/v1/bookings/:bookingID/cancel
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	txn := begin(c, "Cancel")

	var req models.CancelBookingRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}
	req.BookingID = c.Param("bookingID")

	result, err := h.bookingUC.CancelBooking(c.Request().Context(), &req)
	if err != nil {
		return fail(c, txn, "cancel", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking cancelled", result)
}

// FinishBooking handles POST /api/v1/bookings/:bookingID/finish
func (h *BookingHandler) FinishBooking(c echo.Context) error {
	txn := begin(c, "Finish")

	var req models.FinishBookingRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}
	req.BookingID = c.Param("bookingID")

	result, err := h.bookingUC.FinishBooking(c.Request().Context(), &req)
	if err != nil {
		return fail(c, txn, "finish", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking completed", result)
}

// ConfirmInsurance handles POST /api/v1/bookings/:bookingID/insurance/confirm
func (h *BookingHandler) ConfirmInsurance(c echo.Context) error {
	txn := begin(c, "ConfirmInsurance")

	var req models.ConfirmInsuranceRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}
	req.BookingID = c.Param("bookingID")

	result, err := h.bookingUC.ConfirmInsurance(c.Request().Context(), &req)
	if err != nil {
		return fail(c, txn, "confirm_insurance", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Insurance confirmed", result)
}

// GetBooking handles GET /api/v1/bookings/:bookingID
func (h *BookingHandler) GetBooking(c echo.Context) error {
	txn := begin(c, "Get")

	booking, err := h.bookingUC.GetBooking(c.Request().Context(), c.Param("bookingID"))
	if err != nil {
		return fail(c, txn, "get", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", booking)
}

// ListBookingHistory handles GET /api/v1/bookings/:bookingID/history
func (h *BookingHandler) ListBookingHistory(c echo.Context) error {
	txn := begin(c, "History")

	history, err := h.bookingUC.ListBookingHistory(c.Request().Context(), c.Param("bookingID"))
	if err != nil {
		return fail(c, txn, "history", err)
	}
	if history == nil {
		history = []*models.BookingHistoryEntry{}
	}

	return utils.SuccessResponse(c, http.StatusOK, "", history)
}

// ListPaymentInstructions handles GET /api/v1/bookings/:bookingID/payment-instructions
func (h *BookingHandler) ListPaymentInstructions(c echo.Context) error {
	txn := begin(c, "PaymentInstructions")

	instructions, err := h.bookingUC.ListPaymentInstructions(c.Request().Context(), c.Param("bookingID"))
	if err != nil {
		return fail(c, txn, "payment_instructions", err)
	}
	if instructions == nil {
		instructions = []*models.PaymentInstruction{}
	}

	return utils.SuccessResponse(c, http.StatusOK, "", instructions)
}

// ConfirmPaymentReceived handles POST /api/v1/payments/confirm-received
func (h *BookingHandler) ConfirmPaymentReceived(c echo.Context) error {
	txn := begin(c, "ConfirmPaymentReceived")

	var req models.ConfirmPaymentRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}
	nrpkg.AddTransactionAttribute(txn, "instruction_id", req.InstructionID)

	result, err := h.bookingUC.ConfirmPaymentReceived(c.Request().Context(), &req)
	if err != nil {
		return fail(c, txn, "confirm_payment", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment confirmed", result)
}

// CheckDeadlines handles POST /internal/bookings/:bookingID/check-deadlines
func (h *BookingHandler) CheckDeadlines(c echo.Context) error {
	txn := begin(c, "CheckDeadlines")

	report, err := h.bookingUC.SweepDeadlines(c.Request().Context(), c.Param("bookingID"))
	if err != nil {
		return fail(c, txn, "check_deadlines", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Deadline check completed", report)
}
