package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/comparepco/comparepco/internal/pkg/apperror"
	"github.com/comparepco/comparepco/internal/pkg/logger"
	"github.com/comparepco/comparepco/internal/pkg/models"
	"github.com/google/uuid"
)

// CreateBooking reserves the vehicle and opens a booking with its deposit and weekly rent instructions
func (uc *bookingUC) CreateBooking(ctx context.Context, req *models.CreateBookingRequest) (*models.CreateBookingResult, error) {
	now := uc.now()

	switch {
	case req.DriverID == "":
		return nil, apperror.Validation("driver_id is required")
	case req.PartnerID == "":
		return nil, apperror.Validation("partner_id is required")
	case req.VehicleID == "":
		return nil, apperror.Validation("vehicle_id is required")
	case req.StartDate.IsZero() || req.EndDate.IsZero():
		return nil, apperror.Validation("start_date and end_date are required")
	case req.WeeklyRate <= 0:
		return nil, apperror.Validation("weekly_rate must be greater than 0")
	case req.DepositAmount < 0:
		return nil, apperror.Validation("deposit_amount cannot be negative")
	case req.StartDate.Before(now.Truncate(day)):
		return nil, apperror.Validation("start_date cannot be in the past")
	case !req.EndDate.After(req.StartDate):
		return nil, apperror.Validation("end_date must be after start_date")
	}

	vehicle, err := uc.bookingRepo.GetVehicle(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.PartnerID != req.PartnerID {
		return nil, apperror.Validation("vehicle %s does not belong to partner %s", req.VehicleID, req.PartnerID)
	}
	if vehicle.Status != models.VehicleStatusAvailable {
		return nil, apperror.Conflict("vehicle %s is not available", req.VehicleID)
	}

	driver, err := uc.bookingRepo.GetDriver(ctx, req.DriverID)
	if err != nil {
		return nil, err
	}
	partner, err := uc.bookingRepo.GetPartner(ctx, req.PartnerID)
	if err != nil {
		return nil, err
	}

	method := req.PaymentMethod
	if method == "" {
		method = models.PaymentMethodBankTransfer
	}

	booking := &models.Booking{
		ID:                           uuid.NewString(),
		DriverID:                     req.DriverID,
		PartnerID:                    req.PartnerID,
		VehicleID:                    req.VehicleID,
		StartDate:                    req.StartDate.UTC(),
		EndDate:                      req.EndDate.UTC(),
		CreatedAt:                    now,
		UpdatedAt:                    now,
		WeeklyRate:                   req.WeeklyRate,
		DepositAmount:                req.DepositAmount,
		TotalAmount:                  totalAmount(req.StartDate, req.EndDate, req.WeeklyRate, req.DepositAmount),
		PaymentMethod:                method,
		PaymentStatus:                models.PaymentStatusPending,
		Status:                       models.BookingStatusPendingPayment,
		InsuranceRequired:            req.InsuranceRequired,
		PartnerProvidesInsurance:     req.PartnerProvidesInsurance,
		RequiresDocumentVerification: req.RequiresDocumentVerification,
		DocumentVerificationStatus:   "pending",
		DriverName:                   driver.Name,
		DriverEmail:                  driver.Email,
		PartnerCompanyName:           partner.CompanyName,
		PartnerEmail:                 partner.Email,
		VehicleMake:                  vehicle.Make,
		VehicleModel:                 vehicle.Model,
		VehicleRegistration:          vehicle.Registration,
	}
	if !req.RequiresDocumentVerification {
		booking.DocumentVerificationStatus = models.DocumentVerificationApproved
	}

	if req.RequirePartnerApproval {
		booking.Status = models.BookingStatusPendingPartnerApproval
		booking.PartnerAcceptanceDeadline = timePtr(now.Add(uc.cfg.Booking.PartnerAcceptanceWindow))
	} else {
		booking.PaymentDeadline = timePtr(now.Add(uc.cfg.Booking.PaymentWindow))
	}

	instructions := initialInstructions(booking, now)

	if err := uc.bookingRepo.CreateBooking(ctx, booking, instructions); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Booking created",
		logger.BookingID(booking.ID),
		logger.String("status", string(booking.Status)),
		logger.Float64("total_amount", booking.TotalAmount))

	currency := uc.cfg.Booking.Currency
	effects := &models.Effects{}
	effects.AddHistory(newHistory(booking, "booking_created", booking.DriverID, models.ActorDriver,
		fmt.Sprintf("Booking created for %s", booking.VehicleLabel()),
		models.JSONMap{
			"status":         booking.Status,
			"total_amount":   booking.TotalAmount,
			"weekly_rate":    booking.WeeklyRate,
			"deposit_amount": booking.DepositAmount,
			"total_weeks":    totalWeeks(booking.StartDate, booking.EndDate),
		}, now))
	effects.Notify(notifyPartner(booking, notifyBookingRequest, models.PriorityHigh,
		"New booking request",
		fmt.Sprintf("%s requested %s from %s", booking.DriverName, booking.VehicleLabel(), booking.StartDate.Format("2 Jan 2006")),
		now))
	effects.Notify(notifyDriver(booking, notifyBookingCreated, models.PriorityNormal,
		"Booking submitted",
		fmt.Sprintf("Your booking for %s totals %s", booking.VehicleLabel(), money(booking.TotalAmount, currency)),
		now))
	effects.AddEvent(newEvent(booking, actionCreate, "", booking.Status, now))
	uc.dispatch(ctx, booking.ID, effects)

	return &models.CreateBookingResult{
		BookingID:                 booking.ID,
		Status:                    booking.Status,
		TotalAmount:               booking.TotalAmount,
		TotalWeeks:                totalWeeks(booking.StartDate, booking.EndDate),
		PaymentDeadline:           booking.PaymentDeadline,
		PartnerAcceptanceDeadline: booking.PartnerAcceptanceDeadline,
	}, nil
}

func initialInstructions(b *models.Booking, now time.Time) []*models.PaymentInstruction {
	var instructions []*models.PaymentInstruction
	newInstruction := func(typ, frequency string, amount float64, due time.Time) *models.PaymentInstruction {
		return &models.PaymentInstruction{
			ID:          uuid.NewString(),
			BookingID:   b.ID,
			DriverID:    b.DriverID,
			PartnerID:   b.PartnerID,
			Amount:      amount,
			Type:        typ,
			Method:      b.PaymentMethod,
			Status:      models.InstructionStatusPending,
			Frequency:   frequency,
			NextDueDate: timePtr(due),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}

	if b.DepositAmount > 0 {
		instructions = append(instructions, newInstruction(models.InstructionTypeDeposit, models.FrequencyOneOff, b.DepositAmount, now))
	}
	instructions = append(instructions, newInstruction(models.InstructionTypeWeeklyRent, models.FrequencyWeekly, b.WeeklyRate, b.StartDate))
	return instructions
}
