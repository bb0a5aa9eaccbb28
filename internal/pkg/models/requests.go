package models

import "time"

// CreateBookingRequest is the body of POST /api/v1/bookings
type CreateBookingRequest struct {
	DriverID                     string    `json:"driver_id" validate:"required"`
	PartnerID                    string    `json:"partner_id" validate:"required"`
	VehicleID                    string    `json:"vehicle_id" validate:"required"`
	StartDate                    time.Time `json:"start_date" validate:"required"`
	EndDate                      time.Time `json:"end_date" validate:"required"`
	WeeklyRate                   float64   `json:"weekly_rate" validate:"required,gt=0"`
	DepositAmount                float64   `json:"deposit_amount" validate:"gte=0"`
	InsuranceRequired            bool      `json:"insurance_required"`
	PaymentMethod                string    `json:"payment_method" validate:"omitempty,oneof=bank_transfer direct_debit"`
	RequirePartnerApproval       bool      `json:"require_partner_approval"`
	PartnerProvidesInsurance     bool      `json:"partner_provides_insurance"`
	RequiresDocumentVerification bool      `json:"requires_document_verification"`
}

type CreateBookingResult struct {
	BookingID                 string        `json:"booking_id"`
	Status                    BookingStatus `json:"status"`
	TotalAmount               float64       `json:"total_amount"`
	TotalWeeks                int           `json:"total_weeks"`
	PaymentDeadline           *time.Time    `json:"payment_deadline,omitempty"`
	PartnerAcceptanceDeadline *time.Time    `json:"partner_acceptance_deadline,omitempty"`
}

// PartnerResponseRequest is the partner's accept or reject decision
type PartnerResponseRequest struct {
	BookingID         string `json:"-"`
	PartnerID         string `json:"partner_id" validate:"required"`
	Action            string `json:"action" validate:"required,oneof=accept reject"`
	RejectionReason   string `json:"rejection_reason"`
	OverrideInsurance bool   `json:"override_insurance"`
}

type PartnerResponseResult struct {
	BookingID           string        `json:"booking_id"`
	Status              BookingStatus `json:"status"`
	ResponseTimeMinutes int           `json:"response_time_minutes"`
}

const (
	CancelTypeFull     = "full"
	CancelTypeProrated = "prorated"
	CancelTypeNone     = "none"
)

type CancelBookingRequest struct {
	BookingID             string  `json:"-"`
	Reason                string  `json:"reason" validate:"required"`
	CancelType            string  `json:"cancel_type" validate:"required"`
	InsuranceRefundAmount float64 `json:"insurance_refund_amount" validate:"gte=0"`
	CancelledBy           string  `json:"cancelled_by"`
	CancelledByType       string  `json:"cancelled_by_type"`
}

type CancelBookingResult struct {
	BookingID       string        `json:"booking_id"`
	Status          BookingStatus `json:"status"`
	RefundAmount    float64       `json:"refund_amount"`
	InsuranceRefund float64       `json:"insurance_refund"`
	DaysUsed        int           `json:"days_used"`
	RemainingDays   int           `json:"remaining_days"`
}

type FinishBookingRequest struct {
	BookingID      string `json:"-"`
	FinishedBy     string `json:"finished_by" validate:"required"`
	FinishedByType string `json:"finished_by_type" validate:"required,oneof=driver partner admin"`
	FinalNotes     string `json:"final_notes"`
	FinalMileage   *int   `json:"final_mileage" validate:"omitempty,gte=0"`
	FinalFuelLevel string `json:"final_fuel_level"`
}

type FinishBookingResult struct {
	BookingID         string        `json:"booking_id"`
	Status            BookingStatus `json:"status"`
	TotalDays         int           `json:"total_days"`
	TotalWeeks        int           `json:"total_weeks"`
	FinalAmount       float64       `json:"final_amount"`
	OutstandingAmount float64       `json:"outstanding_amount"`
}

// ConfirmPaymentRequest identifies a manual transfer by instruction or by booking
type ConfirmPaymentRequest struct {
	InstructionID string `json:"instruction_id"`
	BookingID     string `json:"booking_id"`
	ConfirmedBy   string `json:"confirmed_by"`
}

type ConfirmPaymentResult struct {
	InstructionID string        `json:"instruction_id"`
	BookingID     string        `json:"booking_id"`
	Status        string        `json:"status"`
	BookingStatus BookingStatus `json:"booking_status"`
	Amount        float64       `json:"amount"`
	NextDueDate   *time.Time    `json:"next_due_date"`
}

type ConfirmInsuranceRequest struct {
	BookingID  string `json:"-"`
	VerifiedBy string `json:"verified_by" validate:"required"`
}

type ConfirmInsuranceResult struct {
	BookingID string        `json:"booking_id"`
	Status    BookingStatus `json:"status"`
}

// SweepReport describes what one deadline check looked at and changed
type SweepReport struct {
	BookingID         string        `json:"booking_id"`
	Status            BookingStatus `json:"status"`
	ChecksPerformed   []string      `json:"checks_performed"`
	ActionsTaken      []string      `json:"actions_taken"`
	NotificationsSent int           `json:"notifications_sent"`
}
