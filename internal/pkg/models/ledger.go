package models

import "time"

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

// Transaction categories
const (
	CategoryBookingPayment  = "booking_payment"
	CategoryRefund          = "refund"
	CategoryInsuranceRefund = "insurance_refund"
	CategoryPlatformFee     = "platform_fee"
	CategoryFinalSettlement = "final_settlement"
)

// Transaction is an immutable ledger entry
type Transaction struct {
	ID            string    `json:"id" db:"id"`
	BookingID     string    `json:"booking_id" db:"booking_id"`
	PartnerID     string    `json:"partner_id" db:"partner_id"`
	DriverID      string    `json:"driver_id" db:"driver_id"`
	Type          string    `json:"type" db:"type"`
	Category      string    `json:"category" db:"category"`
	Amount        float64   `json:"amount" db:"amount"`
	NetAmount     float64   `json:"net_amount" db:"net_amount"`
	PlatformFee   float64   `json:"platform_fee" db:"platform_fee"`
	ProcessingFee float64   `json:"processing_fee" db:"processing_fee"`
	Status        string    `json:"status" db:"status"`
	Source        string    `json:"source" db:"source"`
	Description   string    `json:"description" db:"description"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// BookingHistoryEntry is one audit record; every transition writes exactly one
type BookingHistoryEntry struct {
	ID              string    `json:"id" db:"id"`
	BookingID       string    `json:"booking_id" db:"booking_id"`
	Action          string    `json:"action" db:"action"`
	PerformedBy     string    `json:"performed_by" db:"performed_by"`
	PerformedByType string    `json:"performed_by_type" db:"performed_by_type"`
	Details         JSONMap   `json:"details" db:"details"`
	Description     string    `json:"description" db:"description"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// Notification priorities
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Notification is a message addressed to one recipient
type Notification struct {
	ID            string    `json:"id" db:"id"`
	Type          string    `json:"type" db:"type"`
	RecipientID   string    `json:"recipient_id" db:"recipient_id"`
	RecipientType string    `json:"recipient_type" db:"recipient_type"`
	Title         string    `json:"title" db:"title"`
	Message       string    `json:"message" db:"message"`
	Data          JSONMap   `json:"data" db:"data"`
	Priority      string    `json:"priority" db:"priority"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// BookingEvent is published for downstream consumers after a transition
type BookingEvent struct {
	BookingID  string        `json:"booking_id"`
	Action     string        `json:"action"`
	FromStatus BookingStatus `json:"from_status,omitempty"`
	ToStatus   BookingStatus `json:"to_status"`
	DriverID   string        `json:"driver_id"`
	PartnerID  string        `json:"partner_id"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// RefundRequest is sent to the payment rail before a refund is recorded
type RefundRequest struct {
	BookingID       string    `json:"booking_id"`
	DriverID        string    `json:"driver_id"`
	PartnerID       string    `json:"partner_id"`
	Amount          float64   `json:"amount"`
	InsuranceAmount float64   `json:"insurance_amount,omitempty"`
	Currency        string    `json:"currency"`
	Reason          string    `json:"reason"`
	RequestedAt     time.Time `json:"requested_at"`
}

// RefundReply is the payment rail's answer to a RefundRequest
type RefundReply struct {
	Accepted  bool   `json:"accepted"`
	Reference string `json:"reference,omitempty"`
	Error     string `json:"error,omitempty"`
}

// DeadlineCheck is the message asking the bookings service to sweep one booking
type DeadlineCheck struct {
	BookingID   string    `json:"booking_id"`
	RequestedAt time.Time `json:"requested_at"`
}
