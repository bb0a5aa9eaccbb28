package models

import "time"

// Instruction types
const (
	InstructionTypeDeposit      = "deposit"
	InstructionTypeWeeklyRent   = "weekly_rent"
	InstructionTypeFinalPayment = "final_payment"
	InstructionTypeRefund       = "refund"
)

// Instruction methods
const (
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodDirectDebit  = "direct_debit"
)

// Instruction statuses
const (
	InstructionStatusPending         = "pending"
	InstructionStatusSent            = "sent"
	InstructionStatusDepositReceived = "deposit_received"
	InstructionStatusCompleted       = "completed"
	InstructionStatusReceived        = "received"
)

// Instruction frequencies
const (
	FrequencyOneOff = "one_off"
	FrequencyWeekly = "weekly"
)

// PaymentInstruction is a request for the driver to pay, or for the partner to refund
type PaymentInstruction struct {
	ID          string     `json:"id" db:"id"`
	BookingID   string     `json:"booking_id" db:"booking_id"`
	DriverID    string     `json:"driver_id" db:"driver_id"`
	PartnerID   string     `json:"partner_id" db:"partner_id"`
	Amount      float64    `json:"amount" db:"amount"`
	Type        string     `json:"type" db:"type"`
	Method      string     `json:"method" db:"method"`
	Status      string     `json:"status" db:"status"`
	Frequency   string     `json:"frequency" db:"frequency"`
	NextDueDate *time.Time `json:"next_due_date,omitempty" db:"next_due_date"`
	Reason      *string    `json:"reason,omitempty" db:"reason"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// IsRecurring reports whether confirming the instruction rolls it to the next week
func (p *PaymentInstruction) IsRecurring() bool {
	return p.Frequency == FrequencyWeekly && p.Type != InstructionTypeDeposit
}

// CountsAsPaid reports whether the instruction's amount has reached the partner.
// Held deposits (deposit_received) are excluded; only rent and final payments count.
func (p *PaymentInstruction) CountsAsPaid() bool {
	return p.Status == InstructionStatusCompleted || p.Status == InstructionStatusReceived
}

// InstructionConfirmation is the conditional write applied when a manual transfer is confirmed
type InstructionConfirmation struct {
	InstructionID string
	NewStatus     string
	NextDueDate   *time.Time
	// Received is the record of the week just paid when a recurring instruction rolls forward
	Received *PaymentInstruction
}
