package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusPendingPayment         BookingStatus = "pending_payment"
	BookingStatusPendingPartnerApproval BookingStatus = "pending_partner_approval"
	BookingStatusPartnerAccepted        BookingStatus = "partner_accepted"
	BookingStatusPendingInsuranceUpload BookingStatus = "pending_insurance_upload"
	BookingStatusActive                 BookingStatus = "active"
	BookingStatusInProgress             BookingStatus = "in_progress"
	BookingStatusOverdue                BookingStatus = "overdue"
	BookingStatusCompleted              BookingStatus = "completed"
	BookingStatusCancelled              BookingStatus = "cancelled"
	BookingStatusPartnerRejected        BookingStatus = "partner_rejected"
	BookingStatusAutoRejected           BookingStatus = "auto_rejected"
	BookingStatusPaymentExpired         BookingStatus = "payment_expired"
	BookingStatusInsuranceExpired       BookingStatus = "insurance_expired"
)

// IsTerminal reports whether no further transition is allowed
func (s BookingStatus) IsTerminal() bool {
	switch s {
	case BookingStatusCompleted, BookingStatusCancelled, BookingStatusPartnerRejected,
		BookingStatusAutoRejected, BookingStatusPaymentExpired, BookingStatusInsuranceExpired:
		return true
	}
	return false
}

// Payment status values stored on the booking
const (
	PaymentStatusPending       = "pending"
	PaymentStatusPaid          = "paid"
	PaymentStatusCompleted     = "completed"
	PaymentStatusConfirmed     = "confirmed"
	PaymentStatusOutstanding   = "outstanding"
	PaymentStatusRefundPending = "refund_pending"
)

// PaymentConfirmed reports whether the booking's payment status counts as settled
func PaymentConfirmed(paymentStatus string) bool {
	switch paymentStatus {
	case PaymentStatusCompleted, PaymentStatusPaid, PaymentStatusConfirmed:
		return true
	}
	return false
}

// Actor types
const (
	ActorDriver       = "driver"
	ActorPartner      = "partner"
	ActorAdmin        = "admin"
	ActorSystem       = "system"
	ActorPartnerStaff = "partner_staff"
)

// Activation triggers
const (
	TriggerAutoOnAcceptance = "auto_on_acceptance"
	TriggerAutoOnPayment    = "auto_on_payment"
	TriggerAutoOnInsurance  = "auto_on_insurance"
	TriggerManual           = "manual"
)

const DocumentVerificationApproved = "approved"

// Booking is one vehicle rental agreement between a driver and a partner
type Booking struct {
	ID        string `json:"id" db:"id"`
	DriverID  string `json:"driver_id" db:"driver_id"`
	PartnerID string `json:"partner_id" db:"partner_id"`
	VehicleID string `json:"vehicle_id" db:"vehicle_id"`

	StartDate time.Time `json:"start_date" db:"start_date"`
	EndDate   time.Time `json:"end_date" db:"end_date"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	PartnerAcceptanceDeadline *time.Time `json:"partner_acceptance_deadline,omitempty" db:"partner_acceptance_deadline"`
	PaymentDeadline           *time.Time `json:"payment_deadline,omitempty" db:"payment_deadline"`
	InsuranceUploadDeadline   *time.Time `json:"insurance_upload_deadline,omitempty" db:"insurance_upload_deadline"`
	PartnerResponseAt         *time.Time `json:"partner_response_at,omitempty" db:"partner_response_at"`
	ActivatedAt               *time.Time `json:"activated_at,omitempty" db:"activated_at"`
	CompletedAt               *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	CancelledAt               *time.Time `json:"cancelled_at,omitempty" db:"cancelled_at"`
	LastPaymentDate           *time.Time `json:"last_payment_date,omitempty" db:"last_payment_date"`

	WeeklyRate        float64  `json:"weekly_rate" db:"weekly_rate"`
	DepositAmount     float64  `json:"deposit_amount" db:"deposit_amount"`
	TotalAmount       float64  `json:"total_amount" db:"total_amount"`
	FinalAmount       *float64 `json:"final_amount,omitempty" db:"final_amount"`
	OutstandingAmount float64  `json:"outstanding_amount" db:"outstanding_amount"`
	PaymentMethod     string   `json:"payment_method" db:"payment_method"`
	PaymentStatus     string   `json:"payment_status" db:"payment_status"`

	Status BookingStatus `json:"status" db:"status"`

	InsuranceRequired            bool   `json:"insurance_required" db:"insurance_required"`
	PartnerProvidesInsurance     bool   `json:"partner_provides_insurance" db:"partner_provides_insurance"`
	RequiresDocumentVerification bool   `json:"requires_document_verification" db:"requires_document_verification"`
	DriverInsuranceValid         bool   `json:"driver_insurance_valid" db:"driver_insurance_valid"`
	DocumentVerificationStatus   string `json:"document_verification_status" db:"document_verification_status"`

	RejectionReason            *string `json:"rejection_reason,omitempty" db:"rejection_reason"`
	PartnerResponseTimeMinutes *int    `json:"partner_response_time_minutes,omitempty" db:"partner_response_time_minutes"`
	ActivatedTrigger           *string `json:"activated_trigger,omitempty" db:"activated_trigger"`

	FinishedBy         *string  `json:"finished_by,omitempty" db:"finished_by"`
	FinishedByType     *string  `json:"finished_by_type,omitempty" db:"finished_by_type"`
	FinalNotes         *string  `json:"final_notes,omitempty" db:"final_notes"`
	FinalMileage       *int     `json:"final_mileage,omitempty" db:"final_mileage"`
	FinalFuelLevel     *string  `json:"final_fuel_level,omitempty" db:"final_fuel_level"`
	CancellationReason *string  `json:"cancellation_reason,omitempty" db:"cancellation_reason"`
	CancelType         *string  `json:"cancel_type,omitempty" db:"cancel_type"`
	RefundAmount       *float64 `json:"refund_amount,omitempty" db:"refund_amount"`

	ReleasedDocuments ReleasedDocuments `json:"released_documents,omitempty" db:"released_documents"`

	DriverName          string `json:"driver_name" db:"driver_name"`
	DriverEmail         string `json:"driver_email" db:"driver_email"`
	PartnerCompanyName  string `json:"partner_company_name" db:"partner_company_name"`
	PartnerEmail        string `json:"partner_email" db:"partner_email"`
	VehicleMake         string `json:"vehicle_make" db:"vehicle_make"`
	VehicleModel        string `json:"vehicle_model" db:"vehicle_model"`
	VehicleRegistration string `json:"vehicle_registration" db:"vehicle_registration"`
}

// InsuranceSatisfied is true when no driver insurance is needed or some party covers it
func (b *Booking) InsuranceSatisfied() bool {
	return !b.InsuranceRequired || b.DriverInsuranceValid || b.PartnerProvidesInsurance
}

// DocumentsSatisfied is true when document verification is not needed or has been approved
func (b *Booking) DocumentsSatisfied() bool {
	return !b.RequiresDocumentVerification || b.DocumentVerificationStatus == DocumentVerificationApproved
}

// VehicleLabel is the human-readable vehicle name used in notifications
func (b *Booking) VehicleLabel() string {
	label := b.VehicleMake + " " + b.VehicleModel
	if b.VehicleRegistration != "" {
		label += " (" + b.VehicleRegistration + ")"
	}
	return label
}

// ReleasedDocument is a vehicle document shared with the driver once the booking is paid
type ReleasedDocument struct {
	Type       string     `json:"type"`
	FileURL    string     `json:"file_url"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	ReleasedAt time.Time  `json:"released_at"`
}

// ReleasedDocuments is stored as a jsonb array
type ReleasedDocuments []ReleasedDocument

func (d ReleasedDocuments) Value() (driver.Value, error) {
	if d == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(d)
}

func (d *ReleasedDocuments) Scan(src interface{}) error {
	data, err := jsonBytes(src)
	if err != nil || data == nil {
		*d = nil
		return err
	}
	return json.Unmarshal(data, d)
}

// BookingUpdate lists the non-status columns a transition may write. Nil fields are left untouched.
type BookingUpdate struct {
	PartnerAcceptanceDeadline *time.Time
	PaymentDeadline           *time.Time
	InsuranceUploadDeadline   *time.Time
	PartnerResponseAt         *time.Time
	ActivatedAt               *time.Time
	CompletedAt               *time.Time
	CancelledAt               *time.Time
	LastPaymentDate           *time.Time

	FinalAmount       *float64
	OutstandingAmount *float64
	PaymentStatus     *string

	DriverInsuranceValid *bool

	RejectionReason            *string
	PartnerResponseTimeMinutes *int
	ActivatedTrigger           *string

	FinishedBy         *string
	FinishedByType     *string
	FinalNotes         *string
	FinalMileage       *int
	FinalFuelLevel     *string
	CancellationReason *string
	CancelType         *string
	RefundAmount       *float64

	ReleasedDocuments ReleasedDocuments
}

// VehicleUpdate describes the vehicle write performed alongside a transition
type VehicleUpdate struct {
	VehicleID string
	// Release frees the vehicle; otherwise it is marked booked for the booking
	Release bool
	Mileage *int
}

// Transition is a conditional status change plus the writes that must commit with it
type Transition struct {
	BookingID    string
	From         BookingStatus
	To           BookingStatus
	Update       BookingUpdate
	Vehicle      *VehicleUpdate
	Instructions []*PaymentInstruction
}
