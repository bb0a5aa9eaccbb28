package models

import "time"

const (
	VehicleStatusAvailable   = "available"
	VehicleStatusBooked      = "booked"
	VehicleStatusMaintenance = "maintenance"
)

// ReleasableDocumentTypes are the vehicle documents handed to the driver once paid
var ReleasableDocumentTypes = []string{"mot", "private_hire_license", "insurance", "logbook", "roadTax"}

type Vehicle struct {
	ID               string  `json:"id" db:"id"`
	PartnerID        string  `json:"partner_id" db:"partner_id"`
	Make             string  `json:"make" db:"make"`
	Model            string  `json:"model" db:"model"`
	Registration     string  `json:"registration" db:"registration"`
	Status           string  `json:"status" db:"status"`
	CurrentBookingID *string `json:"current_booking_id,omitempty" db:"current_booking_id"`
	Mileage          *int    `json:"mileage,omitempty" db:"mileage"`
}

type VehicleDocument struct {
	VehicleID  string     `json:"vehicle_id" db:"vehicle_id"`
	Type       string     `json:"type" db:"type"`
	Status     string     `json:"status" db:"status"`
	FileURL    string     `json:"file_url" db:"file_url"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty" db:"expiry_date"`
}

type Driver struct {
	ID    string `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
}

type Partner struct {
	ID          string `json:"id" db:"id"`
	CompanyName string `json:"company_name" db:"company_name"`
	Email       string `json:"email" db:"email"`
	Status      string `json:"status" db:"status"`
}

// PartnerStaff is a user acting on behalf of a partner
type PartnerStaff struct {
	UserID      string   `json:"user_id" db:"user_id"`
	PartnerID   string   `json:"partner_id" db:"partner_id"`
	IsActive    bool     `json:"is_active" db:"is_active"`
	Permissions []string `json:"permissions" db:"-"`
}

const PermissionViewFinancials = "view_financials"
