package repository

import (
	"github.com/comparepco/comparepco/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// BookingRepo implements bookings.BookingRepo on Postgres
type BookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(cfg *models.Config, db *sqlx.DB) *BookingRepo {
	return &BookingRepo{
		cfg: cfg,
		db:  db,
	}
}
