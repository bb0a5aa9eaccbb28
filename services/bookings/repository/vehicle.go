package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/comparepco/comparepco/internal/pkg/apperror"
	"github.com/comparepco/comparepco/internal/pkg/models"
	"github.com/lib/pq"
)

func (r *BookingRepo) GetVehicle(ctx context.Context, vehicleID string) (*models.Vehicle, error) {
	var v models.Vehicle
	err := r.db.GetContext(ctx, &v, `
		SELECT id, partner_id, make, model, registration, status, current_booking_id, mileage
		FROM vehicles WHERE id = $1`, vehicleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("vehicle %s not found", vehicleID)
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return &v, nil
}

func (r *BookingRepo) GetDriver(ctx context.Context, driverID string) (*models.Driver, error) {
	var d models.Driver
	err := r.db.GetContext(ctx, &d, `SELECT id, name, email FROM drivers WHERE id = $1`, driverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("driver %s not found", driverID)
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return &d, nil
}

func (r *BookingRepo) GetPartner(ctx context.Context, partnerID string) (*models.Partner, error) {
	var p models.Partner
	err := r.db.GetContext(ctx, &p, `SELECT id, company_name, email, status FROM partners WHERE id = $1`, partnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("partner %s not found", partnerID)
		}
		return nil, fmt.Errorf("failed to get partner: %w", err)
	}
	return &p, nil
}

// ListApprovedDocuments returns the vehicle's approved documents of the given types
func (r *BookingRepo) ListApprovedDocuments(ctx context.Context, vehicleID string, types []string) ([]*models.VehicleDocument, error) {
	var docs []*models.VehicleDocument
	err := r.db.SelectContext(ctx, &docs, `
		SELECT vehicle_id, type, status, file_url, expiry_date
		FROM vehicle_documents
		WHERE vehicle_id = $1 AND status = 'approved' AND type = ANY($2)
		ORDER BY type`, vehicleID, pq.Array(types))
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicle documents: %w", err)
	}
	return docs, nil
}

// UpsertPartnerDriver adds the driver to the partner's roster, keeping the first booking on conflict
func (r *BookingRepo) UpsertPartnerDriver(ctx context.Context, partnerID, driverID, bookingID string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO partner_drivers (partner_id, driver_id, first_booking_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (partner_id, driver_id) DO NOTHING`,
		partnerID, driverID, bookingID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to upsert partner driver: %w", err)
	}
	return nil
}

// ListFinanceStaff returns active staff of the partner allowed to see financial notifications
func (r *BookingRepo) ListFinanceStaff(ctx context.Context, partnerID string) ([]*models.PartnerStaff, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT user_id, partner_id, is_active, permissions
		FROM partner_staff
		WHERE partner_id = $1 AND is_active AND $2 = ANY(permissions)`,
		partnerID, models.PermissionViewFinancials)
	if err != nil {
		return nil, fmt.Errorf("failed to list partner staff: %w", err)
	}
	defer rows.Close()

	var staff []*models.PartnerStaff
	for rows.Next() {
		s := &models.PartnerStaff{}
		if err := rows.Scan(&s.UserID, &s.PartnerID, &s.IsActive, pq.Array(&s.Permissions)); err != nil {
			return nil, fmt.Errorf("failed to scan partner staff: %w", err)
		}
		staff = append(staff, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list partner staff: %w", err)
	}
	return staff, nil
}
