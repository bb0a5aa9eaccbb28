package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/comparepco/comparepco/internal/pkg/apperror"
	"github.com/comparepco/comparepco/internal/pkg/models"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*BookingRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	db := sqlx.NewDb(mockDB, "sqlmock")
	return NewBookingRepository(&models.Config{}, db), mock
}

func strPtr(s string) *string { return &s }

func sampleBooking() *models.Booking {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &models.Booking{
		ID:            "b-1",
		DriverID:      "d-1",
		PartnerID:     "p-1",
		VehicleID:     "v-1",
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, 14),
		WeeklyRate:    100,
		DepositAmount: 50,
		TotalAmount:   250,
		Status:        models.BookingStatusPendingPayment,
		PaymentStatus: models.PaymentStatusPending,
	}
}

func TestCreateBooking_Success(t *testing.T) {
	repo, mock := setupMockDB(t)
	booking := sampleBooking()
	instructions := []*models.PaymentInstruction{
		{ID: "pi-1", BookingID: booking.ID, Type: models.InstructionTypeDeposit, Amount: 50},
		{ID: "pi-2", BookingID: booking.ID, Type: models.InstructionTypeWeeklyRent, Amount: 100},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE vehicles")).
		WithArgs(models.VehicleStatusBooked, booking.ID, booking.VehicleID, models.VehicleStatusAvailable).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payment_instructions")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payment_instructions")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CreateBooking(context.Background(), booking, instructions)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBooking_VehicleUnavailable(t *testing.T) {
	repo, mock := setupMockDB(t)
	booking := sampleBooking()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE vehicles")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.CreateBooking(context.Background(), booking, nil)
	assert.True(t, apperror.Is(err, apperror.KindConflict))
	assert.Contains(t, err.Error(), "v-1 is not available")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyTransition_Success(t *testing.T) {
	repo, mock := setupMockDB(t)
	paid := models.PaymentStatusRefundPending
	mileage := 12000

	tr := &models.Transition{
		BookingID: "b-1",
		From:      models.BookingStatusActive,
		To:        models.BookingStatusCancelled,
		Update:    models.BookingUpdate{PaymentStatus: &paid, CancellationReason: strPtr("driver left")},
		Vehicle:   &models.VehicleUpdate{VehicleID: "v-1", Release: true, Mileage: &mileage},
		Instructions: []*models.PaymentInstruction{
			{ID: "pi-9", BookingID: "b-1", Type: models.InstructionTypeRefund, Amount: 80},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE bookings SET status = $1, updated_at = $2, payment_status = $3, cancellation_reason = $4 WHERE id = $5 AND status = $6")).
		WithArgs(models.BookingStatusCancelled, sqlmock.AnyArg(), paid, "driver left", "b-1", models.BookingStatusActive).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE vehicles")).
		WithArgs(models.VehicleStatusAvailable, mileage, "v-1", "b-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payment_instructions")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.ApplyTransition(context.Background(), tr))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyTransition_StaleStatus(t *testing.T) {
	repo, mock := setupMockDB(t)
	tr := &models.Transition{
		BookingID: "b-1",
		From:      models.BookingStatusPendingPartnerApproval,
		To:        models.BookingStatusPartnerRejected,
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status = $1")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM bookings WHERE id = $1")).
		WithArgs("b-1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("partner_rejected"))
	mock.ExpectRollback()

	err := repo.ApplyTransition(context.Background(), tr)
	assert.True(t, apperror.Is(err, apperror.KindConflict))
	assert.Equal(t, "booking is partner_rejected", apperror.Message(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyTransition_Missing(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM bookings")).
		WillReturnRows(sqlmock.NewRows([]string{"status"}))
	mock.ExpectRollback()

	err := repo.ApplyTransition(context.Background(), &models.Transition{BookingID: "nope", From: "active", To: "overdue"})
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestGetBooking(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := setupMockDB(t)
		rows := sqlmock.NewRows([]string{"id", "status", "weekly_rate", "released_documents"}).
			AddRow("b-1", "active", 140.0, []byte(`[{"type":"mot","file_url":"https://files/mot.pdf","released_at":"2024-01-01T00:00:00Z"}]`))
		mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).
			WithArgs("b-1").
			WillReturnRows(rows)

		booking, err := repo.GetBooking(context.Background(), "b-1")
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusActive, booking.Status)
		assert.Equal(t, 140.0, booking.WeeklyRate)
		require.Len(t, booking.ReleasedDocuments, 1)
		assert.Equal(t, "mot", booking.ReleasedDocuments[0].Type)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := setupMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetBooking(context.Background(), "missing")
		assert.True(t, apperror.Is(err, apperror.KindNotFound))
	})
}

func TestListDueForSweep(t *testing.T) {
	repo, mock := setupMockDB(t)
	horizon := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id FROM bookings[\s\S]+ORDER BY\s+CASE status\s+WHEN \$1 THEN partner_acceptance_deadline\s+WHEN \$2 THEN payment_deadline\s+WHEN \$3 THEN insurance_upload_deadline\s+ELSE end_date\s+END, id\s+LIMIT \$6`).
		WithArgs(
			models.BookingStatusPendingPartnerApproval,
			models.BookingStatusPendingPayment,
			models.BookingStatusPendingInsuranceUpload,
			horizon,
			sqlmock.AnyArg(),
			200,
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("b-1").AddRow("b-2"))

	ids, err := repo.ListDueForSweep(context.Background(), horizon, 200)
	require.NoError(t, err)
	assert.Equal(t, []string{"b-1", "b-2"}, ids)
}
