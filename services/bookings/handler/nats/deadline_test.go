package nats

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/comparepco/comparepco/internal/pkg/constants"
	"github.com/comparepco/comparepco/internal/pkg/models"
	natspkg "github.com/comparepco/comparepco/internal/pkg/nats"
	"github.com/comparepco/comparepco/services/bookings/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	natsserver "github.com/nats-io/nats-server/v2/test"
)

func setupNatsHandler(t *testing.T) (*BookingHandler, *natspkg.Client, *mocks.MockBookingUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	srv := natsserver.RunRandClientPortServer()
	t.Cleanup(srv.Shutdown)

	nc, err := natspkg.NewClient(srv.ClientURL(), "bookings-test")
	require.NoError(t, err, "Failed to connect to NATS server")
	t.Cleanup(nc.Close)

	bookingUC := mocks.NewMockBookingUC(ctrl)
	handler := NewBookingHandler(bookingUC, nc, "bookings-service", nil)
	require.NoError(t, handler.InitNATSConsumers())
	t.Cleanup(handler.Unsubscribe)

	return handler, nc, bookingUC
}

func TestDeadlineCheckConsumer(t *testing.T) {
	_, nc, bookingUC := setupNatsHandler(t)

	done := make(chan struct{})
	bookingUC.EXPECT().
		SweepDeadlines(gomock.Any(), "booking-1").
		DoAndReturn(func(_ interface{}, _ string) (*models.SweepReport, error) {
			close(done)
			return &models.SweepReport{BookingID: "booking-1"}, nil
		})

	require.NoError(t, nc.PublishJSON(constants.SubjectDeadlineCheck, models.DeadlineCheck{BookingID: "booking-1", RequestedAt: time.Now()}))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("deadline check was not consumed")
	}
}

func TestDeadlineCheckRequestReply(t *testing.T) {
	_, nc, bookingUC := setupNatsHandler(t)

	t.Run("report is returned", func(t *testing.T) {
		bookingUC.EXPECT().SweepDeadlines(gomock.Any(), "booking-1").Return(&models.SweepReport{
			BookingID:    "booking-1",
			Status:       models.BookingStatusOverdue,
			ActionsTaken: []string{"overdue"},
		}, nil)

		data, _ := json.Marshal(models.DeadlineCheck{BookingID: "booking-1"})
		msg, err := nc.GetConn().Request(constants.SubjectDeadlineCheck, data, 2*time.Second)
		require.NoError(t, err)

		var reply struct {
			Success bool               `json:"success"`
			Data    models.SweepReport `json:"data"`
		}
		require.NoError(t, json.Unmarshal(msg.Data, &reply))
		assert.True(t, reply.Success)
		assert.Equal(t, []string{"overdue"}, reply.Data.ActionsTaken)
	})

	t.Run("sweep error is reported", func(t *testing.T) {
		bookingUC.EXPECT().SweepDeadlines(gomock.Any(), "booking-2").Return(nil, errors.New("db down"))

		data, _ := json.Marshal(models.DeadlineCheck{BookingID: "booking-2"})
		msg, err := nc.GetConn().Request(constants.SubjectDeadlineCheck, data, 2*time.Second)
		require.NoError(t, err)

		var reply map[string]interface{}
		require.NoError(t, json.Unmarshal(msg.Data, &reply))
		assert.Equal(t, false, reply["success"])
		assert.Contains(t, reply["error"], "db down")
	})
}

func TestHandleDeadlineCheck_InvalidPayload(t *testing.T) {
	h := NewBookingHandler(nil, nil, "bookings-service", nil)

	_, err := h.handleDeadlineCheck([]byte("not json"))
	assert.ErrorContains(t, err, "failed to unmarshal deadline check")

	_, err = h.handleDeadlineCheck([]byte(`{"requested_at":"2024-01-01T00:00:00Z"}`))
	assert.ErrorContains(t, err, "without booking_id")
}
