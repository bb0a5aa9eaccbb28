package gateway

import (
	"github.com/comparepco/comparepco/internal/pkg/database"
	httppkg "github.com/comparepco/comparepco/internal/pkg/http"
	"github.com/comparepco/comparepco/internal/pkg/models"
	natspkg "github.com/comparepco/comparepco/internal/pkg/nats"
	"github.com/comparepco/comparepco/services/bookings"
	"github.com/jmoiron/sqlx"
)

// BookingGW writes booking side effects to the outbox and talks to the payment rail
type BookingGW struct {
	cfg         *models.Config
	db          *sqlx.DB
	natsClient  *natspkg.Client
	redisClient *database.RedisClient
}

// NewBookingGW creates the booking gateway
func NewBookingGW(
	cfg *models.Config,
	db *sqlx.DB,
	natsClient *natspkg.Client,
	redisClient *database.RedisClient,
) bookings.BookingGW {
	return &BookingGW{
		cfg:         cfg,
		db:          db,
		natsClient:  natsClient,
		redisClient: redisClient,
	}
}

// DeadlineGW coordinates scheduler replicas and fans out deadline checks
type DeadlineGW struct {
	natsClient  *natspkg.Client
	redisClient *database.RedisClient
	bookingsAPI *httppkg.APIKeyClient // optional fallback when the broker rejects a publish
}

func NewDeadlineGW(
	natsClient *natspkg.Client,
	redisClient *database.RedisClient,
	bookingsAPI *httppkg.APIKeyClient,
) bookings.DeadlineGW {
	return &DeadlineGW{
		natsClient:  natsClient,
		redisClient: redisClient,
		bookingsAPI: bookingsAPI,
	}
}
