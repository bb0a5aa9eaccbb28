package repository

import (
	"github.com/comparepco/comparepco/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// OutboxRepo implements effects.OutboxRepo on Postgres
type OutboxRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewOutboxRepository creates a new outbox repository
func NewOutboxRepository(cfg *models.Config, db *sqlx.DB) *OutboxRepo {
	return &OutboxRepo{
		cfg: cfg,
		db:  db,
	}
}
