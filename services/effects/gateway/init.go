package gateway

import (
	"github.com/comparepco/comparepco/internal/pkg/models"
	natspkg "github.com/comparepco/comparepco/internal/pkg/nats"
	"github.com/comparepco/comparepco/services/effects"
	"github.com/supabase-community/postgrest-go"
)

// NotificationStore is satisfied by both *supabase.Client and *postgrest.Client
type NotificationStore interface {
	From(table string) *postgrest.QueryBuilder
}

// EffectGW delivers notifications to Supabase and events to NATS
type EffectGW struct {
	cfg        *models.Config
	store      NotificationStore
	natsClient *natspkg.Client
}

// NewEffectGW creates the effect gateway
func NewEffectGW(cfg *models.Config, store NotificationStore, natsClient *natspkg.Client) effects.EffectGW {
	return &EffectGW{
		cfg:        cfg,
		store:      store,
		natsClient: natsClient,
	}
}
