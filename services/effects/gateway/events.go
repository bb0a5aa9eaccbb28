package gateway

import (
	"context"

	"github.com/comparepco/comparepco/internal/pkg/constants"
	"github.com/comparepco/comparepco/internal/pkg/models"
	nrpkg "github.com/comparepco/comparepco/internal/pkg/newrelic"
)

func (g *EffectGW) PublishEvent(ctx context.Context, ev *models.BookingEvent) error {
	subject := constants.BookingEventSubject(ev.Action)
	return nrpkg.WithMessageSegment(ctx, subject, func() error {
		return g.natsClient.PublishJSON(subject, ev)
	})
}
