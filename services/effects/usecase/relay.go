package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/comparepco/comparepco/internal/pkg/circuitbreaker"
	"github.com/comparepco/comparepco/internal/pkg/logger"
	"github.com/comparepco/comparepco/internal/pkg/models"
	nrpkg "github.com/comparepco/comparepco/internal/pkg/newrelic"
	"github.com/comparepco/comparepco/internal/pkg/retry"
)

// RunOnce claims a batch and applies each effect in creation order.
// A failing effect is rescheduled with backoff, or marked dead once it runs out of attempts.
func (r *relayUC) RunOnce(ctx context.Context) (int, error) {
	ctx, end := nrpkg.StartBackgroundTransaction(ctx, r.nrApp, "Outbox.Relay")
	defer end()

	batch, err := r.repo.ClaimPending(ctx, r.cfg.Outbox.BatchSize, claimLease)
	if err != nil {
		return 0, err
	}

	sort.SliceStable(batch, func(i, j int) bool {
		if !batch[i].CreatedAt.Equal(batch[j].CreatedAt) {
			return batch[i].CreatedAt.Before(batch[j].CreatedAt)
		}
		return batch[i].Seq < batch[j].Seq
	})

	dispatched := 0
	for _, e := range batch {
		if ctx.Err() != nil {
			break
		}

		applyErr := r.retrier.Execute(ctx, func(ctx context.Context) error {
			return r.apply(ctx, e)
		})
		if applyErr == nil {
			if err := r.repo.MarkDispatched(ctx, e.ID); err != nil {
				logger.ErrorCtx(ctx, "Effect applied but not marked dispatched",
					logger.String("effect_id", e.ID),
					logger.Err(err))
				continue
			}
			dispatched++
			continue
		}

		r.fail(ctx, e, applyErr)
	}

	if len(batch) > 0 {
		logger.InfoCtx(ctx, "Outbox batch relayed",
			logger.Int("claimed", len(batch)),
			logger.Int("dispatched", dispatched))
	}
	return dispatched, nil
}

func (r *relayUC) fail(ctx context.Context, e *models.Effect, applyErr error) {
	fields := []logger.Field{
		logger.String("effect_id", e.ID),
		logger.Int64("seq", e.Seq),
		logger.BookingID(e.BookingID),
		logger.String("kind", string(e.Kind)),
		logger.Err(applyErr),
	}

	// the call never reached the store, so it does not use up an attempt
	if errors.Is(applyErr, circuitbreaker.ErrCircuitBreakerOpen) || errors.Is(applyErr, circuitbreaker.ErrTooManyRequests) {
		next := r.now().Add(r.backoff.Backoff(e.Attempts))
		if err := r.repo.Reschedule(ctx, e.ID, e.Attempts, next, applyErr.Error()); err != nil {
			logger.ErrorCtx(ctx, "Failed to reschedule effect", append(fields, logger.String("reschedule_error", err.Error()))...)
		}
		return
	}

	attempts := e.Attempts + 1
	if retry.IsPermanent(applyErr) || attempts >= r.cfg.Outbox.MaxAttempts {
		logger.ErrorCtx(ctx, "Effect moved to dead letter", append(fields, logger.Int("attempts", attempts))...)
		if err := r.repo.MarkDead(ctx, e.ID, attempts, applyErr.Error()); err != nil {
			logger.ErrorCtx(ctx, "Failed to mark effect dead", append(fields, logger.String("mark_error", err.Error()))...)
		}
		return
	}

	next := r.now().Add(r.backoff.Backoff(attempts - 1))
	logger.WarnCtx(ctx, "Effect failed, rescheduled",
		append(fields, logger.Int("attempts", attempts), logger.Time("next_attempt_at", next))...)
	if err := r.repo.Reschedule(ctx, e.ID, attempts, next, applyErr.Error()); err != nil {
		logger.ErrorCtx(ctx, "Failed to reschedule effect", append(fields, logger.String("reschedule_error", err.Error()))...)
	}
}

func (r *relayUC) apply(ctx context.Context, e *models.Effect) error {
	switch e.Kind {
	case models.EffectHistory:
		var entry models.BookingHistoryEntry
		if err := decode(e, &entry); err != nil {
			return err
		}
		return r.repo.InsertHistory(ctx, &entry)

	case models.EffectTransaction:
		var tx models.Transaction
		if err := decode(e, &tx); err != nil {
			return err
		}
		return r.repo.InsertTransaction(ctx, &tx)

	case models.EffectNotification:
		var n models.Notification
		if err := decode(e, &n); err != nil {
			return err
		}
		err := r.breaker.Execute(ctx, func(ctx context.Context) error {
			return r.gw.SaveNotification(ctx, &n)
		})
		if err != nil {
			return err
		}
		return r.gw.PublishNotification(ctx, &n)

	case models.EffectEvent:
		var ev models.BookingEvent
		if err := decode(e, &ev); err != nil {
			return err
		}
		return r.gw.PublishEvent(ctx, &ev)

	default:
		return retry.Permanent(fmt.Errorf("unknown effect kind %q", e.Kind))
	}
}

func decode(e *models.Effect, v interface{}) error {
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return retry.Permanent(fmt.Errorf("invalid %s payload: %w", e.Kind, err))
	}
	return nil
}

// Run polls the outbox until the context is cancelled. A full batch is followed
// immediately by another claim so a backlog drains without waiting.
func (r *relayUC) Run(ctx context.Context) error {
	for {
		n, err := r.RunOnce(ctx)
		if err != nil {
			logger.Error("Outbox relay run failed", logger.Err(err))
		}

		wait := r.cfg.Outbox.PollInterval
		if err == nil && n >= r.cfg.Outbox.BatchSize {
			wait = 0
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
