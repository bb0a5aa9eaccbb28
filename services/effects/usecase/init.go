package usecase

import (
	"errors"
	"time"

	"github.com/comparepco/comparepco/internal/pkg/circuitbreaker"
	"github.com/comparepco/comparepco/internal/pkg/logger"
	"github.com/comparepco/comparepco/internal/pkg/models"
	"github.com/comparepco/comparepco/internal/pkg/retry"
	"github.com/comparepco/comparepco/services/effects"
	"github.com/newrelic/go-agent/v3/newrelic"
)

const (
	// claimLease must outlast one batch, including in-process retries
	claimLease         = 2 * time.Minute
	maxRescheduleDelay = 15 * time.Minute
)

// relayUC implements the effects.RelayUC interface
type relayUC struct {
	cfg     *models.Config
	repo    effects.OutboxRepo
	gw      effects.EffectGW
	breaker *circuitbreaker.CircuitBreaker
	retrier *retry.Retrier // quick retries within one attempt
	backoff *retry.Retrier // delay between attempts
	nrApp   *newrelic.Application
	now     func() time.Time
}

// NewRelayUC creates the outbox relay. The breaker guards the notifications store.
func NewRelayUC(
	cfg *models.Config,
	repo effects.OutboxRepo,
	gw effects.EffectGW,
	breaker *circuitbreaker.CircuitBreaker,
	nrApp *newrelic.Application,
	l *logger.ZapLogger,
) effects.RelayUC {
	inProcess := retry.DefaultConfig()
	inProcess.MaxRetries = 2
	inProcess.BaseDelay = 200 * time.Millisecond
	inProcess.MaxDelay = 2 * time.Second
	inProcess.RetryableFunc = retryableInProcess

	return &relayUC{
		cfg:     cfg,
		repo:    repo,
		gw:      gw,
		breaker: breaker,
		retrier: retry.New(inProcess, l),
		backoff: retry.New(retry.Config{
			BaseDelay:  cfg.Outbox.PollInterval,
			MaxDelay:   maxRescheduleDelay,
			Multiplier: 2.0,
			Jitter:     true,
		}, l),
		nrApp: nrApp,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// An open breaker will not close within the retry delays, so leave it to the next attempt
func retryableInProcess(err error) bool {
	return !errors.Is(err, circuitbreaker.ErrCircuitBreakerOpen) &&
		!errors.Is(err, circuitbreaker.ErrTooManyRequests)
}
