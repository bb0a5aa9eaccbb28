package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/comparepco/comparepco/internal/pkg/circuitbreaker"
	"github.com/comparepco/comparepco/internal/pkg/config"
	"github.com/comparepco/comparepco/internal/pkg/database"
	"github.com/comparepco/comparepco/internal/pkg/health"
	"github.com/comparepco/comparepco/internal/pkg/logger"
	natspkg "github.com/comparepco/comparepco/internal/pkg/nats"
	nrpkg "github.com/comparepco/comparepco/internal/pkg/newrelic"
	"github.com/comparepco/comparepco/internal/pkg/server"
	"github.com/comparepco/comparepco/services/effects/gateway"
	"github.com/comparepco/comparepco/services/effects/repository"
	"github.com/comparepco/comparepco/services/effects/usecase"
	"github.com/labstack/echo/v4"
	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"
)

func main() {
	appName := "outbox-relay"
	configs := config.InitConfig("config/outbox-relay.env")

	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.Int("batch_size", configs.Outbox.BatchSize),
		zap.Duration("poll_interval", configs.Outbox.PollInterval),
		zap.Int("max_attempts", configs.Outbox.MaxAttempts),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	supabaseClient, err := supabase.NewClient(configs.Supabase.URL, configs.Supabase.ServiceKey, nil)
	if err != nil {
		zapLogger.Fatal("Failed to create Supabase client", zap.Error(err))
	}

	breaker := circuitbreaker.New(circuitbreaker.DefaultConfig("supabase-notifications"), zapLogger)

	outboxRepo := repository.NewOutboxRepository(configs, postgresClient.GetDB())
	effectGW := gateway.NewEffectGW(configs, supabaseClient, natsClient)
	relayUC := usecase.NewRelayUC(configs, outboxRepo, effectGW, breaker, nrApp, zapLogger)

	e := echo.New()
	e.HideBanner = true
	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	healthService.AddChecker("supabase", breaker)
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)

	ctx, stop := server.SignalContext()
	defer stop()

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	go func() {
		if err := srv.Serve(ctx); err != nil {
			zapLogger.Error("Health server exited with error", zap.Error(err))
		}
	}()

	if err := relayUC.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		zapLogger.Error("Outbox relay stopped", zap.Error(err))
	}
	zapLogger.Info("Outbox relay stopped")
}
