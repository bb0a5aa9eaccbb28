package main

import (
	"context"
	"log"
	"time"

	"github.com/comparepco/comparepco/internal/pkg/config"
	"github.com/comparepco/comparepco/internal/pkg/database"
	"github.com/comparepco/comparepco/internal/pkg/health"
	"github.com/comparepco/comparepco/internal/pkg/logger"
	"github.com/comparepco/comparepco/internal/pkg/middleware"
	natspkg "github.com/comparepco/comparepco/internal/pkg/nats"
	nrpkg "github.com/comparepco/comparepco/internal/pkg/newrelic"
	"github.com/comparepco/comparepco/internal/pkg/server"
	"github.com/comparepco/comparepco/internal/utils"
	"github.com/comparepco/comparepco/services/bookings/gateway"
	"github.com/comparepco/comparepco/services/bookings/handler"
	"github.com/comparepco/comparepco/services/bookings/repository"
	"github.com/comparepco/comparepco/services/bookings/usecase"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"go.uber.org/zap"
)

const (
	rateLimit       = 120
	rateLimitPeriod = time.Minute
)

func main() {
	appName := "bookings-service"
	configs := config.InitConfig("config/bookings.env")

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	natsClient, err := natspkg.NewClient(configs.NATS.URL, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}

	bookingRepo := repository.NewBookingRepository(configs, postgresClient.GetDB())
	bookingGW := gateway.NewBookingGW(configs, postgresClient.GetDB(), natsClient, redisClient)
	bookingUC, err := usecase.NewBookingUC(configs, bookingRepo, bookingGW)
	if err != nil {
		zapLogger.Fatal("Failed to create booking use case", zap.Error(err))
	}

	h := handler.NewHandler(bookingUC, natsClient, configs.NATS.QueueGroup, nrApp)
	if err := h.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", zap.Error(err))
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewRequestValidator()

	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.IPRateLimiter(rateLimit, rateLimitPeriod, redisClient.GetClient()))

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)

	h.RegisterRoutes(e, middleware.NewAPIKeyMiddleware(&configs.APIKey))

	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register(func(ctx context.Context) error {
		h.Close()
		natsClient.Close()
		return nil
	})
	shutdown.Register(func(ctx context.Context) error { return redisClient.Close() })
	shutdown.Register(func(ctx context.Context) error { return postgresClient.Close() })
	shutdown.Register(func(ctx context.Context) error {
		if nrApp != nil {
			nrApp.Shutdown(5 * time.Second)
		}
		return nil
	})

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server exited with error", zap.Error(err))
	}
	_ = shutdown.Shutdown(context.Background())
}
