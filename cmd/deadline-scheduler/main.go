package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/comparepco/comparepco/internal/pkg/config"
	"github.com/comparepco/comparepco/internal/pkg/database"
	"github.com/comparepco/comparepco/internal/pkg/health"
	httppkg "github.com/comparepco/comparepco/internal/pkg/http"
	"github.com/comparepco/comparepco/internal/pkg/logger"
	natspkg "github.com/comparepco/comparepco/internal/pkg/nats"
	"github.com/comparepco/comparepco/internal/pkg/server"
	"github.com/comparepco/comparepco/services/bookings/gateway"
	"github.com/comparepco/comparepco/services/bookings/repository"
	"github.com/comparepco/comparepco/services/bookings/usecase"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func main() {
	appName := "deadline-scheduler"
	configs := config.InitConfig("config/deadline-scheduler.env")

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nil)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.Duration("interval", configs.Sweep.Interval),
		zap.Int("batch_size", configs.Sweep.BatchSize),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	bookingRepo := repository.NewBookingRepository(configs, postgresClient.GetDB())
	var bookingsAPI *httppkg.APIKeyClient
	if configs.Services.BookingsURL != "" {
		bookingsAPI = httppkg.NewAPIKeyClient("bookings-service", configs.Services.BookingsURL, configs.APIKey.Scheduler, 0)
	}

	deadlineGW := gateway.NewDeadlineGW(natsClient, redisClient, bookingsAPI)
	schedulerUC := usecase.NewSchedulerUC(configs, bookingRepo, deadlineGW)

	e := echo.New()
	e.HideBanner = true
	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
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

	if err := schedulerUC.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		zapLogger.Error("Deadline scheduler stopped", zap.Error(err))
	}
	zapLogger.Info("Deadline scheduler stopped")
}
