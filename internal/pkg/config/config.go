package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/comparepco/comparepco/internal/pkg/models"
	"github.com/joho/godotenv"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "comparepco-bookings")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9990)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "postgres")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "require")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")
	configs.NATS.QueueGroup = GetEnv("NATS_QUEUE_GROUP", "bookings-service")

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	// Supabase config
	configs.Supabase.URL = GetEnv("SUPABASE_URL", "")
	configs.Supabase.ServiceKey = GetEnv("SUPABASE_SERVICE_KEY", "")

	// Internal API keys
	configs.APIKey.Scheduler = GetEnv("SCHEDULER_API_KEY", "")
	configs.APIKey.Admin = GetEnv("ADMIN_API_KEY", "")

	// Booking lifecycle
	configs.Booking.PartnerAcceptanceWindow = GetEnvAsDuration("BOOKING_PARTNER_ACCEPTANCE_WINDOW", 24*time.Hour)
	configs.Booking.PaymentWindow = GetEnvAsDuration("BOOKING_PAYMENT_WINDOW", 24*time.Hour)
	configs.Booking.InsuranceUploadWindow = GetEnvAsDuration("BOOKING_INSURANCE_UPLOAD_WINDOW", 48*time.Hour)
	configs.Booking.ReminderWindow = GetEnvAsDuration("BOOKING_REMINDER_WINDOW", 2*time.Hour)
	configs.Booking.PlatformFeePercent = GetEnvAsFloat("PLATFORM_FEE_PERCENT", 0)
	configs.Booking.Currency = GetEnv("BOOKING_CURRENCY", "GBP")

	// Outbox relay
	configs.Outbox.BatchSize = GetEnvAsInt("OUTBOX_BATCH_SIZE", 50)
	configs.Outbox.PollInterval = GetEnvAsDuration("OUTBOX_POLL_INTERVAL", 2*time.Second)
	configs.Outbox.MaxAttempts = GetEnvAsInt("OUTBOX_MAX_ATTEMPTS", 10)

	// Deadline scheduler
	configs.Sweep.Interval = GetEnvAsDuration("SWEEP_INTERVAL", 5*time.Minute)
	configs.Sweep.BatchSize = GetEnvAsInt("SWEEP_BATCH_SIZE", 200)
	configs.Sweep.LockTTL = GetEnvAsDuration("SWEEP_LOCK_TTL", 4*time.Minute)

	// Internal services
	configs.Services.BookingsURL = GetEnv("BOOKINGS_SERVICE_URL", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

// GetEnvAsDuration reads values such as "90s" or "24h"
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
