package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
	Supabase SupabaseConfig
	APIKey   APIKeyConfig
	Booking  BookingConfig
	Outbox   OutboxConfig
	Sweep    SweepConfig
	Services ServicesConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL        string
	QueueGroup string
}

// NewRelicConfig contains APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains log output configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// SupabaseConfig points at the hosted Supabase project that stores notifications
type SupabaseConfig struct {
	URL        string
	ServiceKey string
}

// APIKeyConfig holds the keys accepted on internal routes, keyed by calling service
type APIKeyConfig struct {
	Scheduler string
	Admin     string
}

// BookingConfig contains the lifecycle windows and fee settings
type BookingConfig struct {
	PartnerAcceptanceWindow time.Duration
	PaymentWindow           time.Duration
	InsuranceUploadWindow   time.Duration
	ReminderWindow          time.Duration
	PlatformFeePercent      float64
	Currency                string
}

// OutboxConfig tunes the effect relay
type OutboxConfig struct {
	BatchSize    int
	PollInterval time.Duration
	MaxAttempts  int
}

// SweepConfig tunes the deadline scheduler
type SweepConfig struct {
	Interval  time.Duration
	BatchSize int
	LockTTL   time.Duration
}

// ServicesConfig holds base URLs of internal services called over HTTP
type ServicesConfig struct {
	BookingsURL string
}
