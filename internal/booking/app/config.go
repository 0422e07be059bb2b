package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer         string // Issuer claim for access tokens
	BootstrapToken string // Optional: token required to perform bootstrap

	DatabaseFile string // Path to SQLite database file (default: ./roomgrid.db)
	PepperFile   string // Path to pepper file for password hashing (default: ./pepper)

	RoomCount   int // Number of bookable rooms (default: 3)
	SlotsPerDay int // Number of daily slots per room (default: 8)

	SMTPHost     string // Optional: SMTP relay host; empty disables email delivery
	SMTPPort     int    // SMTP relay port (default: 587)
	SMTPUsername string // Optional: SMTP auth username
	SMTPPassword string // Optional: SMTP auth password
	SMTPFrom     string // Sender address for verification mail

	OTPTTL               time.Duration // Verification code lifetime (default: 10m)
	SignupSessionTTL     time.Duration // Pending signup lifetime (default: 30m)
	AccessTokenTTL       time.Duration // Access token lifetime (default: 1h)
	UnverifiedRetention  time.Duration // How long unverified accounts keep their identity (default: 24h)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)

	Env       string // Environment (dev, staging, prod) (default: dev)
	LogLevel  string // Log level (debug, info, warn, error) (default: info)
	LogFormat string // Log format (json, text) (default: json)
	Port      int    // HTTP server port (default: 8080)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:         getEnvOrDefault("ROOMGRID_ISSUER", "roomgrid"),
		BootstrapToken: os.Getenv("BOOTSTRAP_TOKEN"),

		DatabaseFile: getEnvOrDefault("ROOMGRID_DATABASE_FILE", "roomgrid.db"),
		PepperFile:   getEnvOrDefault("ROOMGRID_PEPPER_FILE", "pepper"),

		RoomCount:   getEnvIntOrDefault("ROOM_COUNT", 3),
		SlotsPerDay: getEnvIntOrDefault("SLOTS_PER_DAY", 8),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnvIntOrDefault("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     getEnvOrDefault("SMTP_FROM", "noreply@roomgrid.local"),

		OTPTTL:               getEnvDurationOrDefault("OTP_TTL", 10*time.Minute),
		SignupSessionTTL:     getEnvDurationOrDefault("SIGNUP_SESSION_TTL", 30*time.Minute),
		AccessTokenTTL:       getEnvDurationOrDefault("ACCESS_TOKEN_TTL", 1*time.Hour),
		UnverifiedRetention:  getEnvDurationOrDefault("UNVERIFIED_RETENTION", 24*time.Hour),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),

		Env:       getEnvOrDefault("ENV", "dev"),
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "json"),
		Port:      getEnvIntOrDefault("PORT", 8080),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Integer values are treated as minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
