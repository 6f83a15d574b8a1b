package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Admin     AdminConfig
	RateLimit RateLimitConfig
	Scheduler SchedulerConfig
	Logger    LoggerConfig
}

type DatabaseConfig struct {
	Host           string
	Port           int
	User           string
	Password       string
	DBName         string
	SSLMode        string
	MigrationsPath string
}

type ServerConfig struct {
	Host           string
	Port           int
	RequestTimeout time.Duration
	AllowedOrigins []string
}

// AdminConfig holds the shared secret protecting moderation endpoints.
// An empty APIKey leaves them unprotected; the server logs a warning and
// serves them anyway, matching the original deployment behavior.
type AdminConfig struct {
	APIKey string
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

type SchedulerConfig struct {
	StatsRefreshSpec string
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// It's okay if .env file doesn't exist in production
	}

	dbPort, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	serverPort, _ := strconv.Atoi(getEnv("SERVER_PORT", "8080"))
	rateLimit, _ := strconv.Atoi(getEnv("RATE_LIMIT_REQUESTS", "60"))

	rateWindow, _ := time.ParseDuration(getEnv("RATE_LIMIT_WINDOW", "1m"))
	requestTimeout, _ := time.ParseDuration(getEnv("REQUEST_TIMEOUT", "30s"))

	return &Config{
		Database: DatabaseConfig{
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           dbPort,
			User:           getEnv("DB_USER", "registry_user"),
			Password:       getEnv("DB_PASSWORD", "registry_password"),
			DBName:         getEnv("DB_NAME", "registry"),
			SSLMode:        getEnv("DB_SSLMODE", "disable"),
			MigrationsPath: getEnv("DB_MIGRATIONS_PATH", "migrations"),
		},
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           serverPort,
			RequestTimeout: requestTimeout,
			AllowedOrigins: splitEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000"),
		},
		Admin: AdminConfig{
			APIKey: getEnv("ADMIN_API_KEY", ""),
		},
		RateLimit: RateLimitConfig{
			Requests: rateLimit,
			Window:   rateWindow,
		},
		Scheduler: SchedulerConfig{
			StatsRefreshSpec: getEnv("STATS_REFRESH_SPEC", "@every 15m"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitEnv(key, defaultValue string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, defaultValue), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
