package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Worker   WorkerConfig
	Jobs     JobsConfig
	Platform PlatformConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// WorkerConfig holds the claim/processing worker pool configuration
type WorkerConfig struct {
	Workers      int
	PollInterval time.Duration
	ClaimBatch   int
	ItemTimeout  time.Duration
}

// JobsConfig holds job lifecycle tuning
type JobsConfig struct {
	CostPerItem     int64
	MaxRetries      int
	MaxItemAttempts int
	RetryBaseDelay  time.Duration
	RetryMaxDelay   time.Duration
	ApprovalTTL     time.Duration
}

// PlatformConfig holds the external collaborator endpoints
type PlatformConfig struct {
	OptimizerURL  string
	StorefrontURL string
	Timeout       time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Worker: WorkerConfig{
			Workers:      getEnvAsInt("WORKER_COUNT", 4),
			PollInterval: getEnvAsDuration("WORKER_POLL_INTERVAL", 2*time.Second),
			ClaimBatch:   getEnvAsInt("WORKER_CLAIM_BATCH", 10),
			ItemTimeout:  getEnvAsDuration("WORKER_ITEM_TIMEOUT", 2*time.Minute),
		},
		Jobs: JobsConfig{
			CostPerItem:     getEnvAsInt64("JOB_COST_PER_ITEM", 1),
			MaxRetries:      getEnvAsInt("JOB_MAX_RETRIES", 3),
			MaxItemAttempts: getEnvAsInt("JOB_MAX_ITEM_ATTEMPTS", 3),
			RetryBaseDelay:  getEnvAsDuration("JOB_RETRY_BASE_DELAY", 30*time.Second),
			RetryMaxDelay:   getEnvAsDuration("JOB_RETRY_MAX_DELAY", 30*time.Minute),
			ApprovalTTL:     getEnvAsDuration("JOB_APPROVAL_TTL", 72*time.Hour),
		},
		Platform: PlatformConfig{
			OptimizerURL:  getEnv("OPTIMIZER_URL", ""),
			StorefrontURL: getEnv("STOREFRONT_API_URL", ""),
			Timeout:       getEnvAsDuration("PLATFORM_TIMEOUT", 45*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Jobs.CostPerItem <= 0 {
		return NewAppError("CONFIG_ERROR", "JOB_COST_PER_ITEM must be positive", ErrInvalidInput)
	}
	if c.Worker.Workers <= 0 {
		return NewAppError("CONFIG_ERROR", "WORKER_COUNT must be positive", ErrInvalidInput)
	}
	return nil
}
