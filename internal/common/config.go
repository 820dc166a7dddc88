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
	OCR      OCRConfig
	LLM      LLMConfig
	Storage  StorageConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// OCRConfig holds document-intelligence provider configuration
type OCRConfig struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// LLMConfig holds adjuster-model provider configuration
type LLMConfig struct {
	Endpoint   string
	APIKey     string
	Deployment string
	APIVersion string
	Timeout    time.Duration
}

// StorageConfig holds evidence file storage configuration
type StorageConfig struct {
	UploadsDir string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:             getEnv("DB_URL", ""),
			MaxConns:        getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:        getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:     getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		OCR: OCRConfig{
			Endpoint: getEnv("AZURE_OCR_ENDPOINT", ""),
			APIKey:   getEnv("AZURE_OCR_KEY", ""),
			Timeout:  getEnvAsDuration("AZURE_OCR_TIMEOUT", 90*time.Second),
		},
		LLM: LLMConfig{
			Endpoint:   getEnv("AZURE_OPENAI_ENDPOINT", ""),
			APIKey:     getEnv("AZURE_OPENAI_KEY", ""),
			Deployment: getEnv("AZURE_OPENAI_DEPLOYMENT", "gpt-4o"),
			APIVersion: getEnv("AZURE_OPENAI_API_VERSION", "2024-08-01-preview"),
			Timeout:    getEnvAsDuration("AZURE_OPENAI_TIMEOUT", 60*time.Second),
		},
		Storage: StorageConfig{
			UploadsDir: getEnv("UPLOADS_DIR", "./uploads"),
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

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
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
	if c.OCR.Endpoint == "" || c.OCR.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "AZURE_OCR_ENDPOINT and AZURE_OCR_KEY are required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	return nil
}
