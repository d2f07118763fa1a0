package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Gemini     GeminiConfig
	Directory  DirectoryConfig
	PostgreSQL PostgreSQLConfig
	Classifier ClassifierConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
}

// GeminiConfig holds Gemini API configuration
type GeminiConfig struct {
	APIKey         string
	APIBase        string
	Model          string // Model for specialty classification
	EmbeddingModel string // Model for department embeddings
	Timeout        int    // Per-call timeout in seconds
	Enabled        bool
}

// DirectoryConfig holds doctor directory configuration
type DirectoryConfig struct {
	Backend          string  // "csv" or "postgres"
	CSVPath          string  // Path to the directory file (csv backend)
	AvailabilityRate float64 // Probability a matched doctor is available
}

// ClassifierConfig holds specialty classifier configuration
type ClassifierConfig struct {
	// FallbackSpecialty, when non-empty, is returned instead of an error
	// if the model call fails or produces nothing. Empty means fail hard.
	FallbackSpecialty string
}

// PostgreSQLConfig holds PostgreSQL database configuration
type PostgreSQLConfig struct {
	DSN                string // Full connection string (takes precedence)
	Host               string
	Port               int
	User               string
	Password           string
	Database           string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Gemini: GeminiConfig{
			APIKey:         getEnv("GEMINI_API_KEY", ""),
			APIBase:        getEnv("GEMINI_API_BASE", "https://generativelanguage.googleapis.com/v1beta"),
			Model:          getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			EmbeddingModel: getEnv("GEMINI_EMBEDDING_MODEL", "text-embedding-004"),
			Timeout:        getEnvAsInt("GEMINI_TIMEOUT", 30),
			Enabled:        getEnv("GEMINI_API_KEY", "") != "",
		},
		Directory: DirectoryConfig{
			Backend:          getEnv("DIRECTORY_BACKEND", "csv"),
			CSVPath:          getEnv("DIRECTORY_CSV_PATH", "Doctor_Directory.csv"),
			AvailabilityRate: getEnvAsFloat("AVAILABILITY_RATE", 0.7),
		},
		Classifier: ClassifierConfig{
			FallbackSpecialty: getEnv("CLASSIFIER_FALLBACK_SPECIALTY", ""),
		},
		PostgreSQL: PostgreSQLConfig{
			// Prefer a full DSN (DATABASE_URL, POSTGRESQL_URI, PG_DSN)
			DSN:                getEnv("DATABASE_URL", getEnv("POSTGRESQL_URI", getEnv("PG_DSN", ""))),
			Host:               getEnv("PG_HOST", "localhost"),
			Port:               getEnvAsInt("PG_PORT", 5432),
			User:               getEnv("PG_USER", "postgres"),
			Password:           getEnv("PG_PASSWORD", ""),
			Database:           getEnv("PG_DATABASE", "doctor_directory"),
			SSLMode:            getEnv("PG_SSLMODE", "disable"),
			MaxConnections:     getEnvAsInt("PG_MAX_CONNECTIONS", 25),
			MaxIdleConnections: getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 5),
		},
	}

	return cfg, nil
}

// GetPostgreSQLDSN returns PostgreSQL connection string
func (c *Config) GetPostgreSQLDSN() string {
	// Prefer the full DSN when present
	if c.PostgreSQL.DSN != "" {
		return c.PostgreSQL.DSN
	}

	// Otherwise assemble the DSN from individual fields
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgreSQL.Host,
		c.PostgreSQL.Port,
		c.PostgreSQL.User,
		c.PostgreSQL.Password,
		c.PostgreSQL.Database,
		c.PostgreSQL.SSLMode,
	)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default %f", key, defaultValue)
		return defaultValue
	}
	return value
}
