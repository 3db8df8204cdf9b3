package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Server ServerConfig `json:"server"`

	// Database Configuration
	Database DatabaseConfig `json:"database"`

	// Mongo / GridFS Configuration (only used when Media.Driver == "gridfs")
	Mongo MongoConfig `json:"mongo"`

	// Media upload configuration
	Media MediaConfig `json:"media"`

	// Auth configuration
	Auth AuthConfig `json:"auth"`

	// Admin seed credentials
	Admin AdminConfig `json:"admin"`

	// Logging Configuration
	Logging LoggingConfig `json:"logging"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Port         string   `json:"port"`
	Host         string   `json:"host"`
	ReadTimeout  int      `json:"read_timeout"`
	WriteTimeout int      `json:"write_timeout"`
	Environment  string   `json:"environment"` // development, staging, production
	CORSOrigins  []string `json:"cors_origins"`
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	// Full DSN; takes precedence over the discrete fields below
	URL string `json:"-"`

	Host         string `json:"host"`
	Port         string `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"-"`
	DatabaseName string `json:"database_name"`
	MaxOpenConns int    `json:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns"`
}

type MongoConfig struct {
	URI      string `json:"uri"`
	Database string `json:"database"`
}

type MediaConfig struct {
	Driver        string `json:"driver"` // local or gridfs
	UploadDir     string `json:"upload_dir"`
	PublicBaseURL string `json:"public_base_url"`
	MaxUploadMB   int64  `json:"max_upload_mb"`
}

type AuthConfig struct {
	JWTSecret string `json:"-"`
	TTLHours  int    `json:"ttl_hours"`
}

type AdminConfig struct {
	Email    string `json:"email"`
	Password string `json:"-"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `json:"level"` // debug, info, warn, error
}

// Load builds the configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("PORT", "9000"),
			Host:         getEnvOrDefault("HOST", "0.0.0.0"),
			ReadTimeout:  getEnvIntOrDefault("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvIntOrDefault("SERVER_WRITE_TIMEOUT", 30),
			Environment:  getEnvOrDefault("ENVIRONMENT", "development"),
			CORSOrigins:  splitCSV(getEnvOrDefault("CORS_ORIGIN", "*")),
		},
		Database: DatabaseConfig{
			URL:          os.Getenv("DATABASE_URL"),
			Host:         getEnvOrDefault("DB_HOST", "localhost"),
			Port:         getEnvOrDefault("DB_PORT", "3306"),
			Username:     getEnvOrDefault("DB_USER", "sociality"),
			Password:     os.Getenv("DB_PASSWORD"),
			DatabaseName: getEnvOrDefault("DB_NAME", "sociality_db"),
			MaxOpenConns: getEnvIntOrDefault("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvIntOrDefault("DB_MAX_IDLE_CONNS", 5),
		},
		Mongo: MongoConfig{
			URI:      getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnvOrDefault("MONGO_DB", "sociality_media"),
		},
		Media: MediaConfig{
			Driver:        getEnvOrDefault("MEDIA_DRIVER", "local"),
			UploadDir:     getEnvOrDefault("UPLOAD_DIR", "uploads"),
			PublicBaseURL: strings.TrimRight(os.Getenv("PUBLIC_API_URL"), "/"),
			MaxUploadMB:   int64(getEnvIntOrDefault("MAX_UPLOAD_MB", 10)),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
			TTLHours:  getEnvIntOrDefault("JWT_TTL_HOURS", 24*7),
		},
		Admin: AdminConfig{
			Email:    getEnvOrDefault("ADMIN_EMAIL", "admin@example.com"),
			Password: os.Getenv("ADMIN_PASSWORD"),
		},
		Logging: LoggingConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
		},
	}
}

// DSN returns the MySQL connection string. DATABASE_URL wins when set.
func (cfg *Config) DSN() string {
	if cfg.Database.URL != "" {
		return cfg.Database.URL
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvIntOrDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
