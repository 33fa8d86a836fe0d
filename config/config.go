package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string `yaml:"server_host"`
	ServerPort string `yaml:"server_port"`

	// Database configuration. DBDriver is "sqlite" or "postgres".
	DBDriver   string `yaml:"db_driver"`
	DBPath     string `yaml:"db_path"`
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"-"`
	DBName     string `yaml:"db_name"`
	DBSSLMode  string `yaml:"db_ssl_mode"`

	// Redis configuration, only used for rate limiting recipe submissions
	RedisURL         string `yaml:"redis_url"`
	RedisPassword    string `yaml:"-"`
	RateLimitPerHour int    `yaml:"rate_limit_per_hour"`

	// Observability
	LogLevel       string `yaml:"log_level"`
	MetricsEnabled bool   `yaml:"metrics_enabled"`

	// Browser origins allowed cross-origin access; empty disables CORS
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`

	// Backup target
	S3BucketName string `yaml:"s3_bucket_name"`
	S3Endpoint   string `yaml:"s3_endpoint"`
	AWSRegion    string `yaml:"aws_region"`
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Default returns the configuration used when nothing else is provided
func Default() *Config {
	return &Config{
		ServerHost:       "0.0.0.0",
		ServerPort:       "8000",
		DBDriver:         DriverSQLite,
		DBPath:           "./data/recipes.db",
		DBHost:           "localhost",
		DBPort:           "5432",
		DBSSLMode:        "disable",
		RateLimitPerHour: 30,
		LogLevel:         "info",
		MetricsEnabled:   true,
	}
}

// Addr returns the host:port the HTTP server binds to
func (c *Config) Addr() string {
	return net.JoinHostPort(c.ServerHost, c.ServerPort)
}

// PostgresDSN builds the connection string for the postgres driver
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// LoadConfig builds a Config from defaults, an optional YAML file named by
// CONFIG_FILE, environment variables and secrets, in that order.
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := loadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load %s configuration: %w", env, err)
	}

	cfg.DBPassword = lookupSecret("DB_PASSWORD", "db_password")
	cfg.RedisPassword = lookupSecret("REDIS_PASSWORD", "redis_password")

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadFile overlays the YAML document at path onto cfg
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func loadEnv(cfg *Config) error {
	setString(&cfg.ServerHost, "SERVER_HOST")
	setString(&cfg.ServerPort, "SERVER_PORT")
	setString(&cfg.DBDriver, "DB_DRIVER")
	setString(&cfg.DBPath, "DB_PATH")
	setString(&cfg.DBHost, "DB_HOST")
	setString(&cfg.DBPort, "DB_PORT")
	setString(&cfg.DBUser, "DB_USER")
	setString(&cfg.DBName, "DB_NAME")
	setString(&cfg.DBSSLMode, "DB_SSL_MODE")
	setString(&cfg.RedisURL, "REDIS_URL")
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.S3BucketName, "S3_BUCKET_NAME")
	setString(&cfg.S3Endpoint, "S3_ENDPOINT")
	setString(&cfg.AWSRegion, "AWS_REGION")

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.CORSAllowedOrigins = nil
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
			}
		}
	}

	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("METRICS_ENABLED: %w", err)
		}
		cfg.MetricsEnabled = enabled
	}

	if v := os.Getenv("RATE_LIMIT_PER_HOUR"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("RATE_LIMIT_PER_HOUR: %w", err)
		}
		cfg.RateLimitPerHour = limit
	}

	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = strings.TrimSpace(v)
	}
}

// lookupSecret prefers the environment variable and falls back to the
// Docker secret file of the same purpose
func lookupSecret(envKey, secretName string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return readSecret(secretName)
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
