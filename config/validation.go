package config

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the configuration is usable in the current environment
func ValidateConfig(cfg *Config) error {
	var errors []string

	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		errors = append(errors, ValidationError{"SERVER_PORT", fmt.Sprintf("must be numeric, got %q", cfg.ServerPort)}.Error())
	}

	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		errors = append(errors, ValidationError{"LOG_LEVEL", err.Error()}.Error())
	}

	if cfg.RateLimitPerHour < 0 {
		errors = append(errors, ValidationError{"RATE_LIMIT_PER_HOUR", "must not be negative"}.Error())
	}

	switch cfg.DBDriver {
	case DriverSQLite:
		if cfg.DBPath == "" {
			errors = append(errors, ValidationError{"DB_PATH", "is required for the sqlite driver"}.Error())
		}
	case DriverPostgres:
		for field, value := range map[string]string{
			"DB_HOST": cfg.DBHost,
			"DB_PORT": cfg.DBPort,
			"DB_USER": cfg.DBUser,
			"DB_NAME": cfg.DBName,
		} {
			if value == "" {
				errors = append(errors, ValidationError{field, "is required for the postgres driver"}.Error())
			}
		}
		// Production databases must not run without a password
		if IsProduction() && cfg.DBPassword == "" {
			errors = append(errors, "db_password secret is required")
		}
	default:
		errors = append(errors, ValidationError{"DB_DRIVER", fmt.Sprintf("unknown driver %q", cfg.DBDriver)}.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
