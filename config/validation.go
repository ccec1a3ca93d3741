package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in one pass
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "\n")
}

// where a value should come from in each environment, for error messages
func source(env Environment, secret, envVar string) string {
	if env == CI || (env != Production && !sensitive[secret]) {
		return envVar
	}
	return secret
}

// ValidateConfig checks if the configuration meets the requirements for its environment
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors
	require := func(value, secret, envVar string) {
		if value == "" {
			errs = append(errs, ValidationError{
				Field:   source(cfg.Environment, secret, envVar),
				Message: "is required",
			})
		}
	}

	require(cfg.JWTSecret, "jwt_secret", "JWT_SECRET")

	switch cfg.DBDriver {
	case "postgres":
		require(cfg.DBHost, "db_host", "DB_HOST")
		require(cfg.DBPort, "db_port", "DB_PORT")
		require(cfg.DBUser, "db_user", "DB_USER")
		require(cfg.DBPassword, "db_password", "DB_PASSWORD")
		require(cfg.DBName, "db_name", "DB_NAME")
	case "sqlite":
		require(cfg.SQLitePath, "sqlite_path", "SQLITE_PATH")
	default:
		errs = append(errs, ValidationError{Field: "DB_DRIVER", Message: fmt.Sprintf("unsupported driver %q", cfg.DBDriver)})
	}

	if cfg.RedisURL == "" {
		require(cfg.RedisHost, "redis_host", "REDIS_HOST")
	}

	if cfg.GoalStore != "sql" && cfg.GoalStore != "redis" {
		errs = append(errs, ValidationError{Field: "GOAL_STORE", Message: fmt.Sprintf("unsupported goal store %q", cfg.GoalStore)})
	}

	errs = append(errs, cfg.invalid...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}
