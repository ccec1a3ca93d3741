package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerPort  string
	ServerHost  string
	CORSOrigins []string
	LogLevel    string

	// Database configuration. DBDriver is "postgres" or "sqlite".
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// GoalStore is "sql" or "redis"
	GoalStore string

	// Shopping list export
	S3Bucket         string
	S3Endpoint       string
	AWSRegion        string
	ExportRateLimit  int
	ExportRateWindow time.Duration

	// values that were set but could not be parsed
	invalid ValidationErrors
}

// lookupFunc resolves a setting by its secret file name and env var name
type lookupFunc func(secret, env string) string

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{Environment: env}

	// Load configuration based on environment
	switch env {
	case CI:
		loadCIConfig(cfg)
	case Development, Test:
		if err := loadDevConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load development configuration: %w", err)
		}
	case Production:
		loadProdConfig(cfg)
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	applyDefaults(cfg)

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadCIConfig reads everything from the environment. Sensitive values use
// the TEST_ prefixed variables set from repository secrets when present.
func loadCIConfig(cfg *Config) {
	get := func(_, env string) string {
		if v := os.Getenv("TEST_" + env); v != "" {
			return v
		}
		return os.Getenv(env)
	}
	loadCommon(cfg, get)
}

// loadDevConfig loads an optional .env file, then prefers Docker secrets
// over environment variables
func loadDevConfig(cfg *Config) error {
	if path := envFile(); path != "" {
		if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	get := func(secret, env string) string {
		if v := readSecret(secret); v != "" {
			return v
		}
		return os.Getenv(env)
	}
	loadCommon(cfg, get)
	return nil
}

// loadProdConfig takes credentials from Docker secrets only
func loadProdConfig(cfg *Config) {
	get := func(secret, env string) string {
		if v := readSecret(secret); v != "" {
			return v
		}
		if sensitive[secret] {
			return ""
		}
		return os.Getenv(env)
	}
	loadCommon(cfg, get)
}

var sensitive = map[string]bool{
	"db_password":    true,
	"jwt_secret":     true,
	"redis_password": true,
}

func loadCommon(cfg *Config, get lookupFunc) {
	cfg.ServerPort = get("server_port", "SERVER_PORT")
	cfg.ServerHost = get("server_host", "SERVER_HOST")
	cfg.LogLevel = get("log_level", "LOG_LEVEL")
	if origins := get("cors_origins", "CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	cfg.DBDriver = get("db_driver", "DB_DRIVER")
	cfg.DBHost = get("db_host", "DB_HOST")
	cfg.DBPort = get("db_port", "DB_PORT")
	cfg.DBUser = get("db_user", "DB_USER")
	cfg.DBPassword = get("db_password", "DB_PASSWORD")
	cfg.DBName = get("db_name", "DB_NAME")
	cfg.DBSSLMode = get("db_ssl_mode", "DB_SSL_MODE")
	cfg.SQLitePath = get("sqlite_path", "SQLITE_PATH")

	cfg.RedisHost = get("redis_host", "REDIS_HOST")
	cfg.RedisPort = get("redis_port", "REDIS_PORT")
	cfg.RedisPassword = get("redis_password", "REDIS_PASSWORD")
	cfg.RedisURL = get("redis_url", "REDIS_URL")
	cfg.RedisDB = parseInt(cfg, get, "redis_db", "REDIS_DB")

	cfg.JWTSecret = get("jwt_secret", "JWT_SECRET")
	cfg.GoalStore = get("goal_store", "GOAL_STORE")

	cfg.S3Bucket = get("s3_bucket_name", "S3_BUCKET_NAME")
	cfg.S3Endpoint = get("s3_endpoint", "S3_ENDPOINT")
	cfg.AWSRegion = get("aws_region", "AWS_REGION")
	cfg.ExportRateLimit = parseInt(cfg, get, "export_rate_limit", "EXPORT_RATE_LIMIT")
	cfg.ExportRateWindow = parseDuration(cfg, get, "export_rate_window", "EXPORT_RATE_WINDOW")
}

// parseInt reads an optional integer; a malformed value is recorded for
// ValidateConfig and left at zero
func parseInt(cfg *Config, get lookupFunc, secret, env string) int {
	raw := strings.TrimSpace(get(secret, env))
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		cfg.invalidValue(secret, env, fmt.Sprintf("invalid integer %q", raw))
	}
	return n
}

func parseDuration(cfg *Config, get lookupFunc, secret, env string) time.Duration {
	raw := strings.TrimSpace(get(secret, env))
	if raw == "" {
		return 0
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		cfg.invalidValue(secret, env, fmt.Sprintf("invalid duration %q", raw))
	}
	return d
}

func (c *Config) invalidValue(secret, env, msg string) {
	c.invalid = append(c.invalid, ValidationError{Field: source(c.Environment, secret, env), Message: msg})
}

func applyDefaults(cfg *Config) {
	setDefault(&cfg.ServerHost, "0.0.0.0")
	setDefault(&cfg.ServerPort, "8080")
	setDefault(&cfg.LogLevel, "info")
	setDefault(&cfg.DBDriver, "postgres")
	setDefault(&cfg.DBSSLMode, "disable")
	setDefault(&cfg.RedisPort, "6379")
	setDefault(&cfg.GoalStore, "sql")
	setDefault(&cfg.S3Bucket, "mealplanner-shopping-exports")
	setDefault(&cfg.AWSRegion, "us-east-1")
	if cfg.ExportRateLimit <= 0 {
		cfg.ExportRateLimit = 10
	}
	if cfg.ExportRateWindow <= 0 {
		cfg.ExportRateWindow = time.Minute
	}
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

// envFile returns the dotenv file to load in development, "" to skip
func envFile() string {
	if path, ok := os.LookupEnv("ENV_FILE"); ok {
		return path
	}
	return ".env"
}

// secretsDir returns the Docker secrets directory
func secretsDir() string {
	if dir := os.Getenv("SECRETS_DIR"); dir != "" {
		return dir
	}
	return "/run/secrets"
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	if data, err := os.ReadFile(filepath.Join(secretsDir(), name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

// Addr is the host:port the HTTP server listens on
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// PostgresDSN builds a lib/pq style connection string
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}
