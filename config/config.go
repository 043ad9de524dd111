// Package config provides configuration management for the planning service.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Cache    CacheConfig
	Auth     AuthConfig
	Database DatabaseConfig
	Planning PlanningConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string
	RateLimit   int
	RateWindow  time.Duration
	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string
	// RequestTimeout bounds API request handling, imports included.
	RequestTimeout    time.Duration
	ShutdownTimeout   time.Duration
	EnableIdempotency bool
}

// CacheConfig holds the catalog lookup cache configuration.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	Enabled bool
	APIKeys map[string]bool
	// JWTSecretKey verifies operator tokens. Empty disables operator identity.
	JWTSecretKey    string
	TokenTTL        time.Duration
	RequireOperator bool
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// PlanningConfig holds the plan engine and import defaults.
type PlanningConfig struct {
	// Domain is the tenant every catalog lookup and plan is scoped to.
	Domain             int
	DefaultBlowsMinute float64
	ImportMaxBytes     int64
	DefaultListLimit   int
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load creates a Config from environment variables. Unparseable values
// fall back to their defaults.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:              envString("PORT", "8080"),
			RateLimit:         env("RATE_LIMIT", 100, strconv.Atoi),
			RateWindow:        env("RATE_WINDOW", time.Minute, time.ParseDuration),
			CORSOrigins:       parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:       os.Getenv("SWAGGER_USER"),
			SwaggerPass:       os.Getenv("SWAGGER_PASS"),
			RequestTimeout:    env("REQUEST_TIMEOUT", 30*time.Second, time.ParseDuration),
			ShutdownTimeout:   env("SHUTDOWN_TIMEOUT", 10*time.Second, time.ParseDuration),
			EnableIdempotency: env("IDEMPOTENCY_ENABLED", true, strconv.ParseBool),
		},
		Cache: CacheConfig{
			Size: env("CATALOG_CACHE_SIZE", 1000, strconv.Atoi),
			TTL:  env("CATALOG_CACHE_TTL", 5*time.Minute, time.ParseDuration),
		},
		Auth: AuthConfig{
			Enabled:         env("AUTH_ENABLED", false, strconv.ParseBool),
			APIKeys:         parseAPIKeys(os.Getenv("API_KEYS")),
			JWTSecretKey:    os.Getenv("JWT_SECRET_KEY"),
			TokenTTL:        env("JWT_TOKEN_TTL", 12*time.Hour, time.ParseDuration),
			RequireOperator: env("AUTH_REQUIRE_OPERATOR", false, strconv.ParseBool),
		},
		Database: DatabaseConfig{
			URI:                            envString("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   envString("MONGODB_DATABASE", "planning"),
			LogsTTL:                        env("MONGODB_LOGS_TTL", 30*24*time.Hour, time.ParseDuration),
			Enabled:                        env("MONGODB_ENABLED", false, strconv.ParseBool),
			CircuitBreakerFailureThreshold: env("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5, strconv.Atoi),
			CircuitBreakerSuccessThreshold: env("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2, strconv.Atoi),
			CircuitBreakerTimeout:          env("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second, time.ParseDuration),
		},
		Planning: PlanningConfig{
			Domain:             env("PLANNING_DOMAIN", 1, strconv.Atoi),
			DefaultBlowsMinute: env("PLANNING_DEFAULT_BLOWS_MINUTE", 80, parseNonNegative),
			ImportMaxBytes:     env("IMPORT_MAX_BYTES", int64(10<<20), parseInt64),
			DefaultListLimit:   env("PLANNING_LIST_LIMIT", 500, strconv.Atoi),
		},
		Log: LogConfig{
			Level:  envString("LOG_LEVEL", "info"),
			Pretty: env("LOG_PRETTY", false, strconv.ParseBool),
		},
	}
}

// Validate reports settings that cannot work together.
func (c Config) Validate() error {
	var errs []error
	if c.Planning.Domain <= 0 {
		errs = append(errs, fmt.Errorf("PLANNING_DOMAIN must be positive, got %d", c.Planning.Domain))
	}
	if c.Auth.RequireOperator && c.Auth.JWTSecretKey == "" {
		errs = append(errs, errors.New("AUTH_REQUIRE_OPERATOR needs JWT_SECRET_KEY"))
	}
	if c.Planning.ImportMaxBytes <= 0 {
		errs = append(errs, errors.New("IMPORT_MAX_BYTES must be positive"))
	}
	if c.Database.Enabled && c.Database.DatabaseName == "" {
		errs = append(errs, errors.New("MONGODB_DATABASE is empty"))
	}
	return errors.Join(errs...)
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func env[T any](key string, def T, parse func(string) (T, error)) T {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := parse(v)
	if err != nil {
		return def
	}
	return parsed
}

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func parseNonNegative(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f < 0 {
		return 0, fmt.Errorf("negative value %v", f)
	}
	return f, nil
}

func parseAPIKeys(s string) map[string]bool {
	var keys map[string]bool
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k == "" {
			continue
		}
		if keys == nil {
			keys = make(map[string]bool)
		}
		keys[k] = true
	}
	return keys
}

// parseCORSOrigins appends the configured origins to the local frontend ones.
func parseCORSOrigins(s string) []string {
	origins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	for _, p := range strings.Split(s, ",") {
		if o := strings.TrimSpace(p); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
