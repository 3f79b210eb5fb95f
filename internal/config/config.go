package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the whole application configuration, populated from
// environment variables at process start and injected everywhere via the
// container. No package-level singletons.
type Config struct {
	App       AppConfig
	Redis     RedisConfig
	Validator ValidatorConfig
	Password  PasswordConfig
	Policy    PolicyConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
	Enabled  bool // false = in-memory cache, for local runs without Redis
}

// ValidatorConfig addresses the external token-validation collaborator.
// The function identity is composed as {service}-{stage}-ValidateToken
// under Endpoint, mirroring how the collaborator is deployed.
type ValidatorConfig struct {
	Mode     string // "remote" or "local"
	Endpoint string
	Service  string
	Stage    string
	Timeout  time.Duration

	// Local mode only: HS256 secret for the development validator.
	JWTSecret string
}

// FunctionName returns the collaborator's addressable identity.
func (v ValidatorConfig) FunctionName() string {
	return fmt.Sprintf("%s-%s-ValidateToken", v.Service, v.Stage)
}

type PasswordConfig struct {
	Algorithm string // "sha256" or "bcrypt"
}

// PolicyConfig captures the behaviors the upstream system implemented
// both ways. Each flag pins one variant explicitly instead of hard-coding
// a silent choice.
type PolicyConfig struct {
	// RequireAuthOnRead gates GetProfileById behind token validation.
	// The authenticated variant returns photo+name only.
	RequireAuthOnRead bool

	// AllowFuzzySearch enables the substring scan fallback when the exact
	// name-index query comes back empty. When false, search requires both
	// name and artist_id and never scans.
	AllowFuzzySearch bool

	// RejectDuplicateRegistration makes Register fail on an existing
	// artist_id instead of silently overwriting the record.
	RejectDuplicateRegistration bool
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	validatorTimeout, err := time.ParseDuration(getEnv("TOKEN_VALIDATOR_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_VALIDATOR_TIMEOUT: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Artistry API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			Enabled:  getEnvBool("CACHE_ENABLED", true),
		},
		Validator: ValidatorConfig{
			Mode:      getEnv("TOKEN_VALIDATOR_MODE", "remote"),
			Endpoint:  getEnv("TOKEN_VALIDATOR_ENDPOINT", "http://localhost:9001"),
			Service:   getEnv("SERVICE_NAME", "artistry"),
			Stage:     getEnv("STAGE", "dev"),
			Timeout:   validatorTimeout,
			JWTSecret: getEnv("TOKEN_VALIDATOR_JWT_SECRET", "dev-only-secret"),
		},
		Password: PasswordConfig{
			Algorithm: getEnv("PASSWORD_HASH_ALGORITHM", "sha256"),
		},
		Policy: PolicyConfig{
			RequireAuthOnRead:           getEnvBool("REQUIRE_AUTH_ON_READ", false),
			AllowFuzzySearch:            getEnvBool("ALLOW_FUZZY_SEARCH", true),
			RejectDuplicateRegistration: getEnvBool("REJECT_DUPLICATE_REGISTRATION", true),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks production-critical values.
func (c *Config) Validate() error {
	switch c.Validator.Mode {
	case "remote", "local":
	default:
		return fmt.Errorf("TOKEN_VALIDATOR_MODE must be \"remote\" or \"local\", got %q", c.Validator.Mode)
	}

	if c.App.Environment == "production" {
		if c.Validator.Mode == "local" {
			return fmt.Errorf("local token validator is not allowed in production")
		}
		if c.Validator.Endpoint == "" {
			return fmt.Errorf("TOKEN_VALIDATOR_ENDPOINT must be set in production")
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
