package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Environment string `validate:"required,oneof=dev development prod production test"`
	LogLevel    string `validate:"required"`
	LogFormat   string `validate:"required,oneof=text json"`
	LogFile     string // empty means stderr
	ServiceName string `validate:"required"`
	Version     string `validate:"required"`

	HistoryFile  string        `validate:"required"`
	Currency     string        `validate:"required,max=8"`
	TickInterval time.Duration `validate:"gt=0"`

	DefaultBalance    int64 `validate:"gtefield=MinInitialBalance,ltefield=MaxInitialBalance"`
	MinInitialBalance int64 `validate:"gt=0"`
	MaxInitialBalance int64 `validate:"gtefield=MinInitialBalance"`
	InitialBalance    int64 // 0 means ask the player

	StatusAddr string // empty disables the status server
	NoColor    bool
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		LogFile:     getEnv(EnvLogFile, ""),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),
		HistoryFile: getEnv(EnvHistoryFile, DefaultHistoryFile),
		Currency:    getEnv(EnvCurrency, DefaultCurrency),
		StatusAddr:  getEnv(EnvStatusAddr, ""),
		NoColor:     getEnv(EnvNoColor, "") != "",
	}

	tickMS, err := getEnvInt(EnvTickIntervalMS, DefaultTickIntervalMS)
	if err != nil {
		return nil, err
	}
	cfg.TickInterval = time.Duration(tickMS) * time.Millisecond

	if cfg.DefaultBalance, err = getEnvInt(EnvDefaultBalance, DefaultBalance); err != nil {
		return nil, err
	}
	if cfg.MinInitialBalance, err = getEnvInt(EnvMinInitialBalance, DefaultMinInitialBalance); err != nil {
		return nil, err
	}
	if cfg.MaxInitialBalance, err = getEnvInt(EnvMaxInitialBalance, DefaultMaxInitialBalance); err != nil {
		return nil, err
	}
	if cfg.InitialBalance, err = getEnvInt(EnvInitialBalance, 0); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsDevelopment reports whether the app runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// PresetBalance returns the configured starting balance when it lies within
// the allowed range and can be used without prompting.
func (c *Config) PresetBalance() (int64, bool) {
	if c.InitialBalance >= c.MinInitialBalance && c.InitialBalance <= c.MaxInitialBalance {
		return c.InitialBalance, true
	}
	return 0, false
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt parses an integer environment variable, falling back to defaultValue when unset
func getEnvInt(key string, defaultValue int64) (int64, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}
