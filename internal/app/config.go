package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLogLevel  = "AUTOMAP_LOG_LEVEL"
	EnvLogFormat = "AUTOMAP_LOG_FORMAT"
	EnvCacheSize = "AUTOMAP_CACHE_SIZE"
)

// Config holds the settings of an App instance.
type Config struct {
	LogLevel  string
	LogFormat string
	// CacheSize bounds the number of parsed rule files kept in memory.
	CacheSize int
}

// ConfigFromEnv returns the defaults for Config, taken from the process
// environment and, if present, a .env file in the working directory.
func ConfigFromEnv() Config {
	_ = godotenv.Load()

	cfg := Config{
		LogLevel:  "warn",
		LogFormat: "text",
	}

	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}

	if v := strings.TrimSpace(os.Getenv(EnvCacheSize)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.CacheSize = n
		}
	}

	return cfg
}

// NewConfig validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	if _, ok := logLevels[cfg.LogLevel]; !ok {
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	if cfg.CacheSize < 0 {
		return nil, fmt.Errorf("invalid cache size %d", cfg.CacheSize)
	}

	return &cfg, nil
}
