// Package config provides configuration loading from environment variables
// and an optional YAML config file. Environment variables always win over
// file values; the API key is environment-only.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/usebeehiiv/beehiiv-mcp/pkg/beehiiv"
)

// Config holds all configuration for the MCP server.
type Config struct {
	APIKey      string        // BEEHIIV_API_KEY (environment-only, required for API calls)
	BaseURL     string        // BEEHIIV_BASE_URL, default "https://api.beehiiv.com/v2"
	HTTPTimeout time.Duration // BEEHIIV_HTTP_TIMEOUT_MS, default 30000ms (30s)

	// Logging configuration
	LogLevel      string // LOG_LEVEL, default "info"
	LogFile       string // LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // LOG_MAX_BACKUPS, default 5
	LogMaxAgeDays int    // LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // LOG_COMPRESS, default true
}

// defaults returns the built-in configuration.
func defaults() *Config {
	return &Config{
		BaseURL:     beehiiv.DefaultBaseURL,
		HTTPTimeout: beehiiv.DefaultTimeout,

		LogLevel:      "info",
		LogFile:       "",
		LogMaxSizeMB:  10,
		LogMaxBackups: 5,
		LogMaxAgeDays: 28,
		LogCompress:   true,
	}
}

// Load reads configuration from environment variables with built-in defaults.
func Load() *Config {
	cfg, _ := LoadWithFile("")
	return cfg
}

// LoadWithFile layers configuration: built-in defaults, then the YAML file
// at path (if non-empty), then environment variables. The API key is never
// read from the file.
func LoadWithFile(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
	}

	cfg.APIKey = os.Getenv("BEEHIIV_API_KEY")
	cfg.BaseURL = getEnvString("BEEHIIV_BASE_URL", cfg.BaseURL)
	cfg.HTTPTimeout = getEnvDurationMs("BEEHIIV_HTTP_TIMEOUT_MS", cfg.HTTPTimeout)

	cfg.LogLevel = getEnvString("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFile = getEnvString("LOG_FILE", cfg.LogFile)
	cfg.LogMaxSizeMB = getEnvInt("LOG_MAX_SIZE_MB", cfg.LogMaxSizeMB)
	cfg.LogMaxBackups = getEnvInt("LOG_MAX_BACKUPS", cfg.LogMaxBackups)
	cfg.LogMaxAgeDays = getEnvInt("LOG_MAX_AGE_DAYS", cfg.LogMaxAgeDays)
	cfg.LogCompress = getEnvBool("LOG_COMPRESS", cfg.LogCompress)

	return cfg, nil
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDurationMs(key string, defaultVal time.Duration) time.Duration {
	ms := getEnvInt(key, int(defaultVal.Milliseconds()))
	return time.Duration(ms) * time.Millisecond
}
