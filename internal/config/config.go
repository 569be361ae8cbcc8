// internal/config/config.go
package config

import (
	"log/slog"
	"os"
	"strings"
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort string
	LogLevel   slog.Level
	LogFile    string // when set, logs are also written to this rotated file
}

// LoadConfig loads configuration from environment variables, falling back
// to defaults suitable for local development.
func LoadConfig() (*AppConfig, error) {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080" // Default port
	}

	return &AppConfig{
		ServerPort: serverPort,
		LogLevel:   ParseLogLevel(os.Getenv("LOG_LEVEL")),
		LogFile:    os.Getenv("LOG_FILE"),
	}, nil
}

// ParseLogLevel maps a level name to a slog.Level, defaulting to Info.
func ParseLogLevel(value string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
