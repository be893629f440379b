// Package logger configures structured diagnostics for the game process.
// Player-facing text never goes through here; it is written to stdout by the drivers.
package logger

import (
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Log attribute keys.
const (
	AttrKeyService   = "service"
	AttrKeyVersion   = "version"
	AttrKeySessionID = "session_id"
)

// Defaults for Config.
const (
	DefaultServiceName = "dungeon-mini"
	DefaultVersion     = "dev"
)

// Config represents logger configuration.
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	Format      string // "json", "text"
	ServiceName string
	Version     string
}

// DefaultConfig keeps the terminal quiet: only warnings and errors, as text.
func DefaultConfig() Config {
	return Config{
		Level:       "warn",
		Format:      "text",
		ServiceName: DefaultServiceName,
		Version:     DefaultVersion,
	}
}

// LogLevel converts the string level to slog.Level.
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsJSON returns true if format is JSON.
func (c Config) IsJSON() bool {
	return strings.ToLower(c.Format) == "json"
}

// GenerateSessionID creates a new UUID identifying one game process.
func GenerateSessionID() string {
	return uuid.NewString()
}

// New builds a logger writing to w, tagged with the service, version and session.
func New(cfg Config, w io.Writer, sessionID string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel()}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(
		AttrKeyService, cfg.ServiceName,
		AttrKeyVersion, cfg.Version,
		AttrKeySessionID, sessionID,
	)
}
