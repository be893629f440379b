package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{Level: "info", Format: "json", ServiceName: "test-service", Version: "1.0.0"}

	log := New(cfg, &buf, "abc-123")
	log.Info("test message", "key", "value", "number", 42)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	want := map[string]interface{}{
		"service":    "test-service",
		"version":    "1.0.0",
		"session_id": "abc-123",
		"msg":        "test message",
		"level":      "INFO",
		"key":        "value",
		"number":     float64(42),
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("Expected %s=%v, got %v", k, v, entry[k])
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	log := New(DefaultConfig(), &buf, "s")
	log.Info("hidden")
	log.Debug("hidden too")
	if buf.Len() != 0 {
		t.Fatalf("Expected nothing below warn, got %q", buf.String())
	}

	log.Warn("shown")
	if !strings.Contains(buf.String(), "msg=shown") {
		t.Errorf("Expected text output with msg=shown, got %q", buf.String())
	}
}

func TestLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		if got := (Config{Level: in}).LogLevel(); got != want {
			t.Errorf("LogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestGenerateSessionID(t *testing.T) {
	a, b := GenerateSessionID(), GenerateSessionID()
	if len(a) != 36 || a == b {
		t.Errorf("Expected two distinct UUIDs, got %q and %q", a, b)
	}
}
