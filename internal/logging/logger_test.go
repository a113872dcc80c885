package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLoggerNotNil(t *testing.T) {
	logger := NewLogger(Config{})
	if logger == nil {
		t.Fatal("expected logger to be non-nil")
	}
}

func TestNewLoggerUsesTextHandlerWithInfoLevel(t *testing.T) {
	logger := NewLogger(Config{Format: "text", Level: "info"})

	if enabled := logger.Enabled(context.Background(), slog.LevelInfo); !enabled {
		t.Fatal("expected info level to be enabled")
	}

	if enabled := logger.Enabled(context.Background(), slog.LevelDebug); enabled {
		t.Fatal("expected debug level to be disabled")
	}
}

func TestNewLoggerJSONIncludesServiceAndVersion(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Format: "JSON", Level: "debug", Service: "svc", Version: "v1", Output: &buf})
	logger.Debug("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected json output, got %q: %v", buf.String(), err)
	}
	if entry[FieldService] != "svc" || entry[FieldVersion] != "v1" {
		t.Fatalf("expected common fields, got %+v", entry)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for raw, want := range cases {
		if got := parseLevel(raw); got != want {
			t.Fatalf("parseLevel(%q) = %s, want %s", raw, got, want)
		}
	}
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	scoped := slog.New(slog.NewTextHandler(&buf, nil))
	fallback := slog.Default()

	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatalf("expected fallback when unset")
	}
	ctx := WithLogger(context.Background(), scoped)
	if got := FromContext(ctx, fallback); got != scoped {
		t.Fatalf("expected scoped logger")
	}
	if got := WithLogger(ctx, nil); got != ctx {
		t.Fatalf("expected nil logger to leave context untouched")
	}
	if got := FromContext(nil, fallback); got != fallback {
		t.Fatalf("expected fallback for nil context")
	}
}

func TestHelpersTolerateNilLogger(t *testing.T) {
	Info(nil, "x")
	Warn(nil, "x")
	Error(nil, "x", nil)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	Error(logger, "fetch failed", errBoom{})
	if !strings.Contains(buf.String(), "error=boom") {
		t.Fatalf("expected error attr, got %q", buf.String())
	}
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }
