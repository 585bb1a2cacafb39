package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestConsoleHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "info", Format: "console", Output: &buf})

	l.With("component", "crosshair").WithGroup("hit").Info("display hovered", "product", "mac-pro")

	line := buf.String()
	for _, want := range []string{"INFO ", "display hovered", "component=crosshair", "hit.product=mac-pro"} {
		if !strings.Contains(line, want) {
			t.Errorf("line %q missing %q", line, want)
		}
	}
	if !strings.HasSuffix(line, "\n") {
		t.Error("console line should end with newline")
	}
}

func TestConsoleHandlerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "warn", Output: &buf})

	l.Info("hidden")
	l.Debug("hidden")
	l.Warn("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("records below warn should be dropped, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "WARN  shown") {
		t.Errorf("expected warn record, got %q", buf.String())
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "debug", Format: "json", Output: &buf})

	l.Debug("capture denied", "reason", "unfocused")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if rec["msg"] != "capture denied" || rec["reason"] != "unfocused" {
		t.Errorf("unexpected record %v", rec)
	}
}

func TestInitSetsDefault(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	defer slog.SetDefault(prev)

	l := Init(Config{Level: "info", Output: &buf})
	if L() != l {
		t.Error("L() should return the logger installed by Init")
	}
	slog.Info("through default")
	if !strings.Contains(buf.String(), "through default") {
		t.Errorf("slog default not replaced, got %q", buf.String())
	}
}
