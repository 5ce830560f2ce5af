package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewHandlerJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWith("portfolio", Options{Format: "json", Out: &buf})
	l.Info("started", "addr", ":3000")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if rec["service"] != "portfolio" {
		t.Errorf("service = %v, want portfolio", rec["service"])
	}
	if rec["addr"] != ":3000" {
		t.Errorf("addr = %v, want :3000", rec["addr"])
	}
}

func TestNewHandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWith("portfolio", Options{Level: "warn", Out: &buf})
	l.Info("hidden")
	l.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "service=portfolio") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestNewHandlerPretty(t *testing.T) {
	var buf bytes.Buffer
	l := NewWith("portfolio", Options{Format: "pretty", Out: &buf})
	l.Info("pretty line")

	if !strings.Contains(buf.String(), "pretty line") {
		t.Errorf("pretty handler output %q", buf.String())
	}
}

func TestFromContext(t *testing.T) {
	if FromContext(context.Background()) != slog.Default() {
		t.Error("expected default logger for empty context")
	}

	l := New("test")
	ctx := IntoContext(context.Background(), l)
	if FromContext(ctx) != l {
		t.Error("expected logger stored in context")
	}
}
