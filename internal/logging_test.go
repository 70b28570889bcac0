package internal

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/exp/slog"
)

func TestLogHandler_FormatsAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewLogHandler(&buf, nil))

	logger.With("component", "planner").Info("network loaded", "stops", 12)

	line := buf.String()
	for _, want := range []string{"INFO", "network loaded", "component=planner", "stops=12"} {
		if !strings.Contains(line, want) {
			t.Errorf("expected %q in %q", want, line)
		}
	}
	if !strings.HasSuffix(line, "\n") {
		t.Errorf("expected trailing newline, got %q", line)
	}
}

func TestLogHandler_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewLogHandler(&buf, &slog.HandlerOptions{Level: ParseLevel("warn")}))

	logger.Info("hidden")
	logger.Warn("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("info record should be filtered at warn level")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("warn record should be written")
	}
}

func TestLogHandler_Group(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewLogHandler(&buf, nil)).WithGroup("http")

	logger.Info("request", "path", "/api/health")

	if !strings.Contains(buf.String(), "http.path=/api/health") {
		t.Errorf("expected grouped key, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
