package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{name: "debug level", level: "debug"},
		{name: "info level", level: "info"},
		{name: "warn level", level: "warn"},
		{name: "error level", level: "error"},
		{name: "invalid level defaults to warn", level: "invalid"},
		{name: "empty level defaults to warn", level: ""},
		{name: "uppercase level", level: "DEBUG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level, &bytes.Buffer{})
			if log == nil {
				t.Fatal("Expected logger to be non-nil")
			}
		})
	}
}

func TestNew_NilOutputDefaultsToStderr(t *testing.T) {
	log := New("info", nil)
	if log == nil {
		t.Fatal("Expected logger to be non-nil")
	}
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := New("debug", &buf)

	log.Debug().Msg("debug message")
	log.Info().Msg("info message")
	log.Warn().Msg("warn message")
	log.Error().Msg("error message")

	output := buf.String()
	for _, want := range []string{"debug message", "info message", "warn message", "error message"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got: %s", want, output)
		}
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", &buf)

	log.Debug().Msg("hidden debug")
	log.Info().Msg("hidden info")
	log.Warn().Msg("visible warn")

	output := buf.String()
	if strings.Contains(output, "hidden debug") || strings.Contains(output, "hidden info") {
		t.Errorf("Expected debug/info to be filtered at warn level, got: %s", output)
	}
	if !strings.Contains(output, "visible warn") {
		t.Errorf("Expected warn message in output, got: %s", output)
	}
}

func TestEntry_Fields(t *testing.T) {
	var buf bytes.Buffer
	log := New("debug", &buf)

	log.Info().
		Str("shell", "bash").
		Int("commands", 3).
		Bool("sorted", true).
		Err(errors.New("boom")).
		Msg("emitting")

	output := buf.String()
	for _, want := range []string{"shell", "bash", "commands", "sorted", "boom", "emitting"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got: %s", want, output)
		}
	}
}

func TestEntry_NilErrIgnored(t *testing.T) {
	var buf bytes.Buffer
	log := New("debug", &buf)

	log.Info().Err(nil).Msg("no error")

	if strings.Contains(buf.String(), "error=") {
		t.Errorf("Expected no error field for nil error, got: %s", buf.String())
	}
}
