package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetupWritesToFile(t *testing.T) {
	dir := t.TempDir()
	if err := Setup(dir, "debug"); err != nil {
		t.Fatalf("Setup() error: %v", err)
	}

	log.Info().Str("component", "test").Msg("hello from test")

	data, err := os.ReadFile(filepath.Join(dir, "logs", "voltlab.log"))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("log file missing entry, got: %s", data)
	}
	if !strings.Contains(string(data), `"component":"test"`) {
		t.Errorf("log file missing component field, got: %s", data)
	}
}

func TestSetupLevels(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"WARN", zerolog.WarnLevel},
		{" info ", zerolog.InfoLevel},
		{"chatty", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseLevel(tt.in); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSetupUnwritableDirSilencesLogger(t *testing.T) {
	dir := t.TempDir()
	// A file where the logs directory should be makes MkdirAll fail.
	if err := os.WriteFile(filepath.Join(dir, "logs"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Setup(dir, "info"); err == nil {
		t.Fatal("expected error when log directory cannot be created")
	}

	// Logging after a failed setup must not panic.
	log.Info().Msg("goes nowhere")
}
