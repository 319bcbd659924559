package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"DEBUG":   zerolog.DebugLevel,
		"warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"info":    zerolog.InfoLevel,
		"unknown": zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}

	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestGet_Uninitialized(t *testing.T) {
	Logger = nil
	if Get() == nil {
		t.Fatal("Get() should never return nil")
	}
}

func TestInit_WithFile(t *testing.T) {
	defer func() { Logger = nil }()

	logFile := filepath.Join(t.TempDir(), "scan.log")
	if err := Init("debug", logFile); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	Get().Info().Str("path", "/tmp/a").Msg("hello")

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("Expected log file to contain message, got %q", string(data))
	}
}

func TestInit_BadFile(t *testing.T) {
	defer func() { Logger = nil }()

	if err := Init("info", filepath.Join(t.TempDir(), "missing", "scan.log")); err == nil {
		t.Error("Expected error for log file in missing directory")
	}
}
