package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_JSONWithService(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: INFO, Format: JSON, Output: &buf, Service: "utilkit"})

	log.Info("hello", "answer", 42)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "hello" {
		t.Errorf("msg = %v, want hello", entry["msg"])
	}
	if entry[SERVICE] != "utilkit" {
		t.Errorf("service = %v, want utilkit", entry[SERVICE])
	}
	if entry["answer"] != float64(42) {
		t.Errorf("answer = %v, want 42", entry["answer"])
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: WARN, Format: TEXT, Output: &buf})

	log.Info("dropped")
	log.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "msg=kept") {
		t.Errorf("warn message missing from text output: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: " WARN ", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "info", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "verbose", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Error("discarded")
	if log.Enabled(t.Context(), slog.LevelError) {
		t.Error("Nop logger should not be enabled for errors")
	}
}
