package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		raw  string
		want zerolog.Level
		ok   bool
	}{
		{"debug", zerolog.DebugLevel, true},
		{" WARNING ", zerolog.WarnLevel, true},
		{"off", zerolog.Disabled, true},
		{"diagnostics", zerolog.TraceLevel, true},
		{"", zerolog.InfoLevel, false},
		{"loud", zerolog.InfoLevel, false},
	}
	for _, tc := range cases {
		got, ok := ParseLevel(tc.raw)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseLevel(%q) = (%v, %v), want (%v, %v)", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestEnvOverridesApplyToProfile(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogTimestamp, "true")
	t.Setenv(EnvLogNoColor, "1")

	cfg := defaultConfig(ProfileTest)
	applyEnvOverrides(&cfg)
	if cfg.Level != zerolog.ErrorLevel {
		t.Fatalf("unexpected level: %v", cfg.Level)
	}
	if !cfg.Timestamp {
		t.Fatalf("expected timestamp enabled")
	}
	if !cfg.NoColor {
		t.Fatalf("expected color disabled")
	}
}

func TestEnvOverridesIgnoreGarbage(t *testing.T) {
	t.Setenv(EnvLogLevel, "chatty")
	t.Setenv(EnvLogTimestamp, "maybe")

	cfg := defaultConfig(ProfileRuntime)
	applyEnvOverrides(&cfg)
	if cfg.Level != zerolog.InfoLevel {
		t.Fatalf("unexpected level: %v", cfg.Level)
	}
	if !cfg.Timestamp {
		t.Fatalf("expected runtime timestamp default kept")
	}
}

func TestNewLoggerTestProfileOmitsTimestamp(t *testing.T) {
	var buf bytes.Buffer
	cfg := defaultConfig(ProfileTest)
	cfg.Out = &buf
	cfg.NoColor = true

	logger := newLogger(cfg)
	logger.Info().Msg("ready")

	out := buf.String()
	if !strings.Contains(out, "ready") || !strings.Contains(out, "app=decsctl") {
		t.Fatalf("unexpected output: %q", out)
	}
	if strings.Contains(out, "<nil>") || strings.Contains(out, time.Now().Format("2006-")) {
		t.Fatalf("expected no timestamp, got %q", out)
	}
	if !strings.HasPrefix(out, "INF") {
		t.Fatalf("expected level first when timestamp excluded, got %q", out)
	}
}

func TestNewLoggerRuntimeProfileStampsTime(t *testing.T) {
	var buf bytes.Buffer
	cfg := defaultConfig(ProfileRuntime)
	cfg.Out = &buf
	cfg.NoColor = true

	logger := newLogger(cfg)
	logger.Info().Msg("ready")

	out := buf.String()
	if !strings.Contains(out, time.Now().Format("2006-")) {
		t.Fatalf("expected timestamp, got %q", out)
	}
	if !strings.Contains(out, "app=decsctl") {
		t.Fatalf("missing app field: %q", out)
	}
}
