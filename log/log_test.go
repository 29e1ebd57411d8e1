package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestZeroValueLoggerDiscards(t *testing.T) {
	var logger Logger

	// Must not panic.
	logger.Info("dropped")
	logger.Error("dropped", slog.String("key", "value"))
}

func TestMakeTextFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatText), WithTimeLayout(""))
	logger.Info("hello", slog.String("who", "world"))

	out := buf.String()
	if !strings.Contains(out, "hello") || !strings.Contains(out, "who=world") {
		t.Errorf("unexpected text output: %q", out)
	}
}

func TestMakeJSONFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON), WithTimeLayout(""))
	logger.Info("hello", slog.Int("n", 42))

	out := buf.String()
	if !strings.Contains(out, `"msg":"hello"`) || !strings.Contains(out, `"n":42`) {
		t.Errorf("unexpected json output: %q", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatText), WithLevel(LevelWarn))
	logger.Info("filtered")
	logger.Trace("filtered")

	if buf.Len() != 0 {
		t.Errorf("expected no output below warn, got %q", buf.String())
	}

	logger.Warn("kept")

	if !strings.Contains(buf.String(), "kept") {
		t.Errorf("expected warn output, got %q", buf.String())
	}
}

func TestTraceLevelEnabled(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatText), WithLevel(LevelTrace), WithTimeLayout(""))
	logger.Trace("deep detail")

	out := buf.String()
	if !strings.Contains(out, "deep detail") || !strings.Contains(out, "TRACE") {
		t.Errorf("expected trace output with TRACE level, got %q", out)
	}
}

func TestWithAttrs(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatText), WithTimeLayout("")).
		With(slog.String("component", "render"))
	logger.Info("go")

	if !strings.Contains(buf.String(), "component=render") {
		t.Errorf("expected bound attribute, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", DefaultLevel},
	} {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON},
		{"text", FormatText},
		{" TEXT ", FormatText},
		{"bogus", DefaultFormat},
	} {
		if got := ParseFormat(tt.in); got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPrettyTextHandler(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf,
		WithFormat(FormatText), WithPretty(true), WithTimeLayout(""))
	logger.Info("shiny", slog.Bool("ok", true))

	out := buf.String()
	if !strings.Contains(out, "shiny") || !strings.Contains(out, "\033[") {
		t.Errorf("expected colorized output, got %q", out)
	}
}
