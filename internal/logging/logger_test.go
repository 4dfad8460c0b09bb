package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLogger_WritesConsoleLines(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)

	l.Info().Str("path", "/tmp/AppIcon.png").Msg("Saved PNG")

	out := buf.String()
	if !strings.Contains(out, "Saved PNG") {
		t.Errorf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, "/tmp/AppIcon.png") {
		t.Errorf("expected field value in output, got %q", out)
	}
}

func TestDebugHiddenAtInfoLevel(t *testing.T) {
	SetGlobalLevel(zerolog.InfoLevel)
	var buf bytes.Buffer
	l := NewLogger(&buf)

	l.Debugf("font %s failed", "Times")

	if buf.Len() != 0 {
		t.Errorf("debug output leaked at info level: %q", buf.String())
	}

	SetGlobalLevel(zerolog.DebugLevel)
	defer SetGlobalLevel(zerolog.InfoLevel)
	l.Debugf("font %s failed", "Times")
	if !strings.Contains(buf.String(), "font Times failed") {
		t.Errorf("expected debug output at debug level, got %q", buf.String())
	}
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.Info().Msg("ignored")
	if l.Output() == nil {
		t.Error("Output() returned nil")
	}
}
