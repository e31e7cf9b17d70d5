package pathoffset

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerSilentByDefault(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should discard all records")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	defer SetLogger(nil)

	// A collapsing offset emits a debug diagnostic.
	ComputeOffsetPath("M 0 0 L 100 0 L 100 100 L 0 100 Z", -60, DefaultConfig())
	if !strings.Contains(buf.String(), "collapsed") {
		t.Errorf("expected collapse diagnostic, got %q", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}
