package ctxutil

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_FromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithLogger(context.Background(), logger)
	Logger(ctx).Info("hello", "who", "frodo")

	if !strings.Contains(buf.String(), "who=frodo") {
		t.Errorf("expected log output to contain attribute, got %q", buf.String())
	}
}

func TestLogger_DefaultWhenMissing(t *testing.T) {
	if Logger(context.Background()) != slog.Default() {
		t.Error("expected slog.Default() when no logger is set")
	}
}
