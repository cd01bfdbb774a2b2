package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/dispatch/internal/adapters/logger"
)

func TestPrettyHandler(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	h := logger.NewPrettyHandler(&buf, nil)
	log := slog.New(h).With("platform", "ios").WithGroup("build")

	log.Warn("slow poll", "id", "b-2")
	assert.Equal(t, "! slow poll build.platform=ios build.id=b-2\n", buf.String())
}

func TestPrettyHandler_Enabled(t *testing.T) {
	h := logger.NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}
