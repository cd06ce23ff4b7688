package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apivalidate/pkg/logger"
)

type requestIDKey struct{}

func requestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	id, _ := ctx.Value(requestIDKey{}).(string)
	if id == "" {
		return slog.Attr{}, false
	}
	return logger.RequestID(id), true
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("json at info by default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))

		log.Debug("hidden")
		assert.Empty(t, buf.String())

		log.Warn("request rejected", logger.Violations(2), logger.Kind("parametersValidationError"))
		entry := decodeLine(t, buf)
		assert.Equal(t, "WARN", entry["level"])
		assert.Equal(t, "request rejected", entry["msg"])
		assert.Equal(t, float64(2), entry["violations"])
		assert.Equal(t, "parametersValidationError", entry["kind"])
	})

	t.Run("text format and level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithFormat(logger.FormatText),
			logger.WithLevel(slog.LevelDebug),
		)
		log.Debug("request validation failed", logger.Rules(4))
		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "rules=4")
	})

	t.Run("static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(logger.Component("validator")))
		log.Info("ready")
		assert.Equal(t, "validator", decodeLine(t, buf)["component"])
	})

	t.Run("unknown format panics", func(t *testing.T) {
		assert.Panics(t, func() { logger.WithFormat(logger.Format("xml")) })
	})
}

func TestContextExtractors(t *testing.T) {
	t.Run("adds request id from context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(nil, requestIDExtractor),
		)
		ctx := context.WithValue(context.Background(), requestIDKey{}, "req-1")

		log.With(logger.Route("/users/{id}")).InfoContext(ctx, "validated")
		entry := decodeLine(t, buf)
		assert.Equal(t, "req-1", entry["request_id"])
		assert.Equal(t, "/users/{id}", entry["route"])
	})

	t.Run("skips empty context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextExtractors(requestIDExtractor))

		log.InfoContext(context.Background(), "validated")
		assert.NotContains(t, decodeLine(t, buf), "request_id")
	})

	t.Run("extracted attrs follow groups", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextExtractors(requestIDExtractor))
		ctx := context.WithValue(context.Background(), requestIDKey{}, "req-2")

		log.WithGroup("http").InfoContext(ctx, "validated", logger.Status(400))
		group, ok := decodeLine(t, buf)["http"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "req-2", group["request_id"])
		assert.Equal(t, float64(400), group["status"])
	})
}

func TestSetAsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	logger.SetAsDefault(logger.New(logger.WithOutput(buf)))
	slog.Info("default")
	assert.Equal(t, "default", decodeLine(t, buf)["msg"])
}
