package context

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeRequestID(t *testing.T) {
	assert.Equal(t, "abc-123", NormalizeRequestID("abc-123"))

	for _, bad := range []string{"", "has space", "line\nbreak", strings.Repeat("x", maxRequestIDLength+1)} {
		got := NormalizeRequestID(bad)
		_, err := uuid.Parse(got)
		assert.NoError(t, err, "input %q", bad)
	}
}

func TestLoggerRoundTrip(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "r1"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestRequestIDFromContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "r1")

	assert.Equal(t, "r1", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}
