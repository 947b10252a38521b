package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextFields_RoundTrip(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, GetRequestID(ctx))
	assert.Empty(t, GetUserID(ctx))

	ctx = WithRequestID(ctx, "req-123")
	ctx = WithUserID(ctx, "op-456")

	assert.Equal(t, "req-123", GetRequestID(ctx))
	assert.Equal(t, "op-456", GetUserID(ctx))
}

func TestFromContext_NeverNil(t *testing.T) {
	// Both with and without fields attached, FromContext must hand back a
	// usable logger so call sites never nil-check.
	assert.NotNil(t, FromContext(context.Background()))

	ctx := WithUserID(WithRequestID(context.Background(), "req-789"), "op-1")
	log := FromContext(ctx)
	assert.NotNil(t, log)
	log.Info("context logger smoke check")
}
