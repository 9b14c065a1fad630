package common

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapErrorKeepsChain(t *testing.T) {
	wrapped := WrapError(ErrDatabase, "query job")
	require.Error(t, wrapped)
	assert.Equal(t, "query job: database error", wrapped.Error())
	assert.True(t, errors.Is(wrapped, ErrDatabase))
}

func TestWrapErrorNil(t *testing.T) {
	assert.NoError(t, WrapError(nil, "anything"))
}

func TestAppErrorUnwrap(t *testing.T) {
	appErr := NewAppError("RESERVATION_EXISTS", "job already holds tokens", ErrInvalidInput)
	assert.True(t, errors.Is(appErr, ErrInvalidInput))
	assert.Contains(t, appErr.Error(), "RESERVATION_EXISTS")
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", RequestIDFromContext(ctx))
	assert.Equal(t, "", RequestIDFromContext(context.Background()))
}
