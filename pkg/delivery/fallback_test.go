package delivery

import (
	"context"
	"errors"
	"sync"
	"testing"

	"roomlink-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTransport fails or succeeds unconditionally and counts attempts.
type stubTransport struct {
	mu    sync.Mutex
	err   error
	calls int
}

func (t *stubTransport) Send(ctx context.Context, rcpt entity.Recipient, msg Message) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls++
	return t.err
}

func (t *stubTransport) callCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.calls
}

func TestSendWithFallback_PrimarySucceeds(t *testing.T) {
	primary := &stubTransport{}
	fallback := &stubTransport{}

	result := SendWithFallback(context.Background(), primary, fallback, entity.Recipient{Id: uuid.New()}, Message{})

	assert.True(t, result.Sent())
	assert.Equal(t, RoutePrimary, result.Via)
	assert.Equal(t, 1, primary.callCount())
	// The fallback is never touched on a primary success.
	assert.Equal(t, 0, fallback.callCount())
}

func TestSendWithFallback_FallbackRecovers(t *testing.T) {
	primary := &stubTransport{err: errors.New("connection refused")}
	fallback := &stubTransport{}

	result := SendWithFallback(context.Background(), primary, fallback, entity.Recipient{Id: uuid.New()}, Message{})

	assert.True(t, result.Sent())
	assert.Equal(t, RouteFallback, result.Via)
	assert.Equal(t, 1, primary.callCount())
	assert.Equal(t, 1, fallback.callCount())
}

func TestSendWithFallback_BothFail(t *testing.T) {
	primary := &stubTransport{err: errors.New("primary down")}
	fallback := &stubTransport{err: errors.New("relay rejected sender")}

	result := SendWithFallback(context.Background(), primary, fallback, entity.Recipient{Id: uuid.New()}, Message{})

	require.False(t, result.Sent())
	// The fallback's error is the final verdict.
	assert.Contains(t, result.Err.Error(), "relay rejected sender")
}

func TestSendWithFallback_NoFallbackConfigured(t *testing.T) {
	primary := &stubTransport{err: errors.New("primary down")}

	result := SendWithFallback(context.Background(), primary, nil, entity.Recipient{Id: uuid.New()}, Message{})

	require.False(t, result.Sent())
	assert.Contains(t, result.Err.Error(), "primary down")
	assert.Equal(t, 1, primary.callCount())
}
