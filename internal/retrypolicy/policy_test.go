package retrypolicy

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/optipix/imagesync/internal/platform"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "dial tcp: i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Class
	}{
		{"rate limit", &platform.PushError{StatusCode: 429, Message: "throttled"}, ClassRetryable},
		{"upstream 500", &platform.PushError{StatusCode: 500, Message: "internal"}, ClassRetryable},
		{"upstream 503", &platform.PushError{StatusCode: 503, Message: "unavailable"}, ClassRetryable},
		{"request timeout", &platform.PushError{StatusCode: 408, Message: "timeout"}, ClassRetryable},
		{"connection drop", &platform.PushError{StatusCode: 0, Message: "reset"}, ClassRetryable},
		{"validation", &platform.PushError{StatusCode: 422, Message: "bad alt text"}, ClassTerminal},
		{"missing resource", &platform.PushError{StatusCode: 404, Message: "product gone"}, ClassTerminal},
		{"forbidden", &platform.PushError{StatusCode: 403, Message: "scope"}, ClassTerminal},
		{"wrapped push error", fmt.Errorf("push: %w", &platform.PushError{StatusCode: 502}), ClassRetryable},
		{"deadline", context.DeadlineExceeded, ClassRetryable},
		{"net timeout", timeoutErr{}, ClassRetryable},
		{"plain error", errors.New("boom"), ClassTerminal},
		{"nil", nil, ClassTerminal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.err))
		})
	}
}

func TestShouldRetry(t *testing.T) {
	p := Policy{MaxRetries: 3}
	assert.True(t, p.ShouldRetry(0))
	assert.True(t, p.ShouldRetry(2))
	assert.False(t, p.ShouldRetry(3))
	assert.False(t, p.ShouldRetry(7))
}

func TestNextDelayExponentialWithinJitterBounds(t *testing.T) {
	p := Policy{MaxRetries: 3, BaseDelay: 30 * time.Second, MaxDelay: 30 * time.Minute}

	cases := []struct {
		retryCount int
		center     time.Duration
	}{
		{0, 30 * time.Second},
		{1, 60 * time.Second},
		{2, 120 * time.Second},
		{3, 240 * time.Second},
	}
	for _, tc := range cases {
		for i := 0; i < 50; i++ {
			d := p.NextDelay(tc.retryCount)
			assert.GreaterOrEqual(t, d, tc.center-tc.center/10, "retry %d", tc.retryCount)
			assert.LessOrEqual(t, d, tc.center+tc.center/10, "retry %d", tc.retryCount)
		}
	}
}

func TestNextDelayCapped(t *testing.T) {
	p := Policy{BaseDelay: time.Minute, MaxDelay: 5 * time.Minute}
	for i := 0; i < 50; i++ {
		d := p.NextDelay(20)
		assert.LessOrEqual(t, d, 5*time.Minute+30*time.Second)
		assert.GreaterOrEqual(t, d, 5*time.Minute-30*time.Second)
	}
}

func TestNextDelayNegativeCountTreatedAsZero(t *testing.T) {
	p := Policy{BaseDelay: 10 * time.Second, MaxDelay: time.Minute}
	d := p.NextDelay(-1)
	assert.GreaterOrEqual(t, d, 9*time.Second)
	assert.LessOrEqual(t, d, 11*time.Second)
}

func TestNextRetryAt(t *testing.T) {
	p := Policy{BaseDelay: 30 * time.Second, MaxDelay: time.Minute}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	at := p.NextRetryAt(now, 0)
	assert.True(t, at.After(now))
}
