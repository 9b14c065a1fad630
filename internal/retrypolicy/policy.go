package retrypolicy

import (
	"context"
	"errors"
	"math/rand"
	"net"
	"time"

	"github.com/optipix/imagesync/internal/common"
	"github.com/optipix/imagesync/internal/platform"
)

// Class labels a per-item push error. Retryable failures are absorbed by
// the retry loop up to the job's cap; terminal failures take the item out
// of the run permanently.
type Class int

const (
	ClassRetryable Class = iota
	ClassTerminal
)

func (c Class) String() string {
	if c == ClassRetryable {
		return "retryable"
	}
	return "terminal"
}

// Classify decides whether a push error is worth another attempt.
// Timeouts, rate limits and upstream 5xx come back; validation errors and
// missing resources do not.
func Classify(err error) Class {
	if err == nil {
		return ClassTerminal
	}

	var pushErr *platform.PushError
	if errors.As(err, &pushErr) {
		if pushErr.Retryable() {
			return ClassRetryable
		}
		return ClassTerminal
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ClassRetryable
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ClassRetryable
	}

	return ClassTerminal
}

// Policy computes whether and when a job's failed push run is re-attempted.
type Policy struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

func FromConfig(cfg common.JobsConfig) Policy {
	return Policy{
		MaxRetries: cfg.MaxRetries,
		BaseDelay:  cfg.RetryBaseDelay,
		MaxDelay:   cfg.RetryMaxDelay,
	}
}

// ShouldRetry reports whether a job with the given retry count may loop
// back to pending. The caller has already established that at least one
// failed item classified retryable.
func (p Policy) ShouldRetry(retryCount int) bool {
	return retryCount < p.MaxRetries
}

// NextDelay is base × 2^retryCount capped at MaxDelay, with up to ±10%
// jitter so a fleet of jobs failed by the same outage does not re-claim
// in lockstep.
func (p Policy) NextDelay(retryCount int) time.Duration {
	if retryCount < 0 {
		retryCount = 0
	}

	d := p.BaseDelay
	for i := 0; i < retryCount; i++ {
		d *= 2
		if d >= p.MaxDelay {
			d = p.MaxDelay
			break
		}
	}
	if d > p.MaxDelay {
		d = p.MaxDelay
	}

	jitter := time.Duration(rand.Int63n(int64(d)/5+1)) - d/10
	return d + jitter
}

// NextRetryAt anchors NextDelay to a wall-clock instant.
func (p Policy) NextRetryAt(now time.Time, retryCount int) time.Time {
	return now.Add(p.NextDelay(retryCount))
}
