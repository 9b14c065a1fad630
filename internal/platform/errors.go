package platform

import "fmt"

// PushError is a push failure reported by the storefront API. StatusCode
// carries the HTTP status when one was received; 0 means the request never
// completed (dial/timeout).
type PushError struct {
	StatusCode int
	Message    string
}

func (e *PushError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("push failed: %s", e.Message)
	}
	return fmt.Sprintf("push failed (%d): %s", e.StatusCode, e.Message)
}

// Retryable reports whether another attempt could succeed. Timeouts,
// rate limits and server errors are transient; other 4xx are not.
func (e *PushError) Retryable() bool {
	if e.StatusCode == 0 {
		return true
	}
	switch {
	case e.StatusCode == 408, e.StatusCode == 429:
		return true
	case e.StatusCode >= 500:
		return true
	}
	return false
}

// OptimizeError is a failure reported by the optimization engine for one item.
type OptimizeError struct {
	Message string
}

func (e *OptimizeError) Error() string {
	return fmt.Sprintf("optimize failed: %s", e.Message)
}
