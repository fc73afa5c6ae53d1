// Package errors classifies remote-call failures so callers can decide
// whether to retry, surface, or swallow them.
package errors

import "fmt"

// ErrorCategory determines how a failure is handled downstream.
type ErrorCategory int

const (
	// Recoverable failures may be retried: 5xx, 408/429, network faults.
	Recoverable ErrorCategory = iota

	// Irrecoverable failures must not be retried: 400, 401, 403, 404, ...
	Irrecoverable
)

func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// ClassifiedError wraps a failure with its category and, for HTTP failures,
// the status code. StatusCode is zero for network-level faults.
type ClassifiedError struct {
	Category   ErrorCategory
	StatusCode int
	Body       string
	Underlying error
}

func (e *ClassifiedError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%s] HTTP %d: %v", e.Category, e.StatusCode, e.Underlying)
	}
	return fmt.Sprintf("[%s] %v", e.Category, e.Underlying)
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *ClassifiedError) Unwrap() error { return e.Underlying }

// IsIrrecoverable reports whether err must not be retried.
func IsIrrecoverable(err error) bool {
	if classified, ok := err.(*ClassifiedError); ok {
		return classified.Category == Irrecoverable
	}
	return false
}

// IsNetwork reports whether err is a transport-level failure that never
// reached the server (no HTTP status was produced).
func IsNetwork(err error) bool {
	if classified, ok := err.(*ClassifiedError); ok {
		return classified.StatusCode == 0
	}
	return false
}
