package errors

import "fmt"

// NewHTTPError builds a classified error for a non-success status code.
func NewHTTPError(statusCode int, body string, operation string) *ClassifiedError {
	return &ClassifiedError{
		Category:   categoryFor(statusCode),
		StatusCode: statusCode,
		Body:       body,
		Underlying: fmt.Errorf("%s failed: HTTP %d", operation, statusCode),
	}
}

// NewNetworkError builds a classified error for a transport-level failure.
// Network faults are always recoverable; they may be transient.
func NewNetworkError(operation string, err error) *ClassifiedError {
	return &ClassifiedError{
		Category:   Recoverable,
		Underlying: fmt.Errorf("%s network error: %w", operation, err),
	}
}

// categoryFor maps an HTTP status code to a retry category. 4xx is
// irrecoverable except the two timeout/throttle codes; everything else,
// including 5xx, is worth retrying.
func categoryFor(statusCode int) ErrorCategory {
	if statusCode >= 400 && statusCode < 500 {
		switch statusCode {
		case 408, 429:
			return Recoverable
		default:
			return Irrecoverable
		}
	}
	return Recoverable
}
