package types

import (
	"context"
	"fmt"
	"net/http"
	"regexp"

	"github.com/denoise-ai/denoise/client/internal/shardqueue"
)

// ------------------------------
// Shared Interfaces
// ------------------------------

// Executor interface for dependency injection (used by async operations).
type Executor interface {
	Submit(context.Context, string, shardqueue.Job) error
}

// HTTPClient interface for dependency injection.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ------------------------------
// Shared Errors
// ------------------------------

// ErrNotFound is returned when no profile record exists for a user id.
// Absence is a normal path for a first sign-in, not a failure.
var ErrNotFound = fmt.Errorf("profile record not found")

// ------------------------------
// Validation
// ------------------------------

// userIDRegex matches derived user ids: base64 of the email stripped to
// alphanumerics and truncated, so 1-20 letters and digits.
var userIDRegex = regexp.MustCompile(`^[A-Za-z0-9]{1,20}$`)

// ValidateUserID checks that a user id looks like a derived id before it is
// spliced into a URL path.
func ValidateUserID(userID string) error {
	if userID == "" {
		return fmt.Errorf("user_id is required")
	}
	if !userIDRegex.MatchString(userID) {
		return fmt.Errorf("user_id must be 1-20 letters or digits")
	}
	return nil
}

// ValidateRange checks the news time window.
func ValidateRange(r string) error {
	switch r {
	case "daily", "weekly", "monthly":
		return nil
	}
	return fmt.Errorf("range must be daily, weekly, or monthly")
}
