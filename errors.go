package client

import (
	"errors"
	"fmt"

	"github.com/denoise-ai/denoise/client/internal/shardqueue"
	"github.com/denoise-ai/denoise/client/internal/types"
)

// ErrBackPressure is returned when the client's internal shard queue is full.
var ErrBackPressure = shardqueue.ErrQueueFull

// IsBackPressure reports whether err is a back-pressure error.
func IsBackPressure(err error) bool { return errors.Is(err, ErrBackPressure) }

// Re-export the shared SDK sentinel so callers compare against one symbol.
var ErrNotFound = types.ErrNotFound

// AuthError reports a failed sign-in or sign-up. No local state is mutated
// when it is returned.
type AuthError struct {
	Email string
	Err   error
}

func (e *AuthError) Error() string { return fmt.Sprintf("authenticate %q: %v", e.Email, e.Err) }

func (e *AuthError) Unwrap() error { return e.Err }

// ProfileWriteError reports a failed explicit profile save. The locally
// cached identity fields keep the attempted values; they are not rolled
// back, and the divergence heals on the next successful save.
type ProfileWriteError struct {
	UserID string
	Err    error
}

func (e *ProfileWriteError) Error() string {
	return fmt.Sprintf("save profile for %s: %v", e.UserID, e.Err)
}

func (e *ProfileWriteError) Unwrap() error { return e.Err }
