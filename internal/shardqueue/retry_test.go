package shardqueue

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/denoise-ai/denoise/client/internal/errors"
)

// Recoverable failures are retried up to MaxAttempts with backoff.
func TestRetry_RecoverableRetriedUntilSuccess(t *testing.T) {
	t.Parallel()
	var handled int32
	cfg := Config{
		Shards:      1,
		QueueSize:   4,
		MaxAttempts: 3,
		BaseBackoff: time.Millisecond,
		ErrorHandler: func(err error) {
			atomic.AddInt32(&handled, 1)
		},
	}
	ex := NewShardExecutor(cfg)
	defer ex.Stop()

	var attempts int32
	done := make(chan struct{})
	_ = ex.Submit(context.Background(), "u1", JobFunc(func(ctx context.Context) error {
		if atomic.AddInt32(&attempts, 1) < 3 {
			return errors.NewHTTPError(503, "", "clear session")
		}
		close(done)
		return nil
	}))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for job to succeed after retries")
	}

	if got := atomic.LoadInt32(&attempts); got != 3 {
		t.Fatalf("attempts = %d, want 3", got)
	}
	if got := atomic.LoadInt32(&handled); got != 0 {
		t.Fatalf("error handler called %d times for a job that eventually succeeded", got)
	}
}

// Recoverable failures stop after MaxAttempts and reach the handler once.
func TestRetry_RecoverableExhaustsAttempts(t *testing.T) {
	t.Parallel()
	handled := make(chan error, 1)
	cfg := Config{
		Shards:      1,
		QueueSize:   4,
		MaxAttempts: 2,
		BaseBackoff: time.Millisecond,
		ErrorHandler: func(err error) {
			handled <- err
		},
	}
	ex := NewShardExecutor(cfg)
	defer ex.Stop()

	var attempts int32
	_ = ex.Submit(context.Background(), "u1", JobFunc(func(ctx context.Context) error {
		atomic.AddInt32(&attempts, 1)
		return errors.NewHTTPError(503, "", "clear session")
	}))

	select {
	case err := <-handled:
		if errors.IsIrrecoverable(err) {
			t.Fatalf("expected recoverable error, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for error handler")
	}

	if got := atomic.LoadInt32(&attempts); got != 2 {
		t.Fatalf("attempts = %d, want 2", got)
	}
}

// Irrecoverable failures are never retried, regardless of MaxAttempts.
func TestRetry_IrrecoverableFailsFast(t *testing.T) {
	t.Parallel()
	handled := make(chan error, 1)
	cfg := Config{
		Shards:      1,
		QueueSize:   4,
		MaxAttempts: 5,
		BaseBackoff: time.Millisecond,
		ErrorHandler: func(err error) {
			handled <- err
		},
	}
	ex := NewShardExecutor(cfg)
	defer ex.Stop()

	var attempts int32
	_ = ex.Submit(context.Background(), "u1", JobFunc(func(ctx context.Context) error {
		atomic.AddInt32(&attempts, 1)
		return errors.NewHTTPError(404, "no such user", "clear session")
	}))

	select {
	case err := <-handled:
		if !errors.IsIrrecoverable(err) {
			t.Fatalf("expected irrecoverable error, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for error handler")
	}

	if got := atomic.LoadInt32(&attempts); got != 1 {
		t.Fatalf("attempts = %d, want 1 (no retries for 4xx)", got)
	}
}

// The default MaxAttempts of 1 means a failing job runs exactly once.
func TestRetry_DefaultSingleAttempt(t *testing.T) {
	t.Parallel()
	handled := make(chan struct{}, 1)
	cfg := Config{
		Shards:    1,
		QueueSize: 4,
		ErrorHandler: func(err error) {
			handled <- struct{}{}
		},
	}
	ex := NewShardExecutor(cfg)
	defer ex.Stop()

	var attempts int32
	_ = ex.Submit(context.Background(), "u1", JobFunc(func(ctx context.Context) error {
		atomic.AddInt32(&attempts, 1)
		return errors.NewHTTPError(503, "", "clear session")
	}))

	select {
	case <-handled:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for error handler")
	}

	if got := atomic.LoadInt32(&attempts); got != 1 {
		t.Fatalf("attempts = %d, want 1 (retries disabled by default)", got)
	}
}
