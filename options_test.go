package client

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/denoise-ai/denoise/client/internal/shardqueue"
)

func TestWithHTTPTimeout(t *testing.T) {
	t.Parallel()
	c := New("http://unused", WithHTTPTimeout(5*time.Second), WithoutExecutor())
	t.Cleanup(func() { _ = c.Close() })

	if c.http.Timeout != 5*time.Second {
		t.Fatalf("timeout = %v, want 5s", c.http.Timeout)
	}
}

func TestWithHTTPTimeout_Invalid(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-positive timeout")
		}
	}()
	_ = New("http://unused", WithHTTPTimeout(0))
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()
	hc := &http.Client{Timeout: time.Second}
	c := New("http://unused", WithHTTPClient(hc), WithoutExecutor())
	t.Cleanup(func() { _ = c.Close() })

	if c.http != hc {
		t.Fatal("custom http client not installed")
	}
}

func TestWithHTTPClient_Nil(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil http client")
		}
	}()
	_ = New("http://unused", WithHTTPClient(nil))
}

// A sync-only client refuses detached operations with an error; nothing in
// this subsystem is allowed to take the process down.
func TestWithoutExecutor_DetachedOpsRefused(t *testing.T) {
	t.Parallel()
	c := New("http://unused", WithoutExecutor())
	t.Cleanup(func() { _ = c.Close() })

	err := c.Flush(context.Background(), "u1")
	if !errors.Is(err, shardqueue.ErrExecutorClosed) {
		t.Fatalf("expected ErrExecutorClosed from Flush on a sync-only client, got %v", err)
	}
}
