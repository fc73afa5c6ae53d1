package client

import (
	"context"
	"net/http"
	"testing"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestNew_AutoEnableDebugViaEnv(t *testing.T) {
	t.Setenv("DENOISE_DEBUG", "true")
	c := New("http://example.com", WithoutExecutor())
	t.Cleanup(func() { _ = c.Close() })

	// The request-id wrapper is always outermost; debug sits underneath it.
	rid, ok := c.http.Transport.(*requestIDTransport)
	if !ok {
		t.Fatalf("expected requestIDTransport outermost, got %T", c.http.Transport)
	}
	if _, ok := rid.base.(*debugTransport); !ok {
		t.Fatalf("expected debugTransport to be installed when DENOISE_DEBUG=true, got %T", rid.base)
	}
}

func TestDebugTransport_ErrorPath(t *testing.T) {
	// base transport returns error
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	})
	c := New("http://example.com", WithHTTPClient(&http.Client{Transport: rt}), WithDebugLogging(true), WithoutExecutor())
	t.Cleanup(func() { _ = c.Close() })

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", http.NoBody)
	if _, err := c.http.Do(req); err == nil {
		t.Fatalf("expected error from underlying transport")
	}
}
