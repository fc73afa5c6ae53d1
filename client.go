// Package client is the Go SDK for the deNoise backend: personalized news
// chat, report and podcast generation, and the per-user profile and session
// lifecycle around them.
package client

import (
	"context"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/denoise-ai/denoise/client/internal/api"
	"github.com/denoise-ai/denoise/client/internal/shardqueue"
	"github.com/denoise-ai/denoise/client/internal/types"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	baseURL string
	http    *http.Client
	exec    executor

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client for the given backend base URL. Additional options
// can be provided via functional arguments.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}
	if c.exec == nil {
		exec, err := newDefaultExecutor()
		if err != nil {
			panic(err)
		}
		c.exec = exec
	}

	c.wrapTransportWithRequestID()

	return c
}

// wrapTransportWithRequestID tags every outgoing request with a fresh
// X-Request-ID so client and server logs can be correlated.
func (c *Client) wrapTransportWithRequestID() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.http.Transport = &requestIDTransport{base: base}
}

type requestIDTransport struct {
	base http.RoundTripper
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	cloned := req.Clone(req.Context())
	cloned.Header.Set("X-Request-ID", uuid.NewString())
	return t.base.RoundTrip(cloned)
}

// Close stops the background executor (if any). Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if c.exec != nil {
		c.exec.Stop()
	}
	return nil
}

// Flush blocks until all previously submitted detached jobs for the given
// userID have been executed. It works by submitting a no-op job and waiting
// for it to run, relying on per-key FIFO ordering.
func (c *Client) Flush(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	done := make(chan struct{})
	barrier := shardqueue.JobFunc(func(context.Context) error {
		close(done)
		return nil
	})
	if err := c.exec.Submit(ctx, userID, barrier); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// newDefaultExecutor constructs the shardqueue executor from the SQ_*
// environment tunables. MaxAttempts is forced to 1 regardless of env: a
// session purge is attempted once per transition and a failure is logged,
// not retried.
func newDefaultExecutor() (*shardqueue.ShardExecutor, error) {
	cfg, err := shardqueue.LoadConfig()
	if err != nil {
		return nil, err
	}
	cfg.MaxAttempts = 1
	cfg.ErrorHandler = func(err error) {
		if err == nil {
			return
		}
		purgesFailedTotal.Inc()
		log.Error().Err(err).Msg("detached job failed")
	}
	return shardqueue.NewShardExecutor(cfg), nil
}

// --------------------------------------------------------------------
// Profile operations - delegated to internal/api
// --------------------------------------------------------------------

// GetInstructions fetches the stored profile record for a user.
// Returns ErrNotFound when no record exists yet.
func (c *Client) GetInstructions(ctx context.Context, userID string) (*InstructionsResponse, error) {
	return api.GetInstructions(ctx, c.http, c.baseURL, userID)
}

// UpsertProfile writes the full canonical profile record.
func (c *Client) UpsertProfile(ctx context.Context, req UpsertProfileRequest) error {
	return api.UpsertProfile(ctx, c.http, c.baseURL, req)
}

// --------------------------------------------------------------------
// Chat operations - delegated to internal/api (mixed sync/async)
// --------------------------------------------------------------------

// SendMessage posts one user message and returns the assistant's answer with
// its news sources.
func (c *Client) SendMessage(ctx context.Context, userID, message string) (*ChatResponse, error) {
	return api.SendMessage(ctx, c.http, c.baseURL, userID, message)
}

// ClearChatSession synchronously purges the server-held conversation memory
// for a user.
func (c *Client) ClearChatSession(ctx context.Context, userID string) (*ClearSessionResponse, error) {
	return api.ClearSession(ctx, c.http, c.baseURL, userID)
}

// purgeSession issues the detached purge used at session boundaries. The
// user id is captured here, at the transition that triggered it; the HTTP
// call runs on the user's shard and its failure only reaches the executor's
// error handler. SessionSync depends on this never blocking and never
// surfacing an error.
func (c *Client) purgeSession(userID string) {
	ack, err := api.ClearSessionAsync(context.Background(), c.exec, c.http, c.baseURL, userID)
	if err != nil {
		purgesFailedTotal.Inc()
		log.Error().Err(err).Str("user_id", userID).Msg("session purge enqueue failed")
		return
	}
	purgesEnqueuedTotal.WithLabelValues(shardLabel(ack.UserID)).Inc()
}

// --------------------------------------------------------------------
// News and generation operations - delegated to internal/api
// --------------------------------------------------------------------

// FetchNews retrieves curated articles for a time window
// (daily, weekly, or monthly), biased by free-text instructions.
func (c *Client) FetchNews(ctx context.Context, newsRange, instructions string) ([]NewsItem, error) {
	return api.FetchNews(ctx, c.http, c.baseURL, newsRange, instructions)
}

// GenerateReport produces a text report over the user's news window.
func (c *Client) GenerateReport(ctx context.Context, userID, newsRange string) (*Report, error) {
	return api.GenerateReport(ctx, c.http, c.baseURL, types.GenerateRequest{UserID: userID, Range: newsRange})
}

// GeneratePodcast scripts and synthesizes an audio podcast for the user's
// news window.
func (c *Client) GeneratePodcast(ctx context.Context, userID, newsRange string) (*PodcastResponse, error) {
	return api.GeneratePodcast(ctx, c.http, c.baseURL, types.GenerateRequest{UserID: userID, Range: newsRange})
}
