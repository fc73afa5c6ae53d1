package client

import (
	"context"

	"github.com/denoise-ai/denoise/client/internal/shardqueue"
)

// executor abstracts the internal async job runner used by detached
// operations (session purges).
type executor interface {
	Submit(context.Context, string, shardqueue.Job) error
	Stop()
}

// noOpExecutor backs sync-only clients built with WithoutExecutor. Detached
// submissions are refused with ErrExecutorClosed rather than run; callers
// treat that like any other enqueue failure and log it.
type noOpExecutor struct{}

func (noOpExecutor) Submit(context.Context, string, shardqueue.Job) error {
	return shardqueue.ErrExecutorClosed
}

func (noOpExecutor) Stop() {}
