package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/denoise-ai/denoise/client/internal/shardqueue"
	"github.com/denoise-ai/denoise/client/internal/types"
)

// SendMessage posts one user message to the conversational endpoint. The
// server holds the per-user conversation memory; the client only keeps the
// visible transcript.
func SendMessage(ctx context.Context, httpClient types.HTTPClient, baseURL, userID, message string) (*types.ChatResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateUserID(userID); err != nil {
		return nil, err
	}
	if message == "" {
		return nil, fmt.Errorf("message is required")
	}
	body, err := json.Marshal(types.ChatRequest{UserID: userID, Message: message})
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/api/chat", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("send message: status %d", resp.StatusCode)
	}

	var cr types.ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, err
	}
	return &cr, nil
}

// ClearSession synchronously purges the server-held conversation memory for
// a user.
func ClearSession(ctx context.Context, httpClient types.HTTPClient, baseURL, userID string) (*types.ClearSessionResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateUserID(userID); err != nil {
		return nil, err
	}
	resp, err := doClearSession(ctx, httpClient, baseURL, userID)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ClearSessionAsync submits the purge as a detached job on the user's shard.
// The user id is captured now, so the job hits the identity that was active
// at the transition even if another transition happens before it runs.
// Job failures propagate to the executor's error handler, never to the
// caller.
func ClearSessionAsync(ctx context.Context, exec types.Executor, httpClient types.HTTPClient, baseURL, userID string) (*types.EnqueueAck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateUserID(userID); err != nil {
		return nil, err
	}

	clearJob := shardqueue.JobFunc(func(jobCtx context.Context) error {
		_, err := doClearSession(jobCtx, httpClient, baseURL, userID)
		return err
	})

	if err := exec.Submit(ctx, userID, clearJob); err != nil {
		return nil, err
	}
	return &types.EnqueueAck{UserID: userID, Status: "enqueued"}, nil
}

func doClearSession(ctx context.Context, httpClient types.HTTPClient, baseURL, userID string) (*types.ClearSessionResponse, error) {
	body, err := json.Marshal(types.ClearSessionRequest{UserID: userID})
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/api/chat/clear", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("clear session: status %d", resp.StatusCode)
	}

	var cr types.ClearSessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, err
	}
	return &cr, nil
}
