package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	interrors "github.com/denoise-ai/denoise/client/internal/errors"
	"github.com/denoise-ai/denoise/client/internal/types"
)

// GetInstructions fetches the stored profile record for a user.
// A 404 means no record exists yet and is reported as types.ErrNotFound;
// callers treat that as a normal first-sign-in path.
func GetInstructions(ctx context.Context, httpClient types.HTTPClient, baseURL, userID string) (*types.InstructionsResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateUserID(userID); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/api/user/%s/instructions", baseURL, userID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, types.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get instructions: status %d", resp.StatusCode)
	}

	var ir types.InstructionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&ir); err != nil {
		return nil, err
	}
	return &ir, nil
}

// UpsertProfile writes the full canonical profile record. Failures come back
// classified so callers can tell a transport fault (no status, possibly
// transient) from a server rejection (status, must surface).
func UpsertProfile(ctx context.Context, httpClient types.HTTPClient, baseURL string, req types.UpsertProfileRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := types.ValidateUserID(req.UserID); err != nil {
		return err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/api/user/profile", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return interrors.NewNetworkError("upsert profile", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return interrors.NewHTTPError(resp.StatusCode, string(respBody), "upsert profile")
	}
	return nil
}
