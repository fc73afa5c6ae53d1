package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/denoise-ai/denoise/client/internal/types"
)

// FetchNews retrieves curated articles for a time window, biased by the
// user's free-text instructions.
func FetchNews(ctx context.Context, httpClient types.HTTPClient, baseURL, newsRange, instructions string) ([]types.NewsItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateRange(newsRange); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("range", newsRange)
	q.Set("instructions", instructions)
	reqURL := fmt.Sprintf("%s/api/news?%s", baseURL, q.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch news: status %d", resp.StatusCode)
	}

	var items []types.NewsItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, err
	}
	return items, nil
}
