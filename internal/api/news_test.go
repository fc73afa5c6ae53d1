package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/denoise-ai/denoise/client/internal/types"
)

func TestFetchNews_QueryEncoding(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/news" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("range") != "weekly" {
			t.Errorf("range = %s", q.Get("range"))
		}
		if q.Get("instructions") != "energy & metals" {
			t.Errorf("instructions = %q", q.Get("instructions"))
		}
		_ = json.NewEncoder(w).Encode([]types.NewsItem{
			{ID: "n1", Title: "Copper rally", Text: "Copper futures rose 3%.", Date: "2025-06-01"},
		})
	}))
	t.Cleanup(srv.Close)

	items, err := FetchNews(context.Background(), srv.Client(), srv.URL, "weekly", "energy & metals")
	if err != nil {
		t.Fatalf("FetchNews: %v", err)
	}
	if len(items) != 1 || items[0].Title != "Copper rally" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestFetchNews_InvalidRange(t *testing.T) {
	t.Parallel()
	_, err := FetchNews(context.Background(), http.DefaultClient, "http://unused", "hourly", "")
	if err == nil {
		t.Fatal("expected validation error for unknown range")
	}
}
