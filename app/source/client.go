package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client fetches external resources for the pipeline: the feed itself and
// episode artwork.
type Client struct {
	http *resty.Client
}

func NewClient(timeout time.Duration, userAgent string) *Client {
	return &Client{
		http: resty.New().
			SetTimeout(timeout).
			SetHeader("User-Agent", userAgent),
	}
}

// FetchFeed tries each candidate URL in order and returns the body of the
// first successful response. When every source fails the per-URL errors are
// joined into the returned error; callers treat that as fatal.
func (c *Client) FetchFeed(ctx context.Context, urls []string) ([]byte, error) {
	var errs []error
	for i, url := range urls {
		slog.Info("Fetching feed", "attempt", i+1, "total", len(urls), "url", url)

		data, err := c.get(ctx, url)
		if err != nil {
			slog.Warn("Feed source failed", "url", url, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", url, err))
			continue
		}

		slog.Info("Feed fetched", "url", url, "bytes", len(data))
		return data, nil
	}

	return nil, fmt.Errorf("no feed source succeeded: %w", errors.Join(errs...))
}

// FetchImage returns the raw bytes behind url. Callers treat failure as
// non-fatal.
func (c *Client) FetchImage(ctx context.Context, url string) ([]byte, error) {
	return c.get(ctx, url)
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode(), resp.Status())
	}
	return resp.Body(), nil
}
