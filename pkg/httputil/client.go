package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/matzehuels/mekko/pkg/buildinfo"
	errs "github.com/matzehuels/mekko/pkg/errors"
)

const (
	defaultTimeout  = 30 * time.Second
	defaultAttempts = 3
	defaultDelay    = time.Second

	// MaxBodySize caps a downloaded dataset.
	MaxBodySize = 64 << 20
)

// Client downloads datasets over HTTP with retries.
type Client struct {
	HTTP     *http.Client
	Attempts int
	Delay    time.Duration
}

// NewClient returns a client with the default timeout and retry policy.
func NewClient() *Client {
	return &Client{
		HTTP:     &http.Client{Timeout: defaultTimeout},
		Attempts: defaultAttempts,
		Delay:    defaultDelay,
	}
}

// IsURL reports whether path names a remote dataset.
func IsURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// Fetch downloads url and returns the body. A 404 maps to FILE_NOT_FOUND;
// other failures that survive the retries map to INVALID_INPUT.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	err := Retry(ctx, c.Attempts, c.Delay, func() error {
		var err error
		body, err = c.get(ctx, url)
		return err
	})
	if err == nil {
		return body, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if errs.Is(err, errs.ErrCodeFileNotFound) {
		return nil, err
	}
	return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "fetch %s", url)
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", buildinfo.Generator())
	req.Header.Set("Accept", "text/csv, text/tab-separated-values, application/json;q=0.9, */*;q=0.5")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &RetryableError{Err: fmt.Errorf("network error: %w", err)}
	}
	defer resp.Body.Close()

	if err := checkStatus(url, resp.StatusCode); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, &RetryableError{Err: fmt.Errorf("read body: %w", err)}
	}
	if len(data) > MaxBodySize {
		return nil, fmt.Errorf("dataset larger than %d bytes", MaxBodySize)
	}
	return data, nil
}

func checkStatus(url string, code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return errs.New(errs.ErrCodeFileNotFound, "%s: not found", url)
	case code == http.StatusTooManyRequests || code >= 500:
		return &RetryableError{Err: fmt.Errorf("status %d", code)}
	default:
		return fmt.Errorf("status %d", code)
	}
}
