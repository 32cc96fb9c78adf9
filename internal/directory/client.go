package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/coworkly/SpaceBooker/internal/domain"
	"github.com/wb-go/wbf/retry"
)

// client is the shared JSON-GET core of the user and space directory
// adapters. Transport errors and 5xx responses are retried once; a 404 is a
// definitive answer and is never retried.
type client struct {
	httpClient *http.Client
	baseURL    string
	strategy   retry.Strategy
}

func newClient(baseURL string, timeout time.Duration) *client {
	return &client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		strategy: retry.Strategy{
			Attempts: 2,
			Delay:    100 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// getJSON fetches path and decodes a 200 response into out.
// It reports a 404 via the notFound sentinel and wraps every transport-level
// failure in domain.ErrDirectoryUnavailable.
func (c *client) getJSON(ctx context.Context, path string, notFound error, out any) error {
	var status int
	var body []byte

	err := retry.Do(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("directory returned status %d", resp.StatusCode)
		}

		status, body = resp.StatusCode, b
		return nil
	}, c.strategy)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDirectoryUnavailable, err)
	}

	switch {
	case status == http.StatusNotFound:
		return notFound
	case status != http.StatusOK:
		return fmt.Errorf("%w: unexpected status %d", domain.ErrDirectoryUnavailable, status)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrDirectoryUnavailable, err)
	}

	return nil
}
