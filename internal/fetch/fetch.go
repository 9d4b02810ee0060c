// Package fetch downloads static text assets (gitignore rules, license text)
// over HTTP. There is no retry policy: a transport failure or non-2xx status
// is surfaced to the pipeline, which treats it as fatal.
package fetch

import (
	"fmt"
	"io"
	"net/http"

	"pycargo/internal/logger"
)

// Fetcher retrieves the content behind a URL.
type Fetcher interface {
	Fetch(url string) ([]byte, error)
}

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d fetching %s", e.Code, e.URL)
}

// HTTP is the real Fetcher backed by net/http. A nil Client falls back to
// http.DefaultClient (default redirect policy, no custom timeouts).
type HTTP struct {
	Client *http.Client
}

// Fetch performs a GET and returns the response body.
func (h *HTTP) Fetch(url string) ([]byte, error) {
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to GET %s: %w", url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: url, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", url, err)
	}

	logger.Debug("[DEBUG] Fetched %d bytes from %s\n", len(body), url)
	return body, nil
}
