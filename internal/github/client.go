// Package github provisions remote repositories through the GitHub REST API.
// The surface is a single authenticated POST to the repository-creation
// endpoint; any non-2xx response is fatal and its body is surfaced verbatim.
package github

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"pycargo/internal/logger"
)

// DefaultBaseURL is the public GitHub API endpoint.
const DefaultBaseURL = "https://api.github.com"

// userAgent identifies this tool to the API; GitHub rejects requests without
// a User-Agent header.
const userAgent = "pycargo"

// RepoCreator is the capability the pipeline depends on.
type RepoCreator interface {
	CreateRepo(name string, private bool) error
}

// APIError is a non-2xx response from the API, with the response body kept
// verbatim as the error detail.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("GitHub API error (HTTP %d): %s", e.Status, e.Body)
}

// Client talks to the GitHub API with a bearer token.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// NewClient returns a Client against the public API.
func NewClient(token string) *Client {
	return &Client{BaseURL: DefaultBaseURL, Token: token}
}

// createRepoRequest is the JSON body of the repository-creation call.
type createRepoRequest struct {
	Name    string `json:"name"`
	Private bool   `json:"private"`
}

// CreateRepo creates a repository named name under the authenticated user.
func (c *Client) CreateRepo(name string, private bool) error {
	body, err := json.Marshal(createRepoRequest{Name: name, Private: private})
	if err != nil {
		return fmt.Errorf("failed to encode repository request: %w", err)
	}

	url := c.BaseURL + "/user/repos"
	logger.Debug("[DEBUG] POST %s name=%s private=%t\n", url, name, private)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build repository request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/json")

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to create GitHub repository: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(resp.Body)
		return &APIError{Status: resp.StatusCode, Body: string(detail)}
	}

	return nil
}
