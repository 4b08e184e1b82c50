// Package client implements the transport used by the repositories to reach
// the platform REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	defaultTimeout = 30 * time.Second

	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	mimeJSON            = "application/json"
)

// Config holds the connection settings of a platform client.
type Config struct {
	URL     string        // base url of the API, e.g. https://gate.example.com/api/v1
	Token   string        // bearer token, sent as is when not empty
	Timeout time.Duration // per request timeout, defaults to 30s
}

// Client sends JSON requests to the platform. It is safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a platform client.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		token:   cfg.Token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the API base url requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GenRequest sends body as JSON to path and returns the raw response body.
// A nil body sends no payload. Non 2xx answers are returned as *PlatformError.
func (c *Client) GenRequest(ctx context.Context, method, path string, body any) ([]byte, error) {
	if c == nil {
		return nil, ErrClientNotInitialized
	}

	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode request body")
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	req.Header.Set("Accept", mimeJSON)

	if body != nil {
		req.Header.Set(headerContentType, mimeJSON)
	}

	if c.token != "" {
		req.Header.Set(headerAuthorization, "Bearer "+c.token)
	}

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("method", method).Str("path", path).Msg("platform request failed")

		return nil, errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("platform request")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, newPlatformError(method, path, resp.StatusCode, data)
	}

	return data, nil
}

// Do sends in as JSON and decodes the response into out. out may be nil.
func (c *Client) Do(ctx context.Context, method, path string, in, out any) error {
	data, err := c.GenRequest(ctx, method, path, in)
	if err != nil {
		return err
	}

	if out == nil || len(data) == 0 {
		return nil
	}

	if err = json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "failed to decode response of %s %s", method, path)
	}

	return nil
}
