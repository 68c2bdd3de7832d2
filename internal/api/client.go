// Package api is the REST client for the fitness tracker backend. A base
// JSON client wraps the HTTP transport with the credential pipeline;
// endpoint wrappers in sibling files mirror the backend's resources.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/fittrack/internal/config"
)

// maxErrorBody caps how much of an error response body is read.
const maxErrorBody = 64 * 1024

// Client is the shared HTTP client for all backend calls.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	pipeline   *pipeline
	logger     *zap.Logger
}

// NewClient builds a client from configuration. The session is bound
// separately with BindSession, before the first request is issued.
func NewClient(cfg config.ClientConfig, logger *zap.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	authPaths := []string{base.Path + "/login", base.Path + "/register"}
	pipe := newPipeline(http.DefaultTransport, authPaths, logger)

	return &Client{
		baseURL: base,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout(),
			Transport: pipe,
		},
		pipeline: pipe,
		logger:   logger,
	}, nil
}

// BindSession attaches the session state the pipeline reads credentials
// from and tears down on authentication failures.
func (c *Client) BindSession(s SessionState) {
	c.pipeline.bind(s)
}

// do issues a JSON request and decodes a 2xx response into out (when out
// is non-nil). It returns the response status so callers can distinguish
// empty 204 responses. Non-2xx responses become *Error.
func (c *Client) do(ctx context.Context, method, path string, body, out any) (int, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, reqBody)
	if err != nil {
		return 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}
	return resp.StatusCode, nil
}

// decodeError turns a non-2xx response into *Error, decoding the server's
// error envelope when present.
func decodeError(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return apiErr
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(data, &envelope); err == nil {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
		if apiErr.Message == "" {
			apiErr.Message = envelope.Message
		}
	}
	return apiErr
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	_, err := c.do(ctx, http.MethodGet, path, nil, out)
	return err
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	_, err := c.do(ctx, http.MethodPost, path, body, out)
	return err
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	_, err := c.do(ctx, http.MethodPut, path, body, out)
	return err
}

func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	return err
}
