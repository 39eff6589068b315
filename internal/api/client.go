// Package api is the client for the forum engine. Every remote operation
// the controllers perform goes through here; the controllers never see a
// raw *http.Response, only decoded models or an *utils.AppError.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"gator-swamp-client/internal/models"
	"gator-swamp-client/internal/utils"
)

// Client talks to the forum engine over HTTP.
type Client struct {
	baseURL string
	client  *http.Client
	metrics *utils.MetricsCollector
	session *Session
}

func NewClient(baseURL string, timeout time.Duration, metrics *utils.MetricsCollector) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		session: NewSession(),
	}
}

// Session exposes the token holder. The embedder owns the login flow:
// it installs the bearer token after a successful login and clears it
// on logout; the client itself never acquires one.
func (c *Client) Session() *Session {
	return c.session
}

// makeRequest performs one JSON request against the engine. Non-2xx
// statuses are classified into the controller's error taxonomy; the
// operation name keys the latency samples in the metrics collector.
func (c *Client) makeRequest(ctx context.Context, operation, method, endpoint string, data interface{}) ([]byte, error) {
	var body []byte
	var err error

	if data != nil {
		body, err = json.Marshal(data)
		if err != nil {
			return nil, utils.NewAppError(utils.ErrInvalidInput, "failed to encode request body", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, utils.NewTransportError(operation, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	c.recordRequestMetrics(operation, start, err)

	if err != nil {
		return nil, utils.NewTransportError(operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, utils.HTTPStatusToAppError(operation, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func (c *Client) recordRequestMetrics(operation string, start time.Time, err error) {
	c.metrics.IncrementRequests()
	c.metrics.AddOperationLatency(operation, time.Since(start))
	if err != nil {
		c.metrics.IncrementErrors()
	}
}

// getJSON fetches and decodes into out.
func (c *Client) getJSON(ctx context.Context, operation, endpoint string, out interface{}) error {
	resp, err := c.makeRequest(ctx, operation, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resp, out); err != nil {
		return utils.NewTransportError(operation, fmt.Errorf("failed to parse response: %w", err))
	}
	return nil
}

// postJSON sends data and decodes the response into out when out is
// non-nil.
func (c *Client) postJSON(ctx context.Context, operation, endpoint string, data, out interface{}) error {
	resp, err := c.makeRequest(ctx, operation, http.MethodPost, endpoint, data)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp, out); err != nil {
		return utils.NewTransportError(operation, fmt.Errorf("failed to parse response: %w", err))
	}
	return nil
}

// GetAuthStatus resolves the current session into an AuthContext
// snapshot. A transport failure resolves to the anonymous context so the
// navigation machine always has a usable allow-list.
func (c *Client) GetAuthStatus(ctx context.Context) (models.AuthContext, error) {
	var auth models.AuthContext
	if err := c.getJSON(ctx, "get_auth_status", "/auth/status", &auth); err != nil {
		return models.Anonymous(), err
	}
	return auth, nil
}
