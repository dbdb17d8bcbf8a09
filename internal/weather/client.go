// Package weather provides a client for the OpenWeatherMap current
// conditions API.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxResponseSize bounds how much of the provider response is read (1MB).
const maxResponseSize = 1 << 20

// Common errors for weather lookups.
var (
	ErrMissingCity = errors.New("city is required")
	ErrUpstream    = errors.New("weather provider request failed")
)

// Client calls the OpenWeatherMap API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates a weather Client. timeout bounds the full round trip.
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Current fetches current conditions for a city and returns the raw
// provider JSON for pass-through to the caller. Any upstream failure
// (transport error or non-200 status) returns an error whose detail is
// for logs only; the HTTP layer reports a generic message.
func (c *Client) Current(ctx context.Context, city string) (json.RawMessage, error) {
	if strings.TrimSpace(city) == "" {
		return nil, ErrMissingCity
	}

	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")

	endpoint := c.baseURL + "/data/2.5/weather?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	return json.RawMessage(body), nil
}
