// Package utils provides general-purpose helper utilities used across the
// application: HTTP client construction, URL normalisation, JSON response
// writing and trace-ID generation.
package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "blended-mgmt"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(15 * time.Second)
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance whose
// requests accept JSON, carry the application user agent and are bounded
// by timeout. A non-positive timeout leaves resty's default (none).
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state. Retries are disabled.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent).
		SetRetryCount(0)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
