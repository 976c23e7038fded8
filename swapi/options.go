package swapi

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout sets the HTTP client timeout. Zero means no timeout. A client
// passed with WithHTTPClient is copied, never modified.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout < 0 {
			return
		}
		hc := *c.httpClient
		hc.Timeout = timeout
		c.httpClient = &hc
	}
}

// WithUserAgent sets a User-Agent header on every request.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}
