package swapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the public SWAPI root.
const DefaultBaseURL = "https://swapi.dev/api"

// Client wraps the SWAPI films endpoint
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new SWAPI client. Unlike the other API clients the
// connection is not tested here; the first fetch is the connection test.
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("swapi URL is required")
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("swapi URL must start with http:// or https://: %s", baseURL)
	}

	client := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		logger:     logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FilmsURL returns the absolute URL of the films collection.
func (c *Client) FilmsURL() string {
	return c.baseURL + "/films/"
}

// doGet performs a GET request and returns the body of a 2xx response
func (c *Client) doGet(ctx context.Context, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug().Str("url", requestURL).Msg("Making SWAPI request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Str("url", requestURL).Msg("SWAPI request failed")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		reqErr := &RequestError{StatusCode: resp.StatusCode, URL: requestURL}
		c.logger.Debug().Int("status", resp.StatusCode).Msg(reqErr.Detail())
		return nil, reqErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Debug().Err(err).Str("url", requestURL).Msg("Failed to read SWAPI response body")
		return nil, err
	}

	return body, nil
}

// Ping checks that the API root answers with a 2xx status
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.doGet(ctx, c.baseURL+"/")
	return err
}

// ListFilms retrieves all films in the order the API returns them
func (c *Client) ListFilms(ctx context.Context) ([]Film, error) {
	body, err := c.doGet(ctx, c.FilmsURL())
	if err != nil {
		return nil, err
	}

	var payload FilmsResponse
	// transport and decode errors are returned as is, their text is what
	// the fetch state shows
	if err := json.Unmarshal(body, &payload); err != nil {
		c.logger.Debug().Err(err).Msg("Failed to decode films response")
		return nil, err
	}
	// "results": [] decodes to an empty, non-nil slice
	if payload.Results == nil {
		return nil, ErrInvalidResponse
	}

	films := payload.Results
	c.logger.Debug().Msgf("Retrieved %d films from SWAPI", len(films))
	return films, nil
}
