package swapi

import (
	"context"
)

// API defines the interface for SWAPI operations
type API interface {
	// Ping verifies the client can reach the API root
	Ping(ctx context.Context) error

	// ListFilms retrieves the films collection in API order
	ListFilms(ctx context.Context) ([]Film, error)
}

var _ API = (*Client)(nil)
