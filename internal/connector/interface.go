package connector

import (
	"context"

	"jasper/internal/model"
)

// Connector is a pluggable search backend.
type Connector interface {
	// Name is the human-readable backend name.
	Name() string
	// Search returns normalized results. An empty slice is not an error.
	Search(ctx context.Context, p Params) ([]model.SearchResult, error)
	// Open opens the item identified by id and returns a status message.
	Open(ctx context.Context, id string) (string, error)
}

// ContentReader is implemented by backends whose items have readable text.
type ContentReader interface {
	ReadContent(ctx context.Context, id string) (string, error)
}
