package semantic

import (
	"context"

	"jasper/internal/connector"
	"jasper/internal/model"
	"jasper/pkg/log"
	"jasper/pkg/qdrant"
	"jasper/pkg/voyage"
)

// VectorStore is the part of the Qdrant client the connector uses.
type VectorStore interface {
	SearchPoints(ctx context.Context, collectionName string, req qdrant.SearchRequest) (*qdrant.SearchResponse, error)
}

// Fallback serves content search and opening when the index cannot.
type Fallback interface {
	SearchContent(ctx context.Context, p connector.Params) ([]model.SearchResult, error)
	Open(ctx context.Context, id string) (string, error)
}

// Config wires the connector. Embedder and Store may be nil, in which case
// every search goes to Fallback.
type Config struct {
	Embedder   voyage.IVoyage
	Store      VectorStore
	Collection string
	Fallback   Fallback
}

// Connector searches indexed document chunks by meaning.
type Connector struct {
	l          log.Logger
	embedder   voyage.IVoyage
	store      VectorStore
	collection string
	fallback   Fallback
}

var _ connector.Connector = (*Connector)(nil)

// New creates a semantic connector.
func New(l log.Logger, cfg Config) *Connector {
	if cfg.Collection == "" {
		cfg.Collection = DefaultCollection
	}
	return &Connector{
		l:          l,
		embedder:   cfg.Embedder,
		store:      cfg.Store,
		collection: cfg.Collection,
		fallback:   cfg.Fallback,
	}
}

func (c *Connector) Name() string {
	return Name
}
