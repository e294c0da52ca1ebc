package indexer

import (
	"context"

	"jasper/internal/model"
	"jasper/pkg/qdrant"
)

// Store is the part of the Qdrant client the indexer writes through.
type Store interface {
	EnsureCollection(ctx context.Context, req qdrant.CreateCollectionRequest) error
	DeleteCollection(ctx context.Context, name string) error
	UpsertPoints(ctx context.Context, collectionName string, req qdrant.UpsertPointsRequest) error
	DeleteByFilter(ctx context.Context, collectionName string, filter qdrant.Filter) error
	CountPoints(ctx context.Context, collectionName string, req qdrant.CountRequest) (int, error)
	ScrollPoints(ctx context.Context, collectionName string, req qdrant.ScrollRequest) (*qdrant.ScrollResponse, error)
}

// Config configures an Indexer.
type Config struct {
	Folders      []string
	Extensions   []string
	ChunkSize    int
	ChunkOverlap int
	BatchSize    int
	Collection   string
	VectorSize   int
	StatusFile   string
}

// Report summarizes one indexing run.
type Report struct {
	Files   int
	Indexed int
	Skipped int
	Failed  int
	Chunks  int
}

// Stats describes what the index currently holds.
type Stats struct {
	Chunks int
	Files  int
	Status model.IndexStatus
}
