package indexer

import (
	"errors"
	"strings"

	"jasper/internal/connector/semantic"
	"jasper/pkg/log"
	"jasper/pkg/voyage"
)

// Indexer embeds local documents into the vector store the semantic
// connector searches.
type Indexer struct {
	l          log.Logger
	embedder   voyage.IVoyage
	store      Store
	cfg        Config
	extensions map[string]bool
}

// New creates an Indexer.
func New(l log.Logger, embedder voyage.IVoyage, store Store, cfg Config) (*Indexer, error) {
	if embedder == nil {
		return nil, errors.New("indexer: embedder is required")
	}
	if store == nil {
		return nil, errors.New("indexer: store is required")
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	if cfg.ChunkOverlap < 0 || cfg.ChunkOverlap >= cfg.ChunkSize {
		cfg.ChunkOverlap = 0
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.Collection == "" {
		cfg.Collection = semantic.DefaultCollection
	}
	if cfg.VectorSize <= 0 {
		cfg.VectorSize = DefaultVectorSize
	}
	if cfg.StatusFile == "" {
		cfg.StatusFile = DefaultStatusFile
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = defaultExtensions
	}

	exts := make(map[string]bool, len(cfg.Extensions))
	for _, e := range cfg.Extensions {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts[e] = true
	}

	return &Indexer{
		l:          l,
		embedder:   embedder,
		store:      store,
		cfg:        cfg,
		extensions: exts,
	}, nil
}
