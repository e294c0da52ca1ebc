package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"jasper/config"
	"jasper/internal/indexer"
	"jasper/pkg/log"
	"jasper/pkg/qdrant"
	"jasper/pkg/voyage"
)

var folders []string

var rootCmd = &cobra.Command{
	Use:           "indexer",
	Short:         "Build and maintain Jasper's semantic document index",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&folders, "folder", nil, "Folder to index (repeatable, overrides indexer.folders)")
}

// setup loads configuration and builds an Indexer bound to a context that
// ends on SIGINT or SIGTERM.
func setup() (context.Context, context.CancelFunc, *indexer.Indexer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	if cfg.Voyage.APIKey == "" {
		return nil, nil, nil, errors.New("VOYAGE_API_KEY is required for indexing")
	}
	embedder, err := voyage.New(voyage.Config{APIKey: cfg.Voyage.APIKey, Model: cfg.Voyage.Model})
	if err != nil {
		return nil, nil, nil, err
	}
	store := qdrant.NewClient(qdrant.Config{URL: cfg.Qdrant.URL})

	targets := cfg.Indexer.Folders
	if len(folders) > 0 {
		targets = folders
	}
	if len(targets) == 0 {
		targets = cfg.Files.Roots
	}

	ix, err := indexer.New(logger, embedder, store, indexer.Config{
		Folders:      targets,
		Extensions:   cfg.Indexer.Extensions,
		ChunkSize:    cfg.Indexer.ChunkSize,
		ChunkOverlap: cfg.Indexer.ChunkOverlap,
		BatchSize:    cfg.Indexer.BatchSize,
		Collection:   cfg.Qdrant.CollectionName,
		VectorSize:   cfg.Qdrant.VectorSize,
		StatusFile:   cfg.Indexer.StatusFile,
	})
	if err != nil {
		return nil, nil, nil, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	return ctx, stop, ix, nil
}
