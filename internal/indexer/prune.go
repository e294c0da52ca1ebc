package indexer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"jasper/internal/connector/semantic"
	"jasper/pkg/qdrant"
)

// Prune removes the chunks of files that no longer exist and returns their
// paths.
func (ix *Indexer) Prune(ctx context.Context) ([]string, error) {
	sources, err := ix.sources(ctx)
	if err != nil {
		return nil, err
	}

	var removed []string
	for source := range sources {
		if _, err := os.Stat(source); !errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := ix.Remove(ctx, source); err != nil {
			return removed, err
		}
		ix.l.Infof(ctx, "%s.Prune: removed %s", LogPrefix, source)
		removed = append(removed, source)
	}
	sort.Strings(removed)
	return removed, nil
}

// Stats counts the stored chunks and distinct files and reads the status
// file.
func (ix *Indexer) Stats(ctx context.Context) (Stats, error) {
	total, err := ix.store.CountPoints(ctx, ix.cfg.Collection, qdrant.CountRequest{Exact: true})
	if err != nil {
		return Stats{}, fmt.Errorf("count chunks: %w", err)
	}
	sources, err := ix.sources(ctx)
	if err != nil {
		return Stats{}, err
	}
	st, err := ReadStatus(ix.cfg.StatusFile)
	if err != nil {
		return Stats{}, err
	}
	return Stats{Chunks: total, Files: len(sources), Status: st}, nil
}

// sources maps every indexed file to its chunk count.
func (ix *Indexer) sources(ctx context.Context) (map[string]int, error) {
	out := make(map[string]int)
	var offset any
	for {
		page, err := ix.store.ScrollPoints(ctx, ix.cfg.Collection, qdrant.ScrollRequest{
			Limit:       scrollPageSize,
			Offset:      offset,
			WithPayload: []string{semantic.PayloadSource},
		})
		if err != nil {
			return nil, fmt.Errorf("scroll: %w", err)
		}
		for _, p := range page.Result.Points {
			if source, ok := p.Payload[semantic.PayloadSource].(string); ok && source != "" {
				out[source]++
			}
		}
		if page.Result.NextPageOffset == nil {
			return out, nil
		}
		offset = page.Result.NextPageOffset
	}
}
