package indexer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"jasper/internal/connector/files"
	"jasper/internal/connector/semantic"
	"jasper/internal/model"
	"jasper/pkg/htmltext"
	"jasper/pkg/qdrant"
	"jasper/pkg/voyage"
)

// Prepare makes sure the collection exists. With rebuild it is dropped first.
func (ix *Indexer) Prepare(ctx context.Context, rebuild bool) error {
	if rebuild {
		if err := ix.store.DeleteCollection(ctx, ix.cfg.Collection); err != nil {
			return fmt.Errorf("drop collection: %w", err)
		}
		ix.l.Infof(ctx, "%s.Prepare: dropped collection %s", LogPrefix, ix.cfg.Collection)
	}
	return ix.store.EnsureCollection(ctx, qdrant.CreateCollectionRequest{
		Name:    ix.cfg.Collection,
		Vectors: qdrant.VectorConfig{Size: ix.cfg.VectorSize, Distance: distanceCosine},
	})
}

// IndexAll walks every configured folder and indexes the allowed files.
// Unchanged files are skipped unless force is set. Progress goes to the
// status file.
func (ix *Indexer) IndexAll(ctx context.Context, force bool) (Report, error) {
	paths, err := ix.collect(ctx)
	if err != nil {
		ix.fail(ctx, err)
		return Report{}, err
	}

	report := Report{Files: len(paths)}
	ix.l.Infof(ctx, "%s.IndexAll: found %d files to index", LogPrefix, len(paths))
	ix.status(ctx, model.IndexStatus{Percent: 0, Status: model.IndexStatusIndexing})

	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			ix.fail(ctx, err)
			return report, err
		}

		n, err := ix.IndexFile(ctx, path, force)
		switch {
		case err != nil:
			report.Failed++
			ix.l.Warnf(ctx, "%s.IndexAll: %s: %v", LogPrefix, path, err)
		case n == 0:
			report.Skipped++
		default:
			report.Indexed++
			report.Chunks += n
		}
		ix.status(ctx, model.IndexStatus{Percent: (i + 1) * 100 / len(paths), Status: model.IndexStatusIndexing})
	}

	ix.status(ctx, model.IndexStatus{Percent: 100, Status: model.IndexStatusIdle})
	ix.l.Infof(ctx, "%s.IndexAll: indexed=%d skipped=%d failed=%d chunks=%d",
		LogPrefix, report.Indexed, report.Skipped, report.Failed, report.Chunks)
	return report, nil
}

// IndexFile replaces the chunks of one file and returns how many were
// written. It returns 0 when the file is unchanged since it was last indexed
// or has no text.
func (ix *Indexer) IndexFile(ctx context.Context, path string, force bool) (int, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return 0, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return 0, err
	}
	hash, err := fileHash(abs)
	if err != nil {
		return 0, err
	}

	if !force {
		n, err := ix.store.CountPoints(ctx, ix.cfg.Collection, qdrant.CountRequest{
			Filter: &qdrant.Filter{Must: []qdrant.Condition{
				qdrant.MatchValue(semantic.PayloadSource, abs),
				qdrant.MatchValue(semantic.PayloadHash, hash),
			}},
			Exact: true,
		})
		if err != nil {
			return 0, fmt.Errorf("count chunks: %w", err)
		}
		if n > 0 {
			return 0, nil
		}
	}

	text, err := extractText(abs)
	if err != nil {
		return 0, err
	}
	if err := ix.Remove(ctx, abs); err != nil {
		return 0, err
	}
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}

	chunks := Chunk(text, ix.cfg.ChunkSize, ix.cfg.ChunkOverlap)
	dir := filepath.Dir(abs)
	base := map[string]any{
		semantic.PayloadSource:    abs,
		semantic.PayloadFilename:  filepath.Base(abs),
		semantic.PayloadDirectory: dir,
		semantic.PayloadParent:    filepath.Base(dir),
		semantic.PayloadHash:      hash,
		semantic.PayloadModified:  info.ModTime().UTC().Format(time.RFC3339),
	}

	for start := 0; start < len(chunks); start += ix.cfg.BatchSize {
		end := min(start+ix.cfg.BatchSize, len(chunks))
		batch := chunks[start:end]

		vectors, err := ix.embedder.Embed(ctx, voyage.InputDocument, batch)
		if err != nil {
			return 0, fmt.Errorf("embed: %w", err)
		}
		if len(vectors) != len(batch) {
			return 0, fmt.Errorf("embed: got %d vectors for %d chunks", len(vectors), len(batch))
		}

		points := make([]qdrant.Point, len(batch))
		for i, text := range batch {
			payload := make(map[string]any, len(base)+2)
			for k, v := range base {
				payload[k] = v
			}
			payload[semantic.PayloadText] = text
			payload[semantic.PayloadChunk] = start + i
			points[i] = qdrant.Point{
				ID:      PointID(abs, start+i),
				Vector:  vectors[i],
				Payload: payload,
			}
		}
		if err := ix.store.UpsertPoints(ctx, ix.cfg.Collection, qdrant.UpsertPointsRequest{Points: points}); err != nil {
			return 0, fmt.Errorf("upsert: %w", err)
		}
	}

	ix.l.Debugf(ctx, "%s.IndexFile: %d chunks from %s", LogPrefix, len(chunks), filepath.Base(abs))
	return len(chunks), nil
}

// Remove deletes every chunk of a file.
func (ix *Indexer) Remove(ctx context.Context, path string) error {
	err := ix.store.DeleteByFilter(ctx, ix.cfg.Collection, qdrant.Filter{
		Must: []qdrant.Condition{qdrant.MatchValue(semantic.PayloadSource, path)},
	})
	if err != nil {
		return fmt.Errorf("delete chunks: %w", err)
	}
	return nil
}

// PointID is the stable point ID of a chunk, so re-indexing overwrites.
func PointID(source string, chunk int) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(fmt.Sprintf("file://%s#%d", source, chunk))).String()
}

// Allowed reports whether path has an indexed extension.
func (ix *Indexer) Allowed(path string) bool {
	return ix.extensions[strings.ToLower(filepath.Ext(path))]
}

// collect returns the allowed files under every folder, sorted and
// deduplicated.
func (ix *Indexer) collect(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string
	for _, folder := range ix.cfg.Folders {
		root, err := filepath.Abs(folder)
		if err != nil {
			return nil, err
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == root {
					return err
				}
				ix.l.Debugf(ctx, "%s.collect: skip %s: %v", LogPrefix, path, err)
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if d.IsDir() {
				if path != root && skipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if d.Type().IsRegular() && ix.Allowed(path) && !seen[path] {
				seen[path] = true
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", folder, err)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || skipDirs[name]
}

func extractText(path string) (string, error) {
	text, err := files.ReadText(path, maxFileBytes)
	if err != nil {
		return "", err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text = htmltext.Text(text)
	}
	return text, nil
}

func fileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func (ix *Indexer) status(ctx context.Context, st model.IndexStatus) {
	if err := WriteStatus(ix.cfg.StatusFile, st); err != nil {
		ix.l.Warnf(ctx, "%s.status: %v", LogPrefix, err)
	}
}

func (ix *Indexer) fail(ctx context.Context, err error) {
	msg := err.Error()
	if errors.Is(err, context.Canceled) {
		msg = "indexing canceled"
	}
	ix.status(ctx, model.IndexStatus{Status: model.IndexStatusError, Error: msg})
}
