package semantic

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"unicode"

	"jasper/internal/connector"
	"jasper/internal/model"
	"jasper/pkg/qdrant"
	"jasper/pkg/voyage"
)

var errNoIndex = errors.New("semantic index is not configured")

// Search queries the vector index and keeps the best chunk per file. When the
// index is unavailable or has nothing, it falls back to content search.
func (c *Connector) Search(ctx context.Context, p connector.Params) ([]model.SearchResult, error) {
	if p.Limit <= 0 {
		p.Limit = 10
	}

	results, err := c.searchIndex(ctx, p)
	if err != nil && !errors.Is(err, errNoIndex) {
		c.l.Warnf(ctx, "%s.Search: index search failed: %v", LogPrefix, err)
	}
	if len(results) > 0 {
		return results, nil
	}

	if c.fallback == nil {
		if err != nil {
			return nil, err
		}
		return []model.SearchResult{}, nil
	}
	c.l.Debugf(ctx, "%s.Search: falling back to content search for %q", LogPrefix, p.Query)
	return c.fallback.SearchContent(ctx, connector.Params{Query: p.Query, Limit: p.Limit})
}

func (c *Connector) searchIndex(ctx context.Context, p connector.Params) ([]model.SearchResult, error) {
	if c.embedder == nil || c.store == nil {
		return nil, errNoIndex
	}
	if strings.TrimSpace(p.Query) == "" {
		return nil, nil
	}

	vectors, err := c.embedder.Embed(ctx, voyage.InputQuery, []string{p.Query})
	if err != nil {
		return nil, err
	}

	resp, err := c.store.SearchPoints(ctx, c.collection, qdrant.SearchRequest{
		Vector:      vectors[0],
		Limit:       p.Limit * overfetch,
		WithPayload: true,
		Filter:      folderFilter(p.Folder),
	})
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	results := make([]model.SearchResult, 0, p.Limit)
	for _, pt := range resp.Result {
		source := payloadString(pt.Payload, PayloadSource)
		if source == "" || seen[source] {
			continue
		}
		seen[source] = true
		results = append(results, toResult(pt, source))
		if len(results) >= p.Limit {
			break
		}
	}
	return results, nil
}

// folderFilter matches the parent directory name as given, lowercased and
// capitalized.
func folderFilter(folder string) *qdrant.Filter {
	if folder == "" {
		return nil
	}
	var conds []qdrant.Condition
	seen := map[string]bool{}
	for _, v := range []string{folder, strings.ToLower(folder), capitalize(folder)} {
		if !seen[v] {
			seen[v] = true
			conds = append(conds, qdrant.MatchValue(PayloadParent, v))
		}
	}
	return &qdrant.Filter{Should: conds}
}

func capitalize(s string) string {
	r := []rune(strings.ToLower(s))
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func toResult(pt qdrant.ScoredPoint, source string) model.SearchResult {
	name := payloadString(pt.Payload, PayloadFilename)
	if name == "" {
		name = filepath.Base(source)
	}
	return model.SearchResult{
		Kind: model.ResultKindSemantic,
		ID:   source,
		Fields: map[string]any{
			model.FieldName:    name,
			model.FieldPath:    source,
			model.FieldContent: payloadString(pt.Payload, PayloadText),
			model.FieldScore:   pt.Score,
			PayloadParent:      payloadString(pt.Payload, PayloadParent),
			PayloadDirectory:   payloadString(pt.Payload, PayloadDirectory),
		},
	}
}

func payloadString(p map[string]any, key string) string {
	s, _ := p[key].(string)
	return s
}

// Open opens the source file of a result.
func (c *Connector) Open(ctx context.Context, id string) (string, error) {
	if c.fallback == nil {
		return "", connector.ErrOpenUnsupported
	}
	return c.fallback.Open(ctx, id)
}
