package files

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"jasper/internal/connector"
	"jasper/internal/model"
)

// Search matches file and folder names against the query. With no query every
// entry passes the name check. Results are newest first.
func (c *Connector) Search(ctx context.Context, p connector.Params) ([]model.SearchResult, error) {
	return c.search(ctx, p, false)
}

// SearchContent also matches text files whose content contains the query.
func (c *Connector) SearchContent(ctx context.Context, p connector.Params) ([]model.SearchResult, error) {
	return c.search(ctx, p, true)
}

func (c *Connector) search(ctx context.Context, p connector.Params, content bool) ([]model.SearchResult, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 10
	}
	terms := queryVariants(p.Query)

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	var found []entry
	seen := map[string]bool{}
	for _, root := range c.cfg.Roots {
		entries, err := c.walk(ctx, root, func(e entry) bool {
			if seen[strings.ToLower(e.path)] || !matchesKind(e, p.Kind) || !inRange(e.modTime, p.DateFrom, p.DateTo) {
				return false
			}
			if matchesName(e.name, terms) || (content && !e.isDir && c.contentMatches(e.path, terms)) {
				seen[strings.ToLower(e.path)] = true
				return true
			}
			return false
		})
		found = append(found, entries...)
		if err != nil {
			c.l.Warnf(ctx, "%s.Search: stopped walking %s: %v", LogPrefix, root, err)
			break
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].modTime.After(found[j].modTime)
	})
	if len(found) > limit {
		found = found[:limit]
	}

	results := make([]model.SearchResult, 0, len(found))
	for _, e := range found {
		results = append(results, toResult(e))
	}
	return results, nil
}

// walk visits root down to MaxDepth and collects entries keep accepts. A
// context error ends the walk early and is returned with what was collected.
func (c *Connector) walk(ctx context.Context, root string, keep func(entry) bool) ([]entry, error) {
	root = filepath.Clean(root)
	if _, err := os.Stat(root); err != nil {
		return nil, nil
	}

	var out []entry
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		depth := strings.Count(strings.TrimPrefix(path, root+string(filepath.Separator)), string(filepath.Separator))
		if d.IsDir() && depth >= c.cfg.MaxDepth {
			// Still report the directory itself, but do not descend.
			if e, ok := toEntry(path, d); ok && keep(e) {
				out = append(out, e)
			}
			return fs.SkipDir
		}

		if e, ok := toEntry(path, d); ok && keep(e) {
			out = append(out, e)
		}
		return nil
	})
	return out, err
}

func toEntry(path string, d fs.DirEntry) (entry, bool) {
	info, err := d.Info()
	if err != nil {
		return entry{}, false
	}
	e := entry{
		name:    d.Name(),
		path:    path,
		isDir:   d.IsDir(),
		modTime: info.ModTime(),
	}
	if !e.isDir {
		e.size = info.Size()
	}
	return e, true
}

func toResult(e entry) model.SearchResult {
	kind := model.FileKindFile
	if e.isDir {
		kind = model.FileKindFolder
	}
	mod := e.modTime
	return model.SearchResult{
		Kind: model.ResultKindFile,
		ID:   e.path,
		Fields: map[string]any{
			model.FieldName: e.name,
			model.FieldPath: e.path,
			model.FieldType: string(kind),
			"size":          e.size,
			"extension":     filepath.Ext(e.name),
		},
		Date: &mod,
	}
}

// queryVariants lowercases the query and adds its aliased spellings.
func queryVariants(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	out := []string{q}
	for _, pair := range aliases {
		for i, from := range pair {
			if strings.Contains(q, from) {
				out = append(out, strings.ReplaceAll(q, from, pair[1-i]))
			}
		}
	}
	return out
}

func matchesName(name string, terms []string) bool {
	if len(terms) == 0 {
		return true
	}
	lower := strings.ToLower(name)
	for _, t := range terms {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

func matchesKind(e entry, kind model.FileKind) bool {
	switch kind {
	case model.FileKindFolder:
		return e.isDir
	case model.FileKindFile:
		return !e.isDir
	default:
		return true
	}
}

// inRange treats to as inclusive of its whole calendar day.
func inRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil {
		end := time.Date(to.Year(), to.Month(), to.Day()+1, 0, 0, 0, 0, to.Location())
		if !t.Before(end) {
			return false
		}
	}
	return true
}

func (c *Connector) contentMatches(path string, terms []string) bool {
	if len(terms) == 0 || !textExtensions[strings.ToLower(filepath.Ext(path))] {
		return false
	}
	text, err := ReadText(path, c.cfg.ReadLimit)
	if err != nil {
		return false
	}
	text = strings.ToLower(text)
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}
