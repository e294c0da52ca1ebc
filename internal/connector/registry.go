package connector

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"jasper/internal/model"
)

// Registry maps keys to connectors. It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	connectors map[Key]Connector
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{connectors: map[Key]Connector{}}
}

// Register adds or replaces the connector for key.
func (r *Registry) Register(key Key, c Connector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.connectors[key] = c
}

// Get returns the connector for key. Unknown mail keys fall back to Gmail.
func (r *Registry) Get(key Key) (Connector, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.connectors[key]; ok {
		return c, nil
	}
	if key != KeyMailGmail && strings.HasPrefix(string(key), "mail_") {
		if c, ok := r.connectors[KeyMailGmail]; ok {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotRegistered, key)
}

// Keys lists registered keys in sorted order.
func (r *Registry) Keys() []Key {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]Key, 0, len(r.connectors))
	for k := range r.connectors {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Dispatch runs the search a resolved query describes. It does not retry.
func (r *Registry) Dispatch(ctx context.Context, q model.ResolvedQuery) (Key, []model.SearchResult, error) {
	key, ok := KeyFor(q)
	if !ok {
		return "", nil, ErrNotSearchable
	}
	c, err := r.Get(key)
	if err != nil {
		return key, nil, err
	}
	results, err := c.Search(ctx, ParamsFor(q))
	if err != nil {
		return key, nil, err
	}
	if results == nil {
		results = []model.SearchResult{}
	}
	return key, results, nil
}

// Open opens an item on the connector named by key.
func (r *Registry) Open(ctx context.Context, key Key, id string) (string, error) {
	c, err := r.Get(key)
	if err != nil {
		return "", err
	}
	return c.Open(ctx, id)
}
