package semantic

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jasper/internal/connector"
	"jasper/internal/model"
	"jasper/pkg/log"
	"jasper/pkg/qdrant"
	"jasper/pkg/voyage"
)

type fakeEmbedder struct {
	err       error
	inputType voyage.InputType
}

func (f *fakeEmbedder) Embed(_ context.Context, it voyage.InputType, texts []string) ([][]float32, error) {
	f.inputType = it
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{0.1, 0.2}
	}
	return out, nil
}

func (f *fakeEmbedder) Model() string { return "fake" }

type fakeStore struct {
	points []qdrant.ScoredPoint
	err    error
	got    qdrant.SearchRequest
}

func (f *fakeStore) SearchPoints(_ context.Context, _ string, req qdrant.SearchRequest) (*qdrant.SearchResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &qdrant.SearchResponse{Result: f.points}, nil
}

type fakeFallback struct {
	calls  int
	query  string
	opened string
}

func (f *fakeFallback) SearchContent(_ context.Context, p connector.Params) ([]model.SearchResult, error) {
	f.calls++
	f.query = p.Query
	return []model.SearchResult{{Kind: model.ResultKindFile, ID: "/fallback.txt"}}, nil
}

func (f *fakeFallback) Open(_ context.Context, id string) (string, error) {
	f.opened = id
	return "Opened successfully", nil
}

func point(source, text string, score float64) qdrant.ScoredPoint {
	return qdrant.ScoredPoint{
		Score: score,
		Payload: map[string]any{
			PayloadSource:   source,
			PayloadFilename: source[1:],
			PayloadParent:   "docs",
			PayloadText:     text,
		},
	}
}

func TestSearch_DedupesByFile(t *testing.T) {
	store := &fakeStore{points: []qdrant.ScoredPoint{
		point("/a.md", "best chunk of a", 0.9),
		point("/a.md", "second chunk of a", 0.8),
		point("/b.md", "chunk of b", 0.7),
		point("/c.md", "chunk of c", 0.6),
	}}
	emb := &fakeEmbedder{}
	fb := &fakeFallback{}
	c := New(log.NewNop(), Config{Embedder: emb, Store: store, Fallback: fb})

	res, err := c.Search(context.Background(), connector.Params{Query: "revenue", Folder: "Docs", Limit: 2})
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "/a.md", res[0].ID)
	assert.Equal(t, "best chunk of a", res[0].Text())
	assert.Equal(t, model.ResultKindSemantic, res[0].Kind)
	assert.Equal(t, "/b.md", res[1].ID)

	assert.Equal(t, voyage.InputQuery, emb.inputType)
	assert.Equal(t, 8, store.got.Limit)
	require.NotNil(t, store.got.Filter)
	assert.Equal(t, []qdrant.Condition{
		qdrant.MatchValue(PayloadParent, "Docs"),
		qdrant.MatchValue(PayloadParent, "docs"),
	}, store.got.Filter.Should)
	assert.Zero(t, fb.calls)
}

func TestSearch_Fallback(t *testing.T) {
	tests := []struct {
		name  string
		emb   *fakeEmbedder
		store *fakeStore
	}{
		{"empty index", &fakeEmbedder{}, &fakeStore{}},
		{"embedding failure", &fakeEmbedder{err: errors.New("401")}, &fakeStore{}},
		{"store failure", &fakeEmbedder{}, &fakeStore{err: errors.New("connection refused")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := &fakeFallback{}
			c := New(log.NewNop(), Config{Embedder: tt.emb, Store: tt.store, Fallback: fb})

			res, err := c.Search(context.Background(), connector.Params{Query: "revenue"})
			require.NoError(t, err)
			require.Len(t, res, 1)
			assert.Equal(t, "/fallback.txt", res[0].ID)
			assert.Equal(t, 1, fb.calls)
			assert.Equal(t, "revenue", fb.query)
		})
	}

	t.Run("no index configured", func(t *testing.T) {
		fb := &fakeFallback{}
		c := New(log.NewNop(), Config{Fallback: fb})
		res, err := c.Search(context.Background(), connector.Params{Query: "x"})
		require.NoError(t, err)
		assert.Len(t, res, 1)
	})
}

func TestSearch_NoFallback(t *testing.T) {
	c := New(log.NewNop(), Config{Embedder: &fakeEmbedder{}, Store: &fakeStore{err: errors.New("down")}})
	_, err := c.Search(context.Background(), connector.Params{Query: "x"})
	assert.EqualError(t, err, "down")

	c = New(log.NewNop(), Config{Embedder: &fakeEmbedder{}, Store: &fakeStore{}})
	res, err := c.Search(context.Background(), connector.Params{Query: "x"})
	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestOpen(t *testing.T) {
	fb := &fakeFallback{}
	c := New(log.NewNop(), Config{Fallback: fb})
	msg, err := c.Open(context.Background(), "/a.md")
	require.NoError(t, err)
	assert.Equal(t, "Opened successfully", msg)
	assert.Equal(t, "/a.md", fb.opened)

	_, err = New(log.NewNop(), Config{}).Open(context.Background(), "/a.md")
	assert.ErrorIs(t, err, connector.ErrOpenUnsupported)
}

func TestFolderFilter(t *testing.T) {
	assert.Nil(t, folderFilter(""))
	f := folderFilter("docs")
	require.NotNil(t, f)
	assert.Len(t, f.Should, 2) // "docs" and "Docs"
}
