package qdrant

import "net/http"

// Config holds Qdrant client settings.
type Config struct {
	URL        string
	HTTPClient *http.Client
}

// CreateCollectionRequest defines the schema for creating a collection.
type CreateCollectionRequest struct {
	Name    string       `json:"-"` // Collection name (in URL)
	Vectors VectorConfig `json:"vectors"`
}

// VectorConfig defines vector dimension and distance metric.
type VectorConfig struct {
	Size     int    `json:"size"`     // Vector dimension (1024 for voyage-3)
	Distance string `json:"distance"` // "Cosine", "Euclid", "Dot"
}

// Point represents a vector with payload (metadata).
// Qdrant requires ID to be a UUID or an unsigned integer.
type Point struct {
	ID      any            `json:"id"`
	Vector  []float32      `json:"vector"`
	Payload map[string]any `json:"payload"`
}

// UpsertPointsRequest is the request to insert/update points.
type UpsertPointsRequest struct {
	Points []Point `json:"points"`
}

// Filter is a boolean combination of payload conditions.
type Filter struct {
	Must    []Condition `json:"must,omitempty"`
	Should  []Condition `json:"should,omitempty"`
	MustNot []Condition `json:"must_not,omitempty"`
}

// Condition matches one payload key.
type Condition struct {
	Key   string `json:"key"`
	Match Match  `json:"match"`
}

// Match is an exact value or full-text match.
type Match struct {
	Value any    `json:"value,omitempty"`
	Text  string `json:"text,omitempty"`
}

// MatchValue builds an exact-match condition.
func MatchValue(key string, value any) Condition {
	return Condition{Key: key, Match: Match{Value: value}}
}

// SearchRequest is the request for semantic search.
type SearchRequest struct {
	Vector         []float32 `json:"vector"`
	Limit          int       `json:"limit"`
	WithPayload    bool      `json:"with_payload"`
	Filter         *Filter   `json:"filter,omitempty"`
	ScoreThreshold *float64  `json:"score_threshold,omitempty"`
}

// SearchResponse contains search results.
type SearchResponse struct {
	Result []ScoredPoint `json:"result"`
}

// ScoredPoint is a search result with similarity score.
type ScoredPoint struct {
	ID      any            `json:"id"`
	Score   float64        `json:"score"`
	Payload map[string]any `json:"payload"`
}

// DeletePointsRequest deletes by IDs or by filter; set exactly one.
type DeletePointsRequest struct {
	Points []string `json:"points,omitempty"`
	Filter *Filter  `json:"filter,omitempty"`
}

// CountRequest counts points, optionally filtered.
type CountRequest struct {
	Filter *Filter `json:"filter,omitempty"`
	Exact  bool    `json:"exact"`
}

type countResponse struct {
	Result struct {
		Count int `json:"count"`
	} `json:"result"`
}

type errorResponse struct {
	Status struct {
		Error string `json:"error"`
	} `json:"status"`
}

// ScrollRequest pages through stored points.
type ScrollRequest struct {
	Filter      *Filter `json:"filter,omitempty"`
	Limit       int     `json:"limit"`
	Offset      any     `json:"offset,omitempty"`
	WithPayload any     `json:"with_payload"`
	WithVector  bool    `json:"with_vector"`
}

// Record is a stored point without a score.
type Record struct {
	ID      any            `json:"id"`
	Payload map[string]any `json:"payload"`
}

// ScrollResponse holds one page; NextPageOffset is nil on the last page.
type ScrollResponse struct {
	Result struct {
		Points         []Record `json:"points"`
		NextPageOffset any      `json:"next_page_offset"`
	} `json:"result"`
}
