package model

import "time"

// IndexStatus is the semantic indexer's progress report.
type IndexStatus struct {
	Percent   int        `json:"percent"`
	Status    string     `json:"status"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// Indexer status values.
const (
	IndexStatusIdle     = "Idle"
	IndexStatusIndexing = "Indexing"
	IndexStatusError    = "Error"
)
