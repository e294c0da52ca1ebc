package voyage

import "time"

const (
	DefaultBaseURL = "https://api.voyageai.com/v1"
	DefaultModel   = "voyage-3" // 1024 dimensions
	DefaultTimeout = 30 * time.Second

	// MaxBatch is the largest input list the embeddings endpoint accepts.
	MaxBatch = 128
)

// InputType tells Voyage whether it is embedding a search query or a stored document.
type InputType string

const (
	InputQuery    InputType = "query"
	InputDocument InputType = "document"
)
