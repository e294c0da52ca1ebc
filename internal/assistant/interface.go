package assistant

import (
	"context"

	"jasper/internal/model"
)

// UseCase is the request-level entry point shared by every delivery.
type UseCase interface {
	// Query runs a free-text request through classification, resolution,
	// dispatch and post-processing. Backend failures are reported in the
	// response; only invalid input is returned as an error.
	Query(ctx context.Context, input QueryInput) (Response, error)

	// Open opens a previously returned item on its backend.
	Open(ctx context.Context, input OpenInput) (OpenOutput, error)

	// IndexStatus reports the semantic indexer's progress.
	IndexStatus(ctx context.Context) model.IndexStatus
}
