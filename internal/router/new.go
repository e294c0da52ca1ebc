package router

import (
	"context"
	"time"

	"jasper/pkg/llmprovider"
	"jasper/pkg/log"
)

// Router turns free text into a sanitized classification.
type Router interface {
	Classify(ctx context.Context, text string) Classification
}

// SemanticRouter classifies user intent using an LLM
type SemanticRouter struct {
	llm     llmprovider.Generator
	l       log.Logger
	timeout time.Duration
}

var _ Router = (*SemanticRouter)(nil)

// New creates a new SemanticRouter. A non-positive timeout uses DefaultTimeout.
func New(llm llmprovider.Generator, l log.Logger, timeout time.Duration) *SemanticRouter {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &SemanticRouter{
		llm:     llm,
		l:       l,
		timeout: timeout,
	}
}
