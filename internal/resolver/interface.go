package resolver

import (
	"time"

	"jasper/internal/intent"
	"jasper/internal/model"
	"jasper/pkg/datemath"
)

// Resolver turns an untrusted classification into a backend-ready query.
type Resolver interface {
	Resolve(text string, raw model.RawClassification) Result
}

// New creates a Resolver.
func New(engine intent.Engine, parser *datemath.Parser, opts Options) Resolver {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.DefaultProvider == "" {
		opts.DefaultProvider = model.ProviderGmail
	}
	return &implResolver{
		engine: engine,
		parser: parser,
		opts:   opts,
	}
}
