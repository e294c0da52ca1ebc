package usecase

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"jasper/internal/assistant"
	"jasper/internal/connector"
	"jasper/internal/resolver"
	"jasper/internal/router"
	"jasper/pkg/llmprovider"
	pkgLog "jasper/pkg/log"
)

// Config wires the pipeline stages into a use case.
type Config struct {
	Router   router.Router
	Resolver resolver.Resolver
	Registry *connector.Registry
	// LLM answers chat turns and writes summaries.
	LLM llmprovider.Generator
	// WebSearch serves the chat model's search directive. Optional.
	WebSearch llmprovider.Generator

	ChatTimeout        time.Duration
	SummaryCacheSize   int
	SummaryConcurrency int
	StatusFile         string
}

type implUseCase struct {
	l           pkgLog.Logger
	router      router.Router
	resolver    resolver.Resolver
	registry    *connector.Registry
	llm         llmprovider.Generator
	webSearch   llmprovider.Generator
	summaries   *lru.Cache[string, string]
	chatTimeout time.Duration
	concurrency int
	statusFile  string
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates the assistant use case.
func New(l pkgLog.Logger, cfg Config) (*implUseCase, error) {
	if cfg.ChatTimeout <= 0 {
		cfg.ChatTimeout = DefaultChatTimeout
	}
	if cfg.SummaryCacheSize <= 0 {
		cfg.SummaryCacheSize = DefaultSummaryCacheSize
	}
	if cfg.SummaryConcurrency <= 0 {
		cfg.SummaryConcurrency = DefaultSummaryConcurrency
	}
	cache, err := lru.New[string, string](cfg.SummaryCacheSize)
	if err != nil {
		return nil, err
	}
	return &implUseCase{
		l:           l,
		router:      cfg.Router,
		resolver:    cfg.Resolver,
		registry:    cfg.Registry,
		llm:         cfg.LLM,
		webSearch:   cfg.WebSearch,
		summaries:   cache,
		chatTimeout: cfg.ChatTimeout,
		concurrency: cfg.SummaryConcurrency,
		statusFile:  cfg.StatusFile,
	}, nil
}
