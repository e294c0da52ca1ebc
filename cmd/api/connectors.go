package main

import (
	"context"
	"os"

	"jasper/config"
	"jasper/internal/connector"
	"jasper/internal/connector/files"
	gmailConnector "jasper/internal/connector/gmail"
	"jasper/internal/connector/outlook"
	"jasper/internal/connector/semantic"
	"jasper/pkg/gemini"
	"jasper/pkg/gmail"
	"jasper/pkg/llmprovider"
	"jasper/pkg/log"
	"jasper/pkg/qdrant"
	"jasper/pkg/voyage"
)

// newRegistry registers every backend the configuration allows. Mail
// backends are optional; files and semantic search always exist.
func newRegistry(ctx context.Context, logger log.Logger, cfg *config.Config) *connector.Registry {
	registry := connector.NewRegistry()

	if client := newGmailClient(ctx, logger, cfg.Gmail); client != nil {
		registry.Register(connector.KeyMailGmail, gmailConnector.New(logger, client))
	}

	if cfg.Outlook.ClientID != "" {
		c, err := outlook.New(ctx, logger, outlook.Config{
			TenantID:     cfg.Outlook.TenantID,
			ClientID:     cfg.Outlook.ClientID,
			ClientSecret: cfg.Outlook.ClientSecret,
			Mailbox:      cfg.Outlook.Mailbox,
			BaseURL:      cfg.Outlook.BaseURL,
		})
		if err != nil {
			logger.Warnf(ctx, "Outlook not available (optional): %v", err)
		} else {
			registry.Register(connector.KeyMailOutlook, c)
		}
	}

	fileConnector := files.New(logger, files.Config{
		Roots:     cfg.Files.Roots,
		MaxDepth:  cfg.Files.MaxDepth,
		Timeout:   cfg.Files.SearchTimeout,
		ReadLimit: cfg.Files.ReadLimit,
	})
	registry.Register(connector.KeyFiles, fileConnector)

	semanticCfg := semantic.Config{
		Collection: cfg.Qdrant.CollectionName,
		Fallback:   fileConnector,
	}
	if cfg.Voyage.APIKey != "" && cfg.Qdrant.URL != "" {
		embedder, err := voyage.New(voyage.Config{APIKey: cfg.Voyage.APIKey, Model: cfg.Voyage.Model})
		if err != nil {
			logger.Warnf(ctx, "Voyage not available, semantic search falls back to files: %v", err)
		} else {
			semanticCfg.Embedder = embedder
			semanticCfg.Store = qdrant.NewClient(qdrant.Config{URL: cfg.Qdrant.URL})
		}
	} else {
		logger.Warn(ctx, "VOYAGE_API_KEY or QDRANT_URL missing, semantic search falls back to files")
	}
	registry.Register(connector.KeySemantic, semantic.New(logger, semanticCfg))

	return registry
}

func newGmailClient(ctx context.Context, logger log.Logger, cfg config.GmailConfig) *gmail.Client {
	if cfg.CredentialsPath == "" {
		return nil
	}
	if _, err := os.Stat(cfg.CredentialsPath); err != nil {
		logger.Infof(ctx, "Gmail skipped: %s not found", cfg.CredentialsPath)
		return nil
	}
	client, err := gmail.NewClientFromCredentialsFile(ctx, cfg.CredentialsPath, cfg.TokenPath)
	if err != nil {
		logger.Warnf(ctx, "Gmail not available (optional): %v", err)
		logger.Warn(ctx, "Run `go run scripts/gmail-auth/main.go` to generate token.json")
		return nil
	}
	if cfg.User != "" {
		client = client.WithUser(cfg.User)
	}
	logger.Info(ctx, "Gmail initialized")
	return client
}

// newWebSearch returns a grounded Gemini generator, or nil when disabled.
func newWebSearch(ctx context.Context, logger log.Logger, cfg config.WebSearchConfig) llmprovider.Generator {
	if !cfg.Enabled {
		return nil
	}
	if cfg.APIKey == "" {
		logger.Warn(ctx, "Web search enabled but no Gemini API key configured")
		return nil
	}
	client, err := gemini.New(gemini.Config{APIKey: cfg.APIKey, Model: cfg.Model})
	if err != nil {
		logger.Warnf(ctx, "Web search not available: %v", err)
		return nil
	}
	return llmprovider.NewGeminiAdapter(client)
}
