package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"jasper/config"
	_ "jasper/docs" // Swagger docs
	assistantHTTP "jasper/internal/assistant/delivery/http"
	tgDelivery "jasper/internal/assistant/delivery/telegram"
	"jasper/internal/assistant/usecase"
	"jasper/internal/httpserver"
	"jasper/internal/intent"
	"jasper/internal/middleware"
	"jasper/internal/model"
	"jasper/internal/resolver"
	"jasper/internal/router"
	"jasper/pkg/datemath"
	"jasper/pkg/llmprovider"
	"jasper/pkg/log"
	"jasper/pkg/telegram"
)

// @title       Jasper Assistant API
// @description Natural-language search over mail, local files and a semantic document index.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		File:         cfg.Logger.File,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Jasper...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Language models
	llm, err := llmprovider.NewManagerFromConfig(&cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	logger.Infof(ctx, "LLM providers: %v", llm.Providers())

	classifier, err := llmprovider.NewManagerFromConfig(&cfg.Classifier, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize classifier providers: ", err)
		return
	}

	webSearch := newWebSearch(ctx, logger, cfg.WebSearch)

	// 4. Pipeline stages
	parser, err := datemath.NewParser(cfg.Assistant.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Assistant.Timezone, err)
		parser, _ = datemath.NewParser("UTC")
	}

	semanticRouter := router.New(classifier, logger, cfg.Assistant.ClassifierTimeout)
	entityResolver := resolver.New(intent.New(), parser, resolver.Options{
		DefaultProvider: model.Provider(cfg.Assistant.DefaultProvider),
	})

	// 5. Connectors
	registry := newRegistry(ctx, logger, cfg)
	logger.Infof(ctx, "Connectors registered: %v", registry.Keys())

	// 6. Assistant use case
	assistantUC, err := usecase.New(logger, usecase.Config{
		Router:             semanticRouter,
		Resolver:           entityResolver,
		Registry:           registry,
		LLM:                llm,
		WebSearch:          webSearch,
		ChatTimeout:        cfg.Assistant.ChatTimeout,
		SummaryCacheSize:   cfg.Assistant.SummaryCacheSize,
		SummaryConcurrency: cfg.Assistant.SummaryConcurrency,
		StatusFile:         cfg.Indexer.StatusFile,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize assistant: ", err)
		return
	}

	// 7. Telegram (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, assistantUC, bot)
		registerWebhook(ctx, logger, bot, cfg.Telegram)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 8. HTTP Server
	mw := middleware.New(logger, middleware.Config{
		RateLimitEnabled:  cfg.RateLimit.Enabled,
		RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
		Burst:             cfg.RateLimit.Burst,
		MaxClients:        cfg.RateLimit.MaxClients,
		AllowedOrigins:    cfg.HTTPServer.AllowedOrigins,
	})

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       mw,
		AssistantHandler: assistantHTTP.New(logger, assistantUC),
		TelegramHandler:  telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerWebhook points Telegram at this server, auto-detecting an ngrok
// tunnel when no URL is configured.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.NgrokAPI != "" {
		ngrokURL, err := detectNgrokURL(ctx, cfg.NgrokAPI)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
		} else {
			webhookURL = ngrokURL + "/webhook/telegram"
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
		}
	}
	if webhookURL == "" {
		return
	}
	if err := bot.SetWebhook(webhookURL); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}
