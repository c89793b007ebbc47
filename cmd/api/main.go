package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"nylas-email-app/config"
	_ "nylas-email-app/docs" // Swagger docs
	"nylas-email-app/internal/event"
	fileRepo "nylas-email-app/internal/event/repository/file"
	"nylas-email-app/internal/httpserver"
	mailboxUC "nylas-email-app/internal/mailbox/usecase"
	"nylas-email-app/internal/middleware"
	"nylas-email-app/internal/session"
	"nylas-email-app/internal/webhook"
	"nylas-email-app/pkg/log"
	"nylas-email-app/pkg/nylas"
)

// @title       Nylas Email App API
// @description Demo app integrating the Nylas email API: OAuth, webhook ingestion with signature verification, and message convenience calls.
// @version     1
// @host        localhost:5010
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
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Nylas Email App...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Events directory: %s", cfg.Events.Dir)

	if cfg.Webhook.Secret == "" {
		logger.Warn(ctx, "WEBHOOK_SECRET is not set: all webhook deliveries will be rejected")
	}
	if cfg.Nylas.GrantID != "" {
		logger.Info(ctx, "NYLAS_GRANT_ID override set, sessions will be bypassed")
	}

	// 3. Provider client
	nylasClient := nylas.NewClient(cfg.Nylas.APIKey, cfg.Nylas.APIURI)

	// 4. Webhook ingestion pipeline
	eventStore := fileRepo.New(cfg.Events.Dir, logger)
	registry := event.NewRegistry()
	webhookHandler := webhook.NewHandler(eventStore, registry, webhook.SecurityConfig{
		Secret:          cfg.Webhook.Secret,
		RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
	}, logger)

	// 5. Sessions + mailbox domain
	sessions := session.NewStore(cfg.Session.TTL, cfg.Session.MaxSessions)
	mw := middleware.New(logger, sessions, cfg.Cookie)

	redirectBase := cfg.ServerURL
	if redirectBase == "" {
		redirectBase = fmt.Sprintf("http://localhost:%d", cfg.HTTPServer.Port)
	}
	uc := mailboxUC.New(logger, nylasClient, mailboxUC.Config{
		ClientID:    cfg.Nylas.ClientID,
		RedirectURI: redirectBase + "/oauth/exchange",
		Email:       cfg.Email,
	})

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		WebhookHandler: webhookHandler,
		Registry:       registry,
		MailboxUC:      uc,
		GrantOverride:  cfg.Nylas.GrantID,
		Middleware:     mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
