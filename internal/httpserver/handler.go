package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	mailboxHTTP "nylas-email-app/internal/mailbox/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	srv.l.Infof(ctx, "HTTP server mode: %s (%s)", srv.mode, srv.environment)
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	// Index page: received emails
	srv.registerIndex()

	// Webhook ingestion: challenge handshake + signed deliveries
	srv.gin.GET("/events", srv.webhookHandler.HandleEvents)
	srv.gin.POST("/events", srv.webhookHandler.HandleEvents)
	srv.gin.GET("/events/:key", srv.webhookHandler.HandleStoredEvent)
	srv.l.Infof(ctx, "Webhook routes registered at /events")

	// Mailbox domain: OAuth, recent emails, send, attachments
	if srv.mailboxUC != nil {
		h := mailboxHTTP.New(srv.l, srv.mailboxUC, srv.grantOverride)
		mailboxHTTP.RegisterRoutes(srv.gin, h, srv.mw)
		srv.l.Infof(ctx, "Mailbox routes registered under /oauth and /nylas")
	} else {
		srv.l.Infof(ctx, "Mailbox use case not configured, skipping mailbox routes")
	}

	return nil
}
