package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"nylas-email-app/internal/event"
	"nylas-email-app/internal/mailbox"
	"nylas-email-app/internal/middleware"
	"nylas-email-app/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Webhook ingestion
	webhookHandler interface {
		HandleEvents(c *gin.Context)
		HandleStoredEvent(c *gin.Context)
	}
	registry *event.Registry

	// Mailbox domain
	mailboxUC     mailbox.UseCase
	grantOverride string
	mw            middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Webhook ingestion
	WebhookHandler interface {
		HandleEvents(c *gin.Context)
		HandleStoredEvent(c *gin.Context)
	}
	Registry *event.Registry

	// Mailbox domain
	MailboxUC     mailbox.UseCase
	GrantOverride string
	Middleware    middleware.Middleware
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		webhookHandler: cfg.WebhookHandler,
		registry:       cfg.Registry,
		mailboxUC:      cfg.MailboxUC,
		grantOverride:  cfg.GrantOverride,
		mw:             cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.webhookHandler == nil {
		return errors.New("webhook handler is required")
	}
	if srv.registry == nil {
		return errors.New("event registry is required")
	}
	return nil
}
