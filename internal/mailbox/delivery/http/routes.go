package http

import (
	"github.com/gin-gonic/gin"

	"nylas-email-app/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All mailbox routes run behind the session middleware so the grant can be
// resolved from (and stored into) the browser session.
func RegisterRoutes(r *gin.Engine, h *handler, mw middleware.Middleware) {
	oauth := r.Group("/oauth", mw.Session())
	{
		oauth.GET("/exchange", h.Exchange)
	}

	nylasGroup := r.Group("/nylas", mw.Session())
	{
		nylasGroup.GET("/auth", h.Auth)
		nylasGroup.GET("/recent-emails", h.RecentEmails)
		nylasGroup.GET("/send-email", h.SendEmail)
		nylasGroup.GET("/attachments/:id", h.Attachment)
	}
}
