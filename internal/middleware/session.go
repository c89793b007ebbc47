package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nylas-email-app/internal/session"
)

const (
	// SessionCookieName is the cookie carrying the opaque session id.
	SessionCookieName = "session_id"

	// sessionContextKey is where the resolved session lives in gin's context.
	sessionContextKey = "session"
)

// Session resolves (or creates) the request's session from the session_id
// cookie and refreshes the cookie on every response.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		id, err := c.Cookie(SessionCookieName)
		var sess *session.Session
		if err == nil {
			sess, _ = m.sessions.Get(id)
		}
		if sess == nil {
			id, sess, err = m.sessions.Create()
			if err != nil {
				m.l.Errorf(ctx, "failed to create session: %v", err)
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
		}

		c.Set(sessionContextKey, sess)

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(
			SessionCookieName,
			id,
			int(m.sessions.TTL().Seconds()),
			"/",
			m.cookieConfig.Domain,
			m.cookieConfig.Secure,
			true, // HttpOnly
		)

		c.Next()
	}
}

// SessionFrom extracts the session placed in the context by Session().
func SessionFrom(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}
