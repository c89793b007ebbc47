package middleware

import (
	"nylas-email-app/config"
	"nylas-email-app/internal/session"
	"nylas-email-app/pkg/log"
)

type Middleware struct {
	l            log.Logger
	sessions     *session.Store
	cookieConfig config.CookieConfig
}

func New(l log.Logger, sessions *session.Store, cookieConfig config.CookieConfig) Middleware {
	return Middleware{
		l:            l,
		sessions:     sessions,
		cookieConfig: cookieConfig,
	}
}
