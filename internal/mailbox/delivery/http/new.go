package http

import (
	"nylas-email-app/internal/mailbox"
	"nylas-email-app/pkg/log"
)

type handler struct {
	l  log.Logger
	uc mailbox.UseCase

	// grantOverride is NYLAS_GRANT_ID; when set it bypasses the session.
	grantOverride string
}

// New creates a new HTTP handler for the mailbox domain.
func New(l log.Logger, uc mailbox.UseCase, grantOverride string) *handler {
	return &handler{
		l:             l,
		uc:            uc,
		grantOverride: grantOverride,
	}
}
