package webhook

import (
	"nylas-email-app/internal/event"
	"nylas-email-app/internal/event/repository"
	pkgLog "nylas-email-app/pkg/log"
)

type Handler struct {
	events   repository.EventRepository
	registry *event.Registry
	security *SecurityValidator
	l        pkgLog.Logger
}

func NewHandler(
	events repository.EventRepository,
	registry *event.Registry,
	securityConfig SecurityConfig,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		events:   events,
		registry: registry,
		security: NewSecurityValidator(securityConfig),
		l:        l,
	}
}
