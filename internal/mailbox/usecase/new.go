package usecase

import (
	"nylas-email-app/internal/mailbox"
	pkgLog "nylas-email-app/pkg/log"
)

// Config holds the static pieces of the mailbox use case.
type Config struct {
	ClientID    string // Nylas application client id
	RedirectURI string // SERVER_URL + /oauth/exchange
	Email       string // recipient of the demo test email
}

type usecase struct {
	l      pkgLog.Logger
	client mailbox.ProviderClient
	cfg    Config
}

// New creates the mailbox use case.
func New(l pkgLog.Logger, client mailbox.ProviderClient, cfg Config) mailbox.UseCase {
	return &usecase{
		l:      l,
		client: client,
		cfg:    cfg,
	}
}
