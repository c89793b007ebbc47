package mailbox

import (
	"context"

	"nylas-email-app/pkg/nylas"
)

// UseCase defines the business logic interface for the mailbox domain.
// Everything here is a thin composition over the Nylas provider; grant
// resolution (env override vs session) happens in the delivery layer.
type UseCase interface {
	// AuthURL returns the hosted authentication URL for connecting a mailbox.
	AuthURL() string

	// ExchangeCode trades an OAuth authorization code for a grant id.
	ExchangeCode(ctx context.Context, code string) (string, error)

	// RecentEmails returns the most recent messages of a grant.
	RecentEmails(ctx context.Context, grantID string) ([]nylas.Message, error)

	// SendTestEmail sends the hardcoded demo email to the configured address.
	SendTestEmail(ctx context.Context, grantID string) (nylas.Message, error)

	// FetchAttachment downloads an attachment with its metadata.
	FetchAttachment(ctx context.Context, grantID string, input FetchAttachmentInput) (Attachment, error)
}

// ProviderClient is the subset of the Nylas client the mailbox domain uses.
type ProviderClient interface {
	AuthURL(clientID, redirectURI string) string
	ExchangeCode(ctx context.Context, clientID, redirectURI, code string) (string, error)
	ListMessages(ctx context.Context, grantID string, limit int) ([]nylas.Message, error)
	SendMessage(ctx context.Context, grantID string, req nylas.SendMessageRequest) (nylas.Message, error)
	FindAttachment(ctx context.Context, grantID, attachmentID, messageID string) (nylas.Attachment, error)
	DownloadAttachment(ctx context.Context, grantID, attachmentID, messageID string) ([]byte, error)
}
