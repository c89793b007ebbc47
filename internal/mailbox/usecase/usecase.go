package usecase

import (
	"context"
	"fmt"

	"nylas-email-app/internal/mailbox"
	"nylas-email-app/pkg/nylas"
)

// RecentEmailLimit caps the recent-emails listing.
const RecentEmailLimit = 5

func (uc *usecase) AuthURL() string {
	return uc.client.AuthURL(uc.cfg.ClientID, uc.cfg.RedirectURI)
}

func (uc *usecase) ExchangeCode(ctx context.Context, code string) (string, error) {
	if code == "" {
		return "", mailbox.ErrMissingCode
	}

	grantID, err := uc.client.ExchangeCode(ctx, uc.cfg.ClientID, uc.cfg.RedirectURI, code)
	if err != nil {
		return "", fmt.Errorf("code exchange failed: %w", err)
	}

	uc.l.Infof(ctx, "Exchanged authorization code for grant %s", grantID)
	return grantID, nil
}

func (uc *usecase) RecentEmails(ctx context.Context, grantID string) ([]nylas.Message, error) {
	if grantID == "" {
		return nil, mailbox.ErrNotAuthenticated
	}

	messages, err := uc.client.ListMessages(ctx, grantID, RecentEmailLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent messages: %w", err)
	}
	return messages, nil
}

func (uc *usecase) SendTestEmail(ctx context.Context, grantID string) (nylas.Message, error) {
	if grantID == "" {
		return nylas.Message{}, mailbox.ErrNotAuthenticated
	}

	req := nylas.SendMessageRequest{
		Subject: "Your Subject Here",
		Body:    "Your Email Here",
		To:      []nylas.EmailName{{Name: "Name", Email: uc.cfg.Email}},
		ReplyTo: []nylas.EmailName{{Name: "Name", Email: uc.cfg.Email}},
	}

	message, err := uc.client.SendMessage(ctx, grantID, req)
	if err != nil {
		return nylas.Message{}, fmt.Errorf("failed to send message: %w", err)
	}

	uc.l.Infof(ctx, "Sent test email %s via grant %s", message.ID, grantID)
	return message, nil
}

// FetchAttachment needs two provider calls against the same grant and
// message: metadata first (content type and filename), then the bytes.
func (uc *usecase) FetchAttachment(ctx context.Context, grantID string, input mailbox.FetchAttachmentInput) (mailbox.Attachment, error) {
	if grantID == "" {
		return mailbox.Attachment{}, mailbox.ErrNotAuthenticated
	}
	if input.AttachmentID == "" {
		return mailbox.Attachment{}, mailbox.ErrMissingAttachment
	}
	if input.MessageID == "" {
		return mailbox.Attachment{}, mailbox.ErrMissingMessageID
	}

	meta, err := uc.client.FindAttachment(ctx, grantID, input.AttachmentID, input.MessageID)
	if err != nil {
		return mailbox.Attachment{}, fmt.Errorf("failed to look up attachment: %w", err)
	}

	content, err := uc.client.DownloadAttachment(ctx, grantID, input.AttachmentID, input.MessageID)
	if err != nil {
		return mailbox.Attachment{}, fmt.Errorf("failed to download attachment: %w", err)
	}

	return mailbox.Attachment{
		Content:     content,
		ContentType: meta.ContentType,
		Filename:    meta.Filename,
	}, nil
}
