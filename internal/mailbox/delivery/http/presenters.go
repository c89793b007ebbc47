package http

import (
	"nylas-email-app/internal/mailbox"
	"nylas-email-app/pkg/nylas"
)

// --- Request DTOs ---

type exchangeReq struct {
	Code string `form:"code"`
}

type attachmentReq struct {
	AttachmentID string `form:"-"` // populated from URI param
	MessageID    string `form:"message_id"`
}

func (r attachmentReq) toInput() mailbox.FetchAttachmentInput {
	return mailbox.FetchAttachmentInput{
		AttachmentID: r.AttachmentID,
		MessageID:    r.MessageID,
	}
}

// --- Response DTOs ---

type grantResp struct {
	GrantID string `json:"grant_id"`
	Source  string `json:"source"`
}

func newGrantResp(grantID, source string) grantResp {
	return grantResp{GrantID: grantID, Source: source}
}

type messageResp struct {
	ID      string            `json:"id"`
	Subject string            `json:"subject"`
	Snippet string            `json:"snippet"`
	Date    int64             `json:"date"`
	Unread  bool              `json:"unread"`
	From    []nylas.EmailName `json:"from"`
	To      []nylas.EmailName `json:"to"`
}

func newMessageResp(m nylas.Message) messageResp {
	return messageResp{
		ID:      m.ID,
		Subject: m.Subject,
		Snippet: m.Snippet,
		Date:    m.Date,
		Unread:  m.Unread,
		From:    m.From,
		To:      m.To,
	}
}

type messagesResp struct {
	Messages []messageResp `json:"messages"`
	Count    int           `json:"count"`
}

func newMessagesResp(messages []nylas.Message) messagesResp {
	out := make([]messageResp, len(messages))
	for i, m := range messages {
		out[i] = newMessageResp(m)
	}
	return messagesResp{Messages: out, Count: len(out)}
}
