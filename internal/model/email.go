package model

import (
	"encoding/json"
	"fmt"
)

// EmailObject is the message payload of a message.created delivery, projected
// from the envelope's data.object. It has no identity of its own beyond the
// underlying event ID.
type EmailObject struct {
	ID          string `json:"id"`
	GrantID     string `json:"grant_id"`
	ThreadID    string `json:"thread_id"`
	Subject     string `json:"subject"`
	Body        string `json:"body"`
	Snippet     string `json:"snippet"`
	Object      string `json:"object"`
	Date        int64  `json:"date"`
	Starred     bool   `json:"starred"`
	Unread      bool   `json:"unread"`
	From        []any  `json:"from"`
	To          []any  `json:"to"`
	Cc          []any  `json:"cc"`
	Bcc         []any  `json:"bcc"`
	ReplyTo     []any  `json:"reply_to"`
	Folders     []any  `json:"folders"`
	Attachments []any  `json:"attachments"`
}

func (EmailObject) Trigger() TriggerType { return TriggerMessageCreated }

// NewEmailObject builds an EmailObject from a data.object mapping.
// The "to" key must be present (an empty list is fine); all other list fields
// default to empty when absent.
func NewEmailObject(obj map[string]any) (EmailObject, error) {
	if _, ok := obj["to"]; !ok {
		return EmailObject{}, fmt.Errorf("email object is missing required field %q", "to")
	}

	// Round-trip through JSON so nested values land in the struct's shape.
	raw, err := json.Marshal(obj)
	if err != nil {
		return EmailObject{}, fmt.Errorf("failed to encode email object: %w", err)
	}

	var email EmailObject
	if err := json.Unmarshal(raw, &email); err != nil {
		return EmailObject{}, fmt.Errorf("failed to decode email object: %w", err)
	}

	// Absent list fields stay usable as empty sequences.
	for _, list := range []*[]any{&email.From, &email.To, &email.Cc, &email.Bcc, &email.ReplyTo, &email.Folders, &email.Attachments} {
		if *list == nil {
			*list = []any{}
		}
	}

	return email, nil
}
