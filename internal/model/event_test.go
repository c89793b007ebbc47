package model

import (
	"strings"
	"testing"
)

func TestParseWebhookEvent(t *testing.T) {
	t.Run("Full Envelope", func(t *testing.T) {
		raw := []byte(`{
			"specversion": "1.0",
			"type": "message.created",
			"source": "/google/emails/realtime",
			"id": "evt-1",
			"time": 1714000000,
			"webhook_delivery_attempt": 2,
			"data": {"application_id": "app-1", "object": {"id": "msg-1"}}
		}`)

		evt, err := ParseWebhookEvent(raw)
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		if evt.Type != "message.created" {
			t.Errorf("unexpected type %q", evt.Type)
		}
		if evt.WebhookDeliveryAttempt != 2 {
			t.Errorf("unexpected delivery attempt %d", evt.WebhookDeliveryAttempt)
		}
		if evt.Time != 1714000000 {
			t.Errorf("unexpected time %d", evt.Time)
		}
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		if _, err := ParseWebhookEvent([]byte(`{"type":`)); err == nil {
			t.Error("expected an error for malformed JSON")
		}
	})
}

func TestParseObject(t *testing.T) {
	t.Run("Message Created", func(t *testing.T) {
		evt := WebhookEvent{
			ID:   "evt-1",
			Type: "message.created",
			Data: map[string]any{
				"object": map[string]any{
					"id":      "msg-1",
					"subject": "Hello",
					"to":      []any{map[string]any{"email": "bob@example.com"}},
				},
			},
		}

		obj, err := ParseObject(evt)
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		email, ok := obj.(EmailObject)
		if !ok {
			t.Fatalf("expected EmailObject, got %T", obj)
		}
		if email.Subject != "Hello" {
			t.Errorf("unexpected subject %q", email.Subject)
		}
		if email.Trigger() != TriggerMessageCreated {
			t.Errorf("unexpected trigger %q", email.Trigger())
		}
	})

	t.Run("Unknown Trigger", func(t *testing.T) {
		evt := WebhookEvent{
			ID:   "evt-2",
			Type: "message.opened",
			Data: map[string]any{
				"object": map[string]any{"message_id": "msg-1"},
			},
		}

		obj, err := ParseObject(evt)
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		unknown, ok := obj.(UnknownObject)
		if !ok {
			t.Fatalf("expected UnknownObject, got %T", obj)
		}
		if unknown.Trigger() != "message.opened" {
			t.Errorf("unexpected trigger %q", unknown.Trigger())
		}
		if unknown.Raw["message_id"] != "msg-1" {
			t.Error("raw mapping not preserved")
		}
	})

	t.Run("Missing Object", func(t *testing.T) {
		evt := WebhookEvent{ID: "evt-3", Type: "message.created", Data: map[string]any{}}
		if _, err := ParseObject(evt); err == nil {
			t.Error("expected an error when data.object is absent")
		}
	})

	t.Run("Object Not A Mapping", func(t *testing.T) {
		evt := WebhookEvent{ID: "evt-4", Type: "message.created", Data: map[string]any{"object": "nope"}}
		if _, err := ParseObject(evt); err == nil {
			t.Error("expected an error when data.object is not a mapping")
		}
	})
}

func TestNewEmailObject(t *testing.T) {
	t.Run("Requires To", func(t *testing.T) {
		_, err := NewEmailObject(map[string]any{"id": "msg-1", "subject": "Hello"})
		if err == nil {
			t.Fatal("expected an error when to is absent")
		}
		if !strings.Contains(err.Error(), "to") {
			t.Errorf("error does not name the missing field: %v", err)
		}
	})

	t.Run("Empty To Is Valid", func(t *testing.T) {
		email, err := NewEmailObject(map[string]any{"to": []any{}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if email.To == nil || len(email.To) != 0 {
			t.Errorf("expected empty to list, got %#v", email.To)
		}
	})

	t.Run("Absent Lists Default Empty", func(t *testing.T) {
		email, err := NewEmailObject(map[string]any{
			"to":      []any{map[string]any{"email": "bob@example.com"}},
			"subject": "Hello",
			"unread":  true,
			"date":    float64(1714000000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for name, list := range map[string][]any{
			"from":        email.From,
			"cc":          email.Cc,
			"bcc":         email.Bcc,
			"reply_to":    email.ReplyTo,
			"folders":     email.Folders,
			"attachments": email.Attachments,
		} {
			if list == nil {
				t.Errorf("expected %s to default to an empty list", name)
			}
		}
		if !email.Unread {
			t.Error("expected unread to carry through")
		}
		if email.Date != 1714000000 {
			t.Errorf("unexpected date %d", email.Date)
		}
	})
}
