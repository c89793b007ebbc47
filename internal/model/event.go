package model

import (
	"encoding/json"
	"fmt"
)

// TriggerType identifies the Nylas webhook trigger that produced an event.
type TriggerType string

const (
	TriggerMessageCreated TriggerType = "message.created"
)

// WebhookEvent is the delivery envelope Nylas POSTs to the webhook endpoint.
// It is constructed from a signature-verified request body and never mutated;
// the raw bytes are persisted verbatim before this struct is built.
type WebhookEvent struct {
	Specversion            string         `json:"specversion"`
	Type                   string         `json:"type"`
	Source                 string         `json:"source"`
	ID                     string         `json:"id"` // provider-assigned, repeats across redeliveries
	Time                   int64          `json:"time"`
	WebhookDeliveryAttempt int            `json:"webhook_delivery_attempt"`
	Data                   map[string]any `json:"data"`
}

// ParseWebhookEvent decodes a verified raw delivery body into a WebhookEvent.
func ParseWebhookEvent(raw []byte) (WebhookEvent, error) {
	var evt WebhookEvent
	if err := json.Unmarshal(raw, &evt); err != nil {
		return WebhookEvent{}, fmt.Errorf("failed to parse webhook event: %w", err)
	}
	return evt, nil
}

// ObjectPayload is the parsed data.object of a delivery. Known triggers get a
// typed projection; everything else falls back to UnknownObject with the raw
// mapping preserved.
type ObjectPayload interface {
	Trigger() TriggerType
}

// UnknownObject carries the raw data.object of a trigger this app does not
// project into a typed payload.
type UnknownObject struct {
	Type TriggerType
	Raw  map[string]any
}

func (u UnknownObject) Trigger() TriggerType { return u.Type }

// ParseObject projects an event's data.object into its typed payload.
// The envelope must contain an object sub-mapping regardless of trigger.
func ParseObject(evt WebhookEvent) (ObjectPayload, error) {
	rawObj, ok := evt.Data["object"]
	if !ok {
		return nil, fmt.Errorf("event %s has no data.object", evt.ID)
	}
	objMap, ok := rawObj.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("event %s data.object is not a mapping", evt.ID)
	}

	switch TriggerType(evt.Type) {
	case TriggerMessageCreated:
		email, err := NewEmailObject(objMap)
		if err != nil {
			return nil, fmt.Errorf("event %s: %w", evt.ID, err)
		}
		return email, nil
	default:
		return UnknownObject{Type: TriggerType(evt.Type), Raw: objMap}, nil
	}
}
