package nylas

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// CreateWebhook registers a webhook destination with Nylas. The returned
// Webhook carries the shared secret used to sign future deliveries; Nylas
// only reveals it on creation, so the caller must persist it.
func (c *Client) CreateWebhook(ctx context.Context, createReq CreateWebhookRequest) (Webhook, error) {
	url := fmt.Sprintf("%s/v3/webhooks", c.apiURI)

	body, err := json.Marshal(createReq)
	if err != nil {
		return Webhook{}, fmt.Errorf("failed to marshal create webhook request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return Webhook{}, fmt.Errorf("failed to build create webhook request: %w", err)
	}
	c.authorize(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Webhook{}, fmt.Errorf("failed to call nylas webhooks API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return Webhook{}, decodeAPIError(resp)
	}

	var envelope struct {
		RequestID string  `json:"request_id"`
		Data      Webhook `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return Webhook{}, fmt.Errorf("failed to decode create webhook response: %w", err)
	}
	return envelope.Data, nil
}
