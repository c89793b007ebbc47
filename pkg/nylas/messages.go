package nylas

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// ListMessages returns up to limit most recent messages of a grant.
func (c *Client) ListMessages(ctx context.Context, grantID string, limit int) ([]Message, error) {
	url := fmt.Sprintf("%s/v3/grants/%s/messages?limit=%d", c.apiURI, grantID, limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list messages request: %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call nylas messages API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var envelope struct {
		RequestID string    `json:"request_id"`
		Data      []Message `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode messages list response: %w", err)
	}
	return envelope.Data, nil
}

// SendMessage sends an email through the grant's connected mailbox.
func (c *Client) SendMessage(ctx context.Context, grantID string, sendReq SendMessageRequest) (Message, error) {
	url := fmt.Sprintf("%s/v3/grants/%s/messages/send", c.apiURI, grantID)

	body, err := json.Marshal(sendReq)
	if err != nil {
		return Message{}, fmt.Errorf("failed to marshal send message request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return Message{}, fmt.Errorf("failed to build send message request: %w", err)
	}
	c.authorize(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Message{}, fmt.Errorf("failed to call nylas send API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Message{}, decodeAPIError(resp)
	}

	var envelope struct {
		RequestID string  `json:"request_id"`
		Data      Message `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return Message{}, fmt.Errorf("failed to decode send message response: %w", err)
	}
	return envelope.Data, nil
}
