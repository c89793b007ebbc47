package nylas

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// FindAttachment fetches the metadata of a message attachment.
func (c *Client) FindAttachment(ctx context.Context, grantID, attachmentID, messageID string) (Attachment, error) {
	u := fmt.Sprintf("%s/v3/grants/%s/attachments/%s?message_id=%s",
		c.apiURI, grantID, attachmentID, url.QueryEscape(messageID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Attachment{}, fmt.Errorf("failed to build find attachment request: %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Attachment{}, fmt.Errorf("failed to call nylas attachments API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Attachment{}, decodeAPIError(resp)
	}

	var envelope struct {
		RequestID string     `json:"request_id"`
		Data      Attachment `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return Attachment{}, fmt.Errorf("failed to decode attachment response: %w", err)
	}
	return envelope.Data, nil
}

// DownloadAttachment fetches the binary content of a message attachment.
func (c *Client) DownloadAttachment(ctx context.Context, grantID, attachmentID, messageID string) ([]byte, error) {
	u := fmt.Sprintf("%s/v3/grants/%s/attachments/%s/download?message_id=%s",
		c.apiURI, grantID, attachmentID, url.QueryEscape(messageID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build download attachment request: %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call nylas download API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment content: %w", err)
	}
	return content, nil
}
