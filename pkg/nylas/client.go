package nylas

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client is the HTTP wrapper for the Nylas v3 REST API.
type Client struct {
	apiKey     string
	apiURI     string
	httpClient *http.Client
}

// NewClient creates a new Nylas client. apiURI is the regional API base,
// e.g. https://api.us.nylas.com; pass an httptest server URL in tests.
func NewClient(apiKey, apiURI string) *Client {
	return &Client{
		apiKey:     apiKey,
		apiURI:     strings.TrimRight(apiURI, "/"),
		httpClient: &http.Client{},
	}
}

// SetHTTPClient overrides the underlying HTTP client (timeouts, tests).
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.httpClient = hc
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Accept", "application/json")
}

// decodeAPIError turns a non-2xx Nylas response into an *APIError.
func decodeAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)

	var envelope struct {
		RequestID string `json:"request_id"`
		Error     struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error.Message != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			RequestID:  envelope.RequestID,
			Type:       envelope.Error.Type,
			Message:    envelope.Error.Message,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    strings.TrimSpace(string(raw)),
	}
}
