package nylas

import "fmt"

// APIError is a failed Nylas API call: network-level failures are returned as
// wrapped transport errors, anything the API answered with a non-2xx status
// becomes an APIError.
type APIError struct {
	StatusCode int
	RequestID  string
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("nylas API error %d (%s): %s", e.StatusCode, e.RequestID, e.Message)
	}
	return fmt.Sprintf("nylas API error %d: %s", e.StatusCode, e.Message)
}
