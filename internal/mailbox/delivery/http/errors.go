package http

import (
	"errors"
	"net/http"

	"nylas-email-app/internal/mailbox"
	pkgErrors "nylas-email-app/pkg/errors"
	"nylas-email-app/pkg/nylas"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Provider failures surface as 500 with the underlying message so the demo
// stays debuggable; auth failures are 401.
func (h *handler) mapError(err error) error {
	var apiErr *nylas.APIError
	if errors.As(err, &apiErr) {
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, apiErr.Error())
	}

	switch {
	case errors.Is(err, mailbox.ErrNotAuthenticated):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	case errors.Is(err, mailbox.ErrMissingCode),
		errors.Is(err, mailbox.ErrMissingAttachment),
		errors.Is(err, mailbox.ErrMissingMessageID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		// Network-level failures reach here wrapped; provider scope means 500.
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
