package mailbox

import "errors"

// Domain-specific errors for the mailbox package.
var (
	ErrNotAuthenticated  = errors.New("no grant resolvable for request")
	ErrMissingCode       = errors.New("authorization code is empty")
	ErrMissingAttachment = errors.New("attachment id is empty")
	ErrMissingMessageID  = errors.New("message id is empty")
)
