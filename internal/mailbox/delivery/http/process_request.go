package http

import (
	"github.com/gin-gonic/gin"

	"nylas-email-app/internal/mailbox"
)

// processExchangeReq binds and validates the OAuth exchange query parameters.
func (h *handler) processExchangeReq(c *gin.Context) (exchangeReq, error) {
	var req exchangeReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	if req.Code == "" {
		return req, mailbox.ErrMissingCode
	}
	return req, nil
}

// processAttachmentReq binds and validates the attachment path and query parameters.
func (h *handler) processAttachmentReq(c *gin.Context) (attachmentReq, error) {
	var req attachmentReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.AttachmentID = c.Param("id")
	if req.AttachmentID == "" {
		return req, mailbox.ErrMissingAttachment
	}
	if req.MessageID == "" {
		return req, mailbox.ErrMissingMessageID
	}
	return req, nil
}
