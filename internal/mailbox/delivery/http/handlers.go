package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"nylas-email-app/internal/middleware"
	"nylas-email-app/pkg/response"
)

// Exchange godoc
// @Summary     OAuth code exchange
// @Description Exchanges the authorization code for a grant, stores it in the session, and redirects to /nylas/auth.
// @Tags        Mailbox
// @Param       code query string true "Authorization code"
// @Success     302
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /oauth/exchange [GET]
func (h *handler) Exchange(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExchangeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	grantID, err := h.uc.ExchangeCode(ctx, req.Code)
	if err != nil {
		h.l.Errorf(ctx, "uc.ExchangeCode: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	if sess, ok := middleware.SessionFrom(c); ok {
		sess.SetGrantID(grantID)
	}

	c.Redirect(http.StatusFound, "/nylas/auth")
}

// Auth godoc
// @Summary     Resolve or start authentication
// @Description Returns the resolved grant id, or redirects to the Nylas hosted auth URL when no grant is known.
// @Tags        Mailbox
// @Produce     json
// @Success     200 {object} grantResp
// @Success     302
// @Router      /nylas/auth [GET]
func (h *handler) Auth(c *gin.Context) {
	if h.grantOverride != "" {
		response.OK(c, newGrantResp(h.grantOverride, "env"))
		return
	}

	if sess, ok := middleware.SessionFrom(c); ok {
		if grantID := sess.GrantID(); grantID != "" {
			response.OK(c, newGrantResp(grantID, "session"))
			return
		}
	}

	c.Redirect(http.StatusFound, h.uc.AuthURL())
}

// RecentEmails godoc
// @Summary     List recent emails
// @Description Returns up to 5 most recent messages of the resolved grant.
// @Tags        Mailbox
// @Produce     json
// @Success     200 {object} messagesResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Upstream error"
// @Router      /nylas/recent-emails [GET]
func (h *handler) RecentEmails(c *gin.Context) {
	ctx := c.Request.Context()

	grantID := h.resolveGrant(c)
	if grantID == "" {
		response.Unauthorized(c)
		return
	}

	messages, err := h.uc.RecentEmails(ctx, grantID)
	if err != nil {
		h.l.Errorf(ctx, "uc.RecentEmails: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newMessagesResp(messages))
}

// SendEmail godoc
// @Summary     Send a test email
// @Description Sends the hardcoded demo email via the resolved grant.
// @Tags        Mailbox
// @Produce     json
// @Success     200 {object} messageResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Upstream error"
// @Router      /nylas/send-email [GET]
func (h *handler) SendEmail(c *gin.Context) {
	ctx := c.Request.Context()

	grantID := h.resolveGrant(c)
	if grantID == "" {
		response.Unauthorized(c)
		return
	}

	message, err := h.uc.SendTestEmail(ctx, grantID)
	if err != nil {
		h.l.Errorf(ctx, "uc.SendTestEmail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newMessageResp(message))
}

// Attachment godoc
// @Summary     Download an attachment
// @Description Fetches an attachment of a stored message and streams it back.
// @Tags        Mailbox
// @Param       id         path  string true "Attachment id"
// @Param       message_id query string true "Message id"
// @Success     200 {file} file
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Upstream error"
// @Router      /nylas/attachments/{id} [GET]
func (h *handler) Attachment(c *gin.Context) {
	ctx := c.Request.Context()

	grantID := h.resolveGrant(c)
	if grantID == "" {
		response.Unauthorized(c)
		return
	}

	req, err := h.processAttachmentReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	attachment, err := h.uc.FetchAttachment(ctx, grantID, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.FetchAttachment: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", attachment.Filename))
	c.Data(http.StatusOK, attachment.ContentType, attachment.Content)
}

// resolveGrant applies the grant resolution order: env override, then session.
func (h *handler) resolveGrant(c *gin.Context) string {
	if h.grantOverride != "" {
		return h.grantOverride
	}
	if sess, ok := middleware.SessionFrom(c); ok {
		return sess.GrantID()
	}
	return ""
}
