package webhook

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"nylas-email-app/internal/event/repository"
	"nylas-email-app/internal/model"
)

// HandleEvents is the webhook endpoint for both the one-time challenge
// handshake (GET) and signed deliveries (POST).
// @Summary  Webhook endpoint
// @Description GET answers the Nylas subscription challenge; POST ingests a signed delivery.
// @Tags     webhook
// @Param    challenge query string false "Challenge value (GET handshake)"
// @Success  200 {string} string "challenge echo / Webhook received"
// @Failure  400 {string} string "No challenge"
// @Failure  401 {string} string "Signature verification failed!"
// @Router   /events [get]
// @Router   /events [post]
func (h *Handler) HandleEvents(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet:
		h.handleChallenge(c)
	case http.MethodPost:
		h.handleDelivery(c)
	default:
		c.String(http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// handleChallenge echoes the challenge query parameter back as plain text,
// proving endpoint ownership to Nylas at registration time.
func (h *Handler) handleChallenge(c *gin.Context) {
	ctx := c.Request.Context()

	challenge := c.Query("challenge")
	if challenge == "" {
		c.String(http.StatusBadRequest, "No challenge")
		return
	}

	h.l.Info(ctx, "Nylas connected to the webhook!")
	c.String(http.StatusOK, challenge)
}

// handleDelivery verifies and ingests one signed delivery. The verbatim body
// is persisted before structured parsing, so a delivery that passes signature
// verification is never lost to a schema mismatch.
func (h *Handler) handleDelivery(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.security.CheckRateLimit(extractIP(c.Request)); err != nil {
		h.l.Warnf(ctx, "Rate limit exceeded: %v", err)
		c.String(http.StatusTooManyRequests, "Too many requests")
		return
	}

	// Signature verification must run over the exact bytes received.
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "Failed to read webhook body: %v", err)
		c.String(http.StatusBadRequest, "Failed to read body")
		return
	}

	signature := c.GetHeader(SignatureHeader)
	if err := h.security.ValidateSignature(body, signature); err != nil {
		h.l.Errorf(ctx, "Signature verification failed: %v", err)
		c.String(http.StatusUnauthorized, "Signature verification failed!")
		return
	}

	// Raw bytes first: storage is the success gate, parsing is best effort.
	key, err := h.events.Save(ctx, body)
	if err != nil {
		h.l.Errorf(ctx, "Failed to store webhook delivery: %v", err)
		c.String(http.StatusInternalServerError, "Failed to store event")
		return
	}

	evt, err := model.ParseWebhookEvent(body)
	if err != nil {
		h.l.Warnf(ctx, "Stored delivery %s but could not parse envelope: %v", key, err)
		c.String(http.StatusOK, "Webhook received")
		return
	}

	payload, err := model.ParseObject(evt)
	if err != nil {
		h.l.Warnf(ctx, "Stored delivery %s (event %s, attempt %d) but could not project object: %v",
			key, evt.ID, evt.WebhookDeliveryAttempt, err)
		c.String(http.StatusOK, "Webhook received")
		return
	}

	switch obj := payload.(type) {
	case model.EmailObject:
		h.registry.Append(obj)
		h.l.Infof(ctx, "Received message.created event %s (attempt %d), stored as %s",
			evt.ID, evt.WebhookDeliveryAttempt, key)
	default:
		h.l.Infof(ctx, "Received %s event %s, stored as %s (not registered for display)",
			evt.Type, evt.ID, key)
	}

	c.String(http.StatusOK, "Webhook received")
}

// HandleStoredEvent returns the verbatim stored record of a past delivery.
// @Summary  Fetch a stored delivery
// @Tags     webhook
// @Produce  json
// @Param    key path string true "Record key"
// @Success  200 {object} model.WebhookEvent
// @Failure  404 {string} string "not found"
// @Router   /events/{key} [get]
func (h *Handler) HandleStoredEvent(c *gin.Context) {
	ctx := c.Request.Context()

	raw, err := h.events.Load(ctx, c.Param("key"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.String(http.StatusNotFound, "not found")
			return
		}
		h.l.Errorf(ctx, "Failed to load stored event: %v", err)
		c.String(http.StatusInternalServerError, "Failed to load event")
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}
