package nylas

// EmailName is a name/address pair used in message participants.
type EmailName struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// Message is a Nylas message resource.
type Message struct {
	ID       string      `json:"id"`
	GrantID  string      `json:"grant_id"`
	ThreadID string      `json:"thread_id"`
	Subject  string      `json:"subject"`
	Body     string      `json:"body"`
	Snippet  string      `json:"snippet"`
	Date     int64       `json:"date"`
	Unread   bool        `json:"unread"`
	Starred  bool        `json:"starred"`
	Folders  []string    `json:"folders"`
	From     []EmailName `json:"from"`
	To       []EmailName `json:"to"`
	Cc       []EmailName `json:"cc,omitempty"`
	Bcc      []EmailName `json:"bcc,omitempty"`
	ReplyTo  []EmailName `json:"reply_to,omitempty"`
}

// SendMessageRequest is the body for POST /messages/send.
type SendMessageRequest struct {
	Subject string      `json:"subject"`
	Body    string      `json:"body"`
	To      []EmailName `json:"to"`
	ReplyTo []EmailName `json:"reply_to,omitempty"`
}

// Attachment is the metadata of a message attachment.
type Attachment struct {
	ID          string `json:"id"`
	GrantID     string `json:"grant_id"`
	ContentType string `json:"content_type"`
	Filename    string `json:"filename"`
	Size        int64  `json:"size"`
	IsInline    bool   `json:"is_inline"`
}

// Webhook is a webhook destination registered with Nylas.
type Webhook struct {
	ID            string   `json:"id"`
	Description   string   `json:"description"`
	TriggerTypes  []string `json:"trigger_types"`
	WebhookURL    string   `json:"webhook_url"`
	WebhookSecret string   `json:"webhook_secret"`
	Status        string   `json:"status"`
}

// CreateWebhookRequest is the body for POST /v3/webhooks.
type CreateWebhookRequest struct {
	TriggerTypes               []string `json:"trigger_types"`
	WebhookURL                 string   `json:"webhook_url"`
	Description                string   `json:"description,omitempty"`
	NotificationEmailAddresses []string `json:"notification_email_addresses,omitempty"`
}

// TriggerMessageCreated is the trigger type this app subscribes to.
const TriggerMessageCreated = "message.created"
