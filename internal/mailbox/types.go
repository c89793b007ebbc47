package mailbox

// FetchAttachmentInput identifies one attachment within a message.
type FetchAttachmentInput struct {
	AttachmentID string
	MessageID    string
}

// Attachment is a downloaded attachment with its metadata.
type Attachment struct {
	Content     []byte
	ContentType string
	Filename    string
}
