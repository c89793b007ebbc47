package webhook

// SignatureHeader is the header Nylas signs each delivery with.
const SignatureHeader = "X-Nylas-Signature"

// SecurityConfig holds webhook security settings
type SecurityConfig struct {
	Secret          string // Shared secret for signature verification
	RateLimitPerMin int    // Max POST deliveries per minute per source IP
}
