package output

// Result is the CLI's JSON record for a completed upload.
type Result struct {
	Source       string `json:"source"`
	ImageID      string `json:"image_id"`
	Type         string `json:"type"`
	CreatedAt    string `json:"created_at"`
	URL          string `json:"url"`
	PermalinkURL string `json:"permalink_url"`
	ThumbURL     string `json:"thumb_url"`

	Archive *Archive `json:"archive,omitempty"`

	// Webhook status (only in local output, not sent to webhook)
	WebhookSent  bool   `json:"webhook_sent,omitempty"`
	WebhookError string `json:"webhook_error,omitempty"`
}

// Archive records where a copy of the source file was stored.
type Archive struct {
	Provider string `json:"provider"`
	Object   string `json:"object"`
}
